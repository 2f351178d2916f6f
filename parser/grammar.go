package parser

import "github.com/eaburns/peggy/peg"

const (
	_File          int = 0
	_QueryFile     int = 1
	_Crates        int = 2
	_CrateList     int = 3
	_Crate         int = 4
	_Item          int = 5
	_Trait         int = 6
	_AssocDecl     int = 7
	_Bounds        int = 8
	_TraitRefs     int = 9
	_Struct        int = 10
	_Fields        int = 11
	_Field         int = 12
	_Impl          int = 13
	_AssocValue    int = 14
	_Binder        int = 15
	_Vars          int = 16
	_Var           int = 17
	_Where         int = 18
	_Query         int = 19
	_ForAllBinder  int = 20
	_ExistsBinder  int = 21
	_WcBlock       int = 22
	_Wc            int = 23
	_WhereWc       int = 24
	_AtomWc        int = 25
	_TraitRef      int = 26
	_TyArgs        int = 27
	_Ty            int = 28
	_AliasTy       int = 29
	_NamedTy       int = 30
	_Lifetime      int = 31
	_Ident         int = 32
	_IdName        int = 33
	_IdRune        int = 34
	_Keyword       int = 35
	__             int = 36
	_Space         int = 37
	_Cmnt          int = 38
	_Eof           int = 39

	_N int = 40
)

type _Parser struct {
	text     string
	deltaPos [][_N]int32
	deltaErr [][_N]int32
	node     map[_key]*peg.Node
	fail     map[_key]*peg.Fail
	act      map[_key]interface{}
	lastFail int
	data     interface{}
}

type _key struct {
	start int
	rule  int
}

func _NewParser(text string) *_Parser {
	return &_Parser{
		text:     text,
		deltaPos: make([][_N]int32, len(text)+1),
		deltaErr: make([][_N]int32, len(text)+1),
		node:     make(map[_key]*peg.Node),
		fail:     make(map[_key]*peg.Fail),
		act:      make(map[_key]interface{}),
	}
}

func _max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func _memoize(parser *_Parser, rule, start, pos, perr int) (int, int) {
	parser.lastFail = perr
	derr := perr - start
	parser.deltaErr[start][rule] = int32(derr + 1)
	if pos >= 0 {
		dpos := pos - start
		parser.deltaPos[start][rule] = int32(dpos + 1)
		return dpos, derr
	}
	parser.deltaPos[start][rule] = -1
	return -1, derr
}

func _memo(parser *_Parser, rule, start int) (int, int, bool) {
	dp := parser.deltaPos[start][rule]
	if dp == 0 {
		return 0, 0, false
	}
	if dp > 0 {
		dp--
	}
	de := parser.deltaErr[start][rule] - 1
	return int(dp), int(de), true
}

func _failMemo(parser *_Parser, rule, start, errPos int) (int, *peg.Fail) {
	if start > parser.lastFail {
		return -1, &peg.Fail{}
	}
	dp := parser.deltaPos[start][rule]
	de := parser.deltaErr[start][rule]
	if start+int(de-1) < errPos {
		if dp > 0 {
			return start + int(dp-1), &peg.Fail{}
		}
		return -1, &peg.Fail{}
	}
	f := parser.fail[_key{start: start, rule: rule}]
	if dp < 0 && f != nil {
		return -1, f
	}
	if dp > 0 && f != nil {
		return start + int(dp-1), f
	}
	return start, nil
}

func _accept(parser *_Parser, f func(*_Parser, int) (int, int), pos, perr *int) bool {
	dp, de := f(parser, *pos)
	*perr = _max(*perr, *pos+de)
	if dp < 0 {
		return false
	}
	*pos += dp
	return true
}

func _node(parser *_Parser, f func(*_Parser, int) (int, *peg.Node), node *peg.Node, pos *int) bool {
	p, kid := f(parser, *pos)
	if kid == nil {
		return false
	}
	node.Kids = append(node.Kids, kid)
	*pos = p
	return true
}

func _fail(parser *_Parser, f func(*_Parser, int, int) (int, *peg.Fail), errPos int, node *peg.Fail, pos *int) bool {
	p, kid := f(parser, *pos, errPos)
	if kid.Want != "" || len(kid.Kids) > 0 {
		node.Kids = append(node.Kids, kid)
	}
	if p < 0 {
		return false
	}
	*pos = p
	return true
}

func _next(parser *_Parser, pos int) (rune, int) {
	r, w := peg.DecodeRuneInString(parser.text[pos:])
	return r, w
}

func _sub(parser *_Parser, start, end int, kids []*peg.Node) *peg.Node {
	node := &peg.Node{
		Text: parser.text[start:end],
		Kids: make([]*peg.Node, len(kids)),
	}
	copy(node.Kids, kids)
	return node
}

func _leaf(parser *_Parser, start, end int) *peg.Node {
	return &peg.Node{Text: parser.text[start:end]}
}

// A no-op function to mark a variable as used.
func use(interface{}) {}

func _FileAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _File, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// cs:Crates Eof
	// cs:Crates
	{
		pos1 := pos
		// Crates
		if !_accept(parser, _CratesAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Eof
	if !_accept(parser, _EofAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _File, start, pos, perr)
fail:
	return _memoize(parser, _File, start, -1, perr)
}

func _FileFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _File, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "File",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _File}
	// action
	// cs:Crates Eof
	// cs:Crates
	{
		pos1 := pos
		// Crates
		if !_fail(parser, _CratesFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Eof
	if !_fail(parser, _EofFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _FileAction(parser *_Parser, start int) (int, *File) {
	var labels [1]string
	use(labels)
	var label0 []*Crate
	dp := parser.deltaPos[start][_File]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _File}
	n := parser.act[key]
	if n != nil {
		n := n.(File)
		return start + int(dp-1), &n
	}
	var node File
	pos := start
	// action
	{
		start0 := pos
		// cs:Crates Eof
		// cs:Crates
		{
			pos2 := pos
			// Crates
			if p, n := _CratesAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// Eof
		if p, n := _EofAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, cs []*Crate) File {
			return File{Crates: cs}
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _QueryFileAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _QueryFile, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// q:Query Eof
	// q:Query
	{
		pos1 := pos
		// Query
		if !_accept(parser, _QueryAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Eof
	if !_accept(parser, _EofAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _QueryFile, start, pos, perr)
fail:
	return _memoize(parser, _QueryFile, start, -1, perr)
}

func _QueryFileFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _QueryFile, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "QueryFile",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _QueryFile}
	// action
	// q:Query Eof
	// q:Query
	{
		pos1 := pos
		// Query
		if !_fail(parser, _QueryFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Eof
	if !_fail(parser, _EofFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _QueryFileAction(parser *_Parser, start int) (int, *File) {
	var labels [1]string
	use(labels)
	var label0 *Query
	dp := parser.deltaPos[start][_QueryFile]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _QueryFile}
	n := parser.act[key]
	if n != nil {
		n := n.(File)
		return start + int(dp-1), &n
	}
	var node File
	pos := start
	// action
	{
		start0 := pos
		// q:Query Eof
		// q:Query
		{
			pos2 := pos
			// Query
			if p, n := _QueryAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// Eof
		if p, n := _EofAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, q *Query) File {
			return File{Query: q}
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CratesAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Crates, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ "[" cs:CrateList _ "]" {…}/_ "[" _ "]" {…}/cs1:Crate* {…}
	{
		pos3 := pos
		// action
		// _ "[" cs:CrateList _ "]"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// cs:CrateList
		{
			pos6 := pos
			// CrateList
			if !_accept(parser, _CrateListAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "[" _ "]"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail7
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail7
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos++
		goto ok0
	fail7:
		pos = pos3
		// action
		// cs1:Crate*
		{
			pos10 := pos
			// Crate*
			for {
				pos12 := pos
				// Crate
				if !_accept(parser, _CrateAccepts, &pos, &perr) {
					goto fail14
				}
				continue
			fail14:
				pos = pos12
				break
			}
			labels[1] = parser.text[pos10:pos]
		}
	ok0:
	}
	return _memoize(parser, _Crates, start, pos, perr)
}

func _CratesFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Crates, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Crates",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Crates}
	// _ "[" cs:CrateList _ "]" {…}/_ "[" _ "]" {…}/cs1:Crate* {…}
	{
		pos3 := pos
		// action
		// _ "[" cs:CrateList _ "]"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"[\"",
				})
			}
			goto fail4
		}
		pos++
		// cs:CrateList
		{
			pos6 := pos
			// CrateList
			if !_fail(parser, _CrateListFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"]\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "[" _ "]"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail7
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"[\"",
				})
			}
			goto fail7
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail7
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"]\"",
				})
			}
			goto fail7
		}
		pos++
		goto ok0
	fail7:
		pos = pos3
		// action
		// cs1:Crate*
		{
			pos10 := pos
			// Crate*
			for {
				pos12 := pos
				// Crate
				if !_fail(parser, _CrateFail, errPos, failure, &pos) {
					goto fail14
				}
				continue
			fail14:
				pos = pos12
				break
			}
			labels[1] = parser.text[pos10:pos]
		}
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
}

func _CratesAction(parser *_Parser, start int) (int, *[]*Crate) {
	var labels [2]string
	use(labels)
	var label0 []*Crate
	var label1 []*Crate
	dp := parser.deltaPos[start][_Crates]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Crates}
	n := parser.act[key]
	if n != nil {
		n := n.([]*Crate)
		return start + int(dp-1), &n
	}
	var node []*Crate
	pos := start
	// _ "[" cs:CrateList _ "]" {…}/_ "[" _ "]" {…}/cs1:Crate* {…}
	{
		pos3 := pos
		var node2 []*Crate
		// action
		{
			start5 := pos
			// _ "[" cs:CrateList _ "]"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				goto fail4
			}
			pos++
			// cs:CrateList
			{
				pos7 := pos
				// CrateList
				if p, n := _CrateListAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				goto fail4
			}
			pos++
			node = func(
				start, end int, cs []*Crate) []*Crate {
				return []*Crate(cs)
			}(
				start5, pos, label0)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start9 := pos
			// _ "[" _ "]"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail8
			} else {
				pos = p
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				goto fail8
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail8
			} else {
				pos = p
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				goto fail8
			}
			pos++
			node = func(
				start, end int, cs []*Crate) []*Crate {
				return []*Crate(nil)
			}(
				start9, pos, label0)
		}
		goto ok0
	fail8:
		node = node2
		pos = pos3
		// action
		{
			start12 := pos
			// cs1:Crate*
			{
				pos13 := pos
				// Crate*
				for {
					pos15 := pos
					var node16 *Crate
					// Crate
					if p, n := _CrateAction(parser, pos); n == nil {
						goto fail17
					} else {
						node16 = *n
						pos = p
					}
					label1 = append(label1, node16)
					continue
				fail17:
					pos = pos15
					break
				}
				labels[1] = parser.text[pos13:pos]
			}
			node = func(
				start, end int, cs []*Crate, cs1 []*Crate) []*Crate {
				return []*Crate(cs1)
			}(
				start12, pos, label0, label1)
		}
	ok0:
	}
	parser.act[key] = node
	return pos, &node
}

func _CrateListAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _CrateList, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// c:Crate _ "," cs:CrateList {…}/c1:Crate (_ ",")? {…}
	{
		pos3 := pos
		// action
		// c:Crate _ "," cs:CrateList
		// c:Crate
		{
			pos6 := pos
			// Crate
			if !_accept(parser, _CrateAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// cs:CrateList
		{
			pos7 := pos
			// CrateList
			if !_accept(parser, _CrateListAccepts, &pos, &perr) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// c1:Crate (_ ",")?
		// c1:Crate
		{
			pos10 := pos
			// Crate
			if !_accept(parser, _CrateAccepts, &pos, &perr) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// (_ ",")?
		{
			pos12 := pos
			// (_ ",")
			// _ ","
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail13
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail13
			}
			pos++
			goto ok15
		fail13:
			pos = pos12
		ok15:
		}
		goto ok0
	fail8:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _CrateList, start, pos, perr)
fail:
	return _memoize(parser, _CrateList, start, -1, perr)
}

func _CrateListFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _CrateList, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "CrateList",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _CrateList}
	// c:Crate _ "," cs:CrateList {…}/c1:Crate (_ ",")? {…}
	{
		pos3 := pos
		// action
		// c:Crate _ "," cs:CrateList
		// c:Crate
		{
			pos6 := pos
			// Crate
			if !_fail(parser, _CrateFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\",\"",
				})
			}
			goto fail4
		}
		pos++
		// cs:CrateList
		{
			pos7 := pos
			// CrateList
			if !_fail(parser, _CrateListFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// c1:Crate (_ ",")?
		// c1:Crate
		{
			pos10 := pos
			// Crate
			if !_fail(parser, _CrateFail, errPos, failure, &pos) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// (_ ",")?
		{
			pos12 := pos
			// (_ ",")
			// _ ","
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail13
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\",\"",
					})
				}
				goto fail13
			}
			pos++
			goto ok15
		fail13:
			pos = pos12
		ok15:
		}
		goto ok0
	fail8:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CrateListAction(parser *_Parser, start int) (int, *[]*Crate) {
	var labels [3]string
	use(labels)
	var label0 *Crate
	var label1 []*Crate
	var label2 *Crate
	dp := parser.deltaPos[start][_CrateList]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _CrateList}
	n := parser.act[key]
	if n != nil {
		n := n.([]*Crate)
		return start + int(dp-1), &n
	}
	var node []*Crate
	pos := start
	// c:Crate _ "," cs:CrateList {…}/c1:Crate (_ ",")? {…}
	{
		pos3 := pos
		var node2 []*Crate
		// action
		{
			start5 := pos
			// c:Crate _ "," cs:CrateList
			// c:Crate
			{
				pos7 := pos
				// Crate
				if p, n := _CrateAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				goto fail4
			}
			pos++
			// cs:CrateList
			{
				pos8 := pos
				// CrateList
				if p, n := _CrateListAction(parser, pos); n == nil {
					goto fail4
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos8:pos]
			}
			node = func(
				start, end int, c *Crate, cs []*Crate) []*Crate {
				return []*Crate(append([]*Crate{c}, cs...))
			}(
				start5, pos, label0, label1)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start10 := pos
			// c1:Crate (_ ",")?
			// c1:Crate
			{
				pos12 := pos
				// Crate
				if p, n := _CrateAction(parser, pos); n == nil {
					goto fail9
				} else {
					label2 = *n
					pos = p
				}
				labels[2] = parser.text[pos12:pos]
			}
			// (_ ",")?
			{
				pos14 := pos
				// (_ ",")
				// _ ","
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail15
				} else {
					pos = p
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					goto fail15
				}
				pos++
				goto ok17
			fail15:
				pos = pos14
			ok17:
			}
			node = func(
				start, end int, c *Crate, c1 *Crate, cs []*Crate) []*Crate {
				return []*Crate{c1}
			}(
				start10, pos, label0, label2, label1)
		}
		goto ok0
	fail9:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CrateAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Crate, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "crate" !IdRune name:Ident _ "{" items:Item* _ "}"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "crate"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "crate" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 5
	// !IdRune
	{
		pos2 := pos
		perr4 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// items:Item*
	{
		pos6 := pos
		// Item*
		for {
			pos8 := pos
			// Item
			if !_accept(parser, _ItemAccepts, &pos, &perr) {
				goto fail10
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Crate, start, pos, perr)
fail:
	return _memoize(parser, _Crate, start, -1, perr)
}

func _CrateFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Crate, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Crate",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Crate}
	// action
	// _ "crate" !IdRune name:Ident _ "{" items:Item* _ "}"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "crate"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "crate" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"crate\"",
			})
		}
		goto fail
	}
	pos += 5
	// !IdRune
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"{\"",
			})
		}
		goto fail
	}
	pos++
	// items:Item*
	{
		pos6 := pos
		// Item*
		for {
			pos8 := pos
			// Item
			if !_fail(parser, _ItemFail, errPos, failure, &pos) {
				goto fail10
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"}\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CrateAction(parser *_Parser, start int) (int, **Crate) {
	var labels [2]string
	use(labels)
	var label0 Ident
	var label1 []Item
	dp := parser.deltaPos[start][_Crate]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Crate}
	n := parser.act[key]
	if n != nil {
		n := n.(*Crate)
		return start + int(dp-1), &n
	}
	var node *Crate
	pos := start
	// action
	{
		start0 := pos
		// _ "crate" !IdRune name:Ident _ "{" items:Item* _ "}"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "crate"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "crate" {
			goto fail
		}
		pos += 5
		// !IdRune
		{
			pos3 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// name:Ident
		{
			pos6 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			goto fail
		}
		pos++
		// items:Item*
		{
			pos7 := pos
			// Item*
			for {
				pos9 := pos
				var node10 Item
				// Item
				if p, n := _ItemAction(parser, pos); n == nil {
					goto fail11
				} else {
					node10 = *n
					pos = p
				}
				label1 = append(label1, node10)
				continue
			fail11:
				pos = pos9
				break
			}
			labels[1] = parser.text[pos7:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			goto fail
		}
		pos++
		node = func(
			start, end int, items []Item, name Ident) *Crate {
			return &Crate{Name: name, Items: items, L: l(parser, start, end)}
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ItemAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Item, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// Trait/Struct/Impl
	{
		pos3 := pos
		// Trait
		if !_accept(parser, _TraitAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// Struct
		if !_accept(parser, _StructAccepts, &pos, &perr) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		// Impl
		if !_accept(parser, _ImplAccepts, &pos, &perr) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Item, start, pos, perr)
fail:
	return _memoize(parser, _Item, start, -1, perr)
}

func _ItemFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Item, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Item",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Item}
	// Trait/Struct/Impl
	{
		pos3 := pos
		// Trait
		if !_fail(parser, _TraitFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// Struct
		if !_fail(parser, _StructFail, errPos, failure, &pos) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		// Impl
		if !_fail(parser, _ImplFail, errPos, failure, &pos) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ItemAction(parser *_Parser, start int) (int, *Item) {
	dp := parser.deltaPos[start][_Item]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Item}
	n := parser.act[key]
	if n != nil {
		n := n.(Item)
		return start + int(dp-1), &n
	}
	var node Item
	pos := start
	// Trait/Struct/Impl
	{
		pos3 := pos
		var node2 Item
		// Trait
		if p, n := _TraitAction(parser, pos); n == nil {
			goto fail4
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// Struct
		if p, n := _StructAction(parser, pos); n == nil {
			goto fail5
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail5:
		node = node2
		pos = pos3
		// Impl
		if p, n := _ImplAction(parser, pos); n == nil {
			goto fail6
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail6:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TraitAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _Trait, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "trait" !IdRune name:Ident b:Binder? w:Where? _ "{" ds:AssocDecl* _ "}"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "trait"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "trait" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 5
	// !IdRune
	{
		pos2 := pos
		perr4 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// b:Binder?
	{
		pos6 := pos
		// Binder?
		{
			pos8 := pos
			// Binder
			if !_accept(parser, _BinderAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok10
		fail9:
			pos = pos8
		ok10:
		}
		labels[1] = parser.text[pos6:pos]
	}
	// w:Where?
	{
		pos11 := pos
		// Where?
		{
			pos13 := pos
			// Where
			if !_accept(parser, _WhereAccepts, &pos, &perr) {
				goto fail14
			}
			goto ok15
		fail14:
			pos = pos13
		ok15:
		}
		labels[2] = parser.text[pos11:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// ds:AssocDecl*
	{
		pos16 := pos
		// AssocDecl*
		for {
			pos18 := pos
			// AssocDecl
			if !_accept(parser, _AssocDeclAccepts, &pos, &perr) {
				goto fail20
			}
			continue
		fail20:
			pos = pos18
			break
		}
		labels[3] = parser.text[pos16:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Trait, start, pos, perr)
fail:
	return _memoize(parser, _Trait, start, -1, perr)
}

func _TraitFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _Trait, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Trait",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Trait}
	// action
	// _ "trait" !IdRune name:Ident b:Binder? w:Where? _ "{" ds:AssocDecl* _ "}"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "trait"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "trait" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"trait\"",
			})
		}
		goto fail
	}
	pos += 5
	// !IdRune
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// b:Binder?
	{
		pos6 := pos
		// Binder?
		{
			pos8 := pos
			// Binder
			if !_fail(parser, _BinderFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok10
		fail9:
			pos = pos8
		ok10:
		}
		labels[1] = parser.text[pos6:pos]
	}
	// w:Where?
	{
		pos11 := pos
		// Where?
		{
			pos13 := pos
			// Where
			if !_fail(parser, _WhereFail, errPos, failure, &pos) {
				goto fail14
			}
			goto ok15
		fail14:
			pos = pos13
		ok15:
		}
		labels[2] = parser.text[pos11:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"{\"",
			})
		}
		goto fail
	}
	pos++
	// ds:AssocDecl*
	{
		pos16 := pos
		// AssocDecl*
		for {
			pos18 := pos
			// AssocDecl
			if !_fail(parser, _AssocDeclFail, errPos, failure, &pos) {
				goto fail20
			}
			continue
		fail20:
			pos = pos18
			break
		}
		labels[3] = parser.text[pos16:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"}\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TraitAction(parser *_Parser, start int) (int, *Item) {
	var labels [4]string
	use(labels)
	var label0 Ident
	var label1 *[]*Var
	var label2 *[]Wc
	var label3 []*AssocDecl
	dp := parser.deltaPos[start][_Trait]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Trait}
	n := parser.act[key]
	if n != nil {
		n := n.(Item)
		return start + int(dp-1), &n
	}
	var node Item
	pos := start
	// action
	{
		start0 := pos
		// _ "trait" !IdRune name:Ident b:Binder? w:Where? _ "{" ds:AssocDecl* _ "}"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "trait"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "trait" {
			goto fail
		}
		pos += 5
		// !IdRune
		{
			pos3 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// name:Ident
		{
			pos6 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// b:Binder?
		{
			pos7 := pos
			// Binder?
			{
				pos9 := pos
				label1 = new([]*Var)
				// Binder
				if p, n := _BinderAction(parser, pos); n == nil {
					goto fail10
				} else {
					*label1 = *n
					pos = p
				}
				goto ok11
			fail10:
				label1 = nil
				pos = pos9
			ok11:
			}
			labels[1] = parser.text[pos7:pos]
		}
		// w:Where?
		{
			pos12 := pos
			// Where?
			{
				pos14 := pos
				label2 = new([]Wc)
				// Where
				if p, n := _WhereAction(parser, pos); n == nil {
					goto fail15
				} else {
					*label2 = *n
					pos = p
				}
				goto ok16
			fail15:
				label2 = nil
				pos = pos14
			ok16:
			}
			labels[2] = parser.text[pos12:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			goto fail
		}
		pos++
		// ds:AssocDecl*
		{
			pos17 := pos
			// AssocDecl*
			for {
				pos19 := pos
				var node20 *AssocDecl
				// AssocDecl
				if p, n := _AssocDeclAction(parser, pos); n == nil {
					goto fail21
				} else {
					node20 = *n
					pos = p
				}
				label3 = append(label3, node20)
				continue
			fail21:
				pos = pos19
				break
			}
			labels[3] = parser.text[pos17:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			goto fail
		}
		pos++
		node = func(
			start, end int, b *[]*Var, ds []*AssocDecl, name Ident, w *[]Wc) Item {
			return Item(&Trait{Name: name, Binder: vars(b), Where: wcs(w), Assocs: ds, L: l(parser, start, end)})
		}(
			start0, pos, label1, label3, label0, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AssocDeclAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _AssocDecl, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "type" !IdRune name:Ident bs:Bounds? _ ";"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "type"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "type" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 4
	// !IdRune
	{
		pos2 := pos
		perr4 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// bs:Bounds?
	{
		pos6 := pos
		// Bounds?
		{
			pos8 := pos
			// Bounds
			if !_accept(parser, _BoundsAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok10
		fail9:
			pos = pos8
		ok10:
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ";"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _AssocDecl, start, pos, perr)
fail:
	return _memoize(parser, _AssocDecl, start, -1, perr)
}

func _AssocDeclFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _AssocDecl, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "AssocDecl",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _AssocDecl}
	// action
	// _ "type" !IdRune name:Ident bs:Bounds? _ ";"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "type"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "type" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"type\"",
			})
		}
		goto fail
	}
	pos += 4
	// !IdRune
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// bs:Bounds?
	{
		pos6 := pos
		// Bounds?
		{
			pos8 := pos
			// Bounds
			if !_fail(parser, _BoundsFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok10
		fail9:
			pos = pos8
		ok10:
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ";"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\";\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _AssocDeclAction(parser *_Parser, start int) (int, **AssocDecl) {
	var labels [2]string
	use(labels)
	var label0 Ident
	var label1 *[]*TraitRef
	dp := parser.deltaPos[start][_AssocDecl]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _AssocDecl}
	n := parser.act[key]
	if n != nil {
		n := n.(*AssocDecl)
		return start + int(dp-1), &n
	}
	var node *AssocDecl
	pos := start
	// action
	{
		start0 := pos
		// _ "type" !IdRune name:Ident bs:Bounds? _ ";"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "type"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "type" {
			goto fail
		}
		pos += 4
		// !IdRune
		{
			pos3 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// name:Ident
		{
			pos6 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// bs:Bounds?
		{
			pos7 := pos
			// Bounds?
			{
				pos9 := pos
				label1 = new([]*TraitRef)
				// Bounds
				if p, n := _BoundsAction(parser, pos); n == nil {
					goto fail10
				} else {
					*label1 = *n
					pos = p
				}
				goto ok11
			fail10:
				label1 = nil
				pos = pos9
			ok11:
			}
			labels[1] = parser.text[pos7:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ";"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
			goto fail
		}
		pos++
		node = func(
			start, end int, bs *[]*TraitRef, name Ident) *AssocDecl {
			return &AssocDecl{Name: name, Bounds: traitRefs(bs), L: l(parser, start, end)}
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _BoundsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Bounds, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ ":" _ "[" trs:TraitRefs _ "]" {…}/_ ":" _ "[" _ "]" {…}
	{
		pos3 := pos
		// action
		// _ ":" _ "[" trs:TraitRefs _ "]"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// trs:TraitRefs
		{
			pos6 := pos
			// TraitRefs
			if !_accept(parser, _TraitRefsAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ ":" _ "[" _ "]"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail7
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail7
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail7
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos++
		goto ok0
	fail7:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Bounds, start, pos, perr)
fail:
	return _memoize(parser, _Bounds, start, -1, perr)
}

func _BoundsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Bounds, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Bounds",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Bounds}
	// _ ":" _ "[" trs:TraitRefs _ "]" {…}/_ ":" _ "[" _ "]" {…}
	{
		pos3 := pos
		// action
		// _ ":" _ "[" trs:TraitRefs _ "]"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\":\"",
				})
			}
			goto fail4
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"[\"",
				})
			}
			goto fail4
		}
		pos++
		// trs:TraitRefs
		{
			pos6 := pos
			// TraitRefs
			if !_fail(parser, _TraitRefsFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"]\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ ":" _ "[" _ "]"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail7
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\":\"",
				})
			}
			goto fail7
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail7
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"[\"",
				})
			}
			goto fail7
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail7
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"]\"",
				})
			}
			goto fail7
		}
		pos++
		goto ok0
	fail7:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _BoundsAction(parser *_Parser, start int) (int, *[]*TraitRef) {
	var labels [1]string
	use(labels)
	var label0 []*TraitRef
	dp := parser.deltaPos[start][_Bounds]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Bounds}
	n := parser.act[key]
	if n != nil {
		n := n.([]*TraitRef)
		return start + int(dp-1), &n
	}
	var node []*TraitRef
	pos := start
	// _ ":" _ "[" trs:TraitRefs _ "]" {…}/_ ":" _ "[" _ "]" {…}
	{
		pos3 := pos
		var node2 []*TraitRef
		// action
		{
			start5 := pos
			// _ ":" _ "[" trs:TraitRefs _ "]"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// ":"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
				goto fail4
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				goto fail4
			}
			pos++
			// trs:TraitRefs
			{
				pos7 := pos
				// TraitRefs
				if p, n := _TraitRefsAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				goto fail4
			}
			pos++
			node = func(
				start, end int, trs []*TraitRef) []*TraitRef {
				return []*TraitRef(trs)
			}(
				start5, pos, label0)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start9 := pos
			// _ ":" _ "[" _ "]"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail8
			} else {
				pos = p
			}
			// ":"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
				goto fail8
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail8
			} else {
				pos = p
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				goto fail8
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail8
			} else {
				pos = p
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				goto fail8
			}
			pos++
			node = func(
				start, end int, trs []*TraitRef) []*TraitRef {
				return []*TraitRef(nil)
			}(
				start9, pos, label0)
		}
		goto ok0
	fail8:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TraitRefsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _TraitRefs, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// tr:TraitRef _ "," trs:TraitRefs {…}/tr1:TraitRef (_ ",")? {…}
	{
		pos3 := pos
		// action
		// tr:TraitRef _ "," trs:TraitRefs
		// tr:TraitRef
		{
			pos6 := pos
			// TraitRef
			if !_accept(parser, _TraitRefAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// trs:TraitRefs
		{
			pos7 := pos
			// TraitRefs
			if !_accept(parser, _TraitRefsAccepts, &pos, &perr) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// tr1:TraitRef (_ ",")?
		// tr1:TraitRef
		{
			pos10 := pos
			// TraitRef
			if !_accept(parser, _TraitRefAccepts, &pos, &perr) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// (_ ",")?
		{
			pos12 := pos
			// (_ ",")
			// _ ","
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail13
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail13
			}
			pos++
			goto ok15
		fail13:
			pos = pos12
		ok15:
		}
		goto ok0
	fail8:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _TraitRefs, start, pos, perr)
fail:
	return _memoize(parser, _TraitRefs, start, -1, perr)
}

func _TraitRefsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _TraitRefs, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "TraitRefs",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _TraitRefs}
	// tr:TraitRef _ "," trs:TraitRefs {…}/tr1:TraitRef (_ ",")? {…}
	{
		pos3 := pos
		// action
		// tr:TraitRef _ "," trs:TraitRefs
		// tr:TraitRef
		{
			pos6 := pos
			// TraitRef
			if !_fail(parser, _TraitRefFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\",\"",
				})
			}
			goto fail4
		}
		pos++
		// trs:TraitRefs
		{
			pos7 := pos
			// TraitRefs
			if !_fail(parser, _TraitRefsFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// tr1:TraitRef (_ ",")?
		// tr1:TraitRef
		{
			pos10 := pos
			// TraitRef
			if !_fail(parser, _TraitRefFail, errPos, failure, &pos) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// (_ ",")?
		{
			pos12 := pos
			// (_ ",")
			// _ ","
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail13
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\",\"",
					})
				}
				goto fail13
			}
			pos++
			goto ok15
		fail13:
			pos = pos12
		ok15:
		}
		goto ok0
	fail8:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TraitRefsAction(parser *_Parser, start int) (int, *[]*TraitRef) {
	var labels [3]string
	use(labels)
	var label0 *TraitRef
	var label1 []*TraitRef
	var label2 *TraitRef
	dp := parser.deltaPos[start][_TraitRefs]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _TraitRefs}
	n := parser.act[key]
	if n != nil {
		n := n.([]*TraitRef)
		return start + int(dp-1), &n
	}
	var node []*TraitRef
	pos := start
	// tr:TraitRef _ "," trs:TraitRefs {…}/tr1:TraitRef (_ ",")? {…}
	{
		pos3 := pos
		var node2 []*TraitRef
		// action
		{
			start5 := pos
			// tr:TraitRef _ "," trs:TraitRefs
			// tr:TraitRef
			{
				pos7 := pos
				// TraitRef
				if p, n := _TraitRefAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				goto fail4
			}
			pos++
			// trs:TraitRefs
			{
				pos8 := pos
				// TraitRefs
				if p, n := _TraitRefsAction(parser, pos); n == nil {
					goto fail4
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos8:pos]
			}
			node = func(
				start, end int, tr *TraitRef, trs []*TraitRef) []*TraitRef {
				return []*TraitRef(append([]*TraitRef{tr}, trs...))
			}(
				start5, pos, label0, label1)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start10 := pos
			// tr1:TraitRef (_ ",")?
			// tr1:TraitRef
			{
				pos12 := pos
				// TraitRef
				if p, n := _TraitRefAction(parser, pos); n == nil {
					goto fail9
				} else {
					label2 = *n
					pos = p
				}
				labels[2] = parser.text[pos12:pos]
			}
			// (_ ",")?
			{
				pos14 := pos
				// (_ ",")
				// _ ","
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail15
				} else {
					pos = p
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					goto fail15
				}
				pos++
				goto ok17
			fail15:
				pos = pos14
			ok17:
			}
			node = func(
				start, end int, tr *TraitRef, tr1 *TraitRef, trs []*TraitRef) []*TraitRef {
				return []*TraitRef{tr1}
			}(
				start10, pos, label0, label2, label1)
		}
		goto ok0
	fail9:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _StructAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _Struct, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "struct" !IdRune name:Ident b:Binder? w:Where? _ "{" fs:Fields? _ "}"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "struct"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "struct" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 6
	// !IdRune
	{
		pos2 := pos
		perr4 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// b:Binder?
	{
		pos6 := pos
		// Binder?
		{
			pos8 := pos
			// Binder
			if !_accept(parser, _BinderAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok10
		fail9:
			pos = pos8
		ok10:
		}
		labels[1] = parser.text[pos6:pos]
	}
	// w:Where?
	{
		pos11 := pos
		// Where?
		{
			pos13 := pos
			// Where
			if !_accept(parser, _WhereAccepts, &pos, &perr) {
				goto fail14
			}
			goto ok15
		fail14:
			pos = pos13
		ok15:
		}
		labels[2] = parser.text[pos11:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// fs:Fields?
	{
		pos16 := pos
		// Fields?
		{
			pos18 := pos
			// Fields
			if !_accept(parser, _FieldsAccepts, &pos, &perr) {
				goto fail19
			}
			goto ok20
		fail19:
			pos = pos18
		ok20:
		}
		labels[3] = parser.text[pos16:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Struct, start, pos, perr)
fail:
	return _memoize(parser, _Struct, start, -1, perr)
}

func _StructFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _Struct, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Struct",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Struct}
	// action
	// _ "struct" !IdRune name:Ident b:Binder? w:Where? _ "{" fs:Fields? _ "}"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "struct"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "struct" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"struct\"",
			})
		}
		goto fail
	}
	pos += 6
	// !IdRune
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// b:Binder?
	{
		pos6 := pos
		// Binder?
		{
			pos8 := pos
			// Binder
			if !_fail(parser, _BinderFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok10
		fail9:
			pos = pos8
		ok10:
		}
		labels[1] = parser.text[pos6:pos]
	}
	// w:Where?
	{
		pos11 := pos
		// Where?
		{
			pos13 := pos
			// Where
			if !_fail(parser, _WhereFail, errPos, failure, &pos) {
				goto fail14
			}
			goto ok15
		fail14:
			pos = pos13
		ok15:
		}
		labels[2] = parser.text[pos11:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"{\"",
			})
		}
		goto fail
	}
	pos++
	// fs:Fields?
	{
		pos16 := pos
		// Fields?
		{
			pos18 := pos
			// Fields
			if !_fail(parser, _FieldsFail, errPos, failure, &pos) {
				goto fail19
			}
			goto ok20
		fail19:
			pos = pos18
		ok20:
		}
		labels[3] = parser.text[pos16:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"}\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _StructAction(parser *_Parser, start int) (int, *Item) {
	var labels [4]string
	use(labels)
	var label0 Ident
	var label1 *[]*Var
	var label2 *[]Wc
	var label3 *[]*Field
	dp := parser.deltaPos[start][_Struct]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Struct}
	n := parser.act[key]
	if n != nil {
		n := n.(Item)
		return start + int(dp-1), &n
	}
	var node Item
	pos := start
	// action
	{
		start0 := pos
		// _ "struct" !IdRune name:Ident b:Binder? w:Where? _ "{" fs:Fields? _ "}"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "struct"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "struct" {
			goto fail
		}
		pos += 6
		// !IdRune
		{
			pos3 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// name:Ident
		{
			pos6 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// b:Binder?
		{
			pos7 := pos
			// Binder?
			{
				pos9 := pos
				label1 = new([]*Var)
				// Binder
				if p, n := _BinderAction(parser, pos); n == nil {
					goto fail10
				} else {
					*label1 = *n
					pos = p
				}
				goto ok11
			fail10:
				label1 = nil
				pos = pos9
			ok11:
			}
			labels[1] = parser.text[pos7:pos]
		}
		// w:Where?
		{
			pos12 := pos
			// Where?
			{
				pos14 := pos
				label2 = new([]Wc)
				// Where
				if p, n := _WhereAction(parser, pos); n == nil {
					goto fail15
				} else {
					*label2 = *n
					pos = p
				}
				goto ok16
			fail15:
				label2 = nil
				pos = pos14
			ok16:
			}
			labels[2] = parser.text[pos12:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			goto fail
		}
		pos++
		// fs:Fields?
		{
			pos17 := pos
			// Fields?
			{
				pos19 := pos
				label3 = new([]*Field)
				// Fields
				if p, n := _FieldsAction(parser, pos); n == nil {
					goto fail20
				} else {
					*label3 = *n
					pos = p
				}
				goto ok21
			fail20:
				label3 = nil
				pos = pos19
			ok21:
			}
			labels[3] = parser.text[pos17:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			goto fail
		}
		pos++
		node = func(
			start, end int, b *[]*Var, fs *[]*Field, name Ident, w *[]Wc) Item {
			return Item(&Struct{Name: name, Binder: vars(b), Where: wcs(w), Fields: fields(fs), L: l(parser, start, end)})
		}(
			start0, pos, label1, label3, label0, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _FieldsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Fields, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// f:Field _ "," fs:Fields {…}/f1:Field (_ ",")? {…}
	{
		pos3 := pos
		// action
		// f:Field _ "," fs:Fields
		// f:Field
		{
			pos6 := pos
			// Field
			if !_accept(parser, _FieldAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// fs:Fields
		{
			pos7 := pos
			// Fields
			if !_accept(parser, _FieldsAccepts, &pos, &perr) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// f1:Field (_ ",")?
		// f1:Field
		{
			pos10 := pos
			// Field
			if !_accept(parser, _FieldAccepts, &pos, &perr) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// (_ ",")?
		{
			pos12 := pos
			// (_ ",")
			// _ ","
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail13
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail13
			}
			pos++
			goto ok15
		fail13:
			pos = pos12
		ok15:
		}
		goto ok0
	fail8:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Fields, start, pos, perr)
fail:
	return _memoize(parser, _Fields, start, -1, perr)
}

func _FieldsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Fields, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Fields",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Fields}
	// f:Field _ "," fs:Fields {…}/f1:Field (_ ",")? {…}
	{
		pos3 := pos
		// action
		// f:Field _ "," fs:Fields
		// f:Field
		{
			pos6 := pos
			// Field
			if !_fail(parser, _FieldFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\",\"",
				})
			}
			goto fail4
		}
		pos++
		// fs:Fields
		{
			pos7 := pos
			// Fields
			if !_fail(parser, _FieldsFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// f1:Field (_ ",")?
		// f1:Field
		{
			pos10 := pos
			// Field
			if !_fail(parser, _FieldFail, errPos, failure, &pos) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// (_ ",")?
		{
			pos12 := pos
			// (_ ",")
			// _ ","
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail13
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\",\"",
					})
				}
				goto fail13
			}
			pos++
			goto ok15
		fail13:
			pos = pos12
		ok15:
		}
		goto ok0
	fail8:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _FieldsAction(parser *_Parser, start int) (int, *[]*Field) {
	var labels [3]string
	use(labels)
	var label0 *Field
	var label1 []*Field
	var label2 *Field
	dp := parser.deltaPos[start][_Fields]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Fields}
	n := parser.act[key]
	if n != nil {
		n := n.([]*Field)
		return start + int(dp-1), &n
	}
	var node []*Field
	pos := start
	// f:Field _ "," fs:Fields {…}/f1:Field (_ ",")? {…}
	{
		pos3 := pos
		var node2 []*Field
		// action
		{
			start5 := pos
			// f:Field _ "," fs:Fields
			// f:Field
			{
				pos7 := pos
				// Field
				if p, n := _FieldAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				goto fail4
			}
			pos++
			// fs:Fields
			{
				pos8 := pos
				// Fields
				if p, n := _FieldsAction(parser, pos); n == nil {
					goto fail4
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos8:pos]
			}
			node = func(
				start, end int, f *Field, fs []*Field) []*Field {
				return []*Field(append([]*Field{f}, fs...))
			}(
				start5, pos, label0, label1)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start10 := pos
			// f1:Field (_ ",")?
			// f1:Field
			{
				pos12 := pos
				// Field
				if p, n := _FieldAction(parser, pos); n == nil {
					goto fail9
				} else {
					label2 = *n
					pos = p
				}
				labels[2] = parser.text[pos12:pos]
			}
			// (_ ",")?
			{
				pos14 := pos
				// (_ ",")
				// _ ","
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail15
				} else {
					pos = p
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					goto fail15
				}
				pos++
				goto ok17
			fail15:
				pos = pos14
			ok17:
			}
			node = func(
				start, end int, f *Field, f1 *Field, fs []*Field) []*Field {
				return []*Field{f1}
			}(
				start10, pos, label0, label2, label1)
		}
		goto ok0
	fail9:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _FieldAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Field, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// name:Ident _ ":" t:Ty
	// name:Ident
	{
		pos1 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// t:Ty
	{
		pos2 := pos
		// Ty
		if !_accept(parser, _TyAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	return _memoize(parser, _Field, start, pos, perr)
fail:
	return _memoize(parser, _Field, start, -1, perr)
}

func _FieldFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Field, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Field",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Field}
	// action
	// name:Ident _ ":" t:Ty
	// name:Ident
	{
		pos1 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\":\"",
			})
		}
		goto fail
	}
	pos++
	// t:Ty
	{
		pos2 := pos
		// Ty
		if !_fail(parser, _TyFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _FieldAction(parser *_Parser, start int) (int, **Field) {
	var labels [2]string
	use(labels)
	var label0 Ident
	var label1 Ty
	dp := parser.deltaPos[start][_Field]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Field}
	n := parser.act[key]
	if n != nil {
		n := n.(*Field)
		return start + int(dp-1), &n
	}
	var node *Field
	pos := start
	// action
	{
		start0 := pos
		// name:Ident _ ":" t:Ty
		// name:Ident
		{
			pos2 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			goto fail
		}
		pos++
		// t:Ty
		{
			pos3 := pos
			// Ty
			if p, n := _TyAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos3:pos]
		}
		node = func(
			start, end int, name Ident, t Ty) *Field {
			return &Field{Name: name, Ty: t, L: l(parser, start, end)}
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ImplAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [5]string
	use(labels)
	if dp, de, ok := _memo(parser, _Impl, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "impl" !IdRune b:Binder? tr:TraitRef _ "for" !IdRune self:Ty w:Where? _ "{" vs:AssocValue* _ "}"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "impl"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "impl" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 4
	// !IdRune
	{
		pos2 := pos
		perr4 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// b:Binder?
	{
		pos5 := pos
		// Binder?
		{
			pos7 := pos
			// Binder
			if !_accept(parser, _BinderAccepts, &pos, &perr) {
				goto fail8
			}
			goto ok9
		fail8:
			pos = pos7
		ok9:
		}
		labels[0] = parser.text[pos5:pos]
	}
	// tr:TraitRef
	{
		pos10 := pos
		// TraitRef
		if !_accept(parser, _TraitRefAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos10:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "for"
	if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "for" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 3
	// !IdRune
	{
		pos12 := pos
		perr14 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok11
		}
		pos = pos12
		perr = _max(perr14, pos)
		goto fail
	ok11:
		pos = pos12
		perr = perr14
	}
	// self:Ty
	{
		pos15 := pos
		// Ty
		if !_accept(parser, _TyAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos15:pos]
	}
	// w:Where?
	{
		pos16 := pos
		// Where?
		{
			pos18 := pos
			// Where
			if !_accept(parser, _WhereAccepts, &pos, &perr) {
				goto fail19
			}
			goto ok20
		fail19:
			pos = pos18
		ok20:
		}
		labels[3] = parser.text[pos16:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// vs:AssocValue*
	{
		pos21 := pos
		// AssocValue*
		for {
			pos23 := pos
			// AssocValue
			if !_accept(parser, _AssocValueAccepts, &pos, &perr) {
				goto fail25
			}
			continue
		fail25:
			pos = pos23
			break
		}
		labels[4] = parser.text[pos21:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Impl, start, pos, perr)
fail:
	return _memoize(parser, _Impl, start, -1, perr)
}

func _ImplFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [5]string
	use(labels)
	pos, failure := _failMemo(parser, _Impl, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Impl",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Impl}
	// action
	// _ "impl" !IdRune b:Binder? tr:TraitRef _ "for" !IdRune self:Ty w:Where? _ "{" vs:AssocValue* _ "}"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "impl"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "impl" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"impl\"",
			})
		}
		goto fail
	}
	pos += 4
	// !IdRune
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// b:Binder?
	{
		pos5 := pos
		// Binder?
		{
			pos7 := pos
			// Binder
			if !_fail(parser, _BinderFail, errPos, failure, &pos) {
				goto fail8
			}
			goto ok9
		fail8:
			pos = pos7
		ok9:
		}
		labels[0] = parser.text[pos5:pos]
	}
	// tr:TraitRef
	{
		pos10 := pos
		// TraitRef
		if !_fail(parser, _TraitRefFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos10:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "for"
	if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "for" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"for\"",
			})
		}
		goto fail
	}
	pos += 3
	// !IdRune
	{
		pos12 := pos
		nkids13 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok11
		}
		pos = pos12
		failure.Kids = failure.Kids[:nkids13]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok11:
		pos = pos12
		failure.Kids = failure.Kids[:nkids13]
	}
	// self:Ty
	{
		pos15 := pos
		// Ty
		if !_fail(parser, _TyFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos15:pos]
	}
	// w:Where?
	{
		pos16 := pos
		// Where?
		{
			pos18 := pos
			// Where
			if !_fail(parser, _WhereFail, errPos, failure, &pos) {
				goto fail19
			}
			goto ok20
		fail19:
			pos = pos18
		ok20:
		}
		labels[3] = parser.text[pos16:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"{\"",
			})
		}
		goto fail
	}
	pos++
	// vs:AssocValue*
	{
		pos21 := pos
		// AssocValue*
		for {
			pos23 := pos
			// AssocValue
			if !_fail(parser, _AssocValueFail, errPos, failure, &pos) {
				goto fail25
			}
			continue
		fail25:
			pos = pos23
			break
		}
		labels[4] = parser.text[pos21:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"}\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ImplAction(parser *_Parser, start int) (int, *Item) {
	var labels [5]string
	use(labels)
	var label0 *[]*Var
	var label1 *TraitRef
	var label2 Ty
	var label3 *[]Wc
	var label4 []*AssocValue
	dp := parser.deltaPos[start][_Impl]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Impl}
	n := parser.act[key]
	if n != nil {
		n := n.(Item)
		return start + int(dp-1), &n
	}
	var node Item
	pos := start
	// action
	{
		start0 := pos
		// _ "impl" !IdRune b:Binder? tr:TraitRef _ "for" !IdRune self:Ty w:Where? _ "{" vs:AssocValue* _ "}"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "impl"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "impl" {
			goto fail
		}
		pos += 4
		// !IdRune
		{
			pos3 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// b:Binder?
		{
			pos6 := pos
			// Binder?
			{
				pos8 := pos
				label0 = new([]*Var)
				// Binder
				if p, n := _BinderAction(parser, pos); n == nil {
					goto fail9
				} else {
					*label0 = *n
					pos = p
				}
				goto ok10
			fail9:
				label0 = nil
				pos = pos8
			ok10:
			}
			labels[0] = parser.text[pos6:pos]
		}
		// tr:TraitRef
		{
			pos11 := pos
			// TraitRef
			if p, n := _TraitRefAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos11:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "for"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "for" {
			goto fail
		}
		pos += 3
		// !IdRune
		{
			pos13 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok12
			} else {
				pos = p
			}
			pos = pos13
			goto fail
		ok12:
			pos = pos13
		}
		// self:Ty
		{
			pos16 := pos
			// Ty
			if p, n := _TyAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos16:pos]
		}
		// w:Where?
		{
			pos17 := pos
			// Where?
			{
				pos19 := pos
				label3 = new([]Wc)
				// Where
				if p, n := _WhereAction(parser, pos); n == nil {
					goto fail20
				} else {
					*label3 = *n
					pos = p
				}
				goto ok21
			fail20:
				label3 = nil
				pos = pos19
			ok21:
			}
			labels[3] = parser.text[pos17:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			goto fail
		}
		pos++
		// vs:AssocValue*
		{
			pos22 := pos
			// AssocValue*
			for {
				pos24 := pos
				var node25 *AssocValue
				// AssocValue
				if p, n := _AssocValueAction(parser, pos); n == nil {
					goto fail26
				} else {
					node25 = *n
					pos = p
				}
				label4 = append(label4, node25)
				continue
			fail26:
				pos = pos24
				break
			}
			labels[4] = parser.text[pos22:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			goto fail
		}
		pos++
		node = func(
			start, end int, b *[]*Var, self Ty, tr *TraitRef, vs []*AssocValue, w *[]Wc) Item {
			return Item(&Impl{Binder: vars(b), Trait: tr, Self: self, Where: wcs(w), Values: vs, L: l(parser, start, end)})
		}(
			start0, pos, label0, label2, label1, label4, label3)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AssocValueAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _AssocValue, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "type" !IdRune name:Ident _ "=" t:Ty _ ";"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "type"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "type" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 4
	// !IdRune
	{
		pos2 := pos
		perr4 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "="
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// t:Ty
	{
		pos6 := pos
		// Ty
		if !_accept(parser, _TyAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ";"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _AssocValue, start, pos, perr)
fail:
	return _memoize(parser, _AssocValue, start, -1, perr)
}

func _AssocValueFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _AssocValue, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "AssocValue",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _AssocValue}
	// action
	// _ "type" !IdRune name:Ident _ "=" t:Ty _ ";"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "type"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "type" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"type\"",
			})
		}
		goto fail
	}
	pos += 4
	// !IdRune
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "="
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"=\"",
			})
		}
		goto fail
	}
	pos++
	// t:Ty
	{
		pos6 := pos
		// Ty
		if !_fail(parser, _TyFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ";"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\";\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _AssocValueAction(parser *_Parser, start int) (int, **AssocValue) {
	var labels [2]string
	use(labels)
	var label0 Ident
	var label1 Ty
	dp := parser.deltaPos[start][_AssocValue]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _AssocValue}
	n := parser.act[key]
	if n != nil {
		n := n.(*AssocValue)
		return start + int(dp-1), &n
	}
	var node *AssocValue
	pos := start
	// action
	{
		start0 := pos
		// _ "type" !IdRune name:Ident _ "=" t:Ty _ ";"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "type"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "type" {
			goto fail
		}
		pos += 4
		// !IdRune
		{
			pos3 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// name:Ident
		{
			pos6 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "="
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
			goto fail
		}
		pos++
		// t:Ty
		{
			pos7 := pos
			// Ty
			if p, n := _TyAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos7:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ";"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
			goto fail
		}
		pos++
		node = func(
			start, end int, name Ident, t Ty) *AssocValue {
			return &AssocValue{Name: name, Ty: t, L: l(parser, start, end)}
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _BinderAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Binder, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ "<" vs:Vars _ ">" {…}/_ "<" _ ">" {…}
	{
		pos3 := pos
		// action
		// _ "<" vs:Vars _ ">"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "<"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// vs:Vars
		{
			pos6 := pos
			// Vars
			if !_accept(parser, _VarsAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// ">"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "<" _ ">"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail7
		}
		// "<"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail7
		}
		// ">"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos++
		goto ok0
	fail7:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Binder, start, pos, perr)
fail:
	return _memoize(parser, _Binder, start, -1, perr)
}

func _BinderFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Binder, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Binder",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Binder}
	// _ "<" vs:Vars _ ">" {…}/_ "<" _ ">" {…}
	{
		pos3 := pos
		// action
		// _ "<" vs:Vars _ ">"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "<"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"<\"",
				})
			}
			goto fail4
		}
		pos++
		// vs:Vars
		{
			pos6 := pos
			// Vars
			if !_fail(parser, _VarsFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// ">"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\">\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "<" _ ">"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail7
		}
		// "<"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"<\"",
				})
			}
			goto fail7
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail7
		}
		// ">"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\">\"",
				})
			}
			goto fail7
		}
		pos++
		goto ok0
	fail7:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _BinderAction(parser *_Parser, start int) (int, *[]*Var) {
	var labels [1]string
	use(labels)
	var label0 []*Var
	dp := parser.deltaPos[start][_Binder]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Binder}
	n := parser.act[key]
	if n != nil {
		n := n.([]*Var)
		return start + int(dp-1), &n
	}
	var node []*Var
	pos := start
	// _ "<" vs:Vars _ ">" {…}/_ "<" _ ">" {…}
	{
		pos3 := pos
		var node2 []*Var
		// action
		{
			start5 := pos
			// _ "<" vs:Vars _ ">"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "<"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
				goto fail4
			}
			pos++
			// vs:Vars
			{
				pos7 := pos
				// Vars
				if p, n := _VarsAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// ">"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
				goto fail4
			}
			pos++
			node = func(
				start, end int, vs []*Var) []*Var {
				return []*Var(vs)
			}(
				start5, pos, label0)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start9 := pos
			// _ "<" _ ">"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail8
			} else {
				pos = p
			}
			// "<"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
				goto fail8
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail8
			} else {
				pos = p
			}
			// ">"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
				goto fail8
			}
			pos++
			node = func(
				start, end int, vs []*Var) []*Var {
				return []*Var{}
			}(
				start9, pos, label0)
		}
		goto ok0
	fail8:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _VarsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Vars, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// v:Var _ "," vs:Vars {…}/v1:Var (_ ",")? {…}
	{
		pos3 := pos
		// action
		// v:Var _ "," vs:Vars
		// v:Var
		{
			pos6 := pos
			// Var
			if !_accept(parser, _VarAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// vs:Vars
		{
			pos7 := pos
			// Vars
			if !_accept(parser, _VarsAccepts, &pos, &perr) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// v1:Var (_ ",")?
		// v1:Var
		{
			pos10 := pos
			// Var
			if !_accept(parser, _VarAccepts, &pos, &perr) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// (_ ",")?
		{
			pos12 := pos
			// (_ ",")
			// _ ","
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail13
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail13
			}
			pos++
			goto ok15
		fail13:
			pos = pos12
		ok15:
		}
		goto ok0
	fail8:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Vars, start, pos, perr)
fail:
	return _memoize(parser, _Vars, start, -1, perr)
}

func _VarsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Vars, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Vars",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Vars}
	// v:Var _ "," vs:Vars {…}/v1:Var (_ ",")? {…}
	{
		pos3 := pos
		// action
		// v:Var _ "," vs:Vars
		// v:Var
		{
			pos6 := pos
			// Var
			if !_fail(parser, _VarFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\",\"",
				})
			}
			goto fail4
		}
		pos++
		// vs:Vars
		{
			pos7 := pos
			// Vars
			if !_fail(parser, _VarsFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// v1:Var (_ ",")?
		// v1:Var
		{
			pos10 := pos
			// Var
			if !_fail(parser, _VarFail, errPos, failure, &pos) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// (_ ",")?
		{
			pos12 := pos
			// (_ ",")
			// _ ","
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail13
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\",\"",
					})
				}
				goto fail13
			}
			pos++
			goto ok15
		fail13:
			pos = pos12
		ok15:
		}
		goto ok0
	fail8:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _VarsAction(parser *_Parser, start int) (int, *[]*Var) {
	var labels [3]string
	use(labels)
	var label0 *Var
	var label1 []*Var
	var label2 *Var
	dp := parser.deltaPos[start][_Vars]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Vars}
	n := parser.act[key]
	if n != nil {
		n := n.([]*Var)
		return start + int(dp-1), &n
	}
	var node []*Var
	pos := start
	// v:Var _ "," vs:Vars {…}/v1:Var (_ ",")? {…}
	{
		pos3 := pos
		var node2 []*Var
		// action
		{
			start5 := pos
			// v:Var _ "," vs:Vars
			// v:Var
			{
				pos7 := pos
				// Var
				if p, n := _VarAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				goto fail4
			}
			pos++
			// vs:Vars
			{
				pos8 := pos
				// Vars
				if p, n := _VarsAction(parser, pos); n == nil {
					goto fail4
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos8:pos]
			}
			node = func(
				start, end int, v *Var, vs []*Var) []*Var {
				return []*Var(append([]*Var{v}, vs...))
			}(
				start5, pos, label0, label1)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start10 := pos
			// v1:Var (_ ",")?
			// v1:Var
			{
				pos12 := pos
				// Var
				if p, n := _VarAction(parser, pos); n == nil {
					goto fail9
				} else {
					label2 = *n
					pos = p
				}
				labels[2] = parser.text[pos12:pos]
			}
			// (_ ",")?
			{
				pos14 := pos
				// (_ ",")
				// _ ","
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail15
				} else {
					pos = p
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					goto fail15
				}
				pos++
				goto ok17
			fail15:
				pos = pos14
			ok17:
			}
			node = func(
				start, end int, v *Var, v1 *Var, vs []*Var) []*Var {
				return []*Var{v1}
			}(
				start10, pos, label0, label2, label1)
		}
		goto ok0
	fail9:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _VarAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Var, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ kind:("ty"/"lt") !IdRune name:Ident
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// kind:("ty"/"lt")
	{
		pos1 := pos
		// ("ty"/"lt")
		// "ty"/"lt"
		{
			pos5 := pos
			// "ty"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ty" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos += 2
			goto ok2
		fail6:
			pos = pos5
			// "lt"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "lt" {
				perr = _max(perr, pos)
				goto fail7
			}
			pos += 2
			goto ok2
		fail7:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !IdRune
	{
		pos9 := pos
		perr11 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok8
		}
		pos = pos9
		perr = _max(perr11, pos)
		goto fail
	ok8:
		pos = pos9
		perr = perr11
	}
	// name:Ident
	{
		pos12 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos12:pos]
	}
	return _memoize(parser, _Var, start, pos, perr)
fail:
	return _memoize(parser, _Var, start, -1, perr)
}

func _VarFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Var, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Var",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Var}
	// action
	// _ kind:("ty"/"lt") !IdRune name:Ident
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// kind:("ty"/"lt")
	{
		pos1 := pos
		// ("ty"/"lt")
		// "ty"/"lt"
		{
			pos5 := pos
			// "ty"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ty" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"ty\"",
					})
				}
				goto fail6
			}
			pos += 2
			goto ok2
		fail6:
			pos = pos5
			// "lt"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "lt" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"lt\"",
					})
				}
				goto fail7
			}
			pos += 2
			goto ok2
		fail7:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !IdRune
	{
		pos9 := pos
		nkids10 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok8
		}
		pos = pos9
		failure.Kids = failure.Kids[:nkids10]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok8:
		pos = pos9
		failure.Kids = failure.Kids[:nkids10]
	}
	// name:Ident
	{
		pos12 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos12:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _VarAction(parser *_Parser, start int) (int, **Var) {
	var labels [2]string
	use(labels)
	var label0 string
	var label1 Ident
	dp := parser.deltaPos[start][_Var]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Var}
	n := parser.act[key]
	if n != nil {
		n := n.(*Var)
		return start + int(dp-1), &n
	}
	var node *Var
	pos := start
	// action
	{
		start0 := pos
		// _ kind:("ty"/"lt") !IdRune name:Ident
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// kind:("ty"/"lt")
		{
			pos2 := pos
			// ("ty"/"lt")
			// "ty"/"lt"
			{
				pos6 := pos
				var node5 string
				// "ty"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ty" {
					goto fail7
				}
				label0 = parser.text[pos:pos+2]
				pos += 2
				goto ok3
			fail7:
				label0 = node5
				pos = pos6
				// "lt"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "lt" {
					goto fail8
				}
				label0 = parser.text[pos:pos+2]
				pos += 2
				goto ok3
			fail8:
				label0 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !IdRune
		{
			pos10 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok9
			} else {
				pos = p
			}
			pos = pos10
			goto fail
		ok9:
			pos = pos10
		}
		// name:Ident
		{
			pos13 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos13:pos]
		}
		node = func(
			start, end int, kind string, name Ident) *Var {
			return &Var{Kind: kind, Name: name, L: l(parser, start, end)}
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _WhereAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Where, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "where" !IdRune w0:WhereWc ws:(_ "," w1:WhereWc {…})* (_ ",")?
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "where"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "where" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 5
	// !IdRune
	{
		pos2 := pos
		perr4 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// w0:WhereWc
	{
		pos5 := pos
		// WhereWc
		if !_accept(parser, _WhereWcAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// ws:(_ "," w1:WhereWc {…})*
	{
		pos6 := pos
		// (_ "," w1:WhereWc {…})*
		for {
			pos8 := pos
			// (_ "," w1:WhereWc {…})
			// action
			// _ "," w1:WhereWc
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail10
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail10
			}
			pos++
			// w1:WhereWc
			{
				pos12 := pos
				// WhereWc
				if !_accept(parser, _WhereWcAccepts, &pos, &perr) {
					goto fail10
				}
				labels[1] = parser.text[pos12:pos]
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[2] = parser.text[pos6:pos]
	}
	// (_ ",")?
	{
		pos14 := pos
		// (_ ",")
		// _ ","
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail15
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			perr = _max(perr, pos)
			goto fail15
		}
		pos++
		goto ok17
	fail15:
		pos = pos14
	ok17:
	}
	return _memoize(parser, _Where, start, pos, perr)
fail:
	return _memoize(parser, _Where, start, -1, perr)
}

func _WhereFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Where, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Where",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Where}
	// action
	// _ "where" !IdRune w0:WhereWc ws:(_ "," w1:WhereWc {…})* (_ ",")?
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "where"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "where" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"where\"",
			})
		}
		goto fail
	}
	pos += 5
	// !IdRune
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// w0:WhereWc
	{
		pos5 := pos
		// WhereWc
		if !_fail(parser, _WhereWcFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// ws:(_ "," w1:WhereWc {…})*
	{
		pos6 := pos
		// (_ "," w1:WhereWc {…})*
		for {
			pos8 := pos
			// (_ "," w1:WhereWc {…})
			// action
			// _ "," w1:WhereWc
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail10
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\",\"",
					})
				}
				goto fail10
			}
			pos++
			// w1:WhereWc
			{
				pos12 := pos
				// WhereWc
				if !_fail(parser, _WhereWcFail, errPos, failure, &pos) {
					goto fail10
				}
				labels[1] = parser.text[pos12:pos]
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[2] = parser.text[pos6:pos]
	}
	// (_ ",")?
	{
		pos14 := pos
		// (_ ",")
		// _ ","
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail15
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\",\"",
				})
			}
			goto fail15
		}
		pos++
		goto ok17
	fail15:
		pos = pos14
	ok17:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _WhereAction(parser *_Parser, start int) (int, *[]Wc) {
	var labels [3]string
	use(labels)
	var label0 Wc
	var label1 Wc
	var label2 []Wc
	dp := parser.deltaPos[start][_Where]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Where}
	n := parser.act[key]
	if n != nil {
		n := n.([]Wc)
		return start + int(dp-1), &n
	}
	var node []Wc
	pos := start
	// action
	{
		start0 := pos
		// _ "where" !IdRune w0:WhereWc ws:(_ "," w1:WhereWc {…})* (_ ",")?
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "where"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "where" {
			goto fail
		}
		pos += 5
		// !IdRune
		{
			pos3 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// w0:WhereWc
		{
			pos6 := pos
			// WhereWc
			if p, n := _WhereWcAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// ws:(_ "," w1:WhereWc {…})*
		{
			pos7 := pos
			// (_ "," w1:WhereWc {…})*
			for {
				pos9 := pos
				var node10 Wc
				// (_ "," w1:WhereWc {…})
				// action
				{
					start12 := pos
					// _ "," w1:WhereWc
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail11
					} else {
						pos = p
					}
					// ","
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
						goto fail11
					}
					pos++
					// w1:WhereWc
					{
						pos14 := pos
						// WhereWc
						if p, n := _WhereWcAction(parser, pos); n == nil {
							goto fail11
						} else {
							label1 = *n
							pos = p
						}
						labels[1] = parser.text[pos14:pos]
					}
					node10 = func(
						start, end int, w0 Wc, w1 Wc) Wc {
						return Wc(w1)
					}(
						start12, pos, label0, label1)
				}
				label2 = append(label2, node10)
				continue
			fail11:
				pos = pos9
				break
			}
			labels[2] = parser.text[pos7:pos]
		}
		// (_ ",")?
		{
			pos16 := pos
			// (_ ",")
			// _ ","
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail17
			} else {
				pos = p
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				goto fail17
			}
			pos++
			goto ok19
		fail17:
			pos = pos16
		ok19:
		}
		node = func(
			start, end int, w0 Wc, w1 Wc, ws []Wc) []Wc {
			return []Wc(append([]Wc{w0}, ws...))
		}(
			start0, pos, label0, label1, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _QueryAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _Query, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// fa:ForAllBinder? ex:ExistsBinder? hs:WcBlock _ "=>" gs:WcBlock
	// fa:ForAllBinder?
	{
		pos1 := pos
		// ForAllBinder?
		{
			pos3 := pos
			// ForAllBinder
			if !_accept(parser, _ForAllBinderAccepts, &pos, &perr) {
				goto fail4
			}
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ex:ExistsBinder?
	{
		pos6 := pos
		// ExistsBinder?
		{
			pos8 := pos
			// ExistsBinder
			if !_accept(parser, _ExistsBinderAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok10
		fail9:
			pos = pos8
		ok10:
		}
		labels[1] = parser.text[pos6:pos]
	}
	// hs:WcBlock
	{
		pos11 := pos
		// WcBlock
		if !_accept(parser, _WcBlockAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos11:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "=>"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "=>" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 2
	// gs:WcBlock
	{
		pos12 := pos
		// WcBlock
		if !_accept(parser, _WcBlockAccepts, &pos, &perr) {
			goto fail
		}
		labels[3] = parser.text[pos12:pos]
	}
	return _memoize(parser, _Query, start, pos, perr)
fail:
	return _memoize(parser, _Query, start, -1, perr)
}

func _QueryFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _Query, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Query",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Query}
	// action
	// fa:ForAllBinder? ex:ExistsBinder? hs:WcBlock _ "=>" gs:WcBlock
	// fa:ForAllBinder?
	{
		pos1 := pos
		// ForAllBinder?
		{
			pos3 := pos
			// ForAllBinder
			if !_fail(parser, _ForAllBinderFail, errPos, failure, &pos) {
				goto fail4
			}
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ex:ExistsBinder?
	{
		pos6 := pos
		// ExistsBinder?
		{
			pos8 := pos
			// ExistsBinder
			if !_fail(parser, _ExistsBinderFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok10
		fail9:
			pos = pos8
		ok10:
		}
		labels[1] = parser.text[pos6:pos]
	}
	// hs:WcBlock
	{
		pos11 := pos
		// WcBlock
		if !_fail(parser, _WcBlockFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos11:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "=>"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "=>" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"=>\"",
			})
		}
		goto fail
	}
	pos += 2
	// gs:WcBlock
	{
		pos12 := pos
		// WcBlock
		if !_fail(parser, _WcBlockFail, errPos, failure, &pos) {
			goto fail
		}
		labels[3] = parser.text[pos12:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _QueryAction(parser *_Parser, start int) (int, **Query) {
	var labels [4]string
	use(labels)
	var label0 *[]*Var
	var label1 *[]*Var
	var label2 []Wc
	var label3 []Wc
	dp := parser.deltaPos[start][_Query]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Query}
	n := parser.act[key]
	if n != nil {
		n := n.(*Query)
		return start + int(dp-1), &n
	}
	var node *Query
	pos := start
	// action
	{
		start0 := pos
		// fa:ForAllBinder? ex:ExistsBinder? hs:WcBlock _ "=>" gs:WcBlock
		// fa:ForAllBinder?
		{
			pos2 := pos
			// ForAllBinder?
			{
				pos4 := pos
				label0 = new([]*Var)
				// ForAllBinder
				if p, n := _ForAllBinderAction(parser, pos); n == nil {
					goto fail5
				} else {
					*label0 = *n
					pos = p
				}
				goto ok6
			fail5:
				label0 = nil
				pos = pos4
			ok6:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// ex:ExistsBinder?
		{
			pos7 := pos
			// ExistsBinder?
			{
				pos9 := pos
				label1 = new([]*Var)
				// ExistsBinder
				if p, n := _ExistsBinderAction(parser, pos); n == nil {
					goto fail10
				} else {
					*label1 = *n
					pos = p
				}
				goto ok11
			fail10:
				label1 = nil
				pos = pos9
			ok11:
			}
			labels[1] = parser.text[pos7:pos]
		}
		// hs:WcBlock
		{
			pos12 := pos
			// WcBlock
			if p, n := _WcBlockAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos12:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "=>"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "=>" {
			goto fail
		}
		pos += 2
		// gs:WcBlock
		{
			pos13 := pos
			// WcBlock
			if p, n := _WcBlockAction(parser, pos); n == nil {
				goto fail
			} else {
				label3 = *n
				pos = p
			}
			labels[3] = parser.text[pos13:pos]
		}
		node = func(
			start, end int, ex *[]*Var, fa *[]*Var, gs []Wc, hs []Wc) *Query {
			return &Query{ForAll: vars(fa), Exists: vars(ex), Assumptions: hs, Goals: gs, L: l(parser, start, end)}
		}(
			start0, pos, label1, label0, label3, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ForAllBinderAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _ForAllBinder, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ ("forall"/"for") !IdRune b:Binder
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ("forall"/"for")
	// "forall"/"for"
	{
		pos4 := pos
		// "forall"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "forall" {
			perr = _max(perr, pos)
			goto fail5
		}
		pos += 6
		goto ok1
	fail5:
		pos = pos4
		// "for"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "for" {
			perr = _max(perr, pos)
			goto fail6
		}
		pos += 3
		goto ok1
	fail6:
		pos = pos4
		goto fail
	ok1:
	}
	// !IdRune
	{
		pos8 := pos
		perr10 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok7
		}
		pos = pos8
		perr = _max(perr10, pos)
		goto fail
	ok7:
		pos = pos8
		perr = perr10
	}
	// b:Binder
	{
		pos11 := pos
		// Binder
		if !_accept(parser, _BinderAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos11:pos]
	}
	return _memoize(parser, _ForAllBinder, start, pos, perr)
fail:
	return _memoize(parser, _ForAllBinder, start, -1, perr)
}

func _ForAllBinderFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _ForAllBinder, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "ForAllBinder",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _ForAllBinder}
	// action
	// _ ("forall"/"for") !IdRune b:Binder
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ("forall"/"for")
	// "forall"/"for"
	{
		pos4 := pos
		// "forall"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "forall" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"forall\"",
				})
			}
			goto fail5
		}
		pos += 6
		goto ok1
	fail5:
		pos = pos4
		// "for"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "for" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"for\"",
				})
			}
			goto fail6
		}
		pos += 3
		goto ok1
	fail6:
		pos = pos4
		goto fail
	ok1:
	}
	// !IdRune
	{
		pos8 := pos
		nkids9 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok7
		}
		pos = pos8
		failure.Kids = failure.Kids[:nkids9]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok7:
		pos = pos8
		failure.Kids = failure.Kids[:nkids9]
	}
	// b:Binder
	{
		pos11 := pos
		// Binder
		if !_fail(parser, _BinderFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos11:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ForAllBinderAction(parser *_Parser, start int) (int, *[]*Var) {
	var labels [1]string
	use(labels)
	var label0 []*Var
	dp := parser.deltaPos[start][_ForAllBinder]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _ForAllBinder}
	n := parser.act[key]
	if n != nil {
		n := n.([]*Var)
		return start + int(dp-1), &n
	}
	var node []*Var
	pos := start
	// action
	{
		start0 := pos
		// _ ("forall"/"for") !IdRune b:Binder
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ("forall"/"for")
		// "forall"/"for"
		{
			pos5 := pos
			// "forall"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "forall" {
				goto fail6
			}
			pos += 6
			goto ok2
		fail6:
			pos = pos5
			// "for"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "for" {
				goto fail7
			}
			pos += 3
			goto ok2
		fail7:
			pos = pos5
			goto fail
		ok2:
		}
		// !IdRune
		{
			pos9 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok8
			} else {
				pos = p
			}
			pos = pos9
			goto fail
		ok8:
			pos = pos9
		}
		// b:Binder
		{
			pos12 := pos
			// Binder
			if p, n := _BinderAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos12:pos]
		}
		node = func(
			start, end int, b []*Var) []*Var {
			return []*Var(b)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ExistsBinderAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _ExistsBinder, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "exists" !IdRune b:Binder
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "exists"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "exists" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 6
	// !IdRune
	{
		pos2 := pos
		perr4 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// b:Binder
	{
		pos5 := pos
		// Binder
		if !_accept(parser, _BinderAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _ExistsBinder, start, pos, perr)
fail:
	return _memoize(parser, _ExistsBinder, start, -1, perr)
}

func _ExistsBinderFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _ExistsBinder, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "ExistsBinder",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _ExistsBinder}
	// action
	// _ "exists" !IdRune b:Binder
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "exists"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "exists" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"exists\"",
			})
		}
		goto fail
	}
	pos += 6
	// !IdRune
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// b:Binder
	{
		pos5 := pos
		// Binder
		if !_fail(parser, _BinderFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ExistsBinderAction(parser *_Parser, start int) (int, *[]*Var) {
	var labels [1]string
	use(labels)
	var label0 []*Var
	dp := parser.deltaPos[start][_ExistsBinder]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _ExistsBinder}
	n := parser.act[key]
	if n != nil {
		n := n.([]*Var)
		return start + int(dp-1), &n
	}
	var node []*Var
	pos := start
	// action
	{
		start0 := pos
		// _ "exists" !IdRune b:Binder
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "exists"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "exists" {
			goto fail
		}
		pos += 6
		// !IdRune
		{
			pos3 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// b:Binder
		{
			pos6 := pos
			// Binder
			if p, n := _BinderAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, b []*Var) []*Var {
			return []*Var(b)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _WcBlockAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _WcBlock, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ "{" w0:Wc ws:(_ "," w1:Wc {…})* (_ ",")? _ "}" {…}/_ "{" _ "}" {…}
	{
		pos3 := pos
		// action
		// _ "{" w0:Wc ws:(_ "," w1:Wc {…})* (_ ",")? _ "}"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// w0:Wc
		{
			pos6 := pos
			// Wc
			if !_accept(parser, _WcAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// ws:(_ "," w1:Wc {…})*
		{
			pos7 := pos
			// (_ "," w1:Wc {…})*
			for {
				pos9 := pos
				// (_ "," w1:Wc {…})
				// action
				// _ "," w1:Wc
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail11
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					perr = _max(perr, pos)
					goto fail11
				}
				pos++
				// w1:Wc
				{
					pos13 := pos
					// Wc
					if !_accept(parser, _WcAccepts, &pos, &perr) {
						goto fail11
					}
					labels[1] = parser.text[pos13:pos]
				}
				continue
			fail11:
				pos = pos9
				break
			}
			labels[2] = parser.text[pos7:pos]
		}
		// (_ ",")?
		{
			pos15 := pos
			// (_ ",")
			// _ ","
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail16
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail16
			}
			pos++
			goto ok18
		fail16:
			pos = pos15
		ok18:
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "{" _ "}"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail19
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			perr = _max(perr, pos)
			goto fail19
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail19
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			perr = _max(perr, pos)
			goto fail19
		}
		pos++
		goto ok0
	fail19:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _WcBlock, start, pos, perr)
fail:
	return _memoize(parser, _WcBlock, start, -1, perr)
}

func _WcBlockFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _WcBlock, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "WcBlock",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _WcBlock}
	// _ "{" w0:Wc ws:(_ "," w1:Wc {…})* (_ ",")? _ "}" {…}/_ "{" _ "}" {…}
	{
		pos3 := pos
		// action
		// _ "{" w0:Wc ws:(_ "," w1:Wc {…})* (_ ",")? _ "}"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"{\"",
				})
			}
			goto fail4
		}
		pos++
		// w0:Wc
		{
			pos6 := pos
			// Wc
			if !_fail(parser, _WcFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// ws:(_ "," w1:Wc {…})*
		{
			pos7 := pos
			// (_ "," w1:Wc {…})*
			for {
				pos9 := pos
				// (_ "," w1:Wc {…})
				// action
				// _ "," w1:Wc
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail11
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\",\"",
						})
					}
					goto fail11
				}
				pos++
				// w1:Wc
				{
					pos13 := pos
					// Wc
					if !_fail(parser, _WcFail, errPos, failure, &pos) {
						goto fail11
					}
					labels[1] = parser.text[pos13:pos]
				}
				continue
			fail11:
				pos = pos9
				break
			}
			labels[2] = parser.text[pos7:pos]
		}
		// (_ ",")?
		{
			pos15 := pos
			// (_ ",")
			// _ ","
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail16
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\",\"",
					})
				}
				goto fail16
			}
			pos++
			goto ok18
		fail16:
			pos = pos15
		ok18:
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"}\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "{" _ "}"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail19
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"{\"",
				})
			}
			goto fail19
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail19
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"}\"",
				})
			}
			goto fail19
		}
		pos++
		goto ok0
	fail19:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _WcBlockAction(parser *_Parser, start int) (int, *[]Wc) {
	var labels [3]string
	use(labels)
	var label0 Wc
	var label1 Wc
	var label2 []Wc
	dp := parser.deltaPos[start][_WcBlock]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _WcBlock}
	n := parser.act[key]
	if n != nil {
		n := n.([]Wc)
		return start + int(dp-1), &n
	}
	var node []Wc
	pos := start
	// _ "{" w0:Wc ws:(_ "," w1:Wc {…})* (_ ",")? _ "}" {…}/_ "{" _ "}" {…}
	{
		pos3 := pos
		var node2 []Wc
		// action
		{
			start5 := pos
			// _ "{" w0:Wc ws:(_ "," w1:Wc {…})* (_ ",")? _ "}"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "{"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
				goto fail4
			}
			pos++
			// w0:Wc
			{
				pos7 := pos
				// Wc
				if p, n := _WcAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// ws:(_ "," w1:Wc {…})*
			{
				pos8 := pos
				// (_ "," w1:Wc {…})*
				for {
					pos10 := pos
					var node11 Wc
					// (_ "," w1:Wc {…})
					// action
					{
						start13 := pos
						// _ "," w1:Wc
						// _
						if p, n := __Action(parser, pos); n == nil {
							goto fail12
						} else {
							pos = p
						}
						// ","
						if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
							goto fail12
						}
						pos++
						// w1:Wc
						{
							pos15 := pos
							// Wc
							if p, n := _WcAction(parser, pos); n == nil {
								goto fail12
							} else {
								label1 = *n
								pos = p
							}
							labels[1] = parser.text[pos15:pos]
						}
						node11 = func(
							start, end int, w0 Wc, w1 Wc) Wc {
							return Wc(w1)
						}(
							start13, pos, label0, label1)
					}
					label2 = append(label2, node11)
					continue
				fail12:
					pos = pos10
					break
				}
				labels[2] = parser.text[pos8:pos]
			}
			// (_ ",")?
			{
				pos17 := pos
				// (_ ",")
				// _ ","
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail18
				} else {
					pos = p
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					goto fail18
				}
				pos++
				goto ok20
			fail18:
				pos = pos17
			ok20:
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "}"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
				goto fail4
			}
			pos++
			node = func(
				start, end int, w0 Wc, w1 Wc, ws []Wc) []Wc {
				return []Wc(append([]Wc{w0}, ws...))
			}(
				start5, pos, label0, label1, label2)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start22 := pos
			// _ "{" _ "}"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail21
			} else {
				pos = p
			}
			// "{"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
				goto fail21
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail21
			} else {
				pos = p
			}
			// "}"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
				goto fail21
			}
			pos++
			node = func(
				start, end int, w0 Wc, w1 Wc, ws []Wc) []Wc {
				return []Wc{}
			}(
				start22, pos, label0, label1, label2)
		}
		goto ok0
	fail21:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _WcAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [7]string
	use(labels)
	if dp, de, ok := _memo(parser, _Wc, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// b:ForAllBinder w:Wc {…}/b1:ExistsBinder w1:Wc {…}/hs:WcBlock _ "=>" w2:Wc {…}/ws:WcBlock {…}/AtomWc
	{
		pos3 := pos
		// action
		// b:ForAllBinder w:Wc
		// b:ForAllBinder
		{
			pos6 := pos
			// ForAllBinder
			if !_accept(parser, _ForAllBinderAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// w:Wc
		{
			pos7 := pos
			// Wc
			if !_accept(parser, _WcAccepts, &pos, &perr) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// b1:ExistsBinder w1:Wc
		// b1:ExistsBinder
		{
			pos10 := pos
			// ExistsBinder
			if !_accept(parser, _ExistsBinderAccepts, &pos, &perr) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// w1:Wc
		{
			pos11 := pos
			// Wc
			if !_accept(parser, _WcAccepts, &pos, &perr) {
				goto fail8
			}
			labels[3] = parser.text[pos11:pos]
		}
		goto ok0
	fail8:
		pos = pos3
		// action
		// hs:WcBlock _ "=>" w2:Wc
		// hs:WcBlock
		{
			pos14 := pos
			// WcBlock
			if !_accept(parser, _WcBlockAccepts, &pos, &perr) {
				goto fail12
			}
			labels[4] = parser.text[pos14:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail12
		}
		// "=>"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "=>" {
			perr = _max(perr, pos)
			goto fail12
		}
		pos += 2
		// w2:Wc
		{
			pos15 := pos
			// Wc
			if !_accept(parser, _WcAccepts, &pos, &perr) {
				goto fail12
			}
			labels[5] = parser.text[pos15:pos]
		}
		goto ok0
	fail12:
		pos = pos3
		// action
		// ws:WcBlock
		{
			pos17 := pos
			// WcBlock
			if !_accept(parser, _WcBlockAccepts, &pos, &perr) {
				goto fail16
			}
			labels[6] = parser.text[pos17:pos]
		}
		goto ok0
	fail16:
		pos = pos3
		// AtomWc
		if !_accept(parser, _AtomWcAccepts, &pos, &perr) {
			goto fail18
		}
		goto ok0
	fail18:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Wc, start, pos, perr)
fail:
	return _memoize(parser, _Wc, start, -1, perr)
}

func _WcFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [7]string
	use(labels)
	pos, failure := _failMemo(parser, _Wc, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Wc",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Wc}
	// b:ForAllBinder w:Wc {…}/b1:ExistsBinder w1:Wc {…}/hs:WcBlock _ "=>" w2:Wc {…}/ws:WcBlock {…}/AtomWc
	{
		pos3 := pos
		// action
		// b:ForAllBinder w:Wc
		// b:ForAllBinder
		{
			pos6 := pos
			// ForAllBinder
			if !_fail(parser, _ForAllBinderFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// w:Wc
		{
			pos7 := pos
			// Wc
			if !_fail(parser, _WcFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// b1:ExistsBinder w1:Wc
		// b1:ExistsBinder
		{
			pos10 := pos
			// ExistsBinder
			if !_fail(parser, _ExistsBinderFail, errPos, failure, &pos) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// w1:Wc
		{
			pos11 := pos
			// Wc
			if !_fail(parser, _WcFail, errPos, failure, &pos) {
				goto fail8
			}
			labels[3] = parser.text[pos11:pos]
		}
		goto ok0
	fail8:
		pos = pos3
		// action
		// hs:WcBlock _ "=>" w2:Wc
		// hs:WcBlock
		{
			pos14 := pos
			// WcBlock
			if !_fail(parser, _WcBlockFail, errPos, failure, &pos) {
				goto fail12
			}
			labels[4] = parser.text[pos14:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail12
		}
		// "=>"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "=>" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"=>\"",
				})
			}
			goto fail12
		}
		pos += 2
		// w2:Wc
		{
			pos15 := pos
			// Wc
			if !_fail(parser, _WcFail, errPos, failure, &pos) {
				goto fail12
			}
			labels[5] = parser.text[pos15:pos]
		}
		goto ok0
	fail12:
		pos = pos3
		// action
		// ws:WcBlock
		{
			pos17 := pos
			// WcBlock
			if !_fail(parser, _WcBlockFail, errPos, failure, &pos) {
				goto fail16
			}
			labels[6] = parser.text[pos17:pos]
		}
		goto ok0
	fail16:
		pos = pos3
		// AtomWc
		if !_fail(parser, _AtomWcFail, errPos, failure, &pos) {
			goto fail18
		}
		goto ok0
	fail18:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _WcAction(parser *_Parser, start int) (int, *Wc) {
	var labels [7]string
	use(labels)
	var label0 []*Var
	var label1 Wc
	var label2 []*Var
	var label3 Wc
	var label4 []Wc
	var label5 Wc
	var label6 []Wc
	dp := parser.deltaPos[start][_Wc]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Wc}
	n := parser.act[key]
	if n != nil {
		n := n.(Wc)
		return start + int(dp-1), &n
	}
	var node Wc
	pos := start
	// b:ForAllBinder w:Wc {…}/b1:ExistsBinder w1:Wc {…}/hs:WcBlock _ "=>" w2:Wc {…}/ws:WcBlock {…}/AtomWc
	{
		pos3 := pos
		var node2 Wc
		// action
		{
			start5 := pos
			// b:ForAllBinder w:Wc
			// b:ForAllBinder
			{
				pos7 := pos
				// ForAllBinder
				if p, n := _ForAllBinderAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// w:Wc
			{
				pos8 := pos
				// Wc
				if p, n := _WcAction(parser, pos); n == nil {
					goto fail4
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos8:pos]
			}
			node = func(
				start, end int, b []*Var, w Wc) Wc {
				return Wc(&ForAll{Binder: b, Body: w, L: l(parser, start, end)})
			}(
				start5, pos, label0, label1)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start10 := pos
			// b1:ExistsBinder w1:Wc
			// b1:ExistsBinder
			{
				pos12 := pos
				// ExistsBinder
				if p, n := _ExistsBinderAction(parser, pos); n == nil {
					goto fail9
				} else {
					label2 = *n
					pos = p
				}
				labels[2] = parser.text[pos12:pos]
			}
			// w1:Wc
			{
				pos13 := pos
				// Wc
				if p, n := _WcAction(parser, pos); n == nil {
					goto fail9
				} else {
					label3 = *n
					pos = p
				}
				labels[3] = parser.text[pos13:pos]
			}
			node = func(
				start, end int, b []*Var, b1 []*Var, w Wc, w1 Wc) Wc {
				return Wc(&Exists{Binder: b1, Body: w1, L: l(parser, start, end)})
			}(
				start10, pos, label0, label2, label1, label3)
		}
		goto ok0
	fail9:
		node = node2
		pos = pos3
		// action
		{
			start15 := pos
			// hs:WcBlock _ "=>" w2:Wc
			// hs:WcBlock
			{
				pos17 := pos
				// WcBlock
				if p, n := _WcBlockAction(parser, pos); n == nil {
					goto fail14
				} else {
					label4 = *n
					pos = p
				}
				labels[4] = parser.text[pos17:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail14
			} else {
				pos = p
			}
			// "=>"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "=>" {
				goto fail14
			}
			pos += 2
			// w2:Wc
			{
				pos18 := pos
				// Wc
				if p, n := _WcAction(parser, pos); n == nil {
					goto fail14
				} else {
					label5 = *n
					pos = p
				}
				labels[5] = parser.text[pos18:pos]
			}
			node = func(
				start, end int, b []*Var, b1 []*Var, hs []Wc, w Wc, w1 Wc, w2 Wc) Wc {
				return Wc(&Implies{Hyps: hs, Body: w2, L: l(parser, start, end)})
			}(
				start15, pos, label0, label2, label4, label1, label3, label5)
		}
		goto ok0
	fail14:
		node = node2
		pos = pos3
		// action
		{
			start20 := pos
			// ws:WcBlock
			{
				pos21 := pos
				// WcBlock
				if p, n := _WcBlockAction(parser, pos); n == nil {
					goto fail19
				} else {
					label6 = *n
					pos = p
				}
				labels[6] = parser.text[pos21:pos]
			}
			node = func(
				start, end int, b []*Var, b1 []*Var, hs []Wc, w Wc, w1 Wc, w2 Wc, ws []Wc) Wc {
				return Wc(&Conj{Wcs: ws, L: l(parser, start, end)})
			}(
				start20, pos, label0, label2, label4, label1, label3, label5, label6)
		}
		goto ok0
	fail19:
		node = node2
		pos = pos3
		// AtomWc
		if p, n := _AtomWcAction(parser, pos); n == nil {
			goto fail22
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail22:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _WhereWcAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _WhereWc, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// b:ForAllBinder w:WhereWc {…}/b1:ExistsBinder w1:WhereWc {…}/AtomWc
	{
		pos3 := pos
		// action
		// b:ForAllBinder w:WhereWc
		// b:ForAllBinder
		{
			pos6 := pos
			// ForAllBinder
			if !_accept(parser, _ForAllBinderAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// w:WhereWc
		{
			pos7 := pos
			// WhereWc
			if !_accept(parser, _WhereWcAccepts, &pos, &perr) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// b1:ExistsBinder w1:WhereWc
		// b1:ExistsBinder
		{
			pos10 := pos
			// ExistsBinder
			if !_accept(parser, _ExistsBinderAccepts, &pos, &perr) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// w1:WhereWc
		{
			pos11 := pos
			// WhereWc
			if !_accept(parser, _WhereWcAccepts, &pos, &perr) {
				goto fail8
			}
			labels[3] = parser.text[pos11:pos]
		}
		goto ok0
	fail8:
		pos = pos3
		// AtomWc
		if !_accept(parser, _AtomWcAccepts, &pos, &perr) {
			goto fail12
		}
		goto ok0
	fail12:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _WhereWc, start, pos, perr)
fail:
	return _memoize(parser, _WhereWc, start, -1, perr)
}

func _WhereWcFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _WhereWc, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "WhereWc",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _WhereWc}
	// b:ForAllBinder w:WhereWc {…}/b1:ExistsBinder w1:WhereWc {…}/AtomWc
	{
		pos3 := pos
		// action
		// b:ForAllBinder w:WhereWc
		// b:ForAllBinder
		{
			pos6 := pos
			// ForAllBinder
			if !_fail(parser, _ForAllBinderFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// w:WhereWc
		{
			pos7 := pos
			// WhereWc
			if !_fail(parser, _WhereWcFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// b1:ExistsBinder w1:WhereWc
		// b1:ExistsBinder
		{
			pos10 := pos
			// ExistsBinder
			if !_fail(parser, _ExistsBinderFail, errPos, failure, &pos) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		// w1:WhereWc
		{
			pos11 := pos
			// WhereWc
			if !_fail(parser, _WhereWcFail, errPos, failure, &pos) {
				goto fail8
			}
			labels[3] = parser.text[pos11:pos]
		}
		goto ok0
	fail8:
		pos = pos3
		// AtomWc
		if !_fail(parser, _AtomWcFail, errPos, failure, &pos) {
			goto fail12
		}
		goto ok0
	fail12:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _WhereWcAction(parser *_Parser, start int) (int, *Wc) {
	var labels [4]string
	use(labels)
	var label0 []*Var
	var label1 Wc
	var label2 []*Var
	var label3 Wc
	dp := parser.deltaPos[start][_WhereWc]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _WhereWc}
	n := parser.act[key]
	if n != nil {
		n := n.(Wc)
		return start + int(dp-1), &n
	}
	var node Wc
	pos := start
	// b:ForAllBinder w:WhereWc {…}/b1:ExistsBinder w1:WhereWc {…}/AtomWc
	{
		pos3 := pos
		var node2 Wc
		// action
		{
			start5 := pos
			// b:ForAllBinder w:WhereWc
			// b:ForAllBinder
			{
				pos7 := pos
				// ForAllBinder
				if p, n := _ForAllBinderAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// w:WhereWc
			{
				pos8 := pos
				// WhereWc
				if p, n := _WhereWcAction(parser, pos); n == nil {
					goto fail4
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos8:pos]
			}
			node = func(
				start, end int, b []*Var, w Wc) Wc {
				return Wc(&ForAll{Binder: b, Body: w, L: l(parser, start, end)})
			}(
				start5, pos, label0, label1)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start10 := pos
			// b1:ExistsBinder w1:WhereWc
			// b1:ExistsBinder
			{
				pos12 := pos
				// ExistsBinder
				if p, n := _ExistsBinderAction(parser, pos); n == nil {
					goto fail9
				} else {
					label2 = *n
					pos = p
				}
				labels[2] = parser.text[pos12:pos]
			}
			// w1:WhereWc
			{
				pos13 := pos
				// WhereWc
				if p, n := _WhereWcAction(parser, pos); n == nil {
					goto fail9
				} else {
					label3 = *n
					pos = p
				}
				labels[3] = parser.text[pos13:pos]
			}
			node = func(
				start, end int, b []*Var, b1 []*Var, w Wc, w1 Wc) Wc {
				return Wc(&Exists{Binder: b1, Body: w1, L: l(parser, start, end)})
			}(
				start10, pos, label0, label2, label1, label3)
		}
		goto ok0
	fail9:
		node = node2
		pos = pos3
		// AtomWc
		if p, n := _AtomWcAction(parser, pos); n == nil {
			goto fail14
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail14:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AtomWcAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [10]string
	use(labels)
	if dp, de, ok := _memo(parser, _AtomWc, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// name:Ident _ "(" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ")" {…}/a:AliasTy _ "=>" t2:Ty {…}/t3:Ty _ ":" tr:TraitRef {…}/t4:Ty _ "=" t5:Ty {…}
	{
		pos3 := pos
		// action
		// name:Ident _ "(" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ")"
		// name:Ident
		{
			pos6 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// t0:Ty
		{
			pos7 := pos
			// Ty
			if !_accept(parser, _TyAccepts, &pos, &perr) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		// ts:(_ "," t1:Ty {…})*
		{
			pos8 := pos
			// (_ "," t1:Ty {…})*
			for {
				pos10 := pos
				// (_ "," t1:Ty {…})
				// action
				// _ "," t1:Ty
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail12
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					perr = _max(perr, pos)
					goto fail12
				}
				pos++
				// t1:Ty
				{
					pos14 := pos
					// Ty
					if !_accept(parser, _TyAccepts, &pos, &perr) {
						goto fail12
					}
					labels[2] = parser.text[pos14:pos]
				}
				continue
			fail12:
				pos = pos10
				break
			}
			labels[3] = parser.text[pos8:pos]
		}
		// (_ ",")?
		{
			pos16 := pos
			// (_ ",")
			// _ ","
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail17
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail17
			}
			pos++
			goto ok19
		fail17:
			pos = pos16
		ok19:
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// a:AliasTy _ "=>" t2:Ty
		// a:AliasTy
		{
			pos22 := pos
			// AliasTy
			if !_accept(parser, _AliasTyAccepts, &pos, &perr) {
				goto fail20
			}
			labels[4] = parser.text[pos22:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail20
		}
		// "=>"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "=>" {
			perr = _max(perr, pos)
			goto fail20
		}
		pos += 2
		// t2:Ty
		{
			pos23 := pos
			// Ty
			if !_accept(parser, _TyAccepts, &pos, &perr) {
				goto fail20
			}
			labels[5] = parser.text[pos23:pos]
		}
		goto ok0
	fail20:
		pos = pos3
		// action
		// t3:Ty _ ":" tr:TraitRef
		// t3:Ty
		{
			pos26 := pos
			// Ty
			if !_accept(parser, _TyAccepts, &pos, &perr) {
				goto fail24
			}
			labels[6] = parser.text[pos26:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail24
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			perr = _max(perr, pos)
			goto fail24
		}
		pos++
		// tr:TraitRef
		{
			pos27 := pos
			// TraitRef
			if !_accept(parser, _TraitRefAccepts, &pos, &perr) {
				goto fail24
			}
			labels[7] = parser.text[pos27:pos]
		}
		goto ok0
	fail24:
		pos = pos3
		// action
		// t4:Ty _ "=" t5:Ty
		// t4:Ty
		{
			pos30 := pos
			// Ty
			if !_accept(parser, _TyAccepts, &pos, &perr) {
				goto fail28
			}
			labels[8] = parser.text[pos30:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail28
		}
		// "="
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
			perr = _max(perr, pos)
			goto fail28
		}
		pos++
		// t5:Ty
		{
			pos31 := pos
			// Ty
			if !_accept(parser, _TyAccepts, &pos, &perr) {
				goto fail28
			}
			labels[9] = parser.text[pos31:pos]
		}
		goto ok0
	fail28:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _AtomWc, start, pos, perr)
fail:
	return _memoize(parser, _AtomWc, start, -1, perr)
}

func _AtomWcFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [10]string
	use(labels)
	pos, failure := _failMemo(parser, _AtomWc, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "AtomWc",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _AtomWc}
	// name:Ident _ "(" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ")" {…}/a:AliasTy _ "=>" t2:Ty {…}/t3:Ty _ ":" tr:TraitRef {…}/t4:Ty _ "=" t5:Ty {…}
	{
		pos3 := pos
		// action
		// name:Ident _ "(" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ")"
		// name:Ident
		{
			pos6 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"(\"",
				})
			}
			goto fail4
		}
		pos++
		// t0:Ty
		{
			pos7 := pos
			// Ty
			if !_fail(parser, _TyFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		// ts:(_ "," t1:Ty {…})*
		{
			pos8 := pos
			// (_ "," t1:Ty {…})*
			for {
				pos10 := pos
				// (_ "," t1:Ty {…})
				// action
				// _ "," t1:Ty
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail12
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\",\"",
						})
					}
					goto fail12
				}
				pos++
				// t1:Ty
				{
					pos14 := pos
					// Ty
					if !_fail(parser, _TyFail, errPos, failure, &pos) {
						goto fail12
					}
					labels[2] = parser.text[pos14:pos]
				}
				continue
			fail12:
				pos = pos10
				break
			}
			labels[3] = parser.text[pos8:pos]
		}
		// (_ ",")?
		{
			pos16 := pos
			// (_ ",")
			// _ ","
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail17
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\",\"",
					})
				}
				goto fail17
			}
			pos++
			goto ok19
		fail17:
			pos = pos16
		ok19:
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\")\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// a:AliasTy _ "=>" t2:Ty
		// a:AliasTy
		{
			pos22 := pos
			// AliasTy
			if !_fail(parser, _AliasTyFail, errPos, failure, &pos) {
				goto fail20
			}
			labels[4] = parser.text[pos22:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail20
		}
		// "=>"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "=>" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"=>\"",
				})
			}
			goto fail20
		}
		pos += 2
		// t2:Ty
		{
			pos23 := pos
			// Ty
			if !_fail(parser, _TyFail, errPos, failure, &pos) {
				goto fail20
			}
			labels[5] = parser.text[pos23:pos]
		}
		goto ok0
	fail20:
		pos = pos3
		// action
		// t3:Ty _ ":" tr:TraitRef
		// t3:Ty
		{
			pos26 := pos
			// Ty
			if !_fail(parser, _TyFail, errPos, failure, &pos) {
				goto fail24
			}
			labels[6] = parser.text[pos26:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail24
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\":\"",
				})
			}
			goto fail24
		}
		pos++
		// tr:TraitRef
		{
			pos27 := pos
			// TraitRef
			if !_fail(parser, _TraitRefFail, errPos, failure, &pos) {
				goto fail24
			}
			labels[7] = parser.text[pos27:pos]
		}
		goto ok0
	fail24:
		pos = pos3
		// action
		// t4:Ty _ "=" t5:Ty
		// t4:Ty
		{
			pos30 := pos
			// Ty
			if !_fail(parser, _TyFail, errPos, failure, &pos) {
				goto fail28
			}
			labels[8] = parser.text[pos30:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail28
		}
		// "="
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"=\"",
				})
			}
			goto fail28
		}
		pos++
		// t5:Ty
		{
			pos31 := pos
			// Ty
			if !_fail(parser, _TyFail, errPos, failure, &pos) {
				goto fail28
			}
			labels[9] = parser.text[pos31:pos]
		}
		goto ok0
	fail28:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _AtomWcAction(parser *_Parser, start int) (int, *Wc) {
	var labels [10]string
	use(labels)
	var label0 Ident
	var label1 Ty
	var label2 Ty
	var label3 []Ty
	var label4 *AliasTy
	var label5 Ty
	var label6 Ty
	var label7 *TraitRef
	var label8 Ty
	var label9 Ty
	dp := parser.deltaPos[start][_AtomWc]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _AtomWc}
	n := parser.act[key]
	if n != nil {
		n := n.(Wc)
		return start + int(dp-1), &n
	}
	var node Wc
	pos := start
	// name:Ident _ "(" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ")" {…}/a:AliasTy _ "=>" t2:Ty {…}/t3:Ty _ ":" tr:TraitRef {…}/t4:Ty _ "=" t5:Ty {…}
	{
		pos3 := pos
		var node2 Wc
		// action
		{
			start5 := pos
			// name:Ident _ "(" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ")"
			// name:Ident
			{
				pos7 := pos
				// Ident
				if p, n := _IdentAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "("
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
				goto fail4
			}
			pos++
			// t0:Ty
			{
				pos8 := pos
				// Ty
				if p, n := _TyAction(parser, pos); n == nil {
					goto fail4
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos8:pos]
			}
			// ts:(_ "," t1:Ty {…})*
			{
				pos9 := pos
				// (_ "," t1:Ty {…})*
				for {
					pos11 := pos
					var node12 Ty
					// (_ "," t1:Ty {…})
					// action
					{
						start14 := pos
						// _ "," t1:Ty
						// _
						if p, n := __Action(parser, pos); n == nil {
							goto fail13
						} else {
							pos = p
						}
						// ","
						if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
							goto fail13
						}
						pos++
						// t1:Ty
						{
							pos16 := pos
							// Ty
							if p, n := _TyAction(parser, pos); n == nil {
								goto fail13
							} else {
								label2 = *n
								pos = p
							}
							labels[2] = parser.text[pos16:pos]
						}
						node12 = func(
							start, end int, name Ident, t0 Ty, t1 Ty) Ty {
							return Ty(t1)
						}(
							start14, pos, label0, label1, label2)
					}
					label3 = append(label3, node12)
					continue
				fail13:
					pos = pos11
					break
				}
				labels[3] = parser.text[pos9:pos]
			}
			// (_ ",")?
			{
				pos18 := pos
				// (_ ",")
				// _ ","
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail19
				} else {
					pos = p
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					goto fail19
				}
				pos++
				goto ok21
			fail19:
				pos = pos18
			ok21:
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// ")"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
				goto fail4
			}
			pos++
			node = func(
				start, end int, name Ident, t0 Ty, t1 Ty, ts []Ty) Wc {
				return Wc(parenBound(name, append([]Ty{t0}, ts...), l(parser, start, end)))
			}(
				start5, pos, label0, label1, label2, label3)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start23 := pos
			// a:AliasTy _ "=>" t2:Ty
			// a:AliasTy
			{
				pos25 := pos
				// AliasTy
				if p, n := _AliasTyAction(parser, pos); n == nil {
					goto fail22
				} else {
					label4 = *n
					pos = p
				}
				labels[4] = parser.text[pos25:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail22
			} else {
				pos = p
			}
			// "=>"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "=>" {
				goto fail22
			}
			pos += 2
			// t2:Ty
			{
				pos26 := pos
				// Ty
				if p, n := _TyAction(parser, pos); n == nil {
					goto fail22
				} else {
					label5 = *n
					pos = p
				}
				labels[5] = parser.text[pos26:pos]
			}
			node = func(
				start, end int, a *AliasTy, name Ident, t0 Ty, t1 Ty, t2 Ty, ts []Ty) Wc {
				return Wc(&Normalizes{Alias: a, Ty: t2, L: l(parser, start, end)})
			}(
				start23, pos, label4, label0, label1, label2, label5, label3)
		}
		goto ok0
	fail22:
		node = node2
		pos = pos3
		// action
		{
			start28 := pos
			// t3:Ty _ ":" tr:TraitRef
			// t3:Ty
			{
				pos30 := pos
				// Ty
				if p, n := _TyAction(parser, pos); n == nil {
					goto fail27
				} else {
					label6 = *n
					pos = p
				}
				labels[6] = parser.text[pos30:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail27
			} else {
				pos = p
			}
			// ":"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
				goto fail27
			}
			pos++
			// tr:TraitRef
			{
				pos31 := pos
				// TraitRef
				if p, n := _TraitRefAction(parser, pos); n == nil {
					goto fail27
				} else {
					label7 = *n
					pos = p
				}
				labels[7] = parser.text[pos31:pos]
			}
			node = func(
				start, end int, a *AliasTy, name Ident, t0 Ty, t1 Ty, t2 Ty, t3 Ty, tr *TraitRef, ts []Ty) Wc {
				return Wc(&Bound{Self: t3, Trait: tr, L: l(parser, start, end)})
			}(
				start28, pos, label4, label0, label1, label2, label5, label6, label7, label3)
		}
		goto ok0
	fail27:
		node = node2
		pos = pos3
		// action
		{
			start33 := pos
			// t4:Ty _ "=" t5:Ty
			// t4:Ty
			{
				pos35 := pos
				// Ty
				if p, n := _TyAction(parser, pos); n == nil {
					goto fail32
				} else {
					label8 = *n
					pos = p
				}
				labels[8] = parser.text[pos35:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail32
			} else {
				pos = p
			}
			// "="
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
				goto fail32
			}
			pos++
			// t5:Ty
			{
				pos36 := pos
				// Ty
				if p, n := _TyAction(parser, pos); n == nil {
					goto fail32
				} else {
					label9 = *n
					pos = p
				}
				labels[9] = parser.text[pos36:pos]
			}
			node = func(
				start, end int, a *AliasTy, name Ident, t0 Ty, t1 Ty, t2 Ty, t3 Ty, t4 Ty, t5 Ty, tr *TraitRef, ts []Ty) Wc {
				return Wc(&Eq{A: t4, B: t5, L: l(parser, start, end)})
			}(
				start33, pos, label4, label0, label1, label2, label5, label6, label8, label9, label7, label3)
		}
		goto ok0
	fail32:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TraitRefAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _TraitRef, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// name:Ident args:TyArgs?
	// name:Ident
	{
		pos1 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// args:TyArgs?
	{
		pos2 := pos
		// TyArgs?
		{
			pos4 := pos
			// TyArgs
			if !_accept(parser, _TyArgsAccepts, &pos, &perr) {
				goto fail5
			}
			goto ok6
		fail5:
			pos = pos4
		ok6:
		}
		labels[1] = parser.text[pos2:pos]
	}
	return _memoize(parser, _TraitRef, start, pos, perr)
fail:
	return _memoize(parser, _TraitRef, start, -1, perr)
}

func _TraitRefFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _TraitRef, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "TraitRef",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _TraitRef}
	// action
	// name:Ident args:TyArgs?
	// name:Ident
	{
		pos1 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// args:TyArgs?
	{
		pos2 := pos
		// TyArgs?
		{
			pos4 := pos
			// TyArgs
			if !_fail(parser, _TyArgsFail, errPos, failure, &pos) {
				goto fail5
			}
			goto ok6
		fail5:
			pos = pos4
		ok6:
		}
		labels[1] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TraitRefAction(parser *_Parser, start int) (int, **TraitRef) {
	var labels [2]string
	use(labels)
	var label0 Ident
	var label1 *[]Ty
	dp := parser.deltaPos[start][_TraitRef]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _TraitRef}
	n := parser.act[key]
	if n != nil {
		n := n.(*TraitRef)
		return start + int(dp-1), &n
	}
	var node *TraitRef
	pos := start
	// action
	{
		start0 := pos
		// name:Ident args:TyArgs?
		// name:Ident
		{
			pos2 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// args:TyArgs?
		{
			pos3 := pos
			// TyArgs?
			{
				pos5 := pos
				label1 = new([]Ty)
				// TyArgs
				if p, n := _TyArgsAction(parser, pos); n == nil {
					goto fail6
				} else {
					*label1 = *n
					pos = p
				}
				goto ok7
			fail6:
				label1 = nil
				pos = pos5
			ok7:
			}
			labels[1] = parser.text[pos3:pos]
		}
		node = func(
			start, end int, args *[]Ty, name Ident) *TraitRef {
			return &TraitRef{Name: name, Args: tys(args), L: l(parser, start, end)}
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TyArgsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _TyArgs, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ "<" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ">" {…}/_ "<" _ ">" {…}
	{
		pos3 := pos
		// action
		// _ "<" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ">"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "<"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// t0:Ty
		{
			pos6 := pos
			// Ty
			if !_accept(parser, _TyAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// ts:(_ "," t1:Ty {…})*
		{
			pos7 := pos
			// (_ "," t1:Ty {…})*
			for {
				pos9 := pos
				// (_ "," t1:Ty {…})
				// action
				// _ "," t1:Ty
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail11
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					perr = _max(perr, pos)
					goto fail11
				}
				pos++
				// t1:Ty
				{
					pos13 := pos
					// Ty
					if !_accept(parser, _TyAccepts, &pos, &perr) {
						goto fail11
					}
					labels[1] = parser.text[pos13:pos]
				}
				continue
			fail11:
				pos = pos9
				break
			}
			labels[2] = parser.text[pos7:pos]
		}
		// (_ ",")?
		{
			pos15 := pos
			// (_ ",")
			// _ ","
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail16
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail16
			}
			pos++
			goto ok18
		fail16:
			pos = pos15
		ok18:
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// ">"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "<" _ ">"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail19
		}
		// "<"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
			perr = _max(perr, pos)
			goto fail19
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail19
		}
		// ">"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
			perr = _max(perr, pos)
			goto fail19
		}
		pos++
		goto ok0
	fail19:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _TyArgs, start, pos, perr)
fail:
	return _memoize(parser, _TyArgs, start, -1, perr)
}

func _TyArgsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _TyArgs, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "TyArgs",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _TyArgs}
	// _ "<" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ">" {…}/_ "<" _ ">" {…}
	{
		pos3 := pos
		// action
		// _ "<" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ">"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "<"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"<\"",
				})
			}
			goto fail4
		}
		pos++
		// t0:Ty
		{
			pos6 := pos
			// Ty
			if !_fail(parser, _TyFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// ts:(_ "," t1:Ty {…})*
		{
			pos7 := pos
			// (_ "," t1:Ty {…})*
			for {
				pos9 := pos
				// (_ "," t1:Ty {…})
				// action
				// _ "," t1:Ty
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail11
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\",\"",
						})
					}
					goto fail11
				}
				pos++
				// t1:Ty
				{
					pos13 := pos
					// Ty
					if !_fail(parser, _TyFail, errPos, failure, &pos) {
						goto fail11
					}
					labels[1] = parser.text[pos13:pos]
				}
				continue
			fail11:
				pos = pos9
				break
			}
			labels[2] = parser.text[pos7:pos]
		}
		// (_ ",")?
		{
			pos15 := pos
			// (_ ",")
			// _ ","
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail16
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\",\"",
					})
				}
				goto fail16
			}
			pos++
			goto ok18
		fail16:
			pos = pos15
		ok18:
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// ">"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\">\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "<" _ ">"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail19
		}
		// "<"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"<\"",
				})
			}
			goto fail19
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail19
		}
		// ">"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\">\"",
				})
			}
			goto fail19
		}
		pos++
		goto ok0
	fail19:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TyArgsAction(parser *_Parser, start int) (int, *[]Ty) {
	var labels [3]string
	use(labels)
	var label0 Ty
	var label1 Ty
	var label2 []Ty
	dp := parser.deltaPos[start][_TyArgs]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _TyArgs}
	n := parser.act[key]
	if n != nil {
		n := n.([]Ty)
		return start + int(dp-1), &n
	}
	var node []Ty
	pos := start
	// _ "<" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ">" {…}/_ "<" _ ">" {…}
	{
		pos3 := pos
		var node2 []Ty
		// action
		{
			start5 := pos
			// _ "<" t0:Ty ts:(_ "," t1:Ty {…})* (_ ",")? _ ">"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "<"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
				goto fail4
			}
			pos++
			// t0:Ty
			{
				pos7 := pos
				// Ty
				if p, n := _TyAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// ts:(_ "," t1:Ty {…})*
			{
				pos8 := pos
				// (_ "," t1:Ty {…})*
				for {
					pos10 := pos
					var node11 Ty
					// (_ "," t1:Ty {…})
					// action
					{
						start13 := pos
						// _ "," t1:Ty
						// _
						if p, n := __Action(parser, pos); n == nil {
							goto fail12
						} else {
							pos = p
						}
						// ","
						if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
							goto fail12
						}
						pos++
						// t1:Ty
						{
							pos15 := pos
							// Ty
							if p, n := _TyAction(parser, pos); n == nil {
								goto fail12
							} else {
								label1 = *n
								pos = p
							}
							labels[1] = parser.text[pos15:pos]
						}
						node11 = func(
							start, end int, t0 Ty, t1 Ty) Ty {
							return Ty(t1)
						}(
							start13, pos, label0, label1)
					}
					label2 = append(label2, node11)
					continue
				fail12:
					pos = pos10
					break
				}
				labels[2] = parser.text[pos8:pos]
			}
			// (_ ",")?
			{
				pos17 := pos
				// (_ ",")
				// _ ","
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail18
				} else {
					pos = p
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					goto fail18
				}
				pos++
				goto ok20
			fail18:
				pos = pos17
			ok20:
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// ">"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
				goto fail4
			}
			pos++
			node = func(
				start, end int, t0 Ty, t1 Ty, ts []Ty) []Ty {
				return []Ty(append([]Ty{t0}, ts...))
			}(
				start5, pos, label0, label1, label2)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start22 := pos
			// _ "<" _ ">"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail21
			} else {
				pos = p
			}
			// "<"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
				goto fail21
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail21
			} else {
				pos = p
			}
			// ">"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
				goto fail21
			}
			pos++
			node = func(
				start, end int, t0 Ty, t1 Ty, ts []Ty) []Ty {
				return []Ty(nil)
			}(
				start22, pos, label0, label1, label2)
		}
		goto ok0
	fail21:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TyAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Ty, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// Lifetime/a:AliasTy {…}/NamedTy
	{
		pos3 := pos
		// Lifetime
		if !_accept(parser, _LifetimeAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// a:AliasTy
		{
			pos6 := pos
			// AliasTy
			if !_accept(parser, _AliasTyAccepts, &pos, &perr) {
				goto fail5
			}
			labels[0] = parser.text[pos6:pos]
		}
		goto ok0
	fail5:
		pos = pos3
		// NamedTy
		if !_accept(parser, _NamedTyAccepts, &pos, &perr) {
			goto fail7
		}
		goto ok0
	fail7:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Ty, start, pos, perr)
fail:
	return _memoize(parser, _Ty, start, -1, perr)
}

func _TyFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Ty, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Ty",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Ty}
	// Lifetime/a:AliasTy {…}/NamedTy
	{
		pos3 := pos
		// Lifetime
		if !_fail(parser, _LifetimeFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// a:AliasTy
		{
			pos6 := pos
			// AliasTy
			if !_fail(parser, _AliasTyFail, errPos, failure, &pos) {
				goto fail5
			}
			labels[0] = parser.text[pos6:pos]
		}
		goto ok0
	fail5:
		pos = pos3
		// NamedTy
		if !_fail(parser, _NamedTyFail, errPos, failure, &pos) {
			goto fail7
		}
		goto ok0
	fail7:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TyAction(parser *_Parser, start int) (int, *Ty) {
	var labels [1]string
	use(labels)
	var label0 *AliasTy
	dp := parser.deltaPos[start][_Ty]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Ty}
	n := parser.act[key]
	if n != nil {
		n := n.(Ty)
		return start + int(dp-1), &n
	}
	var node Ty
	pos := start
	// Lifetime/a:AliasTy {…}/NamedTy
	{
		pos3 := pos
		var node2 Ty
		// Lifetime
		if p, n := _LifetimeAction(parser, pos); n == nil {
			goto fail4
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start6 := pos
			// a:AliasTy
			{
				pos7 := pos
				// AliasTy
				if p, n := _AliasTyAction(parser, pos); n == nil {
					goto fail5
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			node = func(
				start, end int, a *AliasTy) Ty {
				return Ty(a)
			}(
				start6, pos, label0)
		}
		goto ok0
	fail5:
		node = node2
		pos = pos3
		// NamedTy
		if p, n := _NamedTyAction(parser, pos); n == nil {
			goto fail8
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail8:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AliasTyAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _AliasTy, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "<" self:Ty _ "as" !IdRune tr:TraitRef _ ">" _ "::" item:Ident
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "<"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// self:Ty
	{
		pos1 := pos
		// Ty
		if !_accept(parser, _TyAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "as"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "as" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 2
	// !IdRune
	{
		pos3 := pos
		perr5 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok2
		}
		pos = pos3
		perr = _max(perr5, pos)
		goto fail
	ok2:
		pos = pos3
		perr = perr5
	}
	// tr:TraitRef
	{
		pos6 := pos
		// TraitRef
		if !_accept(parser, _TraitRefAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ">"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "::"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "::" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 2
	// item:Ident
	{
		pos7 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	return _memoize(parser, _AliasTy, start, pos, perr)
fail:
	return _memoize(parser, _AliasTy, start, -1, perr)
}

func _AliasTyFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _AliasTy, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "AliasTy",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _AliasTy}
	// action
	// _ "<" self:Ty _ "as" !IdRune tr:TraitRef _ ">" _ "::" item:Ident
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "<"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"<\"",
			})
		}
		goto fail
	}
	pos++
	// self:Ty
	{
		pos1 := pos
		// Ty
		if !_fail(parser, _TyFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "as"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "as" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"as\"",
			})
		}
		goto fail
	}
	pos += 2
	// !IdRune
	{
		pos3 := pos
		nkids4 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok2
		}
		pos = pos3
		failure.Kids = failure.Kids[:nkids4]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok2:
		pos = pos3
		failure.Kids = failure.Kids[:nkids4]
	}
	// tr:TraitRef
	{
		pos6 := pos
		// TraitRef
		if !_fail(parser, _TraitRefFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ">"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\">\"",
			})
		}
		goto fail
	}
	pos++
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "::"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "::" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"::\"",
			})
		}
		goto fail
	}
	pos += 2
	// item:Ident
	{
		pos7 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _AliasTyAction(parser *_Parser, start int) (int, **AliasTy) {
	var labels [3]string
	use(labels)
	var label0 Ty
	var label1 *TraitRef
	var label2 Ident
	dp := parser.deltaPos[start][_AliasTy]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _AliasTy}
	n := parser.act[key]
	if n != nil {
		n := n.(*AliasTy)
		return start + int(dp-1), &n
	}
	var node *AliasTy
	pos := start
	// action
	{
		start0 := pos
		// _ "<" self:Ty _ "as" !IdRune tr:TraitRef _ ">" _ "::" item:Ident
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "<"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
			goto fail
		}
		pos++
		// self:Ty
		{
			pos2 := pos
			// Ty
			if p, n := _TyAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "as"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "as" {
			goto fail
		}
		pos += 2
		// !IdRune
		{
			pos4 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok3
			} else {
				pos = p
			}
			pos = pos4
			goto fail
		ok3:
			pos = pos4
		}
		// tr:TraitRef
		{
			pos7 := pos
			// TraitRef
			if p, n := _TraitRefAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos7:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ">"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
			goto fail
		}
		pos++
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "::"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "::" {
			goto fail
		}
		pos += 2
		// item:Ident
		{
			pos8 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos8:pos]
		}
		node = func(
			start, end int, item Ident, self Ty, tr *TraitRef) *AliasTy {
			return &AliasTy{Self: self, Trait: tr, Item: item, L: l(parser, start, end)}
		}(
			start0, pos, label2, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _NamedTyAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _NamedTy, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// name:Ident args:TyArgs?
	// name:Ident
	{
		pos1 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// args:TyArgs?
	{
		pos2 := pos
		// TyArgs?
		{
			pos4 := pos
			// TyArgs
			if !_accept(parser, _TyArgsAccepts, &pos, &perr) {
				goto fail5
			}
			goto ok6
		fail5:
			pos = pos4
		ok6:
		}
		labels[1] = parser.text[pos2:pos]
	}
	return _memoize(parser, _NamedTy, start, pos, perr)
fail:
	return _memoize(parser, _NamedTy, start, -1, perr)
}

func _NamedTyFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _NamedTy, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "NamedTy",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _NamedTy}
	// action
	// name:Ident args:TyArgs?
	// name:Ident
	{
		pos1 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// args:TyArgs?
	{
		pos2 := pos
		// TyArgs?
		{
			pos4 := pos
			// TyArgs
			if !_fail(parser, _TyArgsFail, errPos, failure, &pos) {
				goto fail5
			}
			goto ok6
		fail5:
			pos = pos4
		ok6:
		}
		labels[1] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _NamedTyAction(parser *_Parser, start int) (int, *Ty) {
	var labels [2]string
	use(labels)
	var label0 Ident
	var label1 *[]Ty
	dp := parser.deltaPos[start][_NamedTy]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _NamedTy}
	n := parser.act[key]
	if n != nil {
		n := n.(Ty)
		return start + int(dp-1), &n
	}
	var node Ty
	pos := start
	// action
	{
		start0 := pos
		// name:Ident args:TyArgs?
		// name:Ident
		{
			pos2 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// args:TyArgs?
		{
			pos3 := pos
			// TyArgs?
			{
				pos5 := pos
				label1 = new([]Ty)
				// TyArgs
				if p, n := _TyArgsAction(parser, pos); n == nil {
					goto fail6
				} else {
					*label1 = *n
					pos = p
				}
				goto ok7
			fail6:
				label1 = nil
				pos = pos5
			ok7:
			}
			labels[1] = parser.text[pos3:pos]
		}
		node = func(
			start, end int, args *[]Ty, name Ident) Ty {
			return Ty(&NamedTy{Name: name, Args: tys(args), L: l(parser, start, end)})
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _LifetimeAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Lifetime, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "'" name:IdName
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "'"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// name:IdName
	{
		pos1 := pos
		// IdName
		if !_accept(parser, _IdNameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Lifetime, start, pos, perr)
fail:
	return _memoize(parser, _Lifetime, start, -1, perr)
}

func _LifetimeFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Lifetime, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Lifetime",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Lifetime}
	// action
	// _ "'" name:IdName
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "'"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"'\"",
			})
		}
		goto fail
	}
	pos++
	// name:IdName
	{
		pos1 := pos
		// IdName
		if !_fail(parser, _IdNameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _LifetimeAction(parser *_Parser, start int) (int, *Ty) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Lifetime]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Lifetime}
	n := parser.act[key]
	if n != nil {
		n := n.(Ty)
		return start + int(dp-1), &n
	}
	var node Ty
	pos := start
	// action
	{
		start0 := pos
		// _ "'" name:IdName
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "'"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
			goto fail
		}
		pos++
		// name:IdName
		{
			pos2 := pos
			// IdName
			if p, n := _IdNameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, name string) Ty {
			return Ty(&Lifetime{Name: name, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _IdentAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Ident, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ !Keyword name:IdName
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// !Keyword
	{
		pos2 := pos
		perr4 := perr
		// Keyword
		if !_accept(parser, _KeywordAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// name:IdName
	{
		pos5 := pos
		// IdName
		if !_accept(parser, _IdNameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _Ident, start, pos, perr)
fail:
	return _memoize(parser, _Ident, start, -1, perr)
}

func _IdentFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Ident, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Ident",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Ident}
	// action
	// _ !Keyword name:IdName
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// !Keyword
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// Keyword
		if !_fail(parser, _KeywordFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!Keyword",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// name:IdName
	{
		pos5 := pos
		// IdName
		if !_fail(parser, _IdNameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _IdentAction(parser *_Parser, start int) (int, *Ident) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Ident]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Ident}
	n := parser.act[key]
	if n != nil {
		n := n.(Ident)
		return start + int(dp-1), &n
	}
	var node Ident
	pos := start
	// action
	{
		start0 := pos
		// _ !Keyword name:IdName
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// !Keyword
		{
			pos3 := pos
			// Keyword
			if p, n := _KeywordAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// name:IdName
		{
			pos6 := pos
			// IdName
			if p, n := _IdNameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, name string) Ident {
			return Ident{Name: name, L: l(parser, start, end)}
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _IdNameAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _IdName, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [a-zA-Z_] [a-zA-Z0-9_]*
	// [a-zA-Z_]
	if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '_' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	// [a-zA-Z0-9_]*
	for {
		pos2 := pos
		// [a-zA-Z0-9_]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			perr = _max(perr, pos)
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	return _memoize(parser, _IdName, start, pos, perr)
fail:
	return _memoize(parser, _IdName, start, -1, perr)
}

func _IdNameFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _IdName, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "IdName",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _IdName}
	// [a-zA-Z_] [a-zA-Z0-9_]*
	// [a-zA-Z_]
	if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '_' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[a-zA-Z_]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	// [a-zA-Z0-9_]*
	for {
		pos2 := pos
		// [a-zA-Z0-9_]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[a-zA-Z0-9_]",
				})
			}
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _IdNameAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_IdName]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _IdName}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [a-zA-Z_] [a-zA-Z0-9_]*
	{
		var node0 string
		// [a-zA-Z_]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '_' {
			goto fail
		} else {
			node0 = parser.text[pos:pos+w]
			pos += w
		}
		node, node0 = node+node0, ""
		// [a-zA-Z0-9_]*
		for {
			pos2 := pos
			var node3 string
			// [a-zA-Z0-9_]
			if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
				goto fail4
			} else {
				node3 = parser.text[pos:pos+w]
				pos += w
			}
			node0 += node3
			continue
		fail4:
			pos = pos2
			break
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _IdRuneAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _IdRune, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [a-zA-Z0-9_]
	if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	return _memoize(parser, _IdRune, start, pos, perr)
fail:
	return _memoize(parser, _IdRune, start, -1, perr)
}

func _IdRuneFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _IdRune, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "IdRune",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _IdRune}
	// [a-zA-Z0-9_]
	if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[a-zA-Z0-9_]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _IdRuneAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_IdRune]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _IdRune}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [a-zA-Z0-9_]
	if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
		goto fail
	} else {
		node = parser.text[pos:pos+w]
		pos += w
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _KeywordAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Keyword, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// ("crate"/"trait"/"struct"/"impl"/"forall"/"for"/"exists"/"where"/"type"/"as"/"ty"/"lt") !IdRune
	// ("crate"/"trait"/"struct"/"impl"/"forall"/"for"/"exists"/"where"/"type"/"as"/"ty"/"lt")
	// "crate"/"trait"/"struct"/"impl"/"forall"/"for"/"exists"/"where"/"type"/"as"/"ty"/"lt"
	{
		pos4 := pos
		// "crate"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "crate" {
			perr = _max(perr, pos)
			goto fail5
		}
		pos += 5
		goto ok1
	fail5:
		pos = pos4
		// "trait"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "trait" {
			perr = _max(perr, pos)
			goto fail6
		}
		pos += 5
		goto ok1
	fail6:
		pos = pos4
		// "struct"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "struct" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos += 6
		goto ok1
	fail7:
		pos = pos4
		// "impl"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "impl" {
			perr = _max(perr, pos)
			goto fail8
		}
		pos += 4
		goto ok1
	fail8:
		pos = pos4
		// "forall"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "forall" {
			perr = _max(perr, pos)
			goto fail9
		}
		pos += 6
		goto ok1
	fail9:
		pos = pos4
		// "for"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "for" {
			perr = _max(perr, pos)
			goto fail10
		}
		pos += 3
		goto ok1
	fail10:
		pos = pos4
		// "exists"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "exists" {
			perr = _max(perr, pos)
			goto fail11
		}
		pos += 6
		goto ok1
	fail11:
		pos = pos4
		// "where"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "where" {
			perr = _max(perr, pos)
			goto fail12
		}
		pos += 5
		goto ok1
	fail12:
		pos = pos4
		// "type"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "type" {
			perr = _max(perr, pos)
			goto fail13
		}
		pos += 4
		goto ok1
	fail13:
		pos = pos4
		// "as"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "as" {
			perr = _max(perr, pos)
			goto fail14
		}
		pos += 2
		goto ok1
	fail14:
		pos = pos4
		// "ty"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ty" {
			perr = _max(perr, pos)
			goto fail15
		}
		pos += 2
		goto ok1
	fail15:
		pos = pos4
		// "lt"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "lt" {
			perr = _max(perr, pos)
			goto fail16
		}
		pos += 2
		goto ok1
	fail16:
		pos = pos4
		goto fail
	ok1:
	}
	// !IdRune
	{
		pos18 := pos
		perr20 := perr
		// IdRune
		if !_accept(parser, _IdRuneAccepts, &pos, &perr) {
			goto ok17
		}
		pos = pos18
		perr = _max(perr20, pos)
		goto fail
	ok17:
		pos = pos18
		perr = perr20
	}
	return _memoize(parser, _Keyword, start, pos, perr)
fail:
	return _memoize(parser, _Keyword, start, -1, perr)
}

func _KeywordFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Keyword, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Keyword",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Keyword}
	// ("crate"/"trait"/"struct"/"impl"/"forall"/"for"/"exists"/"where"/"type"/"as"/"ty"/"lt") !IdRune
	// ("crate"/"trait"/"struct"/"impl"/"forall"/"for"/"exists"/"where"/"type"/"as"/"ty"/"lt")
	// "crate"/"trait"/"struct"/"impl"/"forall"/"for"/"exists"/"where"/"type"/"as"/"ty"/"lt"
	{
		pos4 := pos
		// "crate"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "crate" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"crate\"",
				})
			}
			goto fail5
		}
		pos += 5
		goto ok1
	fail5:
		pos = pos4
		// "trait"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "trait" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"trait\"",
				})
			}
			goto fail6
		}
		pos += 5
		goto ok1
	fail6:
		pos = pos4
		// "struct"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "struct" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"struct\"",
				})
			}
			goto fail7
		}
		pos += 6
		goto ok1
	fail7:
		pos = pos4
		// "impl"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "impl" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"impl\"",
				})
			}
			goto fail8
		}
		pos += 4
		goto ok1
	fail8:
		pos = pos4
		// "forall"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "forall" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"forall\"",
				})
			}
			goto fail9
		}
		pos += 6
		goto ok1
	fail9:
		pos = pos4
		// "for"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "for" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"for\"",
				})
			}
			goto fail10
		}
		pos += 3
		goto ok1
	fail10:
		pos = pos4
		// "exists"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "exists" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"exists\"",
				})
			}
			goto fail11
		}
		pos += 6
		goto ok1
	fail11:
		pos = pos4
		// "where"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "where" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"where\"",
				})
			}
			goto fail12
		}
		pos += 5
		goto ok1
	fail12:
		pos = pos4
		// "type"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "type" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"type\"",
				})
			}
			goto fail13
		}
		pos += 4
		goto ok1
	fail13:
		pos = pos4
		// "as"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "as" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"as\"",
				})
			}
			goto fail14
		}
		pos += 2
		goto ok1
	fail14:
		pos = pos4
		// "ty"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ty" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"ty\"",
				})
			}
			goto fail15
		}
		pos += 2
		goto ok1
	fail15:
		pos = pos4
		// "lt"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "lt" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"lt\"",
				})
			}
			goto fail16
		}
		pos += 2
		goto ok1
	fail16:
		pos = pos4
		goto fail
	ok1:
	}
	// !IdRune
	{
		pos18 := pos
		nkids19 := len(failure.Kids)
		// IdRune
		if !_fail(parser, _IdRuneFail, errPos, failure, &pos) {
			goto ok17
		}
		pos = pos18
		failure.Kids = failure.Kids[:nkids19]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!IdRune",
			})
		}
		goto fail
	ok17:
		pos = pos18
		failure.Kids = failure.Kids[:nkids19]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _KeywordAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Keyword]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Keyword}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// ("crate"/"trait"/"struct"/"impl"/"forall"/"for"/"exists"/"where"/"type"/"as"/"ty"/"lt") !IdRune
	{
		var node0 string
		// ("crate"/"trait"/"struct"/"impl"/"forall"/"for"/"exists"/"where"/"type"/"as"/"ty"/"lt")
		// "crate"/"trait"/"struct"/"impl"/"forall"/"for"/"exists"/"where"/"type"/"as"/"ty"/"lt"
		{
			pos4 := pos
			var node3 string
			// "crate"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "crate" {
				goto fail5
			}
			node0 = parser.text[pos:pos+5]
			pos += 5
			goto ok1
		fail5:
			node0 = node3
			pos = pos4
			// "trait"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "trait" {
				goto fail6
			}
			node0 = parser.text[pos:pos+5]
			pos += 5
			goto ok1
		fail6:
			node0 = node3
			pos = pos4
			// "struct"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "struct" {
				goto fail7
			}
			node0 = parser.text[pos:pos+6]
			pos += 6
			goto ok1
		fail7:
			node0 = node3
			pos = pos4
			// "impl"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "impl" {
				goto fail8
			}
			node0 = parser.text[pos:pos+4]
			pos += 4
			goto ok1
		fail8:
			node0 = node3
			pos = pos4
			// "forall"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "forall" {
				goto fail9
			}
			node0 = parser.text[pos:pos+6]
			pos += 6
			goto ok1
		fail9:
			node0 = node3
			pos = pos4
			// "for"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "for" {
				goto fail10
			}
			node0 = parser.text[pos:pos+3]
			pos += 3
			goto ok1
		fail10:
			node0 = node3
			pos = pos4
			// "exists"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "exists" {
				goto fail11
			}
			node0 = parser.text[pos:pos+6]
			pos += 6
			goto ok1
		fail11:
			node0 = node3
			pos = pos4
			// "where"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "where" {
				goto fail12
			}
			node0 = parser.text[pos:pos+5]
			pos += 5
			goto ok1
		fail12:
			node0 = node3
			pos = pos4
			// "type"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "type" {
				goto fail13
			}
			node0 = parser.text[pos:pos+4]
			pos += 4
			goto ok1
		fail13:
			node0 = node3
			pos = pos4
			// "as"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "as" {
				goto fail14
			}
			node0 = parser.text[pos:pos+2]
			pos += 2
			goto ok1
		fail14:
			node0 = node3
			pos = pos4
			// "ty"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ty" {
				goto fail15
			}
			node0 = parser.text[pos:pos+2]
			pos += 2
			goto ok1
		fail15:
			node0 = node3
			pos = pos4
			// "lt"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "lt" {
				goto fail16
			}
			node0 = parser.text[pos:pos+2]
			pos += 2
			goto ok1
		fail16:
			node0 = node3
			pos = pos4
			goto fail
		ok1:
		}
		node, node0 = node+node0, ""
		// !IdRune
		{
			pos18 := pos
			// IdRune
			if p, n := _IdRuneAction(parser, pos); n == nil {
				goto ok17
			} else {
				pos = p
			}
			pos = pos18
			goto fail
		ok17:
			pos = pos18
			node0 = ""
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func __Accepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, __, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// (Space/Cmnt)*
	for {
		pos1 := pos
		// (Space/Cmnt)
		// Space/Cmnt
		{
			pos7 := pos
			// Space
			if !_accept(parser, _SpaceAccepts, &pos, &perr) {
				goto fail8
			}
			goto ok4
		fail8:
			pos = pos7
			// Cmnt
			if !_accept(parser, _CmntAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	perr = start
	return _memoize(parser, __, start, pos, perr)
}

func __Fail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, __, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "_",
		Pos:  int(start),
	}
	key := _key{start: start, rule: __}
	// (Space/Cmnt)*
	for {
		pos1 := pos
		// (Space/Cmnt)
		// Space/Cmnt
		{
			pos7 := pos
			// Space
			if !_fail(parser, _SpaceFail, errPos, failure, &pos) {
				goto fail8
			}
			goto ok4
		fail8:
			pos = pos7
			// Cmnt
			if !_fail(parser, _CmntFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
}

func __Action(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][__]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: __}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// (Space/Cmnt)*
	for {
		pos1 := pos
		var node2 string
		// (Space/Cmnt)
		// Space/Cmnt
		{
			pos7 := pos
			var node6 string
			// Space
			if p, n := _SpaceAction(parser, pos); n == nil {
				goto fail8
			} else {
				node2 = *n
				pos = p
			}
			goto ok4
		fail8:
			node2 = node6
			pos = pos7
			// Cmnt
			if p, n := _CmntAction(parser, pos); n == nil {
				goto fail9
			} else {
				node2 = *n
				pos = p
			}
			goto ok4
		fail9:
			node2 = node6
			pos = pos7
			goto fail3
		ok4:
		}
		node += node2
		continue
	fail3:
		pos = pos1
		break
	}
	parser.act[key] = node
	return pos, &node
}

func _SpaceAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Space, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [ \t\r\n]
	if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	return _memoize(parser, _Space, start, pos, perr)
fail:
	return _memoize(parser, _Space, start, -1, perr)
}

func _SpaceFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Space, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Space",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Space}
	// [ \t\r\n]
	if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[ \\t\\r\\n]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SpaceAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Space]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Space}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [ \t\r\n]
	if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
		goto fail
	} else {
		node = parser.text[pos:pos+w]
		pos += w
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CmntAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Cmnt, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "//" (!"\n" .)*
	// "//"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "//" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 2
	// (!"\n" .)*
	for {
		pos2 := pos
		// (!"\n" .)
		// !"\n" .
		// !"\n"
		{
			pos7 := pos
			perr9 := perr
			// "\n"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
				perr = _max(perr, pos)
				goto ok6
			}
			pos++
			pos = pos7
			perr = _max(perr9, pos)
			goto fail4
		ok6:
			pos = pos7
			perr = perr9
		}
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			perr = _max(perr, pos)
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	return _memoize(parser, _Cmnt, start, pos, perr)
fail:
	return _memoize(parser, _Cmnt, start, -1, perr)
}

func _CmntFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Cmnt, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Cmnt",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Cmnt}
	// action
	// "//" (!"\n" .)*
	// "//"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "//" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"//\"",
			})
		}
		goto fail
	}
	pos += 2
	// (!"\n" .)*
	for {
		pos2 := pos
		// (!"\n" .)
		// !"\n" .
		// !"\n"
		{
			pos7 := pos
			nkids8 := len(failure.Kids)
			// "\n"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"\\n\"",
					})
				}
				goto ok6
			}
			pos++
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!\"\\n\"",
				})
			}
			goto fail4
		ok6:
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
		}
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: ".",
				})
			}
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CmntAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Cmnt]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Cmnt}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// action
	{
		start0 := pos
		// "//" (!"\n" .)*
		// "//"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "//" {
			goto fail
		}
		pos += 2
		// (!"\n" .)*
		for {
			pos3 := pos
			// (!"\n" .)
			// !"\n" .
			// !"\n"
			{
				pos8 := pos
				// "\n"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
					goto ok7
				}
				pos++
				pos = pos8
				goto fail5
			ok7:
				pos = pos8
			}
			// .
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
				goto fail5
			} else {
				pos += w
			}
			continue
		fail5:
			pos = pos3
			break
		}
		node = func(
			start, end int) string {
			return string(comment(parser, start, end))
		}(
			start0, pos)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _EofAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Eof, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ !.
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// !.
	{
		pos2 := pos
		perr4 := perr
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			perr = _max(perr, pos)
			goto ok1
		} else {
			pos += w
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	return _memoize(parser, _Eof, start, pos, perr)
fail:
	return _memoize(parser, _Eof, start, -1, perr)
}

func _EofFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Eof, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Eof",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Eof}
	// _ !.
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// !.
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: ".",
				})
			}
			goto ok1
		} else {
			pos += w
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!.",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _EofAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Eof]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Eof}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// _ !.
	{
		var node0 string
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			node0 = *n
			pos = p
		}
		node, node0 = node+node0, ""
		// !.
		{
			pos2 := pos
			// .
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
				goto ok1
			} else {
				pos += w
			}
			pos = pos2
			goto fail
		ok1:
			pos = pos2
			node0 = ""
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}
