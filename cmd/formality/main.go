// Formality proves trait goals against programs of trait declarations.
//
//	formality prove -q '{} => {Debug(Vec<u32>)}' core.fm
//	formality run suite.yaml
//	formality clauses core.fm
//	formality fmt -w core.fm
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
