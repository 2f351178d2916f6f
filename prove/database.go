package prove

import "github.com/eaburns/formality/grammar"

// A Database supplies the facts of a program.
// Its methods must be pure:
// for the same input they always return the same result.
type Database interface {
	// ElaborateRelation returns the hypotheses implied by a relation.
	ElaborateRelation(grammar.Relation) []grammar.Wc

	// InvariantsForPredicate returns the invariants
	// that may be assumed when proving predicates of the skeleton.
	InvariantsForPredicate(grammar.Skeleton) []grammar.Invariant

	// ProgramClauses returns the clauses
	// whose heads have the skeleton.
	ProgramClauses(grammar.Skeleton) []grammar.Clause
}
