package engine

import "github.com/crimson-sun/starscope/internal/model"

// Classifier is one classification strategy over a batch of repository
// records. The rule-based and clustering implementations are alternative
// lenses on the same input, not stages of each other: each labels every
// record and renders its own report table.
type Classifier interface {
	// Name identifies the strategy, e.g. "rules" or "cluster".
	Name() string

	// Classify labels every record and returns the report table with rows
	// in input order. The batch is all-or-nothing: either every record is
	// labeled or an error is returned and no partial table exists.
	Classify(repos []model.Repo) (*model.Table, error)
}
