// Package testdata carries a small labeled corpus of starred-repository
// records used by classifier integration tests.
package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/crimson-sun/starscope/internal/model"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is one starred-repository record with its expected labels
// on all three rule axes.
type CorpusEntry struct {
	Repo              model.Repo `json:"repo"`
	ExpectedDomain    string     `json:"expected_domain"`
	ExpectedType      string     `json:"expected_type"`
	ExpectedSubdomain string     `json:"expected_subdomain"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}

// Repos returns just the record side of the corpus, in corpus order.
func Repos(entries []CorpusEntry) []model.Repo {
	repos := make([]model.Repo, len(entries))
	for i, e := range entries {
		repos[i] = e.Repo
	}
	return repos
}
