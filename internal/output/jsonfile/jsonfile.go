package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/crimson-sun/starscope/internal/model"
)

// WriteRepos writes the record collection as an indented JSON array.
func WriteRepos(path string, repos []model.Repo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("json output: create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(repos); err != nil {
		f.Close()
		return fmt.Errorf("json output: encode %s: %w", path, err)
	}
	return f.Close()
}

// ReadRepos loads a record collection. A malformed document is fatal to the
// caller: classification never starts on a partial read.
func ReadRepos(path string) ([]model.Repo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("json input: read %s: %w", path, err)
	}

	var repos []model.Repo
	if err := json.Unmarshal(data, &repos); err != nil {
		return nil, fmt.Errorf("json input: %s is not a repository collection: %w", path, err)
	}
	return repos, nil
}
