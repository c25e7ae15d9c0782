package starscope

import (
	"github.com/crimson-sun/starscope/internal/engine/cluster"
	"github.com/crimson-sun/starscope/internal/engine/rules"
	"github.com/crimson-sun/starscope/internal/engine/taxonomy"
	"github.com/crimson-sun/starscope/internal/model"
)

// Repo is one starred-repository record.
type Repo = model.Repo

// Table is an ordered tabular report: column names plus rows in input order.
type Table = model.Table

// ClassifyRepos labels every record with the built-in domain, project-type,
// and subdomain keyword taxonomies. Options swap in custom rule files.
func ClassifyRepos(repos []Repo, opts ...ClassifyOption) (*Table, error) {
	var o classifyOptions
	for _, opt := range opts {
		opt(&o)
	}

	var ruleOpts []rules.Option
	for _, f := range o.files {
		tax, err := taxonomy.LoadFile(f.path)
		if err != nil {
			return nil, err
		}
		ruleOpts = append(ruleOpts, f.bind(tax))
	}

	return rules.New(ruleOpts...).Classify(repos)
}

// ClusterRepos groups records by TF-IDF similarity of name and description
// using seeded k-means. Identical inputs always produce identical tables.
func ClusterRepos(repos []Repo, opts ...ClusterOption) (*Table, error) {
	var o clusterOptions
	for _, opt := range opts {
		opt(&o)
	}
	return cluster.New(o.opts...).Classify(repos)
}
