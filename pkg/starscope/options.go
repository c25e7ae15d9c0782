package starscope

import (
	"github.com/crimson-sun/starscope/internal/engine/cluster"
	"github.com/crimson-sun/starscope/internal/engine/rules"
	"github.com/crimson-sun/starscope/internal/engine/taxonomy"
)

type taxonomyFile struct {
	path string
	bind func(taxonomy.Taxonomy) rules.Option
}

type classifyOptions struct {
	files []taxonomyFile
}

// ClassifyOption configures ClassifyRepos.
type ClassifyOption func(*classifyOptions)

// WithDomainRules replaces the built-in domain taxonomy with a YAML rule
// file: an ordered sequence of `label: [triggers]` entries.
func WithDomainRules(path string) ClassifyOption {
	return func(o *classifyOptions) {
		o.files = append(o.files, taxonomyFile{path, rules.WithDomains})
	}
}

// WithProjectTypeRules replaces the built-in project-type taxonomy.
func WithProjectTypeRules(path string) ClassifyOption {
	return func(o *classifyOptions) {
		o.files = append(o.files, taxonomyFile{path, rules.WithProjectTypes})
	}
}

// WithSubdomainRules replaces the built-in subdomain taxonomy.
func WithSubdomainRules(path string) ClassifyOption {
	return func(o *classifyOptions) {
		o.files = append(o.files, taxonomyFile{path, rules.WithSubdomains})
	}
}

type clusterOptions struct {
	opts []cluster.Option
}

// ClusterOption configures ClusterRepos.
type ClusterOption func(*clusterOptions)

// WithClusterCount sets the number of clusters. Default: 20. Requesting
// more clusters than distinct documents is an error.
func WithClusterCount(k int) ClusterOption {
	return func(o *clusterOptions) {
		o.opts = append(o.opts, cluster.WithK(k))
	}
}

// WithSeed fixes the random seed for centroid seeding. Default: 42.
func WithSeed(seed int64) ClusterOption {
	return func(o *clusterOptions) {
		o.opts = append(o.opts, cluster.WithSeed(seed))
	}
}
