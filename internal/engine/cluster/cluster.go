package cluster

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/crimson-sun/starscope/internal/engine"
	"github.com/crimson-sun/starscope/internal/model"
)

// Columns is the fixed column order of the clustering report.
var Columns = []string{"Cluster", "Cluster Terms", "Repository", "Description", "Language", "URL"}

const (
	defaultK        = 20
	defaultSeed     = 42
	defaultMaxIter  = 300
	defaultRestarts = 10
	defaultMaxDF    = 0.8
	defaultMinDF    = 2

	rankedTerms  = 10 // terms ranked per centroid
	displayTerms = 5  // terms shown in the report
)

// Classifier groups records by text similarity: TF-IDF vectors over each
// record's name and description, partitioned by seeded k-means. Cluster ids
// are an unordered partition — the numeric value is identity, not rank —
// and the top-terms descriptor belongs to the cluster, shared by all its
// member records.
type Classifier struct {
	k        int
	seed     int64
	maxIter  int
	restarts int
	maxDF    float64
	minDF    int
}

var _ engine.Classifier = (*Classifier)(nil)

// Option configures the clusterer.
type Option func(*Classifier)

// WithK sets the number of clusters.
func WithK(k int) Option {
	return func(c *Classifier) { c.k = k }
}

// WithSeed sets the random seed for centroid initialization.
func WithSeed(seed int64) Option {
	return func(c *Classifier) { c.seed = seed }
}

// WithMaxDF sets the maximum document fraction a term may appear in.
func WithMaxDF(f float64) Option {
	return func(c *Classifier) { c.maxDF = f }
}

// WithMinDF sets the minimum number of documents a term must appear in.
func WithMinDF(n int) Option {
	return func(c *Classifier) { c.minDF = n }
}

// WithRestarts sets the number of k-means restarts.
func WithRestarts(n int) Option {
	return func(c *Classifier) { c.restarts = n }
}

// WithMaxIter sets the iteration budget per restart.
func WithMaxIter(n int) Option {
	return func(c *Classifier) { c.maxIter = n }
}

// New creates a Classifier with the default configuration: k=20, seed 42,
// 10 restarts, 300 iterations, max document fraction 0.8, min document
// count 2.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		k:        defaultK,
		seed:     defaultSeed,
		maxIter:  defaultMaxIter,
		restarts: defaultRestarts,
		maxDF:    defaultMaxDF,
		minDF:    defaultMinDF,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements engine.Classifier.
func (c *Classifier) Name() string { return "cluster" }

// document builds the text basis for one record: name and description only,
// case-folded. Full name and language are not part of the basis — it is
// narrower than the rule-based classifier's search text.
func document(r model.Repo) string {
	return strings.ToLower(r.Name + " " + r.Description)
}

// Classify partitions the records and renders the report table in input
// order. Configuration errors (k below 1, k exceeding the distinct
// document count, vocabulary emptied by filtering) abort before anything
// is written; there is no partial clustering.
func (c *Classifier) Classify(repos []model.Repo) (*model.Table, error) {
	if c.k < 1 {
		return nil, fmt.Errorf("cluster: k must be at least 1, got %d", c.k)
	}

	docs := make([]string, len(repos))
	distinct := map[string]bool{}
	for i, r := range repos {
		docs[i] = document(r)
		distinct[docs[i]] = true
	}
	if c.k > len(distinct) {
		return nil, fmt.Errorf("cluster: k=%d exceeds %d distinct documents", c.k, len(distinct))
	}

	m, err := vectorize(docs, c.maxDF, c.minDF)
	if err != nil {
		return nil, err
	}

	labels, centroids, err := kmeans(m.rows, c.k, c.maxIter, c.restarts, c.seed)
	if err != nil {
		return nil, err
	}

	descriptors := make([]string, len(centroids))
	for i, centroid := range centroids {
		terms := topTerms(centroid, m.vocab, rankedTerms)
		if len(terms) > displayTerms {
			terms = terms[:displayTerms]
		}
		descriptors[i] = strings.Join(terms, ", ")
	}

	t := model.NewTable(Columns)
	for i, r := range repos {
		t.Append([]string{
			strconv.Itoa(labels[i]),
			descriptors[labels[i]],
			r.FullName,
			r.Description,
			r.LanguageLabel(),
			r.URL,
		})
	}
	return t, nil
}

// topTerms ranks the vocabulary by centroid weight, descending, and keeps
// the top n. Ties break by vocabulary order so descriptors are stable.
func topTerms(centroid []float64, vocab []string, n int) []string {
	idx := make([]int, len(vocab))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return centroid[idx[a]] > centroid[idx[b]]
	})
	if n > len(idx) {
		n = len(idx)
	}
	terms := make([]string, n)
	for i := 0; i < n; i++ {
		terms[i] = vocab[idx[i]]
	}
	return terms
}
