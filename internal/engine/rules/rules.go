package rules

import (
	"strings"

	"github.com/crimson-sun/starscope/internal/engine"
	"github.com/crimson-sun/starscope/internal/engine/taxonomy"
	"github.com/crimson-sun/starscope/internal/model"
)

// Columns is the fixed column order of the rule-based report. Chart
// generation looks these names up, so they are part of the contract.
var Columns = []string{"Domain", "Project Type", "Subdomain", "Language", "Repository", "Description", "URL"}

// Result holds the three axis labels assigned to one record.
type Result struct {
	Domain      string
	ProjectType string
	Subdomain   string
}

// Classifier labels records across three orthogonal axes — domain, project
// type, subdomain — using ordered keyword taxonomies. The axes stay
// separate tables because a repository can simultaneously be "Web",
// "Library", and "React"; one joint table would force a combined label
// space. Taxonomies are read-only after construction, so a Classifier is
// safe for concurrent use.
type Classifier struct {
	domains    taxonomy.Taxonomy
	types      taxonomy.Taxonomy
	subdomains taxonomy.Taxonomy
}

var _ engine.Classifier = (*Classifier)(nil)

// Option overrides one of the classifier's taxonomies.
type Option func(*Classifier)

// WithDomains replaces the domain taxonomy.
func WithDomains(t taxonomy.Taxonomy) Option {
	return func(c *Classifier) { c.domains = t }
}

// WithProjectTypes replaces the project-type taxonomy.
func WithProjectTypes(t taxonomy.Taxonomy) Option {
	return func(c *Classifier) { c.types = t }
}

// WithSubdomains replaces the subdomain taxonomy.
func WithSubdomains(t taxonomy.Taxonomy) Option {
	return func(c *Classifier) { c.subdomains = t }
}

// New creates a Classifier with the built-in taxonomies.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		domains:    taxonomy.Domains(),
		types:      taxonomy.ProjectTypes(),
		subdomains: taxonomy.Subdomains(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements engine.Classifier.
func (c *Classifier) Name() string { return "rules" }

// searchText builds the case-folded matching basis for one record: name,
// full name, and description, space-joined. Absent fields contribute empty
// strings, never a sentinel.
func searchText(r model.Repo) string {
	return strings.ToLower(r.Name + " " + r.FullName + " " + r.Description)
}

// ClassifyRepo labels a single record. Domain and project type fall back to
// "Other"; the subdomain axis falls back to the record's already-resolved
// domain label, not to "Other".
func (c *Classifier) ClassifyRepo(r model.Repo) Result {
	text := searchText(r)
	domain := c.domains.ClassifyOr(text, "Other")
	return Result{
		Domain:      domain,
		ProjectType: c.types.ClassifyOr(text, "Other"),
		Subdomain:   c.subdomains.ClassifyOr(text, domain),
	}
}

// Classify labels every record and renders the report table in input order.
// It never fails: missing fields degrade to documented defaults.
func (c *Classifier) Classify(repos []model.Repo) (*model.Table, error) {
	t := model.NewTable(Columns)
	for _, r := range repos {
		res := c.ClassifyRepo(r)
		t.Append([]string{
			res.Domain,
			res.ProjectType,
			res.Subdomain,
			r.LanguageLabel(),
			r.FullName,
			r.Description,
			r.URL,
		})
	}
	return t, nil
}
