package model

// Repo is one starred-repository record as returned by the hosting API.
// Every field is optional: absent strings behave as empty for all text
// matching, and an absent language is reported as "Unknown". Records are
// immutable inputs to the classifiers; only topic enrichment appends.
type Repo struct {
	Name        string   `json:"name,omitempty"`
	FullName    string   `json:"full_name,omitempty"`
	Description string   `json:"description,omitempty"`
	Language    string   `json:"language,omitempty"`
	URL         string   `json:"html_url,omitempty"`
	Topics      []string `json:"topics,omitempty"`
}

// LanguageLabel returns the language for reporting, "Unknown" when absent.
func (r Repo) LanguageLabel() string {
	if r.Language == "" {
		return "Unknown"
	}
	return r.Language
}
