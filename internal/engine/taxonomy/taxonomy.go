package taxonomy

import "strings"

// Category pairs a label with the trigger substrings that select it.
// Trigger order matters: the first trigger found in the text wins.
// Triggers are stored lowercase; some deliberately embed spaces (like
// "ai " or "node ") to avoid matching inside unrelated words, so they
// must be preserved byte-exact.
type Category struct {
	Label    string
	Triggers []string
}

// Taxonomy is an ordered rule table. Declaration order is the tie-break:
// when a text contains triggers from several categories, the category
// declared first wins. A map would lose that contract, so the table is a
// slice and never reordered after construction. Read-only once built, safe
// for concurrent use.
type Taxonomy []Category

// Classify returns the first category whose trigger substring appears in
// text. Evaluation short-circuits on the first hit: no voting, no scoring.
// The text must already be case-folded.
func (t Taxonomy) Classify(text string) (string, bool) {
	for _, c := range t {
		for _, trig := range c.Triggers {
			if strings.Contains(text, trig) {
				return c.Label, true
			}
		}
	}
	return "", false
}

// ClassifyOr is Classify with a fallback label for texts matching nothing.
func (t Taxonomy) ClassifyOr(text, fallback string) string {
	if label, ok := t.Classify(text); ok {
		return label
	}
	return fallback
}

// Labels returns the category labels in declaration order.
func (t Taxonomy) Labels() []string {
	labels := make([]string, len(t))
	for i, c := range t {
		labels[i] = c.Label
	}
	return labels
}
