package cluster

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyVocabulary is returned when document-frequency filtering leaves
// no terms to vectorize. It is a configuration error, distinct from a
// successful empty result.
var ErrEmptyVocabulary = errors.New("cluster: vocabulary is empty after document-frequency filtering")

const minTermLen = 2

// tokenize splits a document into lowercase terms. Text is NFKC-normalized
// first so compatibility forms vectorize stably; terms are runs of letters
// and digits, minimum length 2, with English stop words removed.
func tokenize(text string) []string {
	folded := strings.ToLower(norm.NFKC.String(text))
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTermLen || englishStopWords[f] {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

// tfidf holds a fitted vocabulary and the weighted document-term matrix.
// Rows are L2-normalized; documents whose every term was filtered out stay
// as zero vectors.
type tfidf struct {
	vocab []string
	rows  [][]float64
}

// vectorize fits a TF-IDF matrix over docs. Terms appearing in more than
// maxDF of the documents, or in fewer than minDF documents, are excluded.
// A term's weight in a document rises with its in-document frequency and
// falls with the number of documents containing it.
func vectorize(docs []string, maxDF float64, minDF int) (*tfidf, error) {
	tokens := make([][]string, len(docs))
	df := map[string]int{}
	for i, doc := range docs {
		tokens[i] = tokenize(doc)
		seen := map[string]bool{}
		for _, term := range tokens[i] {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	limit := int(maxDF * float64(len(docs)))
	vocab := make([]string, 0, len(df))
	for term, n := range df {
		if n < minDF || n > limit {
			continue
		}
		vocab = append(vocab, term)
	}
	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}
	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	idf := make([]float64, len(vocab))
	for j, term := range vocab {
		index[term] = j
		// Smoothed inverse document frequency.
		idf[j] = math.Log(float64(1+len(docs))/float64(1+df[term])) + 1
	}

	rows := make([][]float64, len(docs))
	for i, terms := range tokens {
		row := make([]float64, len(vocab))
		for _, term := range terms {
			if j, ok := index[term]; ok {
				row[j]++
			}
		}
		for j := range row {
			row[j] *= idf[j]
		}
		l2Normalize(row)
		rows[i] = row
	}
	return &tfidf{vocab: vocab, rows: rows}, nil
}

func l2Normalize(row []float64) {
	var sum float64
	for _, v := range row {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	n := math.Sqrt(sum)
	for j := range row {
		row[j] /= n
	}
}
