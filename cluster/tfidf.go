package cluster

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mager/coverscope/util"
	"gonum.org/v1/gonum/mat"
)

// stopWords is a compact English stop list. Japanese tokens pass through
// untouched since they never appear here.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true, "has": true,
	"have": true, "i": true, "if": true, "in": true, "is": true, "it": true,
	"its": true, "me": true, "my": true, "no": true, "not": true, "of": true,
	"on": true, "or": true, "our": true, "so": true, "that": true, "the": true,
	"this": true, "to": true, "was": true, "we": true, "were": true,
	"will": true, "with": true, "you": true, "your": true,
}

type vectorizer struct {
	// terms maps column index to term, sorted for a stable column order.
	terms []string
	index map[string]int
	idf   []float64
}

// tokenize lowercases the text, splits on non-letter non-digit runes, drops
// stop words and single-rune tokens, then appends adjacent-pair bigrams.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	var unigrams []string
	for _, f := range fields {
		if stopWords[f] || utf8.RuneCountInString(f) < 2 {
			continue
		}
		unigrams = append(unigrams, f)
	}

	out := make([]string, 0, len(unigrams)*2)
	out = append(out, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		out = append(out, unigrams[i]+" "+unigrams[i+1])
	}
	return out
}

// fitVectorizer builds a vocabulary capped at maxFeatures, keeping the most
// frequent terms across the corpus, with smoothed IDF weights.
func fitVectorizer(corpus []string, maxFeatures int) *vectorizer {
	termCounts := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			termCounts[tok]++
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	terms := util.RankByCount(termCounts)
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	v := &vectorizer{
		terms: terms,
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(corpus))
	for i, t := range terms {
		v.index[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
	return v
}

// transform produces an L2-normalized TF-IDF matrix, one row per document.
func (v *vectorizer) transform(corpus []string) *mat.Dense {
	X := mat.NewDense(len(corpus), len(v.terms), nil)
	for i, doc := range corpus {
		row := X.RawRowView(i)
		for _, tok := range tokenize(doc) {
			if j, ok := v.index[tok]; ok {
				row[j] += v.idf[j]
			}
		}

		var norm float64
		for _, x := range row {
			norm += x * x
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range row {
				row[j] /= norm
			}
		}
	}
	return X
}
