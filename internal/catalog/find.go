package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned by Find when no record matches the query.
var ErrNotFound = errors.New("modality not found")

// maxTypoRatio bounds the edit distance accepted by Find relative to the
// length of the compared title.
const maxTypoRatio = 0.35

// Find resolves a user reference to a record index. The query may be a
// 1-based position, a title (case and accents ignored), a unique title
// prefix, or a title with a few typos.
func (c Catalog) Find(query string) (int, error) {
	q := fold(query)
	if q == "" {
		return -1, fmt.Errorf("%w: empty query", ErrNotFound)
	}
	if n, err := strconv.Atoi(q); err == nil {
		if n < 1 || n > len(c.records) {
			return -1, fmt.Errorf("%w: position %d out of range 1..%d", ErrNotFound, n, len(c.records))
		}
		return n - 1, nil
	}

	titles := make([]string, len(c.records))
	for i, r := range c.records {
		titles[i] = fold(r.Title)
		if titles[i] == q {
			return i, nil
		}
	}

	prefix := -1
	for i, t := range titles {
		if !strings.HasPrefix(t, q) {
			continue
		}
		if prefix >= 0 {
			return -1, fmt.Errorf("%w: %q is ambiguous", ErrNotFound, query)
		}
		prefix = i
	}
	if prefix >= 0 {
		return prefix, nil
	}

	best, bestRatio := -1, maxTypoRatio
	for i, t := range titles {
		dist := levenshtein.ComputeDistance(q, t)
		ratio := float64(dist) / float64(max(len([]rune(q)), len([]rune(t))))
		if ratio <= bestRatio {
			best, bestRatio = i, ratio
		}
	}
	if best < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, query)
	}
	return best, nil
}

// fold lowercases s and strips combining marks so "Admisión" matches
// "admision".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.Join(strings.Fields(out), " "))
}
