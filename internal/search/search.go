// Package search narrows record lists by a free-text query and a set of
// categorical filters. Filtering is pure: inputs are never modified and the
// result keeps input order.
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field names a categorical attribute of a record kind.
type Field string

const (
	FieldCategory Field = "category"
	FieldStatus   Field = "status"
	FieldType     Field = "type"
)

// Categorical describes an exact-match attribute. A filter holding Wildcard,
// or no value at all, does not restrict results.
type Categorical[R any] struct {
	Value    func(R) string
	Wildcard string
	// FoldCase compares filter and record values in lower case.
	FoldCase bool
}

// Schema describes how one record kind is searched.
type Schema[R any] struct {
	// Text lists the fields probed by the free-text query.
	Text        []func(R) string
	Categorical map[Field]Categorical[R]
}

type predicate[R any] func(R) bool

// Filter returns the records whose text fields contain query, compared in
// lower case with whitespace kept as typed, and that satisfy every active
// categorical filter. Filters naming a field the schema does not know are
// ignored. The result is never nil.
func (s Schema[R]) Filter(records []R, query string, filters map[Field]string) []R {
	caser := cases.Lower(language.Und)
	needle := caser.String(query)

	var preds []predicate[R]
	for field, want := range filters {
		attr, ok := s.Categorical[field]
		if !ok || want == "" || want == attr.Wildcard {
			continue
		}
		preds = append(preds, attr.matcher(want))
	}

	out := make([]R, 0, len(records))
	for _, r := range records {
		if query != "" && !s.containsText(r, needle, caser) {
			continue
		}
		if !all(r, preds) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s Schema[R]) containsText(r R, needle string, caser cases.Caser) bool {
	for _, text := range s.Text {
		if strings.Contains(caser.String(text(r)), needle) {
			return true
		}
	}
	return false
}

func (c Categorical[R]) matcher(want string) predicate[R] {
	if !c.FoldCase {
		return func(r R) bool { return c.Value(r) == want }
	}
	caser := cases.Lower(language.Und)
	want = caser.String(want)
	return func(r R) bool { return caser.String(c.Value(r)) == want }
}

func all[R any](r R, preds []predicate[R]) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}
