package listview

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type record struct {
	ID       int
	Title    string
	Tags     []string
	Category string
}

func (r record) Key() string { return strconv.Itoa(r.ID) }

var recordFields = Fields[record]{
	Text: func(r record) []string {
		return append([]string{r.Title}, r.Tags...)
	},
	Category: func(r record) string { return r.Category },
}

var testCategories = []string{"Stocks", "Technology", "Hardware"}

// buildRecords turns generated titles into records with rotating categories
// and a tag derived from the title.
func buildRecords(titles []string) []record {
	out := make([]record, len(titles))
	for i, title := range titles {
		out[i] = record{
			ID:       i + 1,
			Title:    title,
			Tags:     []string{strings.ToUpper(title) + "-tag"},
			Category: testCategories[i%len(testCategories)],
		}
	}
	return out
}

func clone(records []record) []record {
	out := make([]record, len(records))
	for i, r := range records {
		r.Tags = append([]string(nil), r.Tags...)
		out[i] = r
	}
	return out
}

func equalRecords(a, b []record) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Title != b[i].Title || a[i].Category != b[i].Category {
			return false
		}
		if strings.Join(a[i].Tags, "\x00") != strings.Join(b[i].Tags, "\x00") {
			return false
		}
	}
	return true
}

// Property: an empty query with the All selector is the identity.
func TestProperty_EmptyQueryIsIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Apply(R, empty, All) == R", prop.ForAll(
		func(titles []string, selector string) bool {
			records := buildRecords(titles)
			got := Apply(records, Query{Search: "", Category: selector}, recordFields)
			return equalRecords(got, records)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.OneConstOf("", All),
	))

	properties.TestingRun(t)
}

// expectedMatches is a direct reading of the filter rule: a record is kept
// when the category is All or equal to its own, and the search is empty or a
// case-insensitive substring of the title or a tag.
func expectedMatches(records []record, search, category string) []record {
	contains := func(field string) bool {
		return strings.Contains(strings.ToLower(field), strings.ToLower(search))
	}
	var out []record
	for _, r := range records {
		if category != All && r.Category != category {
			continue
		}
		hit := search == "" || contains(r.Title)
		for _, tag := range r.Tags {
			hit = hit || contains(tag)
		}
		if hit {
			out = append(out, r)
		}
	}
	return out
}

// Property: Apply keeps exactly the matching records, in source order.
func TestProperty_ResultIsMatchingSubsequence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("Apply(R, q, c) is the matching subsequence of R", prop.ForAll(
		func(titles []string, search string, category string) bool {
			records := buildRecords(titles)
			got := Apply(records, Query{Search: search, Category: category}, recordFields)
			want := expectedMatches(records, search, category)
			if !equalRecords(got, want) {
				t.Logf("search %q category %q: got %d records, want %d", search, category, len(got), len(want))
				return false
			}
			return true
		},
		gen.SliceOf(gen.OneGenOf(
			gen.AlphaString(),
			gen.OneConstOf("Fed Holds Rates", "Bitcoin Adoption", "NVIDIA", " a b ", "tag"),
		)),
		gen.OneConstOf("", " ", "  ", "a", "B", "tag", "zz", "n ", " a", "s r", "-TAG", "a b"),
		gen.OneConstOf(All, "Stocks", "Technology", "Hardware", "Crypto"),
	))

	properties.TestingRun(t)
}

func TestApplyKeepsWhitespaceInSearch(t *testing.T) {
	records := []record{
		{ID: 1, Title: "Fed Holds Rates", Category: "Economy"},
		{ID: 2, Title: "Bitcoin Adoption", Category: "Crypto"},
		{ID: 3, Title: "NVIDIA", Category: "Stocks"},
	}
	cases := []struct {
		search string
		want   []int
	}{
		{"", []int{1, 2, 3}},
		{" ", []int{1, 2}},
		{"n ", []int{2}},
		{" a", []int{2}},
		{"nvidia", []int{3}},
	}
	for _, tc := range cases {
		got := Apply(records, Query{Search: tc.search, Category: All}, recordFields)
		ids := make([]int, 0, len(got))
		for _, r := range got {
			ids = append(ids, r.ID)
		}
		if !slices.Equal(ids, tc.want) {
			t.Errorf("search %q: got %v, want %v", tc.search, ids, tc.want)
		}
	}
}

// Property: filtering never mutates the source collection.
func TestProperty_ApplyDoesNotMutateSource(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("source unchanged after Apply", prop.ForAll(
		func(titles []string, search string) bool {
			records := buildRecords(titles)
			before := clone(records)
			got := Apply(records, Query{Search: search, Category: "Stocks"}, recordFields)
			if len(got) > 0 {
				got[0].Title = "changed"
			}
			return equalRecords(records, before)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.OneConstOf("", "a", "tag"),
	))

	properties.TestingRun(t)
}

// Property: matching is case-insensitive.
func TestProperty_SearchIsCaseInsensitive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("upper and lower queries select the same records", prop.ForAll(
		func(titles []string, search string) bool {
			records := buildRecords(titles)
			lower := Apply(records, Query{Search: strings.ToLower(search)}, recordFields)
			upper := Apply(records, Query{Search: strings.ToUpper(search)}, recordFields)
			return equalRecords(lower, upper)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// Property: selecting a record sets the selection regardless of the active query.
func TestProperty_SelectIgnoresFilter(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Select(x) selects x under any query", prop.ForAll(
		func(titles []string, pick int, search string, category string) bool {
			records := buildRecords(titles)
			v := MustNew(records, recordFields)
			v.SetSearch(search)
			v.SetCategory(category)

			target := records[pick%len(records)]
			if err := v.Select(target.Key()); err != nil {
				return false
			}
			if v.Selected().ID != target.ID {
				return false
			}

			// Changing the query afterwards keeps the selection.
			v.SetSearch(search + "x")
			v.CycleCategory()
			return v.Selected().ID == target.ID
		},
		gen.SliceOfN(8, gen.AlphaString()).SuchThat(func(s []string) bool { return len(s) > 0 }),
		gen.IntRange(0, 100),
		gen.OneConstOf("", "a", "zz"),
		gen.OneConstOf(All, "Stocks", "Hardware"),
	))

	properties.TestingRun(t)
}
