package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple lowercase", "Demo", "demo"},
		{"all caps", "SLUG", "slug"},
		{"trims whitespace", "  Acme  ", "acme"},
		{"spaces become hyphens", "Acme Corp", "acme-corp"},
		{"collapses space runs", "Acme   Corp", "acme-corp"},
		{"strips punctuation", "Books & Records", "books-records"},
		{"strips quotes and brackets", `"Foo" [Bar] (Baz)`, "foo-bar-baz"},
		{"keeps hyphens", "Pre-Owned Cars", "pre-owned-cars"},
		{"strips dots and commas", "U.S. Steel, Inc.", "us-steel-inc"},
		{"strips middle dot", "a·b", "ab"},
		{"punctuation only", "!!!", ""},
		{"empty input", "", ""},
		{"no trailing hyphen", "Acme !", "acme"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Fatalf("Slugify(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	const in = "Mining & Metals (Heavy)"
	first := Slugify(in)
	for i := 0; i < 10; i++ {
		if got := Slugify(in); got != first {
			t.Fatalf("Slugify not deterministic: %q vs %q", got, first)
		}
	}
}
