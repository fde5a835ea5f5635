package domain

import "testing"

func TestNewSlug(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple title", "How to center a div", "how-to-center-a-div"},
		{"punctuation collapses", "What is a pointer?!", "what-is-a-pointer"},
		{"multiple spaces", "Go   modules    explained", "go-modules-explained"},
		{"leading and trailing noise", "  --Hello world--  ", "hello-world"},
		{"digits kept", "Top 10 Go tips", "top-10-go-tips"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"empty input", "", ""},
		{"only punctuation", "?!...", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := NewSlug(tc.in); got != tc.want {
				t.Errorf("NewSlug(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewSlugIsDeterministic(t *testing.T) {
	t.Parallel()

	title := "How to center a div"
	first := NewSlug(title)
	for i := 0; i < 10; i++ {
		if got := NewSlug(title); got != first {
			t.Fatalf("NewSlug is not deterministic: got %q then %q", first, got)
		}
	}
}
