package catalog

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tanglish spelling", "thakkali", "tomato"},
		{"alternate spelling", "thakali", "tomato"},
		{"third spelling", "takkali", "tomato"},
		{"onion", "vengayam", "onion"},
		{"potato long form", "urulaikizhangu", "potato"},
		{"uppercase input", "THAKKALI", "tomato"},
		{"surrounding whitespace", "  poondu  ", "garlic"},
		{"multi word", "pachai milagai", "green chilli"},
		{"unknown term passes through", "tomato", "tomato"},
		{"unknown gibberish passes through", "xyzzy", "xyzzy"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.in); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
