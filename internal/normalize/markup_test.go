package normalize

import "testing"

func TestStripMarkup(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "no tags here", "no tags here"},
		{"single tag removed", "<b>bold</b> claim", "bold claim"},
		{"nested tags removed", "<div><a href=\"x\">link</a></div>", "link"},
		{"entities preserved", "profits &amp; losses", "profits &amp; losses"},
		{"whitespace preserved", "a  <br/>  b", "a    b"},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := StripMarkup(tc.in); got != tc.want {
				t.Fatalf("StripMarkup(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestStripMarkupIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"<p>one <b>two</b></p>",
		"dangling < bracket",
		"&lt;escaped&gt;",
	}

	for _, in := range inputs {
		once := StripMarkup(in)
		twice := StripMarkup(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	got := CleanText("  <p>UBS   posts \n record\tprofit</p>  ")
	want := "UBS posts record profit"
	if got != want {
		t.Fatalf("CleanText = %q, want %q", got, want)
	}
}
