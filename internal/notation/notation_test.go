package notation

import "testing"

func TestParseSuffixForms(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"U", []int{0}},
		{"U1", []int{0}},
		{"U+", []int{0}},
		{"U2", []int{1}},
		{"U'", []int{2}},
		{"U-", []int{2}},
		{"U3", []int{2}},
		{"R U R' U'", []int{3, 0, 5, 2}},
		{"  F2\tB2 ", []int{7, 16}},
		{"D'L2", []int{11, 13}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", c.in, err)
			continue
		}
		if len(got) != len(c.want) {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
				break
			}
		}
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	for _, in := range []string{"X", "R X", "2", "'", "Rw", "U22", "M"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	in := "R U2 F' D L2 B"
	moves, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	if got := Format(moves); got != in {
		t.Errorf("Format(Parse(%q)) = %q", in, got)
	}
	if Format(nil) != "" {
		t.Error("Format(nil) should be empty")
	}
}
