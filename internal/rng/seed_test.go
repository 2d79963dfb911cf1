package rng

import "testing"

func TestParseSeed(t *testing.T) {
	cases := []struct {
		in      string
		want    Seed
		wantErr bool
	}{
		{"0000000000000", 0, false},
		{"0000000000001", 1, false},
		{"0SLAYTHESPIRE", 2665621045298406349, false},
		{"", 0, true},
		{"0", 0, true},
		{"00SLAYTHESPIRE", 0, true},
	}
	for _, c := range cases {
		got, err := ParseSeed(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseSeed(%q): expected error, got nil", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSeed(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseSeed(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSeedString(t *testing.T) {
	cases := []struct {
		in   Seed
		want string
	}{
		{0, "0000000000000"},
		{1, "0000000000001"},
		{2665621045298406349, "0SLAYTHESPIRE"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("Seed(%d).String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSeedRoundTrip(t *testing.T) {
	for _, s := range []Seed{0, 1, 42, 2665621045298406349, 1<<48 - 1} {
		parsed, err := ParseSeed(s.String())
		if err != nil {
			t.Fatalf("ParseSeed(%q): %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("round-trip mismatch: %d -> %q -> %d", s, s.String(), parsed)
		}
	}
}

func TestSeedWithOffset(t *testing.T) {
	s := Seed(100)
	if got := s.WithOffset(5); got != 105 {
		t.Errorf("WithOffset(5) = %d, want 105", got)
	}
	if s != 100 {
		t.Errorf("WithOffset must not mutate the receiver")
	}
}
