package domaintag

import "testing"

func TestAssign_SingleDomain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		categories []string
		want       string
	}{
		{[]string{"Bird species", "Ecology"}, "Sciences"},
		{[]string{"Software engineering"}, "Technology & Engineering"},
		{[]string{"Number theory", "Algebra"}, "Mathematics"},
		{[]string{"Medieval battles"}, "History"},
		{[]string{"Rivers of Europe", "Mountains"}, "Geography & Places"},
		{[]string{"Jazz albums", "Painting"}, "Arts & Culture"},
		{[]string{"Buddhist temples"}, "Philosophy & Religion"},
		{[]string{"Linguistics", "Psychology"}, "Social Sciences"},
		{[]string{"Olympic athletes"}, "Sports"},
	}
	for _, c := range cases {
		if got := Assign(c.categories); got != c.want {
			t.Errorf("Assign(%v) = %q, want %q", c.categories, got, c.want)
		}
	}
}

func TestAssign_NoMatchFallsBackToOther(t *testing.T) {
	t.Parallel()

	if got := Assign([]string{"Miscellanea", "Lists of things"}); got != DefaultDomain {
		t.Errorf("Assign = %q, want %q", got, DefaultDomain)
	}
	if got := Assign(nil); got != DefaultDomain {
		t.Errorf("Assign(nil) = %q, want %q", got, DefaultDomain)
	}
}

func TestAssign_MostHitsWins(t *testing.T) {
	t.Parallel()

	// One history keyword against three science keywords.
	categories := []string{"History of biology", "Genetics", "Evolution"}
	if got := Assign(categories); got != "Sciences" {
		t.Errorf("Assign = %q, want Sciences", got)
	}
}

func TestAssign_TieBreaksLexically(t *testing.T) {
	t.Parallel()

	// "history" and "mathematics" each score one hit; the lexically
	// smaller domain name must win regardless of map iteration order.
	categories := []string{"History of mathematics"}
	for i := 0; i < 20; i++ {
		if got := Assign(categories); got != "History" {
			t.Fatalf("Assign = %q, want History", got)
		}
	}
}

func TestAssign_CaseInsensitive(t *testing.T) {
	t.Parallel()

	if got := Assign([]string{"ASTRONOMY"}); got != "Sciences" {
		t.Errorf("Assign = %q, want Sciences", got)
	}
}

func TestDomains_IncludesFallback(t *testing.T) {
	t.Parallel()

	domains := Domains()
	if len(domains) != 10 {
		t.Fatalf("expected 10 domains, got %d", len(domains))
	}
	found := false
	for _, d := range domains {
		if d == DefaultDomain {
			found = true
		}
	}
	if !found {
		t.Errorf("Domains() missing %q", DefaultDomain)
	}
}
