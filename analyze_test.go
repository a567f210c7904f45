package grammatical

import (
	"strings"
	"testing"
)

func mustLoad(t *testing.T) *Lexicon {
	t.Helper()
	lx, err := Load(testDataDir)
	if err != nil {
		t.Fatalf("Load(%q) = %v", testDataDir, err)
	}
	return lx
}

func bestDerivation(results []Result) Result {
	best := results[0]
	for _, r := range results[1:] {
		if len(r.Diagnostics) < len(best.Diagnostics) {
			best = r
		}
	}
	return best
}

func anyDerivationString(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		var parts []string
		for _, p := range r.Phrases {
			parts = append(parts, p.String())
		}
		out[i] = strings.Join(parts, " ")
	}
	return out
}

func TestAnalyzeTheBook(t *testing.T) {
	lx := mustLoad(t)
	results := Analyze("the book", lx)
	if len(results) == 0 {
		t.Fatal("expected at least one derivation for \"the book\"")
	}
	best := bestDerivation(results)
	if len(best.Diagnostics) != 0 {
		t.Errorf("\"the book\" should have a zero-diagnostic derivation, best had %v", best.Diagnostics)
	}
	if len(best.Phrases) != 1 || best.Phrases[0].String() != "[the:book]" {
		t.Errorf("expected a single [the:book] phrase, got %v", anyDerivationString(results))
	}
}

func TestAnalyzeComputersAreVeryExpensive(t *testing.T) {
	lx := mustLoad(t)
	results := Analyze("computers are very expensive", lx)
	if len(results) == 0 {
		t.Fatal("expected at least one derivation")
	}
	best := bestDerivation(results)
	if len(best.Diagnostics) != 0 {
		t.Errorf("\"computers are very expensive\" should have a zero-diagnostic derivation, best had %v", best.Diagnostics)
	}
	if len(best.Phrases) != 1 {
		t.Errorf("expected one full-cover phrase, got %v", anyDerivationString(results))
	}
}

func TestAnalyzeDoYouSellOldBooks(t *testing.T) {
	lx := mustLoad(t)
	results := Analyze("do you sell old books", lx)
	if len(results) == 0 {
		t.Fatal("expected at least one derivation")
	}
	best := bestDerivation(results)
	if len(best.Diagnostics) != 0 {
		t.Errorf("\"do you sell old books\" should have a zero-diagnostic derivation, best had %v", best.Diagnostics)
	}
	if len(best.Phrases) != 1 {
		t.Fatalf("expected one full-cover phrase, got %v", anyDerivationString(results))
	}
	got := best.Phrases[0].String()
	if !strings.Contains(got, "old") || !strings.Contains(got, "sell") || !strings.Contains(got, "you") {
		t.Errorf("derivation %q should mention you, sell and old somewhere in its tree", got)
	}
}

func TestAnalyzeHeGiveMeBooksFlagsDisagreement(t *testing.T) {
	lx := mustLoad(t)
	results := Analyze("he give me books", lx)
	if len(results) == 0 {
		t.Fatal("expected at least one derivation")
	}
	found := false
	for _, r := range results {
		for _, d := range r.Diagnostics {
			if strings.Contains(d, "agree") {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("expected a subject-verb disagreement diagnostic among %v", results)
	}
}

func TestAnalyzeTheyEatGarfFlagsUnknownWord(t *testing.T) {
	lx := mustLoad(t)
	results := Analyze("they eat garf", lx)
	if len(results) == 0 {
		t.Fatal("expected at least one derivation")
	}
	found := false
	for _, r := range results {
		for _, d := range r.Diagnostics {
			if strings.Contains(d, "unknown word garf") {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("expected an \"unknown word garf\" diagnostic among %v", results)
	}
}

func TestAnalyzeMightHeCome(t *testing.T) {
	lx := mustLoad(t)
	results := Analyze("might he come", lx)
	if len(results) == 0 {
		t.Fatal("expected at least one derivation")
	}
	best := bestDerivation(results)
	if len(best.Diagnostics) != 0 {
		t.Errorf("\"might he come\" should have a zero-diagnostic derivation, best had %v", best.Diagnostics)
	}
}

func TestAnalyzeEmptyInputYieldsNoDerivations(t *testing.T) {
	lx := mustLoad(t)
	if got := Analyze("", lx); got != nil {
		t.Errorf("Analyze(\"\") = %v, want nil", got)
	}
}

func TestAnalyzeSingleUnknownTokenYieldsOneDiagnostic(t *testing.T) {
	lx := mustLoad(t)
	results := Analyze("zzqx", lx)
	if len(results) != 1 {
		t.Fatalf("Analyze(\"zzqx\") returned %d derivations, want 1", len(results))
	}
	if len(results[0].Diagnostics) != 1 {
		t.Errorf("expected exactly one diagnostic for a single unknown token, got %v", results[0].Diagnostics)
	}
}

func TestAnalyzeOverlongTokenIsTreatedAsUnknown(t *testing.T) {
	lx := mustLoad(t)
	long := strings.Repeat("a", maxOrthLength)
	results := Analyze(long, lx)
	if len(results) != 1 {
		t.Fatalf("Analyze(overlong token) returned %d derivations, want 1", len(results))
	}
	if len(results[0].Diagnostics) == 0 {
		t.Error("an overlong token should still surface as an unknown-word diagnostic, not silently vanish")
	}
}
