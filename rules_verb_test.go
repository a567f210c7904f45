package grammatical

import "testing"

func TestVerbCompAttachesDirectObject(t *testing.T) {
	sell := word("sell", TagSet(TagDict|TagFin|TagPres))
	books := word("books", TagSet(TagNom|TagAkk|TagPl|TagThird))

	results := VerbComp(sell, books)
	var match *Phrase
	for _, r := range results {
		if r.Type == '+' {
			match = r
		}
	}
	if match == nil {
		t.Fatal("expected a '+' complement candidate")
	}
	if len(match.Errors) != 0 {
		t.Errorf("\"sell books\" should carry no diagnostics, got %v", match.Errors)
	}
	if got, want := match.String(), "[sell+books]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestVerbBicompRequiresAkkComplement(t *testing.T) {
	give := word("give", TagSet(TagDict|TagFin|TagPres))
	hard := word("hard", TagSet(TagAdv))

	results := VerbBicomp(give, hard)
	for _, r := range results {
		if r.Type == '*' {
			t.Error("an adverb should never satisfy the bicomp slot")
		}
	}
}

func TestVerbAdvStacksAdverbsToTheRight(t *testing.T) {
	work := word("work", TagSet(TagDict|TagFin|TagPres))
	hard := word("hard", TagSet(TagAdv))

	results := VerbAdv(work, hard)
	if len(results) != 1 {
		t.Fatalf("VerbAdv(verb, adv) returned %d results, want 1", len(results))
	}
	if results[0].RightRule == nil {
		t.Error("VerbAdv must reinstall itself so further adverbs can stack")
	}
}

func TestVerbRSpecInversionRequiresAgreement(t *testing.T) {
	does := word("does", TagSet(TagFin|TagPres|TagSg|TagThird))
	we := word("we", TagSet(TagNom|TagPl|TagFirst))

	results := VerbRSpec(does, we)
	found := false
	for _, r := range results {
		if r.Type == ':' {
			found = true
			if len(r.Errors) == 0 {
				t.Error("\"does we\" should carry a disagreement diagnostic")
			}
		}
	}
	if !found {
		t.Fatal("expected a ':' inverted-subject candidate even on disagreement")
	}
}
