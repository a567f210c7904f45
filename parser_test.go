package grammatical

import "testing"

func TestParserLengthGrowsWithPush(t *testing.T) {
	p := NewParser()
	if got := p.Length(); got != 0 {
		t.Fatalf("Length() on an empty parser = %d, want 0", got)
	}
	p.Push(word("the", TagSet(TagGen|TagSg)))
	p.Push(word("book", TagSet(TagNom|TagAkk|TagSg|TagThird|TagRc)))
	if got := p.Length(); got != 2 {
		t.Fatalf("Length() after two pushes = %d, want 2", got)
	}
}

func TestParserRunFullCoverSimpleDeterminerNoun(t *testing.T) {
	p := NewParser()
	p.Push(word("the", TagSet(TagGen|TagSg|TagPl|TagUc)))
	p.Push(word("book", TagSet(TagNom|TagAkk|TagSg|TagThird|TagRc)))

	results := p.Run()
	if len(results) == 0 {
		t.Fatal("expected at least one full-cover derivation for \"the book\"")
	}
	found := false
	for _, r := range results {
		if len(r) == 1 && r[0].String() == "[the:book]" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a derivation [the:book] among %d results", len(results))
	}
}

func TestParserRunPrefersCheapestDerivation(t *testing.T) {
	p := NewParser()
	p.Push(word("the", TagSet(TagGen|TagSg|TagPl|TagUc)))
	p.Push(word("books", TagSet(TagNom|TagAkk|TagPl|TagThird))) // plural: "the" agrees here too

	results := p.Run()
	if len(results) == 0 {
		t.Fatal("expected at least one derivation")
	}
	best := results[0][0].TotalErrors()
	for _, r := range results {
		total := 0
		for _, ph := range r {
			total += ph.TotalErrors()
		}
		if total < best {
			t.Errorf("Run() did not return derivations in ascending cost order: found a cheaper reading after a costlier one")
		}
	}
}

func TestParserRunLeavesTwoUnattachedWordsAsTwoPhrases(t *testing.T) {
	p := NewParser()
	p.Push(word("everybody", TagSet(TagNom|TagSg|TagThird)))
	p.Push(word("water", TagSet(TagNom|TagAkk|TagThird|TagUc)))

	results := p.Run()
	if len(results) == 0 {
		t.Fatal("expected at least a two-word fallback derivation when nothing can merge")
	}
	for _, r := range results {
		if len(r) != 2 {
			continue
		}
		return
	}
	t.Error("expected at least one derivation tiling the sentence as two separate phrases")
}

func TestParserPushAlternativesSeedsOnePosition(t *testing.T) {
	p := NewParser()
	p.PushAlternatives([]*Phrase{
		word("that", TagSet(TagGen|TagSg)),
		word("that", TagSet(TagNom|TagAkk|TagSg|TagThird)),
	})
	if got := p.Length(); got != 1 {
		t.Fatalf("PushAlternatives must seed exactly one new position, Length() = %d, want 1", got)
	}
}

func TestParserInsertGrowsPositionsToCharacterOffsets(t *testing.T) {
	p := NewParser()
	m := NewMorpheme("book", TagSet(TagRc|TagSg|TagThird|TagNom|TagAkk), NewLexeme("book"))
	p.Insert(m, 0, 4)
	if got := p.Length(); got < 5 {
		t.Fatalf("Insert(_, 0, 4) must grow positions to at least index 4, Length() = %d", got)
	}
}
