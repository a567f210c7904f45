package grammatical

import "testing"

func TestNounAdjectiveStacksAndClosesRight(t *testing.T) {
	book := word("book", TagSet(TagNom|TagAkk|TagSg|TagThird|TagRc))
	old := word("old", TagSet(TagAdn))

	results := NounAdjective(old, book)
	if len(results) != 1 {
		t.Fatalf("NounAdjective(adj, noun) returned %d results, want 1", len(results))
	}
	merged := results[0]
	other := word("sold", TagSet(TagPart|TagPast))
	if got := merged.RightRule(merged, other); got != nil {
		t.Error("an adjective attaching on the left forecloses further right attachment on this phrase")
	}
	if merged.LeftRule == nil {
		t.Error("NounAdjective must remain installed so further adjectives can stack")
	}
}

func TestNounDetRequiresGenitive(t *testing.T) {
	book := word("book", TagSet(TagNom|TagAkk|TagSg|TagThird|TagRc))
	old := word("old", TagSet(TagAdn)) // not genitive
	if got := NounDet(old, book); got != nil {
		t.Errorf("NounDet(non-gen, head) = %v, want nil", got)
	}
}

func TestNounDetNumberMismatch(t *testing.T) {
	books := word("books", TagSet(TagNom|TagAkk|TagPl|TagThird))
	a := word("a", TagSet(TagGen|TagSg))

	results := NounDet(a, books)
	if len(results) != 1 {
		t.Fatalf("NounDet returned %d results, want 1", len(results))
	}
	if len(results[0].Errors) == 0 {
		t.Error("\"a books\" should carry a number-agreement diagnostic")
	}
}

func TestNounDetNumberAgrees(t *testing.T) {
	book := word("book", TagSet(TagNom|TagAkk|TagSg|TagThird|TagRc))
	the := word("the", TagSet(TagGen|TagSg|TagPl|TagUc))

	results := NounDet(the, book)
	if len(results) != 1 || len(results[0].Errors) != 0 {
		t.Errorf("\"the book\" should parse with zero diagnostics, got %+v", results)
	}
	if got, want := results[0].String(), "[the:book]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNounRModRequiresComplexPastParticiple(t *testing.T) {
	book := word("book", TagSet(TagNom|TagAkk|TagSg|TagThird|TagRc))
	sold := word("sold", TagSet(TagPart|TagPast))

	results := NounRMod(book, sold)
	if len(results) != 1 {
		t.Fatalf("NounRMod returned %d results, want 1", len(results))
	}
	if len(results[0].Errors) == 0 {
		t.Error("a bare-word participle right-modifying a noun should be flagged as not complex enough")
	}
}

func TestAdAdadRequiresAdad(t *testing.T) {
	expensive := word("expensive", TagSet(TagAdn))
	old := word("old", TagSet(TagAdn))
	if got := AdAdad(old, expensive); got != nil {
		t.Errorf("AdAdad(non-adad, adj) = %v, want nil", got)
	}

	very := word("very", TagSet(TagAdad))
	results := AdAdad(very, expensive)
	if len(results) != 1 {
		t.Fatalf("AdAdad(adad, adj) returned %d results, want 1", len(results))
	}
	if got, want := results[0].String(), "[very>expensive]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
