package grammatical

// NounAdjective mirrors noun_adjective in rules.cpp: the left rule
// installed on a nominative or accusative noun phrase. It accepts a
// preceding adnominal (adjective) modifier, stacking further
// adjectives to its own left, and otherwise falls through to NounDet;
// adjective attachment precedes determiner attachment on the
// left-rule chain.
func NounAdjective(mod, head *Phrase) []*Phrase {
	if mod.Syn.Has(TagAdn) {
		return []*Phrase{mergeLeft(mod, '>', head, NounAdjective, NoRight)}
	}
	return NounDet(mod, head)
}

// NounDet mirrors noun_det in rules.cpp and accepts a genitive
// specifier (this grammar folds determiners and possessives into the
// genitive case rather than a dedicated tag, e.g. "'my: gen.sg.pl.uc"
// in the sample lexicon), checking number agreement and, when
// the head declares one, a lexicon argument match.
func NounDet(mod, head *Phrase) []*Phrase {
	if !mod.Syn.Has(TagGen) {
		return nil
	}
	result := mergeLeft(mod, ':', head, NoLeft, NoRight)
	if !numberAgrees(head, mod) {
		result = addError(result, "determiner does not agree with noun in number")
	}
	if specArgs := result.Args.Select(isRel(RelSpec)); len(specArgs) > 0 {
		if _, ok := result.Args.Extract(withRel(RelSpec, mod.Sem)); !ok {
			result = addError(result, "determiner not licensed as specifier here")
		}
	}
	return []*Phrase{result}
}

// NounRMod mirrors noun_rmod in rules.cpp: the right rule installed on
// a noun phrase. It accepts a following participial modifier ("the
// book sold yesterday"), then falls through to HeadPrep for
// prepositional phrases; the participle must be a complex phrase, not
// a bare word.
func NounRMod(head, mod *Phrase) []*Phrase {
	if !mod.Syn.Has(TagPart) {
		return HeadPrep(head, mod)
	}
	result := mergeRight(head, '<', mod, NounAdjective, NoRight)
	if mod.Syn.Has(TagPast) && (mod.HasBranch('+') || mod.HasBranch('*')) {
		result = addError(result, "past participle modifying noun can't have an object")
	}
	if mod.Syn.Has(TagPres) && mod.HasBranch(':') {
		result = addError(result, "present participle modifying noun can't have a subject")
	}
	if mod.IsWord() {
		result = addError(result, "verb phrase must be complex to right-modify a noun")
	}
	return []*Phrase{result}
}

// AdAdad mirrors ad_adad in rules.cpp: the left rule installed on an
// adnominal (adjective) word. It accepts a preceding adadnominal
// intensifier ("very expensive").
func AdAdad(mod, head *Phrase) []*Phrase {
	if !mod.Syn.Has(TagAdad) {
		return nil
	}
	return []*Phrase{mergeLeft(mod, '>', head, NoLeft, NoRight)}
}
