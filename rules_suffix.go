package grammatical

// NounSuffix and VerbSuffix mirror noun_suffix and verb_suffix in
// rules.cpp: morpheme-level right rules that run inside the word
// parser's own chart, combining a root morpheme with a following
// TagSuffix-tagged morpheme to produce an inflected or derived
// morpheme.

// NounSuffix attaches the regular plural marker "-s" to a
// regular-countable noun stem.
func NounSuffix(head, mod *Phrase) []*Phrase {
	if !mod.Syn.Has(TagSuffix) || mod.Orth != "s" || !head.Syn.Has(TagRc) {
		return nil
	}
	shifted := head.WithTags(TagSet(TagPl)).WithoutTags(TagSet(TagSg | TagUc | TagRc))
	return []*Phrase{mergeRight(shifted, '-', mod, NoLeft, NoRight)}
}

// VerbSuffix attaches one of the regular verb inflections, "-s"
// (third-singular present), "-ing" (present participle), "-ed" (past
// tense or past participle, genuinely ambiguous so both candidates
// are returned for the chart to weigh), or one of the two agentive
// nominalisers "-er"/"-ee", which derive a noun from the verb stem
// entirely, shifting both its tags and its semantic identity.
func VerbSuffix(head, mod *Phrase) []*Phrase {
	if !mod.Syn.Has(TagSuffix) {
		return nil
	}
	switch mod.Orth {
	case "s":
		if !head.Syn.Has(TagRsg) {
			return nil
		}
		shifted := head.WithTags(TagSet(TagFin | TagPres | TagSg | TagThird)).
			WithoutTags(TagSet(TagDict | TagPl | TagFirst | TagSecond))
		return []*Phrase{mergeRight(shifted, '-', mod, NoLeft, VerbRSpec)}

	case "ing":
		if !head.Syn.Has(TagRpart) {
			return nil
		}
		shifted := head.WithTags(TagSet(TagPart | TagPres)).WithoutTags(TagSet(TagDict | TagFree | TagFin))
		return []*Phrase{mergeRight(shifted, '-', mod, NoLeft, VerbBicomp)}

	case "ed":
		// The result may be finite, participle, both, or, for a verb
		// the lexicon never marked regular in either paradigm, neither,
		// in which case a single best-effort finite reading is offered
		// with a diagnostic.
		var candidates []*Phrase
		strip := TagSet(TagDict | TagFree | TagPres | TagRsg | TagRpast | TagRpart)
		if head.Syn.Has(TagRpast) {
			finite := head.WithTags(TagSet(TagFin | TagPast)).WithoutTags(strip)
			candidates = append(candidates, mergeRight(finite, '-', mod, NoLeft, VerbRSpec))
		}
		if head.Syn.Has(TagRpart) {
			participle := head.WithTags(TagSet(TagPart | TagPast)).WithoutTags(strip.InsertSet(TagSet(TagFin)))
			candidates = append(candidates, mergeRight(participle, '-', mod, NoLeft, VerbBicomp))
		}
		if len(candidates) == 0 {
			fallback := head.WithTags(TagSet(TagFin | TagPast)).WithoutTags(strip)
			match := addError(mergeRight(fallback, '-', mod, NoLeft, VerbRSpec),
				"verb is not marked regular for past tense or past participle")
			candidates = append(candidates, match)
		}
		return candidates

	case "er":
		return []*Phrase{mergeRightLex(nominalized(head), '-', mod, NounAdjective, NounRMod, agentOf)}

	case "ee":
		return []*Phrase{mergeRightLex(nominalized(head), '-', mod, NounAdjective, NounRMod, patientOf)}

	default:
		return nil
	}
}

// nominalized strips a verb stem of its verbal tags and gives it the
// syntactic profile of a regular countable noun, ahead of the
// semantic shift VerbSuffix's gen function applies.
func nominalized(head *Phrase) *Phrase {
	return head.WithTags(TagSet(TagNom|TagAkk|TagRc)).
		WithoutTags(TagSet(TagFin | TagPart | TagFree | TagDict | TagPres | TagPast | TagModal | TagVerbe | TagVerby | TagRsg | TagRpast | TagRpart))
}

func agentOf(h *Lexeme) *Lexeme {
	agent := NewLexeme("")
	agent.Become(h)
	return agent
}

func patientOf(h *Lexeme) *Lexeme {
	patient := NewLexeme("")
	patient.Become(h)
	return patient
}
