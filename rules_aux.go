package grammatical

// The auxiliary verbs, "to be", "to have", "to do", and the modal
// paradigm, each install a specialised left/right rule pair instead of
// the generic noun/verb dispatch NewWord falls back to, carried
// forward from the Word constructor's "special" lookup table in
// rules.cpp and extended here with "do" and the modal paradigm, which
// that table never covered.
func init() {
	be := struct {
		left  LeftRule
		right RightRule
	}{left: BeLSpec, right: BeRSpec}
	for _, orth := range []string{"am", "is", "are", "was", "were"} {
		auxRules[orth] = be
	}

	have := struct {
		left  LeftRule
		right RightRule
	}{left: VerbSpec, right: HaveRSpec}
	for _, orth := range []string{"have", "has", "had"} {
		auxRules[orth] = have
	}

	do := struct {
		left  LeftRule
		right RightRule
	}{left: VerbSpec, right: DoRSpec}
	for _, orth := range []string{"do", "does", "did"} {
		auxRules[orth] = do
	}

	modal := struct {
		left  LeftRule
		right RightRule
	}{left: VerbSpec, right: ModalRSpec}
	for _, orth := range []string{"can", "could", "may", "might", "must", "shall", "should", "will", "would"} {
		auxRules[orth] = modal
	}
}

// BeLSpec accepts a nominative subject to the left, agreeing via
// subjectBeAgreement rather than subjectVerbAgreement (copula
// agreement is irregular: "am"/"is"/"are" don't follow the regular
// present-tense third-singular split).
func BeLSpec(mod, head *Phrase) []*Phrase {
	return leftSpec(mod, head, subjectBeAgreement, "subject does not agree with 'to be'")
}

// BeRSpec is the inverted-question/there-construction counterpart of
// BeLSpec ("is she happy", "are there books").
func BeRSpec(head, mod *Phrase) []*Phrase {
	return rightSpec(head, mod, BeComp, subjectBeAgreement, "subject does not agree with 'to be'")
}

// BeComp accepts the copula's complement: a predicate nominal
// (accusative), a predicate adjective (adnominal), or a verbal
// complement forming the progressive or passive. Only the verbal case
// is held to the "dictionary form" requirement the original engine's
// be_comp enforces; a plain predicate noun or adjective is not.
func BeComp(head, mod *Phrase) []*Phrase {
	result := HeadPrep(head, mod)
	if !mod.Syn.HasAny(TagSet(TagAkk | TagAdn | TagFin | TagPart)) {
		return result
	}
	match := mergeRight(head, '+', mod, head.LeftRule, HeadPrep)
	if declared := match.Args.Select(isRel(RelComp)); len(declared) > 0 {
		if _, ok := match.Args.Extract(withRel(RelComp, mod.Sem)); !ok {
			match = addError(match, "complement does not satisfy selectional restriction")
		}
	}
	if mod.Syn.HasAny(TagSet(TagFin | TagPart)) {
		if mod.HasBranch(':') {
			match = addError(match, "verbal object cannot have a subject")
		}
		if !mod.Syn.HasAll(TagSet(TagFin | TagPres | TagPl)) {
			match = addError(match, "verb object of 'to be' must be dictionary form")
		}
	}
	result = append(result, match)
	return result
}

// HaveRSpec is the inversion counterpart of the ordinary VerbSpec left
// rule "have" keeps for its declarative subject ("have you seen it").
func HaveRSpec(head, mod *Phrase) []*Phrase {
	return rightSpec(head, mod, HaveComp, subjectVerbAgreement, "verb does not agree with its subject")
}

// HaveComp accepts a direct object or a past-participial complement
// ("has seen", "has the book"); only the participial case is held to
// the past-participle requirement.
func HaveComp(head, mod *Phrase) []*Phrase {
	result := HeadPrep(head, mod)
	if !mod.Syn.HasAny(TagSet(TagAkk | TagPart)) {
		return result
	}
	match := mergeRight(head, '+', mod, head.LeftRule, HeadPrep)
	if declared := match.Args.Select(isRel(RelComp)); len(declared) > 0 {
		if _, ok := match.Args.Extract(withRel(RelComp, mod.Sem)); !ok {
			match = addError(match, "complement does not satisfy selectional restriction")
		}
	}
	if mod.Syn.Has(TagPart) && !mod.Syn.HasAll(TagSet(TagPast|TagPart)) {
		match = addError(match, "verb object of 'to have' must be past participle")
	}
	result = append(result, match)
	return result
}

// DoRSpec fronts "do" for question formation and negation
// ("do you sell old books").
func DoRSpec(head, mod *Phrase) []*Phrase {
	return rightSpec(head, mod, DoComp, subjectVerbAgreement, "verb does not agree with its subject")
}

// DoComp requires its complement to be the bare dictionary form of a
// verb. "do" has no counterpart in rules.cpp's auxiliary family; this
// rule was added for do-support, which that grammar never modelled.
func DoComp(head, mod *Phrase) []*Phrase {
	return headComp(head, mod, '+', RelComp, HeadPrep, TagSet(TagDict|TagAkk), TagSet(TagDict), "verb object of 'do' must be dictionary form")
}

// ModalRSpec fronts a modal for inversion ("might they come").
func ModalRSpec(head, mod *Phrase) []*Phrase {
	return rightSpec(head, mod, ModalComp, subjectVerbAgreement, "verb does not agree with its subject")
}

// ModalComp requires a dictionary-form verbal complement, exactly as
// DoComp: modals, like "do", take no inflected complement.
func ModalComp(head, mod *Phrase) []*Phrase {
	return headComp(head, mod, '+', RelComp, HeadPrep, TagSet(TagDict), TagSet(TagDict), "modal verb's complement must be dictionary form")
}
