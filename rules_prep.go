package grammatical

// HeadPrep mirrors head_prep in rules.cpp: the right rule every head
// ends its right-rule chain with. It accepts a trailing preposition
// phrase, checks that the preposition itself has already picked up a
// '+' complement, and matches the preposition's surface form against
// the head's own mod-arguments for the corresponding Mark. Installs
// itself again as the next right rule so prepositional phrases may
// chain ("sold by the dealer to him").
func HeadPrep(head, mod *Phrase) []*Phrase {
	if !mod.Syn.Has(TagPrep) {
		return nil
	}
	result := mergeRight(head, '<', mod, head.LeftRule, HeadPrep)
	if !mod.HasBranch('+') {
		result = addError(result, "preposition has no complement")
	}
	orth := mod.HeadOrth()
	mark := markFromOrth(orth)
	if len(result.Args.Select(withMark(RelMod, mark))) == 0 {
		result = addError(result, markDiag(mark, orth))
	}
	return []*Phrase{result}
}

// PrepComp mirrors prep_comp in rules.cpp: the right rule installed on
// a bare preposition word. It takes exactly one '+' complement (an
// accusative noun phrase) and nothing else, using head_comp's shape
// with head_prep excluded from the fall-through chain, since a
// preposition never takes a trailing preposition of its own.
func PrepComp(head, mod *Phrase) []*Phrase {
	return headComp(head, mod, '+', RelComp, NoRight, TagSet(TagAkk), 0, "")
}
