package grammatical

// VerbSpec mirrors verb_spec in rules.cpp: the left rule installed on
// finite verbs. A nominative subject attaches to the left, checking
// person/number agreement via subjectVerbAgreement.
func VerbSpec(mod, head *Phrase) []*Phrase {
	return leftSpec(mod, head, subjectVerbAgreement, "verb does not agree with its subject")
}

// VerbRSpec mirrors verb_rspec in rules.cpp: the right rule NewWord
// installs on verbs tagged free, and VerbSuffix on the finite forms it
// derives with "-s" and "-ed". It accepts a subject to the right
// instead of the left, then falls through to VerbBicomp. The
// auxiliaries in auxRules ("do", the modals, ...) use their own
// right rules instead.
func VerbRSpec(head, mod *Phrase) []*Phrase {
	return rightSpec(head, mod, VerbBicomp, subjectVerbAgreement, "verb does not agree with its subject")
}

// VerbBicomp mirrors verb_bicomp in rules.cpp: the outermost
// right-rule stage on a verb. It accepts a second, ditransitive
// complement ("gave him the book") filling the head's RelBicomp
// argument slot, before falling through to VerbComp.
func VerbBicomp(head, mod *Phrase) []*Phrase {
	return headComp(head, mod, '*', RelBicomp, VerbComp, TagSet(TagAkk), 0, "")
}

// VerbComp mirrors verb_comp in rules.cpp: it accepts the verb's
// primary complement, a direct object, a finite clausal complement, or
// a participial/infinitival complement, then falls through to VerbAdv.
func VerbComp(head, mod *Phrase) []*Phrase {
	return headComp(head, mod, '+', RelComp, VerbAdv, TagSet(TagAkk|TagFin|TagPart|TagDict), 0, "")
}

// VerbAdv accepts a trailing adverbial modifier, stacking further
// adverbs to its own right, and otherwise falls through to HeadPrep
// for prepositional phrases.
func VerbAdv(head, mod *Phrase) []*Phrase {
	if !mod.Syn.Has(TagAdv) {
		return HeadPrep(head, mod)
	}
	return []*Phrase{mergeRight(head, '<', mod, head.LeftRule, VerbAdv)}
}
