package grammatical

import "fmt"

// subjectVerbAgreement mirrors subject_verb_agreement in the original
// engine's rules.cpp: a finite present-tense verb agrees with its
// subject only when both, or neither, are third-person-singular.
func subjectVerbAgreement(mod, head *Phrase) bool {
	if !head.Syn.HasAll(TagSet(TagPres | TagFin)) {
		return true
	}
	return head.Syn.HasAll(Sg3) == mod.Syn.HasAll(Sg3)
}

// subjectBeAgreement mirrors subject_be_agreement: the copula
// paradigm ("am"/"is"/"are"/"was"/"were") agrees on number and person
// with its subject.
func subjectBeAgreement(mod, head *Phrase) bool {
	if head.Syn.Has(TagPart) {
		return true
	}
	if head.Syn.HasAll(TagSet(TagPl|TagSecond)) && !mod.Syn.HasAny(TagSet(TagPl|TagSecond)) {
		return false
	}
	if head.Syn.Has(TagSg) && !mod.Syn.Has(TagSg) {
		return false
	}
	sel := head.Syn.Select(Person)
	if sel == 0 {
		return true
	}
	return mod.Syn.HasAll(sel)
}

// numberAgrees checks that mod's number tags (if head declares any)
// are a superset of the number tags head requires. Used by noun_det.
func numberAgrees(head, mod *Phrase) bool {
	sel := head.Syn.Select(Number)
	if sel == 0 {
		return true
	}
	return mod.Syn.HasAll(sel)
}

// leftSpec implements the shared shape of verb_spec / be_lspec in
// rules.cpp: a nominative mod attaches to the left of head as its
// specifier, closing off any further left or right attachment once a
// subject has filled the slot.
func leftSpec(mod, head *Phrase, agrees func(mod, head *Phrase) bool, agreeDiag string) []*Phrase {
	if !mod.Syn.Has(TagNom) {
		return nil
	}
	result := mergeLeft(mod, ':', head, NoLeft, NoRight)
	if specArgs := result.Args.Select(isRel(RelSpec)); len(specArgs) > 0 {
		if _, ok := result.Args.Extract(withRel(RelSpec, mod.Sem)); !ok {
			result = addError(result, "subject does not satisfy verb's selectional restriction")
		}
	}
	if !agrees(mod, head) {
		result = addError(result, agreeDiag)
	}
	return []*Phrase{result}
}

// rightSpec implements the shared shape of verb_rspec / be_rspec /
// have_rspec in rules.cpp: subject-auxiliary inversion, where the
// nominative mod sits to the right of the already-fronted auxiliary
// head and is accepted as its specifier, falling through to next for
// every other candidate.
func rightSpec(head, mod *Phrase, next RightRule, agrees func(mod, head *Phrase) bool, agreeDiag string) []*Phrase {
	result := next(head, mod)
	if mod.Syn.Has(TagNom) {
		match := mergeRight(head, ':', mod, NoLeft, next)
		if !agrees(mod, head) {
			match = addError(match, agreeDiag)
		}
		result = append(result, match)
	}
	return result
}

// isRel returns a predicate matching any argument of the given Rel,
// regardless of its semantic requirement.
func isRel(rel Rel) func(Argument) bool {
	return func(a Argument) bool { return a.Rel == rel }
}

// headComp implements the shared "does mod fill a complement slot"
// shape used by verb_comp / verb_bicomp / prep_comp / be_comp /
// have_comp in rules.cpp's head_comp helper. requiredAny gates whether
// a match is even attempted; when the match is attempted, a
// lexicon-declared argument of the given Rel (if any) is checked and
// consumed, and requiredAll (when non-zero) further demands those
// exact tags on pain of mismatchDiag.
func headComp(head, mod *Phrase, branchType byte, rel Rel, next RightRule, requiredAny TagSet, requiredAll TagSet, mismatchDiag string) []*Phrase {
	result := next(head, mod)
	if !mod.Syn.HasAny(requiredAny) {
		return result
	}
	match := mergeRight(head, branchType, mod, head.LeftRule, next)

	if declared := match.Args.Select(isRel(rel)); len(declared) > 0 {
		if _, ok := match.Args.Extract(withRel(rel, mod.Sem)); !ok {
			match = addError(match, "complement does not satisfy selectional restriction")
		}
	}
	if mod.Syn.HasAny(TagSet(TagFin|TagPart)) && mod.HasBranch(':') {
		match = addError(match, "verbal object cannot have a subject")
	}
	if requiredAll != 0 && !mod.Syn.HasAll(requiredAll) {
		match = addError(match, mismatchDiag)
	}
	result = append(result, match)
	return result
}

// markFromOrth maps a preposition's surface form to the Mark it
// realises, mirroring head_prep's orthography-keyed mark lookup in
// rules.cpp.
func markFromOrth(orth string) Mark {
	switch orth {
	case "by":
		return MarkBy
	case "of":
		return MarkOf
	case "to":
		return MarkTo
	case "for":
		return MarkFor
	default:
		return MarkNone
	}
}

func markDiag(mark Mark, orth string) string {
	if mark == MarkNone {
		return fmt.Sprintf("preposition %q not licensed here", orth)
	}
	return fmt.Sprintf("preposition %q (mark %s) not licensed here", orth, mark)
}
