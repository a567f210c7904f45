package grammatical

// PhraseKind tags the Phrase sum type. The original engine used four
// classes under a Phrase base (Morpheme, Word, LeftBranch,
// RightBranch) and downcast with dynamic_cast; here a tagged union
// plays the same role without the runtime type check.
type PhraseKind int

const (
	KindMorpheme PhraseKind = iota
	KindWord
	KindLeftBranch
	KindRightBranch
)

// LeftRule combines a mod sitting to the left of head. RightRule
// combines a mod sitting to the right of head. Mirrors the LeftRule/
// RightRule function-pointer typedefs in phrase.h; kept as plain
// function values here too, never closures.
type LeftRule func(mod, head *Phrase) []*Phrase
type RightRule func(head, mod *Phrase) []*Phrase

// NoLeft and NoRight reject every neighbour. Mirrors no_left/no_right
// in phrase.h, the terminal state a rule installs once a slot (e.g. a
// subject) can never be filled again.
func NoLeft(mod, head *Phrase) []*Phrase  { return nil }
func NoRight(head, mod *Phrase) []*Phrase { return nil }

// Phrase is a parse-tree node, leaf or binary branch, immutable after
// construction. Mirrors the Phrase/BinaryPhrase/LeftBranch/
// RightBranch/Word class hierarchy in phrase.h, flattened into one
// struct with Kind selecting which fields are meaningful.
type Phrase struct {
	Kind PhraseKind

	Length int
	Syn    TagSet
	Sem    *Lexeme
	Args   ArgBag
	Errors []string

	LeftRule  LeftRule
	RightRule RightRule

	// Morpheme; a Word copies its morpheme's value.
	Orth string

	// Word only: the morpheme-level parse this word wraps.
	Morph *Phrase

	// LeftBranch / RightBranch only.
	Type byte
	Head *Phrase
	Mod  *Phrase
}

// TotalErrors sums this phrase's own diagnostics with every
// diagnostic recorded on its descendants. Mirrors errors.length() in
// Parser's ErrorOrder comparator (parser.h), generalised from the
// original's Chain-of-strings length to a recursive walk over Go's
// tree-shaped Phrase.
func (p *Phrase) TotalErrors() int {
	if p == nil {
		return 0
	}
	n := len(p.Errors)
	switch p.Kind {
	case KindWord:
		n += p.Morph.TotalErrors()
	case KindLeftBranch, KindRightBranch:
		n += p.Head.TotalErrors() + p.Mod.TotalErrors()
	}
	return n
}

// HasBranch walks the head spine, following Head links only, never
// descending into Mod, looking for a binary node of the given branch
// type. Mirrors Phrase::hasBranch.
func (p *Phrase) HasBranch(branchType byte) bool {
	for cur := p; cur != nil; {
		switch cur.Kind {
		case KindLeftBranch, KindRightBranch:
			if cur.Type == branchType {
				return true
			}
			cur = cur.Head
		default:
			return false
		}
	}
	return false
}

// HeadOrth walks the head spine to the bottom-most Word or Morpheme
// and returns its orthography. head_prep needs a preposition's own
// surface form to look up its Mark even after the preposition has
// picked up its complement and is no longer a bare word.
func (p *Phrase) HeadOrth() string {
	for cur := p; cur != nil; {
		switch cur.Kind {
		case KindLeftBranch, KindRightBranch:
			cur = cur.Head
		default:
			return cur.Orth
		}
	}
	return ""
}

// IsWord reports whether p is a bare Word with no internal branching.
// Mirrors noun_rmod's dynamic_cast<const Word*>(mod.get()) check in
// rules.cpp: a verb phrase right-modifying a noun must be complex.
func (p *Phrase) IsWord() bool { return p.Kind == KindWord }

// WithTags returns a copy of p with extra tags added to Syn, used by
// suffix rules that shift a morpheme's word-class.
func (p *Phrase) WithTags(add TagSet) *Phrase {
	q := *p
	q.Syn = q.Syn.InsertSet(add)
	return &q
}

// WithoutTags returns a copy of p with the given tags removed.
func (p *Phrase) WithoutTags(remove TagSet) *Phrase {
	q := *p
	q.Syn = q.Syn.Remove(remove)
	return &q
}

// lexGen derives a new head lexeme from the original head's lexeme.
// Mirrors the LexemeGen template parameter merge() takes in rules.cpp,
// used by the suffix rules' inline lambdas to build an anonymous
// word-class shift.
type lexGen func(head *Lexeme) *Lexeme

func keepHeadLexeme(head *Lexeme) *Lexeme { return head }

// mergeLeft builds a LeftBranch: head on the right, mod on the left.
// Mirrors the LeftBranch-returning merge() overload in rules.cpp.
func mergeLeft(mod *Phrase, branchType byte, head *Phrase, l LeftRule, r RightRule) *Phrase {
	return mergeLeftLex(mod, branchType, head, l, r, keepHeadLexeme)
}

func mergeLeftLex(mod *Phrase, branchType byte, head *Phrase, l LeftRule, r RightRule, gen lexGen) *Phrase {
	return &Phrase{
		Kind:      KindLeftBranch,
		Length:    head.Length + mod.Length,
		Syn:       head.Syn,
		Sem:       gen(head.Sem),
		Args:      head.Args.Clone(),
		LeftRule:  l,
		RightRule: r,
		Type:      branchType,
		Head:      head,
		Mod:       mod,
	}
}

// mergeRight builds a RightBranch: head on the left, mod on the right.
// Mirrors the RightBranch-returning merge() overload in rules.cpp.
func mergeRight(head *Phrase, branchType byte, mod *Phrase, l LeftRule, r RightRule) *Phrase {
	return mergeRightLex(head, branchType, mod, l, r, keepHeadLexeme)
}

func mergeRightLex(head *Phrase, branchType byte, mod *Phrase, l LeftRule, r RightRule, gen lexGen) *Phrase {
	return &Phrase{
		Kind:      KindRightBranch,
		Length:    head.Length + mod.Length,
		Syn:       head.Syn,
		Sem:       gen(head.Sem),
		Args:      head.Args.Clone(),
		LeftRule:  l,
		RightRule: r,
		Type:      branchType,
		Head:      head,
		Mod:       mod,
	}
}

// addError returns p with diag appended to its own (local) error
// list. Since phrases never mutate after construction, every rule
// that wants to flag a diagnostic calls this on the phrase it just
// built, before handing it back to the chart.
func addError(p *Phrase, diag string) *Phrase {
	p.Errors = append(p.Errors[:len(p.Errors):len(p.Errors)], diag)
	return p
}

// String renders p as a bracketed dependency tree, with the branch
// type as the infix character. Mirrors LeftBranch::toString and
// RightBranch::toString in phrase.h.
func (p *Phrase) String() string {
	switch p.Kind {
	case KindMorpheme:
		return p.Orth
	case KindWord:
		if p.Morph != nil {
			return p.Morph.String()
		}
		return p.Orth
	case KindLeftBranch:
		return "[" + p.Mod.String() + string(p.Type) + p.Head.String() + "]"
	case KindRightBranch:
		return "[" + p.Head.String() + string(p.Type) + p.Mod.String() + "]"
	default:
		return "?"
	}
}

// NewMorpheme builds a leaf Morpheme phrase for orth, installing its
// suffix-dispatch right rule. Mirrors the Morpheme constructor in
// rules.cpp: a regular-countable morpheme accepts a following noun
// suffix; a stem tagged rsg, rpast, rpart, verbe, verby or dict
// accepts a following verb suffix instead.
func NewMorpheme(orth string, syn TagSet, sem *Lexeme) *Phrase {
	m := &Phrase{
		Kind:      KindMorpheme,
		Length:    len([]rune(orth)),
		Syn:       syn,
		Sem:       sem,
		Args:      sem.Args().Clone(),
		Orth:      orth,
		LeftRule:  NoLeft,
		RightRule: NoRight,
	}
	if syn.Has(TagRc) {
		m.RightRule = NounSuffix
	}
	if syn.HasAny(VerbRegularity) || syn.HasAny(TagSet(TagVerbe|TagVerby|TagDict)) {
		m.RightRule = VerbSuffix
	}
	return m
}

// auxRules is the lookup table of specialised rule pairs keyed by a
// word's orthography. Mirrors the "special" lookup table in the Word
// constructor in rules.cpp, generalised from its handful of hardcoded
// irregular entries to cover the full auxiliary paradigm. Populated in
// rules_aux.go's init.
var auxRules = map[string]struct {
	left  LeftRule
	right RightRule
}{}

// NewWord wraps morph, a morpheme or a morpheme tree produced by the
// word parser's own chart, in a unary Word phrase and installs the
// word-level left_rule/right_rule, either from the auxiliary lookup
// table or derived from the morpheme's own tags. Mirrors the Word
// constructor in rules.cpp.
func NewWord(morph *Phrase) *Phrase {
	w := &Phrase{
		Kind:      KindWord,
		Length:    1,
		Syn:       morph.Syn,
		Sem:       morph.Sem,
		Args:      morph.Args.Clone(),
		Morph:     morph,
		Orth:      morph.Orth,
		LeftRule:  NoLeft,
		RightRule: NoRight,
	}

	if special, ok := auxRules[morph.Orth]; ok {
		w.LeftRule = special.left
		w.RightRule = special.right
		return w
	}

	switch {
	case w.Syn.HasAny(TagSet(TagNom | TagAkk)):
		w.LeftRule = NounAdjective
		w.RightRule = NounRMod
	case w.Syn.HasAny(TagSet(TagFin | TagPart)):
		if w.Syn.Has(TagFin) {
			w.LeftRule = VerbSpec
		}
		if w.Syn.Has(TagFree) {
			w.RightRule = VerbRSpec
		} else {
			w.RightRule = VerbBicomp
		}
	case w.Syn.Has(TagAdn):
		w.LeftRule = AdAdad
	case w.Syn.Has(TagAdv):
		// bare adverbs attach only as right-modifiers of a verb; they
		// carry no rules of their own.
	case w.Syn.Has(TagPrep):
		w.RightRule = PrepComp
	}
	return w
}
