package grammatical

// Lexeme is the semantic identity of a word or a meta-lexeme built by
// the loader to bundle several requirements together. Mirrors Lexeme
// in phrase.h: Sem plays the role of the original's parts, and Is
// walks it the same way Lexeme::is recurses through parts.
//
// An anonymous lexeme (Name == "") contributes no identity of its own;
// it exists only to aggregate Sem parents, as built by the loader for
// dot-joined compound requirements ("noun.animate") and by the suffix
// rules for a derived word class.
type Lexeme struct {
	Name string
	Sem  []*Lexeme
	args ArgBag
}

// NewLexeme creates a lexeme with the given parents.
func NewLexeme(name string, parents ...*Lexeme) *Lexeme {
	return &Lexeme{Name: name, Sem: parents}
}

// Become appends parent to l's sem list, used by the loader when
// building an anonymous aggregator and by suffix rules deriving a new
// lexeme from a head's.
func (l *Lexeme) Become(parent *Lexeme) {
	if parent == nil {
		return
	}
	l.Sem = append(l.Sem, parent)
}

// Args exposes the argument bag (read-only view; callers that need to
// consume an argument use Phrase.Args, a per-phrase clone, not this
// one, see ArgBag.Clone).
func (l *Lexeme) Args() ArgBag {
	if l == nil {
		return ArgBag{}
	}
	return l.args
}

// AddArgument registers an argument frame entry on the lexicon's
// master copy of l (done once, at load time).
func (l *Lexeme) AddArgument(a Argument) {
	l.args.Emplace(a)
}

// Is reports whether l satisfies the semantic requirement target:
// true iff l == target, or, when target is itself a compound
// aggregate (an anonymous lexeme built from a dot-joined bundle), l
// satisfies every one of target's parts, or l reaches target
// transitively through its own Sem ancestry. Mirrors Lexeme::is in
// phrase.h.
//
// The DAG is trusted not to contain cycles (the loader never
// introduces one), but Is still guards against one with a visited
// set, so a cycle in a hand-edited lexicon file makes Is return
// false instead of hanging a live parse.
func (l *Lexeme) Is(target *Lexeme) bool {
	if target == nil {
		return true
	}
	if l == nil {
		return false
	}
	return l.is(target, make(map[*Lexeme]bool))
}

func (l *Lexeme) is(target *Lexeme, visited map[*Lexeme]bool) bool {
	if l == target {
		return true
	}

	if target.Name == "" && len(target.Sem) > 0 {
		for _, part := range target.Sem {
			if !l.is(part, make(map[*Lexeme]bool)) {
				return false
			}
		}
		return true
	}

	if visited[l] {
		return false
	}
	visited[l] = true

	for _, parent := range l.Sem {
		if parent.is(target, visited) {
			return true
		}
	}
	return false
}

// MatchesAny scans candidates and reports whether l satisfies any one
// of them, giving an Argument's Sem list its OR-any matching
// semantics.
func (l *Lexeme) MatchesAny(candidates []*Lexeme) bool {
	for _, c := range candidates {
		if l.Is(c) {
			return true
		}
	}
	return false
}

// Argument states that a lexeme, when taking a dependent of kind Rel
// through the optional Mark, requires the dependent to satisfy one of
// Sem's alternatives. Like parse_arg's m->args.emplace(rel, l) in
// word_parser.cpp, the loader emplaces one Argument per pipe-separated
// alternative, each with a single-element Sem.
type Argument struct {
	Rel  Rel
	Mark Mark
	Sem  []*Lexeme
}

// Matches reports whether dependent satisfies this argument's
// requirement.
func (a Argument) Matches(dependent *Lexeme) bool {
	if dependent == nil {
		return false
	}
	return dependent.MatchesAny(a.Sem)
}

// ArgBag is an unordered bag of Argument with O(n) predicate-based
// extraction, playing the role of a Morpheme's args member in
// word_parser.cpp (m->args.emplace(rel, l)). A plain slice is plenty
// at the grammar sizes this engine deals with.
type ArgBag struct {
	items []Argument
}

// Emplace appends an argument to the bag.
func (b *ArgBag) Emplace(a Argument) {
	b.items = append(b.items, a)
}

// Select returns every argument matching pred, without removing them.
func (b ArgBag) Select(pred func(Argument) bool) []Argument {
	var out []Argument
	for _, a := range b.items {
		if pred(a) {
			out = append(out, a)
		}
	}
	return out
}

// Extract removes and returns the first argument matching pred: once
// an argument is extracted from a phrase's own (cloned) bag, it can
// never be satisfied again by a rule operating on that phrase or any
// phrase built from it, because the clone, not the shared original, is
// what gets mutated.
func (b *ArgBag) Extract(pred func(Argument) bool) (Argument, bool) {
	for i, a := range b.items {
		if pred(a) {
			b.items = append(b.items[:i:i], b.items[i+1:]...)
			return a, true
		}
	}
	return Argument{}, false
}

// Erase is Extract without needing the removed value.
func (b *ArgBag) Erase(pred func(Argument) bool) bool {
	_, ok := b.Extract(pred)
	return ok
}

// Clone returns an independent copy of the bag. Phrase construction
// always clones the head's bag before handing it to a new phrase, so
// that extracting an argument on a derivation never mutates the
// shared sub-phrase other derivations still reference.
func (b ArgBag) Clone() ArgBag {
	return ArgBag{items: append([]Argument(nil), b.items...)}
}

// Len reports the number of unconsumed arguments in the bag.
func (b ArgBag) Len() int { return len(b.items) }

// withRel returns a predicate matching arguments of the given
// relation and (when dependent is non-nil) satisfied by dependent.
func withRel(rel Rel, dependent *Lexeme) func(Argument) bool {
	return func(a Argument) bool {
		return a.Rel == rel && a.Matches(dependent)
	}
}

// withMark returns a predicate matching arguments of the given
// relation and mark, regardless of semantic requirement. Used by
// head_prep to locate the argument slot a preposition's marker fills.
func withMark(rel Rel, mark Mark) func(Argument) bool {
	return func(a Argument) bool {
		return a.Rel == rel && a.Mark == mark
	}
}
