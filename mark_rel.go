package grammatical

// Mark names a preposition marker a head's argument may require.
type Mark int

const (
	MarkNone Mark = iota
	MarkBy
	MarkOf
	MarkTo
	MarkFor
)

// markNames resolves a lexicon-file identifier to a Mark.
var markNames = map[string]Mark{
	"none": MarkNone,
	"by":   MarkBy,
	"of":   MarkOf,
	"to":   MarkTo,
	"for":  MarkFor,
}

func (m Mark) String() string {
	switch m {
	case MarkBy:
		return "by"
	case MarkOf:
		return "of"
	case MarkTo:
		return "to"
	case MarkFor:
		return "for"
	default:
		return "none"
	}
}

// Rel is one of the four dependency slots a head exposes.
type Rel int

const (
	RelSpec Rel = iota
	RelMod
	RelComp
	RelBicomp
)

func (r Rel) String() string {
	switch r {
	case RelSpec:
		return "spec"
	case RelMod:
		return "mod"
	case RelComp:
		return "comp"
	case RelBicomp:
		return "bicomp"
	default:
		return "?"
	}
}
