package grammatical

import "container/heap"

// Position tracks, for one token position in the sentence, every
// phrase discovered so far that begins or ends there. Mirrors
// Parser::Position in parser.h.
type Position struct {
	beginsWith []*Phrase
	endsWith   []*Phrase
}

// item is one agenda entry: a candidate phrase spanning positions
// from through to, both inclusive.
// Mirrors Parser::Item in parser.h.
type item struct {
	phrase *Phrase
	from   int
	to     int
}

// agenda is a min-heap of items ordered by ascending total error
// count, so the cheapest derivations are explored first. Mirrors the
// std::priority_queue keyed on parser.h's ErrorOrder comparator,
// rebuilt here on container/heap since Go has no ordered-queue
// container in its standard library.
type agenda []item

func (a agenda) Len() int { return len(a) }
func (a agenda) Less(i, j int) bool {
	return a[i].phrase.TotalErrors() < a[j].phrase.TotalErrors()
}
func (a agenda) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a *agenda) Push(x any)        { *a = append(*a, x.(item)) }
func (a *agenda) Pop() any {
	old := *a
	n := len(old)
	x := old[n-1]
	*a = old[:n-1]
	return x
}

// Parser is the best-first chart parser. Mirrors the Parser class in
// parser.h/parser.cpp. One Parser instance drives a single chart and
// is not safe for concurrent pushes from multiple goroutines, matching
// the original's single-threaded design.
type Parser struct {
	positions []Position
	agenda    agenda
	top       []*Phrase
}

// NewParser returns an empty parser ready to accept tokens via Push.
func NewParser() *Parser {
	return &Parser{}
}

// match mirrors Parser::_match in parser.cpp.
func (p *Parser) match(a, b *Phrase, from, to int) {
	for _, m := range a.RightRule(a, b) {
		heap.Push(&p.agenda, item{m, from, to})
	}
	for _, m := range b.LeftRule(a, b) {
		heap.Push(&p.agenda, item{m, from, to})
	}
}

// Push appends a new token position to the chart, seeding it with the
// single phrase p (typically a Word produced by the word parser).
// Mirrors Parser::push(Phrase::ptr) in parser.cpp.
func (pr *Parser) Push(p *Phrase) {
	i := len(pr.positions)
	pr.positions = append(pr.positions, Position{})
	heap.Push(&pr.agenda, item{p, i, i})
	pr.top = nil
}

// PushAlternatives is Push for a token with more than one reading
// (e.g. a homograph the lexicon assigns several lexemes): every
// alternative seeds the same new position. Mirrors
// Parser::push(const Phrases&) in parser.cpp.
func (pr *Parser) PushAlternatives(alternatives []*Phrase) {
	i := len(pr.positions)
	pr.positions = append(pr.positions, Position{})
	pr.top = nil
	for _, p := range alternatives {
		heap.Push(&pr.agenda, item{p, i, i})
	}
}

// Insert adds a phrase already known to span positions from through
// to (both inclusive) directly,
// growing the position table if needed. Used by the word parser,
// whose chart spans character offsets rather than token positions.
// Mirrors Parser::insert in parser.cpp.
func (pr *Parser) Insert(p *Phrase, from, to int) {
	if to >= len(pr.positions) {
		grown := make([]Position, to+1)
		copy(grown, pr.positions)
		pr.positions = grown
		pr.top = nil
	}
	heap.Push(&pr.agenda, item{p, from, to})
}

// Length reports how many positions the chart currently spans.
func (pr *Parser) Length() int { return len(pr.positions) }

// Run drains the agenda best-first, then enumerates every longest-first
// full-cover tiling of the sentence. Mirrors Parser::run in parser.cpp.
// Each returned []*Phrase is one complete, alternative reading.
func (pr *Parser) Run() [][]*Phrase {
	for pr.agenda.Len() > 0 {
		if len(pr.top) > 0 && pr.agenda[0].phrase.TotalErrors() > pr.top[0].TotalErrors() {
			break
		}
		it := heap.Pop(&pr.agenda).(item)
		pr.positions[it.from].beginsWith = append(pr.positions[it.from].beginsWith, it.phrase)
		pr.positions[it.to].endsWith = append(pr.positions[it.to].endsWith, it.phrase)

		if it.phrase.Length == len(pr.positions) {
			pr.top = append(pr.top, it.phrase)
		}

		if it.from > 0 {
			for _, e := range pr.positions[it.from-1].endsWith {
				pr.match(e, it.phrase, it.from-e.Length, it.to)
			}
		}
		if it.to+1 < len(pr.positions) {
			for _, e := range pr.positions[it.to+1].beginsWith {
				pr.match(it.phrase, e, it.from, it.to+e.Length)
			}
		}
	}

	if len(pr.positions) == 0 {
		return nil
	}
	var result [][]*Phrase
	pr.generateResult(0, nil, &result)
	return result
}

func (pr *Parser) generateResult(length int, soFar []*Phrase, result *[][]*Phrase) {
	if length == len(pr.positions) {
		*result = append(*result, soFar)
		return
	}
	longest := 0
	for _, p := range pr.positions[length].beginsWith {
		if p.Length > longest {
			longest = p.Length
		}
	}
	if longest == 0 {
		return
	}
	for _, p := range pr.positions[length].beginsWith {
		if p.Length != longest {
			continue
		}
		next := append(append([]*Phrase(nil), soFar...), p)
		pr.generateResult(length+longest, next, result)
	}
}
