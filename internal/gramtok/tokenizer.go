// Package gramtok mirrors TokenIterator in tokens.h: a sequence of
// strings, each classified as an alphanumeric word, a single interior
// whitespace token, or a single newline (record-boundary) token. It is
// used both to split a sentence into words for the chart parser's
// driver and, by the lexicon loader, to read the `lexemes.txt`/
// `words.txt` grammar files.
package gramtok

import "unicode"

// Tokenizer scans runes out of a fixed input string, one token at a
// time, mirroring the original engine's TokenIterator: a run of
// alphanumeric runes is one token; any other single rune is its own
// token; consecutive space/tab collapses to one whitespore token " ";
// a run of line breaks (optionally preceded by whitespace) collapses
// to one newline token "\n".
type Tokenizer struct {
	runes []rune
	pos   int
	tok   string
}

// New returns a Tokenizer positioned on the first token of input.
func New(input string) *Tokenizer {
	t := &Tokenizer{runes: []rune(input)}
	t.readToken()
	return t
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }
func isBreak(r rune) bool { return r == '\r' || r == '\n' }

func (t *Tokenizer) peekRune() (rune, bool) {
	if t.pos >= len(t.runes) {
		return 0, false
	}
	return t.runes[t.pos], true
}

func (t *Tokenizer) readBreak() {
	t.tok = "\n"
	for {
		r, ok := t.peekRune()
		if !ok || !(isSpace(r) || isBreak(r)) {
			return
		}
		t.pos++
	}
}

func (t *Tokenizer) readWhite() {
	t.tok = " "
	for {
		r, ok := t.peekRune()
		if !ok {
			return
		}
		switch {
		case isSpace(r):
			t.pos++
		case isBreak(r):
			t.readBreak()
			return
		default:
			return
		}
	}
}

func (t *Tokenizer) readToken() {
	r, ok := t.peekRune()
	if !ok {
		t.tok = ""
		return
	}
	t.pos++
	switch {
	case isSpace(r):
		t.readWhite()
	case isBreak(r):
		t.readBreak()
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		start := t.pos - 1
		for {
			r2, ok := t.peekRune()
			if !ok || !(unicode.IsLetter(r2) || unicode.IsDigit(r2)) {
				break
			}
			t.pos++
		}
		t.tok = string(t.runes[start:t.pos])
	default:
		t.tok = string(r)
	}
}

// Next advances to and returns the next token, or "" at end of input.
func (t *Tokenizer) Next() string {
	t.readToken()
	return t.tok
}

// Peek returns the current token without advancing.
func (t *Tokenizer) Peek() string { return t.tok }

// More reports whether the current token is non-empty.
func (t *Tokenizer) More() bool { return t.tok != "" }

// IsNewline reports whether the current token is the single newline
// marker.
func (t *Tokenizer) IsNewline() bool { return t.tok == "\n" }

// IsWhitespace reports whether the current token is the single
// interior-whitespace marker.
func (t *Tokenizer) IsWhitespace() bool { return t.tok == " " }

// FlushLine discards tokens up to the next newline, leaving that
// newline as the current token ("" at end of input); used to recover
// from a malformed record.
func (t *Tokenizer) FlushLine() {
	if t.IsNewline() {
		return
	}
	for {
		r, ok := t.peekRune()
		if !ok {
			t.tok = ""
			return
		}
		t.pos++
		if r == '\n' {
			t.readBreak()
			return
		}
	}
}

// SkipWS advances past a single interior-whitespace token and reports
// whether the stream is now at a newline or at end of input.
func (t *Tokenizer) SkipWS() bool {
	if t.IsWhitespace() {
		t.Next()
	}
	return t.tok == "" || t.IsNewline()
}
