package grammatical

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/eivinsam/grammatical/internal/gramtok"
)

// Lexicon is the process-wide, read-only result of loading the
// grammar's two data files. Once built it is never mutated, so one
// Lexicon may be shared freely across concurrent Parser instances.
// Mirrors Collatinus's own Lexicon/Lemmatiseur split in loader.go: the
// loaded tables are built once and handed out by reference thereafter.
type Lexicon struct {
	Lexemes map[string]*Lexeme
	Words   map[string][]*Phrase

	ambiguous map[string]bool
}

// Load reads lexemes.txt then words.txt out of dataDir. A line whose
// first token is '#' is a comment and is skipped entirely. Malformed
// records, unknown or ambiguous references, and unexpected punctuation
// are reported to the standard logger with file and line number and
// skipped; the loader never aborts the program for a bad record,
// mirroring loader.go's own log-and-continue recovery. Only a missing
// or unreadable file is returned as an error.
func Load(dataDir string) (*Lexicon, error) {
	lx := &Lexicon{
		Lexemes:   map[string]*Lexeme{},
		Words:     map[string][]*Phrase{},
		ambiguous: map[string]bool{},
	}

	lexemesPath := filepath.Join(dataDir, "lexemes.txt")
	data, err := os.ReadFile(lexemesPath)
	if err != nil {
		return nil, fmt.Errorf("open lexemes.txt: %w", err)
	}
	lx.loadRecords(string(data), lexemesPath, false)

	wordsPath := filepath.Join(dataDir, "words.txt")
	data, err = os.ReadFile(wordsPath)
	if err != nil {
		return nil, fmt.Errorf("open words.txt: %w", err)
	}
	lx.loadRecords(string(data), wordsPath, true)

	return lx, nil
}

func (lx *Lexicon) lookupLexeme(name, path string, line int) *Lexeme {
	if lx.ambiguous[name] {
		log.Printf("%s:%d: ambiguous lexeme reference %q", path, line, name)
		return nil
	}
	l, ok := lx.Lexemes[name]
	if !ok {
		log.Printf("%s:%d: unknown lexeme %q", path, line, name)
		return nil
	}
	return l
}

func mergeSem(a, b *Lexeme) *Lexeme {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	agg := NewLexeme("")
	agg.Become(a)
	agg.Become(b)
	return agg
}

// loadRecords scans one whole file's worth of records. allowWords
// permits the leading-apostrophe word-record form; lexemes.txt carries
// only bare lexeme records, words.txt carries both (a bare record in
// words.txt is tolerated as a locally-scoped helper lexeme, just as in
// lexemes.txt).
func (lx *Lexicon) loadRecords(src, path string, allowWords bool) {
	tz := gramtok.New(src)
	line := 1
	for {
		skipBlank(tz, &line)
		for tz.More() && tz.Peek() == "#" {
			tz.FlushLine()
			advancePastNewline(tz, &line)
			skipBlank(tz, &line)
		}
		if !tz.More() {
			return
		}
		lx.parseRecord(tz, path, &line, allowWords)
	}
}

func skipBlank(tz *gramtok.Tokenizer, line *int) {
	for tz.More() && (tz.IsNewline() || tz.IsWhitespace()) {
		if tz.IsNewline() {
			*line++
		}
		tz.Next()
	}
}

func advancePastNewline(tz *gramtok.Tokenizer, line *int) {
	if tz.IsNewline() {
		*line++
		tz.Next()
	}
}

func (lx *Lexicon) parseRecord(tz *gramtok.Tokenizer, path string, line *int, allowWords bool) {
	startLine := *line

	isWord := false
	if allowWords && tz.Peek() == "'" {
		isWord = true
		tz.Next()
	}

	name := tz.Peek()
	if name == "" || name == "\n" || name == " " {
		log.Printf("%s:%d: expected a name", path, startLine)
		tz.FlushLine()
		advancePastNewline(tz, line)
		return
	}
	tz.Next()

	if tz.IsWhitespace() {
		tz.Next()
	}
	if !tz.More() || tz.IsNewline() {
		advancePastNewline(tz, line)
		lx.commitEntry(name, isWord, 0, nil, nil, path, startLine)
		return
	}
	if tz.Peek() != ":" {
		log.Printf("%s:%d: expected ':' or newline after %q", path, startLine, name)
		tz.FlushLine()
		advancePastNewline(tz, line)
		return
	}
	tz.Next()

	var syn TagSet
	var sem *Lexeme
	var args []Argument

	for tz.More() && !tz.IsNewline() {
		if tz.IsWhitespace() {
			tz.Next()
			continue
		}
		switch tz.Peek() {
		case ":":
			tz.Next()
			args = append(args, lx.readArgList(tz, RelSpec, path, line)...)
		case "+":
			tz.Next()
			args = append(args, lx.readArgList(tz, RelComp, path, line)...)
		case "*":
			tz.Next()
			args = append(args, lx.readArgList(tz, RelBicomp, path, line)...)
		case "<":
			tz.Next()
			args = append(args, lx.readArgList(tz, RelMod, path, line)...)
		default:
			if !isAttrStart(tz.Peek()) {
				log.Printf("%s:%d: unexpected %q in attribute list", path, *line, tz.Peek())
				tz.FlushLine()
				advancePastNewline(tz, line)
				return
			}
			s, l := lx.readDotlist(tz, path, line)
			syn = syn.InsertSet(s)
			sem = mergeSem(sem, l)
		}
	}
	advancePastNewline(tz, line)
	lx.commitEntry(name, isWord, syn, sem, args, path, startLine)
}

func isAttrStart(tok string) bool {
	if tok == "" {
		return false
	}
	r := []rune(tok)[0]
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// readDotlist reads a '.'-joined conjunctive bundle for the entry's
// own classification: tag identifiers accumulate into syn, the first
// lexeme-name reference becomes sem, and any further ones fold into
// an anonymous aggregator lexeme via mergeSem.
func (lx *Lexicon) readDotlist(tz *gramtok.Tokenizer, path string, line *int) (TagSet, *Lexeme) {
	var syn TagSet
	var sem *Lexeme
	for {
		tok := tz.Peek()
		if t, ok := tagNames[tok]; ok {
			syn = syn.Insert(t)
		} else if l := lx.lookupLexeme(tok, path, *line); l != nil {
			sem = mergeSem(sem, l)
		}
		tz.Next()
		if tz.Peek() != "." {
			break
		}
		tz.Next()
	}
	if tz.IsWhitespace() {
		tz.Next()
	}
	return syn, sem
}

// readArgList reads a '|'-separated alternative list following a
// relation marker, producing one Argument per alternative. Mirrors
// read_pipelist in word_parser.cpp, which likewise emplaces one
// argument per alternative rather than collapsing them.
func (lx *Lexicon) readArgList(tz *gramtok.Tokenizer, rel Rel, path string, line *int) []Argument {
	var out []Argument
	for {
		if tz.IsWhitespace() {
			tz.Next()
		}
		mark, sem := lx.readArgDotlist(tz, path, line)
		if sem != nil {
			out = append(out, Argument{Rel: rel, Mark: mark, Sem: []*Lexeme{sem}})
		}
		if tz.Peek() != "|" {
			break
		}
		tz.Next()
	}
	return out
}

// readArgDotlist is readDotlist specialised for an argument slot: a
// mark identifier sets the argument's Mark instead of a tag.
func (lx *Lexicon) readArgDotlist(tz *gramtok.Tokenizer, path string, line *int) (Mark, *Lexeme) {
	mark := MarkNone
	var sem *Lexeme
	for {
		tok := tz.Peek()
		if m, ok := markNames[tok]; ok {
			mark = m
		} else if _, ok := tagNames[tok]; ok {
			log.Printf("%s:%d: tag %q not expected inside an argument", path, *line, tok)
		} else if l := lx.lookupLexeme(tok, path, *line); l != nil {
			sem = mergeSem(sem, l)
		}
		tz.Next()
		if tz.Peek() != "." {
			break
		}
		tz.Next()
	}
	if tz.IsWhitespace() {
		tz.Next()
	}
	return mark, sem
}

// commitEntry finalises one parsed record. A word record with its own
// arguments never writes them onto sem directly: sem may be the shared
// *Lexeme sitting in lx.Lexemes, and lexicon lexemes are immutable
// once loaded. Mirrors parse_arg in word_parser.cpp, which attaches an
// argument to the morpheme under construction (m->args.emplace), never
// to a shared Lexeme node.
func (lx *Lexicon) commitEntry(name string, isWord bool, syn TagSet, sem *Lexeme, args []Argument, path string, line int) {
	if isWord {
		if len(args) > 0 {
			own := NewLexeme("")
			own.Become(sem)
			for _, a := range args {
				own.AddArgument(a)
			}
			sem = own
		}
		lx.Words[name] = append(lx.Words[name], NewMorpheme(name, syn, sem))
		return
	}

	if _, exists := lx.Lexemes[name]; exists {
		lx.ambiguous[name] = true
		log.Printf("%s:%d: ignoring ambiguous lexeme %q", path, line, name)
		return
	}
	l := NewLexeme(name)
	l.Become(sem)
	for _, a := range args {
		l.AddArgument(a)
	}
	lx.Lexemes[name] = l
}
