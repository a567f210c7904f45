package grammatical

import "github.com/eivinsam/grammatical/internal/gramtok"

// Result pairs one full derivation with every diagnostic attached
// anywhere in its phrases, flattened for reporting, mirroring the
// driver loop in main.cpp that prints each phrase's errors after its
// derivation.
type Result struct {
	Phrases     []*Phrase
	Diagnostics []string
}

// Analyze tokenizes sentence on whitespace, resolves each token to its
// candidate Word phrases via the word parser, and runs the resulting
// chart to completion. A token with no valid morpheme segmentation
// becomes a single unknown-word phrase carrying a diagnostic, exactly
// as main.cpp's driver falls back when parse_word returns nothing.
func Analyze(sentence string, lex *Lexicon) []Result {
	tz := gramtok.New(sentence)
	p := NewParser()

	for tz.More() {
		if tz.IsWhitespace() {
			tz.Next()
			continue
		}
		if tz.IsNewline() {
			break
		}
		token := tz.Peek()
		candidates := ParseWord(token, lex.Words)
		if len(candidates) == 0 {
			candidates = []*Phrase{unknownWord(token)}
		}
		p.PushAlternatives(candidates)
		tz.Next()
	}

	var results []Result
	for _, phrases := range p.Run() {
		results = append(results, Result{Phrases: phrases, Diagnostics: collectDiagnostics(phrases)})
	}
	return results
}

func unknownWord(token string) *Phrase {
	w := NewWord(NewMorpheme(token, 0, NewLexeme(token)))
	return addError(w, "unknown word "+token)
}

func collectDiagnostics(phrases []*Phrase) []string {
	var out []string
	for _, p := range phrases {
		out = append(out, diagnosticsOf(p)...)
	}
	return out
}

func diagnosticsOf(p *Phrase) []string {
	if p == nil {
		return nil
	}
	out := append([]string(nil), p.Errors...)
	switch p.Kind {
	case KindWord:
		out = append(out, diagnosticsOf(p.Morph)...)
	case KindLeftBranch, KindRightBranch:
		out = append(out, diagnosticsOf(p.Mod)...)
		out = append(out, diagnosticsOf(p.Head)...)
	}
	return out
}
