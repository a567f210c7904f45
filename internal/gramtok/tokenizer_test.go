package gramtok

import "testing"

func TestNewPositionsOnFirstToken(t *testing.T) {
	tz := New("book")
	if got := tz.Peek(); got != "book" {
		t.Errorf("Peek() = %q, want %q", got, "book")
	}
}

func TestAlphanumericRunIsOneToken(t *testing.T) {
	tz := New("book42 cat")
	if got := tz.Peek(); got != "book42" {
		t.Errorf("Peek() = %q, want %q", got, "book42")
	}
}

func TestPunctuationIsItsOwnToken(t *testing.T) {
	tz := New(": + * <")
	var got []string
	for tz.More() {
		if !tz.IsWhitespace() {
			got = append(got, tz.Peek())
		}
		tz.Next()
	}
	want := []string{":", "+", "*", "<"}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tokens[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestConsecutiveSpacesCollapseToOneWhitespaceToken(t *testing.T) {
	tz := New("a    b")
	tz.Next() // "a"
	if !tz.IsWhitespace() {
		t.Fatalf("expected a whitespace token after %q, got %q", "a", tz.Peek())
	}
	if got := tz.Peek(); got != " " {
		t.Errorf("Peek() = %q, want %q", got, " ")
	}
	tz.Next()
	if got := tz.Peek(); got != "b" {
		t.Errorf("Peek() after whitespace = %q, want %q", got, "b")
	}
}

func TestBlankLinesCollapseToOneNewlineToken(t *testing.T) {
	tz := New("a\n\n\nb")
	tz.Next() // "a"
	if !tz.IsNewline() {
		t.Fatalf("expected a newline token, got %q", tz.Peek())
	}
	tz.Next()
	if got := tz.Peek(); got != "b" {
		t.Errorf("Peek() after collapsed newlines = %q, want %q", got, "b")
	}
}

func TestMoreIsFalseAtEndOfInput(t *testing.T) {
	tz := New("x")
	tz.Next()
	if tz.More() {
		t.Error("More() should be false once the token stream is exhausted")
	}
}

func TestFlushLineSkipsToNextNewline(t *testing.T) {
	tz := New("garbled : tokens\nnext")
	tz.FlushLine()
	if !tz.IsNewline() && !(tz.Peek() == "next") {
		t.Fatalf("after FlushLine, expected to be at the newline or past it, got %q", tz.Peek())
	}
	// advance past any residual newline token to confirm "next" follows
	for tz.IsNewline() {
		tz.Next()
	}
	if got := tz.Peek(); got != "next" {
		t.Errorf("Peek() after FlushLine = %q, want %q", got, "next")
	}
}

func TestSkipWSReportsEndOfLine(t *testing.T) {
	tz := New("a \nb")
	tz.Next() // the space before the line break collapses into the newline token
	if atEnd := tz.SkipWS(); !atEnd {
		t.Error("SkipWS should report true when the line ends right after the whitespace")
	}
}
