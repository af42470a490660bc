package lexer

import (
	"testing"

	"github.com/c2nes/javalang/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := Tokenize([]byte(src))
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	return toks
}

func TestKeywordsModifiersBasicTypes(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"class", token.Keyword},
		{"if", token.Keyword},
		{"return", token.Keyword},
		{"public", token.Modifier},
		{"static", token.Modifier},
		{"abstract", token.Modifier},
		{"int", token.BasicType},
		{"boolean", token.BasicType},
		{"foo", token.Identifier},
		{"_private", token.Identifier},
		{"$special", token.Identifier},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := scanAll(t, tt.input)
			if len(toks) != 2 {
				t.Fatalf("got %d tokens, want 2 (value + EndOfInput)", len(toks))
			}
			if toks[0].Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", toks[0].Kind, tt.kind)
			}
			if toks[0].Value != tt.input {
				t.Errorf("Value = %q, want %q", toks[0].Value, tt.input)
			}
		})
	}
}

func TestNeverEmitsCompositeShift(t *testing.T) {
	toks := scanAll(t, "List<List<String>>")
	var ops []string
	for _, tok := range toks {
		if tok.Kind == token.Operator {
			ops = append(ops, tok.Value)
		}
	}
	want := []string{"<", "<", ">", ">"}
	if len(ops) != len(want) {
		t.Fatalf("operators = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("operators[%d] = %q, want %q", i, ops[i], want[i])
		}
	}
}

func TestShiftAssignIsSingleToken(t *testing.T) {
	toks := scanAll(t, "a >>>= b")
	if toks[1].Value != ">>>=" {
		t.Errorf("Value = %q, want %q", toks[1].Value, ">>>=")
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []string{
		"0", "123", "0x1F", "0b101", "123L", "3.14", "3.", "1e10", "1.5e-10f", "0xFFL",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			toks := scanAll(t, input)
			if toks[0].Kind != token.Literal {
				t.Errorf("Kind = %v, want %v", toks[0].Kind, token.Literal)
			}
			if toks[0].Value != input {
				t.Errorf("Value = %q, want %q", toks[0].Value, input)
			}
		})
	}
}

func TestStringAndCharLiterals(t *testing.T) {
	toks := scanAll(t, `"hello\n" 'a' '\''`)
	want := []string{`"hello\n"`, `'a'`, `'\''`}
	for i, w := range want {
		if toks[i].Value != w {
			t.Errorf("toks[%d] = %q, want %q", i, toks[i].Value, w)
		}
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	if _, err := Tokenize([]byte(`"unterminated`)); err == nil {
		t.Fatal("expected an error for unterminated string literal")
	}
}

func TestLineComment(t *testing.T) {
	toks := scanAll(t, "foo // comment\nbar")
	if toks[0].Value != "foo" || toks[1].Value != "bar" {
		t.Errorf("tokens = %v, want [foo bar EndOfInput]", toks)
	}
}

func TestJavadocAttachesToFollowingToken(t *testing.T) {
	toks := scanAll(t, "/** doc */ class Foo {}")
	if toks[0].LeadingDoc != "/** doc */" {
		t.Errorf("LeadingDoc = %q, want %q", toks[0].LeadingDoc, "/** doc */")
	}
	if toks[1].LeadingDoc != "" {
		t.Errorf("second token LeadingDoc = %q, want empty", toks[1].LeadingDoc)
	}
}

func TestNonDocBlockCommentIsDropped(t *testing.T) {
	toks := scanAll(t, "/* not doc */ class Foo {}")
	if toks[0].LeadingDoc != "" {
		t.Errorf("LeadingDoc = %q, want empty", toks[0].LeadingDoc)
	}
}

func TestAnnotationMarkerKind(t *testing.T) {
	toks := scanAll(t, "@Override")
	if toks[0].Kind != token.AnnotationMarker {
		t.Errorf("Kind = %v, want %v", toks[0].Kind, token.AnnotationMarker)
	}
	if toks[1].Kind != token.Identifier || toks[1].Value != "Override" {
		t.Errorf("second token = %+v, want Identifier Override", toks[1])
	}
}

func TestUnexpectedCharacterIsError(t *testing.T) {
	if _, err := Tokenize([]byte("`")); err == nil {
		t.Fatal("expected an error for an unrecognized character")
	}
}

func TestPositionsAdvanceAcrossLines(t *testing.T) {
	toks := scanAll(t, "class\nFoo")
	if toks[0].Span.Start.Line != 1 {
		t.Errorf("first token line = %d, want 1", toks[0].Span.Start.Line)
	}
	if toks[1].Span.Start.Line != 2 {
		t.Errorf("second token line = %d, want 2", toks[1].Span.Start.Line)
	}
}
