package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/mscript/foundation/mscript/ast"
	"github.com/msto63/mscript/foundation/mscript/token"
)

func pos(line, column int) token.Position {
	return token.Position{Line: line, Column: column, Offset: column - 1}
}

func TestTokens(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.Identifier, Text: "x", Pos: pos(1, 1)},
		{Kind: token.Assignment, Text: "=", Pos: pos(1, 3)},
		{Kind: token.CharVector, Text: "'a'", Pos: pos(1, 5)},
		{Kind: token.EndOfStatement, Text: "\n", Pos: pos(1, 8)},
		{Kind: token.EndOfStatement, Text: "", Pos: token.Position{Line: 2, Column: 1, Offset: 8}},
	}

	want := strings.Join([]string{
		`1:1     IDENTIFIER       "x"`,
		`1:3     ASSIGNMENT       "="`,
		`1:5     CHAR_VECTOR      "'a'"`,
		`1:8     END_OF_STATEMENT "\n"`,
		`2:1     END_OF_STATEMENT ""`,
	}, "\n") + "\n"

	if diff := cmp.Diff(want, New(false).Tokens(tokens)); diff != "" {
		t.Errorf("Tokens() mismatch (-want +got):\n%s", diff)
	}
	if got := New(false).Tokens(nil); got != "" {
		t.Errorf("Tokens(nil) = %q", got)
	}
}

func TestTree(t *testing.T) {
	root := ast.New(ast.StatementList, "", pos(1, 1),
		ast.New(ast.ExpressionStatement, "", pos(1, 1),
			ast.New(ast.AssignmentExpression, "=", pos(1, 1),
				ast.New(ast.IdentifierExpression, "x", pos(1, 1)),
				ast.New(ast.BinaryOperationExpression, "+", pos(1, 5),
					ast.New(ast.NumberLiteralExpression, "1", pos(1, 5)),
					ast.New(ast.NumberLiteralExpression, "2", pos(1, 9)),
				),
			),
			ast.New(ast.EndOfStatement, "\n", pos(1, 10)),
		),
		ast.New(ast.JumpStatement, "break", pos(2, 1)),
	)

	want := strings.Join([]string{
		`StatementList`,
		`├─ ExpressionStatement`,
		`│  ├─ AssignmentExpression "="`,
		`│  │  ├─ IdentifierExpression "x"`,
		`│  │  └─ BinaryOperationExpression "+"`,
		`│  │     ├─ NumberLiteralExpression "1"`,
		`│  │     └─ NumberLiteralExpression "2"`,
		`│  └─ EndOfStatement "\n"`,
		`└─ JumpStatement "break"`,
	}, "\n") + "\n"

	if diff := cmp.Diff(want, New(false).Tree(root)); diff != "" {
		t.Errorf("Tree() mismatch (-want +got):\n%s", diff)
	}
	if got := New(false).Tree(nil); got != "" {
		t.Errorf("Tree(nil) = %q", got)
	}
}

func TestDiagnostic(t *testing.T) {
	src := "x = 1\n\tif a b\nend\n"

	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "file and position",
			d:    Diagnostic{File: "main.m", Line: 2, Column: 7, Message: "unexpected \"b\"", Source: src},
			want: "main.m:2:7: unexpected \"b\"\n  \tif a b\n  \t     ^\n",
		},
		{
			name: "position only",
			d:    Diagnostic{Line: 1, Column: 1, Message: "bad", Source: src},
			want: "1:1: bad\n  x = 1\n  ^\n",
		},
		{
			name: "column past end of line",
			d:    Diagnostic{Line: 1, Column: 6, Message: "unexpected end of input", Source: "x = 1"},
			want: "1:6: unexpected end of input\n  x = 1\n       ^\n",
		},
		{
			name: "file without position",
			d:    Diagnostic{File: "missing.m", Message: "not found"},
			want: "missing.m: not found\n",
		},
		{
			name: "message only",
			d:    Diagnostic{Message: "boom"},
			want: "boom\n",
		},
		{
			name: "line out of range",
			d:    Diagnostic{Line: 9, Column: 1, Message: "late", Source: src},
			want: "9:1: late\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, New(false).Diagnostic(tt.d)); diff != "" {
				t.Errorf("Diagnostic() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSourceLine(t *testing.T) {
	src := "a\r\nb\n"
	tests := []struct {
		line int
		want string
		ok   bool
	}{
		{0, "", false},
		{1, "a", true},
		{2, "b", true},
		{3, "", true},
		{4, "", false},
	}
	for _, tt := range tests {
		got, ok := SourceLine(src, tt.line)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SourceLine(%d) = %q, %v, want %q, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStyledOutputKeepsText(t *testing.T) {
	r := New(true)
	if !r.Styled() || New(false).Styled() {
		t.Fatal("Styled() does not reflect the constructor argument")
	}

	tree := r.Tree(ast.New(ast.StatementList, "", pos(1, 1),
		ast.New(ast.ClearStatement, "clear", pos(1, 1))))
	for _, want := range []string{"StatementList", "ClearStatement", `"clear"`, "└─ "} {
		if !strings.Contains(tree, want) {
			t.Errorf("styled tree %q lacks %q", tree, want)
		}
	}

	hint := r.KeyHint("tab", "toggle")
	if !strings.Contains(hint, "tab") || !strings.Contains(hint, "toggle") {
		t.Errorf("KeyHint() = %q", hint)
	}
}

func TestPlainHelpers(t *testing.T) {
	r := New(false)
	if r.OK("ok") != "ok" || r.Fail("failed") != "failed" || r.Muted("m") != "m" {
		t.Error("plain renderer altered text")
	}
	if got := r.KeyHint("esc", "quit"); got != "esc quit" {
		t.Errorf("KeyHint() = %q", got)
	}
}

func TestConvenienceFunctions(t *testing.T) {
	tokens := []token.Token{{Kind: token.Identifier, Text: "a", Pos: pos(1, 1)}}
	if got, want := RenderTokens(tokens, false), New(false).Tokens(tokens); got != want {
		t.Errorf("RenderTokens() = %q, want %q", got, want)
	}
	root := ast.New(ast.StatementList, "", pos(1, 1))
	if got := RenderTree(root, false); got != "StatementList\n" {
		t.Errorf("RenderTree() = %q", got)
	}
	if got := RenderError("boom", false); got != "boom\n" {
		t.Errorf("RenderError() = %q", got)
	}
}
