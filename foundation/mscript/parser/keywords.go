package parser

import "github.com/msto63/mscript/foundation/mscript/token"

// keywords are identifier spellings reserved for statement forms. They
// never start an expression statement and never form an operand.
var keywords = map[string]bool{
	"if":        true,
	"elseif":    true,
	"else":      true,
	"end":       true,
	"switch":    true,
	"case":      true,
	"otherwise": true,
	"while":     true,
	"for":       true,
	"clear":     true,
	"break":     true,
	"continue":  true,
	"return":    true,
}

// IsKeyword reports whether word is a reserved statement keyword
func IsKeyword(word string) bool {
	return keywords[word]
}

func isKeywordToken(tok token.Token) bool {
	return tok.Kind == token.Identifier && keywords[tok.Text]
}

// Terminator sets for the statement list nested in each clause
var (
	ifTerminators        = []string{"elseif", "else", "end"}
	elseTerminators      = []string{"end"}
	caseTerminators      = []string{"case", "otherwise", "end"}
	iterationTerminators = []string{"end"}
)

// selectionForm names the clause keywords of a selection statement
type selectionForm struct {
	secondary   string
	final       string
	terminators []string
}

var selectionForms = map[string]selectionForm{
	"if":     {secondary: "elseif", final: "else", terminators: ifTerminators},
	"switch": {secondary: "case", final: "otherwise", terminators: caseTerminators},
}
