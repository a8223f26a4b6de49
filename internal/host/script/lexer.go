package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer splits button scripts into tokens. Keywords and button names are their own tokens so that a list of buttons
// or screens ends where the next command starts.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

	{Name: "Duration", Pattern: `[0-9]+(ms|s)\b`},
	{Name: "Keyword", Pattern: `(press|release|tap|hold|wait|expect)\b`},
	{Name: "Button", Pattern: `(up|down|select|back)\b`},
	{Name: "Ident", Pattern: `[a-z][a-z0-9_-]*`},
})
