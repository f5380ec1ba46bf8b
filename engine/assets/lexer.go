package assets

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// meshLexer tokenizes the line-oriented text formats. Lower-case rules are elided.
var meshLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\r\n]*`},
	{Name: "EOL", Pattern: `(\r?\n)+`},
	{Name: "whitespace", Pattern: `[ \t]+`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][\w.\-]*`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Symbol", Pattern: `[^\s]`},
})
