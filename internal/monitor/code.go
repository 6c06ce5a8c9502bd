// Syntax highlighting for code and JSON blocks.
package monitor

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultCodeTheme is the chroma style used when none is configured.
const DefaultCodeTheme = "monokai"

// Highlight returns source colored for a 256-color terminal. language picks
// the lexer by name or alias; when it is empty or unknown the lexer is
// guessed from the source.
func Highlight(source, language, theme string) (string, error) {
	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	}
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	if theme == "" {
		theme = DefaultCodeTheme
	}
	style := styles.Get(theme)

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	tokens, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", lexer.Config().Name, err)
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, tokens); err != nil {
		return "", fmt.Errorf("format: %w", err)
	}
	return buf.String(), nil
}
