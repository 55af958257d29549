package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Names Chroma's filename globs do not catch.
var languageByName = map[string]string{
	"dockerfile": "docker",
	"gemfile":    "ruby",
	"rakefile":   "ruby",
	".bashrc":    "bash",
	".zshrc":     "zsh",
}

// DetectLanguage returns the Chroma lexer name for path, or "" when the
// file is not recognised and should be shown uncoloured.
func DetectLanguage(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	if lang, ok := languageByName[strings.ToLower(base)]; ok {
		return lang
	}
	if lex := lexers.Match(base); lex != nil {
		return lex.Config().Name
	}
	return ""
}
