// Package langdetect decides which source language a file holds.
// Extensions are checked first; extensionless scripts fall back to go-enry
// shebang detection and a small set of content patterns.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language identifies a supported source language.
type Language string

const (
	Unknown    Language = ""
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
	Python     Language = "python"
)

// String returns the language name.
func (l Language) String() string {
	if l == Unknown {
		return "unknown"
	}
	return string(l)
}

// IsSupported returns true if the language has a parser.
func (l Language) IsSupported() bool {
	switch l {
	case JavaScript, TypeScript, TSX, Python:
		return true
	default:
		return false
	}
}

// IsECMAScript returns true for the JavaScript family (JS, TS, TSX).
func (l Language) IsECMAScript() bool {
	return l == JavaScript || l == TypeScript || l == TSX
}

// IsTyped returns true for statically typed sources.
func (l Language) IsTyped() bool {
	return l == TypeScript || l == TSX
}

//nolint:gochecknoglobals // Static lookup table.
var extensions = map[string]Language{
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
	".py":  Python,
	".pyw": Python,
}

// Extensions returns the file extensions that map to a supported language.
func Extensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}
	return exts
}

// FromPath returns the language implied by a file extension.
func FromPath(path string) Language {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Detect returns the language for a file, using its path first and the
// content second. Returns Unknown when nothing matches.
func Detect(path string, content []byte) Language {
	if lang := FromPath(path); lang != Unknown {
		return lang
	}

	if filepath.Ext(path) != "" {
		return Unknown
	}

	if len(content) == 0 {
		return Unknown
	}

	// Shebang is the most reliable signal for extensionless scripts.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fromEnry(lang)
	}

	return detectByPattern(string(content))
}

// IsVendored reports whether go-enry considers the path vendored or generated
// third-party code (bundles, minified files, dependency directories).
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

// fromEnry maps go-enry language names onto supported languages.
func fromEnry(lang string) Language {
	switch lang {
	case "JavaScript":
		return JavaScript
	case "TypeScript":
		return TypeScript
	case "TSX":
		return TSX
	case "Python":
		return Python
	default:
		return Unknown
	}
}

// detectByPattern checks for language-specific patterns that are highly indicative.
func detectByPattern(contentStr string) Language {
	if detectPython(contentStr) {
		return Python
	}
	if detectJavaScript(contentStr) {
		return JavaScript
	}
	return Unknown
}

// detectPython checks for Python language patterns.
func detectPython(contentStr string) bool {
	// def/class definitions with colon.
	if strings.Contains(contentStr, "def ") && strings.Contains(contentStr, "):") {
		return true
	}
	// Python dunder variables.
	return strings.Contains(contentStr, "__name__") || strings.Contains(contentStr, "__main__")
}

// detectJavaScript checks for JavaScript patterns.
func detectJavaScript(contentStr string) bool {
	return strings.Contains(contentStr, "=>") ||
		strings.Contains(contentStr, "const ") ||
		strings.Contains(contentStr, "require(") ||
		strings.Contains(contentStr, "console.log")
}
