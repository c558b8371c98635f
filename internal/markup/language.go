package markup

import "strings"

// languageRules describe the heuristic classification rules for one
// language family. Zero-value rules disable comments and keywords; the
// string and number rules are language-independent.
type languageRules struct {
	lineComment string
	blockOpen   string
	blockClose  string
	// docQuotes classifies triple-quoted strings as comment-like doc
	// strings.
	docQuotes bool
	keywords  map[string]bool
}

var jsRules = languageRules{
	lineComment: "//",
	blockOpen:   "/*",
	blockClose:  "*/",
	keywords: wordSet(`const let var function return if else for while do
		switch case default break continue class extends super new this
		import export from async await try catch finally throw typeof
		instanceof delete void in of yield static null undefined true
		false`),
}

var pythonRules = languageRules{
	lineComment: "#",
	docQuotes:   true,
	keywords: wordSet(`def return if elif else for while class import from
		as with try except finally raise lambda pass break continue global
		nonlocal assert yield async await in is not and or del True False
		None`),
}

// rulesFor resolves a fence language tag to its family rules. Tags outside
// the two built-in families get empty rules, so only strings and numbers
// are classified.
func rulesFor(language string) languageRules {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "js", "jsx", "ts", "tsx", "javascript", "typescript":
		return jsRules
	case "py", "python", "python3":
		return pythonRules
	default:
		return languageRules{}
	}
}

func wordSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}
