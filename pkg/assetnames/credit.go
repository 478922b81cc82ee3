package assetnames

import (
	"regexp"
	"strings"
)

// creditPattern matches "<name> (<credit>).<ext>". The parenthesized part
// must sit immediately before the extension.
var creditPattern = regexp.MustCompile(`^(.+?)\s*\(([^)]*)\)(\.[^.]+)$`)

// Credit is a photo filename split around its attribution.
type Credit struct {
	Name   string // text before the parentheses, untrimmed
	Credit string // text inside the parentheses, untrimmed
	Ext    string // extension including the dot
}

// ParseCredit splits a credit-style filename. It returns false when the
// filename does not end in "(...)" followed by an extension.
func ParseCredit(filename string) (Credit, bool) {
	m := creditPattern.FindStringSubmatch(filename)
	if m == nil {
		return Credit{}, false
	}
	return Credit{Name: m[1], Credit: m[2], Ext: m[3]}, true
}

// ExtractCredit returns the trimmed photographer credit embedded in a
// filename such as "0 (Jane Doe).jpg".
func ExtractCredit(filename string) (string, bool) {
	c, ok := ParseCredit(filename)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(c.Credit), true
}
