// Package assetnames converts between asset directory names and the values
// derived from them: page slugs, event dates and titles, photo credits.
//
// Everything here is a pure string function. Nothing touches the filesystem,
// so the package is safe to use from any layer.
package assetnames

import "strings"

// Slugify converts a page name to its URL slug.
// "Maid Cafe" -> "maidcafe"
//
// Every character outside [a-z0-9] is dropped after lower-casing, so two
// different page names can produce the same slug.
func Slugify(pageName string) string {
	lower := strings.ToLower(pageName)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return strings.TrimSpace(b.String())
}
