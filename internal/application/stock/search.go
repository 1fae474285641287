package stock

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold normaliza un texto para búsqueda: minúsculas y sin diacríticos, de
// modo que "Almacén" coincide con "almacen". El transformer se arma por
// llamada porque las cadenas de transform no son seguras para uso compartido.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// containsFold indica si needle (ya normalizado) aparece en haystack.
func containsFold(haystack, needle string) bool {
	return strings.Contains(fold(haystack), needle)
}
