package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks elimina signos diacríticos: descompone a NFD, filtra las marcas
// combinantes (Mn) y recompone a NFC. "Açúcar" -> "Acucar".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName normaliza un nombre de producto para comparación:
// minúsculas, sin diacríticos y con espacios colapsados.
// " Café  Molido " y "cafe molido" producen la misma clave.
func NormalizeName(name string) string {
	s, _, err := transform.String(stripMarks, name)
	if err != nil {
		s = name
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// DuplicateKey clave de agrupación de candidatos a duplicado: nombre normalizado
// + categoría normalizada. Categorías distintas nunca agrupan aunque el nombre coincida.
func DuplicateKey(name, category string) string {
	return NormalizeName(name) + "|" + NormalizeName(category)
}
