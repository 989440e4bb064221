package inventory

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKey normaliza nombre y unidad antes de usarlos como clave del ledger.
// NFKC unifica variantes de ancho completo/medio ancho ("ｇ" == "g", "ﾄﾏﾄ" == "トマト").
func NormalizeKey(name, unit string) (string, string) {
	return normalize(name), normalize(unit)
}

func normalize(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}
