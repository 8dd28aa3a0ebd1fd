package inventory

import "strings"

// SearchString construye la cadena de búsqueda de un registro: campos no
// vacíos unidos por espacio, en minúsculas. Se parte de una lista fija de
// campos para no buscar sobre ruido (timestamps, IDs internos).
func SearchString(fields ...string) string {
	nonEmpty := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.ToLower(strings.Join(nonEmpty, " "))
}

// MatchKeywords evalúa una consulta de texto libre contra una cadena de
// búsqueda: la consulta se parte en tokens por espacios y todos deben
// aparecer como substring (AND, independiente del orden). Consulta vacía
// siempre coincide.
func MatchKeywords(searchable, query string) bool {
	for _, kw := range strings.Fields(strings.ToLower(query)) {
		if !strings.Contains(searchable, kw) {
			return false
		}
	}
	return true
}
