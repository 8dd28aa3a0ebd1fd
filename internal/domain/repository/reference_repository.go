package repository

// ReferenceRepository define el puerto para las listas de datos maestros
// persistidas (categories, grades, sizes, schedules, locations).
type ReferenceRepository interface {
	// List devuelve los nombres de un tipo de referencia. Para sizes el
	// orden viene dado por el valor numérico parseado (columna sort_value).
	List(kind string) ([]string, error)
	Add(kind, name string) error
	Count(kind string) (int, error)
}
