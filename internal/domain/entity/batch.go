package entity

import (
	"strings"
	"time"
)

// Categorías que requieren dos medidas (ej. reducciones).
var dualSizeCategories = map[string]bool{
	"UNEQUAL TEE": true,
	"CON RED":     true,
	"ECC RED":     true,
}

// IsDualSizeCategory indica si la categoría expresa su medida como dos dimensiones.
func IsDualSizeCategory(category string) bool {
	return dualSizeCategories[category]
}

// ItemKey es la tupla de atributos descriptivos que determina si dos lotes
// representan "el mismo artículo" para reportes. Size2 queda vacío en
// categorías de medida simple.
type ItemKey struct {
	Category      string
	Grade         string
	Size1         string
	Size2         string
	Schedule      string
	Origin        string
	SeamCondition string
	Location      string
}

// String devuelve la clave canónica (campos unidos por "|") para agrupar.
func (k ItemKey) String() string {
	return strings.Join([]string{
		k.Category, k.Grade, k.Size1, k.Size2,
		k.Schedule, k.Origin, k.SeamCondition, k.Location,
	}, "|")
}

// IsComplete valida que todos los campos obligatorios estén presentes.
// Size2 solo es obligatorio en categorías de doble medida.
func (k ItemKey) IsComplete() bool {
	if k.Category == "" || k.Grade == "" || k.Size1 == "" || k.Schedule == "" ||
		k.Origin == "" || k.SeamCondition == "" || k.Location == "" {
		return false
	}
	if IsDualSizeCategory(k.Category) && k.Size2 == "" {
		return false
	}
	return true
}

// Batch representa un lote físico de stock en una ubicación. Se crea solo por
// una entrada (IN) o por el lado destino de un traslado; nunca se elimina
// (un lote en cero queda como historial).
type Batch struct {
	ID              string
	ItemKey
	InitialQuantity int64
	CurrentQuantity int64 // invariante: nunca negativo
	InDate          time.Time
	Remarks         string
	EntryBy         string
	CreatedAt       time.Time
}
