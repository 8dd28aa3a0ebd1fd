package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("lote no encontrado")
	ErrEntryNotFound     = errors.New("registro de inventario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser un entero válido")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNegativeStock     = errors.New("la operación dejaría stock negativo")
	ErrSameLocation      = errors.New("origen y destino no pueden ser la misma ubicación")
	ErrNoBatchSelected   = errors.New("debe seleccionar un lote")
	ErrImmutableEntry    = errors.New("los registros EDIT no se pueden modificar")
)
