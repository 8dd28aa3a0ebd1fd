package ports

import "context"

// TextGenerator es el puerto hacia el servicio externo de generación de
// texto: acepta un prompt textual y devuelve prosa o falla. Es un paso de
// anotación opcional de solo lectura; nunca afecta el estado del libro.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
