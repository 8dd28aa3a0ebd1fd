package masterdata

import (
	"strings"

	"github.com/rolexfittings/pipestock-api/internal/domain"
	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
	"github.com/rolexfittings/pipestock-api/internal/domain/inventory"
	"github.com/rolexfittings/pipestock-api/internal/domain/repository"
)

// UseCase gestiona las listas de referencia persistidas (categorías, grados,
// medidas, schedules, ubicaciones). La primera lectura de una lista vacía la
// siembra desde los valores por defecto; las medidas se mantienen ordenadas
// por su valor numérico parseado.
type UseCase struct {
	repo repository.ReferenceRepository
}

// NewUseCase construye el caso de uso de datos maestros.
func NewUseCase(repo repository.ReferenceRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve los valores de una lista, sembrándola si está vacía.
// Devuelve ErrNotFound para tipos desconocidos.
func (uc *UseCase) List(kind string) ([]string, error) {
	defaults := entity.DefaultsFor(kind)
	if defaults == nil {
		return nil, domain.ErrNotFound
	}
	n, err := uc.repo.Count(kind)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		seed := append([]string(nil), defaults...)
		if kind == entity.ReferenceSizes {
			inventory.SortSizes(seed)
		}
		for _, name := range seed {
			if err := uc.repo.Add(kind, name); err != nil && err != domain.ErrDuplicate {
				return nil, err
			}
		}
	}
	return uc.repo.List(kind)
}

// Add agrega un valor nuevo a una lista de referencia.
func (uc *UseCase) Add(kind, name string) error {
	if entity.DefaultsFor(kind) == nil {
		return domain.ErrNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Add(kind, name)
}
