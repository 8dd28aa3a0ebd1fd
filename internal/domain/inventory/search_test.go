package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rolexfittings/pipestock-api/internal/domain/inventory"
)

func TestSearchString_UneCamposNoVaciosEnMinusculas(t *testing.T) {
	got := inventory.SearchString("LR ELBOW", "304", "", `2"`, "TALOJA GODOWN")
	assert.Equal(t, `lr elbow 304 2" taloja godown`, got)
}

func TestMatchKeywords_ANDIndependienteDelOrden(t *testing.T) {
	searchable := inventory.SearchString("LR ELBOW", "304", `2"`, "S40", "TALOJA GODOWN")

	assert.True(t, inventory.MatchKeywords(searchable, "elbow taloja"))
	assert.True(t, inventory.MatchKeywords(searchable, "TALOJA elbow"), "el orden de los tokens no importa")
	assert.True(t, inventory.MatchKeywords(searchable, "elb"), "coincidencia por substring, no palabra completa")
	assert.False(t, inventory.MatchKeywords(searchable, "elbow dongri"), "todos los tokens deben coincidir")
	assert.True(t, inventory.MatchKeywords(searchable, ""), "consulta vacía siempre coincide")
	assert.True(t, inventory.MatchKeywords(searchable, "   "))
}
