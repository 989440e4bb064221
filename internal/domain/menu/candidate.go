// Package menu contiene los candidatos de menú generados y el reconciliador de precios.
//
// El precio de un MenuCandidate solo puede asignarlo Reconcile: el borrador que llega del
// servicio generativo (Draft) no tiene campo de precio y nunca se confía en sus números.
package menu

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
)

// SearchURLPrefix plantilla de búsqueda de video asociada a cada plato.
const SearchURLPrefix = "https://www.youtube.com/results?search_query="

// Draft candidato tal como lo propone el servicio generativo, sin precio.
type Draft struct {
	Name            string
	Description     string
	YoutubeURL      string
	IngredientsUsed []entity.IngredientUsage
}

// MenuCandidate candidato con precio calculado en el servidor.
type MenuCandidate struct {
	name            string
	description     string
	price           int64
	youtubeURL      string
	ingredientsUsed []entity.IngredientUsage
}

func (c MenuCandidate) Name() string                              { return c.name }
func (c MenuCandidate) Description() string                       { return c.description }
func (c MenuCandidate) Price() int64                              { return c.price }
func (c MenuCandidate) YoutubeURL() string                        { return c.youtubeURL }
func (c MenuCandidate) IngredientsUsed() []entity.IngredientUsage { return c.ingredientsUsed }

// Snapshot copia el candidato al tipo persistible del historial.
func (c MenuCandidate) Snapshot() entity.Dish {
	used := make([]entity.IngredientUsage, len(c.ingredientsUsed))
	copy(used, c.ingredientsUsed)
	return entity.Dish{
		Name:            c.name,
		Description:     c.description,
		Price:           c.price,
		YoutubeURL:      c.youtubeURL,
		IngredientsUsed: used,
	}
}

// MarshalJSON serializa con el mismo formato que entity.Dish.
func (c MenuCandidate) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

// SearchURL arma la URL de búsqueda de video para un plato.
func SearchURL(dishName string) string {
	return SearchURLPrefix + url.QueryEscape(strings.TrimSpace(dishName))
}

// normalizeSearchURL conserva la URL del modelo solo si respeta la plantilla.
func normalizeSearchURL(raw, dishName string) string {
	raw = strings.TrimSpace(raw)
	if raw != "" && strings.HasPrefix(raw, SearchURLPrefix) && len(raw) > len(SearchURLPrefix) {
		return raw
	}
	return SearchURL(dishName)
}
