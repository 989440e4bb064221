package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/domain/inventory"
	"github.com/jhoicas/kondate-api/internal/domain/menu"
)

// objectRe captura desde el primer '{' hasta el último '}'.
var objectRe = regexp.MustCompile(`(?s)\{.*\}`)

// Extraction resultado de interpretar la respuesta del modelo: Structured (Drafts) o Fallback.
type Extraction struct {
	Drafts   []menu.Draft
	Fallback bool
	Reason   string
}

// ── payload del modelo (sin campo de precio) ──────────────────────────────────

type llmMenuPayload struct {
	Menus []llmCandidate `json:"menus"`
}

type llmCandidate struct {
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	YoutubeURL      string     `json:"youtubeUrl"`
	IngredientsUsed []llmUsage `json:"ingredientsUsed"`
}

type llmUsage struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// Extract busca el objeto JSON embebido en text y lo convierte en borradores.
// Nunca devuelve error: cualquier fallo de interpretación produce Fallback con el motivo.
func Extract(text string) Extraction {
	objs := jsonCandidates(text)
	if len(objs) == 0 {
		return fallback("no se encontró un objeto JSON en la respuesta")
	}

	var reason string
	for _, raw := range objs {
		drafts, err := decodeDrafts(raw)
		if err != nil {
			reason = err.Error()
			continue
		}
		return Extraction{Drafts: drafts}
	}
	return fallback(reason)
}

func decodeDrafts(raw string) ([]menu.Draft, error) {
	var payload llmMenuPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("JSON malformado: %w", err)
	}

	drafts := make([]menu.Draft, 0, len(payload.Menus))
	for _, c := range payload.Menus {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		drafts = append(drafts, menu.Draft{
			Name:            name,
			Description:     strings.TrimSpace(c.Description),
			YoutubeURL:      c.YoutubeURL,
			IngredientsUsed: toUsages(c.IngredientsUsed),
		})
	}
	if len(drafts) == 0 {
		return nil, errors.New("la respuesta no contiene candidatos")
	}
	return drafts, nil
}

func fallback(reason string) Extraction {
	return Extraction{Fallback: true, Reason: reason}
}

func toUsages(in []llmUsage) []entity.IngredientUsage {
	out := make([]entity.IngredientUsage, 0, len(in))
	for _, u := range in {
		name, unit := inventory.NormalizeKey(u.Name, u.Unit)
		if name == "" || !u.Quantity.GreaterThan(decimal.Zero) {
			continue
		}
		out = append(out, entity.IngredientUsage{Name: name, Quantity: u.Quantity, Unit: unit})
	}
	return out
}

// jsonCandidates devuelve, en orden de preferencia, el tramo { … } del texto completo y el del
// contenido de un bloque de código markdown (```json … ```), sin repetidos.
func jsonCandidates(text string) []string {
	text = strings.TrimSpace(text)
	var out []string
	if raw := strings.TrimSpace(objectRe.FindString(text)); raw != "" {
		out = append(out, raw)
	}
	if fenced, ok := unfence(text); ok {
		if raw := strings.TrimSpace(objectRe.FindString(fenced)); raw != "" && (len(out) == 0 || out[0] != raw) {
			out = append(out, raw)
		}
	}
	return out
}

// unfence devuelve el contenido del primer bloque de código markdown.
func unfence(text string) (string, bool) {
	idx := strings.Index(text, "```")
	if idx == -1 {
		return "", false
	}
	after := text[idx+3:]
	if nl := strings.Index(after, "\n"); nl != -1 {
		after = after[nl+1:]
	}
	if end := strings.LastIndex(after, "```"); end != -1 {
		after = after[:end]
	}
	return after, true
}
