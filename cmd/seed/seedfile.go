package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/kondate-api/internal/application/dto"
)

// seedFileDoc formato del archivo de carga. Las cantidades se leen como texto para no perder precisión.
type seedFileDoc struct {
	Servings  int            `yaml:"servings"`
	Purchases []seedPurchase `yaml:"purchases"`
}

type seedPurchase struct {
	Name       string `yaml:"name"`
	Unit       string `yaml:"unit"`
	Quantity   string `yaml:"quantity"`
	TotalPrice string `yaml:"totalPrice"`
}

func parseSeedFile(raw []byte) (*seedFileDoc, error) {
	var doc seedFileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("yaml inválido: %w", err)
	}
	if len(doc.Purchases) == 0 && doc.Servings == 0 {
		return nil, fmt.Errorf("el archivo no contiene compras ni servings")
	}
	if doc.Servings < 0 {
		return nil, fmt.Errorf("servings debe ser un entero positivo")
	}
	return &doc, nil
}

// requests convierte las compras a la misma entrada que usa la API.
func (d *seedFileDoc) requests() ([]dto.AddIngredientRequest, error) {
	out := make([]dto.AddIngredientRequest, 0, len(d.Purchases))
	for i, p := range d.Purchases {
		qty, err := decimal.NewFromString(p.Quantity)
		if err != nil {
			return nil, fmt.Errorf("compra #%d: quantity %q: %w", i+1, p.Quantity, err)
		}
		total, err := decimal.NewFromString(p.TotalPrice)
		if err != nil {
			return nil, fmt.Errorf("compra #%d: totalPrice %q: %w", i+1, p.TotalPrice, err)
		}
		out = append(out, dto.AddIngredientRequest{
			Name:       p.Name,
			Unit:       p.Unit,
			Quantity:   &qty,
			TotalPrice: &total,
		})
	}
	return out, nil
}
