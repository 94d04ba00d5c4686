package entity

import (
	"encoding/json"
	"fmt"

	"github.com/nordicmagic/backend/pkg/enum"
)

type CatalogItemType string

var (
	CatalogSpell   = enum.New(CatalogItemType("spell"))
	CatalogReading = enum.New(CatalogItemType("reading"))
)

// Price is either a fixed amount or a textual range like "15-40". It
// marshals to a JSON number or string accordingly.
type Price struct {
	Amount float64
	Range  string
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.Range != "" {
		return json.Marshal(p.Range)
	}

	return json.Marshal(p.Amount)
}

func (p *Price) UnmarshalJSON(b []byte) error {
	var amount float64
	if err := json.Unmarshal(b, &amount); err == nil {
		*p = Price{Amount: amount}
		return nil
	}

	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		*p = Price{Range: text}
		return nil
	}

	return fmt.Errorf("cannot unmarshal price from %s", b)
}

// CatalogItem is static read-only reference data. It is not persisted.
type CatalogItem struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price Price           `json:"price"`
	Type  CatalogItemType `json:"type"`
}

var CatalogItems = []CatalogItem{
	{ID: 1, Name: "Enlace del destino", Price: Price{Amount: 25}, Type: CatalogSpell},
	{ID: 2, Name: "Mal Karma", Price: Price{Amount: 28}, Type: CatalogSpell},
	{ID: 3, Name: "Mi futuro ideal", Price: Price{Amount: 25}, Type: CatalogSpell},
	{ID: 4, Name: "Cortar el hilo", Price: Price{Amount: 25}, Type: CatalogSpell},
	{ID: 5, Name: "Hilar el camino", Price: Price{Amount: 35}, Type: CatalogSpell},
	{ID: 6, Name: "Pesadilla", Price: Price{Amount: 28}, Type: CatalogSpell},
	{ID: 7, Name: "Lectura de mascota", Price: Price{Amount: 3}, Type: CatalogReading},
	{ID: 8, Name: "Lectura de amor verdadero", Price: Price{Amount: 8}, Type: CatalogReading},
	{ID: 9, Name: "Hazme 5 preguntas", Price: Price{Amount: 5}, Type: CatalogReading},
	{ID: 10, Name: "Pregunta 30 minutos", Price: Price{Amount: 15}, Type: CatalogReading},
	{ID: 11, Name: "Personalizada", Price: Price{Range: "15-40"}, Type: CatalogReading},
}
