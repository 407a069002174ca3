package domain

import (
	"encoding/json"
	"fmt"
)

// Availability é a classificação de disponibilidade produzida por uma política de estoque.
type Availability int

const (
	Available Availability = iota
	Unavailable
	Precommandable
)

func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Unavailable:
		return "unavailable"
	case Precommandable:
		return "precommandable"
	default:
		return fmt.Sprintf("availability(%d)", int(a))
	}
}

func (a Availability) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Availability) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "available":
		*a = Available
	case "unavailable":
		*a = Unavailable
	case "precommandable":
		*a = Precommandable
	default:
		return fmt.Errorf("disponibilidade desconhecida: %q", s)
	}
	return nil
}

// AvailabilityView é a resposta da avaliação de estoque de um produto.
type AvailabilityView struct {
	ProductID    int          `json:"productId"`
	Name         string       `json:"name"`
	RealStock    int          `json:"realStock"`
	MinStock     int          `json:"minStock"`
	MaxStock     int          `json:"maxStock"`
	Policy       string       `json:"policy"`
	Availability Availability `json:"availability" swaggertype:"string" enums:"available,unavailable,precommandable"`
	InRestocking bool         `json:"inRestocking"`
}
