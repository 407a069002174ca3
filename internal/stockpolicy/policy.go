// Package stockpolicy classifica a disponibilidade de um produto a partir do
// estoque real e do mínimo. As políticas não têm estado nem fazem I/O.
package stockpolicy

import (
	"fmt"
	"sort"
	"strings"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
)

// Policy é uma regra de disponibilidade intercambiável.
type Policy interface {
	Name() string
	CheckAvailability(product domain.Product) domain.Availability
}

// Shortage: abaixo do mínimo o produto fica indisponível.
type Shortage struct{}

func (Shortage) Name() string { return "shortage" }

func (Shortage) CheckAvailability(p domain.Product) domain.Availability {
	if p.RealStock < p.MinStock {
		return domain.Unavailable
	}
	return domain.Available
}

// PreOrder: abaixo do mínimo o produto aceita encomenda.
type PreOrder struct{}

func (PreOrder) Name() string { return "preorder" }

func (PreOrder) CheckAvailability(p domain.Product) domain.Availability {
	if p.RealStock < p.MinStock {
		return domain.Precommandable
	}
	return domain.Available
}

// Strict só considera disponível quando o estoque real é exatamente o mínimo.
// Acima do mínimo também resulta em Unavailable.
type Strict struct{}

func (Strict) Name() string { return "strict" }

func (Strict) CheckAvailability(p domain.Product) domain.Availability {
	if p.RealStock == p.MinStock {
		return domain.Available
	}
	return domain.Unavailable
}

var registry = map[string]Policy{
	Shortage{}.Name(): Shortage{},
	PreOrder{}.Name(): PreOrder{},
	Strict{}.Name():   Strict{},
}

// ByName devolve a política registrada com o nome dado (sem diferenciar maiúsculas).
func ByName(name string) (Policy, error) {
	policy, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, apperror.NewValidationError(fmt.Sprintf("Política de estoque desconhecida %q. Valores aceitos: %s.", name, strings.Join(Names(), ", ")))
	}
	return policy, nil
}

// Names lista as políticas registradas em ordem alfabética.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
