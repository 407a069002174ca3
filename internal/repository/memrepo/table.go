// Package memrepo implementa o Entity Store em memória, usado pelo driver
// "memory" e pelos testes de integração da API.
package memrepo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
)

// Table guarda entidades indexadas pelo ID, atribuído sequencialmente a partir de 1.
type Table[T domain.Entity[T]] struct {
	mu     sync.RWMutex
	rows   map[int]T
	nextID int
	label  string
}

func newTable[T domain.Entity[T]](label string) *Table[T] {
	return &Table[T]{rows: make(map[int]T), nextID: 1, label: label}
}

// NewBrandRepository cria uma tabela de marcas vazia.
func NewBrandRepository() *Table[domain.Brand] {
	return newTable[domain.Brand]("marca")
}

// NewTypeProductRepository cria uma tabela de tipos de produto vazia.
func NewTypeProductRepository() *Table[domain.TypeProduct] {
	return newTable[domain.TypeProduct]("tipo de produto")
}

func (t *Table[T]) GetByID(ctx context.Context, id int) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.NewStorageError("Operação cancelada", err)
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	entity, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	return &entity, nil
}

// GetByName devolve a entidade de menor ID cujo nome coincide sem diferenciar maiúsculas.
func (t *Table[T]) GetByName(ctx context.Context, name string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.NewStorageError("Operação cancelada", err)
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.sortedIDs() {
		if strings.EqualFold(t.rows[id].NaturalKey(), name) {
			entity := t.rows[id]
			return &entity, nil
		}
	}
	return nil, nil
}

func (t *Table[T]) GetAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.NewStorageError("Operação cancelada", err)
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	entities := make([]T, 0, len(t.rows))
	for _, id := range t.sortedIDs() {
		entities = append(entities, t.rows[id])
	}
	return entities, nil
}

func (t *Table[T]) Add(ctx context.Context, entity T) (T, error) {
	if err := ctx.Err(); err != nil {
		return entity, apperror.NewStorageError("Operação cancelada", err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	stored := entity.WithKey(t.nextID)
	t.rows[stored.Key()] = stored
	t.nextID++
	return stored, nil
}

func (t *Table[T]) Update(ctx context.Context, existing, incoming T) error {
	if existing.Key() != incoming.Key() {
		return apperror.NewPreconditionError(fmt.Sprintf("ID %d do corpo difere do registro %d.", incoming.Key(), existing.Key()))
	}
	if err := ctx.Err(); err != nil {
		return apperror.NewStorageError("Operação cancelada", err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[existing.Key()]; !ok {
		return apperror.NewNotFoundError(fmt.Sprintf("%s com ID %d não encontrado para atualização.", t.label, existing.Key()))
	}
	t.rows[existing.Key()] = incoming
	return nil
}

func (t *Table[T]) Delete(ctx context.Context, entity T) error {
	if err := ctx.Err(); err != nil {
		return apperror.NewStorageError("Operação cancelada", err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[entity.Key()]; !ok {
		return apperror.NewNotFoundError(fmt.Sprintf("%s com ID %d não encontrado para exclusão.", t.label, entity.Key()))
	}
	delete(t.rows, entity.Key())
	return nil
}

// Len devolve o número de linhas, usado pelos testes.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// sortedIDs exige que o chamador detenha t.mu.
func (t *Table[T]) sortedIDs() []int {
	ids := make([]int, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
