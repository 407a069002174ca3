// Package namedrepo implementa o Repository genérico para tabelas cujo único
// atributo é o nome (brands, product_types).
package namedrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/logger"
)

// Repository persiste entidades (id, name) em uma tabela PostgreSQL.
type Repository[T domain.Entity[T]] struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
	logger    logger.Logger
	table     string
	label     string
}

// NewBrandRepository cria o repositório da tabela brands.
func NewBrandRepository(db *sqlx.DB, dbTimeout time.Duration, log logger.Logger) *Repository[domain.Brand] {
	return &Repository[domain.Brand]{DB: db, DBTimeout: dbTimeout, logger: log, table: "brands", label: "marca"}
}

// NewTypeProductRepository cria o repositório da tabela product_types.
func NewTypeProductRepository(db *sqlx.DB, dbTimeout time.Duration, log logger.Logger) *Repository[domain.TypeProduct] {
	return &Repository[domain.TypeProduct]{DB: db, DBTimeout: dbTimeout, logger: log, table: "product_types", label: "tipo de produto"}
}

// GetByID busca pelo ID. Ausência retorna (nil, nil).
func (r *Repository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT id, name FROM %s WHERE id = $1`, r.table)

	var entity T
	err := r.DB.GetContext(ctxTimeout, &entity, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug("Registro não encontrado.", map[string]interface{}{"table": r.table, "id": id})
		return nil, nil
	}
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao buscar %s no DB.", r.label), err)
		return nil, apperror.NewStorageError(fmt.Sprintf("Falha ao buscar %s", r.label), errors.Wrapf(err, "select %s id=%d", r.table, id))
	}
	return &entity, nil
}

// GetByName busca pela chave natural, sem diferenciar maiúsculas.
// Se houver duplicatas (corrida do get-or-create), devolve a mais antiga.
func (r *Repository[T]) GetByName(ctx context.Context, name string) (*T, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT id, name FROM %s WHERE lower(name) = lower($1) ORDER BY id LIMIT 1`, r.table)

	var entity T
	err := r.DB.GetContext(ctxTimeout, &entity, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao buscar %s por nome no DB.", r.label), err)
		return nil, apperror.NewStorageError(fmt.Sprintf("Falha ao buscar %s por nome", r.label), errors.Wrapf(err, "select %s name=%q", r.table, name))
	}
	return &entity, nil
}

// GetAll retorna todas as linhas da tabela.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT id, name FROM %s ORDER BY id`, r.table)

	entities := []T{}
	if err := r.DB.SelectContext(ctxTimeout, &entities, query); err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao listar %s no DB.", r.table), err)
		return nil, apperror.NewStorageError(fmt.Sprintf("Falha ao listar %s", r.table), errors.Wrapf(err, "select %s", r.table))
	}
	return entities, nil
}

// Add insere a entidade e devolve-a com o ID atribuído pelo banco.
func (r *Repository[T]) Add(ctx context.Context, entity T) (T, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING id`, r.table)

	var id int
	if err := r.DB.QueryRowxContext(ctxTimeout, query, entity.NaturalKey()).Scan(&id); err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao inserir %s no DB.", r.label), err)
		return entity, apperror.NewStorageError(fmt.Sprintf("Falha ao criar %s", r.label), errors.Wrapf(err, "insert %s", r.table))
	}

	r.logger.Info("Registro criado com sucesso.", map[string]interface{}{"table": r.table, "id": id, "name": entity.NaturalKey()})
	return entity.WithKey(id), nil
}

// Update sobrescreve o nome de existing com o de incoming. As identidades devem coincidir.
func (r *Repository[T]) Update(ctx context.Context, existing, incoming T) error {
	if existing.Key() != incoming.Key() {
		return apperror.NewPreconditionError(fmt.Sprintf("ID %d do corpo difere do registro %d.", incoming.Key(), existing.Key()))
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf(`UPDATE %s SET name = $1 WHERE id = $2`, r.table)

	result, err := r.DB.ExecContext(ctxTimeout, query, incoming.NaturalKey(), existing.Key())
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao atualizar %s no DB.", r.label), err)
		return apperror.NewStorageError(fmt.Sprintf("Falha ao atualizar %s", r.label), errors.Wrapf(err, "update %s id=%d", r.table, existing.Key()))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewStorageError("Falha ao verificar linhas afetadas", errors.WithStack(err))
	}
	if rowsAffected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("%s com ID %d não encontrado para atualização.", r.label, existing.Key()))
	}

	r.logger.Info("Registro atualizado com sucesso.", map[string]interface{}{"table": r.table, "id": existing.Key()})
	return nil
}

// Delete remove a linha. Se ela já não existir (exclusão concorrente), retorna NotFound.
func (r *Repository[T]) Delete(ctx context.Context, entity T) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)

	result, err := r.DB.ExecContext(ctxTimeout, query, entity.Key())
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao deletar %s do DB.", r.label), err)
		return apperror.NewStorageError(fmt.Sprintf("Falha ao deletar %s", r.label), errors.Wrapf(err, "delete %s id=%d", r.table, entity.Key()))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewStorageError("Falha ao verificar linhas afetadas", errors.WithStack(err))
	}
	if rowsAffected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("%s com ID %d não encontrado para exclusão.", r.label, entity.Key()))
	}

	r.logger.Info("Registro deletado com sucesso.", map[string]interface{}{"table": r.table, "id": entity.Key()})
	return nil
}

var (
	_ domain.BrandRepository       = (*Repository[domain.Brand])(nil)
	_ domain.TypeProductRepository = (*Repository[domain.TypeProduct])(nil)
)
