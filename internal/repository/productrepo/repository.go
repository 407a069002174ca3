package productrepo

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

// ProductRepository implementa domain.ProductRepository sobre PostgreSQL.
// As leituras fazem LEFT JOIN com brands e product_types para preencher os nomes.
type ProductRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
func NewProductRepository(db *sqlx.DB, dbTimeout time.Duration, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

const selectWithRelations = `
	SELECT p.id, p.name, p.description, p.photo_name, p.photo_uri,
	       p.real_stock, p.min_stock, p.max_stock, p.brand_id, p.type_id,
	       b.name AS brand_name, t.name AS type_name
	FROM products p
	LEFT JOIN brands b ON b.id = p.brand_id
	LEFT JOIN product_types t ON t.id = p.type_id`

// productRow é a linha do JOIN; brand_name/type_name são nulos quando a
// referência é nula ou aponta para uma linha já excluída.
type productRow struct {
	domain.Product
	BrandName *string `db:"brand_name"`
	TypeName  *string `db:"type_name"`
}

func (row productRow) toDomain() domain.Product {
	p := row.Product
	if p.BrandID != nil && row.BrandName != nil {
		p.Brand = &domain.Brand{ID: *p.BrandID, Name: *row.BrandName}
	}
	if p.TypeID != nil && row.TypeName != nil {
		p.Type = &domain.TypeProduct{ID: *p.TypeID, Name: *row.TypeName}
	}
	return p
}

// GetByID busca um produto pelo ID. Ausência retorna (nil, nil).
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var row productRow
	err := r.DB.GetContext(ctxTimeout, &row, selectWithRelations+` WHERE p.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug("Produto não encontrado.", map[string]interface{}{"id": id})
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto no DB.", err)
		return nil, apperror.NewStorageError("Falha ao buscar produto", errors.Wrapf(err, "select product id=%d", id))
	}

	p := row.toDomain()
	return &p, nil
}

// GetByName busca um produto pelo nome, sem diferenciar maiúsculas.
func (r *ProductRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var row productRow
	err := r.DB.GetContext(ctxTimeout, &row, selectWithRelations+` WHERE lower(p.name) = lower($1) ORDER BY p.id LIMIT 1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto por nome no DB.", err)
		return nil, apperror.NewStorageError("Falha ao buscar produto por nome", errors.Wrapf(err, "select product name=%q", name))
	}

	p := row.toDomain()
	return &p, nil
}

// GetAll lista todos os produtos com as relações resolvidas.
func (r *ProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []productRow
	if err := r.DB.SelectContext(ctxTimeout, &rows, selectWithRelations+` ORDER BY p.id`); err != nil {
		r.logger.Error("Falha ao listar produtos no DB.", err)
		return nil, apperror.NewStorageError("Falha ao listar produtos", errors.Wrap(err, "select products"))
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toDomain())
	}

	r.logger.Debug("Produtos listados.", map[string]interface{}{"total": len(products)})
	return products, nil
}

// Add insere o produto e devolve-o com o ID atribuído pelo banco.
func (r *ProductRepository) Add(ctx context.Context, product domain.Product) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		INSERT INTO products (name, description, photo_name, photo_uri, real_stock, min_stock, max_stock, brand_id, type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int
	err := r.DB.QueryRowxContext(ctxTimeout, query,
		product.Name,
		product.Description,
		product.PhotoName,
		product.PhotoURI,
		product.RealStock,
		product.MinStock,
		product.MaxStock,
		product.BrandID,
		product.TypeID,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Falha ao inserir produto no DB.", err)
		return domain.Product{}, apperror.NewStorageError("Falha ao criar produto", errors.Wrap(err, "insert product"))
	}

	product.ID = id
	r.logger.Info("Produto criado com sucesso.", map[string]interface{}{"id": id, "name": product.Name})
	return product, nil
}

// Update sobrescreve todos os campos escalares de existing com os de incoming,
// dentro de uma única transação. Não há token de versão: o último a escrever vence.
func (r *ProductRepository) Update(ctx context.Context, existing, incoming domain.Product) error {
	if existing.ID != incoming.ID {
		return apperror.NewPreconditionError(fmt.Sprintf("ID %d do corpo difere do produto %d.", incoming.ID, existing.ID))
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTxx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao iniciar transação de atualização de produto.", err)
		return apperror.NewStorageError("Falha ao iniciar transação", errors.WithStack(err))
	}
	defer tx.Rollback()

	const query = `
		UPDATE products
		SET name = $1, description = $2, photo_name = $3, photo_uri = $4,
		    real_stock = $5, min_stock = $6, max_stock = $7, brand_id = $8, type_id = $9
		WHERE id = $10`

	result, err := tx.ExecContext(ctxTimeout, query,
		incoming.Name,
		incoming.Description,
		incoming.PhotoName,
		incoming.PhotoURI,
		incoming.RealStock,
		incoming.MinStock,
		incoming.MaxStock,
		incoming.BrandID,
		incoming.TypeID,
		existing.ID,
	)
	if err != nil {
		r.logger.Error("Falha ao atualizar produto.", err)
		return apperror.NewStorageError("Falha ao atualizar produto", errors.Wrapf(err, "update product id=%d", existing.ID))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewStorageError("Falha ao verificar linhas afetadas", errors.WithStack(err))
	}
	if rowsAffected == 0 {
		r.logger.Warn("Produto removido antes da atualização.", map[string]interface{}{"id": existing.ID})
		return apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %d não encontrado para atualização.", existing.ID))
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar transação de atualização de produto.", err)
		return apperror.NewStorageError("Falha ao commitar transação", errors.WithStack(err))
	}

	r.logger.Info("Produto atualizado com sucesso.", map[string]interface{}{"id": existing.ID})
	return nil
}

// Delete remove o produto. Se a linha já não existir, retorna NotFound.
func (r *ProductRepository) Delete(ctx context.Context, product domain.Product) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM products WHERE id = $1`, product.ID)
	if err != nil {
		r.logger.Error("Falha ao deletar produto do DB.", err)
		return apperror.NewStorageError("Falha ao deletar produto", errors.Wrapf(err, "delete product id=%d", product.ID))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewStorageError("Falha ao verificar linhas afetadas", errors.WithStack(err))
	}
	if rowsAffected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %d não encontrado para exclusão.", product.ID))
	}

	r.logger.Info("Produto deletado com sucesso.", map[string]interface{}{"id": product.ID})
	return nil
}

var _ domain.ProductRepository = (*ProductRepository)(nil)
