package database

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	// Driver pq para PostgreSQL, registrado como "postgres"
	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

// NewPostgresDB inicializa e configura o pool de conexões com o PostgreSQL.
// Retorna a conexão *sqlx.DB pronta para uso.
func NewPostgresDB(dataSourceName string) (*sqlx.DB, error) {
	// 1. Abrir a Conexão
	db, err := sqlx.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	// 2. Testar a Conexão Imediatamente
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	// 3. Configuração do Connection Pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return db, nil
}

// EnsureSchema cria as três tabelas do catálogo caso ainda não existam.
// Não há versionamento: o script é idempotente e roda a cada inicialização.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("falha ao aplicar o schema do catálogo: %w", err)
	}
	return nil
}

// Schema devolve o DDL embutido (exposto pelo comando "schema" da CLI).
func Schema() string {
	return schemaSQL
}
