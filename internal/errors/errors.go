package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do catálogo.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_FAILED", "NOT_FOUND")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_FAILED" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// PreconditionError indica que a identidade do corpo não bate com a do caminho
// (ou com a do registro alvo de um Update).
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string    { return fmt.Sprintf("Pré-condição violada: %s", e.Msg) }
func (e *PreconditionError) Category() string { return "PRECONDITION_MISMATCH" }
func (e *PreconditionError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *PreconditionError) Unwrap() error    { return nil }

// NewPreconditionError cria um erro de divergência de identidade.
func NewPreconditionError(msg string) AppError {
	return &PreconditionError{Msg: msg}
}

// ConflictError representa um conflito na regra de negócio (e.g., nome de marca duplicado).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// UnauthorizedError representa ausência de credenciais válidas.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Unwrap() error    { return nil }

func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError representa credenciais válidas sem a permissão necessária.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("Acesso negado: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden } // 403
func (e *ForbiddenError) Unwrap() error    { return nil }

func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// StorageError representa falha de I/O no Entity Store (driver, timeout, conexão).
// Não é repetido internamente; política de retry pertence à infraestrutura.
type StorageError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Armazenamento indisponível: %s", e.Msg)
	}
	return fmt.Sprintf("Armazenamento indisponível: %s: %s", e.Msg, e.Err.Error())
}
func (e *StorageError) Category() string { return "STORAGE_UNAVAILABLE" }
func (e *StorageError) HTTPStatus() int  { return http.StatusServiceUnavailable } // 503
func (e *StorageError) Unwrap() error    { return e.Err }

// NewStorageError encapsula uma falha do store.
func NewStorageError(msg string, err error) AppError {
	return &StorageError{Msg: msg, Err: err}
}

// InternalError representa falhas inesperadas no servidor que não vieram do store.
type InternalError struct {
	Msg string
	Err error
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// --- Predicados ---

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsPrecondition(err error) bool {
	var target *PreconditionError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e corpo de resposta.
// Percorre a cadeia de Unwrap, então erros de app encapsulados com %w também são mapeados.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratar como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
