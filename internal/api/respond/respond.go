// Package respond concentra a escrita de respostas JSON e a leitura de
// parâmetros de rota compartilhadas pelos handlers.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/logger"
)

// Handle envia data com successStatus, ou a resposta de erro padronizada se err != nil.
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}

	if data == nil {
		w.WriteHeader(successStatus)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(successStatus)
	if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
		log.Error("Falha ao codificar JSON de resposta", jsonErr)
	}
}

// Error traduz err para o status HTTP e escreve um domain.ErrorResponse.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// PathID lê a variável de rota {id} como inteiro positivo.
func PathID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperror.NewValidationError(fmt.Sprintf("ID %q inválido: deve ser um inteiro positivo.", raw))
	}
	return id, nil
}

// DecodeJSON decodifica o corpo em dst, recusando campos desconhecidos.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperror.NewValidationError(fmt.Sprintf("Payload inválido. Verifique o formato JSON: %v", err))
	}
	return nil
}
