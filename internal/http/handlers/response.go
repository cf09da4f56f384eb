// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints.
// The wire contract is the one the frontend consumes: success responses are
// wrapped in a {"sucesso": true, "dados": …} envelope, optionally carrying a
// pagination, filter or search metadata block; error responses are
// {"erro": …, "codigo": …, "timestamp": …} with a stable machine-readable
// code (see errors.go).
//
// Conventions:
//   - All error responses must return an ErrorResponse with a stable `codigo`.
//   - `fail()` centralizes error formatting and ensures 5xx responses are
//     logged with request context for observability.
//   - `ok()` wraps the payload in the success envelope.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "erro": "Favorito não encontrado",
//	  "codigo": "FAVORITO_NAO_ENCONTRADO",
//	  "timestamp": "2025-03-01T12:00:00Z"
//	}
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aniteca/go-anime-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Human-readable message (safe to show to users)
	Erro string `json:"erro" example:"Favorito não encontrado"`
	// Stable, machine-readable code (see errors.go constants)
	Codigo string `json:"codigo" example:"FAVORITO_NAO_ENCONTRADO"`
	// RFC 3339 UTC timestamp of the failure
	Timestamp string `json:"timestamp" example:"2025-03-01T12:00:00Z"`
}

// PageMeta is the pagination block attached to plain list responses.
type PageMeta struct {
	Pagina int `json:"pagina"`
	Limite int `json:"limite"`
	Total  int `json:"total"`
}

// FilterMeta is the metadata block attached to genre-filtered responses.
type FilterMeta struct {
	Genero string `json:"genero"`
	Pagina int    `json:"pagina"`
	Limite int    `json:"limite"`
	Total  int    `json:"total"`
}

// SearchMeta is the metadata block attached to search responses.
type SearchMeta struct {
	Termo  string `json:"termo"`
	Pagina int    `json:"pagina"`
	Limite int    `json:"limite"`
	Total  int    `json:"total"`
}

// SuccessResponse is the standard success envelope. Exactly one of the
// optional metadata blocks may be present, depending on the endpoint.
type SuccessResponse struct {
	Sucesso   bool        `json:"sucesso"`
	Dados     any         `json:"dados,omitempty"`
	Paginacao *PageMeta   `json:"paginacao,omitempty"`
	Filtro    *FilterMeta `json:"filtro,omitempty"`
	Pesquisa  *SearchMeta `json:"pesquisa,omitempty"`
}

// fail aborts the request with a structured error.
//
// Server errors (>=500) are logged using the request-scoped logger from
// middleware so that every internal failure leaves a trace.
func fail(c *gin.Context, status int, codigo, erro string) {
	resp := ErrorResponse{
		Erro:      erro,
		Codigo:    codigo,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("codigo", codigo).
			Str("erro", erro).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, codigo, erro string) { fail(c, status, codigo, erro) }

// ok writes a success envelope with the given payload and no metadata block.
func ok(c *gin.Context, status int, dados any) {
	c.JSON(status, SuccessResponse{Sucesso: true, Dados: dados})
}

// okEnvelope writes a fully specified success envelope. Used by list
// endpoints that attach a metadata block.
func okEnvelope(c *gin.Context, status int, resp SuccessResponse) {
	resp.Sucesso = true
	c.JSON(status, resp)
}
