// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes the symbolic error code constants that are mapped to
// HTTP responses (via the `fail()` helper in this package). The codes are
// the public contract of the service: uppercase Portuguese identifiers the
// frontend branches on, so they must stay stable.
//
// Conventions:
//   - Validation failures pair a 400 status with the most specific code.
//   - Lookup misses use 404 with the resource-specific *_NAO_ENCONTRADO code.
//   - A duplicate favorite add is 409 FAVORITO_JA_EXISTE.
//   - Upstream catalog failures are 503 SERVICO_INDISPONIVEL; everything else
//     unexpected is 500 ERRO_INTERNO.
package handlers

const (
	// Validation (400)
	CodePaginaInvalida       = "PAGINA_INVALIDA"
	CodeLimiteInvalido       = "LIMITE_INVALIDO"
	CodeTermoObrigatorio     = "TERMO_OBRIGATORIO"
	CodeTermoMuitoCurto      = "TERMO_MUITO_CURTO"
	CodeGeneroObrigatorio    = "GENERO_OBRIGATORIO"
	CodeIDInvalido           = "ID_INVALIDO"
	CodeAnimeIDInvalido      = "ANIME_ID_INVALIDO"
	CodeUsuarioIDInvalido    = "USUARIO_ID_INVALIDO"
	CodeUsuarioIDObrigatorio = "USUARIO_ID_OBRIGATORIO"
	CodeParametrosInvalidos  = "PARAMETROS_INVALIDOS"
	CodeCorpoInvalido        = "CORPO_INVALIDO"

	// Lookup and state (404 / 409)
	CodeAnimeNaoEncontrado    = "ANIME_NAO_ENCONTRADO"
	CodeFavoritoNaoEncontrado = "FAVORITO_NAO_ENCONTRADO"
	CodeFavoritoJaExiste      = "FAVORITO_JA_EXISTE"

	// Infrastructure (4xx/5xx)
	CodeRotaNaoEncontrada   = "ROTA_NAO_ENCONTRADA"
	CodeMetodoNaoPermitido  = "METODO_NAO_PERMITIDO"
	CodeMuitasRequisicoes   = "MUITAS_REQUISICOES"
	CodeServicoIndisponivel = "SERVICO_INDISPONIVEL"
	CodeErroInterno         = "ERRO_INTERNO"
)
