// Anime catalog HTTP handlers.
//
// This file exposes REST endpoints for the anime catalog:
//   - GET /animes/generos         (genre list)
//   - GET /animes/populares       (popular, paginated)
//   - GET /animes/lancamento      (currently airing, paginated)
//   - GET /animes/search          (free-text search)
//   - GET /animes/genero/{nome}   (filtered by genre)
//   - GET /animes/{id}            (details)
//
// Handlers are transport-thin: they validate input, call the catalog service,
// and translate results into the success/error envelopes.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/aniteca/go-anime-backend/internal/anilist"
	"github.com/aniteca/go-anime-backend/internal/domain"
	"github.com/aniteca/go-anime-backend/internal/services"
	"github.com/aniteca/go-anime-backend/internal/utils"
)

// CatalogService defines the catalog operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CatalogService interface {
	// Popular returns a page of the most popular anime.
	Popular(ctx context.Context, page, limit int) ([]*domain.Anime, error)
	// Airing returns a page of currently releasing anime.
	Airing(ctx context.Context, page, limit int) ([]*domain.Anime, error)
	// ByGenre returns a page of anime in the given genre.
	ByGenre(ctx context.Context, genre string, page, limit int) ([]*domain.Anime, error)
	// Search returns a page of anime matching a free-text term.
	Search(ctx context.Context, term string, page, limit int) ([]*domain.Anime, error)
	// Details returns one anime, or services.ErrAnimeNotFound.
	Details(ctx context.Context, id int) (*domain.Anime, error)
	// Genres returns the available genre names.
	Genres(ctx context.Context) ([]string, error)
}

// AnimeHandlers groups the catalog endpoints.
type AnimeHandlers struct {
	svc CatalogService
}

// NewAnime constructs the catalog handlers bound to the given service.
func NewAnime(svc CatalogService) *AnimeHandlers {
	return &AnimeHandlers{svc: svc}
}

// pageParams parses and validates the page/limit query parameters. On a
// validation failure it writes the error response and returns ok=false.
func pageParams(c *gin.Context) (page, limit int, valid bool) {
	page = utils.AtoiDefault(c.Query("page"), 1)
	limit = utils.AtoiDefault(c.Query("limit"), 20)

	if page < 1 {
		fail(c, http.StatusBadRequest, CodePaginaInvalida, "Número da página deve ser maior que 0")
		return 0, 0, false
	}
	if limit < 1 || limit > 100 {
		fail(c, http.StatusBadRequest, CodeLimiteInvalido, "Limite deve estar entre 1 e 100")
		return 0, 0, false
	}
	return page, limit, true
}

// failCatalog maps catalog service errors to HTTP responses.
func failCatalog(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAnimeNotFound):
		fail(c, http.StatusNotFound, CodeAnimeNaoEncontrado, "Anime não encontrado")
	case errors.Is(err, anilist.ErrUnavailable):
		fail(c, http.StatusServiceUnavailable, CodeServicoIndisponivel, "Falha na comunicação com o serviço de animes")
	default:
		fail(c, http.StatusInternalServerError, CodeErroInterno, err.Error())
	}
}

// Genres godoc
// @ID          listGenres
// @Summary     List available genres
// @Description Returns the genre name collection from the catalog.
// @Tags        Animes
// @Produce     json
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     503  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Router      /animes/generos [get]
func (h *AnimeHandlers) Genres(c *gin.Context) {
	genres, err := h.svc.Genres(c.Request.Context())
	if err != nil {
		failCatalog(c, err)
		return
	}
	ok(c, http.StatusOK, genres)
}

// Popular godoc
// @ID          listPopular
// @Summary     List popular anime
// @Description Returns a page of the most popular anime. Page 1 is served from a short-lived cache.
// @Tags        Animes
// @Produce     json
// @Param       page   query  int  false  "Page number"     minimum(1) default(1)
// @Param       limit  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     503  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Router      /animes/populares [get]
func (h *AnimeHandlers) Popular(c *gin.Context) {
	page, limit, valid := pageParams(c)
	if !valid {
		return
	}

	animes, err := h.svc.Popular(c.Request.Context(), page, limit)
	if err != nil {
		failCatalog(c, err)
		return
	}
	okEnvelope(c, http.StatusOK, SuccessResponse{
		Dados:     animes,
		Paginacao: &PageMeta{Pagina: page, Limite: limit, Total: len(animes)},
	})
}

// Airing godoc
// @ID          listAiring
// @Summary     List currently airing anime
// @Description Returns a page of anime currently in release. Page 1 is served from a short-lived cache.
// @Tags        Animes
// @Produce     json
// @Param       page   query  int  false  "Page number"     minimum(1) default(1)
// @Param       limit  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     503  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Router      /animes/lancamento [get]
func (h *AnimeHandlers) Airing(c *gin.Context) {
	page, limit, valid := pageParams(c)
	if !valid {
		return
	}

	animes, err := h.svc.Airing(c.Request.Context(), page, limit)
	if err != nil {
		failCatalog(c, err)
		return
	}
	okEnvelope(c, http.StatusOK, SuccessResponse{
		Dados:     animes,
		Paginacao: &PageMeta{Pagina: page, Limite: limit, Total: len(animes)},
	})
}

// Search godoc
// @ID          searchAnime
// @Summary     Search anime by term
// @Description Returns a page of anime matching the free-text term (minimum 2 characters). Never cached.
// @Tags        Animes
// @Produce     json
// @Param       q      query  string  true   "Search term (min 2 chars)"
// @Param       page   query  int     false  "Page number"     minimum(1) default(1)
// @Param       limit  query  int     false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     503  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Router      /animes/search [get]
func (h *AnimeHandlers) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		fail(c, http.StatusBadRequest, CodeTermoObrigatorio, "Termo de pesquisa é obrigatório")
		return
	}
	if utf8.RuneCountInString(term) < 2 {
		fail(c, http.StatusBadRequest, CodeTermoMuitoCurto, "Termo de pesquisa deve ter pelo menos 2 caracteres")
		return
	}
	page, limit, valid := pageParams(c)
	if !valid {
		return
	}

	animes, err := h.svc.Search(c.Request.Context(), term, page, limit)
	if err != nil {
		failCatalog(c, err)
		return
	}
	okEnvelope(c, http.StatusOK, SuccessResponse{
		Dados:    animes,
		Pesquisa: &SearchMeta{Termo: term, Pagina: page, Limite: limit, Total: len(animes)},
	})
}

// ByGenre godoc
// @ID          listByGenre
// @Summary     List anime by genre
// @Description Returns a page of anime in the given genre. Never cached.
// @Tags        Animes
// @Produce     json
// @Param       nome   path   string  true   "Genre name"
// @Param       page   query  int     false  "Page number"     minimum(1) default(1)
// @Param       limit  query  int     false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     503  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Router      /animes/genero/{nome} [get]
func (h *AnimeHandlers) ByGenre(c *gin.Context) {
	genre := strings.TrimSpace(c.Param("nome"))
	if genre == "" {
		fail(c, http.StatusBadRequest, CodeGeneroObrigatorio, "Nome do gênero é obrigatório")
		return
	}
	page, limit, valid := pageParams(c)
	if !valid {
		return
	}

	animes, err := h.svc.ByGenre(c.Request.Context(), genre, page, limit)
	if err != nil {
		failCatalog(c, err)
		return
	}
	okEnvelope(c, http.StatusOK, SuccessResponse{
		Dados:  animes,
		Filtro: &FilterMeta{Genero: genre, Pagina: page, Limite: limit, Total: len(animes)},
	})
}

// Details godoc
// @ID          getAnimeDetails
// @Summary     Get anime details
// @Description Returns the full record for one anime id. Always fetched fresh from the catalog.
// @Tags        Animes
// @Produce     json
// @Param       id  path  int  true  "Anime ID"  minimum(1)
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid id"
// @Failure     404  {object}  handlers.ErrorResponse  "Anime not found"
// @Failure     503  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Router      /animes/{id} [get]
func (h *AnimeHandlers) Details(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, CodeIDInvalido, "ID do anime deve ser um número positivo")
		return
	}

	anime, err := h.svc.Details(c.Request.Context(), id)
	if err != nil {
		failCatalog(c, err)
		return
	}
	ok(c, http.StatusOK, anime)
}
