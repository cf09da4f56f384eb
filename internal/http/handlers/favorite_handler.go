// Favorites HTTP handlers.
//
// This file exposes REST endpoints for the per-user favorites:
//   - POST   /favoritos                                       (add)
//   - GET    /favoritos/usuario/{usuarioId}                   (list, optional sort)
//   - GET    /favoritos/usuario/{usuarioId}/estatisticas      (stats)
//   - GET    /favoritos/usuario/{usuarioId}/search            (search)
//   - GET    /favoritos/{animeId}/{usuarioId}                 (get one)
//   - GET    /favoritos/{animeId}/{usuarioId}/verificar       (check)
//   - PUT    /favoritos/{animeId}/{usuarioId}                 (update)
//   - DELETE /favoritos/{animeId}/{usuarioId}                 (remove)
//
// Handlers are transport-thin: they validate input, call the favorite
// service, and translate typed service errors into the error envelope.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aniteca/go-anime-backend/internal/anilist"
	"github.com/aniteca/go-anime-backend/internal/domain"
	"github.com/aniteca/go-anime-backend/internal/services"
	"github.com/aniteca/go-anime-backend/internal/utils"
)

// FavoritesService defines the favorite operations consumed by HTTP handlers.
type FavoritesService interface {
	// Add favorites an anime for a user, snapshotting the catalog record.
	Add(ctx context.Context, animeID int, userID string, rating float64, comment string) (*domain.Favorite, error)
	// Remove deletes a favorite; services.ErrFavoriteNotFound when absent.
	Remove(animeID int, userID string) error
	// Update merges the provided rating/comment into an existing favorite.
	Update(animeID int, userID string, upd services.FavoriteUpdate) (*domain.Favorite, error)
	// Exists reports whether the pair is favorited.
	Exists(animeID int, userID string) bool
	// Get returns the favorite, or false when absent.
	Get(animeID int, userID string) (*domain.Favorite, bool)
	// List returns the user's favorites, most recent first.
	List(userID string) []*domain.Favorite
	// Stats computes the user-facing statistics.
	Stats(userID string) services.UserStats
	// Search filters the user's favorites by a free-text criterion.
	Search(userID, criterion string) []*domain.Favorite
	// SortByRating returns the favorites ordered by rating.
	SortByRating(userID, direction string) []*domain.Favorite
}

// FavoriteHandlers groups the favorites endpoints.
type FavoriteHandlers struct {
	svc FavoritesService
}

// NewFavorites constructs the favorites handlers bound to the given service.
func NewFavorites(svc FavoritesService) *FavoriteHandlers {
	return &FavoriteHandlers{svc: svc}
}

// AddFavoriteRequest is the JSON payload for favoriting an anime.
type AddFavoriteRequest struct {
	AnimeID    int     `json:"animeId" example:"5114"`
	UsuarioID  string  `json:"usuarioId" example:"user123"`
	Nota       float64 `json:"nota" example:"8.5"`
	Comentario string  `json:"comentario" example:"obra-prima"`
}

// UpdateFavoriteRequest is the JSON payload for updating a favorite. Absent
// fields are left unchanged.
type UpdateFavoriteRequest struct {
	Nota       *float64 `json:"nota"`
	Comentario *string  `json:"comentario"`
}

// VerifyResponse is the payload of the verification endpoint.
type VerifyResponse struct {
	EFavorito bool `json:"eFavorito"`
}

// pairParams parses and validates the animeId/usuarioId path parameters.
// On failure it writes the error response and returns valid=false.
func pairParams(c *gin.Context) (animeID int, userID string, valid bool) {
	animeID = utils.AtoiDefault(c.Param("animeId"), 0)
	userID = strings.TrimSpace(c.Param("usuarioId"))
	if animeID <= 0 || userID == "" {
		fail(c, http.StatusBadRequest, CodeParametrosInvalidos, "Parâmetros inválidos")
		return 0, "", false
	}
	return animeID, userID, true
}

// userParam validates the usuarioId path parameter.
func userParam(c *gin.Context) (string, bool) {
	userID := strings.TrimSpace(c.Param("usuarioId"))
	if userID == "" {
		fail(c, http.StatusBadRequest, CodeUsuarioIDObrigatorio, "usuarioId é obrigatório")
		return "", false
	}
	return userID, true
}

// failFavorite maps favorite service errors to HTTP responses.
func failFavorite(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFavoriteExists):
		fail(c, http.StatusConflict, CodeFavoritoJaExiste, "Anime já está nos favoritos do usuário")
	case errors.Is(err, services.ErrFavoriteNotFound):
		fail(c, http.StatusNotFound, CodeFavoritoNaoEncontrado, "Favorito não encontrado")
	case errors.Is(err, services.ErrAnimeNotFound):
		fail(c, http.StatusNotFound, CodeAnimeNaoEncontrado, "Anime não encontrado")
	case errors.Is(err, anilist.ErrUnavailable):
		fail(c, http.StatusServiceUnavailable, CodeServicoIndisponivel, "Falha na comunicação com o serviço de animes")
	default:
		fail(c, http.StatusInternalServerError, CodeErroInterno, err.Error())
	}
}

// Add godoc
// @ID          addFavorite
// @Summary     Favorite an anime
// @Description Adds an anime to a user's favorites, fetching a fresh snapshot of the anime from the catalog.
// @Tags        Favoritos
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.AddFavoriteRequest  true  "Favorite payload"
// @Success     201  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     404  {object}  handlers.ErrorResponse  "Anime not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Already favorited"
// @Failure     503  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Router      /favoritos [post]
func (h *FavoriteHandlers) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeCorpoInvalido, "Corpo da requisição inválido")
		return
	}
	if req.AnimeID <= 0 {
		fail(c, http.StatusBadRequest, CodeAnimeIDInvalido, "animeId deve ser um número positivo")
		return
	}
	if strings.TrimSpace(req.UsuarioID) == "" {
		fail(c, http.StatusBadRequest, CodeUsuarioIDInvalido, "usuarioId é obrigatório")
		return
	}

	fav, err := h.svc.Add(c.Request.Context(), req.AnimeID, req.UsuarioID, req.Nota, req.Comentario)
	if err != nil {
		failFavorite(c, err)
		return
	}
	ok(c, http.StatusCreated, fav)
}

// List godoc
// @ID          listFavorites
// @Summary     List a user's favorites
// @Description Returns all favorites of a user, most recent first. With ordenarPor=nota the list is sorted by rating instead (ordem=asc|desc).
// @Tags        Favoritos
// @Produce     json
// @Param       usuarioId   path   string  true   "User ID"
// @Param       ordenarPor  query  string  false  "Sort field (nota)"
// @Param       ordem       query  string  false  "Sort direction"  Enums(asc, desc)
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Router      /favoritos/usuario/{usuarioId} [get]
func (h *FavoriteHandlers) List(c *gin.Context) {
	userID, valid := userParam(c)
	if !valid {
		return
	}

	var favs []*domain.Favorite
	if c.Query("ordenarPor") == "nota" {
		favs = h.svc.SortByRating(userID, c.DefaultQuery("ordem", "desc"))
	} else {
		favs = h.svc.List(userID)
	}
	ok(c, http.StatusOK, favs)
}

// Stats godoc
// @ID          favoriteStats
// @Summary     Get a user's favorite statistics
// @Description Returns total count, average rating over rated favorites, the top genres, and the five most recently added.
// @Tags        Favoritos
// @Produce     json
// @Param       usuarioId  path  string  true  "User ID"
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Router      /favoritos/usuario/{usuarioId}/estatisticas [get]
func (h *FavoriteHandlers) Stats(c *gin.Context) {
	userID, valid := userParam(c)
	if !valid {
		return
	}
	ok(c, http.StatusOK, h.svc.Stats(userID))
}

// Search godoc
// @ID          searchFavorites
// @Summary     Search a user's favorites
// @Description Filters the user's favorites by a free-text criterion matched against the anime and the comment. A blank criterion returns everything.
// @Tags        Favoritos
// @Produce     json
// @Param       usuarioId  path   string  true   "User ID"
// @Param       q          query  string  false  "Search criterion"
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Router      /favoritos/usuario/{usuarioId}/search [get]
func (h *FavoriteHandlers) Search(c *gin.Context) {
	userID, valid := userParam(c)
	if !valid {
		return
	}
	ok(c, http.StatusOK, h.svc.Search(userID, c.Query("q")))
}

// GetOne godoc
// @ID          getFavorite
// @Summary     Get one favorite
// @Description Returns the favorite for the given (animeId, usuarioId) pair.
// @Tags        Favoritos
// @Produce     json
// @Param       animeId    path  int     true  "Anime ID"  minimum(1)
// @Param       usuarioId  path  string  true  "User ID"
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     404  {object}  handlers.ErrorResponse  "Favorite not found"
// @Router      /favoritos/{animeId}/{usuarioId} [get]
func (h *FavoriteHandlers) GetOne(c *gin.Context) {
	animeID, userID, valid := pairParams(c)
	if !valid {
		return
	}

	fav, found := h.svc.Get(animeID, userID)
	if !found {
		fail(c, http.StatusNotFound, CodeFavoritoNaoEncontrado, "Favorito não encontrado")
		return
	}
	ok(c, http.StatusOK, fav)
}

// Verify godoc
// @ID          verifyFavorite
// @Summary     Check whether an anime is favorited
// @Description Reports whether the (animeId, usuarioId) pair exists, without an error for absence.
// @Tags        Favoritos
// @Produce     json
// @Param       animeId    path  int     true  "Anime ID"  minimum(1)
// @Param       usuarioId  path  string  true  "User ID"
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Router      /favoritos/{animeId}/{usuarioId}/verificar [get]
func (h *FavoriteHandlers) Verify(c *gin.Context) {
	animeID, userID, valid := pairParams(c)
	if !valid {
		return
	}
	ok(c, http.StatusOK, VerifyResponse{EFavorito: h.svc.Exists(animeID, userID)})
}

// Update godoc
// @ID          updateFavorite
// @Summary     Update a favorite
// @Description Updates the personal rating and/or comment of an existing favorite. Absent fields are unchanged; the added-at time and anime snapshot never change.
// @Tags        Favoritos
// @Accept      json
// @Produce     json
// @Param       animeId    path  int     true  "Anime ID"  minimum(1)
// @Param       usuarioId  path  string  true  "User ID"
// @Param       body       body  handlers.UpdateFavoriteRequest  true  "Fields to update"
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     404  {object}  handlers.ErrorResponse  "Favorite not found"
// @Router      /favoritos/{animeId}/{usuarioId} [put]
func (h *FavoriteHandlers) Update(c *gin.Context) {
	animeID, userID, valid := pairParams(c)
	if !valid {
		return
	}

	var req UpdateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeCorpoInvalido, "Corpo da requisição inválido")
		return
	}

	fav, err := h.svc.Update(animeID, userID, services.FavoriteUpdate{
		Rating:  req.Nota,
		Comment: req.Comentario,
	})
	if err != nil {
		failFavorite(c, err)
		return
	}
	ok(c, http.StatusOK, fav)
}

// Remove godoc
// @ID          removeFavorite
// @Summary     Remove a favorite
// @Description Deletes the favorite for the given (animeId, usuarioId) pair.
// @Tags        Favoritos
// @Produce     json
// @Param       animeId    path  int     true  "Anime ID"  minimum(1)
// @Param       usuarioId  path  string  true  "User ID"
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     404  {object}  handlers.ErrorResponse  "Favorite not found"
// @Router      /favoritos/{animeId}/{usuarioId} [delete]
func (h *FavoriteHandlers) Remove(c *gin.Context) {
	animeID, userID, valid := pairParams(c)
	if !valid {
		return
	}

	if err := h.svc.Remove(animeID, userID); err != nil {
		failFavorite(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Sucesso: true})
}
