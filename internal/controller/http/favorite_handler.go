package http

import (
	"net/http"

	"openshelf/internal/usecase"
	"openshelf/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteUseCase usecase.FavoriteUseCase
	logger          *logger.Logger
}

func NewFavoriteHandler(favoriteUseCase usecase.FavoriteUseCase, logger *logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
		logger:          logger,
	}
}

// ToggleFavorite godoc
// @Summary      Toggle a favorite
// @Description  Add the work to favorites, or remove it if it is already there
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Success      200  {object}  usecase.FavoriteResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /works/{id}/favorite [post]
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	workID := c.Param("id")
	userID := c.GetString("user_id")

	result, err := h.favoriteUseCase.Toggle(userID, workID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RemoveFavorite godoc
// @Summary      Remove a favorite
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Success      200  {object}  usecase.FavoriteResult
// @Router       /works/{id}/favorite [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	workID := c.Param("id")
	userID := c.GetString("user_id")

	result, err := h.favoriteUseCase.Remove(userID, workID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// IsFavorite godoc
// @Summary      Check whether a work is favorited
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Success      200  {object}  map[string]bool
// @Router       /works/{id}/favorite [get]
func (h *FavoriteHandler) IsFavorite(c *gin.Context) {
	workID := c.Param("id")
	userID := c.GetString("user_id")

	isFavorite, err := h.favoriteUseCase.IsFavorite(userID, workID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorite": isFavorite})
}

// ListFavorites godoc
// @Summary      List the current user's favorites
// @Description  Favorites with their resolved works, newest first
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.FavoriteWithWork
// @Router       /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID := c.GetString("user_id")

	favorites, err := h.favoriteUseCase.ListForUser(userID)
	if err != nil {
		h.logger.Error("Failed to list favorites for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, favorites)
}
