package http

import (
	"net/http"

	"openshelf/internal/usecase"
	"openshelf/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DownloadHandler struct {
	downloadUseCase usecase.DownloadUseCase
	logger          *logger.Logger
}

func NewDownloadHandler(downloadUseCase usecase.DownloadUseCase, logger *logger.Logger) *DownloadHandler {
	return &DownloadHandler{
		downloadUseCase: downloadUseCase,
		logger:          logger,
	}
}

type CreateDownloadRequest struct {
	WorkID string `json:"work_id" binding:"required"`
}

// CreateDownload godoc
// @Summary      Download a work
// @Description  Record a download and return the file URL. Authentication is optional; anonymous downloads are counted without a user.
// @Tags         downloads
// @Accept       json
// @Produce      json
// @Param        request body CreateDownloadRequest true "Work to download"
// @Success      200  {object}  usecase.DownloadResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /downloads [post]
func (h *DownloadHandler) CreateDownload(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.downloadUseCase.Record(req.WorkID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListDownloads godoc
// @Summary      List the current user's download history
// @Tags         downloads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Download
// @Router       /downloads [get]
func (h *DownloadHandler) ListDownloads(c *gin.Context) {
	userID := c.GetString("user_id")

	downloads, err := h.downloadUseCase.ListForUser(userID)
	if err != nil {
		h.logger.Error("Failed to list downloads for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, downloads)
}
