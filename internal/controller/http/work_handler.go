package http

import (
	"net/http"

	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"
	"openshelf/internal/usecase"
	"openshelf/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WorkHandler struct {
	workUseCase       usecase.WorkUseCase
	moderationUseCase usecase.ModerationUseCase
	logger            *logger.Logger
}

func NewWorkHandler(
	workUseCase usecase.WorkUseCase,
	moderationUseCase usecase.ModerationUseCase,
	logger *logger.Logger,
) *WorkHandler {
	return &WorkHandler{
		workUseCase:       workUseCase,
		moderationUseCase: moderationUseCase,
		logger:            logger,
	}
}

type SubmitWorkRequest struct {
	Title       string              `json:"title" binding:"required"`
	Author      string              `json:"author" binding:"required"`
	Description string              `json:"description"`
	Type        string              `json:"type" binding:"required,oneof=book article thesis video audio document"`
	FileURL     string              `json:"file_url"`
	Metadata    entity.WorkMetadata `json:"metadata"`
	CategoryIDs []string            `json:"category_ids"`
}

type UpdateWorkRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	CategoryIDs []string `json:"category_ids"`
}

type RejectWorkRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// SubmitWork godoc
// @Summary      Submit a work for moderation
// @Description  Propose a new work for the catalog. The work stays hidden until a librarian approves it.
// @Tags         works
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitWorkRequest true "Work data"
// @Success      201  {object}  entity.Work
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /works [post]
func (h *WorkHandler) SubmitWork(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SubmitWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, err := h.workUseCase.Submit(userID, usecase.SubmitWorkInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Type:        entity.WorkType(req.Type),
		FileURL:     req.FileURL,
		Metadata:    req.Metadata,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, work)
}

// ListWorks godoc
// @Summary      Browse the catalog
// @Description  List approved works, optionally filtered by type, category or a title/author search
// @Tags         works
// @Produce      json
// @Param        type query string false "Work type filter"
// @Param        category query string false "Category ID filter"
// @Param        search query string false "Search in title and author"
// @Success      200  {array}  entity.Work
// @Router       /works [get]
func (h *WorkHandler) ListWorks(c *gin.Context) {
	filter := persistent.WorkFilter{
		Type:       entity.WorkType(c.Query("type")),
		CategoryID: c.Query("category"),
		Search:     c.Query("search"),
	}

	works, err := h.workUseCase.ListApproved(filter)
	if err != nil {
		h.logger.Error("Failed to list works: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, works)
}

// GetWork godoc
// @Summary      Get work by ID
// @Description  Get work details and count a view for authenticated visitors
// @Tags         works
// @Produce      json
// @Param        id path string true "Work ID"
// @Success      200  {object}  entity.Work
// @Failure      404  {object}  map[string]string
// @Router       /works/{id} [get]
func (h *WorkHandler) GetWork(c *gin.Context) {
	workID := c.Param("id")
	userID := c.GetString("user_id")

	work, err := h.workUseCase.GetWork(workID)
	if err != nil {
		respondError(c, err)
		return
	}

	if counted, err := h.workUseCase.IncrementViews(workID, userID); err != nil {
		h.logger.Warn("Failed to count view of work %s: %v", workID, err)
	} else if counted {
		work.Views++
	}

	c.JSON(http.StatusOK, work)
}

// MyWorks godoc
// @Summary      List the current user's submissions
// @Tags         works
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Work
// @Router       /works/mine [get]
func (h *WorkHandler) MyWorks(c *gin.Context) {
	userID := c.GetString("user_id")

	works, err := h.workUseCase.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, works)
}

// UpdateWork godoc
// @Summary      Update a submitted work
// @Description  Edit the title, description or categories of one of the caller's works
// @Tags         works
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Param        request body UpdateWorkRequest true "Fields to update"
// @Success      200  {object}  entity.Work
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /works/{id} [put]
func (h *WorkHandler) UpdateWork(c *gin.Context) {
	workID := c.Param("id")
	userID := c.GetString("user_id")

	var req UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, err := h.workUseCase.Update(workID, userID, usecase.UpdateWorkInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// ModerationQueue godoc
// @Summary      List works awaiting review
// @Description  Pending works in submission order, oldest first
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Work
// @Failure      403  {object}  map[string]string
// @Router       /moderation/queue [get]
func (h *WorkHandler) ModerationQueue(c *gin.Context) {
	reviewerID := c.GetString("user_id")

	works, err := h.moderationUseCase.PendingQueue(reviewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, works)
}

// ApproveWork godoc
// @Summary      Approve a pending work
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Success      200  {object}  usecase.ModerationResult
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /moderation/works/{id}/approve [post]
func (h *WorkHandler) ApproveWork(c *gin.Context) {
	workID := c.Param("id")
	reviewerID := c.GetString("user_id")

	result, err := h.moderationUseCase.ApproveWork(workID, reviewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RejectWork godoc
// @Summary      Reject a pending work
// @Description  Reject with a reason of at least 10 characters; the submitter is notified
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Param        request body RejectWorkRequest true "Rejection reason"
// @Success      200  {object}  usecase.ModerationResult
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /moderation/works/{id}/reject [post]
func (h *WorkHandler) RejectWork(c *gin.Context) {
	workID := c.Param("id")
	reviewerID := c.GetString("user_id")

	var req RejectWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.moderationUseCase.RejectWork(workID, reviewerID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
