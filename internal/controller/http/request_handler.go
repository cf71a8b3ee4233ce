package http

import (
	"net/http"

	"openshelf/internal/entity"
	"openshelf/internal/usecase"
	"openshelf/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestUseCase usecase.RequestUseCase
	logger         *logger.Logger
}

func NewRequestHandler(requestUseCase usecase.RequestUseCase, logger *logger.Logger) *RequestHandler {
	return &RequestHandler{
		requestUseCase: requestUseCase,
		logger:         logger,
	}
}

type CreateRequestRequest struct {
	Motivation string `json:"motivation" binding:"required"`
}

type RejectRequestRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CreateRequest godoc
// @Summary      Request the librarian role
// @Description  Members petition with a motivation of at least 50 characters. One pending request per user.
// @Tags         librarian-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRequestRequest true "Motivation"
// @Success      201  {object}  entity.LibrarianRequest
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /librarian-requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestUseCase.Create(userID, req.Motivation)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// MyRequest godoc
// @Summary      Get the current user's latest request
// @Tags         librarian-requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.LibrarianRequest
// @Failure      404  {object}  map[string]string
// @Router       /librarian-requests/mine [get]
func (h *RequestHandler) MyRequest(c *gin.Context) {
	userID := c.GetString("user_id")

	request, err := h.requestUseCase.UserRequest(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// CancelRequest godoc
// @Summary      Withdraw a pending request
// @Tags         librarian-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Request ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /librarian-requests/{id} [delete]
func (h *RequestHandler) CancelRequest(c *gin.Context) {
	requestID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.requestUseCase.Cancel(requestID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request cancelled"})
}

// ListRequests godoc
// @Summary      List librarian requests
// @Description  Librarians list requests, optionally filtered by status. Without a filter, pending requests oldest first.
// @Tags         librarian-requests
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Status filter (pending, approved, rejected)"
// @Success      200  {array}  entity.LibrarianRequest
// @Failure      403  {object}  map[string]string
// @Router       /librarian-requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	reviewerID := c.GetString("user_id")
	status := entity.RequestStatus(c.Query("status"))

	var (
		requests []*entity.LibrarianRequest
		err      error
	)
	if status == "" {
		requests, err = h.requestUseCase.Pending(reviewerID)
	} else {
		requests, err = h.requestUseCase.All(reviewerID, status)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ApproveRequest godoc
// @Summary      Approve a librarian request
// @Description  Grant the request and promote the requester atomically
// @Tags         librarian-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Request ID"
// @Success      200  {object}  entity.LibrarianRequest
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /librarian-requests/{id}/approve [post]
func (h *RequestHandler) ApproveRequest(c *gin.Context) {
	requestID := c.Param("id")
	reviewerID := c.GetString("user_id")

	request, err := h.requestUseCase.Approve(requestID, reviewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// RejectRequest godoc
// @Summary      Reject a librarian request
// @Tags         librarian-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Request ID"
// @Param        request body RejectRequestRequest true "Rejection reason"
// @Success      200  {object}  entity.LibrarianRequest
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /librarian-requests/{id}/reject [post]
func (h *RequestHandler) RejectRequest(c *gin.Context) {
	requestID := c.Param("id")
	reviewerID := c.GetString("user_id")

	var req RejectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestUseCase.Reject(requestID, reviewerID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}
