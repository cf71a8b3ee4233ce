package http

import (
	"net/http"

	"openshelf/internal/usecase"
	"openshelf/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BorrowHandler struct {
	borrowUseCase usecase.BorrowUseCase
	logger        *logger.Logger
}

func NewBorrowHandler(borrowUseCase usecase.BorrowUseCase, logger *logger.Logger) *BorrowHandler {
	return &BorrowHandler{
		borrowUseCase: borrowUseCase,
		logger:        logger,
	}
}

type CreateBorrowRequest struct {
	WorkID string `json:"work_id" binding:"required"`
}

// CreateBorrow godoc
// @Summary      Borrow a work
// @Description  Open a 14-day loan on an approved work. One active loan per work per user.
// @Tags         borrows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateBorrowRequest true "Work to borrow"
// @Success      201  {object}  entity.Borrow
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /borrows [post]
func (h *BorrowHandler) CreateBorrow(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateBorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	borrow, err := h.borrowUseCase.Borrow(userID, req.WorkID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, borrow)
}

// ExtendBorrow godoc
// @Summary      Extend a loan
// @Description  Push the due date 7 days further. Extensions stack.
// @Tags         borrows
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Borrow ID"
// @Success      200  {object}  entity.Borrow
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /borrows/{id}/extend [post]
func (h *BorrowHandler) ExtendBorrow(c *gin.Context) {
	borrowID := c.Param("id")
	userID := c.GetString("user_id")

	borrow, err := h.borrowUseCase.Extend(borrowID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, borrow)
}

// ReturnBorrow godoc
// @Summary      Return a borrowed work
// @Tags         borrows
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Borrow ID"
// @Success      200  {object}  entity.Borrow
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /borrows/{id}/return [post]
func (h *BorrowHandler) ReturnBorrow(c *gin.Context) {
	borrowID := c.Param("id")
	userID := c.GetString("user_id")

	borrow, err := h.borrowUseCase.Return(borrowID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, borrow)
}

// ListBorrows godoc
// @Summary      List the current user's loans
// @Tags         borrows
// @Produce      json
// @Security     BearerAuth
// @Param        active query bool false "Only active loans"
// @Success      200  {array}  entity.Borrow
// @Router       /borrows [get]
func (h *BorrowHandler) ListBorrows(c *gin.Context) {
	userID := c.GetString("user_id")
	activeOnly := c.Query("active") == "true"

	borrows, err := h.borrowUseCase.ListForUser(userID, activeOnly)
	if err != nil {
		h.logger.Error("Failed to list borrows for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, borrows)
}
