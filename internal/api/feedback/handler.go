package feedback

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recharge-portal/internal/api/dto"
	"recharge-portal/internal/api/respond"
	"recharge-portal/internal/app/http/middleware"
	"recharge-portal/internal/contract"
	"recharge-portal/internal/storage"
)

type Handler struct {
	store storage.Storage
}

func NewHandler(store storage.Storage) *Handler {
	return &Handler{store: store}
}

// POST /api/feedback is open to guests; a signed-in sender is recorded.
func (h *Handler) CreateFeedback(c *gin.Context) {
	var in contract.CreateFeedbackInput
	if !respond.Bind(c, &in) {
		return
	}

	f, err := h.store.CreateFeedback(c.Request.Context(), middleware.CurrentUserPtr(c), in)
	if err != nil {
		respond.Internal(c, contract.OpFeedbackCreate, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BuildFeedback(*f))
}

// GET /api/admin/feedback
func (h *Handler) ListFeedback(c *gin.Context) {
	items, err := h.store.ListFeedback(c.Request.Context())
	if err != nil {
		respond.Internal(c, contract.OpFeedbackListAdmin, err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildFeedbackList(items))
}
