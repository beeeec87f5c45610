package plans

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recharge-portal/internal/api/dto"
	"recharge-portal/internal/api/respond"
	"recharge-portal/internal/contract"
	"recharge-portal/internal/storage"
)

type Handler struct {
	store storage.Storage
}

func NewHandler(store storage.Storage) *Handler {
	return &Handler{store: store}
}

// GET /api/plans?type=&activeOnly=
func (h *Handler) ListPlans(c *gin.Context) {
	var q contract.ListPlansQuery
	if !respond.BindQuery(c, &q) {
		return
	}

	filter := storage.PlanFilter{ActiveOnly: q.ActiveOnlyOrDefault()}
	if q.Type != "" {
		filter.Type = &q.Type
	}

	items, err := h.store.ListPlans(c.Request.Context(), filter)
	if err != nil {
		respond.Internal(c, contract.OpPlansList, err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildPlans(items))
}
