package recharges

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recharge-portal/internal/api/dto"
	"recharge-portal/internal/api/respond"
	"recharge-portal/internal/app/http/middleware"
	"recharge-portal/internal/contract"
	"recharge-portal/internal/domain/plans"
	"recharge-portal/internal/domain/recharges"
	"recharge-portal/internal/storage"
)

type Handler struct {
	store storage.Storage
}

func NewHandler(store storage.Storage) *Handler {
	return &Handler{store: store}
}

// POST /api/recharges
//
// The plan must exist and be of the requested type. The amount charged is the plan
// price at this moment.
func (h *Handler) CreateRecharge(c *gin.Context) {
	var in contract.CreateRechargeInput
	if !respond.Bind(c, &in) {
		return
	}
	ctx := c.Request.Context()

	plan, err := h.store.GetPlan(ctx, uint(in.PlanID))
	if err != nil {
		respond.Internal(c, contract.OpRechargesCreate, err)
		return
	}
	if plan == nil {
		respond.Field(c, "planId", contract.MsgInvalidPlan)
		return
	}
	if !plans.Matches(plan, in.RechargeType) {
		respond.Field(c, "rechargeType", contract.MsgPlanTypeMismatch)
		return
	}

	created, err := h.store.CreateRecharge(ctx, middleware.CurrentUserPtr(c), in, plan.AmountPaise,
		recharges.NewTransactionID(recharges.PrefixRecharge))
	if err != nil {
		respond.Internal(c, contract.OpRechargesCreate, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BuildRecharge(*created))
}

// GET /api/recharges/me
func (h *Handler) ListMyRecharges(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}

	items, err := h.store.ListMyRecharges(c.Request.Context(), userID)
	if err != nil {
		respond.Internal(c, contract.OpRechargesListMy, err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildRecharges(items))
}
