package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recharge-portal/internal/api/dto"
	"recharge-portal/internal/api/respond"
	"recharge-portal/internal/contract"
	"recharge-portal/internal/storage"
)

const dateLayout = "2006-01-02"

// Handler serves the admin reports. Access is checked by middleware.RequireAdmin.
type Handler struct {
	store storage.Storage
	now   func() time.Time
}

func NewHandler(store storage.Storage, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{store: store, now: now}
}

// reportDate is ?date= or today's UTC date.
func (h *Handler) reportDate(c *gin.Context) (string, bool) {
	var q contract.DateQuery
	if !respond.BindQuery(c, &q) {
		return "", false
	}
	if q.Date == "" {
		return h.now().UTC().Format(dateLayout), true
	}
	return q.Date, true
}

// GET /api/admin/overview?date=
func (h *Handler) Overview(c *gin.Context) {
	date, ok := h.reportDate(c)
	if !ok {
		return
	}

	ov, err := h.store.AdminDailyOverview(c.Request.Context(), date)
	if errors.Is(err, storage.ErrInvalidDate) {
		respond.Field(c, "date", err.Error())
		return
	}
	if err != nil {
		respond.Internal(c, contract.OpAdminOverview, err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildOverview(*ov))
}

// GET /api/admin/transactions?date=
func (h *Handler) Transactions(c *gin.Context) {
	date, ok := h.reportDate(c)
	if !ok {
		return
	}

	tx, err := h.store.AdminDailyTransactions(c.Request.Context(), date)
	if errors.Is(err, storage.ErrInvalidDate) {
		respond.Field(c, "date", err.Error())
		return
	}
	if err != nil {
		respond.Internal(c, contract.OpAdminTransactions, err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildTransactions(*tx))
}

// GET /api/admin/users
func (h *Handler) Users(c *gin.Context) {
	rows, err := h.store.AdminUsers(c.Request.Context())
	if err != nil {
		respond.Internal(c, contract.OpAdminUsers, err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildAdminUsers(rows))
}
