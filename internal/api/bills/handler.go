package bills

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recharge-portal/internal/api/dto"
	"recharge-portal/internal/api/respond"
	"recharge-portal/internal/app/http/middleware"
	"recharge-portal/internal/contract"
	"recharge-portal/internal/domain/recharges"
	"recharge-portal/internal/storage"
)

type Handler struct {
	store storage.Storage
}

func NewHandler(store storage.Storage) *Handler {
	return &Handler{store: store}
}

// GET /api/bills/:mobileNumber
func (h *Handler) GetMockBill(c *gin.Context) {
	params := contract.MockBillParams{MobileNumber: c.Param("mobileNumber")}
	if err := contract.Validate(&params); err != nil {
		respond.Invalid(c, err)
		return
	}

	amount, err := h.store.GetMockBillAmountPaise(c.Request.Context(), params.MobileNumber)
	if err != nil {
		respond.Internal(c, contract.OpBillsGetMock, err)
		return
	}
	c.JSON(http.StatusOK, contract.MockBill{MobileNumber: params.MobileNumber, BillAmountPaise: amount})
}

// POST /api/bill-payments
func (h *Handler) PayBill(c *gin.Context) {
	var in contract.CreateBillPaymentInput
	if !respond.Bind(c, &in) {
		return
	}
	ctx := c.Request.Context()

	amount, err := h.store.GetMockBillAmountPaise(ctx, in.MobileNumber)
	if err != nil {
		respond.Internal(c, contract.OpBillsPay, err)
		return
	}

	created, err := h.store.CreateBillPayment(ctx, middleware.CurrentUserPtr(c), in, amount,
		recharges.NewTransactionID(recharges.PrefixBillPayment))
	if err != nil {
		respond.Internal(c, contract.OpBillsPay, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BuildBillPayment(*created))
}

// GET /api/bill-payments/me
func (h *Handler) ListMyBillPayments(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}

	items, err := h.store.ListMyBillPayments(c.Request.Context(), userID)
	if err != nil {
		respond.Internal(c, contract.OpBillsListMy, err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildBillPayments(items))
}
