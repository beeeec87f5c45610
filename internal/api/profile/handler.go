package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recharge-portal/internal/api/dto"
	"recharge-portal/internal/api/respond"
	"recharge-portal/internal/app/http/middleware"
	"recharge-portal/internal/contract"
	"recharge-portal/internal/storage"
)

const msgMobileRequired = "Mobile number is required to create a profile"

type Handler struct {
	store storage.Storage
}

func NewHandler(store storage.Storage) *Handler {
	return &Handler{store: store}
}

// GET /api/profile/me answers null until the first save.
func (h *Handler) GetMyProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}

	p, err := h.store.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		respond.Internal(c, contract.OpProfileGetMy, err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildProfile(p))
}

// PUT /api/profile/me
func (h *Handler) UpsertMyProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}

	var in contract.UpsertProfileInput
	if !respond.Bind(c, &in) {
		return
	}

	p, err := h.store.UpsertMyProfile(c.Request.Context(), userID, storage.ProfileUpdate{
		MobileNumber: in.MobileNumber,
		FullName:     in.FullName,
		Address:      in.Address,
	})
	if errors.Is(err, storage.ErrProfileMobileRequired) {
		respond.Field(c, "mobileNumber", msgMobileRequired)
		return
	}
	if err != nil {
		respond.Internal(c, contract.OpProfileUpsertMy, err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildProfile(p))
}
