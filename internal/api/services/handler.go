package services

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

// GET /api/services/me
func (h *Handler) GetMyServices(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}

	svc, err := h.store.GetMyServices(c.Request.Context(), userID)
	if err != nil {
		respond.Internal(c, contract.OpServicesGetMy, err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildServices(*svc))
}

// PUT /api/services/me
func (h *Handler) UpdateMyServices(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}

	var in contract.UpdateServicesInput
	if !respond.Bind(c, &in) {
		return
	}

	svc, err := h.store.UpdateMyServices(c.Request.Context(), userID, storage.ServicesUpdate{
		DoNotDisturb: in.DoNotDisturb,
		CallerTunes:  in.CallerTunes,
	})
	if err != nil {
		respond.Internal(c, contract.OpServicesUpdateMy, err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildServices(*svc))
}
