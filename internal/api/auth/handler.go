package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recharge-portal/internal/api/dto"
	"recharge-portal/internal/api/respond"
	"recharge-portal/internal/app/http/middleware"
	"recharge-portal/internal/auth"
	"recharge-portal/internal/domain/users"
	"recharge-portal/internal/storage"
)

const stateCookie = "oauth_state"

type Config struct {
	// FrontendURL is where the browser is sent after login and logout.
	FrontendURL string
	// SecureCookies marks cookies Secure; enable behind HTTPS.
	SecureCookies bool
}

type Handler struct {
	provider auth.IdentityProvider
	sessions *auth.SessionManager
	store    storage.Storage
	admin    auth.AdminPolicy
	cfg      Config
}

// NewHandler wires the login flow. provider may be nil, in which case only
// CurrentUser and Logout are usable.
func NewHandler(provider auth.IdentityProvider, sessions *auth.SessionManager, store storage.Storage, admin auth.AdminPolicy, cfg Config) *Handler {
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "/"
	}
	return &Handler{provider: provider, sessions: sessions, store: store, admin: admin, cfg: cfg}
}

// GET /api/login
func (h *Handler) Login(c *gin.Context) {
	state, err := auth.RandomState()
	if err != nil {
		respond.Internal(c, "auth.login", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, int((5 * time.Minute).Seconds()), "/", "", h.cfg.SecureCookies, true)
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// GET /api/callback
func (h *Handler) Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		respond.Error(c, http.StatusBadRequest, "Missing code or state")
		return
	}

	cookieState, err := c.Cookie(stateCookie)
	if err != nil || cookieState != state {
		respond.Error(c, http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", h.cfg.SecureCookies, true)

	identity, err := h.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		respond.Unauthorized(c)
		return
	}

	user, err := h.store.UpsertUser(c.Request.Context(), users.User{
		ID:              identity.Subject,
		Email:           optional(identity.Email),
		FirstName:       optional(identity.FirstName),
		LastName:        optional(identity.LastName),
		ProfileImageURL: optional(identity.Picture),
	})
	if err != nil {
		respond.Internal(c, "auth.callback", err)
		return
	}

	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	token, err := h.sessions.Issue(user.ID, email)
	if err != nil {
		respond.Internal(c, "auth.callback", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, token, int(h.sessions.TTL().Seconds()), "/", "", h.cfg.SecureCookies, true)
	c.Redirect(http.StatusFound, h.cfg.FrontendURL)
}

// GET /api/logout
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", h.cfg.SecureCookies, true)

	target := h.cfg.FrontendURL
	if h.provider != nil {
		if u := h.provider.EndSessionURL(h.cfg.FrontendURL); u != "" {
			target = u
		}
	}
	c.Redirect(http.StatusFound, target)
}

// GET /api/auth/user
func (h *Handler) CurrentUser(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	ctx := c.Request.Context()

	user, err := h.store.GetUser(ctx, userID)
	if err != nil {
		respond.Internal(c, "auth.user", err)
		return
	}
	if user == nil {
		respond.Unauthorized(c)
		return
	}

	isAdmin, err := h.admin.IsAdmin(ctx, userID)
	if err != nil {
		respond.Internal(c, "auth.user", err)
		return
	}
	c.JSON(http.StatusOK, dto.BuildAuthUser(*user, isAdmin))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
