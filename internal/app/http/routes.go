package routes

import (
	"log/slog"
	"net/http"
	"time"

	adminapi "recharge-portal/internal/api/admin"
	authapi "recharge-portal/internal/api/auth"
	billsapi "recharge-portal/internal/api/bills"
	feedbackapi "recharge-portal/internal/api/feedback"
	plansapi "recharge-portal/internal/api/plans"
	profileapi "recharge-portal/internal/api/profile"
	rechargesapi "recharge-portal/internal/api/recharges"
	servicesapi "recharge-portal/internal/api/services"
	"recharge-portal/internal/app/http/middleware"
	"recharge-portal/internal/auth"
	"recharge-portal/internal/contract"
	"recharge-portal/internal/storage"

	"github.com/gin-gonic/gin"
)

// Deps is everything the route table needs.
type Deps struct {
	Store    storage.Storage
	Sessions *auth.SessionManager
	Admin    auth.AdminPolicy
	// Identity is nil when no OIDC issuer is configured; /api/login and
	// /api/callback are then not mounted.
	Identity auth.IdentityProvider
	Auth     authapi.Config
	Now      func() time.Time

	// Middleware runs before routing, e.g. CORS.
	Middleware []gin.HandlerFunc
}

// NewRouter returns an engine with logging, recovery and every route.
func NewRouter(d Deps, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log))
	r.Use(d.Middleware...)
	RegisterRoutes(r, d)
	return r
}

// handle mounts a contract operation at its registered method and path.
func handle(g *gin.RouterGroup, name string, handlers ...gin.HandlerFunc) {
	op := contract.MustLookup(name)
	g.Handle(op.Method, op.Path, handlers...)
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	plans := plansapi.NewHandler(d.Store)
	recharges := rechargesapi.NewHandler(d.Store)
	bills := billsapi.NewHandler(d.Store)
	profile := profileapi.NewHandler(d.Store)
	services := servicesapi.NewHandler(d.Store)
	feedback := feedbackapi.NewHandler(d.Store)
	admin := adminapi.NewHandler(d.Store, d.Now)
	login := authapi.NewHandler(d.Identity, d.Sessions, d.Store, d.Admin, d.Auth)

	sanitize := middleware.SanitizeAndCleanInputMiddleware()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public
	public := r.Group("")
	handle(public, contract.OpPlansList, plans.ListPlans)
	handle(public, contract.OpBillsGetMock, bills.GetMockBill)
	handle(public, contract.OpFeedbackCreate, middleware.OptionalAuth(d.Sessions), sanitize, feedback.CreateFeedback)

	public.GET("/api/logout", login.Logout)
	if d.Identity != nil {
		public.GET("/api/login", login.Login)
		public.GET("/api/callback", login.Callback)
	}

	// Authenticated
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(d.Sessions))
	authed.GET("/api/auth/user", login.CurrentUser)
	handle(authed, contract.OpRechargesCreate, recharges.CreateRecharge)
	handle(authed, contract.OpRechargesListMy, recharges.ListMyRecharges)
	handle(authed, contract.OpBillsPay, bills.PayBill)
	handle(authed, contract.OpBillsListMy, bills.ListMyBillPayments)
	handle(authed, contract.OpProfileGetMy, profile.GetMyProfile)
	handle(authed, contract.OpProfileUpsertMy, sanitize, profile.UpsertMyProfile)
	handle(authed, contract.OpServicesGetMy, services.GetMyServices)
	handle(authed, contract.OpServicesUpdateMy, services.UpdateMyServices)

	// Admin
	adminGroup := r.Group("")
	adminGroup.Use(middleware.AuthMiddleware(d.Sessions), middleware.RequireAdmin(d.Admin))
	handle(adminGroup, contract.OpFeedbackListAdmin, feedback.ListFeedback)
	handle(adminGroup, contract.OpAdminOverview, admin.Overview)
	handle(adminGroup, contract.OpAdminTransactions, admin.Transactions)
	handle(adminGroup, contract.OpAdminUsers, admin.Users)
}
