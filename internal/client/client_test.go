package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routes "recharge-portal/internal/app/http"
	"recharge-portal/internal/auth"
	"recharge-portal/internal/contract"
	"recharge-portal/internal/domain/users"
	"recharge-portal/internal/storage"
	"recharge-portal/internal/testutil"
)

// hits counts requests per path.
type hits struct {
	mu sync.Mutex
	n  map[string]int
}

func (h *hits) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		h.n[r.URL.Path]++
		h.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (h *hits) get(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.n[path]
}

func (h *hits) total() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	sum := 0
	for _, v := range h.n {
		sum += v
	}
	return sum
}

type fixture struct {
	server   *httptest.Server
	hits     *hits
	sessions *auth.SessionManager
	store    *storage.GormStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.New(testutil.NewDB(t))
	_, err := store.SeedIfEmpty(context.Background())
	require.NoError(t, err)

	sessions := auth.NewSessionManager("test-secret", time.Hour)
	router := routes.NewRouter(routes.Deps{
		Store:    store,
		Sessions: sessions,
		Admin:    auth.EmailAllowList{Email: "admin@example.com", Users: store},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	h := &hits{n: map[string]int{}}
	srv := httptest.NewServer(h.wrap(router))
	t.Cleanup(srv.Close)

	return &fixture{server: srv, hits: h, sessions: sessions, store: store}
}

func (f *fixture) clientFor(t *testing.T, userID, email string) *Client {
	t.Helper()
	u := users.User{ID: userID}
	if email != "" {
		u.Email = &email
	}
	_, err := f.store.UpsertUser(context.Background(), u)
	require.NoError(t, err)

	token, err := f.sessions.Issue(userID, email)
	require.NoError(t, err)
	return New(f.server.URL, WithToken(token))
}

func TestInvalidInputNeverReachesServer(t *testing.T) {
	f := newFixture(t)
	c := f.clientFor(t, "u1", "")
	ctx := context.Background()

	_, err := c.CreateRecharge(ctx, contract.CreateRechargeInput{MobileNumber: "123", RechargeType: "topup", PlanID: 1})
	fe, ok := contract.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "mobileNumber", fe.Field)

	_, err = c.UpdateMyServices(ctx, contract.UpdateServicesInput{})
	fe, ok = contract.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, contract.MsgAtLeastOneField, fe.Message)

	_, err = c.GetMockBill(ctx, "98765")
	_, ok = contract.AsFieldError(err)
	assert.True(t, ok)

	_, err = c.AdminOverview(ctx, "2024/01/01")
	_, ok = contract.AsFieldError(err)
	assert.True(t, ok)

	assert.Zero(t, f.hits.total())
}

func TestMutationsInvalidateReads(t *testing.T) {
	f := newFixture(t)
	c := f.clientFor(t, "u1", "")
	ctx := context.Background()

	list, err := c.ListMyBillPayments(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	_, err = c.ListMyBillPayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.hits.get("/api/bill-payments/me"))

	_, err = c.GetMyServices(ctx)
	require.NoError(t, err)

	bp, err := c.PayBill(ctx, contract.CreateBillPaymentInput{MobileNumber: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, int64(23110), bp.BillAmountPaise)

	assert.False(t, c.Cached(contract.OpBillsListMy))
	assert.True(t, c.Cached(contract.OpServicesGetMy))

	list, err = c.ListMyBillPayments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 2, f.hits.get("/api/bill-payments/me"))
}

func TestProfileUpsertInvalidatesProfileAndAdminUsers(t *testing.T) {
	f := newFixture(t)
	admin := f.clientFor(t, "admin", "admin@example.com")
	ctx := context.Background()

	p, err := admin.GetMyProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = admin.AdminUsers(ctx)
	require.NoError(t, err)
	_, err = admin.ListPlans(ctx, contract.ListPlansQuery{Type: "topup"})
	require.NoError(t, err)

	mobile := "9876543210"
	_, err = admin.UpsertMyProfile(ctx, contract.UpsertProfileInput{MobileNumber: &mobile})
	require.NoError(t, err)

	assert.False(t, admin.Cached(contract.OpProfileGetMy))
	assert.False(t, admin.Cached(contract.OpAdminUsers))
	assert.True(t, admin.Cached(contract.OpPlansList))

	p, err = admin.GetMyProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, mobile, p.MobileNumber)

	rows, err := admin.AdminUsers(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].MobileNumber)
	assert.Equal(t, mobile, *rows[0].MobileNumber)
}

func TestUnauthorized(t *testing.T) {
	f := newFixture(t)
	c := New(f.server.URL)

	_, err := c.ListMyRecharges(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, f.server.URL+"/api/login", c.LoginURL())

	user := f.clientFor(t, "u1", "")
	_, err = user.AdminOverview(context.Background(), "2024-01-01")
	assert.True(t, IsUnauthorized(err))
}

func TestServerValidationError(t *testing.T) {
	f := newFixture(t)
	c := f.clientFor(t, "u1", "")

	_, err := c.CreateRecharge(context.Background(), contract.CreateRechargeInput{MobileNumber: "9876543210", RechargeType: "topup", PlanID: 4})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, contract.MsgPlanTypeMismatch, apiErr.Message)
	assert.Equal(t, "rechargeType", apiErr.Field)
	assert.False(t, IsUnauthorized(err))
}

// stub serves one fixed response to every request.
func stub(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestUndeclaredStatusAndBadShape(t *testing.T) {
	ctx := context.Background()

	c := stub(t, http.StatusTeapot, `{"message":"short and stout"}`)
	_, err := c.ListPlans(ctx, contract.ListPlansQuery{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTeapot, apiErr.Status)
	assert.ErrorIs(t, err, contract.ErrUnexpectedStatus)

	c = stub(t, http.StatusOK, `{"not":"a list"}`)
	_, err = c.ListPlans(ctx, contract.ListPlansQuery{})
	require.Error(t, err)
	assert.False(t, errors.As(err, &apiErr))
	assert.False(t, c.Cached(contract.OpPlansList))

	c = stub(t, http.StatusOK, `{"mobileNumber":"9876543210","billAmountPaise":-1}`)
	_, err = c.GetMockBill(ctx, "9876543210")
	assert.Error(t, err)
}

func TestValidateFeedbackMessage(t *testing.T) {
	assert.Error(t, ValidateFeedbackMessage(""))
	assert.Error(t, ValidateFeedbackMessage("  hi  "))
	assert.Error(t, ValidateFeedbackMessage("abcd"))
	assert.NoError(t, ValidateFeedbackMessage("hello"))
	assert.NoError(t, ValidateFeedbackMessage("नमस्ते जी"))
}
