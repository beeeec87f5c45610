package contract

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// ErrUnexpectedStatus is returned for a response whose status has no registered validator.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Operation binds a name to its route, its input schema and its response schemas.
type Operation struct {
	Name   string
	Method string
	Path   string
	// Input returns a fresh pointer to the typed input; nil when the operation takes none.
	Input     func() any
	Responses map[int]ResponseValidator
	// Invalidates lists the cached reads a successful call makes stale.
	Invalidates []string
}

const (
	OpPlansList         = "plans.list"
	OpRechargesCreate   = "recharges.create"
	OpRechargesListMy   = "recharges.listMy"
	OpBillsGetMock      = "bills.getMock"
	OpBillsPay          = "bills.pay"
	OpBillsListMy       = "bills.listMy"
	OpProfileGetMy      = "profile.getMy"
	OpProfileUpsertMy   = "profile.upsertMy"
	OpServicesGetMy     = "services.getMy"
	OpServicesUpdateMy  = "services.updateMy"
	OpFeedbackCreate    = "feedback.create"
	OpFeedbackListAdmin = "feedback.listAdmin"
	OpAdminOverview     = "admin.overview"
	OpAdminTransactions = "admin.transactions"
	OpAdminUsers        = "admin.users"
)

var (
	validation   = expect[ErrorBody]()
	unauthorized = expect[ErrorBody]()
	internal     = expect[ErrorBody]()
)

var registry = map[string]Operation{
	OpPlansList: {
		Name:   OpPlansList,
		Method: http.MethodGet,
		Path:   "/api/plans",
		Input:  func() any { return &ListPlansQuery{} },
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expectList[Plan](),
			http.StatusBadRequest:          validation,
			http.StatusInternalServerError: internal,
		},
	},
	OpRechargesCreate: {
		Name:   OpRechargesCreate,
		Method: http.MethodPost,
		Path:   "/api/recharges",
		Input:  func() any { return &CreateRechargeInput{} },
		Responses: map[int]ResponseValidator{
			http.StatusCreated:             expect[Recharge](),
			http.StatusBadRequest:          validation,
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
		Invalidates: []string{OpRechargesListMy, OpAdminOverview, OpAdminTransactions},
	},
	OpRechargesListMy: {
		Name:   OpRechargesListMy,
		Method: http.MethodGet,
		Path:   "/api/recharges/me",
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expectList[Recharge](),
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
	},
	OpBillsGetMock: {
		Name:   OpBillsGetMock,
		Method: http.MethodGet,
		Path:   "/api/bills/:mobileNumber",
		Input:  func() any { return &MockBillParams{} },
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expect[MockBill](),
			http.StatusBadRequest:          validation,
			http.StatusInternalServerError: internal,
		},
	},
	OpBillsPay: {
		Name:   OpBillsPay,
		Method: http.MethodPost,
		Path:   "/api/bill-payments",
		Input:  func() any { return &CreateBillPaymentInput{} },
		Responses: map[int]ResponseValidator{
			http.StatusCreated:             expect[BillPayment](),
			http.StatusBadRequest:          validation,
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
		Invalidates: []string{OpBillsListMy, OpAdminOverview, OpAdminTransactions},
	},
	OpBillsListMy: {
		Name:   OpBillsListMy,
		Method: http.MethodGet,
		Path:   "/api/bill-payments/me",
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expectList[BillPayment](),
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
	},
	OpProfileGetMy: {
		Name:   OpProfileGetMy,
		Method: http.MethodGet,
		Path:   "/api/profile/me",
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expectNullable[Profile](),
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
	},
	OpProfileUpsertMy: {
		Name:   OpProfileUpsertMy,
		Method: http.MethodPut,
		Path:   "/api/profile/me",
		Input:  func() any { return &UpsertProfileInput{} },
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expect[Profile](),
			http.StatusBadRequest:          validation,
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
		Invalidates: []string{OpProfileGetMy, OpAdminUsers},
	},
	OpServicesGetMy: {
		Name:   OpServicesGetMy,
		Method: http.MethodGet,
		Path:   "/api/services/me",
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expect[Services](),
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
	},
	OpServicesUpdateMy: {
		Name:   OpServicesUpdateMy,
		Method: http.MethodPut,
		Path:   "/api/services/me",
		Input:  func() any { return &UpdateServicesInput{} },
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expect[Services](),
			http.StatusBadRequest:          validation,
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
		Invalidates: []string{OpServicesGetMy},
	},
	OpFeedbackCreate: {
		Name:   OpFeedbackCreate,
		Method: http.MethodPost,
		Path:   "/api/feedback",
		Input:  func() any { return &CreateFeedbackInput{} },
		Responses: map[int]ResponseValidator{
			http.StatusCreated:             expect[Feedback](),
			http.StatusBadRequest:          validation,
			http.StatusInternalServerError: internal,
		},
		Invalidates: []string{OpFeedbackListAdmin},
	},
	OpFeedbackListAdmin: {
		Name:   OpFeedbackListAdmin,
		Method: http.MethodGet,
		Path:   "/api/admin/feedback",
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expectList[Feedback](),
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
	},
	OpAdminOverview: {
		Name:   OpAdminOverview,
		Method: http.MethodGet,
		Path:   "/api/admin/overview",
		Input:  func() any { return &DateQuery{} },
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expect[AdminOverview](),
			http.StatusBadRequest:          validation,
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
	},
	OpAdminTransactions: {
		Name:   OpAdminTransactions,
		Method: http.MethodGet,
		Path:   "/api/admin/transactions",
		Input:  func() any { return &DateQuery{} },
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expect[AdminTransactions](),
			http.StatusBadRequest:          validation,
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
	},
	OpAdminUsers: {
		Name:   OpAdminUsers,
		Method: http.MethodGet,
		Path:   "/api/admin/users",
		Responses: map[int]ResponseValidator{
			http.StatusOK:                  expectList[AdminUser](),
			http.StatusUnauthorized:        unauthorized,
			http.StatusInternalServerError: internal,
		},
	},
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, bool) {
	op, ok := registry[name]
	return op, ok
}

// MustLookup panics on an unknown name. Route tables use it at start-up.
func MustLookup(name string) Operation {
	op, ok := registry[name]
	if !ok {
		panic(fmt.Sprintf("contract: unknown operation %q", name))
	}
	return op
}

// Operations returns every operation sorted by name.
func Operations() []Operation {
	ops := make([]Operation, 0, len(registry))
	for _, op := range registry {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// ValidateResponse runs the validator registered for status against raw.
func (op Operation) ValidateResponse(status int, raw []byte) error {
	v, ok := op.Responses[status]
	if !ok {
		return fmt.Errorf("%s: %w %d", op.Name, ErrUnexpectedStatus, status)
	}
	return v(raw)
}

// BuildURL substitutes :name segments of path with URL-escaped params.
func BuildURL(path string, params map[string]string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if v, ok := params[seg[1:]]; ok {
			segments[i] = url.PathEscape(v)
		}
	}
	return strings.Join(segments, "/")
}
