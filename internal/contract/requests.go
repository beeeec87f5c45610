package contract

import (
	"net/url"
	"strings"
)

// ListPlansQuery is the optional query of GET /api/plans.
type ListPlansQuery struct {
	Type       string `json:"type" validate:"omitempty,oneof=topup special"`
	ActiveOnly string `json:"activeOnly" validate:"omitempty,oneof=true false"`
}

// ActiveOnlyOrDefault is true unless activeOnly=false was sent.
func (q ListPlansQuery) ActiveOnlyOrDefault() bool {
	return q.ActiveOnly != "false"
}

func (q *ListPlansQuery) SetFromQuery(v url.Values) {
	q.Type = v.Get("type")
	q.ActiveOnly = v.Get("activeOnly")
}

func (q ListPlansQuery) Values() url.Values {
	v := url.Values{}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	if q.ActiveOnly != "" {
		v.Set("activeOnly", q.ActiveOnly)
	}
	return v
}

type CreateRechargeInput struct {
	MobileNumber string `json:"mobileNumber" validate:"mobile"`
	RechargeType string `json:"rechargeType" validate:"required,oneof=topup special"`
	PlanID       int64  `json:"planId" validate:"gt=0"`
}

type CreateBillPaymentInput struct {
	MobileNumber string `json:"mobileNumber" validate:"mobile"`
}

// MockBillParams is the path parameter of GET /api/bills/:mobileNumber.
type MockBillParams struct {
	MobileNumber string `json:"mobileNumber" validate:"mobile"`
}

// UpsertProfileInput is a partial profile. A nil field means "leave unchanged".
// Sending no field at all is accepted.
type UpsertProfileInput struct {
	MobileNumber *string `json:"mobileNumber" validate:"omitempty,mobile"`
	FullName     *string `json:"fullName" validate:"omitempty,max=200"`
	Address      *string `json:"address" validate:"omitempty,max=500"`
}

// UpdateServicesInput must carry at least one toggle.
type UpdateServicesInput struct {
	DoNotDisturb *bool `json:"doNotDisturb"`
	CallerTunes  *bool `json:"callerTunes"`
}

func (in UpdateServicesInput) check() *FieldError {
	if in.DoNotDisturb == nil && in.CallerTunes == nil {
		return &FieldError{Message: MsgAtLeastOneField}
	}
	return nil
}

// CreateFeedbackInput only requires a non-empty message; the five character minimum
// is a form rule (see client.ValidateFeedbackMessage).
type CreateFeedbackInput struct {
	Name    *string `json:"name" validate:"omitempty,max=200"`
	Email   *string `json:"email" validate:"omitempty,max=320"`
	Message string  `json:"message" validate:"required"`
}

func (in CreateFeedbackInput) check() *FieldError {
	if strings.TrimSpace(in.Message) == "" {
		return &FieldError{Field: "message", Message: fieldMessages["message"]}
	}
	return nil
}

// DateQuery is the optional ?date= of the admin reports. An empty Date means today
// (UTC); the handler fills it in.
type DateQuery struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (q *DateQuery) SetFromQuery(v url.Values) {
	q.Date = v.Get("date")
}

func (q DateQuery) Values() url.Values {
	v := url.Values{}
	if q.Date != "" {
		v.Set("date", q.Date)
	}
	return v
}

// QueryInput is implemented by inputs carried in the query string.
type QueryInput interface {
	SetFromQuery(url.Values)
}

// ParseQuery fills dst from v and validates it.
func ParseQuery(v url.Values, dst QueryInput) error {
	dst.SetFromQuery(v)
	return Validate(dst)
}
