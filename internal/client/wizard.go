package client

import (
	"context"
	"errors"
	"strings"
	"time"

	"recharge-portal/internal/contract"
	"recharge-portal/internal/domain/plans"
)

// Step is a screen of the recharge wizard.
type Step int

const (
	StepMobileEntry Step = iota + 1
	StepPlanSelection
	StepConfirm
	StepReceipt
)

func (s Step) String() string {
	switch s {
	case StepMobileEntry:
		return "mobile-entry"
	case StepPlanSelection:
		return "plan-selection"
	case StepConfirm:
		return "confirm"
	case StepReceipt:
		return "receipt"
	}
	return "unknown"
}

var (
	ErrNoPlanSelected = errors.New("select a plan to proceed")
	ErrWrongStep      = errors.New("action not available at this step")
	ErrPlanNotOnTab   = errors.New("plan does not belong to the selected tab")
)

// RechargeAPI is the part of Client the wizard uses.
type RechargeAPI interface {
	ListPlans(ctx context.Context, q contract.ListPlansQuery) ([]contract.Plan, error)
	CreateRecharge(ctx context.Context, in contract.CreateRechargeInput) (*contract.Recharge, error)
}

var _ RechargeAPI = (*Client)(nil)

// Receipt is what the last step shows.
type Receipt struct {
	TransactionID string
	RechargeType  string
	MobileNumber  string
	AmountPaise   int64
	CreatedAt     time.Time
	PlanName      string
}

// Wizard drives mobile entry, plan selection, confirmation and the receipt.
// It is not safe for concurrent use.
type Wizard struct {
	api     RechargeAPI
	step    Step
	mobile  string
	tab     string
	plan    *contract.Plan
	receipt *Receipt
}

func NewWizard(api RechargeAPI) *Wizard {
	w := &Wizard{api: api}
	w.Reset()
	return w
}

func (w *Wizard) Step() Step { return w.step }
func (w *Wizard) MobileNumber() string { return w.mobile }
func (w *Wizard) Tab() string { return w.tab }
func (w *Wizard) SelectedPlan() *contract.Plan { return w.plan }
func (w *Wizard) Receipt() *Receipt { return w.receipt }

// EnterMobile accepts the number and moves to plan selection.
func (w *Wizard) EnterMobile(mobile string) error {
	if w.step != StepMobileEntry {
		return ErrWrongStep
	}
	mobile = strings.TrimSpace(mobile)
	if !contract.IsMobileNumber(mobile) {
		return &contract.FieldError{Field: "mobileNumber", Message: contract.MsgMobileNumber}
	}
	w.mobile = mobile
	w.step = StepPlanSelection
	return nil
}

// SetTab switches between topup and special plans on the plan selection step.
// Switching clears the selection.
func (w *Wizard) SetTab(planType string) error {
	if w.step != StepPlanSelection {
		return ErrWrongStep
	}
	if planType != plans.TypeTopup && planType != plans.TypeSpecial {
		return &contract.FieldError{Field: "rechargeType", Message: "Recharge type must be 'topup' or 'special'"}
	}
	if planType != w.tab {
		w.tab = planType
		w.plan = nil
	}
	return nil
}

// Plans lists the active plans of the current tab.
func (w *Wizard) Plans(ctx context.Context) ([]contract.Plan, error) {
	return w.api.ListPlans(ctx, contract.ListPlansQuery{Type: w.tab, ActiveOnly: "true"})
}

func (w *Wizard) SelectPlan(p contract.Plan) error {
	if w.step != StepPlanSelection {
		return ErrWrongStep
	}
	if p.PlanType != w.tab {
		return ErrPlanNotOnTab
	}
	w.plan = &p
	return nil
}

// Proceed moves from plan selection to confirmation.
func (w *Wizard) Proceed() error {
	if w.step != StepPlanSelection {
		return ErrWrongStep
	}
	if w.plan == nil {
		return ErrNoPlanSelected
	}
	w.step = StepConfirm
	return nil
}

// Pay creates the recharge. On failure the wizard stays on the confirm step; a 401
// is returned wrapping ErrUnauthorized.
func (w *Wizard) Pay(ctx context.Context) (*Receipt, error) {
	if w.step != StepConfirm {
		return nil, ErrWrongStep
	}
	if w.plan == nil {
		return nil, ErrNoPlanSelected
	}

	r, err := w.api.CreateRecharge(ctx, contract.CreateRechargeInput{
		MobileNumber: w.mobile,
		RechargeType: w.tab,
		PlanID:       w.plan.ID,
	})
	if err != nil {
		return nil, err
	}

	rechargeType := r.RechargeType
	if rechargeType == "" {
		rechargeType = w.tab
	}
	w.receipt = &Receipt{
		TransactionID: r.TransactionID,
		RechargeType:  rechargeType,
		MobileNumber:  r.MobileNumber,
		AmountPaise:   r.AmountPaise,
		CreatedAt:     r.CreatedAt,
		PlanName:      w.plan.Name,
	}
	w.step = StepReceipt
	return w.receipt, nil
}

// Back returns to the previous input step. It does nothing on the first step or
// on the receipt; use Reset to start over from there.
func (w *Wizard) Back() {
	switch w.step {
	case StepPlanSelection:
		w.step = StepMobileEntry
	case StepConfirm:
		w.step = StepPlanSelection
	}
}

// Reset discards everything entered so far.
func (w *Wizard) Reset() {
	w.step = StepMobileEntry
	w.mobile = ""
	w.tab = plans.TypeTopup
	w.plan = nil
	w.receipt = nil
}
