package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recharge-portal/internal/contract"
)

type fakeRechargeAPI struct {
	plans []contract.Plan
	got   []contract.CreateRechargeInput
	err   error
}

func (f *fakeRechargeAPI) ListPlans(_ context.Context, q contract.ListPlansQuery) ([]contract.Plan, error) {
	out := []contract.Plan{}
	for _, p := range f.plans {
		if p.PlanType == q.Type {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRechargeAPI) CreateRecharge(_ context.Context, in contract.CreateRechargeInput) (*contract.Recharge, error) {
	f.got = append(f.got, in)
	if f.err != nil {
		return nil, f.err
	}
	return &contract.Recharge{
		ID:            1,
		TransactionID: "TXN01J0000000000000000000000",
		MobileNumber:  in.MobileNumber,
		RechargeType:  in.RechargeType,
		PlanID:        &in.PlanID,
		AmountPaise:   19900,
		CreatedAt:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

var (
	topup199   = contract.Plan{ID: 1, PlanType: "topup", Name: "Rs 199", AmountPaise: 19900, IsActive: true}
	special399 = contract.Plan{ID: 4, PlanType: "special", Name: "Rs 399", AmountPaise: 39900, IsActive: true}
)

func TestWizardHappyPath(t *testing.T) {
	api := &fakeRechargeAPI{plans: []contract.Plan{topup199, special399}}
	w := NewWizard(api)
	ctx := context.Background()

	assert.Equal(t, StepMobileEntry, w.Step())
	assert.Equal(t, "topup", w.Tab())

	_, ok := contract.AsFieldError(w.EnterMobile("12345"))
	assert.True(t, ok)
	assert.Equal(t, StepMobileEntry, w.Step())

	require.NoError(t, w.EnterMobile(" 9876543210 "))
	assert.Equal(t, StepPlanSelection, w.Step())
	assert.Equal(t, "9876543210", w.MobileNumber())

	assert.ErrorIs(t, w.Proceed(), ErrNoPlanSelected)

	list, err := w.Plans(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, w.SelectPlan(list[0]))
	assert.ErrorIs(t, w.SelectPlan(special399), ErrPlanNotOnTab)

	require.NoError(t, w.Proceed())
	assert.Equal(t, StepConfirm, w.Step())

	receipt, err := w.Pay(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepReceipt, w.Step())
	assert.Equal(t, "topup", receipt.RechargeType)
	assert.Equal(t, "Rs 199", receipt.PlanName)
	assert.Equal(t, int64(19900), receipt.AmountPaise)
	assert.Same(t, receipt, w.Receipt())

	require.Len(t, api.got, 1)
	assert.Equal(t, contract.CreateRechargeInput{MobileNumber: "9876543210", RechargeType: "topup", PlanID: 1}, api.got[0])

	w.Back()
	assert.Equal(t, StepReceipt, w.Step())

	w.Reset()
	assert.Equal(t, StepMobileEntry, w.Step())
	assert.Empty(t, w.MobileNumber())
	assert.Nil(t, w.SelectedPlan())
	assert.Nil(t, w.Receipt())
}

func TestWizardSwitchingTabClearsSelection(t *testing.T) {
	w := NewWizard(&fakeRechargeAPI{})
	require.NoError(t, w.EnterMobile("9876543210"))
	require.NoError(t, w.SelectPlan(topup199))

	require.NoError(t, w.SetTab("topup"))
	assert.NotNil(t, w.SelectedPlan())

	require.NoError(t, w.SetTab("special"))
	assert.Nil(t, w.SelectedPlan())
	assert.Equal(t, "special", w.Tab())

	_, ok := contract.AsFieldError(w.SetTab("combo"))
	assert.True(t, ok)
	assert.Equal(t, "special", w.Tab())
}

func TestWizardTabOnlyChangesDuringPlanSelection(t *testing.T) {
	w := NewWizard(&fakeRechargeAPI{})
	assert.ErrorIs(t, w.SetTab("special"), ErrWrongStep)
	assert.Equal(t, "topup", w.Tab())

	require.NoError(t, w.EnterMobile("9876543210"))
	require.NoError(t, w.SelectPlan(topup199))
	require.NoError(t, w.Proceed())

	assert.ErrorIs(t, w.SetTab("special"), ErrWrongStep)
	assert.Equal(t, StepConfirm, w.Step())
	assert.Equal(t, "topup", w.Tab())
	require.NotNil(t, w.SelectedPlan())

	_, err := w.Pay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepReceipt, w.Step())
}

func TestWizardBack(t *testing.T) {
	w := NewWizard(&fakeRechargeAPI{})
	w.Back()
	assert.Equal(t, StepMobileEntry, w.Step())

	require.NoError(t, w.EnterMobile("9876543210"))
	require.NoError(t, w.SelectPlan(topup199))
	require.NoError(t, w.Proceed())

	w.Back()
	assert.Equal(t, StepPlanSelection, w.Step())
	assert.NotNil(t, w.SelectedPlan())
	w.Back()
	assert.Equal(t, StepMobileEntry, w.Step())
	assert.Equal(t, "9876543210", w.MobileNumber())
}

func TestWizardPayFailureStaysOnConfirm(t *testing.T) {
	api := &fakeRechargeAPI{err: &APIError{Op: contract.OpRechargesCreate, Status: 401, err: ErrUnauthorized}}
	w := NewWizard(api)
	require.NoError(t, w.EnterMobile("9876543210"))
	require.NoError(t, w.SelectPlan(topup199))
	require.NoError(t, w.Proceed())

	_, err := w.Pay(context.Background())
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, StepConfirm, w.Step())
	assert.Nil(t, w.Receipt())

	_, err = NewWizard(api).Pay(context.Background())
	assert.True(t, errors.Is(err, ErrWrongStep))
}

func TestWizardAgainstServer(t *testing.T) {
	f := newFixture(t)
	c := f.clientFor(t, "u1", "")
	ctx := context.Background()

	w := NewWizard(c)
	require.NoError(t, w.EnterMobile("9876543210"))
	require.NoError(t, w.SetTab("special"))

	list, err := w.Plans(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, p := range list {
		assert.Equal(t, "special", p.PlanType)
		assert.True(t, p.IsActive)
	}

	_, err = c.ListMyRecharges(ctx)
	require.NoError(t, err)

	require.NoError(t, w.SelectPlan(list[0]))
	require.NoError(t, w.Proceed())
	receipt, err := w.Pay(ctx)
	require.NoError(t, err)
	assert.Equal(t, list[0].AmountPaise, receipt.AmountPaise)
	assert.NotEmpty(t, receipt.TransactionID)

	assert.False(t, c.Cached(contract.OpRechargesListMy))
	mine, err := c.ListMyRecharges(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, receipt.TransactionID, mine[0].TransactionID)
}
