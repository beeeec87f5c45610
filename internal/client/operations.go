package client

import (
	"context"

	"recharge-portal/internal/contract"
)

func (c *Client) ListPlans(ctx context.Context, q contract.ListPlansQuery) ([]contract.Plan, error) {
	var out []contract.Plan
	err := c.do(ctx, call{op: contract.OpPlansList, query: q.Values(), input: &q}, &out)
	return out, err
}

func (c *Client) CreateRecharge(ctx context.Context, in contract.CreateRechargeInput) (*contract.Recharge, error) {
	var out contract.Recharge
	if err := c.do(ctx, call{op: contract.OpRechargesCreate, input: &in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMyRecharges(ctx context.Context) ([]contract.Recharge, error) {
	var out []contract.Recharge
	err := c.do(ctx, call{op: contract.OpRechargesListMy}, &out)
	return out, err
}

func (c *Client) GetMockBill(ctx context.Context, mobileNumber string) (*contract.MockBill, error) {
	params := contract.MockBillParams{MobileNumber: mobileNumber}
	var out contract.MockBill
	err := c.do(ctx, call{
		op:     contract.OpBillsGetMock,
		params: map[string]string{"mobileNumber": mobileNumber},
		input:  &params,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PayBill(ctx context.Context, in contract.CreateBillPaymentInput) (*contract.BillPayment, error) {
	var out contract.BillPayment
	if err := c.do(ctx, call{op: contract.OpBillsPay, input: &in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMyBillPayments(ctx context.Context) ([]contract.BillPayment, error) {
	var out []contract.BillPayment
	err := c.do(ctx, call{op: contract.OpBillsListMy}, &out)
	return out, err
}

// GetMyProfile returns nil before the first save.
func (c *Client) GetMyProfile(ctx context.Context) (*contract.Profile, error) {
	var out *contract.Profile
	if err := c.do(ctx, call{op: contract.OpProfileGetMy}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpsertMyProfile(ctx context.Context, in contract.UpsertProfileInput) (*contract.Profile, error) {
	var out contract.Profile
	if err := c.do(ctx, call{op: contract.OpProfileUpsertMy, input: &in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMyServices(ctx context.Context) (*contract.Services, error) {
	var out contract.Services
	if err := c.do(ctx, call{op: contract.OpServicesGetMy}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMyServices(ctx context.Context, in contract.UpdateServicesInput) (*contract.Services, error) {
	var out contract.Services
	if err := c.do(ctx, call{op: contract.OpServicesUpdateMy, input: &in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateFeedback(ctx context.Context, in contract.CreateFeedbackInput) (*contract.Feedback, error) {
	var out contract.Feedback
	if err := c.do(ctx, call{op: contract.OpFeedbackCreate, input: &in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListFeedback(ctx context.Context) ([]contract.Feedback, error) {
	var out []contract.Feedback
	err := c.do(ctx, call{op: contract.OpFeedbackListAdmin}, &out)
	return out, err
}

// AdminOverview reports on date (YYYY-MM-DD); "" means the server's today.
func (c *Client) AdminOverview(ctx context.Context, date string) (*contract.AdminOverview, error) {
	q := contract.DateQuery{Date: date}
	var out contract.AdminOverview
	if err := c.do(ctx, call{op: contract.OpAdminOverview, query: q.Values(), input: &q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminTransactions(ctx context.Context, date string) (*contract.AdminTransactions, error) {
	q := contract.DateQuery{Date: date}
	var out contract.AdminTransactions
	if err := c.do(ctx, call{op: contract.OpAdminTransactions, query: q.Values(), input: &q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUsers(ctx context.Context) ([]contract.AdminUser, error) {
	var out []contract.AdminUser
	err := c.do(ctx, call{op: contract.OpAdminUsers}, &out)
	return out, err
}
