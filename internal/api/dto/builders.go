// Package dto converts stored rows into response shapes.
package dto

import (
	"recharge-portal/internal/contract"
	"recharge-portal/internal/domain/bills"
	"recharge-portal/internal/domain/feedback"
	"recharge-portal/internal/domain/plans"
	"recharge-portal/internal/domain/profiles"
	"recharge-portal/internal/domain/recharges"
	"recharge-portal/internal/domain/services"
	"recharge-portal/internal/domain/users"
	"recharge-portal/internal/storage"
)

func BuildPlan(p plans.Plan) contract.Plan {
	return contract.Plan{
		ID:            int64(p.ID),
		PlanType:      p.PlanType,
		Name:          p.Name,
		Description:   p.Description,
		AmountPaise:   p.AmountPaise,
		ValidityDays:  p.ValidityDays,
		TalktimePaise: p.TalktimePaise,
		IsActive:      p.IsActive,
	}
}

func BuildPlans(ps []plans.Plan) []contract.Plan {
	out := make([]contract.Plan, 0, len(ps))
	for _, p := range ps {
		out = append(out, BuildPlan(p))
	}
	return out
}

func BuildRecharge(r recharges.Recharge) contract.Recharge {
	var planID *int64
	if r.PlanID != nil {
		id := int64(*r.PlanID)
		planID = &id
	}
	return contract.Recharge{
		ID:            int64(r.ID),
		TransactionID: r.TransactionID,
		UserID:        r.UserID,
		MobileNumber:  r.MobileNumber,
		RechargeType:  r.RechargeType,
		PlanID:        planID,
		AmountPaise:   r.AmountPaise,
		CreatedAt:     r.CreatedAt.UTC(),
	}
}

func BuildRecharges(rs []recharges.Recharge) []contract.Recharge {
	out := make([]contract.Recharge, 0, len(rs))
	for _, r := range rs {
		out = append(out, BuildRecharge(r))
	}
	return out
}

func BuildBillPayment(b bills.BillPayment) contract.BillPayment {
	return contract.BillPayment{
		ID:              int64(b.ID),
		TransactionID:   b.TransactionID,
		UserID:          b.UserID,
		MobileNumber:    b.MobileNumber,
		BillAmountPaise: b.BillAmountPaise,
		CreatedAt:       b.CreatedAt.UTC(),
	}
}

func BuildBillPayments(bs []bills.BillPayment) []contract.BillPayment {
	out := make([]contract.BillPayment, 0, len(bs))
	for _, b := range bs {
		out = append(out, BuildBillPayment(b))
	}
	return out
}

// BuildProfile returns nil for a user without a profile; it renders as JSON null.
func BuildProfile(p *profiles.CustomerProfile) *contract.Profile {
	if p == nil {
		return nil
	}
	return &contract.Profile{
		ID:           int64(p.ID),
		UserID:       p.UserID,
		MobileNumber: p.MobileNumber,
		FullName:     p.FullName,
		Address:      p.Address,
	}
}

func BuildServices(s services.Services) contract.Services {
	return contract.Services{
		ID:           int64(s.ID),
		UserID:       s.UserID,
		DoNotDisturb: s.DoNotDisturb,
		CallerTunes:  s.CallerTunes,
	}
}

func BuildFeedback(f feedback.Feedback) contract.Feedback {
	return contract.Feedback{
		ID:        int64(f.ID),
		UserID:    f.UserID,
		Name:      f.Name,
		Email:     f.Email,
		Message:   f.Message,
		CreatedAt: f.CreatedAt.UTC(),
	}
}

func BuildFeedbackList(fs []feedback.Feedback) []contract.Feedback {
	out := make([]contract.Feedback, 0, len(fs))
	for _, f := range fs {
		out = append(out, BuildFeedback(f))
	}
	return out
}

func BuildOverview(o storage.DailyOverview) contract.AdminOverview {
	return contract.AdminOverview{
		Date:                     o.Date,
		TotalRechargeAmountPaise: o.TotalRechargeAmountPaise,
		TotalBillAmountPaise:     o.TotalBillAmountPaise,
		TotalTransactions:        o.TotalTransactions,
	}
}

func BuildTransactions(t storage.DailyTransactions) contract.AdminTransactions {
	return contract.AdminTransactions{
		Recharges:    BuildRecharges(t.Recharges),
		BillPayments: BuildBillPayments(t.BillPayments),
	}
}

func BuildAdminUsers(rows []storage.AdminUserRow) []contract.AdminUser {
	out := make([]contract.AdminUser, 0, len(rows))
	for _, r := range rows {
		out = append(out, contract.AdminUser{
			ID:              r.ID,
			Email:           r.Email,
			FirstName:       r.FirstName,
			LastName:        r.LastName,
			ProfileImageURL: r.ProfileImageURL,
			MobileNumber:    r.MobileNumber,
			FullName:        r.FullName,
		})
	}
	return out
}

func BuildAuthUser(u users.User, isAdmin bool) contract.AuthUser {
	return contract.AuthUser{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		IsAdmin:         isAdmin,
	}
}
