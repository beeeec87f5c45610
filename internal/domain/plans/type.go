package plans

// Plan type constants (single source of truth)
const (
	TypeTopup   = "topup"
	TypeSpecial = "special"
)

// Matches reports whether a recharge of the given type may buy p.
func Matches(p *Plan, rechargeType string) bool {
	if p == nil {
		return false
	}
	return p.PlanType == rechargeType
}
