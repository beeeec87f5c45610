package plans

import "fmt"

// Catalog is the fixed first-run plan set.
// Prices are in paise; nothing else writes the plans table.
func Catalog() []Plan {
	return []Plan{
		topup("Top-Up 99", 9900),
		topup("Top-Up 199", 19900),
		topup("Top-Up 299", 29900),
		special("Special 239", 23900, 28),
		special("Special 479", 47900, 56),
		special("Special 666", 66600, 84),
	}
}

func topup(name string, paise int64) Plan {
	desc := "Talktime ₹" + rupees(paise)
	talktime := paise
	return Plan{
		PlanType:      TypeTopup,
		Name:          name,
		Description:   &desc,
		AmountPaise:   paise,
		TalktimePaise: &talktime,
		IsActive:      true,
	}
}

func special(name string, paise int64, days int) Plan {
	desc := "Unlimited calls + 1.5GB/day"
	validity := days
	return Plan{
		PlanType:     TypeSpecial,
		Name:         name,
		Description:  &desc,
		AmountPaise:  paise,
		ValidityDays: &validity,
		IsActive:     true,
	}
}

// rupees renders whole-rupee amounts as "99.0", matching the catalog copy.
func rupees(paise int64) string {
	return fmt.Sprintf("%d.%d", paise/100, (paise%100)/10)
}
