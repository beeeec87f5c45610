package recharges

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// Receipt prefixes for the two transaction tables.
const (
	PrefixRecharge    = "RC"
	PrefixBillPayment = "BP"
)

// MaxTransactionIDLen mirrors the column width.
const MaxTransactionIDLen = 32

// NewTransactionID returns "<prefix>-<ULID>": a millisecond timestamp followed by
// 80 random bits, so ids sort by creation time and collisions are negligible.
func NewTransactionID(prefix string) string {
	id := strings.ToUpper(prefix) + "-" + ulid.Make().String()
	if len(id) > MaxTransactionIDLen {
		id = id[:MaxTransactionIDLen]
	}
	return id
}
