package bills

// Mock bill bounds, in paise.
const (
	MockBaseAmountPaise = 19900
	mockSpreadPaise     = 8000

	MinMockAmountPaise = MockBaseAmountPaise
	MaxMockAmountPaise = MockBaseAmountPaise + mockSpreadPaise - 1
)

// MockAmountPaise stands in for a billing system lookup. The amount depends only on
// the last four characters of the number: 19900 + (last4 mod 8000).
// Non-digit characters among them count as zero; callers validate the number first.
func MockAmountPaise(mobileNumber string) int64 {
	tail := mobileNumber
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}

	var last4 int64
	for i := 0; i < len(tail); i++ {
		d := int64(0)
		if c := tail[i]; c >= '0' && c <= '9' {
			d = int64(c - '0')
		}
		last4 = last4*10 + d
	}

	return MockBaseAmountPaise + last4%mockSpreadPaise
}
