package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMobileNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"9876543210", true},
		{"0000000000", true},
		{"987654321", false},
		{"98765432101", false},
		{"98765a3210", false},
		{"", false},
		{" 9876543210", false},
		{"９８７６５４３２１０", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsMobileNumber(tt.in), "input %q", tt.in)
	}
}

func TestParseCreateRecharge(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{
			name: "valid",
			body: `{"mobileNumber":"9876543210","rechargeType":"topup","planId":1}`,
		},
		{
			name:      "short mobile",
			body:      `{"mobileNumber":"98765","rechargeType":"topup","planId":1}`,
			wantField: "mobileNumber",
			wantMsg:   MsgMobileNumber,
		},
		{
			name:      "missing mobile",
			body:      `{"rechargeType":"topup","planId":1}`,
			wantField: "mobileNumber",
			wantMsg:   MsgMobileNumber,
		},
		{
			name:      "unknown recharge type",
			body:      `{"mobileNumber":"9876543210","rechargeType":"data","planId":1}`,
			wantField: "rechargeType",
		},
		{
			name:      "zero plan id",
			body:      `{"mobileNumber":"9876543210","rechargeType":"special","planId":0}`,
			wantField: "planId",
		},
		{
			name:      "fractional plan id",
			body:      `{"mobileNumber":"9876543210","rechargeType":"special","planId":1.5}`,
			wantField: "planId",
		},
		{
			name:      "string plan id",
			body:      `{"mobileNumber":"9876543210","rechargeType":"special","planId":"1"}`,
			wantField: "planId",
		},
		{
			name:    "malformed json",
			body:    `{"mobileNumber":`,
			wantMsg: MsgInvalidJSON,
		},
		{
			name:    "empty body",
			body:    ``,
			wantMsg: MsgInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in CreateRechargeInput
			err := Parse([]byte(tt.body), &in)
			if tt.wantField == "" && tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			fe, ok := AsFieldError(err)
			require.True(t, ok, "expected *FieldError, got %v", err)
			assert.Equal(t, tt.wantField, fe.Field)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, fe.Message)
			}
		})
	}
}

func TestUpdateServicesRequiresOneField(t *testing.T) {
	var in UpdateServicesInput
	err := Parse([]byte(`{}`), &in)
	fe, ok := AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, MsgAtLeastOneField, fe.Message)

	in = UpdateServicesInput{}
	require.NoError(t, Parse([]byte(`{"callerTunes":false}`), &in))
	require.NotNil(t, in.CallerTunes)
	assert.False(t, *in.CallerTunes)
	assert.Nil(t, in.DoNotDisturb)
}

func TestUpsertProfileIsPartial(t *testing.T) {
	var in UpsertProfileInput
	require.NoError(t, Parse([]byte(`{}`), &in))

	in = UpsertProfileInput{}
	require.NoError(t, Parse([]byte(`{"fullName":"Asha"}`), &in))
	assert.Nil(t, in.MobileNumber)
	require.NotNil(t, in.FullName)

	in = UpsertProfileInput{}
	err := Parse([]byte(`{"mobileNumber":"12"}`), &in)
	fe, ok := AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "mobileNumber", fe.Field)
}

func TestCreateFeedback(t *testing.T) {
	var in CreateFeedbackInput
	require.NoError(t, Parse([]byte(`{"message":"hi"}`), &in))

	for _, body := range []string{`{}`, `{"message":""}`, `{"message":"   "}`} {
		in = CreateFeedbackInput{}
		fe, ok := AsFieldError(Parse([]byte(body), &in))
		require.True(t, ok, body)
		assert.Equal(t, "message", fe.Field, body)
	}

	long := make([]byte, 321)
	for i := range long {
		long[i] = 'a'
	}
	in = CreateFeedbackInput{}
	fe, ok := AsFieldError(Parse([]byte(`{"message":"hello","email":"`+string(long)+`"}`), &in))
	require.True(t, ok)
	assert.Equal(t, "email", fe.Field)
}

func TestDateQuery(t *testing.T) {
	assert.NoError(t, Validate(&DateQuery{}))
	assert.NoError(t, Validate(&DateQuery{Date: "2024-01-01"}))

	fe, ok := AsFieldError(Validate(&DateQuery{Date: "2024-13-01"}))
	require.True(t, ok)
	assert.Equal(t, "date", fe.Field)

	_, ok = AsFieldError(Validate(&DateQuery{Date: "01/01/2024"}))
	assert.True(t, ok)
}

func TestListPlansQuery(t *testing.T) {
	q := ListPlansQuery{}
	assert.True(t, q.ActiveOnlyOrDefault())
	q.ActiveOnly = "false"
	assert.False(t, q.ActiveOnlyOrDefault())

	assert.NoError(t, Validate(&ListPlansQuery{Type: "topup", ActiveOnly: "true"}))
	fe, ok := AsFieldError(Validate(&ListPlansQuery{Type: "data"}))
	require.True(t, ok)
	assert.Equal(t, "type", fe.Field)
	fe, ok = AsFieldError(Validate(&ListPlansQuery{ActiveOnly: "yes"}))
	require.True(t, ok)
	assert.Equal(t, "activeOnly", fe.Field)
}
