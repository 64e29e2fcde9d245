package types

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_Unmarshal(t *testing.T) {
	type item struct {
		Amount Amount `json:"amount"`
	}
	tests := []struct {
		name    string
		body    string
		want    Amount
		wantErr bool
	}{
		{name: "number", body: `{"amount": 150000}`, want: NewAmount(150000)},
		{name: "numeric string", body: `{"amount": "2500"}`, want: NewAmount(2500)},
		{name: "padded string", body: `{"amount": " 10 "}`, want: NewAmount(10)},
		{name: "integral float", body: `{"amount": 12.0}`, want: NewAmount(12)},
		{name: "negative stays negative", body: `{"amount": -5}`, want: NewAmount(-5)},
		{name: "missing", body: `{}`, want: Amount{}},
		{name: "null", body: `{"amount": null}`, want: Amount{}},
		{name: "empty string", body: `{"amount": ""}`, want: Amount{}},
		{name: "fraction", body: `{"amount": 12.5}`, wantErr: true},
		{name: "text", body: `{"amount": "doce"}`, wantErr: true},
		{name: "bool", body: `{"amount": true}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var it item
			err := sonic.Unmarshal([]byte(tt.body), &it)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, it.Amount)
		})
	}
}

func TestAmount_Marshal(t *testing.T) {
	b, err := sonic.Marshal(map[string]Amount{"a": NewAmount(42), "b": {}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":42,"b":null}`, string(b))
}
