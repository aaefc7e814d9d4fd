package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want Price
	}{
		{"1.50", 150},
		{"1.5", 150},
		{"0", 0},
		{"0.00", 0},
		{"2", 200},
		{"19.99", 1999},
		{" 3.25 ", 325},
	}
	for _, tt := range tests {
		got, err := ParsePrice(tt.in)
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, in := range []string{"", "-1", "-0.01", "1.999", "abc", "1.2.3", ".50", "1,50"} {
		_, err := ParsePrice(in)
		assert.ErrorIs(t, err, ErrInvalidPrice, "input %q", in)
	}
}

func TestPrice_String(t *testing.T) {
	assert.Equal(t, "1.50", Price(150).String())
	assert.Equal(t, "0.05", Price(5).String())
	assert.Equal(t, "0.00", Price(0).String())
	assert.Equal(t, "12.00", Price(1200).String())
}

func TestPrice_JSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(Price(150))
	assert.NoError(t, err)
	assert.Equal(t, "1.50", string(out))

	var p Price
	assert.NoError(t, json.Unmarshal([]byte("2.00"), &p))
	assert.Equal(t, Price(200), p)

	assert.NoError(t, json.Unmarshal([]byte(`"19.99"`), &p))
	assert.Equal(t, Price(1999), p)

	assert.Error(t, json.Unmarshal([]byte(`"-1"`), &p))
}
