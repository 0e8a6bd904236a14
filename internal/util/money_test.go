package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "7", want: 700},
		{input: "12.5", want: 1250},
		{input: "12.50", want: 1250},
		{input: "0.01", want: 1},
		{input: "0", want: 0},
		{input: " 250 ", want: 25000},
		{input: "1000000.99", want: 100000099},
		{input: "", wantErr: true},
		{input: "12.", wantErr: true},
		{input: ".5", wantErr: true},
		{input: "1.005", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "+3", wantErr: true},
		{input: "1e3", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "92233720368547758.08", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToMinorUnits(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "12.50", FormatMinorUnits(1250))
	assert.Equal(t, "7.00", FormatMinorUnits(700))
	assert.Equal(t, "0.05", FormatMinorUnits(5))
	assert.Equal(t, "0.00", FormatMinorUnits(0))
	assert.Equal(t, "-1.20", FormatMinorUnits(-120))
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	for _, amount := range []string{"0.00", "1.00", "19.99", "250.10"} {
		minor, err := ToMinorUnits(amount)
		assert.NoError(t, err)
		assert.Equal(t, amount, FormatMinorUnits(minor))
	}
}
