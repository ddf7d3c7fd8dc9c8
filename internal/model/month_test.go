package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in   string
		want Month
	}{
		{"march", March},
		{"MARCH", March},
		{"Mar", March},
		{"mar", March},
		{"  March  ", March},
		{"january", January},
		{"Sept", September},
		{"september", September},
		{"DEC", December},
		{"May", May},
	}
	for _, tt := range tests {
		got, err := ParseMonth(tt.in)
		require.NoError(t, err, "ParseMonth(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseMonth(%q)", tt.in)
	}
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, in := range []string{"", "Ma", "Xyz", "13", "J an"} {
		_, err := ParseMonth(in)
		require.Error(t, err, "ParseMonth(%q)", in)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	}
}

func TestParseMonth_OnlyFirstThreeLetters(t *testing.T) {
	got, err := ParseMonth("junebug")
	require.NoError(t, err)
	assert.Equal(t, June, got)
}

func TestMonthString(t *testing.T) {
	want := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	require.Len(t, Months, 12)
	for i, m := range Months {
		assert.Equal(t, want[i], m.String())
		assert.True(t, m.Valid())
	}
	assert.Equal(t, "March", March.Name())
	assert.Equal(t, "December", December.Name())
	assert.False(t, Month(0).Valid())
	assert.Equal(t, "Month(13)", Month(13).String())
}
