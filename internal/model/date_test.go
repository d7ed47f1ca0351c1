package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_NormalizesToCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	d := NewDate(time.Date(2026, 3, 7, 23, 59, 59, 0, loc))
	assert.Equal(t, "2026-03-07", d.String())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "valid", in: "2026-09-15", want: Date("2026-09-15")},
		{name: "empty means unset", in: "", want: Date("")},
		{name: "rejects time component", in: "2026-09-15T10:00:00Z", wantErr: true},
		{name: "rejects garbage", in: "next tuesday", wantErr: true},
		{name: "rejects out-of-range day", in: "2026-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_Time(t *testing.T) {
	d := Date("2026-09-15")
	got := d.Time()
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.September, got.Month())
	assert.Equal(t, 15, got.Day())

	assert.True(t, Date("").Time().IsZero())
}
