package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "date", value: "2024-01-05", want: Day(2024, time.January, 5)},
		{name: "utc timestamp", value: "2024-01-05T00:00:00Z", want: Day(2024, time.January, 5)},
		{name: "offset keeps written date", value: "2024-01-05T23:30:00-05:00", want: Day(2024, time.January, 5)},
		{name: "garbage suffix", value: "2024-01-05garbage", wantErr: true},
		{name: "partial time", value: "2024-01-05T10", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "wrong layout", value: "05/01/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
