package engine

import (
	"errors"
	"testing"
	"time"
)

func TestComputeSnoozeUntil(t *testing.T) {
	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		minutes int
		want    time.Time
		wantErr error
	}{
		{"ten minutes", 10, now.Add(10 * time.Minute), nil},
		{"one minute", 1, now.Add(time.Minute), nil},
		{"across midnight", 13 * 60, now.Add(13 * time.Hour), nil},
		{"zero is invalid", 0, time.Time{}, ErrInvalidSnoozeDuration},
		{"negative is invalid", -5, time.Time{}, ErrInvalidSnoozeDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeSnoozeUntil(now, tt.minutes)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
