package editor

import (
	"testing"
	"time"
)

func TestAgeLabel(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		st   LabelState
		want string
	}{
		{
			name: "never typed",
			now:  base,
			st:   LabelState{},
			want: "Never",
		},
		{
			name: "typing just started counts from one",
			now:  base,
			st:   LabelState{Typing: true, TypingStartedAt: base},
			want: "1 second ago",
		},
		{
			name: "typing counts up",
			now:  base.Add(5 * time.Second),
			st:   LabelState{Typing: true, TypingStartedAt: base},
			want: "5 seconds ago",
		},
		{
			name: "typing past a minute drops seconds",
			now:  base.Add(95 * time.Second),
			st:   LabelState{Typing: true, TypingStartedAt: base},
			want: "1 minute ago",
		},
		{
			name: "just settled flag",
			now:  base.Add(30 * time.Second),
			st:   LabelState{LastSavedAt: base, JustSettled: true},
			want: "Just now",
		},
		{
			name: "settled under two seconds",
			now:  base.Add(1 * time.Second),
			st:   LabelState{LastSavedAt: base},
			want: "Just now",
		},
		{
			name: "settled rounds to ten second bucket",
			now:  base.Add(37 * time.Second),
			st:   LabelState{LastSavedAt: base},
			want: "30 seconds ago",
		},
		{
			name: "settled below first bucket",
			now:  base.Add(4 * time.Second),
			st:   LabelState{LastSavedAt: base},
			want: "0 seconds ago",
		},
		{
			name: "settled whole minutes",
			now:  base.Add(2 * time.Minute),
			st:   LabelState{LastSavedAt: base},
			want: "2 minutes ago",
		},
		{
			name: "settled minute rendering drops the second remainder",
			now:  base.Add(90 * time.Second),
			st:   LabelState{LastSavedAt: base},
			want: "1 minute ago",
		},
		{
			name: "settled hours with minutes",
			now:  base.Add(1*time.Hour + 5*time.Minute),
			st:   LabelState{LastSavedAt: base},
			want: "1 hour 5 minutes ago",
		},
		{
			name: "settled whole hours",
			now:  base.Add(3 * time.Hour),
			st:   LabelState{LastSavedAt: base},
			want: "3 hours ago",
		},
		{
			name: "singular hour and minute",
			now:  base.Add(1*time.Hour + 1*time.Minute),
			st:   LabelState{LastSavedAt: base},
			want: "1 hour 1 minute ago",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeLabel(tt.now, tt.st); got != tt.want {
				t.Errorf("AgeLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{1, "1 second ago"},
		{59, "59 seconds ago"},
		{60, "1 minute ago"},
		{61, "1 minute 1 second ago"},
		{150, "2 minutes 30 seconds ago"},
		{3600, "1 hour ago"},
		{3660, "1 hour 1 minute ago"},
		{7200, "2 hours ago"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.seconds); got != tt.want {
			t.Errorf("formatElapsed(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
