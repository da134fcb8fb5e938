package editor

import (
	"fmt"
	"time"
)

// LabelState is the snapshot the age label is derived from. It is a pure
// input: deriving a label never mutates session state, so the display can
// re-derive every tick of the 1-second clock and count up between edits.
type LabelState struct {
	Typing          bool
	TypingStartedAt time.Time
	LastSavedAt     time.Time
	JustSettled     bool
}

// AgeLabel renders the human-readable "last saved" age for the given
// snapshot at the given instant.
//
// Never typed and never settled yields "Never". While typing the label
// counts up from the start of the burst (minimum 1 second). After settling
// it reads "Just now" for the first two seconds (or while the just-settled
// flag is up), then in 10-second buckets under a minute, then in
// minutes/seconds and hours/minutes.
func AgeLabel(now time.Time, st LabelState) string {
	if !st.Typing && st.LastSavedAt.IsZero() {
		return "Never"
	}

	if st.Typing {
		start := st.TypingStartedAt
		if start.IsZero() {
			start = now
		}
		seconds := int(now.Sub(start) / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		if seconds < 60 {
			return fmt.Sprintf("%d second%s ago", seconds, plural(seconds))
		}
		return formatElapsed(seconds / 60 * 60)
	}

	diff := int(now.Sub(st.LastSavedAt) / time.Second)
	if diff < 2 || st.JustSettled {
		return "Just now"
	}
	if diff < 60 {
		return fmt.Sprintf("%d seconds ago", diff/10*10)
	}
	return formatElapsed(diff / 60 * 60)
}

// formatElapsed renders an elapsed whole-second count as minutes/seconds or
// hours/minutes, omitting a zero remainder.
func formatElapsed(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d second%s ago", seconds, plural(seconds))
	}
	minutes := seconds / 60
	if minutes < 60 {
		rem := seconds % 60
		if rem > 0 {
			return fmt.Sprintf("%d minute%s %d second%s ago",
				minutes, plural(minutes), rem, plural(rem))
		}
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	}
	hours := minutes / 60
	rem := minutes % 60
	if rem > 0 {
		return fmt.Sprintf("%d hour%s %d minute%s ago",
			hours, plural(hours), rem, plural(rem))
	}
	return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
