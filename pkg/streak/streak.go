package streak

import "time"

// State carries a user's consecutive-day activity streak.
type State struct {
	Current      int
	Longest      int
	LastActivity *time.Time
}

// Advance folds a new activity at `now` into the streak state.
// A streak counts consecutive calendar days with at least one activity:
// the first ever activity starts at 1, a next-day activity increments,
// a gap of two or more days resets to 1, and a repeat on the same day
// leaves the count untouched. LastActivity always moves to `now`.
func Advance(s State, now time.Time) State {
	if s.LastActivity == nil {
		s.Current = 1
	} else {
		diff := dayDiff(*s.LastActivity, now)
		switch {
		case diff == 1:
			s.Current++
		case diff > 1:
			s.Current = 1
		}
	}
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastActivity = &now
	return s
}

// dayDiff returns the whole-day difference between two timestamps'
// calendar dates, ignoring the time of day.
func dayDiff(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	return int(t.Sub(f).Hours() / 24)
}
