package models

import "time"

// LogFilter narrows a user's exercise log. Both bounds are inclusive and
// a zero Limit means no limit.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// Matches reports whether date falls within the filter bounds.
func (f LogFilter) Matches(date time.Time) bool {
	if f.From != nil && date.Before(*f.From) {
		return false
	}
	if f.To != nil && date.After(*f.To) {
		return false
	}
	return true
}
