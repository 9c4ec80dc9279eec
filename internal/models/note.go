package models

import "time"

// Note is a standalone sticky note, independent of the panel layout.
type Note struct {
	ID    int64
	Note  string
	Color string
	User  string
	Time  time.Time
}
