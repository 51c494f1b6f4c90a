package models

import (
	"time"
)

// CommunityNote is a free-text annotation another (anonymous) user attaches
// to a report for real-time context. Notes are append-only; slice order is
// chronological order.
type CommunityNote struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`
	Anonymous bool      `json:"anonymous"`
}
