package models

import "time"

type Session struct {
	SessionID string
	UserID    string
	Email     string
	ExpiresAt time.Time
}
