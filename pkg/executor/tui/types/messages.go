package types

import (
	"time"
)

// ToastNotification represents a temporary notification message
type ToastNotification struct {
	Active    bool
	Message   string
	Details   string
	Icon      string
	IsError   bool
	ShowUntil time.Time
}

// ToastMsg is a message type for showing toast notifications
type ToastMsg struct {
	Message string
	Details string
	Icon    string
	IsError bool
}
