package domain

import "context"

// Reminder is a derived view of an upcoming birthday. It is recomputed
// on every request and never persisted.
type Reminder struct {
	KidID     string `json:"kid_id"`
	KidName   string `json:"kid_name"`
	Birthday  string `json:"birthday"`
	DaysUntil int    `json:"days_until"`
	Age       int    `json:"age"`
}

type ReminderUseCase interface {
	GetReminders(ctx context.Context) (*[]Reminder, error)
}
