package domain

import "time"

type AttendanceStatus string

const (
	AttendanceStatusGoing      AttendanceStatus = "going"
	AttendanceStatusInterested AttendanceStatus = "interested"
)

// Valid сообщает, известен ли статус.
func (s AttendanceStatus) Valid() bool {
	return s == AttendanceStatusGoing || s == AttendanceStatusInterested
}

type Attendance struct {
	ID        string           `json:"id"`
	EventID   string           `json:"event_id"`
	UserID    string           `json:"user_id"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
