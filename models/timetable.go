package models

import "time"

// Session display statuses. Manual values are set by user action; the rest are
// derived from the clock at read time.
const (
	StatusScheduled   = "scheduled"
	StatusOngoing     = "ongoing"
	StatusDelayed     = "delayed"
	StatusRescheduled = "rescheduled"
	StatusCanceled    = "canceled"
	StatusEnded       = "ended"
)

// ManualStatuses are the values a user may set as an explicit override.
var ManualStatuses = map[string]bool{
	StatusScheduled:   true,
	StatusOngoing:     true,
	StatusDelayed:     true,
	StatusRescheduled: true,
	StatusCanceled:    true,
	StatusEnded:       true,
}

// Entry represents one timetable entry: a class session booked into a
// classroom for a time range on a specific date. A session never spans dates.
type Entry struct {
	ID          string `bson:"id" json:"id"`
	ClassroomID string `bson:"classroom_id" json:"classroom_id"`
	Date        string `bson:"date" json:"date"`             // "YYYY-MM-DD" in the reference timezone
	StartTime   string `bson:"start_time" json:"start_time"` // "HH:MM", 24-hour
	EndTime     string `bson:"end_time" json:"end_time"`     // "HH:MM", strictly after StartTime
	StartMin    int    `bson:"start_min" json:"start_min"`   // Minutes from midnight, denormalized at write
	EndMin      int    `bson:"end_min" json:"end_min"`

	// ManualStatus, when set, overrides the time-derived status.
	ManualStatus string `bson:"manual_status,omitempty" json:"manual_status,omitempty"`

	// Display metadata; carried for presentation, irrelevant to conflict logic.
	ClassName     string `bson:"class_name" json:"class_name"`
	Subject       string `bson:"subject,omitempty" json:"subject,omitempty"`
	TeacherID     string `bson:"teacher_id,omitempty" json:"teacher_id,omitempty"`
	TeacherName   string `bson:"teacher_name,omitempty" json:"teacher_name,omitempty"`
	RoomLabel     string `bson:"room_label,omitempty" json:"room_label,omitempty"`
	BuildingLabel string `bson:"building_label,omitempty" json:"building_label,omitempty"`
	FloorLabel    string `bson:"floor_label,omitempty" json:"floor_label,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ImportRow is one pre-parsed row of a bulk timetable upload. Parsing the
// upload file itself happens upstream; rows arrive here already split.
type ImportRow struct {
	ClassroomID string `json:"classroom_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	ClassName   string `json:"class_name"`
	Subject     string `json:"subject,omitempty"`
	TeacherID   string `json:"teacher_id,omitempty"`
}

// ImportResult reports the outcome of a single bulk import row.
type ImportResult struct {
	Row     int    `json:"row"`
	EntryID string `json:"entry_id,omitempty"`
	Error   string `json:"error,omitempty"`
}
