package models

import "time"

// EntryView is the trimmed projection of an Entry shown on the display board.
type EntryView struct {
	ID          string `json:"id"`
	ClassName   string `json:"class_name"`
	Subject     string `json:"subject,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
}

// RoomStatus represents the live occupancy of one classroom for display.
type RoomStatus struct {
	ClassroomID  string     `json:"classroom_id"`
	RoomName     string     `json:"room_name"`
	BuildingName string     `json:"building_name"`
	FloorLabel   string     `json:"floor_label"`
	Available    bool       `json:"available"`
	Current      *EntryView `json:"current,omitempty"` // The ongoing session, if any
	Next         *EntryView `json:"next,omitempty"`    // Upcoming fallback when the room is free
}

// Board is the full occupancy snapshot pushed to display clients.
type Board struct {
	Date        string       `json:"date"`
	Rooms       []RoomStatus `json:"rooms"`
	GeneratedAt time.Time    `json:"generated_at"`
}
