package models

import "time"

// Building represents a physical campus building.
type Building struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Code      string    `bson:"code" json:"code"` // Short label shown on the display board (e.g., "MB")
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Floor represents one floor of a building.
type Floor struct {
	ID         string    `bson:"id" json:"id"`
	BuildingID string    `bson:"building_id" json:"building_id"`
	Number     int       `bson:"number" json:"number"`
	Label      string    `bson:"label" json:"label"` // e.g., "Ground Floor", "2nd Floor"
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// Classroom represents a bookable room on a floor.
type Classroom struct {
	ID         string    `bson:"id" json:"id"`
	FloorID    string    `bson:"floor_id" json:"floor_id"`
	BuildingID string    `bson:"building_id" json:"building_id"` // Denormalized for board queries
	Name       string    `bson:"name" json:"name"`               // e.g., "101", "Physics Lab"
	Capacity   int       `bson:"capacity" json:"capacity"`
	RoomType   string    `bson:"room_type" json:"room_type"` // e.g., "lecture", "lab", "seminar"
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// Department groups teachers for directory purposes.
type Department struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Code      string    `bson:"code" json:"code"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Teacher represents a member of staff who can be assigned to sessions.
type Teacher struct {
	ID           string    `bson:"id" json:"id"`
	DepartmentID string    `bson:"department_id" json:"department_id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
