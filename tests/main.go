package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"campusroom/config"
	"campusroom/database"
	"campusroom/models"
	"campusroom/services/schedule"

	"go.mongodb.org/mongo-driver/bson"
	"github.com/google/uuid"
)

// Seeds the database with a small campus and a week of timetable entries so
// the board and booking endpoints have realistic data to work against.
func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Clear existing data.
	for _, name := range []string{"buildings", "floors", "classrooms", "departments", "teachers", "timetable_entries"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	now := time.Now()

	buildings := []models.Building{
		{ID: uuid.New().String(), Name: "Main Block", Code: "MB", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Science Block", Code: "SB", CreatedAt: now, UpdatedAt: now},
	}

	var floors []models.Floor
	var classrooms []models.Classroom
	floorLabels := []string{"Ground Floor", "1st Floor", "2nd Floor"}
	for _, b := range buildings {
		for n, label := range floorLabels {
			f := models.Floor{
				ID:         uuid.New().String(),
				BuildingID: b.ID,
				Number:     n,
				Label:      label,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			floors = append(floors, f)
			for r := 1; r <= 4; r++ {
				roomType := "lecture"
				if b.Code == "SB" && r == 4 {
					roomType = "lab"
				}
				classrooms = append(classrooms, models.Classroom{
					ID:         uuid.New().String(),
					FloorID:    f.ID,
					BuildingID: b.ID,
					Name:       fmt.Sprintf("%s-%d%02d", b.Code, n, r),
					Capacity:   30 + rand.Intn(40),
					RoomType:   roomType,
					CreatedAt:  now,
					UpdatedAt:  now,
				})
			}
		}
	}

	departments := []models.Department{
		{ID: uuid.New().String(), Name: "Computer Science", Code: "CS", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Physics", Code: "PH", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Mathematics", Code: "MA", CreatedAt: now, UpdatedAt: now},
	}

	teacherNames := []string{
		"A. Sharma", "R. Iyer", "S. Banerjee", "K. Nair", "P. Menon",
		"V. Rao", "D. Kulkarni", "M. Joshi", "T. Reddy",
	}
	var teachers []models.Teacher
	for i, name := range teacherNames {
		dept := departments[i%len(departments)]
		teachers = append(teachers, models.Teacher{
			ID:           uuid.New().String(),
			DepartmentID: dept.ID,
			Name:         name,
			Email:        fmt.Sprintf("teacher%d@campus.example", i+1),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	subjects := []string{"Algorithms", "Quantum Mechanics", "Linear Algebra", "Databases", "Optics", "Statistics"}
	classNames := []string{"CS-2A", "CS-3B", "PH-1A", "MA-2C", "PH-3A", "MA-1B"}

	// Sessions run on the hour between 08:00 and 17:00 in the reference
	// timezone; roughly two thirds of the slots in each room are filled.
	var entries []interface{}
	today := schedule.ReferenceNow(time.Now())
	for d := 0; d < 7; d++ {
		date := schedule.DateString(today.AddDate(0, 0, d))
		for _, room := range classrooms {
			for hour := 8; hour < 17; hour++ {
				if rand.Intn(3) == 0 {
					continue
				}
				t := teachers[rand.Intn(len(teachers))]
				startMin := hour * 60
				endMin := startMin + 60
				entries = append(entries, models.Entry{
					ID:          uuid.New().String(),
					ClassroomID: room.ID,
					Date:        date,
					StartTime:   schedule.FormatClock(startMin),
					EndTime:     schedule.FormatClock(endMin),
					StartMin:    startMin,
					EndMin:      endMin,
					ClassName:   classNames[rand.Intn(len(classNames))],
					Subject:     subjects[rand.Intn(len(subjects))],
					TeacherID:   t.ID,
					TeacherName: t.Name,
					RoomLabel:   room.Name,
					CreatedAt:   now,
					UpdatedAt:   now,
				})
			}
		}
	}

	insert := func(coll string, docs []interface{}) {
		if len(docs) == 0 {
			return
		}
		if _, err := db.Collection(coll).InsertMany(ctx, docs); err != nil {
			log.Fatalf("Failed to seed %s: %v", coll, err)
		}
	}

	insert("buildings", asDocs(buildings))
	insert("floors", asDocs(floors))
	insert("classrooms", asDocs(classrooms))
	insert("departments", asDocs(departments))
	insert("teachers", asDocs(teachers))
	insert("timetable_entries", entries)

	log.Printf("Seeded %d buildings, %d floors, %d classrooms, %d departments, %d teachers, %d entries",
		len(buildings), len(floors), len(classrooms), len(departments), len(teachers), len(entries))
}

func asDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}
