package models

import (
	"time"

	"github.com/google/uuid"
)

type FitnessClass struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Instructor     string    `json:"instructor" db:"instructor"`
	DateTime       time.Time `json:"date_time" db:"date_time"`
	TotalSlots     int       `json:"total_slots" db:"total_slots"`
	AvailableSlots int       `json:"available_slots" db:"available_slots"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
