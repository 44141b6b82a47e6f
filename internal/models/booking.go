package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	ClassID     uuid.UUID `json:"class_id" db:"class_id"`
	ClientName  string    `json:"client_name" db:"client_name"`
	ClientEmail string    `json:"client_email" db:"client_email"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
