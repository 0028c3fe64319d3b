package models

import (
	"time"
)

// BaseModel provides common fields for all models.
// Primary keys are auto-increment integers; the public API treats them as
// opaque identifiers and never reuses or deletes them.
// JSON tags are camelCase because the wire format predates this service
// and is consumed by existing clients.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
