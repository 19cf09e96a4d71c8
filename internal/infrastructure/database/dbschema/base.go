package dbschema

import "time"

// BaseModel carries the shared surrogate key and timestamps for schemas keyed
// by a serial ID.
type BaseModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
