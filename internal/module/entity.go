package module

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mahitha-23/ClassPilot/internal/lesson"
)

// Module is the persisted unit: a lesson plus the metadata of the module it
// belongs to. Records are immutable once stored; saving appends a new record
// and never mutates an existing one.
type Module struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ModuleName    string        `gorm:"type:text;not null" json:"moduleName"`
	Lesson        lesson.Lesson `gorm:"type:text;serializer:json" json:"lesson"`
	Difficulty    string        `gorm:"type:text" json:"difficulty"`
	Prerequisites string        `gorm:"type:text" json:"prerequisites"`
	Time          string        `gorm:"type:text" json:"time"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
}
