package domain

import (
	"time"

	"gorm.io/gorm"
)

// Timestamps carries the audit columns shared by every table. It replaces an
// embedded gorm.Model: most tables here name their primary key column after
// the entity (id_pendaftaran, id_skema, ...), and a model must declare exactly
// one primary-key field for GORM to backfill it on insert.
type Timestamps struct {
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
