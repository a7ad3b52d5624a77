package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit holds timestamps and the operator that last touched a row.
type Audit struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `gorm:"type:varchar(100)" json:"createdBy"`
	UpdatedBy string    `gorm:"type:varchar(100)" json:"updatedBy"`
}

// BaseModel handles ID (UUID) and standard Audit Trails
type BaseModel struct {
	ID uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Audit
}

// Hook Before Create untuk generate UUID otomatis
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}
