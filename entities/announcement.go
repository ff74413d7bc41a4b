package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Announcement struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Link        string    `gorm:"size:2048" json:"link"`
	Description string    `gorm:"type:text;not null" json:"description"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	newID(&a.ID)
	return nil
}
