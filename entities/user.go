package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password string    `gorm:"not null" json:"-"`
	Profile  string    `gorm:"type:text" json:"profile"`
	Email    string    `gorm:"size:255" json:"email,omitempty"`

	Membership *Membership `gorm:"foreignKey:UserID"`
	Timestamp
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	return nil
}

// Membership is the paid plan of a user. Rows are provisioned outside the
// application; the dashboard only reads them.
type Membership struct {
	UserID      uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	PaymentPlan string    `gorm:"size:50;not null" json:"payment_plan"`
	Timestamp
}

func (Membership) TableName() string {
	return "premium_users"
}
