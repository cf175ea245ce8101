package model

import "time"

type User struct {
	DTO
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex" validate:"required,email" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `gorm:"type:varchar(255)" json:"firstName"`
	LastName  string `gorm:"type:varchar(255)" json:"lastName"`
	Role      string `gorm:"not null;default:'CUSTOMER'" json:"role"`

	Orders []Order `gorm:"foreignKey:UserId" json:"-"`
}

type RegisterUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"omitempty,max=255"`
	LastName  string `json:"lastName" validate:"omitempty,max=255"`
}

// RefreshToken is the persisted half of a login session. Expired rows are
// purged by the daily cleanup job.
type RefreshToken struct {
	DTO
	UserId    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
	Token     string    `gorm:"type:varchar(512);not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
