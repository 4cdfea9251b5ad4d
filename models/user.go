// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"displayName"`
	Avatar      string  `json:"avatar"`
	IsGuest     bool    `gorm:"default:false" json:"isGuest"`

	// Timestamps
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	LastLogin time.Time `json:"lastLogin"`

	// Relationships
	Activities []Activity `gorm:"foreignKey:UserID" json:"activities,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Name returns the user's public display name, falling back to the username.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
