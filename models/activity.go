// models/activity.go
package models

import "time"

// Activity is one logged walking session. Rows are immutable once created:
// there is no edit or delete path.
type Activity struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Date      time.Time `json:"date" gorm:"not null;index"`
	Minutes   int       `json:"minutes" gorm:"not null"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Activity) TableName() string {
	return "activities"
}
