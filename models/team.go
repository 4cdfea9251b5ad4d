// models/team.go
package models

import "time"

type Team struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Name      string       `json:"name" gorm:"not null;size:100"`
	Code      string       `json:"code" gorm:"unique;size:10"`
	CreatorID uint         `json:"creatorId" gorm:"not null"`
	Creator   *User        `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Members   []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (Team) TableName() string {
	return "teams"
}
