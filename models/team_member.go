// models/team_member.go
package models

import "time"

// TeamMember links one user to one team. The unique index on UserID enforces
// the one-team-per-user invariant at the storage layer, so concurrent joins
// cannot both land.
type TeamMember struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	TeamID   uint      `json:"teamId" gorm:"not null;index"`
	Team     *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	UserID   uint      `json:"userId" gorm:"not null;uniqueIndex"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	JoinedAt time.Time `json:"joinedAt" gorm:"not null"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
