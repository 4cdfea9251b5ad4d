// services/leaderboard_service.go - Individual & Team Leaderboards
package services

import (
	"gorm.io/gorm"
)

// LeaderboardSize caps both leaderboards at the top 50 entries.
const LeaderboardSize = 50

// LeaderboardEntry is one ranked row. ID is a user id or a team id depending
// on the leaderboard type.
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Minutes   int    `json:"minutes"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// Individual ranks every user by summed minutes. Users with no activities
// are included with zero minutes. Ties break on ascending user id so the
// ordering is reproducible.
func (s *LeaderboardService) Individual() ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry

	err := s.db.Raw(`
		SELECT u.id,
		       COALESCE(NULLIF(u.display_name, ''), u.username) AS name,
		       u.avatar AS avatar_url,
		       COALESCE(SUM(a.minutes), 0) AS minutes
		FROM users u
		LEFT JOIN activities a ON a.user_id = u.id
		GROUP BY u.id, u.display_name, u.username, u.avatar
		ORDER BY minutes DESC, u.id ASC
		LIMIT ?
	`, LeaderboardSize).Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	assignRanks(entries)
	return entries, nil
}

// Team ranks teams by minutes summed across member activities. Teams whose
// members have logged nothing drop out of the inner joins entirely.
func (s *LeaderboardService) Team() ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry

	err := s.db.Raw(`
		SELECT t.id,
		       t.name,
		       SUM(a.minutes) AS minutes
		FROM teams t
		JOIN team_members tm ON tm.team_id = t.id
		JOIN activities a ON a.user_id = tm.user_id
		GROUP BY t.id, t.name
		ORDER BY minutes DESC, t.id ASC
		LIMIT ?
	`, LeaderboardSize).Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	assignRanks(entries)
	return entries, nil
}

// assignRanks numbers entries by their sort position, 1-based.
func assignRanks(entries []LeaderboardEntry) {
	for i := range entries {
		entries[i].Rank = i + 1
	}
}
