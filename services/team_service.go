// services/team_service.go - Team Membership Business Logic
package services

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"
	"walk30/models"

	"gorm.io/gorm"
)

const (
	MinTeamNameLength = 3
	MaxTeamNameLength = 30

	joinCodeLength  = 6
	joinCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	maxJoinCodeAttempts = 5
)

// errCodeCollision marks a join-code unique violation inside the create
// transaction so the caller can re-generate and retry.
var errCodeCollision = errors.New("join code collision")

type TeamService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db, now: time.Now}
}

// CreateTeam inserts a team with a freshly generated join code and enrolls
// the creator as its first member, both in one transaction.
func (s *TeamService) CreateTeam(creatorID uint, name string) (*models.Team, error) {
	name, err := validateTeamName(name)
	if err != nil {
		return nil, err
	}

	// Friendly pre-check; the unique membership index still backstops races.
	if s.hasMembership(creatorID) {
		return nil, ErrAlreadyInTeam
	}

	for attempt := 0; attempt < maxJoinCodeAttempts; attempt++ {
		team := &models.Team{
			Name:      name,
			Code:      generateJoinCode(),
			CreatorID: creatorID,
			CreatedAt: s.now(),
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(team).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return errCodeCollision
				}
				return err
			}

			member := &models.TeamMember{
				TeamID:   team.ID,
				UserID:   creatorID,
				JoinedAt: s.now(),
			}
			if err := tx.Create(member).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrAlreadyInTeam
				}
				return err
			}
			return nil
		})

		if errors.Is(err, errCodeCollision) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return team, nil
	}

	return nil, errors.New("could not allocate a unique join code")
}

// JoinTeam enrolls the user in the team identified by the join code.
func (s *TeamService) JoinTeam(userID uint, code string) (*models.Team, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, validationErrorf("code", "code is required")
	}

	var team models.Team
	if err := s.db.Where("code = ?", code).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	if s.hasMembership(userID) {
		return nil, ErrAlreadyInTeam
	}

	member := &models.TeamMember{
		TeamID:   team.ID,
		UserID:   userID,
		JoinedAt: s.now(),
	}
	if err := s.db.Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyInTeam
		}
		return nil, err
	}

	return &team, nil
}

// GetUserTeam returns the single team the user belongs to, with members and
// their user records preloaded, or ErrNoTeam.
func (s *TeamService) GetUserTeam(userID uint) (*models.Team, error) {
	var member models.TeamMember
	if err := s.db.Where("user_id = ?", userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoTeam
		}
		return nil, err
	}

	var team models.Team
	err := s.db.Preload("Members").
		Preload("Members.User").
		First(&team, member.TeamID).Error
	if err != nil {
		return nil, err
	}

	return &team, nil
}

func validateTeamName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < MinTeamNameLength || n > MaxTeamNameLength {
		return "", validationErrorf("name",
			"team name must be between %d and %d characters", MinTeamNameLength, MaxTeamNameLength)
	}
	return name, nil
}

// hasMembership checks whether the user already belongs to any team.
func (s *TeamService) hasMembership(userID uint) bool {
	var count int64
	s.db.Model(&models.TeamMember{}).Where("user_id = ?", userID).Count(&count)
	return count > 0
}

// generateJoinCode returns a short human-enterable code. Each character is
// drawn uniformly from the charset. Uniqueness is owned by the database;
// callers retry on gorm.ErrDuplicatedKey.
func generateJoinCode() string {
	charsetLen := big.NewInt(int64(len(joinCodeCharset)))
	code := make([]byte, joinCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		code[i] = joinCodeCharset[n.Int64()]
	}
	return string(code)
}
