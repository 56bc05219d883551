package domain

import "time"

type MatchFixture struct {
	ID        int64     `json:"id"`
	Opponent  string    `json:"opponent"`
	MatchDate time.Time `json:"matchDate"`
	Venue     string    `json:"venue"`
	Status    string    `json:"status"` // Live, Upcoming, Completed
	Result    string    `json:"result"`
}

type AchievementType string

const (
	AchievementTypeTrophy AchievementType = "TROPHY"
	AchievementTypeMedal  AchievementType = "MEDAL"
	AchievementTypeStar   AchievementType = "STAR"
	AchievementTypeAward  AchievementType = "AWARD"
)

// Valid reports whether t is one of the known achievement types.
func (t AchievementType) Valid() bool {
	switch t {
	case AchievementTypeTrophy, AchievementTypeMedal, AchievementTypeStar, AchievementTypeAward:
		return true
	}
	return false
}

type Achievement struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	AchievementYear string          `json:"achievementYear"`
	Type            AchievementType `json:"type"`
}

type GalleryItem struct {
	ID               int64  `json:"id"`
	Category         string `json:"category"`
	SubCategory      string `json:"subCategory"`
	Caption          string `json:"caption"`
	ImageURL         string `json:"imageUrl"`
	ImageKey         string `json:"-"`
	ImageContentType string `json:"imageContentType,omitempty"`
}

// ClubStats is a singleton record shown on the home page.
type ClubStats struct {
	MatchesWon    int32 `json:"matchesWon"`
	ActivePlayers int32 `json:"activePlayers"`
	Championships int32 `json:"championships"`
}
