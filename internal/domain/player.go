package domain

import "time"

type Player struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	BattingStyle     string    `json:"battingStyle"`
	BowlingStyle     string    `json:"bowlingStyle"`
	Matches          int32     `json:"matches"`
	Runs             int32     `json:"runs"`
	Wickets          int32     `json:"wickets"`
	ImageURL         string    `json:"imageUrl"`
	ImageKey         string    `json:"-"`
	ImageContentType string    `json:"imageContentType,omitempty"`
	Approved         Approval  `json:"approved"`
	LegalConsent     bool      `json:"legalConsent"`
	CreatedAt        time.Time `json:"createdAt"`
}
