package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/logger"
)

func unsplash(photo string) string {
	return "https://images.unsplash.com/photo-" + photo + "?w=500&auto=format&fit=crop&q=60"
}

var demoPlayers = []domain.Player{
	{Name: "Virat (King)", Role: "Batsman", BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm medium", Matches: 254, Runs: 12000, Wickets: 4, ImageURL: unsplash("1624526267942-ab4eff054842")},
	{Name: "Boney Mathew", Role: "Captain", BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm spin", Matches: 85, Runs: 3500, Wickets: 45, ImageURL: unsplash("1534438327276-14e5300c3a48")},
	{Name: "Rohit Hitman", Role: "Batsman", BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm offbreak", Matches: 230, Runs: 9500, Wickets: 8, ImageURL: unsplash("1593341646261-0b5c531d8e17")},
	{Name: "Boom Boom Bumrah", Role: "Bowler", BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm fast", Matches: 120, Runs: 500, Wickets: 250, ImageURL: unsplash("1531415074984-05663041d832")},
	{Name: "Sir Jadeja", Role: "All-rounder", BattingStyle: "Left-hand bat", BowlingStyle: "Slow left-arm orthodox", Matches: 180, Runs: 4000, Wickets: 300, ImageURL: unsplash("1624194092288-66236b2f6723")},
	{Name: "Glenn Maxwell", Role: "All-rounder", BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm spin", Matches: 150, Runs: 4500, Wickets: 110, ImageURL: unsplash("1560272564-c83b66b1ad12")},
	{Name: "Mitchell Starc", Role: "Bowler", BattingStyle: "Left-hand bat", BowlingStyle: "Left-arm fast", Matches: 100, Runs: 800, Wickets: 190, ImageURL: unsplash("1599058945522-28d584b6f0ff")},
	{Name: "Steve Smith", Role: "Batsman", BattingStyle: "Right-hand bat", BowlingStyle: "Leg spin", Matches: 210, Runs: 8500, Wickets: 15, ImageURL: unsplash("1542300057-79b88235e121")},
}

type demoFixture struct {
	opponent  string
	dayOffset int
	venue     string
	status    string
	result    string
}

var demoFixtures = []demoFixture{
	{"Super Kings", 0, "Spartans Home Ground", "Live", "Spartans batting at 140/2"},
	{"Thunderbolts CC", 2, "Spartans Home Ground", "Upcoming", "VS"},
	{"Warriors XI", 7, "City Oval", "Upcoming", "VS"},
	{"Titans", 10, "Riverside Stadium", "Upcoming", "VS"},
	{"Panthers", 15, "Spartans Home Ground", "Upcoming", "VS"},
	{"Royal Strikers", -3, "Spartans Home Ground", "Completed", "Won by 4 wickets"},
	{"Eagles", -10, "Eagle Nest", "Completed", "Lost by 15 runs"},
	{"Lions", -20, "City Oval", "Completed", "Won by 8 wickets"},
	{"Dragons", 20, "Dragon's Den", "Upcoming", "VS"},
	{"Vipers", 25, "City Oval", "Upcoming", "VS"},
	{"Tigers", -25, "Jungle Oval", "Completed", "Won by 50 runs"},
	{"Sharks", -30, "Coastal Ground", "Completed", "Lost by 3 wickets"},
}

var demoAchievements = []domain.Achievement{
	{Title: "Region League Champions", AchievementYear: "2023, 2021", Type: domain.AchievementTypeTrophy},
	{Title: "T20 Cup Finalists", AchievementYear: "2022", Type: domain.AchievementTypeMedal},
	{Title: "Fair Play Award", AchievementYear: "2022, 2020", Type: domain.AchievementTypeStar},
	{Title: "Best Youth Academy", AchievementYear: "2023", Type: domain.AchievementTypeAward},
	{Title: "Inter-City Cup Winners", AchievementYear: "2019", Type: domain.AchievementTypeTrophy},
	{Title: "Community Spirit Award", AchievementYear: "2021", Type: domain.AchievementTypeAward},
}

// SeedDemoData fills empty tables with a demonstration roster, fixture list,
// stats and honours board. Tables that already hold rows are left alone.
func SeedDemoData(ctx context.Context, s *Store) error {
	players, err := s.PlayerRepository.List(ctx, false)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		for _, p := range demoPlayers {
			p := p
			if err := s.PlayerRepository.Create(ctx, &p); err != nil {
				return fmt.Errorf("seed player %q: %w", p.Name, err)
			}
			// Demo players go straight onto the public roster.
			if _, err := s.PlayerRepository.SetApproved(ctx, p.ID); err != nil {
				return fmt.Errorf("seed player %q: %w", p.Name, err)
			}
		}
		logger.InfoContext(ctx, "Seeded demo players", "count", len(demoPlayers))
	}

	fixtures, err := s.FixtureRepository.List(ctx)
	if err != nil {
		return err
	}
	if len(fixtures) == 0 {
		now := time.Now().UTC().Truncate(time.Minute)
		for _, f := range demoFixtures {
			m := &domain.MatchFixture{
				Opponent:  f.opponent,
				MatchDate: now.AddDate(0, 0, f.dayOffset),
				Venue:     f.venue,
				Status:    f.status,
				Result:    f.result,
			}
			if err := s.FixtureRepository.Create(ctx, m); err != nil {
				return fmt.Errorf("seed match %q: %w", f.opponent, err)
			}
		}
		logger.InfoContext(ctx, "Seeded demo fixtures", "count", len(demoFixtures))
	}

	if _, err := s.ClubStatsRepository.Get(ctx); errors.Is(err, domain.ErrNotFound) {
		if err := s.ClubStatsRepository.Upsert(ctx, &domain.ClubStats{MatchesWon: 50, ActivePlayers: 120, Championships: 5}); err != nil {
			return fmt.Errorf("seed club stats: %w", err)
		}
	} else if err != nil {
		return err
	}

	achievements, err := s.AchievementRepository.List(ctx)
	if err != nil {
		return err
	}
	if len(achievements) == 0 {
		for _, a := range demoAchievements {
			a := a
			if err := s.AchievementRepository.Create(ctx, &a); err != nil {
				return fmt.Errorf("seed achievement %q: %w", a.Title, err)
			}
		}
		logger.InfoContext(ctx, "Seeded demo achievements", "count", len(demoAchievements))
	}
	return nil
}
