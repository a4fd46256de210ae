package main

import "fmt"

// Config holds the cost weights and search limits. It is passed by value to
// the optimizer and never mutated during a run.
type Config struct {
	// GradingCost is charged once per non-empty team.
	GradingCost int `json:"gradingCost" mapstructure:"grading_cost"`
	// SizeCost is charged to a person whose team size differs from their preference.
	SizeCost int `json:"sizeCost" mapstructure:"size_cost"`
	// FoeCost is charged per foe sharing a person's team.
	FoeCost int `json:"foeCost" mapstructure:"foe_cost"`
	// FriendCost is charged per requested friend missing from a person's team.
	FriendCost int `json:"friendCost" mapstructure:"friend_cost"`
	// MaxTeamSize caps the number of members per team.
	MaxTeamSize int `json:"maxTeamSize" mapstructure:"max_team_size"`
	// TabuTenure is how many iterations a relocated person stays frozen.
	TabuTenure int `json:"tabuTenure" mapstructure:"tabu_tenure"`
	// StagnationLimit is the number of consecutive non-improving iterations before the search stops.
	StagnationLimit int `json:"stagnationLimit" mapstructure:"stagnation_limit"`
}

// DefaultConfig returns the stock weights: only size complaints cost anything
// until the caller supplies grading, foe and friend costs.
func DefaultConfig() Config {
	return Config{
		GradingCost:     0,
		SizeCost:        1,
		FoeCost:         0,
		FriendCost:      0,
		MaxTeamSize:     3,
		TabuTenure:      5,
		StagnationLimit: 300,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.GradingCost < 0:
		return fmt.Errorf("%w: grading cost %d is negative", ErrInvalidConfig, c.GradingCost)
	case c.SizeCost < 0:
		return fmt.Errorf("%w: size cost %d is negative", ErrInvalidConfig, c.SizeCost)
	case c.FoeCost < 0:
		return fmt.Errorf("%w: foe cost %d is negative", ErrInvalidConfig, c.FoeCost)
	case c.FriendCost < 0:
		return fmt.Errorf("%w: friend cost %d is negative", ErrInvalidConfig, c.FriendCost)
	case c.MaxTeamSize < 1:
		return fmt.Errorf("%w: max team size %d must be at least 1", ErrInvalidConfig, c.MaxTeamSize)
	case c.TabuTenure < 1:
		return fmt.Errorf("%w: tabu tenure %d must be positive", ErrInvalidConfig, c.TabuTenure)
	case c.StagnationLimit < 1:
		return fmt.Errorf("%w: stagnation limit %d must be positive", ErrInvalidConfig, c.StagnationLimit)
	}
	return nil
}
