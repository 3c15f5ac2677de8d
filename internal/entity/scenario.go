package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Synthetic category IDs that never hold scenarios of their own.
const (
	CategoryFavorites = "favorites"
	CategoryCustom    = "custom"
)

// Category groups scenarios for browsing and analytics.
type Category struct {
	ID   string `json:"id"`
	Icon string `json:"icon"`
	Name string `json:"name"`
}

// Scenario is a single high-pressure training situation. Builtin scenarios
// are immutable; custom ones are created by the user or generated by the
// model and only ever appended.
type Scenario struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Context     string `json:"context"`
	IsCustom    bool   `json:"isCustom,omitempty"`
}

// NewScenarioID returns a collision-free id for user-created scenarios.
func NewScenarioID() string {
	return "custom_" + uuid.NewString()
}

// Normalize prepares a user-supplied scenario for persistence.
func (s *Scenario) Normalize() error {
	s.Title = strings.TrimSpace(s.Title)
	if s.Title == "" {
		return ErrInvalidScenario
	}
	if s.ID == "" {
		s.ID = NewScenarioID()
	}
	if s.Category == "" {
		s.Category = CategoryCustom
	}
	s.IsCustom = true
	return nil
}
