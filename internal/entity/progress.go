package entity

// LevelProgress is the derived XP standing. It is recomputed from the full
// history on demand and never persisted.
type LevelProgress struct {
	Level       int `json:"level"`
	XP          int `json:"xp"`
	NextLevelXP int `json:"nextLevelXp"`
	Progress    int `json:"progress"`
}

// Badge is an unlocked achievement.
type Badge struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Desc string `json:"desc"`
}

// BasicStats summarizes the whole history.
type BasicStats struct {
	TotalSessions int `json:"totalSessions"`
	AverageScore  int `json:"averageScore"`
}

// CategoryStat aggregates session scores for one category.
type CategoryStat struct {
	Name       string `json:"name"`
	TotalScore int    `json:"totalScore"`
	Count      int    `json:"count"`
	Average    int    `json:"average"`
}

// Weakness names the category with the lowest average score. Dimension is
// nil when no category has any data yet.
type Weakness struct {
	Dimension  *string `json:"dimension"`
	Suggestion string  `json:"suggestion"`
}

// RadarData is a chart-ready series over the core ability dimensions.
type RadarData struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}
