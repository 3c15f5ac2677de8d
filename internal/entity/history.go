package entity

import "time"

// MaxHistory caps the number of retained history records. The oldest record
// is evicted first once the cap is exceeded.
const MaxHistory = 50

// RadarScores breaks a session score down into the six coached dimensions.
type RadarScores struct {
	Empathy            int `json:"empathy"`
	Communication      int `json:"communication"`
	EmotionManagement  int `json:"emotion_management"`
	ConflictResolution int `json:"conflict_resolution"`
	Resilience         int `json:"resilience"`
	SocialInsight      int `json:"social_insight"`
}

// Feedback is the structured evaluation returned by the model for a single
// answer. Every field carries a safe default so rendering never depends on
// the external response shape.
type Feedback struct {
	Score       int         `json:"score"`
	Pros        []string    `json:"pros"`
	Cons        []string    `json:"cons"`
	ZengQuote   string      `json:"zeng_quote"`
	KeyFormula  string      `json:"key_formula"`
	ModelAnswer string      `json:"model_answer"`
	Radar       RadarScores `json:"radar_scores"`
}

// Normalize clamps scores into range and replaces nil slices so the feedback
// is safe to serialize and display as-is.
func (f *Feedback) Normalize() {
	f.Score = clampScore(f.Score)
	if f.Pros == nil {
		f.Pros = []string{}
	}
	if f.Cons == nil {
		f.Cons = []string{}
	}
	f.Radar.Empathy = clampScore(f.Radar.Empathy)
	f.Radar.Communication = clampScore(f.Radar.Communication)
	f.Radar.EmotionManagement = clampScore(f.Radar.EmotionManagement)
	f.Radar.ConflictResolution = clampScore(f.Radar.ConflictResolution)
	f.Radar.Resilience = clampScore(f.Radar.Resilience)
	f.Radar.SocialInsight = clampScore(f.Radar.SocialInsight)
}

// HistoryRecord is one completed training session. Records are kept newest
// first and are append-only from the caller's perspective.
type HistoryRecord struct {
	Timestamp     time.Time `json:"date"`
	ScenarioID    string    `json:"scenarioId"`
	ScenarioTitle string    `json:"scenarioTitle"`
	CategoryID    string    `json:"categoryId,omitempty"`
	UserAnswer    string    `json:"userAnswer"`
	Score         int       `json:"score"`
	Feedback      *Feedback `json:"feedback,omitempty"`
}

// Normalize ensures defaults & constraints before persistence.
func (r *HistoryRecord) Normalize(now time.Time) {
	if r.Timestamp.IsZero() {
		r.Timestamp = now
	}
	r.Score = clampScore(r.Score)
	if r.Feedback != nil {
		r.Feedback.Normalize()
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
