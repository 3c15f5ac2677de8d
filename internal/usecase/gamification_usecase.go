package usecase

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/eslsoft/eqtrainer/internal/entity"
)

const (
	baseXPPerSession = 100
	xpBandUnit       = 500
	highScoreCutoff  = 90
)

var (
	badgeFirstSession = entity.Badge{ID: "first_session", Name: "初出茅庐", Icon: "🐣", Desc: "完成第1次训练"}
	badgeTenSessions  = entity.Badge{ID: "ten_sessions", Name: "熟能生巧", Icon: "🔨", Desc: "完成10次训练"}
	badgeFiftySession = entity.Badge{ID: "fifty_sessions", Name: "情商大师", Icon: "👑", Desc: "完成50次训练"}
	badgeStreakThree  = entity.Badge{ID: "streak_3", Name: "坚持不懈", Icon: "🔥", Desc: "连续3天训练"}
	badgeStreakSeven  = entity.Badge{ID: "streak_7", Name: "自律达人", Icon: "📅", Desc: "连续7天训练"}
	badgeHighScore    = entity.Badge{ID: "high_score", Name: "完美主义", Icon: "✨", Desc: "获得一次90分以上"}
	badgeFiveHigh     = entity.Badge{ID: "five_high_scores", Name: "登峰造极", Icon: "🌟", Desc: "获得5次90分以上"}
)

// GamificationUsecase derives level progress and achievements purely from the
// history list. It is stateless between calls.
type GamificationUsecase interface {
	LevelProgress(history []entity.HistoryRecord) entity.LevelProgress
	Achievements(history []entity.HistoryRecord) []entity.Badge
	DailyChallenge() int
}

// NewGamificationUsecase returns the engine with a real clock.
func NewGamificationUsecase() GamificationUsecase {
	return &gamificationUsecase{clock: time.Now}
}

type gamificationUsecase struct {
	clock func() time.Time
}

// LevelProgress walks XP bands of growing size: level N costs N*500 XP, so
// leftover XP always stays below the current band.
func (u *gamificationUsecase) LevelProgress(history []entity.HistoryRecord) entity.LevelProgress {
	totalXP := 0
	for _, record := range history {
		totalXP += baseXPPerSession + record.Score
	}

	level := 1
	band := xpBandUnit
	for totalXP >= band {
		totalXP -= band
		level++
		band = level * xpBandUnit
	}

	progress := int(math.Round(float64(totalXP) / float64(band) * 100))
	if progress > 100 {
		progress = 100
	}

	return entity.LevelProgress{
		Level:       level,
		XP:          totalXP,
		NextLevelXP: band,
		Progress:    progress,
	}
}

// Achievements returns unlocked badges in check order: session counts, then
// streaks, then high scores.
func (u *gamificationUsecase) Achievements(history []entity.HistoryRecord) []entity.Badge {
	badges := []entity.Badge{}

	if len(history) >= 1 {
		badges = append(badges, badgeFirstSession)
	}
	if len(history) >= 10 {
		badges = append(badges, badgeTenSessions)
	}
	if len(history) >= 50 {
		badges = append(badges, badgeFiftySession)
	}

	streak := longestRecentStreak(history)
	if streak >= 3 {
		badges = append(badges, badgeStreakThree)
	}
	if streak >= 7 {
		badges = append(badges, badgeStreakSeven)
	}

	highScores := 0
	for _, record := range history {
		if record.Score >= highScoreCutoff {
			highScores++
		}
	}
	if highScores >= 1 {
		badges = append(badges, badgeHighScore)
	}
	if highScores >= 5 {
		badges = append(badges, badgeFiveHigh)
	}

	return badges
}

// longestRecentStreak counts consecutive calendar days of activity ending at
// the most recent record. Same-day repeats neither break nor extend the
// streak; any gap over one day stops the scan.
func longestRecentStreak(history []entity.HistoryRecord) int {
	if len(history) == 0 {
		return 0
	}

	sorted := make([]entity.HistoryRecord, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	streak := 1
	last := dayNumber(sorted[0].Timestamp)
	for _, record := range sorted[1:] {
		cur := dayNumber(record.Timestamp)
		switch last - cur {
		case 0:
			// same day
		case 1:
			streak++
			last = cur
		default:
			return streak
		}
	}
	return streak
}

func dayNumber(t time.Time) int {
	year, month, day := t.Date()
	return int(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// DailyChallenge derives a deterministic seed from today's calendar date so
// every client lands on the same challenge without any server coordination.
func (u *gamificationUsecase) DailyChallenge() int {
	now := u.clock()
	seed := now.Year()*10000 + int(now.Month())*100 + now.Day()

	var hash int32
	for _, c := range strconv.Itoa(seed) {
		hash = hash*31 + int32(c)
	}
	if hash < 0 {
		hash = -hash
	}
	return int(hash)
}
