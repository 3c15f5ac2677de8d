package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/eslsoft/eqtrainer/internal/catalog"
	"github.com/eslsoft/eqtrainer/internal/entity"
)

// radarFloor keeps the radar chart from collapsing into a point when the
// user has no scored sessions yet.
const radarFloor = 10

var radarDimensions = []string{
	catalog.CategoryWork,
	catalog.CategoryEmotion,
	catalog.CategorySocial,
	catalog.CategoryEmergency,
}

// AnalyticsUsecase aggregates history by category for dashboards and
// weakness-based recommendations.
type AnalyticsUsecase interface {
	BasicStats(ctx context.Context) entity.BasicStats
	CategoryStats(ctx context.Context) map[string]entity.CategoryStat
	Weakness(ctx context.Context) entity.Weakness
	RadarData(ctx context.Context) entity.RadarData
}

// NewAnalyticsUsecase reads history through storage and resolves categories
// through the catalog.
func NewAnalyticsUsecase(storage StorageUsecase, cat CatalogUsecase) AnalyticsUsecase {
	return &analyticsUsecase{storage: storage, catalog: cat}
}

type analyticsUsecase struct {
	storage StorageUsecase
	catalog CatalogUsecase
}

func (u *analyticsUsecase) BasicStats(ctx context.Context) entity.BasicStats {
	history := u.storage.History(ctx)
	if len(history) == 0 {
		return entity.BasicStats{}
	}

	total := 0
	for _, record := range history {
		total += record.Score
	}
	return entity.BasicStats{
		TotalSessions: len(history),
		AverageScore:  roundDiv(total, len(history)),
	}
}

func (u *analyticsUsecase) CategoryStats(ctx context.Context) map[string]entity.CategoryStat {
	stats := make(map[string]entity.CategoryStat)
	for _, cat := range u.catalog.AllCategories(ctx) {
		stats[cat.ID] = entity.CategoryStat{Name: cat.Name}
	}

	for _, record := range u.storage.History(ctx) {
		id := record.CategoryID
		if id == "" {
			// Records written before category ids were stored at save time.
			id = u.catalog.CategoryOf(ctx, record.ScenarioID)
		}
		stat, ok := stats[id]
		if !ok {
			continue
		}
		stat.TotalScore += record.Score
		stat.Count++
		stats[id] = stat
	}

	for id, stat := range stats {
		if stat.Count > 0 {
			stat.Average = roundDiv(stat.TotalScore, stat.Count)
			stats[id] = stat
		}
	}
	return stats
}

func (u *analyticsUsecase) Weakness(ctx context.Context) entity.Weakness {
	stats := u.CategoryStats(ctx)

	lowest := 101
	var weakest string
	// Walk categories in display order so ties resolve deterministically.
	for _, cat := range u.catalog.AllCategories(ctx) {
		stat := stats[cat.ID]
		if stat.Count > 0 && stat.Average < lowest {
			lowest = stat.Average
			weakest = stat.Name
		}
	}

	if weakest == "" {
		return entity.Weakness{Suggestion: "快开始第一次训练吧！"}
	}
	return entity.Weakness{
		Dimension:  &weakest,
		Suggestion: fmt.Sprintf("在「%s」方面还有提升空间（平均 %d分），建议多加练习。", weakest, lowest),
	}
}

func (u *analyticsUsecase) RadarData(ctx context.Context) entity.RadarData {
	stats := u.CategoryStats(ctx)

	labels := make([]string, 0, len(radarDimensions))
	values := make([]int, 0, len(radarDimensions))
	hasAnyData := false
	for _, id := range radarDimensions {
		stat := stats[id]
		labels = append(labels, stat.Name)
		values = append(values, stat.Average)
		if stat.Average > 0 {
			hasAnyData = true
		}
	}

	if !hasAnyData {
		for i := range values {
			values[i] = radarFloor
		}
	}
	return entity.RadarData{Labels: labels, Values: values}
}

func roundDiv(total, count int) int {
	return int(math.Round(float64(total) / float64(count)))
}
