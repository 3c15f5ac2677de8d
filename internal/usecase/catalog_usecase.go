package usecase

import (
	"context"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/eslsoft/eqtrainer/internal/catalog"
	"github.com/eslsoft/eqtrainer/internal/entity"
)

// CatalogUsecase presents a unified view over the builtin scenario set and
// the user's custom scenarios.
type CatalogUsecase interface {
	AllCategories(ctx context.Context) []entity.Category
	AllScenarios(ctx context.Context) []entity.Scenario
	RandomScenario(ctx context.Context, categoryID string) (entity.Scenario, error)
	ScenarioByID(ctx context.Context, id string) (entity.Scenario, error)
	CategoryOf(ctx context.Context, scenarioID string) string
}

// NewCatalogUsecase merges the immutable builtin list with custom scenarios
// from storage at query time.
func NewCatalogUsecase(builtin []entity.Scenario, storage StorageUsecase) CatalogUsecase {
	return &catalogUsecase{
		builtin: builtin,
		storage: storage,
		pick:    rand.IntN,
	}
}

type catalogUsecase struct {
	builtin []entity.Scenario
	storage StorageUsecase
	pick    func(n int) int
}

func (u *catalogUsecase) AllCategories(ctx context.Context) []entity.Category {
	categories := catalog.Base()
	if len(u.storage.CustomScenarios(ctx)) > 0 {
		categories = append(categories, catalog.CustomCategory())
	}
	if len(u.storage.Favorites(ctx)) > 0 {
		categories = append([]entity.Category{catalog.FavoritesCategory()}, categories...)
	}
	return categories
}

func (u *catalogUsecase) AllScenarios(ctx context.Context) []entity.Scenario {
	return append(append([]entity.Scenario{}, u.builtin...), u.storage.CustomScenarios(ctx)...)
}

func (u *catalogUsecase) RandomScenario(ctx context.Context, categoryID string) (entity.Scenario, error) {
	all := u.AllScenarios(ctx)
	if len(all) == 0 {
		return entity.Scenario{}, entity.ErrEmptyCatalog
	}

	var pool []entity.Scenario
	switch categoryID {
	case entity.CategoryFavorites:
		favorites := u.storage.Favorites(ctx)
		pool = lo.Filter(all, func(s entity.Scenario, _ int) bool {
			return lo.Contains(favorites, s.ID)
		})
		if len(pool) == 0 {
			// A favorited scenario may have disappeared (e.g. the remote
			// overwrote the custom list). Hand back something playable.
			return all[0], nil
		}
	case entity.CategoryCustom:
		pool = u.storage.CustomScenarios(ctx)
	default:
		pool = lo.Filter(all, func(s entity.Scenario, _ int) bool {
			return s.Category == categoryID
		})
	}
	if len(pool) == 0 {
		pool = all
	}

	return pool[u.pick(len(pool))], nil
}

func (u *catalogUsecase) ScenarioByID(ctx context.Context, id string) (entity.Scenario, error) {
	scenario, found := lo.Find(u.AllScenarios(ctx), func(s entity.Scenario) bool {
		return s.ID == id
	})
	if !found {
		return entity.Scenario{}, entity.ErrScenarioNotFound
	}
	return scenario, nil
}

// CategoryOf resolves the category id a scenario belongs to, or "" when the
// scenario is unknown. History records store this at save time so analytics
// never has to infer it.
func (u *catalogUsecase) CategoryOf(ctx context.Context, scenarioID string) string {
	scenario, err := u.ScenarioByID(ctx, scenarioID)
	if err != nil {
		return ""
	}
	return scenario.Category
}
