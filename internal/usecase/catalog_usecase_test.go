package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/eslsoft/eqtrainer/internal/entity"
)

func newTestCatalog(store *fakeBlobStore) (*catalogUsecase, StorageUsecase) {
	storage := newTestStorage(store, nil)
	u := NewCatalogUsecase(testScenarios(), storage).(*catalogUsecase)
	u.pick = func(int) int { return 0 }
	return u, storage
}

func TestAllCategoriesBaseOnly(t *testing.T) {
	u, _ := newTestCatalog(newFakeBlobStore())

	categories := u.AllCategories(context.Background())
	if len(categories) != 8 {
		t.Fatalf("len(categories) = %d, want the 8 base categories", len(categories))
	}
	if categories[0].ID != "work" {
		t.Errorf("categories[0] = %s, want work first", categories[0].ID)
	}
}

func TestAllCategoriesWithFavoritesAndCustom(t *testing.T) {
	u, storage := newTestCatalog(newFakeBlobStore())
	ctx := context.Background()

	if _, err := storage.ToggleFavorite(ctx, "work_001"); err != nil {
		t.Fatal(err)
	}
	if _, err := storage.SaveCustomScenario(ctx, entity.Scenario{Title: "自定义"}); err != nil {
		t.Fatal(err)
	}

	categories := u.AllCategories(ctx)
	if len(categories) != 10 {
		t.Fatalf("len(categories) = %d, want 10", len(categories))
	}
	if categories[0].ID != entity.CategoryFavorites {
		t.Errorf("categories[0] = %s, want favorites first", categories[0].ID)
	}
	if categories[len(categories)-1].ID != entity.CategoryCustom {
		t.Errorf("last category = %s, want custom last", categories[len(categories)-1].ID)
	}
}

func TestAllScenariosIncludesCustom(t *testing.T) {
	u, storage := newTestCatalog(newFakeBlobStore())
	ctx := context.Background()

	saved, err := storage.SaveCustomScenario(ctx, entity.Scenario{Title: "新题目"})
	if err != nil {
		t.Fatal(err)
	}

	all := u.AllScenarios(ctx)
	if len(all) != len(testScenarios())+1 {
		t.Fatalf("len(all) = %d, want builtin + 1", len(all))
	}
	if all[len(all)-1].ID != saved.ID {
		t.Errorf("custom scenario not appended, got %s", all[len(all)-1].ID)
	}
}

func TestRandomScenarioFiltersByCategory(t *testing.T) {
	u, _ := newTestCatalog(newFakeBlobStore())

	got, err := u.RandomScenario(context.Background(), "emotion")
	if err != nil {
		t.Fatalf("RandomScenario: %v", err)
	}
	if got.Category != "emotion" {
		t.Errorf("category = %s, want emotion", got.Category)
	}
}

func TestRandomScenarioUnknownCategoryFallsBack(t *testing.T) {
	u, _ := newTestCatalog(newFakeBlobStore())

	got, err := u.RandomScenario(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("RandomScenario: %v", err)
	}
	if got.ID != "work_001" {
		t.Errorf("got %s, want fallback to the full pool", got.ID)
	}
}

func TestRandomScenarioFavorites(t *testing.T) {
	u, storage := newTestCatalog(newFakeBlobStore())
	ctx := context.Background()

	// No favorites yet: still playable.
	got, err := u.RandomScenario(ctx, entity.CategoryFavorites)
	if err != nil {
		t.Fatalf("RandomScenario: %v", err)
	}
	if got.ID == "" {
		t.Error("expected a fallback scenario")
	}

	if _, err := storage.ToggleFavorite(ctx, "emotion_001"); err != nil {
		t.Fatal(err)
	}
	got, err = u.RandomScenario(ctx, entity.CategoryFavorites)
	if err != nil {
		t.Fatalf("RandomScenario: %v", err)
	}
	if got.ID != "emotion_001" {
		t.Errorf("got %s, want the favorited scenario", got.ID)
	}
}

func TestRandomScenarioEmptyCatalog(t *testing.T) {
	storage := newTestStorage(newFakeBlobStore(), nil)
	u := NewCatalogUsecase(nil, storage).(*catalogUsecase)
	u.pick = func(int) int { return 0 }

	_, err := u.RandomScenario(context.Background(), "")
	if !errors.Is(err, entity.ErrEmptyCatalog) {
		t.Errorf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestScenarioByID(t *testing.T) {
	u, storage := newTestCatalog(newFakeBlobStore())
	ctx := context.Background()

	got, err := u.ScenarioByID(ctx, "work_002")
	if err != nil {
		t.Fatalf("ScenarioByID: %v", err)
	}
	if got.Title != "同事甩锅" {
		t.Errorf("title = %q", got.Title)
	}

	saved, err := storage.SaveCustomScenario(ctx, entity.Scenario{Title: "自定义"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := u.ScenarioByID(ctx, saved.ID); err != nil {
		t.Errorf("custom scenario not resolvable: %v", err)
	}

	_, err = u.ScenarioByID(ctx, "missing")
	if !errors.Is(err, entity.ErrScenarioNotFound) {
		t.Errorf("err = %v, want ErrScenarioNotFound", err)
	}
}

func TestCategoryOf(t *testing.T) {
	u, _ := newTestCatalog(newFakeBlobStore())
	ctx := context.Background()

	if got := u.CategoryOf(ctx, "emotion_001"); got != "emotion" {
		t.Errorf("CategoryOf = %q, want emotion", got)
	}
	if got := u.CategoryOf(ctx, "missing"); got != "" {
		t.Errorf("CategoryOf = %q, want empty for unknown scenario", got)
	}
}
