package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/eqtrainer/internal/entity"
	"github.com/eslsoft/eqtrainer/internal/repository"
)

// Pusher replicates local state to the remote blob server. Implementations
// must be safe to call from a goroutine and swallow their own errors.
type Pusher interface {
	Push(ctx context.Context) error
}

// StorageUsecase groups the four client blobs behind one injectable service.
// Reads degrade to defaults on missing or corrupt data and never fail;
// writes report local persistence errors only, a failed remote push never
// affects the result.
type StorageUsecase interface {
	Settings(ctx context.Context) entity.Settings
	SaveSettings(ctx context.Context, settings entity.Settings) error
	History(ctx context.Context) []entity.HistoryRecord
	SaveHistory(ctx context.Context, record entity.HistoryRecord) (entity.HistoryRecord, error)
	Favorites(ctx context.Context) []string
	ToggleFavorite(ctx context.Context, scenarioID string) (bool, error)
	IsFavorite(ctx context.Context, scenarioID string) bool
	CustomScenarios(ctx context.Context) []entity.Scenario
	SaveCustomScenario(ctx context.Context, scenario entity.Scenario) (entity.Scenario, error)
}

// NewStorageUsecase wires the blob store with default behaviour. pusher may
// be nil when sync is disabled.
func NewStorageUsecase(store repository.BlobStore, pusher Pusher, defaults entity.Settings, logger *logrus.Logger) StorageUsecase {
	return &storageUsecase{
		store:    store,
		pusher:   pusher,
		defaults: defaults,
		logger:   logger,
		clock:    time.Now,
	}
}

type storageUsecase struct {
	store    repository.BlobStore
	pusher   Pusher
	defaults entity.Settings
	logger   *logrus.Logger
	clock    func() time.Time
}

func (u *storageUsecase) Settings(ctx context.Context) entity.Settings {
	var stored entity.Settings
	if !u.readBlob(ctx, repository.KeySettings, &stored) {
		return u.defaults
	}
	return stored.Merge(u.defaults)
}

func (u *storageUsecase) SaveSettings(ctx context.Context, settings entity.Settings) error {
	return u.writeBlob(ctx, repository.KeySettings, settings)
}

func (u *storageUsecase) History(ctx context.Context) []entity.HistoryRecord {
	var history []entity.HistoryRecord
	u.readBlob(ctx, repository.KeyHistory, &history)
	return history
}

func (u *storageUsecase) SaveHistory(ctx context.Context, record entity.HistoryRecord) (entity.HistoryRecord, error) {
	if record.ScenarioID == "" {
		return entity.HistoryRecord{}, entity.ErrInvalidHistoryItem
	}
	record.Normalize(u.clock())

	history := append([]entity.HistoryRecord{record}, u.History(ctx)...)
	if len(history) > entity.MaxHistory {
		history = history[:entity.MaxHistory]
	}
	if err := u.writeBlob(ctx, repository.KeyHistory, history); err != nil {
		return entity.HistoryRecord{}, err
	}
	return record, nil
}

func (u *storageUsecase) Favorites(ctx context.Context) []string {
	var favorites []string
	u.readBlob(ctx, repository.KeyFavorites, &favorites)
	return favorites
}

func (u *storageUsecase) ToggleFavorite(ctx context.Context, scenarioID string) (bool, error) {
	favorites := u.Favorites(ctx)
	added := !lo.Contains(favorites, scenarioID)
	if added {
		favorites = append(favorites, scenarioID)
	} else {
		favorites = lo.Without(favorites, scenarioID)
	}
	if err := u.writeBlob(ctx, repository.KeyFavorites, favorites); err != nil {
		return false, err
	}
	return added, nil
}

func (u *storageUsecase) IsFavorite(ctx context.Context, scenarioID string) bool {
	return lo.Contains(u.Favorites(ctx), scenarioID)
}

func (u *storageUsecase) CustomScenarios(ctx context.Context) []entity.Scenario {
	var scenarios []entity.Scenario
	u.readBlob(ctx, repository.KeyCustomScenarios, &scenarios)
	return scenarios
}

func (u *storageUsecase) SaveCustomScenario(ctx context.Context, scenario entity.Scenario) (entity.Scenario, error) {
	if err := scenario.Normalize(); err != nil {
		return entity.Scenario{}, err
	}
	scenarios := append(u.CustomScenarios(ctx), scenario)
	if err := u.writeBlob(ctx, repository.KeyCustomScenarios, scenarios); err != nil {
		return entity.Scenario{}, err
	}
	return scenario, nil
}

// readBlob decodes the named blob into dst. Missing or corrupt blobs leave
// dst untouched and report false; corruption is logged, never surfaced.
func (u *storageUsecase) readBlob(ctx context.Context, key string, dst any) bool {
	raw, err := u.store.Get(ctx, key)
	if err != nil {
		u.logger.WithError(err).Warnf("read blob %s", key)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		u.logger.WithError(err).Warnf("decode blob %s", key)
		return false
	}
	return true
}

func (u *storageUsecase) writeBlob(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode blob %s: %w", key, err)
	}
	if err := u.store.Put(ctx, key, raw); err != nil {
		return err
	}
	u.pushAsync(ctx)
	return nil
}

// pushAsync fires a best-effort replication of the now-current state. Two
// rapid mutations may race their pushes; the later snapshot always reflects
// the newer state, so the remote converges regardless of response order.
func (u *storageUsecase) pushAsync(ctx context.Context) {
	if u.pusher == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		_ = u.pusher.Push(ctx)
	}()
}
