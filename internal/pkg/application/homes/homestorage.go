package homes

import (
	"context"

	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/home-entity-mgmt/pkg/types"
)

type homeStorageImpl struct {
	storage *storage.Storage
}

func NewStorage(s *storage.Storage) HomeStorage {
	return &homeStorageImpl{storage: s}
}

func (i *homeStorageImpl) InTx(ctx context.Context, fn func(tx HomeStorage) error) error {
	return i.storage.InTx(ctx, func(tx *storage.Storage) error {
		return fn(&homeStorageImpl{storage: tx})
	})
}

func (i *homeStorageImpl) AddHome(ctx context.Context, home types.Home) error {
	return i.storage.AddHome(ctx, home)
}

func (i *homeStorageImpl) GetHome(ctx context.Context, homeID, userID, appCode string) (types.Home, error) {
	return i.storage.GetHome(ctx, homeID, userID, appCode)
}

func (i *homeStorageImpl) QueryHomes(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Home], error) {
	return i.storage.QueryHomes(ctx, conditions...)
}

func (i *homeStorageImpl) SetHomeName(ctx context.Context, homeID, userID, appCode, name string) error {
	return i.storage.SetHomeName(ctx, homeID, userID, appCode, name)
}

func (i *homeStorageImpl) DeleteHomes(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error) {
	return i.storage.DeleteHomes(ctx, conditions...)
}

func (i *homeStorageImpl) AddArea(ctx context.Context, area types.Area) error {
	return i.storage.AddArea(ctx, area)
}

func (i *homeStorageImpl) GetArea(ctx context.Context, areaID, userID, appCode string) (types.Area, error) {
	return i.storage.GetArea(ctx, areaID, userID, appCode)
}

func (i *homeStorageImpl) QueryAreas(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Area], error) {
	return i.storage.QueryAreas(ctx, conditions...)
}

func (i *homeStorageImpl) SetAreaName(ctx context.Context, areaID, userID, appCode, name string) error {
	return i.storage.SetAreaName(ctx, areaID, userID, appCode, name)
}

func (i *homeStorageImpl) DeleteAreas(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error) {
	return i.storage.DeleteAreas(ctx, conditions...)
}

func (i *homeStorageImpl) DeleteDevices(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error) {
	return i.storage.DeleteDevices(ctx, conditions...)
}

func (i *homeStorageImpl) DeleteHomeStatistics(ctx context.Context, homeID, appCode string) error {
	return i.storage.DeleteHomeStatistics(ctx, homeID, appCode)
}

func (i *homeStorageImpl) DeleteAreaStatistics(ctx context.Context, homeID, appCode string) error {
	return i.storage.DeleteAreaStatistics(ctx, homeID, appCode)
}
