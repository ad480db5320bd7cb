package entities

import (
	"context"

	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/home-entity-mgmt/pkg/types"
)

type entityStorageImpl struct {
	storage *storage.Storage
}

// NewStorage adapts the postgres storage to the coordinator's view of it.
func NewStorage(s *storage.Storage) EntityStorage {
	return &entityStorageImpl{storage: s}
}

func (i *entityStorageImpl) InTx(ctx context.Context, fn func(tx EntityStorage) error) error {
	return i.storage.InTx(ctx, func(tx *storage.Storage) error {
		return fn(&entityStorageImpl{storage: tx})
	})
}

func (i *entityStorageImpl) GetHome(ctx context.Context, homeID, userID, appCode string) (types.Home, error) {
	return i.storage.GetHome(ctx, homeID, userID, appCode)
}

func (i *entityStorageImpl) GetOwnerHome(ctx context.Context, homeID, appCode string) (types.Home, error) {
	return i.storage.GetOwnerHome(ctx, homeID, appCode)
}

func (i *entityStorageImpl) GetArea(ctx context.Context, areaID, userID, appCode string) (types.Area, error) {
	return i.storage.GetArea(ctx, areaID, userID, appCode)
}

func (i *entityStorageImpl) GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
	return i.storage.GetDevice(ctx, conditions...)
}

func (i *entityStorageImpl) QueryDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error) {
	return i.storage.QueryDevices(ctx, conditions...)
}

func (i *entityStorageImpl) DeviceExists(ctx context.Context, deviceID string) (bool, error) {
	return i.storage.DeviceExists(ctx, deviceID)
}

func (i *entityStorageImpl) AddDevice(ctx context.Context, device types.Device) error {
	return i.storage.AddDevice(ctx, device)
}

func (i *entityStorageImpl) DeleteDevices(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error) {
	return i.storage.DeleteDevices(ctx, conditions...)
}

func (i *entityStorageImpl) SetDeviceArea(ctx context.Context, deviceID, userID, appCode, areaID string) error {
	return i.storage.SetDeviceArea(ctx, deviceID, userID, appCode, areaID)
}

func (i *entityStorageImpl) AdjustHomeStatistics(ctx context.Context, homeID, userID, appCode string, entities, controllers int64) error {
	return i.storage.AdjustHomeStatistics(ctx, homeID, userID, appCode, entities, controllers)
}

func (i *entityStorageImpl) AdjustAreaStatistics(ctx context.Context, areaID, homeID, userID, appCode string, entities, controllers int64) error {
	return i.storage.AdjustAreaStatistics(ctx, areaID, homeID, userID, appCode, entities, controllers)
}
