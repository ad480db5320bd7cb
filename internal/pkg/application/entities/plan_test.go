package entities

import (
	"context"
	"testing"

	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestPlanMergesDeltasPerScope(t *testing.T) {
	is := is.New(t)

	p := newPlan()
	p.adjustHome("home-1", "alice", "app", 1, 0)
	p.adjustHome("home-1", "alice", "app", 1, 1)
	p.adjustHome("home-1", "bob", "app", 1, 0)

	m := &EntityStorageMock{
		AdjustHomeStatisticsFunc: func(ctx context.Context, homeID, userID, appCode string, entities, controllers int64) error {
			return nil
		},
	}

	is.NoErr(p.apply(context.Background(), m))

	calls := m.AdjustHomeStatisticsCalls()
	is.Equal(len(calls), 2)
	is.Equal(calls[0].UserID, "alice")
	is.Equal(calls[0].Entities, int64(2))
	is.Equal(calls[0].Controllers, int64(1))
	is.Equal(calls[1].UserID, "bob")
	is.Equal(calls[1].Entities, int64(1))
}

func TestPlanSkipsZeroDeltas(t *testing.T) {
	is := is.New(t)

	p := newPlan()
	p.adjustHome("home-1", "alice", "app", 1, 0)
	p.adjustHome("home-1", "alice", "app", -1, 0)

	m := &EntityStorageMock{}

	// a nil AdjustHomeStatisticsFunc would panic if the zero delta leaked through
	is.NoErr(p.apply(context.Background(), m))
}

func TestPlanRunsRemovalsBeforeInserts(t *testing.T) {
	is := is.New(t)

	p := newPlan()
	p.insert(types.Device{DeviceID: "lamp-1", UserID: "bob", AppCode: "app"})
	p.remove(storage.WithDeviceID("lamp-1"), storage.WithUserID("bob"))

	order := []string{}

	m := &EntityStorageMock{
		AddDeviceFunc: func(ctx context.Context, device types.Device) error {
			order = append(order, "insert")
			return nil
		},
		DeleteDevicesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error) {
			order = append(order, "remove")
			return 1, nil
		},
	}

	is.NoErr(p.apply(context.Background(), m))
	is.Equal(order[0], "remove")
	is.Equal(order[1], "insert")
}
