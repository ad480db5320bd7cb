package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func TestAddAndGetDevice(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	d := types.Device{
		DeviceID:   "storage-test-hc-001",
		HomeID:     "home-1",
		UserID:     "u1",
		AppCode:    "app",
		FamilyName: "HC",
		TypeCode:   "0x45",
	}

	_, _ = s.DeleteDevices(ctx, WithDeviceID(d.DeviceID))

	err := s.AddDevice(ctx, d)
	is.NoErr(err)

	fromDb, err := s.GetDevice(ctx, WithDeviceID(d.DeviceID), WithUserID("u1"), WithAppCode("app"))
	is.NoErr(err)
	is.Equal(fromDb.DeviceID, d.DeviceID)
	is.True(fromDb.IsController())
}

func TestAddDeviceTwiceFails(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	d := types.Device{
		DeviceID:   "storage-test-dup-001",
		HomeID:     "home-1",
		UserID:     "u1",
		AppCode:    "app",
		FamilyName: "sensor",
		TypeCode:   "0x01",
	}

	_, _ = s.DeleteDevices(ctx, WithDeviceID(d.DeviceID))

	is.NoErr(s.AddDevice(ctx, d))

	err := s.AddDevice(ctx, d)
	is.True(errors.Is(err, ErrAlreadyExists))
}

func TestCountersFollowRowOperations(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	err := s.InTx(ctx, func(tx *Storage) error {
		if err := tx.AdjustHomeStatistics(ctx, "home-cnt", "u1", "app", 2, 1); err != nil {
			return err
		}
		return tx.AdjustHomeStatistics(ctx, "home-cnt", "u1", "app", -1, 0)
	})
	is.NoErr(err)

	hs, err := s.GetHomeStatistics(ctx, "home-cnt", "u1", "app")
	is.NoErr(err)
	is.Equal(hs.Entities, int64(1))
	is.Equal(hs.Controllers, int64(1))

	is.NoErr(s.DeleteHomeStatistics(ctx, "home-cnt", "app"))
}

func TestInTxRollsBackOnError(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	d := types.Device{
		DeviceID:   "storage-test-rollback-001",
		HomeID:     "home-1",
		UserID:     "u1",
		AppCode:    "app",
		FamilyName: "sensor",
		TypeCode:   "0x01",
	}

	_, _ = s.DeleteDevices(ctx, WithDeviceID(d.DeviceID))

	boom := errors.New("boom")

	err := s.InTx(ctx, func(tx *Storage) error {
		if err := tx.AddDevice(ctx, d); err != nil {
			return err
		}
		return boom
	})
	is.True(errors.Is(err, boom))

	_, err = s.GetDevice(ctx, WithDeviceID(d.DeviceID), WithUserID("u1"), WithAppCode("app"))
	is.True(errors.Is(err, ErrNoRows))
}

func TestDeleteDevicesReturnsRemovedCount(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	parent := types.Device{
		DeviceID:   "storage-test-hc-002",
		HomeID:     "home-2",
		UserID:     "u1",
		AppCode:    "app",
		FamilyName: "home controller",
		TypeCode:   "0x45",
	}

	_, _ = s.DeleteDevices(ctx, WithHomeID("home-2"))

	is.NoErr(s.AddDevice(ctx, parent))

	for _, id := range []string{"0x45-child-1", "0x45-child-2"} {
		is.NoErr(s.AddDevice(ctx, types.Device{
			DeviceID:   id,
			HomeID:     "home-2",
			UserID:     "u1",
			AppCode:    "app",
			ParentID:   parent.DeviceID,
			FamilyName: "sensor",
			TypeCode:   "0x45",
		}))
	}

	entities, controllers, err := s.CountDevices(ctx, WithHomeID("home-2"), WithUserID("u1"), WithAppCode("app"))
	is.NoErr(err)
	is.Equal(entities, int64(2))
	is.Equal(controllers, int64(1))

	removed, err := s.DeleteDevices(ctx, WithParentID(parent.DeviceID), WithUserID("u1"), WithAppCode("app"))
	is.NoErr(err)
	is.Equal(removed, int64(2))

	removed, err = s.DeleteDevices(ctx, WithDeviceID(parent.DeviceID), WithUserID("u1"), WithAppCode("app"))
	is.NoErr(err)
	is.Equal(removed, int64(1))
}

func TestAreaNameUniquenessLookup(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	_, _ = s.DeleteAreas(ctx, WithHomeID("home-3"))

	is.NoErr(s.AddArea(ctx, types.Area{
		AreaID:  "area-1",
		HomeID:  "home-3",
		UserID:  "u1",
		AppCode: "app",
		Name:    "Living Room",
	}))

	result, err := s.QueryAreas(ctx, WithHomeID("home-3"), WithUserID("u1"), WithAppCode("app"), WithNormalizedName("livingroom"))
	is.NoErr(err)
	is.Equal(result.Count, uint64(1))

	result, err = s.QueryAreas(ctx, WithHomeID("home-3"), WithUserID("u1"), WithAppCode("app"), WithNormalizedName("LIVING  ROOM"))
	is.NoErr(err)
	is.Equal(result.Count, uint64(1))
}
