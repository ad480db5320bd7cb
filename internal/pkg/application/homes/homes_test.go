package homes

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestCreateHomeMarksCreatorAsOwner(t *testing.T) {
	is := is.New(t)

	m := &HomeStorageMock{
		AddHomeFunc: func(ctx context.Context, home types.Home) error {
			return nil
		},
	}

	svc := New(m, noopMessenger())

	err := svc.CreateHome(context.Background(), types.Home{HomeID: "home-1", UserID: "alice", AppCode: "app", Name: "Villa"})
	is.NoErr(err)

	added := m.AddHomeCalls()[0].Home
	is.True(added.IsOwner)
	is.Equal(added.OwnerUserID, "alice")
}

func TestCreateHomeTwiceFails(t *testing.T) {
	is := is.New(t)

	m := &HomeStorageMock{
		AddHomeFunc: func(ctx context.Context, home types.Home) error {
			return storage.ErrAlreadyExists
		},
	}

	svc := New(m, noopMessenger())

	err := svc.CreateHome(context.Background(), types.Home{HomeID: "home-1", UserID: "alice", AppCode: "app"})
	is.True(errors.Is(err, ErrHomeAlreadyExists))
}

func TestAddMemberCreatesMembershipRow(t *testing.T) {
	is := is.New(t)

	m := &HomeStorageMock{
		GetHomeFunc: func(ctx context.Context, homeID, userID, appCode string) (types.Home, error) {
			return types.Home{HomeID: homeID, UserID: userID, AppCode: appCode, IsOwner: true, Name: "Villa"}, nil
		},
		AddHomeFunc: func(ctx context.Context, home types.Home) error {
			return nil
		},
	}

	svc := New(m, noopMessenger())

	err := svc.AddMember(context.Background(), "home-1", "app", "alice", "bob")
	is.NoErr(err)

	member := m.AddHomeCalls()[0].Home
	is.Equal(member.UserID, "bob")
	is.Equal(member.OwnerUserID, "alice")
	is.True(!member.IsOwner)
	is.Equal(member.Name, "Villa")
}

func TestAddMemberRequiresOwnership(t *testing.T) {
	is := is.New(t)

	m := &HomeStorageMock{
		GetHomeFunc: func(ctx context.Context, homeID, userID, appCode string) (types.Home, error) {
			return types.Home{HomeID: homeID, UserID: userID, AppCode: appCode, OwnerUserID: "alice"}, nil
		},
	}

	svc := New(m, noopMessenger())

	err := svc.AddMember(context.Background(), "home-1", "app", "bob", "carol")
	is.True(errors.Is(err, ErrNotHomeOwner))
}

func TestDeleteHomeCascadesAndPublishes(t *testing.T) {
	is := is.New(t)

	order := []string{}
	var published messaging.TopicMessage

	m := &HomeStorageMock{
		GetHomeFunc: func(ctx context.Context, homeID, userID, appCode string) (types.Home, error) {
			return types.Home{HomeID: homeID, UserID: userID, AppCode: appCode, IsOwner: true}, nil
		},
		QueryHomesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Home], error) {
			return types.Collection[types.Home]{
				Data: []types.Home{
					{HomeID: "home-1", UserID: "alice"},
					{HomeID: "home-1", UserID: "bob"},
				},
				Count: 2,
			}, nil
		},
		DeleteDevicesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error) {
			order = append(order, "devices")
			return 3, nil
		},
		DeleteAreasFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error) {
			order = append(order, "areas")
			return 2, nil
		},
		DeleteHomesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error) {
			order = append(order, "homes")
			return 2, nil
		},
		DeleteAreaStatisticsFunc: func(ctx context.Context, homeID, appCode string) error {
			order = append(order, "areastats")
			return nil
		},
		DeleteHomeStatisticsFunc: func(ctx context.Context, homeID, appCode string) error {
			order = append(order, "homestats")
			return nil
		},
	}
	m.InTxFunc = func(ctx context.Context, fn func(tx HomeStorage) error) error {
		return fn(m)
	}

	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			published = message
			return nil
		},
	}

	svc := New(m, msgCtx)

	err := svc.DeleteHome(context.Background(), "home-1", "alice", "app")
	is.NoErr(err)

	is.Equal(order, []string{"devices", "areas", "homes", "areastats", "homestats"})
	is.Equal(published.TopicName(), "homes.homeRemoved")

	evt := published.(*types.HomeRemoved)
	is.Equal(evt.UserIDs, []string{"alice", "bob"})
}

func TestDeleteHomeRequiresOwnership(t *testing.T) {
	is := is.New(t)

	m := &HomeStorageMock{
		GetHomeFunc: func(ctx context.Context, homeID, userID, appCode string) (types.Home, error) {
			return types.Home{HomeID: homeID, UserID: userID, AppCode: appCode, OwnerUserID: "alice"}, nil
		},
	}

	svc := New(m, noopMessenger())

	err := svc.DeleteHome(context.Background(), "home-1", "bob", "app")
	is.True(errors.Is(err, ErrNotHomeOwner))
}

func TestCreateAreaRejectsCollidingNames(t *testing.T) {
	is := is.New(t)

	m := &HomeStorageMock{
		GetHomeFunc: func(ctx context.Context, homeID, userID, appCode string) (types.Home, error) {
			return types.Home{HomeID: homeID, UserID: userID, AppCode: appCode, IsOwner: true}, nil
		},
		QueryAreasFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Area], error) {
			c := &storage.Condition{}
			for _, condition := range conditions {
				c = condition(c)
			}
			if c.NormalizedName == "livingroom" {
				return types.Collection[types.Area]{Data: []types.Area{{AreaID: "area-9", Name: "Living Room"}}, Count: 1}, nil
			}
			return types.Collection[types.Area]{}, nil
		},
		AddAreaFunc: func(ctx context.Context, area types.Area) error {
			return nil
		},
	}

	svc := New(m, noopMessenger())

	err := svc.CreateArea(context.Background(), types.Area{AreaID: "area-1", HomeID: "home-1", UserID: "alice", AppCode: "app", Name: "  living ROOM "})
	is.True(errors.Is(err, ErrAreaAlreadyExists))

	err = svc.CreateArea(context.Background(), types.Area{AreaID: "area-1", HomeID: "home-1", UserID: "alice", AppCode: "app", Name: "Kitchen"})
	is.NoErr(err)
}

func TestRenameAreaChecksNameCollision(t *testing.T) {
	is := is.New(t)

	m := &HomeStorageMock{
		GetAreaFunc: func(ctx context.Context, areaID, userID, appCode string) (types.Area, error) {
			return types.Area{AreaID: areaID, HomeID: "home-1", UserID: userID, AppCode: appCode, Name: "Kitchen"}, nil
		},
		QueryAreasFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Area], error) {
			return types.Collection[types.Area]{Data: []types.Area{{AreaID: "area-2", Name: "Living Room"}}, Count: 1}, nil
		},
	}

	svc := New(m, noopMessenger())

	err := svc.RenameArea(context.Background(), "area-1", "alice", "app", "Living Room")
	is.True(errors.Is(err, ErrAreaAlreadyExists))
}

func TestRenameAreaToVariantOfItsOwnNameSucceeds(t *testing.T) {
	is := is.New(t)

	m := &HomeStorageMock{
		GetAreaFunc: func(ctx context.Context, areaID, userID, appCode string) (types.Area, error) {
			return types.Area{AreaID: areaID, HomeID: "home-1", UserID: userID, AppCode: appCode, Name: "living room"}, nil
		},
		QueryAreasFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Area], error) {
			// the normalized name matches the area being renamed and nothing else
			return types.Collection[types.Area]{Data: []types.Area{{AreaID: "area-1", Name: "living room"}}, Count: 1}, nil
		},
		SetAreaNameFunc: func(ctx context.Context, areaID, userID, appCode, name string) error {
			return nil
		},
	}

	svc := New(m, noopMessenger())

	err := svc.RenameArea(context.Background(), "area-1", "alice", "app", "Living Room")
	is.NoErr(err)
	is.Equal(len(m.SetAreaNameCalls()), 1)
}

func noopMessenger() *messaging.MsgContextMock {
	return &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}
}
