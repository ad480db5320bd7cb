package homes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var ErrHomeNotFound = fmt.Errorf("home not found")
var ErrHomeAlreadyExists = fmt.Errorf("home already exists")
var ErrNotHomeOwner = fmt.Errorf("user is not the home owner")
var ErrMemberAlreadyAdded = fmt.Errorf("member is already added to home")
var ErrAreaNotFound = fmt.Errorf("area not found")
var ErrAreaAlreadyExists = fmt.Errorf("an area with that name already exists")

//go:generate moq -rm -out homes_mock.go . HomeManagement
type HomeManagement interface {
	CreateHome(ctx context.Context, home types.Home) error
	AddMember(ctx context.Context, homeID, appCode, userID, memberID string) error
	RenameHome(ctx context.Context, homeID, userID, appCode, name string) error
	DeleteHome(ctx context.Context, homeID, userID, appCode string) error

	GetHome(ctx context.Context, homeID, userID, appCode string) (types.Home, error)
	QueryHomes(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Home], error)

	CreateArea(ctx context.Context, area types.Area) error
	RenameArea(ctx context.Context, areaID, userID, appCode, name string) error
	QueryAreas(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Area], error)
}

//go:generate moq -rm -out homestorage_mock.go . HomeStorage
type HomeStorage interface {
	InTx(ctx context.Context, fn func(tx HomeStorage) error) error

	AddHome(ctx context.Context, home types.Home) error
	GetHome(ctx context.Context, homeID, userID, appCode string) (types.Home, error)
	QueryHomes(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Home], error)
	SetHomeName(ctx context.Context, homeID, userID, appCode, name string) error
	DeleteHomes(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error)

	AddArea(ctx context.Context, area types.Area) error
	GetArea(ctx context.Context, areaID, userID, appCode string) (types.Area, error)
	QueryAreas(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Area], error)
	SetAreaName(ctx context.Context, areaID, userID, appCode, name string) error
	DeleteAreas(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error)

	DeleteDevices(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error)
	DeleteHomeStatistics(ctx context.Context, homeID, appCode string) error
	DeleteAreaStatistics(ctx context.Context, homeID, appCode string) error
}

type service struct {
	storage   HomeStorage
	messenger messaging.MsgContext
}

func New(storage HomeStorage, messenger messaging.MsgContext) HomeManagement {
	return service{
		storage:   storage,
		messenger: messenger,
	}
}

func (s service) CreateHome(ctx context.Context, home types.Home) error {
	if home.HomeID == "" {
		home.HomeID = uuid.NewString()
	}

	home.IsOwner = true
	home.OwnerUserID = home.UserID

	err := s.storage.AddHome(ctx, home)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrHomeAlreadyExists
		}
		return err
	}

	return nil
}

func (s service) AddMember(ctx context.Context, homeID, appCode, userID, memberID string) error {
	home, err := s.storage.GetHome(ctx, homeID, userID, appCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrHomeNotFound
		}
		return err
	}

	if !home.IsOwner {
		return ErrNotHomeOwner
	}

	member := types.Home{
		HomeID:      homeID,
		UserID:      memberID,
		AppCode:     appCode,
		OwnerUserID: userID,
		Name:        home.Name,
		Position:    home.Position,
	}

	err = s.storage.AddHome(ctx, member)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrMemberAlreadyAdded
		}
		return err
	}

	return nil
}

func (s service) RenameHome(ctx context.Context, homeID, userID, appCode, name string) error {
	_, err := s.storage.GetHome(ctx, homeID, userID, appCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrHomeNotFound
		}
		return err
	}

	return s.storage.SetHomeName(ctx, homeID, userID, appCode, name)
}

// DeleteHome removes a home with everything in it, for the owner and every
// member. Counters go with the home, so no per device bookkeeping is needed.
func (s service) DeleteHome(ctx context.Context, homeID, userID, appCode string) error {
	log := logging.GetFromContext(ctx)

	home, err := s.storage.GetHome(ctx, homeID, userID, appCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrHomeNotFound
		}
		return err
	}

	if !home.IsOwner {
		return ErrNotHomeOwner
	}

	members, err := s.storage.QueryHomes(ctx, storage.WithHomeID(homeID), storage.WithAppCode(appCode))
	if err != nil {
		return err
	}

	err = s.storage.InTx(ctx, func(tx HomeStorage) error {
		_, err := tx.DeleteDevices(ctx, storage.WithHomeID(homeID), storage.WithAppCode(appCode))
		if err != nil {
			return err
		}

		_, err = tx.DeleteAreas(ctx, storage.WithHomeID(homeID), storage.WithAppCode(appCode))
		if err != nil {
			return err
		}

		_, err = tx.DeleteHomes(ctx, storage.WithHomeID(homeID), storage.WithAppCode(appCode))
		if err != nil {
			return err
		}

		err = tx.DeleteAreaStatistics(ctx, homeID, appCode)
		if err != nil {
			return err
		}

		return tx.DeleteHomeStatistics(ctx, homeID, appCode)
	})
	if err != nil {
		return err
	}

	err = s.messenger.PublishOnTopic(ctx, &types.HomeRemoved{
		HomeID: homeID,
		UserIDs: lo.Map(members.Data, func(h types.Home, _ int) string {
			return h.UserID
		}),
		AppCode:   appCode,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log.Error("failed to publish home removed", "home_id", homeID, "err", err.Error())
	}

	return nil
}

func (s service) GetHome(ctx context.Context, homeID, userID, appCode string) (types.Home, error) {
	home, err := s.storage.GetHome(ctx, homeID, userID, appCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Home{}, ErrHomeNotFound
		}
		return types.Home{}, err
	}

	return home, nil
}

func (s service) QueryHomes(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Home], error) {
	return s.storage.QueryHomes(ctx, conditions...)
}

func (s service) CreateArea(ctx context.Context, area types.Area) error {
	if area.AreaID == "" {
		area.AreaID = uuid.NewString()
	}

	_, err := s.storage.GetHome(ctx, area.HomeID, area.UserID, area.AppCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrHomeNotFound
		}
		return err
	}

	taken, err := s.areaNameTaken(ctx, area.HomeID, area.UserID, area.AppCode, area.Name, "")
	if err != nil {
		return err
	}
	if taken {
		return ErrAreaAlreadyExists
	}

	err = s.storage.AddArea(ctx, area)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrAreaAlreadyExists
		}
		return err
	}

	return nil
}

func (s service) RenameArea(ctx context.Context, areaID, userID, appCode, name string) error {
	area, err := s.storage.GetArea(ctx, areaID, userID, appCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAreaNotFound
		}
		return err
	}

	taken, err := s.areaNameTaken(ctx, area.HomeID, userID, appCode, name, areaID)
	if err != nil {
		return err
	}
	if taken {
		return ErrAreaAlreadyExists
	}

	return s.storage.SetAreaName(ctx, areaID, userID, appCode, name)
}

func (s service) QueryAreas(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Area], error) {
	return s.storage.QueryAreas(ctx, conditions...)
}

// area names are unique per home and user after whitespace and case folding,
// so "Living Room" and "livingroom" collide. excludeAreaID keeps a rename to
// a variant of the area's own name from colliding with itself.
func (s service) areaNameTaken(ctx context.Context, homeID, userID, appCode, name, excludeAreaID string) (bool, error) {
	existing, err := s.storage.QueryAreas(ctx,
		storage.WithHomeID(homeID),
		storage.WithUserID(userID),
		storage.WithAppCode(appCode),
		storage.WithNormalizedName(name))
	if err != nil {
		return false, err
	}

	for _, a := range existing.Data {
		if a.AreaID != excludeAreaID {
			return true, nil
		}
	}

	return false, nil
}
