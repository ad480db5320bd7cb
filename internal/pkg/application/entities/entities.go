package entities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/clients/accesspolicy"
	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/clients/automation"
	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/clients/deviceregistry"
	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/locking"
	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("home-entity-mgmt/entities")

var ErrHomeNotFound = fmt.Errorf("home not found")
var ErrAreaNotFound = fmt.Errorf("area not found")
var ErrParentNotFound = fmt.Errorf("parent device not found")
var ErrMemberNotFound = fmt.Errorf("member not found")
var ErrDeviceNotFound = fmt.Errorf("device not found")
var ErrDeviceAlreadyExists = fmt.Errorf("device already exists")
var ErrDeviceAlreadyShared = fmt.Errorf("device already shared with member")
var ErrNotHomeOwner = fmt.Errorf("user is not the home owner")
var ErrTypeNotRegistered = fmt.Errorf("device type is not registered for app")
var ErrTypeMismatch = fmt.Errorf("device type does not match its registration")
var ErrPairingTokenMismatch = fmt.Errorf("pairing token does not match")
var ErrDeviceInactive = fmt.Errorf("device is not active")
var ErrBadDeviceID = fmt.Errorf("device id does not contain its type code")
var ErrCouldNotBeDeleted = fmt.Errorf("device could not be deleted")

const (
	opCreate  = "createEntity"
	opShare   = "shareEntity"
	opUnshare = "unshareEntity"
	opDelete  = "deleteEntity"
	opMove    = "moveEntity"
)

var operations = []string{opCreate, opShare, opUnshare, opDelete, opMove}

// serviceName is the resource owner reported to the access policy service.
const serviceName = "home-entity-mgmt"

//go:generate moq -rm -out entities_mock.go . EntityManagement
type EntityManagement interface {
	Create(ctx context.Context, device types.Device) error
	Share(ctx context.Context, request types.ShareRequest) ([]types.ShareResult, error)
	Unshare(ctx context.Context, request types.ShareRequest) ([]types.ShareResult, error)
	Delete(ctx context.Context, deviceID, userID, appCode string) error
	MoveToArea(ctx context.Context, deviceID, userID, appCode, areaID string) error

	GetByDeviceID(ctx context.Context, deviceID, userID, appCode string) (types.Device, error)
	Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)

	RegisterTopicMessageHandler(ctx context.Context) error
}

//go:generate moq -rm -out entitystorage_mock.go . EntityStorage
type EntityStorage interface {
	InTx(ctx context.Context, fn func(tx EntityStorage) error) error

	GetHome(ctx context.Context, homeID, userID, appCode string) (types.Home, error)
	GetOwnerHome(ctx context.Context, homeID, appCode string) (types.Home, error)
	GetArea(ctx context.Context, areaID, userID, appCode string) (types.Area, error)

	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
	QueryDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)
	DeviceExists(ctx context.Context, deviceID string) (bool, error)
	AddDevice(ctx context.Context, device types.Device) error
	DeleteDevices(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error)
	SetDeviceArea(ctx context.Context, deviceID, userID, appCode, areaID string) error

	AdjustHomeStatistics(ctx context.Context, homeID, userID, appCode string, entities, controllers int64) error
	AdjustAreaStatistics(ctx context.Context, areaID, homeID, userID, appCode string, entities, controllers int64) error
}

type service struct {
	storage   EntityStorage
	locks     *locking.KeyedMutex
	registry  deviceregistry.DeviceRegistry
	policies  accesspolicy.AccessPolicy
	rules     automation.Automation
	messenger messaging.MsgContext
}

func New(storage EntityStorage, locks *locking.KeyedMutex, registry deviceregistry.DeviceRegistry, policies accesspolicy.AccessPolicy, rules automation.Automation, messenger messaging.MsgContext) EntityManagement {
	s := service{
		storage:   storage,
		locks:     locks,
		registry:  registry,
		policies:  policies,
		rules:     rules,
		messenger: messenger,
	}

	return s
}

func (s service) Create(ctx context.Context, device types.Device) error {
	log := logging.GetFromContext(ctx)

	if device.ParentID != "" && !strings.Contains(device.DeviceID, device.TypeCode) {
		return ErrBadDeviceID
	}

	key := locking.Key(device.UserID, device.HomeID, device.AppCode, opCreate)

	err := s.locks.Acquire(ctx, key)
	if err != nil {
		return err
	}
	defer s.locks.Release(key)

	home, err := s.storage.GetHome(ctx, device.HomeID, device.UserID, device.AppCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrHomeNotFound
		}
		return err
	}

	if device.AreaID != "" {
		_, err = s.storage.GetArea(ctx, device.AreaID, device.UserID, device.AppCode)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return ErrAreaNotFound
			}
			return err
		}
	}

	if device.ParentID != "" {
		parent, err := s.storage.GetDevice(ctx,
			storage.WithDeviceID(device.ParentID),
			storage.WithUserID(device.UserID),
			storage.WithAppCode(device.AppCode))
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return ErrParentNotFound
			}
			return err
		}

		if parent.HomeID != device.HomeID {
			return ErrParentNotFound
		}
	}

	exists, err := s.storage.DeviceExists(ctx, device.DeviceID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDeviceAlreadyExists
	}

	err = s.verifyWithRegistry(ctx, device)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	device.PairingToken = ""
	device.CreatedOn = now
	device.ModifiedOn = now

	p := newPlan()
	entities, controllers := deltaFor(device)

	grantees := []string{device.UserID}

	p.insert(device)
	p.adjustHome(device.HomeID, device.UserID, device.AppCode, entities, controllers)
	if device.AreaID != "" {
		p.adjustArea(device.AreaID, device.HomeID, device.UserID, device.AppCode, entities, controllers)
	}

	// A member creating a device in a shared home also creates the owner's
	// copy, so the owner sees every device in the home.
	if !home.IsOwner {
		owner, err := s.storage.GetOwnerHome(ctx, device.HomeID, device.AppCode)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return ErrHomeNotFound
			}
			return err
		}

		shadow := device
		shadow.UserID = owner.UserID
		shadow.AreaID = ""

		p.insert(shadow)
		p.adjustHome(device.HomeID, owner.UserID, device.AppCode, entities, controllers)

		grantees = append(grantees, owner.UserID)
	}

	err = s.storage.InTx(ctx, func(tx EntityStorage) error {
		return p.apply(ctx, tx)
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrDeviceAlreadyExists
		}
		return err
	}

	for _, userID := range grantees {
		s.grant(ctx, device.DeviceID, userID, device.AppCode)
	}

	err = s.messenger.PublishOnTopic(ctx, &types.EntityCreated{
		DeviceID:  device.DeviceID,
		HomeID:    device.HomeID,
		UserID:    device.UserID,
		AppCode:   device.AppCode,
		Timestamp: now,
	})
	if err != nil {
		log.Error("failed to publish entity created", "device_id", device.DeviceID, "err", err.Error())
	}

	return nil
}

func (s service) verifyWithRegistry(ctx context.Context, device types.Device) error {
	registered, err := s.registry.Verify(ctx, device.AppCode, device.TypeCode)
	if err != nil {
		return err
	}
	if !registered {
		return ErrTypeNotRegistered
	}

	descriptor, err := s.registry.Get(ctx, device.DeviceID)
	if err != nil {
		if errors.Is(err, deviceregistry.ErrDeviceNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	if descriptor.TypeCode != device.TypeCode {
		return ErrTypeMismatch
	}
	if !descriptor.Active {
		return ErrDeviceInactive
	}

	token, err := s.registry.PairingToken(ctx, device.DeviceID)
	if err != nil {
		return err
	}
	if token != device.PairingToken {
		return ErrPairingTokenMismatch
	}

	return nil
}

func (s service) Share(ctx context.Context, request types.ShareRequest) ([]types.ShareResult, error) {
	home, err := s.storage.GetHome(ctx, request.HomeID, request.UserID, request.AppCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}
	if !home.IsOwner {
		return nil, ErrNotHomeOwner
	}

	_, err = s.storage.GetHome(ctx, request.HomeID, request.MemberID, request.AppCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	key := locking.Key(request.UserID, request.HomeID, request.AppCode, opShare)

	results := make([]types.ShareResult, 0, len(request.DeviceIDs))
	shared := make([]string, 0, len(request.DeviceIDs))

	// controllers already duplicated to the member, either before this
	// request or as a cascade earlier in the batch
	cascaded := map[string]bool{}

	for _, deviceID := range request.DeviceIDs {
		err := s.locks.Acquire(ctx, key)
		if err != nil {
			results = append(results, types.ShareResult{DeviceID: deviceID, Error: err.Error()})
			continue
		}

		granted, err := s.shareOne(ctx, request, deviceID, cascaded)
		s.locks.Release(key)

		result := types.ShareResult{DeviceID: deviceID, Shared: err == nil}
		if err != nil {
			result.Error = err.Error()
		} else {
			shared = append(shared, granted...)
		}

		results = append(results, result)
	}

	if len(shared) > 0 {
		s.publishShared(ctx, &types.EntityShared{
			DeviceIDs: lo.Uniq(shared),
			HomeID:    request.HomeID,
			MemberID:  request.MemberID,
			AppCode:   request.AppCode,
			Timestamp: time.Now().UTC(),
		})
	}

	return results, nil
}

// shareOne duplicates a single device row under the member, pulling the
// parent controller along when the member does not have it yet. It returns
// the device ids that were granted to the member.
func (s service) shareOne(ctx context.Context, request types.ShareRequest, deviceID string, cascaded map[string]bool) ([]string, error) {
	device, err := s.storage.GetDevice(ctx,
		storage.WithDeviceID(deviceID),
		storage.WithUserID(request.UserID),
		storage.WithAppCode(request.AppCode))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	if device.HomeID != request.HomeID {
		return nil, ErrDeviceNotFound
	}

	_, err = s.storage.GetDevice(ctx,
		storage.WithDeviceID(deviceID),
		storage.WithUserID(request.MemberID),
		storage.WithAppCode(request.AppCode))
	if err == nil {
		return nil, ErrDeviceAlreadyShared
	}
	if !errors.Is(err, storage.ErrNoRows) {
		return nil, err
	}

	now := time.Now().UTC()

	p := newPlan()
	granted := []string{deviceID}

	copied := device
	copied.UserID = request.MemberID
	// the member assigns their own areas
	copied.AreaID = ""
	copied.ModifiedOn = now

	entities, controllers := deltaFor(device)

	p.insert(copied)
	p.adjustHome(request.HomeID, request.MemberID, request.AppCode, entities, controllers)

	if !device.IsController() && device.ParentID != "" && !cascaded[device.ParentID] {
		_, err = s.storage.GetDevice(ctx,
			storage.WithDeviceID(device.ParentID),
			storage.WithUserID(request.MemberID),
			storage.WithAppCode(request.AppCode))
		if err != nil && !errors.Is(err, storage.ErrNoRows) {
			return nil, err
		}

		if errors.Is(err, storage.ErrNoRows) {
			parent, err := s.storage.GetDevice(ctx,
				storage.WithDeviceID(device.ParentID),
				storage.WithUserID(request.UserID),
				storage.WithAppCode(request.AppCode))
			if err != nil {
				if errors.Is(err, storage.ErrNoRows) {
					return nil, ErrParentNotFound
				}
				return nil, err
			}

			hc := parent
			hc.UserID = request.MemberID
			hc.AreaID = ""
			hc.ModifiedOn = now

			p.insert(hc)
			p.adjustHome(request.HomeID, request.MemberID, request.AppCode, 0, 1)

			granted = append(granted, parent.DeviceID)
		}
	}

	err = s.storage.InTx(ctx, func(tx EntityStorage) error {
		return p.apply(ctx, tx)
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrDeviceAlreadyShared
		}
		return nil, err
	}

	if device.ParentID != "" {
		cascaded[device.ParentID] = true
	}
	if device.IsController() {
		cascaded[device.DeviceID] = true
	}

	for _, id := range granted {
		s.grant(ctx, id, request.MemberID, request.AppCode)
	}

	return granted, nil
}

func (s service) Unshare(ctx context.Context, request types.ShareRequest) ([]types.ShareResult, error) {
	home, err := s.storage.GetHome(ctx, request.HomeID, request.UserID, request.AppCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}
	if !home.IsOwner {
		return nil, ErrNotHomeOwner
	}

	key := locking.Key(request.UserID, request.HomeID, request.AppCode, opUnshare)

	results := make([]types.ShareResult, 0, len(request.DeviceIDs))
	revoked := make([]string, 0, len(request.DeviceIDs))

	// ids already removed as part of an earlier controller cascade
	handled := map[string]bool{}

	for _, deviceID := range request.DeviceIDs {
		if handled[deviceID] {
			results = append(results, types.ShareResult{DeviceID: deviceID, Shared: true})
			continue
		}

		err := s.locks.Acquire(ctx, key)
		if err != nil {
			results = append(results, types.ShareResult{DeviceID: deviceID, Error: err.Error()})
			continue
		}

		removed, err := s.unshareOne(ctx, request, deviceID, handled)
		s.locks.Release(key)

		result := types.ShareResult{DeviceID: deviceID, Shared: err == nil}
		if err != nil {
			result.Error = err.Error()
		} else {
			revoked = append(revoked, removed...)
		}

		results = append(results, result)
	}

	if len(revoked) > 0 {
		s.publishUnshared(ctx, &types.EntityUnshared{
			DeviceIDs: lo.Uniq(revoked),
			HomeID:    request.HomeID,
			MemberID:  request.MemberID,
			AppCode:   request.AppCode,
			Timestamp: time.Now().UTC(),
		})
	}

	return results, nil
}

// unshareOne removes the member's copy of a device. Unsharing a controller
// also removes the member's copies of all its children.
func (s service) unshareOne(ctx context.Context, request types.ShareRequest, deviceID string, handled map[string]bool) ([]string, error) {
	device, err := s.storage.GetDevice(ctx,
		storage.WithDeviceID(deviceID),
		storage.WithUserID(request.MemberID),
		storage.WithAppCode(request.AppCode))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	if device.HomeID != request.HomeID {
		return nil, ErrDeviceNotFound
	}

	p := newPlan()
	removed := []string{deviceID}

	if device.IsController() {
		children, err := s.storage.QueryDevices(ctx,
			storage.WithParentID(deviceID),
			storage.WithUserID(request.MemberID),
			storage.WithAppCode(request.AppCode))
		if err != nil {
			return nil, err
		}

		if len(children.Data) > 0 {
			p.remove(
				storage.WithParentID(deviceID),
				storage.WithUserID(request.MemberID),
				storage.WithAppCode(request.AppCode))
		}

		for _, child := range children.Data {
			entities, controllers := deltaFor(child)
			p.adjustHome(request.HomeID, request.MemberID, request.AppCode, -entities, -controllers)
			if child.AreaID != "" {
				p.adjustArea(child.AreaID, request.HomeID, request.MemberID, request.AppCode, -entities, -controllers)
			}

			handled[child.DeviceID] = true
			removed = append(removed, child.DeviceID)
		}
	}

	p.remove(
		storage.WithDeviceID(deviceID),
		storage.WithUserID(request.MemberID),
		storage.WithAppCode(request.AppCode))

	entities, controllers := deltaFor(device)
	p.adjustHome(request.HomeID, request.MemberID, request.AppCode, -entities, -controllers)
	if device.AreaID != "" {
		p.adjustArea(device.AreaID, request.HomeID, request.MemberID, request.AppCode, -entities, -controllers)
	}

	err = s.storage.InTx(ctx, func(tx EntityStorage) error {
		return p.apply(ctx, tx)
	})
	if err != nil {
		return nil, err
	}

	for _, id := range removed {
		s.revoke(ctx, id, request.MemberID, request.AppCode)
	}

	return removed, nil
}

func (s service) Delete(ctx context.Context, deviceID, userID, appCode string) error {
	log := logging.GetFromContext(ctx)

	device, err := s.storage.GetDevice(ctx,
		storage.WithDeviceID(deviceID),
		storage.WithUserID(userID),
		storage.WithAppCode(appCode))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrDeviceNotFound
		}
		return err
	}

	home, err := s.storage.GetHome(ctx, device.HomeID, userID, appCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrHomeNotFound
		}
		return err
	}

	key := locking.Key(userID, device.HomeID, appCode, opDelete)

	err = s.locks.Acquire(ctx, key)
	if err != nil {
		return err
	}
	defer s.locks.Release(key)

	// owners delete every copy of the device, members only their own
	rows := types.Collection[types.Device]{Data: []types.Device{device}}
	if home.IsOwner {
		rows, err = s.storage.QueryDevices(ctx,
			storage.WithDeviceID(deviceID),
			storage.WithAppCode(appCode))
		if err != nil {
			return err
		}
	}

	p := newPlan()
	affected := make([]string, 0, len(rows.Data))
	removed := []string{deviceID}

	for _, row := range rows.Data {
		affected = append(affected, row.UserID)

		if device.IsController() {
			children, err := s.storage.QueryDevices(ctx,
				storage.WithParentID(deviceID),
				storage.WithUserID(row.UserID),
				storage.WithAppCode(appCode))
			if err != nil {
				return err
			}

			if len(children.Data) > 0 {
				p.remove(
					storage.WithParentID(deviceID),
					storage.WithUserID(row.UserID),
					storage.WithAppCode(appCode))
			}

			for _, child := range children.Data {
				entities, controllers := deltaFor(child)
				p.adjustHome(row.HomeID, row.UserID, appCode, -entities, -controllers)
				if child.AreaID != "" {
					p.adjustArea(child.AreaID, row.HomeID, row.UserID, appCode, -entities, -controllers)
				}

				removed = append(removed, child.DeviceID)
			}
		}

		p.remove(
			storage.WithDeviceID(deviceID),
			storage.WithUserID(row.UserID),
			storage.WithAppCode(appCode))

		entities, controllers := deltaFor(row)
		p.adjustHome(row.HomeID, row.UserID, appCode, -entities, -controllers)
		if row.AreaID != "" {
			p.adjustArea(row.AreaID, row.HomeID, row.UserID, appCode, -entities, -controllers)
		}
	}

	removed = lo.Uniq(removed)

	err = s.storage.InTx(ctx, func(tx EntityStorage) error {
		err := p.apply(ctx, tx)
		if err != nil {
			return err
		}

		// automations referencing a removed device must be detached before
		// the delete is allowed to commit
		if home.IsOwner {
			for _, id := range removed {
				_, err := s.rules.DeleteDevice(ctx, id)
				if err != nil {
					log.Error("automation cleanup failed", "device_id", id, "err", err.Error())
					return ErrCouldNotBeDeleted
				}
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, uid := range affected {
		for _, id := range removed {
			s.revoke(ctx, id, uid, appCode)
		}
	}

	err = s.messenger.PublishOnTopic(ctx, &types.EntityRemoved{
		DeviceID:  deviceID,
		HomeID:    device.HomeID,
		UserIDs:   affected,
		AppCode:   appCode,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log.Error("failed to publish entity removed", "device_id", deviceID, "err", err.Error())
	}

	return nil
}

func (s service) MoveToArea(ctx context.Context, deviceID, userID, appCode, areaID string) error {
	device, err := s.storage.GetDevice(ctx,
		storage.WithDeviceID(deviceID),
		storage.WithUserID(userID),
		storage.WithAppCode(appCode))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrDeviceNotFound
		}
		return err
	}

	if areaID != "" {
		area, err := s.storage.GetArea(ctx, areaID, userID, appCode)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return ErrAreaNotFound
			}
			return err
		}

		if area.HomeID != device.HomeID {
			return ErrAreaNotFound
		}
	}

	key := locking.Key(userID, device.HomeID, appCode, opMove)

	err = s.locks.Acquire(ctx, key)
	if err != nil {
		return err
	}
	defer s.locks.Release(key)

	return s.storage.InTx(ctx, func(tx EntityStorage) error {
		// the pre-lock read only located the home; a concurrent move can have
		// changed the area since, so the outgoing delta comes from the row as
		// it stands under the lock
		device, err := tx.GetDevice(ctx,
			storage.WithDeviceID(deviceID),
			storage.WithUserID(userID),
			storage.WithAppCode(appCode))
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return ErrDeviceNotFound
			}
			return err
		}

		if device.AreaID == areaID {
			return nil
		}

		entities, controllers := deltaFor(device)

		err = tx.SetDeviceArea(ctx, deviceID, userID, appCode, areaID)
		if err != nil {
			return err
		}

		if device.AreaID != "" {
			err = tx.AdjustAreaStatistics(ctx, device.AreaID, device.HomeID, userID, appCode, -entities, -controllers)
			if err != nil {
				return err
			}
		}

		if areaID != "" {
			err = tx.AdjustAreaStatistics(ctx, areaID, device.HomeID, userID, appCode, entities, controllers)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (s service) GetByDeviceID(ctx context.Context, deviceID, userID, appCode string) (types.Device, error) {
	device, err := s.storage.GetDevice(ctx,
		storage.WithDeviceID(deviceID),
		storage.WithUserID(userID),
		storage.WithAppCode(appCode))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Device{}, ErrDeviceNotFound
		}
		return types.Device{}, err
	}

	return device, nil
}

func (s service) Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error) {
	return s.storage.QueryDevices(ctx, conditions...)
}

func (s service) RegisterTopicMessageHandler(ctx context.Context) error {
	return s.messenger.RegisterTopicMessageHandler("homes.homeRemoved", NewHomeRemovedHandler(s.locks))
}

// NewHomeRemovedHandler rejects any queued lock waiters for a home that was
// just removed, so they fail fast instead of operating on a gone home.
func NewHomeRemovedHandler(locks *locking.KeyedMutex) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "home-removed")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		m := types.HomeRemoved{}
		err = json.Unmarshal(itm.Body(), &m)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		for _, userID := range m.UserIDs {
			for _, op := range operations {
				locks.Purge(locking.Key(userID, m.HomeID, m.AppCode, op))
			}
		}

		log.Debug("purged lock queues for removed home", "home_id", m.HomeID)
	}
}

func (s service) grant(ctx context.Context, deviceID, userID, appCode string) {
	log := logging.GetFromContext(ctx)

	ok, err := s.policies.Assign(ctx, "control", deviceID, serviceName, userID, appCode)
	if err != nil {
		log.Error("failed to assign access policy", "device_id", deviceID, "user_id", userID, "err", err.Error())
		return
	}
	if !ok {
		log.Warn("access policy assignment was rejected", "device_id", deviceID, "user_id", userID)
	}
}

func (s service) revoke(ctx context.Context, deviceID, userID, appCode string) {
	log := logging.GetFromContext(ctx)

	ok, err := s.policies.Unassign(ctx, "control", deviceID, serviceName, userID, appCode)
	if err != nil {
		log.Error("failed to unassign access policy", "device_id", deviceID, "user_id", userID, "err", err.Error())
		return
	}
	if !ok {
		log.Warn("access policy unassignment was rejected", "device_id", deviceID, "user_id", userID)
	}
}

func (s service) publishShared(ctx context.Context, evt *types.EntityShared) {
	err := s.messenger.PublishOnTopic(ctx, evt)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to publish entity shared", "err", err.Error())
	}
}

func (s service) publishUnshared(ctx context.Context, evt *types.EntityUnshared) {
	err := s.messenger.PublishOnTopic(ctx, evt)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to publish entity unshared", "err", err.Error())
	}
}
