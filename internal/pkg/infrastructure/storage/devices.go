package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddDevice(ctx context.Context, device types.Device) error {
	var extra any
	if len(device.Extra) > 0 {
		extra = string(device.Extra)
	}

	args := pgx.NamedArgs{
		"device_id":     device.DeviceID,
		"home_id":       device.HomeID,
		"user_id":       device.UserID,
		"app_code":      device.AppCode,
		"area_id":       device.AreaID,
		"parent_id":     device.ParentID,
		"family_name":   device.FamilyName,
		"type_code":     device.TypeCode,
		"is_controller": device.IsController(),
		"category":      device.Category,
		"connection":    device.Connection,
		"vendor":        device.Vendor,
		"name":          device.Name,
		"position":      device.Position,
		"mac":           device.MAC,
		"extra":         extra,
	}

	tag, err := s.db.Exec(ctx, `
		INSERT INTO devices (device_id, home_id, user_id, app_code, area_id, parent_id, family_name, type_code, is_controller, category, connection, vendor, name, position, mac, extra)
		VALUES (@device_id, @home_id, @user_id, @app_code, @area_id, @parent_id, @family_name, @type_code, @is_controller, @category, @connection, @vendor, @name, @position, @mac, @extra)
		ON CONFLICT ON CONSTRAINT pkey_devices_unique DO NOTHING
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrAlreadyExists
	}

	return nil
}

const deviceColumns = `device_id, home_id, user_id, app_code, area_id, parent_id, family_name, type_code, category, connection, vendor, name, position, mac, extra, created_on, modified_on`

func scanDevice(row pgx.Row) (types.Device, error) {
	var d types.Device
	var extra []byte

	err := row.Scan(&d.DeviceID, &d.HomeID, &d.UserID, &d.AppCode, &d.AreaID, &d.ParentID,
		&d.FamilyName, &d.TypeCode, &d.Category, &d.Connection, &d.Vendor,
		&d.Name, &d.Position, &d.MAC, &extra, &d.CreatedOn, &d.ModifiedOn)
	if err != nil {
		return types.Device{}, err
	}

	d.Extra = extra

	return d, nil
}

func (s *Storage) GetDevice(ctx context.Context, conditions ...ConditionFunc) (types.Device, error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`SELECT %s FROM devices WHERE %s`, deviceColumns, condition.Where())

	d, err := scanDevice(s.db.QueryRow(ctx, query, condition.NamedArgs()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Device{}, ErrNoRows
		}
		return types.Device{}, err
	}

	return d, nil
}

func (s *Storage) QueryDevices(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Device], error) {
	condition := newCondition(conditions...)

	offsetLimit := ""
	if condition.offset != nil {
		offsetLimit += "OFFSET @offset "
	}
	if condition.limit != nil {
		offsetLimit += "LIMIT @limit "
	}

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS total_count
		FROM devices
		WHERE %s
		%s
		%s
	`, deviceColumns, condition.Where(), condition.OrderBy(), offsetLimit)

	rows, err := s.db.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Device]{}, err
	}
	defer rows.Close()

	devices := make([]types.Device, 0)
	var totalCount uint64

	for rows.Next() {
		var d types.Device
		var extra []byte

		err := rows.Scan(&d.DeviceID, &d.HomeID, &d.UserID, &d.AppCode, &d.AreaID, &d.ParentID,
			&d.FamilyName, &d.TypeCode, &d.Category, &d.Connection, &d.Vendor,
			&d.Name, &d.Position, &d.MAC, &extra, &d.CreatedOn, &d.ModifiedOn, &totalCount)
		if err != nil {
			return types.Collection[types.Device]{}, err
		}

		d.Extra = extra
		devices = append(devices, d)
	}

	return types.Collection[types.Device]{
		Data:       devices,
		Count:      uint64(len(devices)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: totalCount,
	}, nil
}

// DeviceExists reports whether any user holds a live row for the device id,
// regardless of home or app scope.
func (s *Storage) DeviceExists(ctx context.Context, deviceID string) (bool, error) {
	var exists bool

	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM devices WHERE device_id = @device_id AND deleted = FALSE)
	`, pgx.NamedArgs{"device_id": deviceID}).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// DeleteDevices soft deletes every device row matching the conditions and
// returns the number of rows that were removed.
func (s *Storage) DeleteDevices(ctx context.Context, conditions ...ConditionFunc) (int64, error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		UPDATE devices
		SET deleted = TRUE, deleted_on = NOW()
		WHERE %s
	`, condition.Where())

	tag, err := s.db.Exec(ctx, query, condition.NamedArgs())
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// SetDeviceArea reassigns a device row to another area, or to no area when
// areaID is empty.
func (s *Storage) SetDeviceArea(ctx context.Context, deviceID, userID, appCode, areaID string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE devices
		SET area_id = @area_id, modified_on = CURRENT_TIMESTAMP
		WHERE device_id = @device_id AND user_id = @user_id AND app_code = @app_code AND deleted = FALSE
	`, pgx.NamedArgs{
		"device_id": deviceID,
		"user_id":   userID,
		"app_code":  appCode,
		"area_id":   areaID,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) SetDeviceName(ctx context.Context, deviceID, userID, appCode, name string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE devices
		SET name = @name, modified_on = CURRENT_TIMESTAMP
		WHERE device_id = @device_id AND user_id = @user_id AND app_code = @app_code AND deleted = FALSE
	`, pgx.NamedArgs{
		"device_id": deviceID,
		"user_id":   userID,
		"app_code":  appCode,
		"name":      name,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
