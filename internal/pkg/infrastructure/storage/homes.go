package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddHome(ctx context.Context, home types.Home) error {
	args := pgx.NamedArgs{
		"home_id":       home.HomeID,
		"user_id":       home.UserID,
		"app_code":      home.AppCode,
		"owner_user_id": home.OwnerUserID,
		"is_owner":      home.IsOwner,
		"name":          home.Name,
		"position":      home.Position,
	}

	tag, err := s.db.Exec(ctx, `
		INSERT INTO homes (home_id, user_id, app_code, owner_user_id, is_owner, name, position)
		VALUES (@home_id, @user_id, @app_code, @owner_user_id, @is_owner, @name, @position)
		ON CONFLICT ON CONSTRAINT pkey_homes_unique DO NOTHING
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrAlreadyExists
	}

	return nil
}

const homeColumns = `home_id, user_id, app_code, owner_user_id, is_owner, name, position`

func (s *Storage) GetHome(ctx context.Context, homeID, userID, appCode string) (types.Home, error) {
	var h types.Home

	err := s.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM homes
		WHERE home_id = @home_id AND user_id = @user_id AND app_code = @app_code AND deleted = FALSE
	`, homeColumns), pgx.NamedArgs{
		"home_id":  homeID,
		"user_id":  userID,
		"app_code": appCode,
	}).Scan(&h.HomeID, &h.UserID, &h.AppCode, &h.OwnerUserID, &h.IsOwner, &h.Name, &h.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Home{}, ErrNoRows
		}
		return types.Home{}, err
	}

	return h, nil
}

// GetOwnerHome returns the owner's row for a home, the one with is_owner set.
func (s *Storage) GetOwnerHome(ctx context.Context, homeID, appCode string) (types.Home, error) {
	var h types.Home

	err := s.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM homes
		WHERE home_id = @home_id AND app_code = @app_code AND is_owner = TRUE AND deleted = FALSE
	`, homeColumns), pgx.NamedArgs{
		"home_id":  homeID,
		"app_code": appCode,
	}).Scan(&h.HomeID, &h.UserID, &h.AppCode, &h.OwnerUserID, &h.IsOwner, &h.Name, &h.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Home{}, ErrNoRows
		}
		return types.Home{}, err
	}

	return h, nil
}

func (s *Storage) QueryHomes(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Home], error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS total_count
		FROM homes
		WHERE %s
		%s
	`, homeColumns, condition.Where(), condition.OrderBy())

	rows, err := s.db.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Home]{}, err
	}
	defer rows.Close()

	homes := make([]types.Home, 0)
	var totalCount uint64

	for rows.Next() {
		var h types.Home

		err := rows.Scan(&h.HomeID, &h.UserID, &h.AppCode, &h.OwnerUserID, &h.IsOwner, &h.Name, &h.Position, &totalCount)
		if err != nil {
			return types.Collection[types.Home]{}, err
		}

		homes = append(homes, h)
	}

	return types.Collection[types.Home]{
		Data:       homes,
		Count:      uint64(len(homes)),
		TotalCount: totalCount,
	}, nil
}

func (s *Storage) SetHomeName(ctx context.Context, homeID, userID, appCode, name string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE homes
		SET name = @name, modified_on = CURRENT_TIMESTAMP
		WHERE home_id = @home_id AND user_id = @user_id AND app_code = @app_code AND deleted = FALSE
	`, pgx.NamedArgs{
		"home_id":  homeID,
		"user_id":  userID,
		"app_code": appCode,
		"name":     name,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// DeleteHomes soft deletes every home row matching the conditions and returns
// the number of rows that were removed.
func (s *Storage) DeleteHomes(ctx context.Context, conditions ...ConditionFunc) (int64, error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		UPDATE homes
		SET deleted = TRUE, deleted_on = NOW()
		WHERE %s
	`, condition.Where())

	tag, err := s.db.Exec(ctx, query, condition.NamedArgs())
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
