package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddArea(ctx context.Context, area types.Area) error {
	args := pgx.NamedArgs{
		"area_id":  area.AreaID,
		"home_id":  area.HomeID,
		"user_id":  area.UserID,
		"app_code": area.AppCode,
		"name":     area.Name,
		"position": area.Position,
	}

	tag, err := s.db.Exec(ctx, `
		INSERT INTO areas (area_id, home_id, user_id, app_code, name, position)
		VALUES (@area_id, @home_id, @user_id, @app_code, @name, @position)
		ON CONFLICT ON CONSTRAINT pkey_areas_unique DO NOTHING
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrAlreadyExists
	}

	return nil
}

const areaColumns = `area_id, home_id, user_id, app_code, name, position`

func (s *Storage) GetArea(ctx context.Context, areaID, userID, appCode string) (types.Area, error) {
	var a types.Area

	err := s.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM areas
		WHERE area_id = @area_id AND user_id = @user_id AND app_code = @app_code AND deleted = FALSE
	`, areaColumns), pgx.NamedArgs{
		"area_id":  areaID,
		"user_id":  userID,
		"app_code": appCode,
	}).Scan(&a.AreaID, &a.HomeID, &a.UserID, &a.AppCode, &a.Name, &a.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Area{}, ErrNoRows
		}
		return types.Area{}, err
	}

	return a, nil
}

func (s *Storage) QueryAreas(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Area], error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS total_count
		FROM areas
		WHERE %s
		%s
	`, areaColumns, condition.Where(), condition.OrderBy())

	rows, err := s.db.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Area]{}, err
	}
	defer rows.Close()

	areas := make([]types.Area, 0)
	var totalCount uint64

	for rows.Next() {
		var a types.Area

		err := rows.Scan(&a.AreaID, &a.HomeID, &a.UserID, &a.AppCode, &a.Name, &a.Position, &totalCount)
		if err != nil {
			return types.Collection[types.Area]{}, err
		}

		areas = append(areas, a)
	}

	return types.Collection[types.Area]{
		Data:       areas,
		Count:      uint64(len(areas)),
		TotalCount: totalCount,
	}, nil
}

func (s *Storage) SetAreaName(ctx context.Context, areaID, userID, appCode, name string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE areas
		SET name = @name, modified_on = CURRENT_TIMESTAMP
		WHERE area_id = @area_id AND user_id = @user_id AND app_code = @app_code AND deleted = FALSE
	`, pgx.NamedArgs{
		"area_id":  areaID,
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

// DeleteAreas soft deletes every area row matching the conditions and returns
// the number of rows that were removed.
func (s *Storage) DeleteAreas(ctx context.Context, conditions ...ConditionFunc) (int64, error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		UPDATE areas
		SET deleted = TRUE, deleted_on = NOW()
		WHERE %s
	`, condition.Where())

	tag, err := s.db.Exec(ctx, query, condition.NamedArgs())
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
