package storage

import (
	"context"
	"fmt"

	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

// AdjustHomeStatistics applies counter deltas for a (home, user, app) scope.
// The row is created on first use. Deltas are plain additions inside the
// caller's transaction, never read-modify-write from the application side.
func (s *Storage) AdjustHomeStatistics(ctx context.Context, homeID, userID, appCode string, entities, controllers int64) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO home_statistics (home_id, user_id, app_code, entities, controllers)
		VALUES (@home_id, @user_id, @app_code, @entities, @controllers)
		ON CONFLICT ON CONSTRAINT pkey_home_statistics_unique
		DO UPDATE SET entities = home_statistics.entities + EXCLUDED.entities,
		              controllers = home_statistics.controllers + EXCLUDED.controllers,
		              modified_on = NOW()
	`, pgx.NamedArgs{
		"home_id":     homeID,
		"user_id":     userID,
		"app_code":    appCode,
		"entities":    entities,
		"controllers": controllers,
	})

	return err
}

func (s *Storage) AdjustAreaStatistics(ctx context.Context, areaID, homeID, userID, appCode string, entities, controllers int64) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO area_statistics (area_id, home_id, user_id, app_code, entities, controllers)
		VALUES (@area_id, @home_id, @user_id, @app_code, @entities, @controllers)
		ON CONFLICT ON CONSTRAINT pkey_area_statistics_unique
		DO UPDATE SET entities = area_statistics.entities + EXCLUDED.entities,
		              controllers = area_statistics.controllers + EXCLUDED.controllers,
		              modified_on = NOW()
	`, pgx.NamedArgs{
		"area_id":     areaID,
		"home_id":     homeID,
		"user_id":     userID,
		"app_code":    appCode,
		"entities":    entities,
		"controllers": controllers,
	})

	return err
}

func (s *Storage) GetHomeStatistics(ctx context.Context, homeID, userID, appCode string) (types.HomeStatistics, error) {
	var hs types.HomeStatistics

	err := s.db.QueryRow(ctx, `
		SELECT home_id, user_id, app_code, entities, controllers
		FROM home_statistics
		WHERE home_id = @home_id AND user_id = @user_id AND app_code = @app_code
	`, pgx.NamedArgs{
		"home_id":  homeID,
		"user_id":  userID,
		"app_code": appCode,
	}).Scan(&hs.HomeID, &hs.UserID, &hs.AppCode, &hs.Entities, &hs.Controllers)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.HomeStatistics{}, ErrNoRows
		}
		return types.HomeStatistics{}, err
	}

	return hs, nil
}

func (s *Storage) GetAreaStatistics(ctx context.Context, areaID, userID, appCode string) (types.AreaStatistics, error) {
	var as types.AreaStatistics

	err := s.db.QueryRow(ctx, `
		SELECT area_id, home_id, user_id, app_code, entities, controllers
		FROM area_statistics
		WHERE area_id = @area_id AND user_id = @user_id AND app_code = @app_code
	`, pgx.NamedArgs{
		"area_id":  areaID,
		"user_id":  userID,
		"app_code": appCode,
	}).Scan(&as.AreaID, &as.HomeID, &as.UserID, &as.AppCode, &as.Entities, &as.Controllers)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.AreaStatistics{}, ErrNoRows
		}
		return types.AreaStatistics{}, err
	}

	return as, nil
}

// QueryHomeStatistics returns every stored home counter scope. Used by the
// statistics auditor to walk all scopes.
func (s *Storage) QueryHomeStatistics(ctx context.Context) ([]types.HomeStatistics, error) {
	rows, err := s.db.Query(ctx, `
		SELECT home_id, user_id, app_code, entities, controllers
		FROM home_statistics
		ORDER BY home_id, user_id, app_code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []types.HomeStatistics

	for rows.Next() {
		var hs types.HomeStatistics

		err := rows.Scan(&hs.HomeID, &hs.UserID, &hs.AppCode, &hs.Entities, &hs.Controllers)
		if err != nil {
			return nil, err
		}

		stats = append(stats, hs)
	}

	return stats, nil
}

// CountDevices returns the live number of leaf entities and controllers
// matching the conditions. This is the ground truth the statistics counters
// must agree with at every quiescent point.
func (s *Storage) CountDevices(ctx context.Context, conditions ...ConditionFunc) (entities int64, controllers int64, err error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		SELECT count(*) FILTER (WHERE NOT is_controller) AS entities,
		       count(*) FILTER (WHERE is_controller) AS controllers
		FROM devices
		WHERE %s
	`, condition.Where())

	err = s.db.QueryRow(ctx, query, condition.NamedArgs()).Scan(&entities, &controllers)
	if err != nil {
		return 0, 0, err
	}

	return entities, controllers, nil
}

// DeleteHomeStatistics removes the counter rows for a home across all users.
func (s *Storage) DeleteHomeStatistics(ctx context.Context, homeID, appCode string) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM home_statistics
		WHERE home_id = @home_id AND app_code = @app_code
	`, pgx.NamedArgs{
		"home_id":  homeID,
		"app_code": appCode,
	})

	return err
}

func (s *Storage) DeleteAreaStatistics(ctx context.Context, homeID, appCode string) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM area_statistics
		WHERE home_id = @home_id AND app_code = @app_code
	`, pgx.NamedArgs{
		"home_id":  homeID,
		"app_code": appCode,
	})

	return err
}
