package auditor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var ErrAlreadyStarted = fmt.Errorf("auditor already started")

// Auditor periodically compares the stored aggregate counters against an
// exact count of the device rows and reports any drift it finds. It never
// repairs anything on its own.
type Auditor interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type StatisticsStorage interface {
	QueryHomeStatistics(ctx context.Context) ([]types.HomeStatistics, error)
	CountDevices(ctx context.Context, conditions ...storage.ConditionFunc) (int64, int64, error)
}

type auditor struct {
	storage   StatisticsStorage
	messenger messaging.MsgContext
	interval  time.Duration

	mu      sync.Mutex
	running bool
	done    chan struct{}
	wg      sync.WaitGroup
}

func New(storage StatisticsStorage, messenger messaging.MsgContext, interval time.Duration) Auditor {
	return &auditor{
		storage:   storage,
		messenger: messenger,
		interval:  interval,
	}
}

func (a *auditor) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return ErrAlreadyStarted
	}

	a.running = true
	a.done = make(chan struct{})

	a.wg.Add(1)
	go a.run(ctx)

	return nil
}

func (a *auditor) Stop(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return nil
	}

	close(a.done)
	a.wg.Wait()
	a.running = false

	return nil
}

func (a *auditor) run(ctx context.Context) {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.audit(ctx)
		case <-a.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (a *auditor) audit(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	stats, err := a.storage.QueryHomeStatistics(ctx)
	if err != nil {
		log.Error("failed to query home statistics", "err", err.Error())
		return
	}

	for _, stat := range stats {
		entities, controllers, err := a.storage.CountDevices(ctx,
			storage.WithHomeID(stat.HomeID),
			storage.WithUserID(stat.UserID),
			storage.WithAppCode(stat.AppCode))
		if err != nil {
			log.Error("failed to count devices", "home_id", stat.HomeID, "err", err.Error())
			continue
		}

		if entities == stat.Entities && controllers == stat.Controllers {
			continue
		}

		log.Warn("statistics drift detected",
			"home_id", stat.HomeID,
			"user_id", stat.UserID,
			"stored_entities", stat.Entities,
			"counted_entities", entities,
			"stored_controllers", stat.Controllers,
			"counted_controllers", controllers,
		)

		err = a.messenger.PublishOnTopic(ctx, &types.StatisticsDrift{
			HomeID:             stat.HomeID,
			UserID:             stat.UserID,
			AppCode:            stat.AppCode,
			StoredEntities:     stat.Entities,
			CountedEntities:    entities,
			StoredControllers:  stat.Controllers,
			CountedControllers: controllers,
			Timestamp:          time.Now().UTC(),
		})
		if err != nil {
			log.Error("failed to publish statistics drift", "home_id", stat.HomeID, "err", err.Error())
		}
	}
}
