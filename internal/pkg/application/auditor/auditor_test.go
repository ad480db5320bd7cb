package auditor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/home-entity-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

type statsStorageFunc struct {
	stats  []types.HomeStatistics
	counts map[string][2]int64
}

func (s *statsStorageFunc) QueryHomeStatistics(ctx context.Context) ([]types.HomeStatistics, error) {
	return s.stats, nil
}

func (s *statsStorageFunc) CountDevices(ctx context.Context, conditions ...storage.ConditionFunc) (int64, int64, error) {
	c := &storage.Condition{}
	for _, condition := range conditions {
		c = condition(c)
	}
	counted := s.counts[c.HomeID+"/"+c.UserID]
	return counted[0], counted[1], nil
}

func TestAuditReportsDrift(t *testing.T) {
	is := is.New(t)

	var mu sync.Mutex
	published := []*types.StatisticsDrift{}

	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			mu.Lock()
			defer mu.Unlock()
			published = append(published, message.(*types.StatisticsDrift))
			return nil
		},
	}

	s := &statsStorageFunc{
		stats: []types.HomeStatistics{
			{HomeID: "home-1", UserID: "alice", AppCode: "app", Entities: 3, Controllers: 1},
			{HomeID: "home-2", UserID: "bob", AppCode: "app", Entities: 2, Controllers: 0},
		},
		counts: map[string][2]int64{
			"home-1/alice": {3, 1},
			"home-2/bob":   {1, 0},
		},
	}

	a := New(s, m, time.Hour).(*auditor)
	a.audit(context.Background())

	is.Equal(len(published), 1)
	is.Equal(published[0].HomeID, "home-2")
	is.Equal(published[0].StoredEntities, int64(2))
	is.Equal(published[0].CountedEntities, int64(1))
}

func TestStartIsIdempotentlyGuarded(t *testing.T) {
	is := is.New(t)

	a := New(&statsStorageFunc{}, &messaging.MsgContextMock{}, time.Hour)

	ctx := context.Background()
	is.NoErr(a.Start(ctx))
	is.True(a.Start(ctx) == ErrAlreadyStarted)
	is.NoErr(a.Stop(ctx))
	is.NoErr(a.Stop(ctx))
}

func TestStopTerminatesWorker(t *testing.T) {
	is := is.New(t)

	a := New(&statsStorageFunc{}, &messaging.MsgContextMock{}, time.Millisecond).(*auditor)

	ctx := context.Background()
	is.NoErr(a.Start(ctx))
	time.Sleep(5 * time.Millisecond)
	is.NoErr(a.Stop(ctx))
}
