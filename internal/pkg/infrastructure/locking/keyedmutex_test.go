package locking

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestAcquireIsImmediateWhenFree(t *testing.T) {
	is := is.New(t)
	m := NewKeyedMutex()

	err := m.Acquire(context.Background(), "/home/u1/h1/app/createEntity")
	is.NoErr(err)

	m.Release("/home/u1/h1/app/createEntity")
}

func TestDifferentKeysDoNotBlockEachOther(t *testing.T) {
	is := is.New(t)
	m := NewKeyedMutex()

	is.NoErr(m.Acquire(context.Background(), Key("u1", "h1", "app", "createEntity")))
	is.NoErr(m.Acquire(context.Background(), Key("u1", "h1", "app", "deleteEntity")))
	is.NoErr(m.Acquire(context.Background(), Key("u2", "h1", "app", "createEntity")))
}

func TestMutualExclusion(t *testing.T) {
	is := is.New(t)
	m := NewKeyedMutex()

	const key = "/home/u1/h1/app/createEntity"

	var inside int32
	var maxInside int32

	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			is.NoErr(m.Acquire(context.Background(), key))

			n := atomic.AddInt32(&inside, 1)
			if n > atomic.LoadInt32(&maxInside) {
				atomic.StoreInt32(&maxInside, n)
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)

			m.Release(key)
		}()
	}

	wg.Wait()

	is.Equal(maxInside, int32(1))
}

func TestWaitersAreServedInArrivalOrder(t *testing.T) {
	is := is.New(t)
	m := NewKeyedMutex()

	const key = "/home/u1/h1/app/shareEntity"

	is.NoErr(m.Acquire(context.Background(), key))

	order := make(chan int, 3)
	ready := make(chan struct{})

	for i := 1; i <= 3; i++ {
		go func(n int) {
			if n == 1 {
				close(ready)
			} else {
				<-ready
				// give earlier waiters time to enqueue first
				time.Sleep(time.Duration(n) * 20 * time.Millisecond)
			}
			m.Acquire(context.Background(), key)
			order <- n
			m.Release(key)
		}(i)
	}

	time.Sleep(200 * time.Millisecond)
	m.Release(key)

	is.Equal(<-order, 1)
	is.Equal(<-order, 2)
	is.Equal(<-order, 3)
}

func TestPurgeRejectsQueuedWaiters(t *testing.T) {
	is := is.New(t)
	m := NewKeyedMutex()

	const key = "/home/u1/h1/app/deleteEntity"

	is.NoErr(m.Acquire(context.Background(), key))

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			errs <- m.Acquire(context.Background(), key)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	m.Purge(key)

	is.Equal(<-errs, ErrPurged)
	is.Equal(<-errs, ErrPurged)

	// the key is reset and can be acquired again
	is.NoErr(m.Acquire(context.Background(), key))
}

func TestAcquireRespectsContextCancellation(t *testing.T) {
	is := is.New(t)
	m := NewKeyedMutex()

	const key = "/home/u1/h1/app/createEntity"

	is.NoErr(m.Acquire(context.Background(), key))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := m.Acquire(ctx, key)
	is.Equal(err, context.DeadlineExceeded)

	m.Release(key)
	is.NoErr(m.Acquire(context.Background(), key))
}
