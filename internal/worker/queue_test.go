package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"multilingual/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_RunsJobsInSubmissionOrder(t *testing.T) {
	q := NewQueue(16, testutil.NewTestLogger())
	defer q.Close()

	var (
		mu    sync.Mutex
		order []int
	)
	var futures []*Future
	for i := 0; i < 10; i++ {
		i := i
		futures = append(futures, q.Submit("record", func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, i)
			return nil
		}))
	}

	for _, f := range futures {
		require.NoError(t, f.Wait(context.Background()))
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestQueue_FailureIsReturnedAndQueueContinues(t *testing.T) {
	q := NewQueue(4, testutil.NewTestLogger())
	defer q.Close()

	boom := errors.New("boom")
	failed := q.Submit("fail", func(ctx context.Context) error { return boom })
	ok := q.Submit("ok", func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, failed.Wait(context.Background()), boom)
	assert.NoError(t, ok.Wait(context.Background()))
	assert.ErrorIs(t, failed.Err(), boom)
}

func TestQueue_PanicBecomesError(t *testing.T) {
	q := NewQueue(4, testutil.NewTestLogger())
	defer q.Close()

	f := q.Submit("panic", func(ctx context.Context) error { panic("kaboom") })

	err := f.Wait(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")

	assert.NoError(t, q.Submit("after", func(ctx context.Context) error { return nil }).Wait(context.Background()))
}

func TestQueue_CloseDrainsPendingJobs(t *testing.T) {
	q := NewQueue(8, testutil.NewTestLogger())

	release := make(chan struct{})
	first := q.Submit("block", func(ctx context.Context) error {
		<-release
		return nil
	})
	second := q.Submit("pending", func(ctx context.Context) error { return nil })

	closed := make(chan struct{})
	go func() {
		q.Close()
		close(closed)
	}()

	close(release)
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}

	assert.NoError(t, first.Err())
	assert.NoError(t, second.Err())

	late := q.Submit("late", func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, late.Wait(context.Background()), ErrQueueClosed)
}

func TestQueue_Full(t *testing.T) {
	q := NewQueue(1, testutil.NewTestLogger())

	release := make(chan struct{})
	started := make(chan struct{})
	running := q.Submit("running", func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})
	<-started

	queued := q.Submit("queued", func(ctx context.Context) error { return nil })
	rejected := q.Submit("rejected", func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, rejected.Wait(context.Background()), ErrQueueFull)

	close(release)
	assert.NoError(t, running.Wait(context.Background()))
	assert.NoError(t, queued.Wait(context.Background()))
	q.Close()
}

func TestFuture_WaitHonoursContext(t *testing.T) {
	q := NewQueue(1, testutil.NewTestLogger())

	release := make(chan struct{})
	f := q.Submit("slow", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, f.Wait(ctx), context.DeadlineExceeded)
	assert.NoError(t, f.Err())

	close(release)
	q.Close()
}

func TestResolved(t *testing.T) {
	f := Resolved(ErrQueueClosed)

	select {
	case <-f.Done():
	default:
		t.Fatal("resolved future should be done")
	}
	assert.ErrorIs(t, f.Err(), ErrQueueClosed)
}
