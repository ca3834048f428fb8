package sequencer

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoBlocksUntilJobRan(t *testing.T) {
	s := New()

	ran := false
	err := s.Do(context.Background(), "c1", func() { ran = true })

	require.NoError(t, err)
	assert.True(t, ran)
}

// Jobs of one conversation must never overlap, no matter how many
// goroutines submit them.
func TestPerConversationExclusion(t *testing.T) {
	s := New()
	faker := gofakeit.New(1)

	conversations := make([]string, 5)
	for i := range conversations {
		conversations[i] = faker.UUID()
	}

	inFlight := make(map[string]*atomic.Int32, len(conversations))
	for _, id := range conversations {
		inFlight[id] = &atomic.Int32{}
	}

	var violations atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		id := conversations[i%len(conversations)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(context.Background(), id, func() {
				if inFlight[id].Add(1) != 1 {
					violations.Add(1)
				}
				time.Sleep(time.Millisecond)
				inFlight[id].Add(-1)
			})
		}()
	}
	wg.Wait()

	assert.Zero(t, violations.Load())
}

// Distinct conversations proceed concurrently: with one long job per
// conversation, total time stays far below the serial sum.
func TestConversationsRunConcurrently(t *testing.T) {
	s := New()

	const workers = 8
	const jobLength = 50 * time.Millisecond

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		id := gofakeit.UUID()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(context.Background(), id, func() { time.Sleep(jobLength) })
		}()
	}
	wg.Wait()

	assert.Less(t, time.Since(start), time.Duration(workers)*jobLength)
}

// A backlog behind a busy conversation drains in submission order, so a
// user's second message is never applied before their first.
func TestBacklogRunsInSubmissionOrder(t *testing.T) {
	s := New()

	release := make(chan struct{})
	var mu sync.Mutex
	var order []int

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Do(context.Background(), "c1", func() {
			<-release
			mu.Lock()
			order = append(order, 0)
			mu.Unlock()
		})
	}()
	time.Sleep(10 * time.Millisecond)

	// Stagger submissions so each lands in the backlog before the next.
	for i := 1; i <= 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(context.Background(), "c1", func() {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
			})
		}()
		time.Sleep(5 * time.Millisecond)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, order)
}

func TestDoHonorsContext(t *testing.T) {
	s := New()

	release := make(chan struct{})
	go func() {
		_ = s.Do(context.Background(), "busy", func() { <-release })
	}()
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.Do(ctx, "busy", func() {})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)
}
