package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailbox_FIFO(t *testing.T) {
	mb := newMailbox[int]()
	for i := range 1000 {
		mb.Post(i)
	}
	require.Equal(t, 1000, mb.Len())

	ctx := context.Background()
	for i := range 1000 {
		got, err := mb.Receive(ctx)
		require.NoError(t, err)
		if got != i {
			t.Fatalf("Receive() #%d = %d, want %d", i, got, i)
		}
	}
	assert.Equal(t, 0, mb.Len())
}

func TestMailbox_PerProducerOrder(t *testing.T) {
	type msg struct{ producer, seq int }
	mb := newMailbox[msg]()

	const producers, perProducer = 8, 500
	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range perProducer {
				mb.Post(msg{producer: p, seq: s})
			}
		}()
	}

	next := make([]int, producers)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for range producers * perProducer {
		m, err := mb.Receive(ctx)
		require.NoError(t, err)
		if m.seq != next[m.producer] {
			t.Fatalf("producer %d: got seq %d, want %d", m.producer, m.seq, next[m.producer])
		}
		next[m.producer]++
	}
	wg.Wait()
}

func TestMailbox_ReceiveBlocksUntilPost(t *testing.T) {
	mb := newMailbox[string]()
	go func() {
		time.Sleep(20 * time.Millisecond)
		mb.Post("late")
	}()
	got, err := mb.Receive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late", got)
}

func TestMailbox_ReceiveCancelled(t *testing.T) {
	mb := newMailbox[string]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mb.Receive(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
