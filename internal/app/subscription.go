package app

import (
	"context"
	"maps"
	"slices"
)

// Subscription is a long-lived background event source. Subscribe runs on
// its own goroutine, dispatches zero or more messages and must return
// promptly once ctx is cancelled.
type Subscription[M any] interface {
	Subscribe(ctx context.Context, dispatch Dispatch[M]) error
}

// SubscriptionFunc adapts a function to Subscription.
type SubscriptionFunc[M any] func(ctx context.Context, dispatch Dispatch[M]) error

// Subscribe implements Subscription.
func (f SubscriptionFunc[M]) Subscribe(ctx context.Context, dispatch Dispatch[M]) error {
	return f(ctx, dispatch)
}

// Subscriptions maps stable keys to the subscriptions a model wants active.
// A subscription's identity is its key: replacing the value under an existing
// key does not restart it.
type Subscriptions[M any] map[string]Subscription[M]

// NoSubscriptions returns the empty mapping.
func NoSubscriptions[M any]() Subscriptions[M] {
	return nil
}

// With returns a copy of s with sub added under key.
func (s Subscriptions[M]) With(key string, sub Subscription[M]) Subscriptions[M] {
	out := make(Subscriptions[M], len(s)+1)
	maps.Copy(out, s)
	out[key] = sub
	return out
}

// liveSubscriptions tracks the cancellation handle of every running subscription.
// It is owned by the loop goroutine.
type liveSubscriptions struct {
	cancels map[string]context.CancelFunc
}

func newLiveSubscriptions() *liveSubscriptions {
	return &liveSubscriptions{cancels: make(map[string]context.CancelFunc)}
}

// diff returns the keys to start and to stop so that the live set matches want.
// Keys are sorted so start order is deterministic.
func diff[M any](live map[string]context.CancelFunc, want Subscriptions[M]) (start, stop []string) {
	for key := range live {
		if want[key] == nil {
			stop = append(stop, key)
		}
	}
	for key, sub := range want {
		if sub == nil {
			continue
		}
		if _, ok := live[key]; !ok {
			start = append(start, key)
		}
	}
	slices.Sort(start)
	slices.Sort(stop)
	return start, stop
}

// stopAll cancels every live subscription.
func (l *liveSubscriptions) stopAll() {
	for key, cancel := range l.cancels {
		cancel()
		delete(l.cancels, key)
	}
}

// Keys returns the live keys, sorted.
func (l *liveSubscriptions) Keys() []string {
	return slices.Sorted(maps.Keys(l.cancels))
}
