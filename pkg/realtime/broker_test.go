package realtime

import (
	"sync"
	"testing"
)

func TestBrokerFanOutOrder(t *testing.T) {
	b := NewBroker()
	var got []int
	b.Subscribe(ChannelEQ, func(payload interface{}) { got = append(got, 1) })
	b.Subscribe(ChannelEQ, func(payload interface{}) { got = append(got, 2) })
	b.Subscribe(ChannelEQ, func(payload interface{}) { got = append(got, 3) })

	b.Publish(ChannelEQ, "msg")

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("listeners invoked as %v, want [1 2 3]", got)
	}
}

func TestBrokerChannelsAreIsolated(t *testing.T) {
	b := NewBroker()
	var eq, debate int
	b.Subscribe(ChannelEQ, func(payload interface{}) { eq++ })
	b.Subscribe(ChannelDebate, func(payload interface{}) { debate++ })

	b.Publish(ChannelEQ, nil)
	b.Publish(ChannelEQ, nil)

	if eq != 2 || debate != 0 {
		t.Errorf("eq = %d, debate = %d; want 2 and 0", eq, debate)
	}
}

func TestBrokerPanickingListenerDoesNotStopDelivery(t *testing.T) {
	b := NewBroker()
	var delivered bool
	b.Subscribe(ChannelEQ, func(payload interface{}) { panic("listener failure") })
	b.Subscribe(ChannelEQ, func(payload interface{}) { delivered = true })

	b.Publish(ChannelEQ, "msg")

	if !delivered {
		t.Error("second listener not invoked after first panicked")
	}
}

func TestBrokerUnsubscribe(t *testing.T) {
	b := NewBroker()
	var first, second int
	unsub := b.Subscribe(ChannelEQ, func(payload interface{}) { first++ })
	b.Subscribe(ChannelEQ, func(payload interface{}) { second++ })

	b.Publish(ChannelEQ, nil)
	unsub()
	b.Publish(ChannelEQ, nil)

	if first != 1 {
		t.Errorf("unsubscribed listener invoked %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining listener invoked %d times, want 2", second)
	}

	// Unsubscribing twice is a no-op.
	unsub()
	b.Publish(ChannelEQ, nil)
	if second != 3 {
		t.Errorf("remaining listener invoked %d times after double unsubscribe, want 3", second)
	}
}

func TestBrokerConcurrentPublish(t *testing.T) {
	b := NewBroker()
	var mu sync.Mutex
	count := 0
	b.Subscribe(ChannelDebate, func(payload interface{}) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Publish(ChannelDebate, nil)
		}()
	}
	wg.Wait()

	if count != 20 {
		t.Errorf("count = %d, want 20", count)
	}
}
