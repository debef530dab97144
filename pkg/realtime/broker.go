package realtime

import "sync"

// Channel names a fan-out topic.
type Channel string

const (
	ChannelEQ     Channel = "eq"
	ChannelDebate Channel = "debate"
)

// Listener receives payloads published on a channel.
type Listener func(payload interface{})

type subscription struct {
	id       uint64
	listener Listener
}

// Broker is a synchronous in-process fan-out: Publish invokes every listener
// registered on the channel before it returns. Delivery is at-most-once with
// no replay for late subscribers. Construct one Broker and inject it into
// producers and consumers; there is no package-level instance.
type Broker struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[Channel][]subscription
}

func NewBroker() *Broker {
	return &Broker{
		subs: map[Channel][]subscription{},
	}
}

// Subscribe registers a listener on a channel and returns its unsubscribe
// function. Listeners are invoked in registration order.
func (b *Broker) Subscribe(channel Channel, listener Listener) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[channel] = append(b.subs[channel], subscription{id: id, listener: listener})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[channel]
		for i, s := range subs {
			if s.id == id {
				b.subs[channel] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers payload to every listener currently subscribed to the
// channel. A panicking listener does not stop delivery to the rest and never
// propagates to the publisher.
func (b *Broker) Publish(channel Channel, payload interface{}) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs[channel]))
	copy(subs, b.subs[channel])
	b.mu.RUnlock()

	for _, s := range subs {
		invoke(s.listener, payload)
	}
}

func invoke(l Listener, payload interface{}) {
	defer func() {
		_ = recover()
	}()
	l(payload)
}
