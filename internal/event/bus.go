// Package event provides the synchronous in-process publish/subscribe bus
// the views and controller communicate over, together with the closed set
// of event payloads they exchange.
package event

// Handler consumes one published event.
type Handler func(Event)

// Subscription identifies one registration on the bus. Go functions are not
// comparable, so removal goes through the handle returned by Subscribe
// rather than by callback value.
type Subscription struct {
	topic Topic
	id    uint64
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus dispatches events to subscribed handlers, in registration order,
// synchronously on the publishing goroutine. The zero value is not usable;
// call New.
type Bus struct {
	nextID   uint64
	handlers map[Topic][]registration
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[Topic][]registration)}
}

// Subscribe registers handler for topic and returns its subscription handle.
// Registrations are not de-duplicated: subscribing the same handler twice
// invokes it twice per publish.
func (b *Bus) Subscribe(topic Topic, handler Handler) Subscription {
	b.nextID++
	b.handlers[topic] = append(b.handlers[topic], registration{id: b.nextID, handler: handler})
	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes the registration identified by sub. Unknown or
// already-removed subscriptions are a no-op.
func (b *Bus) Unsubscribe(sub Subscription) {
	regs := b.handlers[sub.topic]
	for i, reg := range regs {
		if reg.id == sub.id {
			b.handlers[sub.topic] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every handler subscribed to its topic, in
// registration order. A topic with no subscribers is a no-op. The handler
// list is snapshotted first, so handlers that subscribe or unsubscribe
// during dispatch take effect on the next publish.
func (b *Bus) Publish(ev Event) {
	regs := b.handlers[ev.Topic()]
	if len(regs) == 0 {
		return
	}
	snapshot := make([]registration, len(regs))
	copy(snapshot, regs)
	for _, reg := range snapshot {
		reg.handler(ev)
	}
}
