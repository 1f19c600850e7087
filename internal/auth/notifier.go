package auth

import (
	"sync"

	"github.com/wanderplan/wanderplan/internal/domain"
)

// Event is an auth state transition observed by Notifier subscribers.
type Event string

// Auth state events, mirroring the transitions the GoTrue client reports.
const (
	EventSignedIn       Event = "signed_in"
	EventSignedOut      Event = "signed_out"
	EventTokenRefreshed Event = "token_refreshed"
)

// Notifier fans auth state transitions out to subscribers. The Service emits
// an event after every successful sign-in, sign-out, and token refresh.
//
// Subscribe returns a cancellation handle; callers hold it for as long as
// they want notifications and release it unconditionally when done. Releasing
// twice is harmless.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event, domain.Session)
}

// NewNotifier constructs an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(Event, domain.Session))}
}

// Subscribe registers fn to be called on every subsequent event and returns
// the function that removes the subscription.
func (n *Notifier) Subscribe(fn func(Event, domain.Session)) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Emit delivers the event to every current subscriber, synchronously and in
// no particular order.
func (n *Notifier) Emit(ev Event, s domain.Session) {
	n.mu.Lock()
	fns := make([]func(Event, domain.Session), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(ev, s)
	}
}
