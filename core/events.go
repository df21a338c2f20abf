package core

// EventName identifies a lifecycle event emitted while processing a file
// (spec.md §6 "Event channel").
type EventName string

const (
	EventMatchSource     EventName = "MATCH_SOURCE"
	EventStartDetection  EventName = "START_DETECTION"
	EventCloneFound      EventName = "CLONE_FOUND"
	EventEnd             EventName = "END"
	EventSkippedSource   EventName = "SKIPPED_SOURCE"
	EventStoreError      EventName = "STORE_ERROR"
)

// MatchSourcePayload accompanies EventMatchSource, emitted before
// tokenization begins.
type MatchSourcePayload struct {
	SourceID string
	Format   string
}

// StartDetectionPayload accompanies EventStartDetection, emitted once frames
// have been built.
type StartDetectionPayload struct {
	SourceID    string
	Format      string
	TokensCount int
}

// CloneFoundPayload accompanies EventCloneFound, emitted once per accepted
// clone.
type CloneFoundPayload struct {
	Clone Clone
}

// EndPayload accompanies EventEnd, emitted once a file has been fully
// processed (after all its CLONE_FOUND events).
type EndPayload struct {
	SourceID  string
	Statistic FormatStatistic
}

// SkippedSourcePayload accompanies EventSkippedSource: a file was dropped
// without being matched against the store.
type SkippedSourcePayload struct {
	SourceID string
	Reason   string
}

// StoreErrorPayload accompanies EventStoreError: a store operation failed
// mid-file.
type StoreErrorPayload struct {
	SourceID string
	Err      error
}

// Event is a single emitted lifecycle occurrence. Payload holds one of the
// *Payload types above, keyed by Name.
type Event struct {
	Name    EventName
	Payload any
}

// Subscriber exposes a handler per event name it cares about. The
// coordinator walks its registered subscribers in order and, for each
// emitted event, invokes the handler keyed by event name if present — no
// dynamic dispatch beyond this lookup (spec.md §9 "Event dispatch without a
// runtime-specific event emitter").
type Subscriber interface {
	Handlers() map[EventName]func(Event)
}

// SubscriberFuncs is a map-literal-friendly Subscriber implementation.
type SubscriberFuncs map[EventName]func(Event)

func (s SubscriberFuncs) Handlers() map[EventName]func(Event) { return s }

// Dispatch is the shared event fan-out used by both the detector coordinator
// and the multi-file driver: subscribers observe events in registration
// order (spec.md §5 "Ordering guarantees" (iv)).
func Dispatch(subs []Subscriber, ev Event) {
	for _, s := range subs {
		if h, ok := s.Handlers()[ev.Name]; ok && h != nil {
			h(ev)
		}
	}
}
