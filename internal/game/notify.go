package game

type NoteKind int

const (
	NoteCollect NoteKind = iota
	NoteDiscovery
	NoteAchievement
	NoteChallenge
	NoteThought
	NoteWildlife
	NoteMode
)

// Notification is one record of something the presentation layer should
// surface. Systems return slices of these from their update calls; the
// session queues them and the HUD drains the queue after the update pass.
// Message passing instead of callback registration keeps the frame
// deterministic.
type Notification struct {
	Kind NoteKind
	Text string
	X, Z float64 // world position of the trigger, when it has one
}

// NotificationQueue collects a frame's notifications in arrival order.
type NotificationQueue struct {
	pending []Notification
}

func (q *NotificationQueue) Push(notes ...Notification) {
	q.pending = append(q.pending, notes...)
}

// Drain returns all pending notifications and empties the queue.
func (q *NotificationQueue) Drain() []Notification {
	out := q.pending
	q.pending = nil
	return out
}
