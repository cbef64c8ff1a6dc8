package notify

import "log"

type Message struct {
	RecipientID uint
	Text        string
	Link        string
}

// Sink accepts notification messages without blocking the caller.
type Sink interface {
	Dispatch(msg Message)
}

// Dispatcher decouples notification writes from request handling: a
// buffered channel feeds a single worker that does the durable insert.
// A status change must never fail because its notification did.
type Dispatcher struct {
	store *Store
	queue chan Message
}

func NewDispatcher(store *Store) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.store.Insert(msg.RecipientID, msg.Text, msg.Link); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		// queue full → drop rather than stall the API
		log.Println("notify queue full, dropping message")
	}
}

var _ Sink = (*Dispatcher)(nil)
