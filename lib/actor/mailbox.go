package actor

import (
	"context"
	"sync"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"
)

var log = logging.Logger("actor")

var (
	// ErrStopped is returned when sending to a mailbox that no longer
	// accepts messages.
	ErrStopped = xerrors.New("actor mailbox stopped")
	// ErrMailboxFull is returned by TrySend when the inbox has no free slot.
	ErrMailboxFull = xerrors.New("actor mailbox full")
)

const DefaultMailboxSize = 64

// Handler processes one message taken from a mailbox.
type Handler func(msg interface{})

// Mailbox is a bounded FIFO inbox served by a single goroutine. Messages are
// handled strictly one at a time, in the order they were enqueued.
type Mailbox struct {
	name string

	// lk guards stopped and is only held for short, non-blocking sections.
	lk      sync.Mutex
	stopped bool

	// senders counts Send/TrySend calls that passed the stopped check. The
	// loop waits for them before its final drain so no accepted message is
	// left behind.
	senders sync.WaitGroup

	incoming chan interface{}

	closing  chan struct{}
	closed   chan struct{}
	stopOnce sync.Once
}

func NewMailbox(name string, size int) *Mailbox {
	if size <= 0 {
		size = DefaultMailboxSize
	}
	return &Mailbox{
		name:     name,
		incoming: make(chan interface{}, size),
		closing:  make(chan struct{}),
		closed:   make(chan struct{}),
	}
}

// Name identifies the actor behind the mailbox.
func (m *Mailbox) Name() string {
	return m.name
}

// Start runs the processing loop in a new goroutine.
func (m *Mailbox) Start(h Handler) {
	go m.runLoop(h)
}

func (m *Mailbox) enter() error {
	m.lk.Lock()
	defer m.lk.Unlock()

	if m.stopped {
		return xerrors.Errorf("sending to %s: %w", m.name, ErrStopped)
	}
	m.senders.Add(1)
	return nil
}

// Send enqueues msg, blocking while the inbox is full. A Send still blocked
// when the mailbox stops fails with ErrStopped.
func (m *Mailbox) Send(ctx context.Context, msg interface{}) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.senders.Done()

	select {
	case m.incoming <- msg:
		return nil
	case <-m.closing:
		return xerrors.Errorf("sending to %s: %w", m.name, ErrStopped)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySend enqueues msg without blocking.
func (m *Mailbox) TrySend(msg interface{}) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.senders.Done()

	select {
	case m.incoming <- msg:
		return nil
	default:
		return xerrors.Errorf("sending to %s: %w", m.name, ErrMailboxFull)
	}
}

// Stop refuses further messages, lets the loop drain what is already queued
// and waits for it to exit, or for ctx to be done.
func (m *Mailbox) Stop(ctx context.Context) error {
	m.stopOnce.Do(func() {
		m.lk.Lock()
		m.stopped = true
		m.lk.Unlock()
		close(m.closing)
	})

	select {
	case <-m.closed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once the loop has exited.
func (m *Mailbox) Done() <-chan struct{} {
	return m.closed
}

func (m *Mailbox) runLoop(h Handler) {
	defer close(m.closed)

	for {
		select {
		case msg := <-m.incoming:
			m.handle(h, msg)
		case <-m.closing:
			m.senders.Wait()
			for {
				select {
				case msg := <-m.incoming:
					m.handle(h, msg)
				default:
					return
				}
			}
		}
	}
}

func (m *Mailbox) handle(h Handler, msg interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("recovered from panic while handling message", "actor", m.name, "msg", msg, "err", r)
		}
	}()

	h(msg)
}
