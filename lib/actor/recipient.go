package actor

import "context"

// Endpoint is anything messages can be addressed to.
type Endpoint interface {
	Target() string
}

// Recipient is a typed endpoint onto a mailbox. It only accepts messages of
// type T, and is safe to copy and share.
type Recipient[T any] struct {
	mb *Mailbox
}

// RecipientFor binds a typed endpoint to mb.
func RecipientFor[T any](mb *Mailbox) Recipient[T] {
	return Recipient[T]{mb: mb}
}

func (r Recipient[T]) Send(ctx context.Context, msg T) error {
	if r.mb == nil {
		return ErrStopped
	}
	return r.mb.Send(ctx, msg)
}

func (r Recipient[T]) TrySend(msg T) error {
	if r.mb == nil {
		return ErrStopped
	}
	return r.mb.TrySend(msg)
}

func (r Recipient[T]) Target() string {
	if r.mb == nil {
		return ""
	}
	return r.mb.Name()
}

var _ Endpoint = Recipient[struct{}]{}
