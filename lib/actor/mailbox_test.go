package actor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func isStopped(mb *Mailbox) bool {
	mb.lk.Lock()
	defer mb.lk.Unlock()
	return mb.stopped
}

func TestMailboxOrder(t *testing.T) {
	ctx := context.Background()

	var got []int
	mb := NewMailbox("order", 4)
	mb.Start(func(msg interface{}) {
		got = append(got, msg.(int))
	})

	for i := 0; i < 100; i++ {
		require.NoError(t, mb.Send(ctx, i))
	}
	require.NoError(t, mb.Stop(ctx))

	require.Len(t, got, 100)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestMailboxDrainsOnStop(t *testing.T) {
	ctx := context.Background()

	release := make(chan struct{})
	var handled int
	mb := NewMailbox("drain", 8)
	mb.Start(func(msg interface{}) {
		<-release
		handled++
	})

	for i := 0; i < 5; i++ {
		require.NoError(t, mb.TrySend(i))
	}

	stopped := make(chan error, 1)
	go func() {
		stopped <- mb.Stop(ctx)
	}()

	// wait for Stop to close the mailbox before letting the handler run
	require.Eventually(t, func() bool {
		return isStopped(mb)
	}, time.Second, time.Millisecond)
	require.True(t, xerrors.Is(mb.TrySend(99), ErrStopped))

	close(release)
	require.NoError(t, <-stopped)
	require.Equal(t, 5, handled)

	select {
	case <-mb.Done():
	default:
		t.Fatal("mailbox loop still running")
	}
}

func TestMailboxSendAfterStop(t *testing.T) {
	ctx := context.Background()

	mb := NewMailbox("stopped", 1)
	mb.Start(func(interface{}) {})
	require.NoError(t, mb.Stop(ctx))
	require.NoError(t, mb.Stop(ctx))

	err := mb.Send(ctx, "late")
	require.True(t, xerrors.Is(err, ErrStopped))

	err = mb.TrySend("late")
	require.True(t, xerrors.Is(err, ErrStopped))
}

func TestMailboxFull(t *testing.T) {
	ctx := context.Background()

	block := make(chan struct{})
	entered := make(chan struct{})
	var once sync.Once
	mb := NewMailbox("full", 1)
	mb.Start(func(interface{}) {
		once.Do(func() { close(entered) })
		<-block
	})

	// first message is taken by the loop, second fills the single slot
	require.NoError(t, mb.TrySend(1))
	<-entered
	require.NoError(t, mb.TrySend(2))

	err := mb.TrySend(3)
	require.True(t, xerrors.Is(err, ErrMailboxFull))

	sctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, mb.Send(sctx, 3), context.DeadlineExceeded)

	close(block)
	require.NoError(t, mb.Stop(ctx))
}

func TestMailboxStopWithBlockedSender(t *testing.T) {
	block := make(chan struct{})
	entered := make(chan struct{})
	var once sync.Once
	var handled []int
	mb := NewMailbox("blocked", 1)
	mb.Start(func(msg interface{}) {
		once.Do(func() { close(entered) })
		<-block
		handled = append(handled, msg.(int))
	})

	require.NoError(t, mb.TrySend(1))
	<-entered
	require.NoError(t, mb.TrySend(2))

	sent := make(chan error, 1)
	go func() {
		sent <- mb.Send(context.Background(), 3)
	}()

	// the loop is still stuck in the handler, so the drain cannot finish
	sctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, mb.Stop(sctx), context.DeadlineExceeded)

	select {
	case err := <-sent:
		require.ErrorIs(t, err, ErrStopped)
	case <-time.After(time.Second):
		t.Fatal("blocked Send did not return after Stop")
	}

	close(block)
	require.NoError(t, mb.Stop(context.Background()))
	require.Equal(t, []int{1, 2}, handled)
}

func TestMailboxRecoversFromPanic(t *testing.T) {
	ctx := context.Background()

	var handled []string
	mb := NewMailbox("panicky", 4)
	mb.Start(func(msg interface{}) {
		s := msg.(string)
		if s == "boom" {
			panic("boom")
		}
		handled = append(handled, s)
	})

	require.NoError(t, mb.Send(ctx, "a"))
	require.NoError(t, mb.Send(ctx, "boom"))
	require.NoError(t, mb.Send(ctx, "b"))
	require.NoError(t, mb.Stop(ctx))

	require.Equal(t, []string{"a", "b"}, handled)
}

func TestRecipient(t *testing.T) {
	ctx := context.Background()

	var got []string
	mb := NewMailbox("typed", 4)
	mb.Start(func(msg interface{}) {
		got = append(got, msg.(string))
	})

	r1 := RecipientFor[string](mb)
	r2 := r1
	require.Equal(t, "typed", r1.Target())
	require.Equal(t, "typed", r2.Target())

	require.NoError(t, r1.Send(ctx, "one"))
	require.NoError(t, r2.TrySend("two"))
	require.NoError(t, mb.Stop(ctx))

	require.Equal(t, []string{"one", "two"}, got)

	var zero Recipient[string]
	require.Equal(t, "", zero.Target())
	require.ErrorIs(t, zero.Send(ctx, "x"), ErrStopped)
}
