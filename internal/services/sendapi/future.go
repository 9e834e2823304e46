package sendapi

import (
	"context"

	"github.com/DIMO-Network/messenger-bot-api/internal/messenger"
)

// Future is the pending result of an asynchronous send.
type Future struct {
	done chan struct{}
	resp *messenger.SendResponse
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolved returns a Future that is already complete.
func Resolved(resp *messenger.SendResponse, err error) *Future {
	f := newFuture()
	f.resolve(resp, err)
	return f
}

func (f *Future) resolve(resp *messenger.SendResponse, err error) {
	f.resp = resp
	f.err = err
	close(f.done)
}

// Done is closed once the send completed.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the send completed or ctx is done.
func (f *Future) Wait(ctx context.Context) (*messenger.SendResponse, error) {
	select {
	case <-f.done:
		return f.resp, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
