// seehuhn.de/go/contour - contour lines and filled contours for gridded data
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package dispatch runs contour extractions on a background worker.
//
// A [Host] owns one worker goroutine.  Requests are tagged with a fresh
// correlation id, queued, and processed one at a time; each reply is
// routed back to the [Call] with the matching id.  After [Host.Dispose]
// the worker stops, calls which are still pending are dropped without
// a reply, and new submissions fail with [contour.ErrWorkerUnavailable].
package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"seehuhn.de/go/contour"
)

// ComputeFunc performs one extraction.
type ComputeFunc func(*contour.Request) (*contour.Result, error)

// Option configures a Host.
type Option func(*Host)

// WithCompute replaces the extraction function run by the worker.
// The default is [contour.Compute].
func WithCompute(f ComputeFunc) Option {
	return func(h *Host) {
		h.compute = f
	}
}

// Host dispatches contour requests to a worker goroutine.
// A Host is safe for concurrent use.
type Host struct {
	compute ComputeFunc

	mu       sync.Mutex
	pending  map[string]*Call
	queue    []*Call
	disposed bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
}

// New starts a Host with its worker goroutine.
func New(opts ...Option) *Host {
	h := &Host{
		compute: contour.Compute,
		pending: make(map[string]*Call),
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	go h.run()
	return h
}

// Call is a request which has been submitted to a Host.
type Call struct {
	// ID is the correlation id of the request.
	ID string

	req  *contour.Request
	done chan struct{}
	res  *contour.Result
	err  error
}

// Done returns a channel which is closed once the reply has arrived.
// For calls dropped by [Host.Dispose] the channel is never closed.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the reply for c arrives or ctx is done.
func (c *Call) Wait(ctx context.Context) (*contour.Result, error) {
	select {
	case <-c.done:
		return c.res, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Submit queues req for processing.  The request is not copied and must
// not be modified until the reply has arrived.  The ID field of req is
// overwritten with the correlation id.
func (h *Host) Submit(req *contour.Request) (*Call, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return nil, fmt.Errorf("submit: %w", contour.ErrWorkerUnavailable)
	}

	id := uuid.New().String()
	req.ID = id
	c := &Call{ID: id, req: req, done: make(chan struct{})}
	h.pending[id] = c
	h.queue = append(h.queue, c)

	select {
	case h.wake <- struct{}{}:
	default:
	}
	contour.Logger().Debug("contour request queued", "id", id, "queued", len(h.queue))
	return c, nil
}

// Compute submits req and waits for the result.
func (h *Host) Compute(ctx context.Context, req *contour.Request) (*contour.Result, error) {
	c, err := h.Submit(req)
	if err != nil {
		return nil, err
	}
	return c.Wait(ctx)
}

// Pending returns the number of calls which have not been answered yet.
func (h *Host) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// Dispose stops the worker.  Pending calls are dropped and never receive
// a reply.  Dispose waits for a request which is currently being
// processed to finish.  Calling Dispose more than once is allowed.
func (h *Host) Dispose() {
	h.mu.Lock()
	if h.disposed {
		h.mu.Unlock()
		<-h.done
		return
	}
	h.disposed = true
	dropped := len(h.pending)
	clear(h.pending)
	h.queue = nil
	close(h.quit)
	h.mu.Unlock()

	<-h.done
	contour.Logger().Debug("contour host disposed", "dropped", dropped)
}

func (h *Host) run() {
	defer close(h.done)
	for {
		c, ok := h.next()
		if !ok {
			select {
			case <-h.wake:
				continue
			case <-h.quit:
				return
			}
		}
		res, err := h.process(c)
		h.reply(c.ID, res, err)
	}
}

// next removes the oldest queued call.
func (h *Host) next() (*Call, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed || len(h.queue) == 0 {
		return nil, false
	}
	c := h.queue[0]
	h.queue[0] = nil
	h.queue = h.queue[1:]
	return c, true
}

// process runs the extraction for c, turning a panic into an error.
func (h *Host) process(c *Call) (res *contour.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			contour.Logger().Error("contour request failed", "id", c.ID, "panic", r)
			res, err = nil, fmt.Errorf("request %s: panic: %v", c.ID, r)
		}
	}()
	return h.compute(c.req)
}

// reply routes a response to the pending call with the given id.
// Replies for unknown ids are ignored.
func (h *Host) reply(id string, res *contour.Result, err error) {
	h.mu.Lock()
	c, ok := h.pending[id]
	delete(h.pending, id)
	h.mu.Unlock()
	if !ok {
		contour.Logger().Debug("contour reply dropped", "id", id)
		return
	}
	if err != nil {
		contour.Logger().Warn("contour request failed", "id", id, "error", err)
	}
	c.res, c.err = res, err
	close(c.done)
}

// Response converts the outcome of a call into a wire response.
// It must only be called after the call has completed.
func (c *Call) Response() *contour.Response {
	r := &contour.Response{ID: c.ID, Result: c.res, Err: c.err}
	if c.err != nil {
		r.Error = c.err.Error()
	}
	return r
}
