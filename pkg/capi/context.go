package capi

import (
	"sync"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
	"github.com/sage-x-project/sage-crypto-go/pkg/log"
)

// NoError is returned by LastError when no failure is pending.
const NoError = "no error"

// Context is one caller's view of the ABI surface. It carries the
// last-error state for that caller only; contexts sharing a registry can
// operate on the same handles concurrently without observing each other's
// errors.
type Context struct {
	registry *Registry
	lg       log.Logger

	mu      sync.Mutex
	lastErr string
}

// NewContext returns a context backed by the shared default registry.
func NewContext() *Context {
	return NewContextWithRegistry(DefaultRegistry())
}

// NewContextWithRegistry returns a context backed by the given registry.
func NewContextWithRegistry(r *Registry) *Context {
	return &Context{
		registry: r,
		lg:       r.lg,
	}
}

var initOnce sync.Once

// Init performs the process-wide one-time setup: it probes the entropy
// source and wires the default registry and metrics. Calling it more than
// once is harmless; operations also work without calling it at all.
func Init() Status {
	var st = StatusSuccess
	initOnce.Do(func() {
		if _, err := crypto.RandomBytes(1); err != nil {
			st = StatusCryptoFailure
			return
		}
		DefaultRegistry()
	})
	return st
}

// LastError returns the message of the most recent failed call observed
// through this context, or the NoError sentinel. Reading it does not
// clear it.
func (c *Context) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastErr == "" {
		return NoError
	}
	return c.lastErr
}

// fail records err and returns its status. Used by every fallible
// operation on the failure path.
func (c *Context) fail(err error) Status {
	st := statusFromError(err)
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
	c.registry.metrics.ErrorsTotal.WithLabelValues(st.String()).Inc()
	c.lg.Debug("operation failed", "status", st.String(), "error", err.Error())
	return st
}

// succeed clears the pending error.
func (c *Context) succeed() Status {
	c.mu.Lock()
	c.lastErr = ""
	c.mu.Unlock()
	return StatusSuccess
}
