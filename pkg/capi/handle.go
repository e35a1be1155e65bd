package capi

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
	"github.com/sage-x-project/sage-crypto-go/pkg/log"
)

// Handle is an opaque, caller-held reference to registry-owned memory.
// Handles are unforgeable tokens and are never reused after release.
type Handle string

var (
	errUnknownHandle = errors.New("unknown handle")
	errHandleFreed   = errors.New("handle already freed")
	errKindMismatch  = errors.New("handle refers to a different resource kind")
	errRegistryFull  = errors.New("handle registry is full")
)

type resourceKind int

const (
	kindKeyPair resourceKind = iota
	kindSignature
)

func (k resourceKind) String() string {
	if k == kindKeyPair {
		return "keypair"
	}
	return "signature"
}

// entry stays in the registry after free with its payload dropped, so a
// released handle is distinguishable from one that never existed.
type entry struct {
	kind      resourceKind
	keyPair   *crypto.KeyPair
	signature *crypto.Signature
	freed     bool
}

// Registry owns every key pair and signature issued through the ABI
// surface and enforces the Created → InUse → Freed lifecycle.
//
// Live handles are safe for concurrent readers; Free must not race with
// an in-flight operation on the same handle. That ordering is the
// caller's responsibility, as the registry cannot tell a last use apart
// from any other use.
type Registry struct {
	mu         sync.RWMutex
	entries    map[Handle]*entry
	live       int
	maxHandles int
	lg         log.Logger
	metrics    *Metrics
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMaxHandles caps the number of live handles; further allocations
// report StatusAllocationFailure. Zero means unlimited.
func WithMaxHandles(n int) RegistryOption {
	return func(r *Registry) { r.maxHandles = n }
}

// WithMetrics uses the provided metrics instead of the process defaults.
func WithMetrics(m *Metrics) RegistryOption {
	return func(r *Registry) { r.metrics = m }
}

// NewRegistry creates an empty handle registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries: make(map[Handle]*entry),
		lg:      log.New("sage-crypto/capi"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics = defaultMetrics()
	}
	return r
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the shared process-wide registry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

func newHandle() Handle {
	return Handle(uuid.NewString())
}

func (r *Registry) add(e *entry) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxHandles > 0 && r.live >= r.maxHandles {
		return "", fmt.Errorf("%w: %d live handles", errRegistryFull, r.live)
	}
	h := newHandle()
	r.entries[h] = e
	r.live++
	r.metrics.LiveHandles.Inc()
	return h, nil
}

func (r *Registry) addKeyPair(kp *crypto.KeyPair) (Handle, error) {
	return r.add(&entry{kind: kindKeyPair, keyPair: kp})
}

func (r *Registry) addSignature(sig *crypto.Signature) (Handle, error) {
	return r.add(&entry{kind: kindSignature, signature: sig})
}

func (r *Registry) lookup(h Handle, kind resourceKind) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[h]
	if !ok {
		return nil, errUnknownHandle
	}
	if e.freed {
		return nil, fmt.Errorf("%w: %s handle", errHandleFreed, e.kind)
	}
	if e.kind != kind {
		return nil, fmt.Errorf("%w: have %s, want %s", errKindMismatch, e.kind, kind)
	}
	return e, nil
}

func (r *Registry) keyPair(h Handle) (*crypto.KeyPair, error) {
	e, err := r.lookup(h, kindKeyPair)
	if err != nil {
		return nil, err
	}
	return e.keyPair, nil
}

func (r *Registry) signature(h Handle) (*crypto.Signature, error) {
	e, err := r.lookup(h, kindSignature)
	if err != nil {
		return nil, err
	}
	return e.signature, nil
}

// free releases the resource behind h. Secret material is wiped before
// the payload is dropped. The entry itself is retained so later calls on
// the same handle report errHandleFreed, never a fresh allocation.
func (r *Registry) free(h Handle, kind resourceKind) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return errUnknownHandle
	}
	if e.freed {
		return fmt.Errorf("%w: %s handle", errHandleFreed, e.kind)
	}
	if e.kind != kind {
		return fmt.Errorf("%w: have %s, want %s", errKindMismatch, e.kind, kind)
	}

	if e.keyPair != nil {
		e.keyPair.Zero()
		e.keyPair = nil
	}
	e.signature = nil
	e.freed = true
	r.live--
	r.metrics.LiveHandles.Dec()
	r.lg.Debug("handle freed", "kind", kind.String())
	return nil
}

// Live returns the number of live handles in the registry.
func (r *Registry) Live() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live
}
