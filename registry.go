package brtypes

import (
	"reflect"
	"sync"
)

type registryKey struct {
	typ         reflect.Type
	contentType string
}

// processorRegistry caches one processor per struct type and content type.
type processorRegistry struct {
	mu    sync.RWMutex
	procs map[registryKey]any
}

var processors = &processorRegistry{procs: make(map[registryKey]any)}

func keyFor[T any](contentType string) registryKey {
	return registryKey{typ: reflect.TypeFor[T](), contentType: contentType}
}

func (r *processorRegistry) get(key registryKey) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.procs[key]
	return p, ok
}

// getOrCreate holds the write lock while building so concurrent callers share
// a single processor.
func (r *processorRegistry) getOrCreate(key registryKey, build func() (any, error)) (any, error) {
	if p, ok := r.get(key); ok {
		return p, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.procs[key]; ok {
		return p, nil
	}
	p, err := build()
	if err != nil {
		return nil, err
	}
	r.procs[key] = p
	return p, nil
}

func (r *processorRegistry) put(key registryKey, p any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procs[key] = p
}

// Use returns the shared processor for T and the codec's content type,
// building it on first use. Configuration applied to the returned processor
// is seen by every caller of Use.
func Use[T Cloner[T]](codec Codec) (*Processor[T], error) {
	p, err := processors.getOrCreate(keyFor[T](codec.ContentType()), func() (any, error) {
		return NewProcessor[T](codec)
	})
	if err != nil {
		return nil, err
	}
	return p.(*Processor[T]), nil
}

// Register installs p as the shared processor for T and its content type,
// replacing any processor built by Use.
func Register[T Cloner[T]](p *Processor[T]) {
	processors.put(keyFor[T](p.codec.ContentType()), p)
}

// Lookup returns the shared processor for T and contentType without building one.
func Lookup[T Cloner[T]](contentType string) (*Processor[T], bool) {
	p, ok := processors.get(keyFor[T](contentType))
	if !ok {
		return nil, false
	}
	return p.(*Processor[T]), true
}

// Reset clears the shared processors.
// This is primarily useful for test isolation.
func Reset() {
	processors.mu.Lock()
	defer processors.mu.Unlock()
	processors.procs = make(map[registryKey]any)
}
