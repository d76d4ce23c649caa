package main

import (
	"context"
	"runtime"
	"sync"

	md2rtf "github.com/larikaweb/go-md2rtf"
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input md2rtf.Input) (*md2rtf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*md2rtf.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() Converter
	Release(Converter)
	Size() int
}

// ConverterPool manages md2rtf.Converter instances for parallel batch
// processing. Each worker gets its own converter, so the Goldmark
// parser never sees concurrent use. Converters are created lazily on
// first acquire.
type ConverterPool struct {
	size    int
	sem     chan Converter
	mu      sync.Mutex
	created int
}

// NewConverterPool creates a pool with capacity for n converters.
func NewConverterPool(n int) *ConverterPool {
	if n < 1 {
		n = 1
	}
	return &ConverterPool{
		size: n,
		sem:  make(chan Converter, n),
	}
}

// Compile-time check that ConverterPool implements Pool.
var _ Pool = (*ConverterPool)(nil)

// Acquire gets a converter from the pool, creating one if capacity
// allows. Blocks if all converters are in use.
func (p *ConverterPool) Acquire() Converter {
	select {
	case conv := <-p.sem:
		return conv
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return md2rtf.NewConverter()
	}
	p.mu.Unlock()

	return <-p.sem
}

// Release returns a converter to the pool.
func (p *ConverterPool) Release(conv Converter) {
	p.sem <- conv
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// resolvePoolSize determines the worker count.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}

	// Auto-calculate from GOMAXPROCS (adjusted by automaxprocs in containers)
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
