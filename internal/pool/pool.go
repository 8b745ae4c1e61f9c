// Package pool provides a worker pool for parallelizing searches for
// rare values, such as probable primes.
package pool

import (
	"io"
	"runtime"
	"sync"
	"sync/atomic"
)

// searchAlone runs f, which may return nil, until count elements are found.
func searchAlone(f func() interface{}, count int) []interface{} {
	results := make([]interface{}, count)
	for i := 0; i < len(results); i++ {
		results[i] = nil
		for ; results[i] == nil; results[i] = f() {
		}
	}
	return results
}

// command tells a latent worker to keep evaluating a function until it
// returns a non nil result.
type command struct {
	// ctr indicates the number of results that still need to be produced.
	ctr *int64
	f   func() interface{}
	// results is the array where successful evaluations are stored.
	results []interface{}
}

// workerSearch keeps querying f while *ctr > 0, decrementing *ctr for each
// successful result.
//
// The slot must be claimed and filled before signalling on ctrChanged: the
// receive in Search is what publishes the write to the caller. A worker
// whose decrement goes negative lost the race for the last slot and must
// not signal at all, since no receiver remains.
func workerSearch(results []interface{}, ctrChanged chan<- struct{}, f func() interface{}, ctr *int64) {
	for atomic.LoadInt64(ctr) > 0 {
		res := f()
		if res == nil {
			continue
		}
		i := atomic.AddInt64(ctr, -1)
		if i < 0 {
			break
		}
		results[i] = res
		ctrChanged <- struct{}{}
	}
}

func worker(commands <-chan command, ctrChanged chan<- struct{}) {
	for c := range commands {
		workerSearch(c.results, ctrChanged, c.f, c.ctr)
	}
}

// Pool represents a pool of workers, used for parallelizing searches.
//
// Functions needing a *Pool will work with a nil receiver, doing the
// equivalent work on the current thread instead.
//
// By creating a pool, you avoid the overhead of spinning up goroutines for
// each new operation.
type Pool struct {
	// The common channel used to send commands to the workers.
	//
	// This effectively makes a work stealing pool.
	commands chan command
	// The channel used to signal a finished task.
	ctrChanged chan struct{}
	// This holds the number of workers we've created.
	workerCount int
}

// NewPool creates a new pool, with a certain number of workers.
//
// If count <= 0, this will use the number of available CPUs instead.
func NewPool(count int) *Pool {
	var p Pool

	if count <= 0 {
		count = runtime.NumCPU()
	}

	p.commands = make(chan command)
	p.workerCount = count
	p.ctrChanged = make(chan struct{})

	for i := 0; i < count; i++ {
		go worker(p.commands, p.ctrChanged)
	}

	return &p
}

// TearDown cleanly tears down a pool, closing channels, etc.
func (p *Pool) TearDown() {
	close(p.commands)
}

// Search queries the function f, until count successes are found.
//
// f is supposed to try a single candidate, returning nil if that candidate
// isn't successful.
//
// The result will be an array containing the first count successes.
func (p *Pool) Search(count int, f func() interface{}) []interface{} {
	if p == nil {
		return searchAlone(f, count)
	}

	results := make([]interface{}, count)

	ctr := int64(count)
	cmd := command{
		ctr:     &ctr,
		f:       f,
		results: results,
	}
	for i := 0; i < p.workerCount; i++ {
		p.commands <- cmd
	}
	// Each filled slot is signalled exactly once, so waiting for count
	// signals both joins the workers and makes their writes visible.
	for received := 0; received < count; received++ {
		<-p.ctrChanged
	}

	return results
}

// LockedReader wraps an io.Reader to be safe for concurrent reads.
//
// This type implements io.Reader, returning the same output.
//
// This means acquiring a lock whenever a read happens, so be aware of that
// for performance or concurrency reasons.
type LockedReader struct {
	reader io.Reader
	m      sync.Mutex
}

// NewLockedReader creates a LockedReader by wrapping an underlying value.
func NewLockedReader(r io.Reader) *LockedReader {
	// Intentionally not initializing m, since the zero value is ok
	return &LockedReader{reader: r}
}

// Read implements io.Reader for LockedReader.
//
// The behavior is to return the same output as the underlying reader. When
// calling this function concurrently, what value ends up getting read is
// raced, but you won't end up reading the same value twice, or otherwise
// messing up the state of the reader.
func (r *LockedReader) Read(p []byte) (int, error) {
	r.m.Lock()
	defer r.m.Unlock()
	return r.reader.Read(p)
}
