package board

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// Supplier keeps a pool of pre-validated boards so session creation never
// waits on board synthesis.
type Supplier struct {
	gen      *Generator
	poolSize int

	mu   sync.Mutex
	pool []Board
	busy atomic.Bool
	wg   sync.WaitGroup
}

func NewSupplier(gen *Generator, poolSize int) *Supplier {
	if poolSize < 1 {
		poolSize = 1
	}
	return &Supplier{gen: gen, poolSize: poolSize}
}

// Prepare fills the pool synchronously. Called once at startup.
func (s *Supplier) Prepare() error {
	return s.refill()
}

// Take pops a pooled board, synthesizing one on the spot when the pool ran
// dry, and kicks off a background refill either way.
func (s *Supplier) Take() (Board, error) {
	s.mu.Lock()
	var b Board
	ok := false
	if n := len(s.pool); n > 0 {
		b = s.pool[n-1]
		s.pool = s.pool[:n-1]
		ok = true
	}
	s.mu.Unlock()

	if !ok {
		log.Warn().Msg("board pool exhausted, generating on demand")
		var err error
		b, err = s.gen.Generate()
		if err != nil {
			return Board{}, err
		}
	}

	s.refillAsync()
	return b, nil
}

// Pooled reports how many boards are ready.
func (s *Supplier) Pooled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pool)
}

func (s *Supplier) refillAsync() {
	if !s.busy.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.busy.Store(false)
		if err := s.refill(); err != nil {
			log.Error().Err(err).Msg("board pool refill failed")
		}
	}()
}

func (s *Supplier) refill() error {
	for {
		s.mu.Lock()
		full := len(s.pool) >= s.poolSize
		s.mu.Unlock()
		if full {
			return nil
		}
		b, err := s.gen.Generate()
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.pool = append(s.pool, b)
		s.mu.Unlock()
	}
}

// Wait blocks until any in-flight background refill finishes. Test helper.
func (s *Supplier) Wait() {
	s.wg.Wait()
}
