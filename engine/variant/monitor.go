package variant

import (
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Monitor counts generator work. All methods are safe for concurrent use.
type Monitor struct {
	textures  atomic.Int64
	variants  atomic.Int64
	failures  atomic.Int64
	skipped   atomic.Int64
	refHits   atomic.Int64
	refMisses atomic.Int64

	mu     sync.Mutex
	phases map[string]*phase
}

type phase struct {
	count int
	total time.Duration
}

// NewMonitor creates an empty monitor
func NewMonitor() *Monitor {
	return &Monitor{phases: make(map[string]*phase)}
}

func (m *Monitor) TextureProcessed() { m.textures.Add(1) }
func (m *Monitor) VariantGenerated() { m.variants.Add(1) }
func (m *Monitor) Failed()           { m.failures.Add(1) }
func (m *Monitor) Skipped()          { m.skipped.Add(1) }

// Reference records whether a reference-driven scale found both records
func (m *Monitor) Reference(hit bool) {
	if hit {
		m.refHits.Add(1)
	} else {
		m.refMisses.Add(1)
	}
}

// Start begins timing a phase; call the returned func when it completes
func (m *Monitor) Start(name string) func() {
	start := time.Now()
	return func() {
		m.record(name, time.Since(start))
	}
}

func (m *Monitor) record(name string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.phases[name]
	if p == nil {
		p = &phase{}
		m.phases[name] = p
	}
	p.count++
	p.total += d
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Textures        int64
	Variants        int64
	Failures        int64
	Skipped         int64
	ReferenceHits   int64
	ReferenceMisses int64
}

// Snapshot returns the current counters
func (m *Monitor) Snapshot() Snapshot {
	return Snapshot{
		Textures:        m.textures.Load(),
		Variants:        m.variants.Load(),
		Failures:        m.failures.Load(),
		Skipped:         m.skipped.Load(),
		ReferenceHits:   m.refHits.Load(),
		ReferenceMisses: m.refMisses.Load(),
	}
}

// Average returns the mean duration of a phase, or 0 if it never ran
func (m *Monitor) Average(name string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.phases[name]
	if p == nil || p.count == 0 {
		return 0
	}
	return p.total / time.Duration(p.count)
}

// Report logs the counters and phase timings
func (m *Monitor) Report(l *log.Logger) {
	s := m.Snapshot()
	l.Printf("Monitor: %d textures, %d variants, %d skipped, %d failed", s.Textures, s.Variants, s.Skipped, s.Failures)
	if s.ReferenceHits+s.ReferenceMisses > 0 {
		l.Printf("Monitor: reference scaling %d hits, %d fallbacks", s.ReferenceHits, s.ReferenceMisses)
	}

	m.mu.Lock()
	names := make([]string, 0, len(m.phases))
	for n := range m.phases {
		names = append(names, n)
	}
	m.mu.Unlock()
	sort.Strings(names)
	for _, n := range names {
		l.Printf("Monitor: %-10s avg %v", n, m.Average(n))
	}
}

// Reset clears every counter and timing
func (m *Monitor) Reset() {
	m.textures.Store(0)
	m.variants.Store(0)
	m.failures.Store(0)
	m.skipped.Store(0)
	m.refHits.Store(0)
	m.refMisses.Store(0)
	m.mu.Lock()
	m.phases = make(map[string]*phase)
	m.mu.Unlock()
}
