package metrics

import (
	"sync"
	"time"

	"pixelcipher/format"
)

// DefaultHistoryCapacity is the number of records kept when none is configured.
const DefaultHistoryCapacity = 100

// Store is an in-memory Collector. Aggregates cover every record ever
// seen; the history keeps only the most recent ones.
//
//	store := NewStore(StoreConfig{HistoryCapacity: 50})
//	store.Record(rec)
//	report := store.Report()
type Store struct {
	mu sync.RWMutex

	history *ring[OperationRecord]

	totalSuccess  int64
	totalErrors   int64
	totalDuration time.Duration
	fastest       time.Duration
	slowest       time.Duration

	byAlgorithm map[string]*algorithmStats
}

type algorithmStats struct {
	count         int64
	successCount  int64
	totalDuration time.Duration
}

// StoreConfig configures a Store.
type StoreConfig struct {
	// HistoryCapacity is the max number of records retained for Recent.
	HistoryCapacity int
}

// DefaultStoreConfig returns the default configuration.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{HistoryCapacity: DefaultHistoryCapacity}
}

// NewStore creates a Store. A non-positive capacity falls back to
// DefaultHistoryCapacity.
func NewStore(config StoreConfig) *Store {
	capacity := config.HistoryCapacity
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &Store{
		history:     newRing[OperationRecord](capacity),
		byAlgorithm: make(map[string]*algorithmStats),
	}
}

// Record stores rec and folds it into the aggregates. Only successful
// records contribute to the timing figures.
func (s *Store) Record(rec OperationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.push(rec)

	stats, ok := s.byAlgorithm[rec.Algorithm]
	if !ok {
		stats = &algorithmStats{}
		s.byAlgorithm[rec.Algorithm] = stats
	}
	stats.count++

	if !rec.Succeeded() {
		s.totalErrors++
		return
	}

	stats.successCount++
	stats.totalDuration += rec.Duration

	if s.totalSuccess == 0 || rec.Duration < s.fastest {
		s.fastest = rec.Duration
	}
	if s.totalSuccess == 0 || rec.Duration > s.slowest {
		s.slowest = rec.Duration
	}
	s.totalSuccess++
	s.totalDuration += rec.Duration
}

// Report returns the aggregated performance report.
func (s *Store) Report() Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := emptyReport()
	report.TotalOperations = s.totalSuccess
	report.FailedOperations = s.totalErrors

	if s.totalSuccess > 0 {
		report.Average = s.totalDuration / time.Duration(s.totalSuccess)
		report.Fastest = s.fastest
		report.Slowest = s.slowest
		report.AverageTime = averageMillis(s.totalDuration, s.totalSuccess)
		report.FastestTime = format.Millis(s.fastest)
		report.SlowestTime = format.Millis(s.slowest)
	}

	for name, stats := range s.byAlgorithm {
		m := &AlgorithmMetrics{Count: stats.count}
		if stats.count > 0 {
			m.SuccessRate = float64(stats.successCount) / float64(stats.count) * 100
		}
		if stats.successCount > 0 {
			m.AvgDuration = stats.totalDuration / time.Duration(stats.successCount)
		}
		report.ByAlgorithm[name] = m
	}

	return report
}

// Recent returns up to limit records, oldest first.
func (s *Store) Recent(limit int) []OperationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.last(limit)
}

// Len returns the number of records currently held in the history.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.len()
}

// Reset discards the history and all aggregates.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.clear()
	s.totalSuccess = 0
	s.totalErrors = 0
	s.totalDuration = 0
	s.fastest = 0
	s.slowest = 0
	s.byAlgorithm = make(map[string]*algorithmStats)
}

// averageMillis divides before formatting so sub-nanosecond precision in
// the mean is kept.
func averageMillis(total time.Duration, n int64) string {
	ms := float64(total) / float64(time.Millisecond) / float64(n)
	return format.Fixed(ms, 2)
}

func emptyReport() Report {
	return Report{
		AverageTime: "0.00",
		FastestTime: "0.00",
		SlowestTime: "0.00",
		ByAlgorithm: make(map[string]*AlgorithmMetrics),
	}
}
