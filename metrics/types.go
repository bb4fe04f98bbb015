// Package metrics records transform timings and summarises them into
// performance reports.
package metrics

import (
	"time"

	"github.com/google/uuid"
)

// OperationRecord is a single transform run.
type OperationRecord struct {
	// ID uniquely identifies the run and matches the run_id log field.
	ID string `json:"id"`

	Algorithm  string `json:"algorithm"`
	Operation  string `json:"operation"`
	Strength   int    `json:"strength"`
	PixelCount int    `json:"pixel_count"`

	// Status is StatusSuccess or StatusError.
	Status string `json:"status"`

	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time,omitempty"`
	Duration  time.Duration `json:"duration"`

	// ErrorMsg contains error details if Status is StatusError.
	ErrorMsg string `json:"error_msg,omitempty"`
}

// Status constants for OperationRecord.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// NewRecordID returns a fresh random run identifier.
func NewRecordID() string {
	return uuid.NewString()
}

// Complete stamps the end time and outcome onto r.
func (r *OperationRecord) Complete(end time.Time, err error) {
	r.EndTime = end
	r.Duration = end.Sub(r.StartTime)
	if err != nil {
		r.Status = StatusError
		r.ErrorMsg = err.Error()
		return
	}
	r.Status = StatusSuccess
	r.ErrorMsg = ""
}

// Succeeded reports whether the record completed without error.
func (r OperationRecord) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Report summarises recorded operations. Timing fields cover successful
// operations only and are formatted in milliseconds with two decimals;
// they read "0.00" when nothing has succeeded yet.
type Report struct {
	TotalOperations  int64  `json:"totalOperations"`
	FailedOperations int64  `json:"failedOperations"`
	AverageTime      string `json:"averageTime"`
	FastestTime      string `json:"fastestTime"`
	SlowestTime      string `json:"slowestTime"`

	Average time.Duration `json:"-"`
	Fastest time.Duration `json:"-"`
	Slowest time.Duration `json:"-"`

	// ByAlgorithm holds per-algorithm statistics keyed by algorithm name.
	ByAlgorithm map[string]*AlgorithmMetrics `json:"byAlgorithm,omitempty"`
}

// AlgorithmMetrics holds statistics for one algorithm.
type AlgorithmMetrics struct {
	Count       int64         `json:"count"`
	SuccessRate float64       `json:"success_rate"`
	AvgDuration time.Duration `json:"avg_duration"`
}
