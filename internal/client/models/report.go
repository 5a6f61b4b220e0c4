// Package models defines client-side data models used by the transferbench CLI.
package models

import "time"

// Report is the outcome of one benchmark run.
type Report struct {
	// Id is a random identifier assigned when the report is created.
	Id string

	// Scenario names the operation, e.g. "upload" or "employees-stream".
	Scenario string
	// Transport is "grpc" or "rest".
	Transport string

	Records int64
	Bytes   int64
	Elapsed time.Duration

	// AllocBytes is the TotalAlloc delta over the run; NumGC the number of
	// collections that completed during it.
	AllocBytes uint64
	NumGC      uint32

	// Error holds the failure message of an unsuccessful run.
	Error string

	StartedAt time.Time
}

func (r Report) RecordsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Records) / r.Elapsed.Seconds()
}

// MBPerSecond reports throughput in MiB/s.
func (r Report) MBPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / (1 << 20) / r.Elapsed.Seconds()
}

func (r Report) Failed() bool {
	return r.Error != ""
}
