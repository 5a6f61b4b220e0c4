// Package bench times a single driver call and turns it into a report.
package bench

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/client/models"
)

const (
	TransportGRPC = "grpc"
	TransportREST = "rest"
)

// Result is what a driver call reports back: the number of records (rows,
// chunks or messages) and payload bytes it moved.
type Result struct {
	Records int64
	Bytes   int64
}

type Func func(ctx context.Context) (Result, error)

// Runner measures calls. now is replaceable in tests.
type Runner struct {
	now func() time.Time
}

func NewRunner() *Runner {
	return &Runner{now: time.Now}
}

// Run executes fn once and reports its elapsed time, throughput and heap
// activity. A failed call still yields a report with Error set; the error is
// returned alongside it.
func (r *Runner) Run(ctx context.Context, scenario, transport string, fn Func) (models.Report, error) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	started := r.now()
	res, err := fn(ctx)
	elapsed := r.now().Sub(started)

	runtime.ReadMemStats(&after)

	rep := models.Report{
		Scenario:   scenario,
		Transport:  transport,
		Records:    res.Records,
		Bytes:      res.Bytes,
		Elapsed:    elapsed,
		AllocBytes: after.TotalAlloc - before.TotalAlloc,
		NumGC:      after.NumGC - before.NumGC,
		StartedAt:  started.UTC(),
	}
	if err != nil {
		rep.Error = err.Error()
	}
	return rep, err
}

// Print writes reports as an aligned table.
func Print(w io.Writer, reports ...models.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tSCENARIO\tTRANSPORT\tRECORDS\tBYTES\tELAPSED\tREC/S\tMB/S\tALLOC\tGC\tERROR")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%.1f\t%.2f\t%d\t%d\t%s\n",
			r.StartedAt.Local().Format(time.DateTime), r.Scenario, r.Transport, r.Records, r.Bytes,
			r.Elapsed.Round(time.Microsecond), r.RecordsPerSecond(), r.MBPerSecond(),
			r.AllocBytes, r.NumGC, r.Error)
	}
	return tw.Flush()
}
