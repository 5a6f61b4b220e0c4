// Package ui renders transfer progress on the terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressBar implements client.Progress with a byte progress bar.
type ProgressBar struct {
	out       io.Writer
	operation string
	bar       *progressbar.ProgressBar
}

func NewProgressBar(out io.Writer, operation string) *ProgressBar {
	return &ProgressBar{out: out, operation: operation}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (p *ProgressBar) Start(name string, total int64) {
	p.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(fmt.Sprintf("%s %s", p.operation, name)),
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(false),
	)
}

func (p *ProgressBar) Advance(n int) {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add(n)
}

func (p *ProgressBar) Done() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	fmt.Fprintln(p.out)
	p.bar = nil
}
