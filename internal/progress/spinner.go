package progress

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"
)

// Spinner is a process indicator written to an io.Writer (usually stderr).
type Spinner struct {
	out      io.Writer
	stopChan chan struct{}
	done     sync.WaitGroup
}

// NewSpinner instantiates a new Spinner writing to out.
func NewSpinner(out io.Writer) *Spinner {
	return &Spinner{out: out}
}

// Start starts the process indicator.
func (s *Spinner) Start(message string) {
	s.stopChan = make(chan struct{})
	s.done.Add(1)

	go func() {
		defer s.done.Done()
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					fmt.Fprintf(s.out, "\r%s  \r", message)
					return
				default:
					fmt.Fprintf(s.out, "\r%s %c", message, r)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator & waits for it to clear its line.
func (s *Spinner) Stop() {
	close(s.stopChan)
	s.done.Wait()
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d.Minutes() < 1 {
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	}
	if d.Hours() < 1 {
		return fmt.Sprintf("%dm:%ds", int64(d.Minutes()), int64(math.Mod(d.Seconds(), 60)))
	}
	return fmt.Sprintf("%dh:%dm:%ds",
		int64(d.Hours()), int64(math.Mod(d.Minutes(), 60)), int64(math.Mod(d.Seconds(), 60)))
}
