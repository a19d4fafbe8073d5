package logging

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

// This is handled this way so that the flag doesn't need to be passed to
// every function in the project.
var (
	Mode Flag = Nil
)

// Printf logs the message if the current Mode is at least level.
func Printf(level Flag, format string, args ...interface{}) {
	if Mode >= level { log.Printf(format, args...) }
}

// MemString returns a string containing various statistics on the current
// memory usage.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB Integrated - %d MB",
		ms.Alloc >> 20, ms.Sys >> 20, ms.TotalAlloc >> 20,
	)
}

// Timer measures wall-clock time for Performance logging.
type Timer struct {
	name  string
	start time.Time
}

func NewTimer(name string) *Timer {
	return &Timer{name, time.Now()}
}

// Stop returns the time elapsed since NewTimer and logs it in Performance
// mode.
func (t *Timer) Stop() time.Duration {
	dt := time.Since(t.start)
	Printf(Performance, "%s: %s", t.name, dt)
	return dt
}
