package logging

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrintf(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	defer log.SetOutput(os.Stderr)
	defer func(m Flag) { Mode = m }(Mode)

	Mode = Nil
	Printf(Performance, "hidden %d", 1)
	assert.Equal(t, "", buf.String())

	Mode = Performance
	Printf(Performance, "shown %d", 2)
	Printf(Debug, "hidden %d", 3)
	assert.True(t, strings.Contains(buf.String(), "shown 2"))
	assert.False(t, strings.Contains(buf.String(), "hidden"))

	Mode = Debug
	Printf(Debug, "shown %d", 4)
	assert.True(t, strings.Contains(buf.String(), "shown 4"))
}

func TestTimer(t *testing.T) {
	timer := NewTimer("sleep")
	time.Sleep(time.Millisecond)
	assert.True(t, timer.Stop() >= time.Millisecond)
}

func TestMemString(t *testing.T) {
	assert.True(t, strings.HasPrefix(MemString(), "Alloc - "))
}
