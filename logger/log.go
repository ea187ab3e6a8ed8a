// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Entry represents a single line/entry in the log
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// not exposing logger to outside of the package. the package level functions
// can be used to log to the central logger.
//
// A mutex guards every field below: the conformance harness fans opcode
// vector runs out across goroutines with golang.org/x/sync/errgroup, and
// every one of those workers logs through this same central instance.
type logger struct {
	mu sync.Mutex

	maxEntries int
	entries    []Entry
	echo       bool
	echoTo     io.Writer

	// index into entries up to which writeRecent has already flushed
	recentMark int

	// timestamp of most recent log() event
	atomicTimestamp atomic.Value // time.Time
}

func newLogger(maxEntries int) *logger {
	return &logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
		echoTo:     os.Stdout,
	}
}

func (l *logger) log(tag, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := &Entry{}
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if detail != e.detail || tag != e.tag {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), tag: tag, detail: detail})
		e = &l.entries[len(l.entries)-1]
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	// store atomic timestamp
	l.atomicTimestamp.Store(e.Timestamp)

	// mainain maximum length
	if len(l.entries) > l.maxEntries {
		dropped := len(l.entries) - l.maxEntries
		l.entries = l.entries[dropped:]
		l.recentMark -= dropped
		if l.recentMark < 0 {
			l.recentMark = 0
		}
	}

	if l.echo {
		io.WriteString(l.echoTo, e.String())
	}
}

func (l *logger) logf(tag, detail string, args ...interface{}) {
	l.log(tag, fmt.Sprintf(detail, args...))
}

func (l *logger) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
	l.recentMark = 0
}

func (l *logger) write(output io.Writer) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return false
	}
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
	return true
}

// writeRecent writes only the entries added since the last call to
// writeRecent (or since startup, on the first call).
func (l *logger) writeRecent(output io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries[l.recentMark:] {
		io.WriteString(output, e.String())
	}
	l.recentMark = len(l.entries)
}

func (l *logger) tail(output io.Writer, number int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// setEcho enables (output non-nil) or disables (output nil) echoing of
// every subsequent log() call to output as it happens. If flushRecent is
// true, entries already logged since the last writeRecent call are
// flushed to output first.
func (l *logger) setEcho(output io.Writer, flushRecent bool) {
	l.mu.Lock()
	if flushRecent {
		for _, e := range l.entries[l.recentMark:] {
			io.WriteString(output, e.String())
		}
		l.recentMark = len(l.entries)
	}
	l.echo = output != nil
	if output != nil {
		l.echoTo = output
	}
	l.mu.Unlock()
}

// borrowLog gives f exclusive read access to the current entries slice.
func (l *logger) borrowLog(f func([]Entry)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f(l.entries)
}

func (l *logger) copy(ref time.Time) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ref != l.atomicTimestamp.Load().(time.Time) {
		c := make([]Entry, len(l.entries))
		copy(c, l.entries)
		return c
	}
	return nil
}
