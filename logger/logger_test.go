package logger_test

import (
	"strings"
	"testing"

	"github.com/mvandenberg/sc1emu/logger"
	"github.com/mvandenberg/sc1emu/test"
)

func TestCentralLoggerWriteAndTail(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Write(w)
	test.DemandEquality(t, w.String(), "")

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	test.DemandEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(w)
	test.DemandEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	logger.Tail(w, 100)
	test.DemandEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	logger.Tail(w, 1)
	test.DemandEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	logger.Tail(w, 0)
	test.DemandEquality(t, w.String(), "")
}

type prohibitLogging struct{ allow bool }

func (p prohibitLogging) AllowLogging() bool { return p.allow }

func TestPermissionGatesLogging(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log(prohibitLogging{allow: false}, "tag", "detail")
	logger.Write(w)
	test.DemandEquality(t, w.String(), "")

	logger.Log(prohibitLogging{allow: true}, "tag", "detail")
	logger.Write(w)
	test.DemandEquality(t, w.String(), "tag: detail\n")
}

func TestLogfFormatsDetail(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Logf(logger.Allow, "tag", "wrapped: %d", 42)
	logger.Write(w)
	test.DemandEquality(t, w.String(), "tag: wrapped: 42\n")
}

func TestRepeatedEntryIsCollapsedWithACount(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log(logger.Allow, "tag", "same")
	logger.Log(logger.Allow, "tag", "same")
	logger.Write(w)
	test.DemandEquality(t, w.String(), "tag: same (repeat x2)\n")
}

func TestWriteRecentOnlyFlushesNewEntriesSinceLastCall(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log(logger.Allow, "tag", "first")
	logger.WriteRecent(w)
	test.DemandEquality(t, w.String(), "tag: first\n")

	w.Reset()
	logger.WriteRecent(w)
	test.DemandEquality(t, w.String(), "")

	w.Reset()
	logger.Log(logger.Allow, "tag", "second")
	logger.WriteRecent(w)
	test.DemandEquality(t, w.String(), "tag: second\n")
}

func TestSetEchoMirrorsSubsequentLogEntries(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.SetEcho(w, false)
	logger.Log(logger.Allow, "tag", "echoed")
	test.DemandEquality(t, w.String(), "tag: echoed\n")

	logger.SetEcho(nil, false)
}

func TestBorrowLogSeesCurrentEntries(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "tag", "borrowed")

	seen := 0
	logger.BorrowLog(func(entries []logger.Entry) {
		seen = len(entries)
	})
	test.DemandEquality(t, seen, 1)
}
