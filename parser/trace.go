package parser

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var traceLog = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l
}()

// EnableTracing switches per-parse enter/exit logging on or off.
func EnableTracing(on bool) {
	if on {
		traceLog.SetLevel(logrus.TraceLevel)
	} else {
		traceLog.SetLevel(logrus.ErrorLevel)
	}
}

// SetTraceLogger substitutes the logger used for parse tracing.
func SetTraceLogger(l *logrus.Logger) {
	traceLog = l
}

var traceDepth int

type span struct {
	label string
}

func enterf(format string, args ...interface{}) span {
	sp := span{}
	if traceLog.IsLevelEnabled(logrus.TraceLevel) {
		sp.label = strings.ReplaceAll(fmt.Sprintf(format, args...), "\n", " ")
		traceLog.Tracef("%s→ %s", indentOf(traceDepth), sp.label)
		traceDepth++
	}
	return sp
}

func (sp span) exitf(s *Scanner) {
	if sp.label == "" {
		return
	}
	traceDepth--
	traceLog.Tracef("%s← %s @%d", indentOf(traceDepth), sp.label, s.cursor)
}

func indentOf(depth int) string {
	return strings.Repeat("  ", depth)
}
