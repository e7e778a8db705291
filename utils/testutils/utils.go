package testutils

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/flowrender/flowrender/logger"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// CapturedLogs stores the messages written to the warning logger
// during a test.
type CapturedLogs struct {
	buf      *bytes.Buffer
	restored io.Writer
}

// CaptureLogs redirects the warning logger until one of the Assert
// methods is called.
func CaptureLogs() *CapturedLogs {
	out := CapturedLogs{buf: new(bytes.Buffer), restored: logger.WarningLogger.Writer()}
	logger.WarningLogger.SetOutput(out.buf)
	return &out
}

func (c *CapturedLogs) Logs() []string {
	logger.WarningLogger.SetOutput(c.restored)
	s := strings.TrimSpace(c.buf.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	if logs := c.Logs(); len(logs) != 0 {
		t.Fatalf("expected no logs, got (%d): \n %s", len(logs), strings.Join(logs, "\n"))
	}
}
