package helper

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type StyleFormatter struct{}

func (f *StyleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	level := strings.ToUpper(entry.Level.String())
	function := "-"
	if entry.Caller != nil {
		function = entry.Caller.Function
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s %s - %s", timestamp, level, function, entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// ConfigureLogger sets the level and caller reporting of Log.
func ConfigureLogger(level string, reportCaller bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", level, err)
	}
	Log.SetLevel(lvl)
	Log.SetReportCaller(reportCaller)
	return nil
}

func init() {
	Log.SetFormatter(&StyleFormatter{})
	// stdout carries command output.
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.InfoLevel)
}
