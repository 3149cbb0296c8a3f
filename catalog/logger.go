// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v3"
)

var _ badger.Logger = badgerLogger{}

// badgerLogger routes Badger's printf-style logging into slog. Badger's
// info output is routine, so it is demoted to Debug.
type badgerLogger struct {
	l *slog.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Error(line(format, args))
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Warn(line(format, args))
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.l.Debug(line(format, args))
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.l.Debug(line(format, args))
}

func line(format string, args []interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
