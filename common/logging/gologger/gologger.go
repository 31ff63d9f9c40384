// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gologger is a compatibility layer between go-logging library and
// the common/logging package.
package gologger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	gol "github.com/op/go-logging"

	"go.chromium.org/playpublisher/common/logging"
)

// StandardFormat first prints process ID, time, filename, logging level
// and sequence number, all colored. Then the message.
const StandardFormat = `%{color}[P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}]` +
	`%{color:reset} %{message}`

// PlainFormat is StandardFormat without the terminal colors.
const PlainFormat = `[P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}] %{message}`

// LoggerConfig owns a go-logging Logger, configured in a particular way.
//
// It is meant to be set up once and then installed into contexts with Use.
type LoggerConfig struct {
	Format string    // see go-logging format docs; StandardFormat if empty
	Out    io.Writer // where to write the log to; os.Stderr if nil

	once sync.Once
	l    *gol.Logger
}

// Use registers go-logging based logger as default logger of the context.
func (lc *LoggerConfig) Use(ctx context.Context) context.Context {
	lc.once.Do(func() { lc.l = lc.newGoLogger() })
	return logging.SetFactory(ctx, func(ctx context.Context) logging.Logger {
		return &loggerImpl{ctx: ctx, l: lc.l}
	})
}

// newGoLogger instantiates new go-logging Logger with this config.
func (lc *LoggerConfig) newGoLogger() *gol.Logger {
	format := lc.Format
	if format == "" {
		format = StandardFormat
	}
	out := lc.Out
	if out == nil {
		out = os.Stderr
	}

	backend := gol.NewBackendFormatter(
		gol.NewLogBackend(out, "", 0),
		gol.MustStringFormatter(format))
	leveled := gol.AddModuleLevel(backend)
	// Level filtering is done by the logging package, based on the context.
	leveled.SetLevel(gol.DEBUG, "")

	l := gol.MustGetLogger("")
	l.ExtraCalldepth = 2
	l.SetBackend(leveled)
	return l
}

type loggerImpl struct {
	ctx context.Context
	l   *gol.Logger
}

func (li *loggerImpl) Debugf(format string, args ...any) {
	li.LogCall(logging.Debug, 1, format, args)
}

func (li *loggerImpl) Infof(format string, args ...any) {
	li.LogCall(logging.Info, 1, format, args)
}

func (li *loggerImpl) Warningf(format string, args ...any) {
	li.LogCall(logging.Warning, 1, format, args)
}

func (li *loggerImpl) Errorf(format string, args ...any) {
	li.LogCall(logging.Error, 1, format, args)
}

func (li *loggerImpl) LogCall(lvl logging.Level, calldepth int, format string, args []any) {
	if !logging.IsLogging(li.ctx, lvl) {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if fields := logging.GetFields(li.ctx); len(fields) > 0 {
		msg += " " + fields.String()
	}

	switch lvl {
	case logging.Debug:
		li.l.Debug(msg)
	case logging.Info:
		li.l.Info(msg)
	case logging.Warning:
		li.l.Warning(msg)
	case logging.Error:
		li.l.Error(msg)
	}
}
