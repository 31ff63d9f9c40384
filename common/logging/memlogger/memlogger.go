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

// Package memlogger implements a logging.Logger which records messages in
// memory, for tests.
package memlogger

import (
	"context"
	"fmt"
	"sync"

	"go.chromium.org/playpublisher/common/logging"
)

// LogEntry is a single recorded message.
type LogEntry struct {
	Level  logging.Level
	Msg    string
	Fields logging.Fields
}

// MemLogger is an implementation of Logger.
//
// It is safe for concurrent use.
type MemLogger struct {
	lock *sync.Mutex
	data *[]LogEntry
	ctx  context.Context
}

var _ logging.Logger = (*MemLogger)(nil)

// Use adds a memory backed Logger to Context, with concrete type
// *MemLogger. Casting to the concrete type can be used to inspect the
// log output after running a test case, for example.
func Use(ctx context.Context) context.Context {
	lock := &sync.Mutex{}
	data := &[]LogEntry{}
	return logging.SetFactory(ctx, func(ctx context.Context) logging.Logger {
		return &MemLogger{lock, data, ctx}
	})
}

// Debugf implements the logging.Logger interface.
func (m *MemLogger) Debugf(format string, args ...any) {
	m.LogCall(logging.Debug, 1, format, args)
}

// Infof implements the logging.Logger interface.
func (m *MemLogger) Infof(format string, args ...any) {
	m.LogCall(logging.Info, 1, format, args)
}

// Warningf implements the logging.Logger interface.
func (m *MemLogger) Warningf(format string, args ...any) {
	m.LogCall(logging.Warning, 1, format, args)
}

// Errorf implements the logging.Logger interface.
func (m *MemLogger) Errorf(format string, args ...any) {
	m.LogCall(logging.Error, 1, format, args)
}

// LogCall implements the logging.Logger interface.
func (m *MemLogger) LogCall(lvl logging.Level, _ int, format string, args []any) {
	if !logging.IsLogging(m.ctx, lvl) {
		return
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	*m.data = append(*m.data, LogEntry{
		Level:  lvl,
		Msg:    fmt.Sprintf(format, args...),
		Fields: logging.GetFields(m.ctx),
	})
}

// Messages returns all of the log messages that this memory logger has
// recorded.
func (m *MemLogger) Messages() []LogEntry {
	m.lock.Lock()
	defer m.lock.Unlock()
	return append([]LogEntry(nil), (*m.data)...)
}

// HasMessage returns true if a message at the given level whose text equals
// msg was recorded.
func (m *MemLogger) HasMessage(lvl logging.Level, msg string) bool {
	for _, e := range m.Messages() {
		if e.Level == lvl && e.Msg == msg {
			return true
		}
	}
	return false
}

// Reset resets the logged messages recorded so far.
func (m *MemLogger) Reset() {
	m.lock.Lock()
	defer m.lock.Unlock()
	*m.data = nil
}

// MustDumpStdout dumps the log to stdout, for debugging tests.
func (m *MemLogger) MustDumpStdout() {
	for _, e := range m.Messages() {
		fmt.Printf("%s %s %s\n", e.Level, e.Msg, e.Fields)
	}
}
