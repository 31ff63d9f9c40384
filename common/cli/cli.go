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

// Package cli is a helper package for "github.com/maruel/subcommands".
//
// It adds a context to the application, built once per command run, and
// makes the environment the command runs with available through it.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/maruel/subcommands"
)

// ContextModificator takes a context, adds something, and returns a new one.
//
// It is implemented by Application and can optionally be implemented by
// commands to set up the context of their run.
type ContextModificator interface {
	ModifyContext(context.Context) context.Context
}

// Application is like subcommands.DefaultApplication, except it also produces
// a context.
type Application struct {
	Name     string
	Title    string
	Context  func(context.Context) context.Context
	Commands []*subcommands.Command
	EnvVars  map[string]subcommands.EnvVarDefinition

	// Out and Err are where the commands write to. nil means os.Stdout and
	// os.Stderr.
	Out io.Writer
	Err io.Writer
}

var _ interface {
	subcommands.Application
	ContextModificator
} = (*Application)(nil)

// GetName implements interface subcommands.Application.
func (a *Application) GetName() string {
	return a.Name
}

// GetTitle implements interface subcommands.Application.
func (a *Application) GetTitle() string {
	return a.Title
}

// GetCommands implements interface subcommands.Application.
func (a *Application) GetCommands() []*subcommands.Command {
	return a.Commands
}

// GetOut implements interface subcommands.Application.
func (a *Application) GetOut() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

// GetErr implements interface subcommands.Application.
func (a *Application) GetErr() io.Writer {
	if a.Err != nil {
		return a.Err
	}
	return os.Stderr
}

// GetEnvVars implements interface subcommands.Application.
func (a *Application) GetEnvVars() map[string]subcommands.EnvVarDefinition {
	return a.EnvVars
}

// ModifyContext implements interface ContextModificator.
//
// It calls a.Context if it is set.
func (a *Application) ModifyContext(ctx context.Context) context.Context {
	if a.Context != nil {
		return a.Context(ctx)
	}
	return ctx
}

type envKey struct{}

// GetContext returns the context of a command run.
//
// The context is derived from context.Background(), modified by the
// application and then by the command if they implement ContextModificator.
// env is attached to it, see Getenv.
func GetContext(app subcommands.Application, cmd subcommands.CommandRun, env subcommands.Env) context.Context {
	ctx := context.WithValue(context.Background(), envKey{}, env)
	if m, ok := app.(ContextModificator); ok {
		ctx = m.ModifyContext(ctx)
	}
	if m, ok := cmd.(ContextModificator); ok {
		ctx = m.ModifyContext(ctx)
	}
	return ctx
}

// Getenv returns the value of an environment variable declared by the
// application, as seen by the command run owning ctx.
//
// Declared variables that are not set yield their default. Undeclared ones
// yield "".
func Getenv(ctx context.Context, key string) string {
	env, _ := ctx.Value(envKey{}).(subcommands.Env)
	return env[key].Value
}

// LookupEnv is Getenv that also reports whether the variable was set
// explicitly.
func LookupEnv(ctx context.Context, key string) (string, bool) {
	env, _ := ctx.Value(envKey{}).(subcommands.Env)
	v := env[key]
	return v.Value, v.Exists
}
