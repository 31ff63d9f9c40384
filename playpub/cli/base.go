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

package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/maruel/subcommands"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"go.chromium.org/playpublisher/common/api/androidpublisher/v3"
	"go.chromium.org/playpublisher/common/api/gensupport"
	"go.chromium.org/playpublisher/common/auth"
	"go.chromium.org/playpublisher/common/cli"
	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/lhttp"
	"go.chromium.org/playpublisher/common/logging"
	"go.chromium.org/playpublisher/common/retry"
	"go.chromium.org/playpublisher/common/retry/transient"
)

// retryBackoff is the backoff between retries of transient failures.
var retryBackoff = retry.ExponentialBackoff{
	Limited:    retry.Limited{Delay: 500 * time.Millisecond},
	Multiplier: 2,
	MaxDelay:   30 * time.Second,
}

// command is implemented by every API command.
type command interface {
	subcommands.CommandRun

	// positionalRange is the accepted number of positional arguments. A
	// negative hi means no upper bound.
	positionalRange() (lo, hi int)
	// validateFlags checks the flags and positional arguments before
	// anything is sent.
	validateFlags(ctx context.Context, positionals []string) error
	// execute runs the command, returning what to print as JSON.
	execute(ctx context.Context, svc *androidpublisher.Service) (any, error)
}

// cmdBase holds the flags common to all API commands.
type cmdBase struct {
	subcommands.CommandRunBase

	params Params

	configPath  string
	packageName string
	token       string
	credentials string
	logLevel    logging.Level

	cfg *Config
}

func (c *cmdBase) initFlags(p Params) {
	c.params = p
	c.logLevel = logging.DefaultLevel

	c.Flags.StringVar(&c.configPath, "config", p.configPath(),
		"Path of the YAML configuration file.")
	c.Flags.StringVar(&c.packageName, "package", "",
		"Package name of the app, e.g. com.example.app. Overrides the configuration.")
	c.Flags.StringVar(&c.token, "token", "",
		"OAuth2 access token to use instead of the configured credentials.")
	c.Flags.StringVar(&c.credentials, "credentials", "",
		"Path of a service account JSON key. Overrides the configuration.")
	c.Flags.Var(&c.logLevel, "log-level",
		"Logging level: debug, info, warning or error. Overrides the configuration.")
}

// pkg is the package name the command operates on.
func (c *cmdBase) pkg() string {
	return c.cfg.Package
}

func (c *cmdBase) doContextExecute(a subcommands.Application, cmd command, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, cmd, env)
	if err := c.run(ctx, a.GetOut(), cmd, args); err != nil {
		fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
		return 1
	}
	return 0
}

func (c *cmdBase) run(ctx context.Context, out io.Writer, cmd command, args []string) error {
	switch lo, hi := cmd.positionalRange(); {
	case len(args) < lo:
		return errors.Reason("expected at least %d positional arguments, got %d", lo, len(args)).Err()
	case hi >= 0 && len(args) > hi:
		return errors.Reason("expected at most %d positional arguments, got %d", hi, len(args)).Err()
	}

	var err error
	if c.cfg, err = LoadConfig(c.configPath); err != nil {
		return err
	}
	if err := c.applyFlags(); err != nil {
		return err
	}
	level := logging.DefaultLevel
	if c.cfg.LogLevel != nil {
		level = *c.cfg.LogLevel
	}
	if c.flagSet("log-level") {
		level = c.logLevel
	}
	ctx = logging.SetLevel(ctx, level)

	if c.pkg() == "" {
		return errors.Reason("no package name: pass -package or set it in %s", c.configPath).Err()
	}
	if err := cmd.validateFlags(ctx, args); err != nil {
		return err
	}

	svc, err := c.service(ctx)
	if err != nil {
		return err
	}
	res, err := cmd.execute(ctx, svc)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}
	blob, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return errors.Annotate(err, "encoding output").Err()
	}
	_, err = fmt.Fprintf(out, "%s\n", blob)
	return err
}

func (c *cmdBase) flagSet(name string) (set bool) {
	c.Flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return
}

// applyFlags overrides the configuration with the flags.
func (c *cmdBase) applyFlags() error {
	if c.packageName != "" {
		c.cfg.Package = c.packageName
	}
	if c.credentials != "" {
		c.cfg.Credentials = c.credentials
		c.cfg.Token = ""
	}
	if c.token != "" {
		c.cfg.Token = c.token
		c.cfg.Credentials = ""
	}
	return c.cfg.Validate()
}

// service builds the API client described by the configuration.
func (c *cmdBase) service(ctx context.Context) (*androidpublisher.Service, error) {
	base := c.params.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	if c.cfg.QPS > 0 {
		burst := int(c.cfg.QPS)
		if burst < 1 {
			burst = 1
		}
		rt = lhttp.LimitRate(rt, rate.NewLimiter(rate.Limit(c.cfg.QPS), burst))
	}
	if c.cfg.MaxConcurrent > 0 {
		rt = lhttp.LimitConcurrency(rt, semaphore.NewWeighted(c.cfg.MaxConcurrent))
	}

	a, err := c.authenticator(&http.Client{Transport: base})
	if err != nil {
		return nil, err
	}

	opts := androidpublisher.Options{
		Client:      &http.Client{Transport: rt},
		Auth:        a,
		UserAgent:   "playpub/" + Version,
		BasePath:    c.cfg.BaseURL,
		RootURL:     c.cfg.RootURL,
		Delegate:    gensupport.LoggingDelegate{Ctx: ctx},
		MaxAttempts: c.cfg.retries() + 1,
	}
	if c.cfg.UserAgent != "" {
		opts.UserAgent += " " + c.cfg.UserAgent
	}
	if n := c.cfg.retries(); n > 0 {
		opts.Retry = transient.Only(retry.LimitedFactory(retryBackoff, n))
	}
	return androidpublisher.NewService(ctx, opts)
}

func (c *cmdBase) authenticator(client *http.Client) (auth.Authenticator, error) {
	switch {
	case c.params.Auth != nil:
		return c.params.Auth, nil
	case c.cfg.Token != "":
		return auth.StaticToken(c.cfg.Token), nil
	case c.cfg.Credentials != "":
		key, err := auth.LoadServiceAccountKey(c.cfg.Credentials)
		if err != nil {
			return nil, err
		}
		return auth.ServiceAccount(key, client)
	default:
		return nil, errors.New("no credentials: pass -token or -credentials, or set credentials in the configuration")
	}
}

// editFlag is embedded by commands working within an edit.
type editFlag struct {
	editID string
}

func (e *editFlag) registerEditFlag(c *cmdBase, usage string) {
	c.Flags.StringVar(&e.editID, "edit", "", usage)
}

// withEdit runs cb within the edit given by -edit. Without one, cb runs in a
// fresh edit, committed afterwards if commit is set. A fresh edit that is not
// committed is deleted.
func (e *editFlag) withEdit(ctx context.Context, svc *androidpublisher.Service, pkg string, commit bool, cb func(editID string) (any, error)) (any, error) {
	if e.editID != "" {
		return cb(e.editID)
	}

	edit, err := svc.Edits.Insert(pkg, &androidpublisher.AppEdit{}).Context(ctx).Do()
	if err != nil {
		return nil, errors.Annotate(err, "opening an edit").Err()
	}
	logging.Debugf(ctx, "Opened edit %s", edit.Id)

	discard := func() {
		if err := svc.Edits.Delete(pkg, edit.Id).Context(ctx).Do(); err != nil {
			logging.Warningf(ctx, "Failed to delete edit %s: %s", edit.Id, err)
		}
	}

	res, err := cb(edit.Id)
	if err != nil || !commit {
		discard()
		return res, err
	}

	if _, err := svc.Edits.Commit(pkg, edit.Id).Context(ctx).Do(); err != nil {
		discard()
		return nil, errors.Annotate(err, "committing edit %s", edit.Id).Err()
	}
	logging.Infof(ctx, "Committed edit %s", edit.Id)
	return res, nil
}
