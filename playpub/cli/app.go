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

// Package cli implements playpub, a command line client of the Google Play
// Developer API.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/maruel/subcommands"
	"golang.org/x/term"

	"go.chromium.org/playpublisher/common/auth"
	"go.chromium.org/playpublisher/common/cli"
	"go.chromium.org/playpublisher/common/logging/gologger"
)

// Version is the version of playpub.
const Version = "1.0.0"

// Params is the parameters of the playpub application.
type Params struct {
	// ConfigPath is the default value of -config. Empty means
	// DefaultConfigPath.
	ConfigPath string

	// Auth, if set, is used instead of the configured credentials.
	Auth auth.Authenticator
	// Transport is the base transport of all requests. nil means
	// http.DefaultTransport.
	Transport http.RoundTripper

	// Out and Err are the output streams. nil means os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer
}

func (p Params) configPath() string {
	if p.ConfigPath == "" {
		return DefaultConfigPath
	}
	return p.ConfigPath
}

// application creates the application and configures its subcommands.
func application(p Params) *cli.Application {
	logOut := p.Err
	if logOut == nil {
		logOut = os.Stderr
	}
	logCfg := &gologger.LoggerConfig{
		Format: logFormat(logOut),
		Out:    logOut,
	}
	return &cli.Application{
		Name:  "playpub",
		Title: "A CLI client for the Google Play Developer API.",
		Context: func(ctx context.Context) context.Context {
			return logCfg.Use(ctx)
		},
		Out: p.Out,
		Err: p.Err,
		Commands: []*subcommands.Command{
			editInsertCmd(p),
			editActionCmd(p, actionCommit),
			editActionCmd(p, actionValidate),
			editActionCmd(p, actionDelete),

			{}, // a separator
			uploadCmd(p, artifactAPK),
			uploadCmd(p, artifactBundle),
			internalShareCmd(p),

			{}, // a separator
			tracksListCmd(p),
			trackUpdateCmd(p),
			listingGetCmd(p),

			{}, // a separator
			reviewsListCmd(p),
			reviewReplyCmd(p),

			{}, // a separator
			purchaseGetCmd(p, productPurchase),
			purchaseGetCmd(p, subscriptionPurchase),
			voidedListCmd(p),

			{}, // a separator
			versionCmd,
			subcommands.CmdHelp,
		},
	}
}

// logFormat colors the log only when it goes to a terminal.
func logFormat(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return gologger.StandardFormat
	}
	return gologger.PlainFormat
}

// Main is the main function of the playpub application.
func Main(p Params, args []string) int {
	return subcommands.Run(application(p), args)
}

var versionCmd = &subcommands.Command{
	UsageLine: "version",
	ShortDesc: "prints the version",
	LongDesc:  "Prints the version of playpub.",
	CommandRun: func() subcommands.CommandRun {
		return &cmdVersion{}
	},
}

type cmdVersion struct {
	subcommands.CommandRunBase
}

func (c *cmdVersion) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "%s: version takes no arguments\n", a.GetName())
		return 1
	}
	fmt.Fprintf(a.GetOut(), "playpub %s\n", Version)
	return 0
}
