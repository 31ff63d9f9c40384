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

	"github.com/maruel/subcommands"
	"golang.org/x/text/language"

	"go.chromium.org/playpublisher/common/api/androidpublisher/v3"
	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/logging"
)

func editInsertCmd(p Params) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "edit-insert [options]",
		ShortDesc: "opens a new edit",
		LongDesc: `Opens a new edit of the app and prints it.

Other commands take the edit ID through -edit. The edit must be committed
with edit-commit for its changes to take effect.`,
		CommandRun: func() subcommands.CommandRun {
			ret := &cmdEditInsert{}
			ret.initFlags(p)
			return ret
		},
	}
}

type cmdEditInsert struct {
	cmdBase
}

func (c *cmdEditInsert) positionalRange() (int, int) { return 0, 0 }

func (c *cmdEditInsert) validateFlags(context.Context, []string) error { return nil }

func (c *cmdEditInsert) execute(ctx context.Context, svc *androidpublisher.Service) (any, error) {
	edit, err := svc.Edits.Insert(c.pkg(), &androidpublisher.AppEdit{}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	logging.Infof(ctx, "Opened edit %s", edit.Id)
	return edit, nil
}

func (c *cmdEditInsert) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.doContextExecute(a, c, args, env)
}

// editAction is one of the edit-wide actions taking an edit ID.
type editAction int

const (
	actionCommit editAction = iota
	actionValidate
	actionDelete
)

func editActionCmd(p Params, action editAction) *subcommands.Command {
	cmd := &subcommands.Command{
		CommandRun: func() subcommands.CommandRun {
			ret := &cmdEditAction{action: action}
			ret.initFlags(p)
			return ret
		},
	}
	switch action {
	case actionCommit:
		cmd.UsageLine = "edit-commit [options] <edit id>"
		cmd.ShortDesc = "commits an edit"
		cmd.LongDesc = "Commits all changes made in an edit, closing it."
	case actionValidate:
		cmd.UsageLine = "edit-validate <edit id>"
		cmd.ShortDesc = "validates an edit"
		cmd.LongDesc = "Checks that an edit can be committed, without committing it."
	case actionDelete:
		cmd.UsageLine = "edit-delete <edit id>"
		cmd.ShortDesc = "deletes an edit"
		cmd.LongDesc = "Deletes an edit, discarding its changes."
	}
	return cmd
}

type cmdEditAction struct {
	cmdBase

	action           editAction
	notSentForReview bool
	editID           string
}

func (c *cmdEditAction) initFlags(p Params) {
	c.cmdBase.initFlags(p)
	if c.action == actionCommit {
		c.Flags.BoolVar(&c.notSentForReview, "not-sent-for-review", false,
			"Commit without sending the changes for review. They must then be sent from the Play Console.")
	}
}

func (c *cmdEditAction) positionalRange() (int, int) { return 1, 1 }

func (c *cmdEditAction) validateFlags(ctx context.Context, positionals []string) error {
	if c.editID = positionals[0]; c.editID == "" {
		return errors.New("the edit ID must not be empty")
	}
	return nil
}

func (c *cmdEditAction) execute(ctx context.Context, svc *androidpublisher.Service) (any, error) {
	switch c.action {
	case actionCommit:
		call := svc.Edits.Commit(c.pkg(), c.editID).Context(ctx)
		if c.notSentForReview {
			call.ChangesNotSentForReview(true)
		}
		return call.Do()
	case actionValidate:
		return svc.Edits.Validate(c.pkg(), c.editID).Context(ctx).Do()
	default:
		if err := svc.Edits.Delete(c.pkg(), c.editID).Context(ctx).Do(); err != nil {
			return nil, err
		}
		logging.Infof(ctx, "Deleted edit %s", c.editID)
		return nil, nil
	}
}

func (c *cmdEditAction) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.doContextExecute(a, c, args, env)
}

func listingGetCmd(p Params) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "listing-get [options]",
		ShortDesc: "prints store listings",
		LongDesc: `Prints the store listing in one language, or all of them when
-language is not given.`,
		CommandRun: func() subcommands.CommandRun {
			ret := &cmdListingGet{}
			ret.initFlags(p)
			return ret
		},
	}
}

type cmdListingGet struct {
	cmdBase
	editFlag

	language string
}

func (c *cmdListingGet) initFlags(p Params) {
	c.cmdBase.initFlags(p)
	c.registerEditFlag(&c.cmdBase, "Edit to read from. Without one, a temporary edit is used.")
	c.Flags.StringVar(&c.language, "language", "", "BCP-47 language tag of the listing, e.g. en-US.")
}

func (c *cmdListingGet) positionalRange() (int, int) { return 0, 0 }

func (c *cmdListingGet) validateFlags(context.Context, []string) (err error) {
	c.language, err = canonicalLanguage("-language", c.language)
	return
}

func (c *cmdListingGet) execute(ctx context.Context, svc *androidpublisher.Service) (any, error) {
	return c.withEdit(ctx, svc, c.pkg(), false, func(editID string) (any, error) {
		if c.language != "" {
			return svc.Edits.Listings.Get(c.pkg(), editID, c.language).Context(ctx).Do()
		}
		return svc.Edits.Listings.List(c.pkg(), editID).Context(ctx).Do()
	})
}

func (c *cmdListingGet) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.doContextExecute(a, c, args, env)
}

// canonicalLanguage returns the canonical form of the BCP-47 tag given in
// flag, e.g. "en-US" for "en_us". Empty stays empty.
func canonicalLanguage(flag, tag string) (string, error) {
	if tag == "" {
		return "", nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", errors.Annotate(err, "bad %s", flag).Err()
	}
	return t.String(), nil
}
