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
	"time"

	"github.com/maruel/subcommands"

	"go.chromium.org/playpublisher/common/api/androidpublisher/v3"
	"go.chromium.org/playpublisher/common/errors"
)

// purchaseKind is the kind of purchase a purchase-*-get command reads.
type purchaseKind int

const (
	productPurchase purchaseKind = iota
	subscriptionPurchase
)

func purchaseGetCmd(p Params, kind purchaseKind) *subcommands.Command {
	cmd := &subcommands.Command{
		CommandRun: func() subcommands.CommandRun {
			ret := &cmdPurchaseGet{kind: kind}
			ret.initFlags(p)
			return ret
		},
	}
	if kind == subscriptionPurchase {
		cmd.UsageLine = "purchase-subscription-get [options] <subscription id> <purchase token>"
		cmd.ShortDesc = "prints a subscription purchase"
		cmd.LongDesc = "Prints the state of a subscription purchase."
	} else {
		cmd.UsageLine = "purchase-product-get [options] <product id> <purchase token>"
		cmd.ShortDesc = "prints an in-app product purchase"
		cmd.LongDesc = "Prints the state of an in-app product purchase."
	}
	return cmd
}

type cmdPurchaseGet struct {
	cmdBase

	kind  purchaseKind
	id    string
	token string
}

func (c *cmdPurchaseGet) positionalRange() (int, int) { return 2, 2 }

func (c *cmdPurchaseGet) validateFlags(ctx context.Context, positionals []string) error {
	c.id, c.token = positionals[0], positionals[1]
	if c.id == "" || c.token == "" {
		return errors.New("the product ID and the purchase token must not be empty")
	}
	return nil
}

func (c *cmdPurchaseGet) execute(ctx context.Context, svc *androidpublisher.Service) (any, error) {
	if c.kind == subscriptionPurchase {
		return svc.Purchases.Subscriptions.Get(c.pkg(), c.id, c.token).Context(ctx).Do()
	}
	return svc.Purchases.Products.Get(c.pkg(), c.id, c.token).Context(ctx).Do()
}

func (c *cmdPurchaseGet) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.doContextExecute(a, c, args, env)
}

func voidedListCmd(p Params) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "voided-list [options]",
		ShortDesc: "prints voided purchases",
		LongDesc: `Prints the purchases that were canceled, refunded or charged back,
optionally limited to those voided within a time range.`,
		CommandRun: func() subcommands.CommandRun {
			ret := &cmdVoidedList{}
			ret.initFlags(p)
			return ret
		},
	}
}

type cmdVoidedList struct {
	cmdBase

	startTime     string
	endTime       string
	subscriptions bool

	start, end time.Time
}

func (c *cmdVoidedList) initFlags(p Params) {
	c.cmdBase.initFlags(p)
	c.Flags.StringVar(&c.startTime, "start-time", "", "Oldest voiding time to include, RFC 3339.")
	c.Flags.StringVar(&c.endTime, "end-time", "", "Newest voiding time to include, RFC 3339.")
	c.Flags.BoolVar(&c.subscriptions, "include-subscriptions", false,
		"Include voided subscription purchases alongside in-app product purchases.")
}

func (c *cmdVoidedList) positionalRange() (int, int) { return 0, 0 }

func (c *cmdVoidedList) validateFlags(context.Context, []string) error {
	var err error
	if c.startTime != "" {
		if c.start, err = time.Parse(time.RFC3339, c.startTime); err != nil {
			return errors.Annotate(err, "bad -start-time").Err()
		}
	}
	if c.endTime != "" {
		if c.end, err = time.Parse(time.RFC3339, c.endTime); err != nil {
			return errors.Annotate(err, "bad -end-time").Err()
		}
	}
	if !c.start.IsZero() && !c.end.IsZero() && c.end.Before(c.start) {
		return errors.New("-end-time is before -start-time")
	}
	return nil
}

func (c *cmdVoidedList) execute(ctx context.Context, svc *androidpublisher.Service) (any, error) {
	call := svc.Purchases.Voidedpurchases.List(c.pkg())
	if !c.start.IsZero() {
		call.StartTime(c.start.UnixMilli())
	}
	if !c.end.IsZero() {
		call.EndTime(c.end.UnixMilli())
	}
	if c.subscriptions {
		call.Type(1)
	}

	voided := []*androidpublisher.VoidedPurchase{}
	err := call.Pages(ctx, func(res *androidpublisher.VoidedPurchasesListResponse) error {
		voided = append(voided, res.VoidedPurchases...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return voided, nil
}

func (c *cmdVoidedList) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.doContextExecute(a, c, args, env)
}
