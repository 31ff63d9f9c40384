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
	"strings"

	"github.com/maruel/subcommands"

	"go.chromium.org/playpublisher/common/api/androidpublisher/v3"
	"go.chromium.org/playpublisher/common/errors"
)

// errLimitReached stops paging once enough items are collected.
var errLimitReached = errors.New("limit reached")

func reviewsListCmd(p Params) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "reviews-list [options]",
		ShortDesc: "prints recent reviews",
		LongDesc: `Prints the reviews of the app, following pages until -limit reviews are
printed or none are left.`,
		CommandRun: func() subcommands.CommandRun {
			ret := &cmdReviewsList{}
			ret.initFlags(p)
			return ret
		},
	}
}

type cmdReviewsList struct {
	cmdBase

	maxResults  int64
	limit       int
	translation string
}

func (c *cmdReviewsList) initFlags(p Params) {
	c.cmdBase.initFlags(p)
	c.Flags.Int64Var(&c.maxResults, "max-results", 0, "Reviews per page. Zero means the server default.")
	c.Flags.IntVar(&c.limit, "limit", 0, "Stop after this many reviews. Zero means all of them.")
	c.Flags.StringVar(&c.translation, "translation-language", "", "Language to translate the reviews to.")
}

func (c *cmdReviewsList) positionalRange() (int, int) { return 0, 0 }

func (c *cmdReviewsList) validateFlags(context.Context, []string) error {
	switch {
	case c.maxResults < 0:
		return errors.New("-max-results must not be negative")
	case c.limit < 0:
		return errors.New("-limit must not be negative")
	}
	var err error
	c.translation, err = canonicalLanguage("-translation-language", c.translation)
	return err
}

func (c *cmdReviewsList) execute(ctx context.Context, svc *androidpublisher.Service) (any, error) {
	call := svc.Reviews.List(c.pkg())
	if c.maxResults > 0 {
		call.MaxResults(c.maxResults)
	}
	if c.translation != "" {
		call.TranslationLanguage(c.translation)
	}

	reviews := []*androidpublisher.Review{}
	err := call.Pages(ctx, func(res *androidpublisher.ReviewsListResponse) error {
		for _, r := range res.Reviews {
			if c.limit > 0 && len(reviews) == c.limit {
				return errLimitReached
			}
			reviews = append(reviews, r)
		}
		if c.limit > 0 && len(reviews) == c.limit {
			return errLimitReached
		}
		return nil
	})
	if err != nil && err != errLimitReached {
		return nil, err
	}
	return reviews, nil
}

func (c *cmdReviewsList) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.doContextExecute(a, c, args, env)
}

func reviewReplyCmd(p Params) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "review-reply [options] <review id> <text>...",
		ShortDesc: "replies to a review",
		LongDesc: `Replies to a review, replacing any previous reply. The remaining
arguments are joined with spaces to form the reply.`,
		CommandRun: func() subcommands.CommandRun {
			ret := &cmdReviewReply{}
			ret.initFlags(p)
			return ret
		},
	}
}

type cmdReviewReply struct {
	cmdBase

	reviewID string
	text     string
}

func (c *cmdReviewReply) positionalRange() (int, int) { return 2, -1 }

func (c *cmdReviewReply) validateFlags(ctx context.Context, positionals []string) error {
	c.reviewID = positionals[0]
	c.text = strings.Join(positionals[1:], " ")
	if strings.TrimSpace(c.text) == "" {
		return errors.New("the reply must not be empty")
	}
	return nil
}

func (c *cmdReviewReply) execute(ctx context.Context, svc *androidpublisher.Service) (any, error) {
	return svc.Reviews.Reply(c.pkg(), c.reviewID, &androidpublisher.ReviewsReplyRequest{ReplyText: c.text}).Context(ctx).Do()
}

func (c *cmdReviewReply) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.doContextExecute(a, c, args, env)
}
