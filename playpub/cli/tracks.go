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
	"sort"

	"github.com/maruel/subcommands"
	"google.golang.org/api/googleapi"

	"go.chromium.org/playpublisher/common/api/androidpublisher/v3"
	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/flag"
	"go.chromium.org/playpublisher/common/logging"
)

func tracksListCmd(p Params) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "tracks-list [options]",
		ShortDesc: "prints all tracks",
		LongDesc:  "Prints every track of the app with its releases.",
		CommandRun: func() subcommands.CommandRun {
			ret := &cmdTracksList{}
			ret.initFlags(p)
			return ret
		},
	}
}

type cmdTracksList struct {
	cmdBase
	editFlag
}

func (c *cmdTracksList) initFlags(p Params) {
	c.cmdBase.initFlags(p)
	c.registerEditFlag(&c.cmdBase, "Edit to read from. Without one, a temporary edit is used.")
}

func (c *cmdTracksList) positionalRange() (int, int) { return 0, 0 }

func (c *cmdTracksList) validateFlags(context.Context, []string) error { return nil }

func (c *cmdTracksList) execute(ctx context.Context, svc *androidpublisher.Service) (any, error) {
	return c.withEdit(ctx, svc, c.pkg(), false, func(editID string) (any, error) {
		return svc.Edits.Tracks.List(c.pkg(), editID).Context(ctx).Do()
	})
}

func (c *cmdTracksList) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.doContextExecute(a, c, args, env)
}

// release is what track-update puts on a track.
type release struct {
	Track        string            `validate:"required"`
	VersionCodes []int64           `validate:"required_unless=Status halted,dive,gt=0"`
	Status       string            `validate:"oneof=draft inProgress halted completed"`
	Fraction     float64           `validate:"required_if=Status inProgress,gte=0,lt=1"`
	Name         string            `validate:"max=50"`
	Notes        map[string]string `validate:"dive,keys,bcp47_language_tag,endkeys,max=500"`
	Priority     int64             `validate:"gte=0,lte=5"`
}

// toTrack converts r to the track it describes.
func (r *release) toTrack() *androidpublisher.Track {
	rel := &androidpublisher.TrackRelease{
		Name:                r.Name,
		Status:              r.Status,
		UserFraction:        r.Fraction,
		VersionCodes:        googleapi.Int64s(r.VersionCodes),
		InAppUpdatePriority: r.Priority,
	}
	langs := make([]string, 0, len(r.Notes))
	for lang := range r.Notes {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		rel.ReleaseNotes = append(rel.ReleaseNotes, &androidpublisher.LocalizedText{
			Language: lang,
			Text:     r.Notes[lang],
		})
	}
	return &androidpublisher.Track{
		Track:    r.Track,
		Releases: []*androidpublisher.TrackRelease{rel},
	}
}

func trackUpdateCmd(p Params) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "track-update [options]",
		ShortDesc: "puts a release on a track",
		LongDesc: `Replaces the releases of a track with a single release.

Example, rolling version 42 out to a tenth of the beta users:

playpub track-update -track beta -version-codes 42 -status inProgress -fraction 0.1

Without -edit, the update happens in a new edit that is committed right away.`,
		CommandRun: func() subcommands.CommandRun {
			ret := &cmdTrackUpdate{}
			ret.initFlags(p)
			return ret
		},
	}
}

type cmdTrackUpdate struct {
	cmdBase
	editFlag

	rel release
}

func (c *cmdTrackUpdate) initFlags(p Params) {
	c.cmdBase.initFlags(p)
	c.registerEditFlag(&c.cmdBase, "Edit to update. Without one, a new edit is opened and committed.")
	c.Flags.StringVar(&c.rel.Track, "track", "", "Track to update, e.g. internal, alpha, beta or production.")
	c.Flags.Var(flag.Int64Slice(&c.rel.VersionCodes), "version-codes",
		"(repeatable) Version codes of the release, comma separated.")
	c.Flags.StringVar(&c.rel.Status, "status", "completed",
		"Status of the release: draft, inProgress, halted or completed.")
	c.Flags.Float64Var(&c.rel.Fraction, "fraction", 0,
		"Fraction of users a staged rollout is served to. Required with -status inProgress.")
	c.Flags.StringVar(&c.rel.Name, "release-name", "", "Name of the release.")
	c.Flags.Var(flag.StringMap(&c.rel.Notes), "notes",
		"(repeatable) Release notes as language=text, e.g. en-US='Bug fixes'.")
	c.Flags.Int64Var(&c.rel.Priority, "priority", 0, "In-app update priority, from 0 to 5.")
}

func (c *cmdTrackUpdate) positionalRange() (int, int) { return 0, 0 }

func (c *cmdTrackUpdate) validateFlags(ctx context.Context, _ []string) error {
	if err := validate.Struct(&c.rel); err != nil {
		return errors.Annotate(err, "bad release").Err()
	}
	return nil
}

func (c *cmdTrackUpdate) execute(ctx context.Context, svc *androidpublisher.Service) (any, error) {
	track := c.rel.toTrack()
	return c.withEdit(ctx, svc, c.pkg(), true, func(editID string) (any, error) {
		res, err := svc.Edits.Tracks.Update(c.pkg(), editID, c.rel.Track, track).Context(ctx).Do()
		if err != nil {
			return nil, err
		}
		logging.Infof(ctx, "Updated track %s in edit %s", res.Track, editID)
		return res, nil
	})
}

func (c *cmdTrackUpdate) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.doContextExecute(a, c, args, env)
}
