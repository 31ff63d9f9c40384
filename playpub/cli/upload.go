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
	"os"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"
	"google.golang.org/api/googleapi"

	"go.chromium.org/playpublisher/common/api/androidpublisher/v3"
	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/logging"
)

const (
	apkContentType    = "application/vnd.android.package-archive"
	bundleContentType = "application/octet-stream"
)

// artifact is the kind of file uploaded.
type artifact int

const (
	artifactAPK artifact = iota
	artifactBundle
)

func (a artifact) String() string {
	if a == artifactBundle {
		return "bundle"
	}
	return "apk"
}

func (a artifact) contentType() string {
	if a == artifactBundle {
		return bundleContentType
	}
	return apkContentType
}

// openArtifact opens the file at path, logging its size.
func openArtifact(ctx context.Context, path string, kind artifact) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "opening %s", kind).Err()
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Annotate(err, "opening %s", kind).Err()
	}
	if !st.Mode().IsRegular() {
		f.Close()
		return nil, errors.Reason("%s is not a regular file", path).Err()
	}
	logging.Infof(ctx, "Uploading %s %s (%s)", kind, path, humanize.Bytes(uint64(st.Size())))
	return f, nil
}

func uploadCmd(p Params, kind artifact) *subcommands.Command {
	cmd := &subcommands.Command{
		CommandRun: func() subcommands.CommandRun {
			ret := &cmdUpload{kind: kind}
			ret.initFlags(p)
			return ret
		},
	}
	if kind == artifactBundle {
		cmd.UsageLine = "upload-bundle [options] <file.aab>"
		cmd.ShortDesc = "uploads an app bundle"
	} else {
		cmd.UsageLine = "upload-apk [options] <file.apk>"
		cmd.ShortDesc = "uploads an APK"
	}
	cmd.LongDesc = `Uploads a ` + kind.String() + ` to an edit and prints its version code.

Without -edit, the upload happens in a new edit that is committed right away.`
	return cmd
}

type cmdUpload struct {
	cmdBase
	editFlag

	kind artifact
	path string
}

func (c *cmdUpload) initFlags(p Params) {
	c.cmdBase.initFlags(p)
	c.registerEditFlag(&c.cmdBase, "Edit to upload to. Without one, a new edit is opened and committed.")
}

func (c *cmdUpload) positionalRange() (int, int) { return 1, 1 }

func (c *cmdUpload) validateFlags(ctx context.Context, positionals []string) error {
	c.path = positionals[0]
	return nil
}

func (c *cmdUpload) execute(ctx context.Context, svc *androidpublisher.Service) (any, error) {
	f, err := openArtifact(ctx, c.path, c.kind)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.withEdit(ctx, svc, c.pkg(), true, func(editID string) (any, error) {
		ct := googleapi.ContentType(c.kind.contentType())
		if c.kind == artifactBundle {
			return svc.Edits.Bundles.Upload(c.pkg(), editID).Media(f, ct).Context(ctx).Do()
		}
		return svc.Edits.Apks.Upload(c.pkg(), editID).Media(f, ct).Context(ctx).Do()
	})
}

func (c *cmdUpload) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.doContextExecute(a, c, args, env)
}

func internalShareCmd(p Params) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "internal-share [options] <file>",
		ShortDesc: "shares an APK or bundle with internal testers",
		LongDesc: `Uploads an APK, or a bundle with -bundle, for internal app sharing and
prints its download URL. No edit is involved.`,
		CommandRun: func() subcommands.CommandRun {
			ret := &cmdInternalShare{}
			ret.initFlags(p)
			return ret
		},
	}
}

type cmdInternalShare struct {
	cmdBase

	bundle bool
	path   string
}

func (c *cmdInternalShare) initFlags(p Params) {
	c.cmdBase.initFlags(p)
	c.Flags.BoolVar(&c.bundle, "bundle", false, "The file is an app bundle rather than an APK.")
}

func (c *cmdInternalShare) positionalRange() (int, int) { return 1, 1 }

func (c *cmdInternalShare) validateFlags(ctx context.Context, positionals []string) error {
	c.path = positionals[0]
	return nil
}

func (c *cmdInternalShare) execute(ctx context.Context, svc *androidpublisher.Service) (any, error) {
	kind := artifactAPK
	if c.bundle {
		kind = artifactBundle
	}
	f, err := openArtifact(ctx, c.path, kind)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ct := googleapi.ContentType(kind.contentType())
	if c.bundle {
		return svc.Internalappsharingartifacts.Uploadbundle(c.pkg()).Media(f, ct).Context(ctx).Do()
	}
	return svc.Internalappsharingartifacts.Uploadapk(c.pkg()).Media(f, ct).Context(ctx).Do()
}

func (c *cmdInternalShare) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.doContextExecute(a, c, args, env)
}
