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
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"

	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/lhttp"
	"go.chromium.org/playpublisher/common/logging"
)

// DefaultConfigPath is where the configuration is read from by default. It is
// fine for it not to exist.
const DefaultConfigPath = "~/.config/playpub.yaml"

// DefaultRetries is the number of retries of transient failures when the
// configuration does not say.
const DefaultRetries = 3

// Config is the YAML configuration of the tool. Flags override it.
type Config struct {
	// Credentials is the path of a service account JSON key.
	Credentials string `yaml:"credentials" validate:"omitempty,file,excluded_with=Token"`
	// Token is a raw OAuth2 access token, mostly useful for debugging.
	Token string `yaml:"token"`

	// Package is the package name of the app all commands operate on.
	Package string `yaml:"package" validate:"omitempty,android_package"`

	UserAgent string `yaml:"user_agent" validate:"printascii"`
	BaseURL   string `yaml:"base_url" validate:"omitempty,url"`
	RootURL   string `yaml:"root_url" validate:"omitempty,url"`

	// QPS caps the rate of requests. Zero means no limit.
	QPS float64 `yaml:"qps" validate:"gte=0"`
	// MaxConcurrent caps the number of requests in flight. Zero means no
	// limit.
	MaxConcurrent int64 `yaml:"max_concurrent" validate:"gte=0"`
	// Retries is the number of retries of transient failures. nil means
	// DefaultRetries.
	Retries *int `yaml:"retries" validate:"omitempty,gte=0,lte=50"`

	LogLevel *logging.Level `yaml:"log_level"`
}

var packageRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("android_package", func(fl validator.FieldLevel) bool {
		return packageRe.MatchString(fl.Field().String())
	})
	return v
}

// LoadConfig reads and validates the configuration at path, expanding a
// leading "~". A missing file at DefaultConfigPath yields an empty
// configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Annotate(err, "expanding %q", path).Err()
	}
	blob, err := os.ReadFile(expanded)
	switch {
	case os.IsNotExist(err) && path == DefaultConfigPath:
		return cfg, nil
	case err != nil:
		return nil, errors.Annotate(err, "reading config").Err()
	}
	if err := yaml.UnmarshalStrict(blob, cfg); err != nil {
		return nil, errors.Annotate(err, "parsing config %s", expanded).Err()
	}
	if cfg.Credentials != "" {
		if cfg.Credentials, err = homedir.Expand(cfg.Credentials); err != nil {
			return nil, errors.Annotate(err, "expanding credentials path").Err()
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Annotate(err, "config %s", expanded).Err()
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	var merr errors.MultiError
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			merr = append(merr, errors.Reason("field %s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()).Err())
		}
	}
	for _, u := range []string{c.BaseURL, c.RootURL} {
		if u == "" {
			continue
		}
		if err := lhttp.CheckEndpoint(u); err != nil {
			merr = append(merr, err)
		}
	}
	if len(merr) > 0 {
		return merr
	}
	return nil
}

// retries returns the effective number of retries.
func (c *Config) retries() int {
	if c.Retries == nil {
		return DefaultRetries
	}
	return *c.Retries
}
