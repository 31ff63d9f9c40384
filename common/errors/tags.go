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

package errors

type tagDescription struct {
	description string
}

// TagKey objects are used for applying tags and finding tags in errors.
// See NewTag for details.
type TagKey *tagDescription

// BoolTag is a tag which marks an error as having some property.
type BoolTag struct {
	Key TagKey
}

// NewTag creates a new BoolTag with the given description.
//
// The description is only used for debugging; two tags with the same
// description are distinct.
func NewTag(description string) BoolTag {
	return BoolTag{&tagDescription{description}}
}

// Apply tags err with t. Returns nil if err is nil.
func (t BoolTag) Apply(err error) error {
	return Annotate(err, "").Tag(t.Key).Err()
}

// Tagged is implemented by error types that carry tags of their own, so they
// can be returned unwrapped.
type Tagged interface {
	HasTag(key TagKey) bool
}

// In returns true if the error, or any error it wraps, carries this tag.
func (t BoolTag) In(err error) bool {
	return Any(err, func(err error) bool {
		switch e := err.(type) {
		case *annotatedError:
			return e.tags[t.Key]
		case Tagged:
			return e.HasTag(t.Key)
		}
		return false
	})
}
