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

package gensupport

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/smartystreets/goconvey/convey"
)

type schema struct {
	Name     string            `json:"name,omitempty"`
	Count    int64             `json:"count,omitempty,string"`
	Enabled  bool              `json:"enabled,omitempty"`
	Fraction float64           `json:"fraction,omitempty"`
	Labels   map[string]string `json:"labels,omitempty"`
	Codes    []int64           `json:"codes,omitempty"`
	Child    *schema           `json:"child,omitempty"`

	ForceSendFields []string `json:"-"`
}

func (s *schema) MarshalJSON() ([]byte, error) {
	type noMethod schema
	raw := noMethod(*s)
	return MarshalJSON(raw, s.ForceSendFields)
}

func decodeMap(data []byte) map[string]any {
	var m map[string]any
	So(json.Unmarshal(data, &m), ShouldBeNil)
	return m
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	Convey(`MarshalJSON`, t, func() {
		Convey(`omits empty fields`, func() {
			out, err := json.Marshal(&schema{Name: "a"})
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, `{"name":"a"}`)
		})

		Convey(`sends forced zero values`, func() {
			out, err := json.Marshal(&schema{
				ForceSendFields: []string{"Count", "Enabled", "Labels", "Codes", "Child"},
			})
			So(err, ShouldBeNil)
			So(decodeMap(out), ShouldResemble, map[string]any{
				"count":   "0",
				"enabled": false,
				"labels":  map[string]any{},
				"codes":   []any{},
			})
		})

		Convey(`formats string-encoded fields`, func() {
			out, err := json.Marshal(&schema{Count: 11000000000, ForceSendFields: []string{"Name"}})
			So(err, ShouldBeNil)
			So(decodeMap(out), ShouldResemble, map[string]any{
				"name":  "",
				"count": "11000000000",
			})
		})

		Convey(`marshals nested schemas with their own forced fields`, func() {
			out, err := json.Marshal(&schema{
				Child:           &schema{ForceSendFields: []string{"Fraction"}},
				ForceSendFields: []string{"Name"},
			})
			So(err, ShouldBeNil)
			So(decodeMap(out), ShouldResemble, map[string]any{
				"name":  "",
				"child": map[string]any{"fraction": 0.0},
			})
		})
	})
}

func TestStripNulls(t *testing.T) {
	t.Parallel()

	Convey(`StripNulls`, t, func() {
		Convey(`drops null members at any depth`, func() {
			out, err := StripNulls([]byte(`{"a":null,"b":{"c":null,"d":1},"e":[{"f":null},null]}`))
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, `{"b":{"d":1},"e":[{},null]}`)
		})

		Convey(`keeps large integers exact`, func() {
			out, err := StripNulls([]byte(`{"size":11000000000123456789}`))
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, `{"size":11000000000123456789}`)
		})

		Convey(`is idempotent`, func() {
			once, err := StripNulls([]byte(`{"z":null,"y":[1,{"x":null,"w":"v"}],"u":{"t":null}}`))
			So(err, ShouldBeNil)
			twice, err := StripNulls(once)
			So(err, ShouldBeNil)
			So(string(twice), ShouldEqual, string(once))
		})

		Convey(`round-trips the non-null fields of a schema`, func() {
			in := &schema{
				Name:     "track",
				Count:    42,
				Fraction: 0.25,
				Labels:   map[string]string{"k": "v"},
				Codes:    []int64{1, 2},
				Child:    &schema{Enabled: true},
			}
			body, err := JSONBody(in)
			So(err, ShouldBeNil)

			out := &schema{}
			So(json.Unmarshal(body, out), ShouldBeNil)
			So(cmp.Diff(in, out), ShouldBeEmpty)
		})

		Convey(`rejects garbage`, func() {
			_, err := StripNulls([]byte(`{`))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseJSONTag(t *testing.T) {
	t.Parallel()

	Convey(`parseJSONTag`, t, func() {
		tag, err := parseJSONTag("count,omitempty,string")
		So(err, ShouldBeNil)
		So(tag, ShouldResemble, jsonTag{apiName: "count", stringFormat: true})

		tag, err = parseJSONTag("-")
		So(err, ShouldBeNil)
		So(tag.ignore, ShouldBeTrue)

		_, err = parseJSONTag("count")
		So(err, ShouldNotBeNil)
		_, err = parseJSONTag(",omitempty")
		So(err, ShouldNotBeNil)
	})
}
