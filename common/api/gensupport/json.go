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
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// MarshalJSON and its helpers follow google.golang.org/api/internal/gensupport,
// which can not be imported from outside that module.

// MarshalJSON returns a JSON encoding of schema containing only selected
// fields. A field is selected if any of the following is true:
//   - it has a non-empty value
//   - its field name is present in forceSendFields and it is not a nil
//     pointer or nil interface
//
// The JSON key for each selected field is taken from the field's json: struct
// tag.
func MarshalJSON(schema any, forceSendFields []string) ([]byte, error) {
	if len(forceSendFields) == 0 {
		return json.Marshal(schema)
	}

	mustInclude := make(map[string]bool, len(forceSendFields))
	for _, f := range forceSendFields {
		mustInclude[f] = true
	}

	dataMap, err := schemaToMap(schema, mustInclude)
	if err != nil {
		return nil, err
	}
	return json.Marshal(dataMap)
}

func schemaToMap(schema any, mustInclude map[string]bool) (map[string]any, error) {
	m := make(map[string]any)
	s := reflect.ValueOf(schema)
	if s.Kind() == reflect.Ptr {
		s = s.Elem()
	}
	if s.Kind() != reflect.Struct {
		return nil, fmt.Errorf("gensupport: cannot marshal %T with forced fields", schema)
	}
	st := s.Type()

	for i := 0; i < s.NumField(); i++ {
		jsonTag := st.Field(i).Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}
		tag, err := parseJSONTag(jsonTag)
		if err != nil {
			return nil, err
		}
		if tag.ignore {
			continue
		}

		v := s.Field(i)
		f := st.Field(i)
		if !includeField(v, f, mustInclude) {
			continue
		}

		// nil maps are treated as empty maps.
		if f.Type.Kind() == reflect.Map && v.IsNil() {
			m[tag.apiName] = map[string]string{}
			continue
		}
		// nil slices are treated as empty slices.
		if f.Type.Kind() == reflect.Slice && v.IsNil() {
			m[tag.apiName] = []bool{}
			continue
		}

		if tag.stringFormat {
			m[tag.apiName] = formatAsString(v, f.Type.Kind())
		} else {
			m[tag.apiName] = v.Interface()
		}
	}
	return m, nil
}

// formatAsString returns a string representation of v, dereferencing it
// first if possible.
func formatAsString(v reflect.Value, kind reflect.Kind) string {
	if kind == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	return fmt.Sprintf("%v", v.Interface())
}

// jsonTag represents a restricted version of the struct tag format used by
// encoding/json. It is used to describe the JSON encoding of fields in a
// Schema struct.
type jsonTag struct {
	apiName      string
	stringFormat bool
	ignore       bool
}

// parseJSONTag parses a restricted version of the struct tag format used by
// encoding/json. The format of the tag must match that generated by the
// Schema.writeSchemaStruct method in the api generator.
func parseJSONTag(val string) (jsonTag, error) {
	if val == "-" {
		return jsonTag{ignore: true}, nil
	}

	var tag jsonTag

	i := strings.Index(val, ",")
	if i == -1 || val[:i] == "" {
		return tag, fmt.Errorf("malformed json tag: %s", val)
	}

	tag = jsonTag{
		apiName: val[:i],
	}

	switch val[i+1:] {
	case "omitempty":
	case "omitempty,string":
		tag.stringFormat = true
	default:
		return tag, fmt.Errorf("malformed json tag: %s", val)
	}

	return tag, nil
}

// includeField reports whether the field should be sent to the server.
func includeField(v reflect.Value, f reflect.StructField, mustInclude map[string]bool) bool {
	// The regular JSON encoding of a nil pointer is "null", which means
	// "delete this field". Therefore, we could enable field deletion by
	// honoring pointer fields' presence in the mustInclude set. However,
	// many fields are not pointers, so there would be no way to delete
	// these fields. Rather than partially supporting field deletion, we
	// ignore mustInclude for nil pointer fields. Deletion will be handled
	// by a separate mechanism.
	if f.Type.Kind() == reflect.Ptr {
		return !v.IsNil()
	}

	// The "any" type is represented as an interface{}. If this interface
	// is nil, there is no reasonable representation to send. We ignore
	// these fields, for the same reasons as given above for pointers.
	if f.Type.Kind() == reflect.Interface {
		return !v.IsNil()
	}

	return mustInclude[f.Name] || !isEmptyValue(v)
}

// isEmptyValue reports whether v is the empty value for its type. This
// implementation is based on that of the encoding/json package, but its
// correctness does not depend on it being identical. What's important is that
// this function return false in situations where v should be sent as part of
// a PATCH operation.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

// StripNulls removes every null-valued member from the JSON objects in data,
// at any depth. An explicit null means "clear this field" to the server, so
// request bodies must only carry the members the caller actually set.
//
// Null array elements are kept, since removing them would shift positions.
// The output is canonical: object members are sorted by key.
func StripNulls(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return json.Marshal(stripNulls(v))
}

func stripNulls(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			if e == nil {
				delete(x, k)
				continue
			}
			x[k] = stripNulls(e)
		}
	case []any:
		for i, e := range x {
			x[i] = stripNulls(e)
		}
	}
	return v
}

// JSONBody encodes a request body: it marshals v and strips nulls from the
// result.
func JSONBody(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return StripNulls(raw)
}
