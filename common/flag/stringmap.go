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

package flag

import (
	"flag"
	"sort"
	"strings"

	"go.chromium.org/playpublisher/common/errors"
)

// stringMapFlag is a flag.Getter reading repeated "key=value" pairs.
type stringMapFlag map[string]string

// String returns the pairs sorted by key.
func (f stringMapFlag) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		keys[i] = k + "=" + f[k]
	}
	return strings.Join(keys, ", ")
}

// Set records a "key=value" pair. A repeated key is an error.
func (f stringMapFlag) Set(val string) error {
	k, v, ok := strings.Cut(val, "=")
	switch {
	case !ok || k == "":
		return errors.Reason("%q is not a key=value pair", val).Err()
	case f[k] != "":
		return errors.Reason("key %q is given twice", k).Err()
	}
	f[k] = v
	return nil
}

// Get retrieves the flag value.
func (f stringMapFlag) Get() any {
	return map[string]string(f)
}

// StringMap returns a flag.Getter which reads "key=value" flags into m,
// allocating it if needed.
func StringMap(m *map[string]string) flag.Getter {
	if *m == nil {
		*m = map[string]string{}
	}
	return stringMapFlag(*m)
}
