/*
 * Copyright (c) 2025 Stateset, Inc.
 *
 * This source code is licensed under the Business Source License 1.1.
 *
 * Change Date: 2027-11-28
 * Change License: AGPL-3.0
 */

package token

import (
	"bytes"
	"encoding/json"
	"sort"
)

// canonicalJSON renders m as compact JSON with keys in sorted order.
// The signature is computed over these bytes, so two runs with identical
// values must produce byte-identical output; key order is fixed here rather
// than trusting any encoder's map handling.
func canonicalJSON(m map[string]interface{}) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
