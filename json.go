/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import (
	"encoding/json"
	"fmt"
	"io"
)

// FlatRecord is a DataRecord projected down to plain Go values keyed by
// field name, suitable for encoding with encoding/json or gopkg.in/yaml.v3
// without either package needing to understand DataRecordValue's tagged
// union shape.
type FlatRecord map[string]interface{}

// native converts v to the plain Go value FlatRecord stores for it.
func native(v DataRecordValue) interface{} {
	switch v.Kind {
	case ValU8:
		return v.U8
	case ValU16:
		return v.U16
	case ValU32:
		return v.U32
	case ValU64:
		return v.U64
	case ValIPv4, ValIPv6:
		return v.IP.String()
	case ValString:
		return v.Str
	case ValBytes:
		return v.Bytes
	case ValMPLS:
		return map[string]interface{}{
			"label":  v.MPLSLabel,
			"exp":    v.MPLSExp,
			"bottom": v.MPLSBottom,
		}
	case ValErr:
		return fmt.Sprintf("error: %s", v.ErrMessage)
	default:
		return nil
	}
}

// Flatten projects rec's values into a FlatRecord keyed by each field's
// DataRecordKey.String().
func Flatten(rec DataRecord) FlatRecord {
	flat := make(FlatRecord, len(rec.Values))
	for key, val := range rec.Values {
		flat[key.String()] = native(val)
	}
	return flat
}

// MustEncodeJSON calls EncodeJSON and panics on error.
func MustEncodeJSON(w io.Writer, msg *Message) {
	if err := EncodeJSON(w, msg); err != nil {
		panic(err)
	}
}

// EncodeJSON writes msg to w as JSON, flattening every set's data records
// with Flatten so field values serialize as plain JSON values (scalars,
// strings, or a label/exp/bottom object for MPLS entries) rather than
// DataRecordValue's internal tagged-union shape.
func EncodeJSON(w io.Writer, msg *Message) error {
	enc := json.NewEncoder(w)
	return enc.Encode(projectMessage(msg))
}

type flatSet struct {
	Header           SetHeader         `json:"header" yaml:"header"`
	Templates        []Template        `json:"templates,omitempty" yaml:"templates,omitempty"`
	OptionsTemplates []OptionsTemplate `json:"optionsTemplates,omitempty" yaml:"optionsTemplates,omitempty"`
	Records          []FlatRecord      `json:"records,omitempty" yaml:"records,omitempty"`
}

type flatMessage struct {
	Header MessageHeader `json:"header" yaml:"header"`
	Sets   []flatSet     `json:"sets" yaml:"sets"`
}

func projectMessage(msg *Message) flatMessage {
	out := flatMessage{Header: msg.Header, Sets: make([]flatSet, 0, len(msg.Sets))}
	for _, set := range msg.Sets {
		fs := flatSet{
			Header:           set.Header,
			Templates:        set.Templates,
			OptionsTemplates: set.OptionsTemplates,
		}
		if len(set.Records) > 0 {
			fs.Records = make([]FlatRecord, 0, len(set.Records))
			for _, rec := range set.Records {
				fs.Records = append(fs.Records, Flatten(rec))
			}
		}
		out.Sets = append(out.Sets, fs)
	}
	return out
}
