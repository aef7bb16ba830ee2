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
	"encoding/binary"
	"fmt"
)

// enterpriseBit marks an information element id as enterprise-specific.
const enterpriseBit uint16 = 0x8000

// FieldSpecifier describes one field of a template or options template
// record: which information element it carries, how long it is on the
// wire, and whose enterprise number (if any) defines it.
type FieldSpecifier struct {
	// ID is the information element id with the enterprise bit cleared.
	ID uint16 `json:"id" yaml:"id"`
	// Length is the field's fixed wire length in bytes, or 0xFFFF if the
	// field is variable-length.
	Length uint16 `json:"length" yaml:"length"`
	// EnterprisePEN is the private enterprise number defining ID, or 0 for
	// an IANA-registered element.
	EnterprisePEN uint32 `json:"enterprisePen" yaml:"enterprisePen"`

	// hasPEN records whether the raw wire id had its enterprise bit set,
	// independent of the resulting EnterprisePEN value, which may
	// legitimately be 0.
	hasPEN bool
}

// VariableLength reports whether this field's length is determined
// per-record rather than fixed by the template.
func (f FieldSpecifier) VariableLength() bool {
	return f.Length == 0xFFFF
}

// IsPEN reports whether this field carries a private enterprise number,
// i.e. whether the raw wire id had its high bit set. This is derived from
// the wire encoding itself, not from EnterprisePEN being non-zero, so a
// (pathological) enterprise field declaring PEN 0 is still reported as
// PEN-qualified.
func (f FieldSpecifier) IsPEN() bool {
	return f.hasPEN
}

// DecodeFieldSpecifier reads one field specifier from the front of buf,
// returning it along with the number of bytes consumed (4, or 8 if the
// enterprise bit was set).
func DecodeFieldSpecifier(buf []byte) (FieldSpecifier, int, error) {
	if len(buf) < 4 {
		return FieldSpecifier{}, 0, fmt.Errorf("%w: field specifier needs 4 bytes, have %d", ErrBadTemplate, len(buf))
	}
	raw := binary.BigEndian.Uint16(buf[0:2])
	fs := FieldSpecifier{
		ID:     raw &^ enterpriseBit,
		Length: binary.BigEndian.Uint16(buf[2:4]),
	}
	if raw&enterpriseBit == 0 {
		return fs, 4, nil
	}
	if len(buf) < 8 {
		return FieldSpecifier{}, 0, fmt.Errorf("%w: enterprise field specifier needs 8 bytes, have %d", ErrBadTemplate, len(buf))
	}
	fs.EnterprisePEN = binary.BigEndian.Uint32(buf[4:8])
	fs.hasPEN = true
	return fs, 8, nil
}
