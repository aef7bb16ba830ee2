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

import "encoding/binary"

// templateRecordHeaderLength is the size of a template record's own header:
// template id (2 bytes) + field count (2 bytes).
const templateRecordHeaderLength = 4

// optionsTemplateRecordHeaderLength adds the scope field count (2 bytes) on
// top of the plain template record header.
const optionsTemplateRecordHeaderLength = 6

// Template describes the field layout data records of a given template id
// will follow.
type Template struct {
	// ID is the template id; data sets reference a template by using this
	// value as their set id.
	ID uint16 `json:"id" yaml:"id"`
	// Fields lists the information elements carried by each data record,
	// in wire order.
	Fields []FieldSpecifier `json:"fields" yaml:"fields"`
}

// OptionsTemplate is a Template whose leading fields are scope fields,
// identifying the metadata the remaining fields describe.
type OptionsTemplate struct {
	// ID is the options template id.
	ID uint16 `json:"id" yaml:"id"`
	// ScopeFields lists the fields that scope this options record.
	ScopeFields []FieldSpecifier `json:"scopeFields" yaml:"scopeFields"`
	// Fields lists the non-scope fields.
	Fields []FieldSpecifier `json:"fields" yaml:"fields"`
}

// AllFields returns the scope fields followed by the regular fields, in the
// order they appear in an options data record.
func (t OptionsTemplate) AllFields() []FieldSpecifier {
	all := make([]FieldSpecifier, 0, len(t.ScopeFields)+len(t.Fields))
	all = append(all, t.ScopeFields...)
	all = append(all, t.Fields...)
	return all
}

// DecodeTemplates decodes every template record in a template set's body.
// Templates already successfully decoded are returned alongside an error
// from a later malformed record, matching the set's non-fatal-to-the-
// message error handling.
func DecodeTemplates(body []byte) ([]Template, error) {
	var templates []Template
	for len(body) > 0 {
		if len(body) < templateRecordHeaderLength {
			return templates, BadTemplate(2, ErrTruncatedSet)
		}
		id := binary.BigEndian.Uint16(body[0:2])
		count := binary.BigEndian.Uint16(body[2:4])
		body = body[templateRecordHeaderLength:]

		fields := make([]FieldSpecifier, 0, count)
		for i := uint16(0); i < count; i++ {
			fs, n, err := DecodeFieldSpecifier(body)
			if err != nil {
				return templates, BadTemplate(id, err)
			}
			fields = append(fields, fs)
			body = body[n:]
		}
		templates = append(templates, Template{ID: id, Fields: fields})
	}
	return templates, nil
}

// DecodeOptionsTemplates decodes every options template record in an
// options template set's body.
func DecodeOptionsTemplates(body []byte) ([]OptionsTemplate, error) {
	var templates []OptionsTemplate
	for len(body) > 0 {
		if len(body) < optionsTemplateRecordHeaderLength {
			return templates, BadTemplate(3, ErrTruncatedSet)
		}
		id := binary.BigEndian.Uint16(body[0:2])
		count := binary.BigEndian.Uint16(body[2:4])
		scopeCount := binary.BigEndian.Uint16(body[4:6])
		body = body[optionsTemplateRecordHeaderLength:]

		if scopeCount > count {
			return templates, BadTemplate(id, ErrBadTemplate)
		}

		scopeFields := make([]FieldSpecifier, 0, scopeCount)
		for i := uint16(0); i < scopeCount; i++ {
			fs, n, err := DecodeFieldSpecifier(body)
			if err != nil {
				return templates, BadTemplate(id, err)
			}
			scopeFields = append(scopeFields, fs)
			body = body[n:]
		}

		fieldCount := count - scopeCount
		fields := make([]FieldSpecifier, 0, fieldCount)
		for i := uint16(0); i < fieldCount; i++ {
			fs, n, err := DecodeFieldSpecifier(body)
			if err != nil {
				return templates, BadTemplate(id, err)
			}
			fields = append(fields, fs)
			body = body[n:]
		}
		templates = append(templates, OptionsTemplate{ID: id, ScopeFields: scopeFields, Fields: fields})
	}
	return templates, nil
}
