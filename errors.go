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
	"errors"
	"fmt"
)

var (
	// ErrBadHeader is returned when a message header is unreadable or its
	// version is not 10. Fatal for the message.
	ErrBadHeader = errors.New("bad ipfix message header")

	// ErrTruncatedSet is returned when a set's declared length exceeds the
	// remaining buffer, or is less than 4. SplitSets returns the sets before
	// the offending one alongside it; ParseMessage treats it as fatal and
	// returns no Message.
	ErrTruncatedSet = errors.New("truncated set")

	// ErrUnknownTemplate is returned when a data set references a set-id
	// with no registered template or options template. Non-fatal: the data
	// set is returned with an empty record list.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrBadTemplate is returned when a template-set or options-template-set
	// body cannot be fully decoded. Non-fatal for the message: templates
	// parsed before the failure are retained.
	ErrBadTemplate = errors.New("bad template")

	// ErrBadRecord is returned when a field inside a data record cannot be
	// extracted. The in-flight record is discarded.
	ErrBadRecord = errors.New("bad record")

	// ErrFormatterMissing marks a PEN or field-id with no registered
	// decoder. Never fatal; surfaced as an Unrecognized key (unknown field
	// id) or a KeyErr key with an Empty value (unknown PEN).
	ErrFormatterMissing = errors.New("formatter missing")
)

// BadHeader reports a message header decode failure for the given version.
func BadHeader(version uint16) error {
	return fmt.Errorf("%w: version %d, only 10 is supported", ErrBadHeader, version)
}

// TruncatedSet reports a set whose declared length doesn't fit the
// remaining buffer.
func TruncatedSet(setID uint16, declared, remaining int) error {
	return fmt.Errorf("%w: set %d declares %d bytes, %d remain", ErrTruncatedSet, setID, declared, remaining)
}

// UnknownTemplate reports a data set with no matching template.
func UnknownTemplate(setID uint16) error {
	return fmt.Errorf("%w: no template registered for set id %d", ErrUnknownTemplate, setID)
}

// BadTemplate reports a template-set body that could not be fully decoded.
func BadTemplate(setID uint16, cause error) error {
	return fmt.Errorf("%w: set %d, %v", ErrBadTemplate, setID, cause)
}

// BadRecord reports a field that could not be extracted from a data set.
func BadRecord(templateID uint16, fieldIndex int, cause error) error {
	return fmt.Errorf("%w: template %d, field %d, %v", ErrBadRecord, templateID, fieldIndex, cause)
}

// FormatterMissing reports a PEN that has no registered formatter table.
func FormatterMissing(pen uint32, fieldID uint16) error {
	return fmt.Errorf("%w: pen %d, field %d", ErrFormatterMissing, pen, fieldID)
}
