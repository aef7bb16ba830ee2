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

import "time"

// templateStore is the subset of Registry/SharedRegistry's API a Decoder
// needs to learn templates and resolve a data set's field list. Both
// Registry and SharedRegistry satisfy it, so ParseMessage and
// ParseMessageShared can share one decode loop that differs only in which
// concrete store they're handed.
type templateStore interface {
	AddTemplate(Template)
	AddOptionsTemplate(OptionsTemplate)
	Fields(setID uint16) ([]FieldSpecifier, bool)
}

// Decoder turns IPFIX message buffers into Messages. It owns the field
// registry used to interpret data record bytes; callers own the template
// registry (Registry or SharedRegistry) and pass it to each parse call,
// since which one to use is a property of the caller's concurrency model,
// not of the Decoder itself.
type Decoder struct {
	Fields *FieldRegistry
}

// NewDecoder returns a Decoder with a FieldRegistry seeded from
// DefaultFormatters.
func NewDecoder() *Decoder {
	return &Decoder{Fields: NewFieldRegistry()}
}

// AddCustomField registers an enterprise-specific field decoder on this
// Decoder's field registry.
func (d *Decoder) AddCustomField(pen uint32, fieldID uint16, name string, decoder FieldDecoder) {
	d.Fields.AddCustomField(pen, fieldID, name, decoder)
}

// ParseMessage decodes buf against reg, assuming the caller has exclusive
// access to reg for the duration of this call (no concurrent decode shares
// it). This is the fast path: template lookups and updates never take a
// lock.
func (d *Decoder) ParseMessage(buf []byte, reg *Registry) (*Message, error) {
	return d.parseMessage(buf, reg)
}

// ParseMessageShared decodes buf against reg, a SharedRegistry safe for
// concurrent use by other goroutines decoding against the same observation
// domain. Each set's template lookups and updates are individually
// lock-protected.
func (d *Decoder) ParseMessageShared(buf []byte, reg *SharedRegistry) (*Message, error) {
	return d.parseMessage(buf, reg)
}

func (d *Decoder) parseMessage(buf []byte, reg templateStore) (*Message, error) {
	start := time.Now()
	defer func() {
		DurationMicroseconds.Observe(float64(time.Since(start).Microseconds()))
	}()
	MessagesTotal.Add(1)

	header, body, err := DecodeMessageHeader(buf)
	if err != nil {
		ErrorsTotal.Add(1)
		return nil, err
	}

	rawSets, err := SplitSets(body)
	if err != nil {
		ErrorsTotal.Add(1)
		return nil, err
	}

	msg := &Message{Header: header, Sets: make([]Set, 0, len(rawSets))}
	for _, raw := range rawSets {
		set, err := d.decodeSet(raw, reg)
		if err != nil {
			Log().Error(err, "failed to decode set", "setId", raw.Header.ID, "kind", raw.Header.Kind().String())
		}
		msg.Sets = append(msg.Sets, set)
	}
	return msg, nil
}

func (d *Decoder) decodeSet(raw RawSet, reg templateStore) (Set, error) {
	kind := raw.Header.Kind()
	DecodedSets.WithLabelValues(kind.String()).Inc()

	switch kind {
	case KindTemplateSet:
		templates, err := DecodeTemplates(raw.Body)
		for _, t := range templates {
			reg.AddTemplate(t)
		}
		DecodedRecords.WithLabelValues(kind.String()).Add(float64(len(templates)))
		if err != nil {
			DroppedRecords.WithLabelValues(kind.String()).Inc()
		}
		return Set{Header: raw.Header, Templates: templates}, err

	case KindOptionsTemplateSet:
		templates, err := DecodeOptionsTemplates(raw.Body)
		for _, t := range templates {
			reg.AddOptionsTemplate(t)
		}
		DecodedRecords.WithLabelValues(kind.String()).Add(float64(len(templates)))
		if err != nil {
			DroppedRecords.WithLabelValues(kind.String()).Inc()
		}
		return Set{Header: raw.Header, OptionsTemplates: templates}, err

	default:
		fields, ok := reg.Fields(raw.Header.ID)
		if !ok {
			DroppedRecords.WithLabelValues(kind.String()).Inc()
			return Set{Header: raw.Header}, UnknownTemplate(raw.Header.ID)
		}
		records, err := DecodeDataSet(raw.Body, fields, d.Fields)
		DecodedRecords.WithLabelValues(kind.String()).Add(float64(len(records)))
		if err != nil {
			DroppedRecords.WithLabelValues(kind.String()).Inc()
		}
		return Set{Header: raw.Header, Records: records}, err
	}
}
