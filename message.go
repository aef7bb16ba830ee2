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

// Message is a fully decoded IPFIX message: its header plus every set it
// carried, in wire order.
type Message struct {
	Header MessageHeader `json:"header" yaml:"header"`
	Sets   []Set         `json:"sets" yaml:"sets"`
}

// Set is one decoded set from a Message. At most one of Templates,
// OptionsTemplates, or Records is populated, selected by Header.Kind(); none
// is when the set failed to decode or its data set had no known template.
type Set struct {
	Header SetHeader `json:"header" yaml:"header"`

	Templates        []Template        `json:"templates,omitempty" yaml:"templates,omitempty"`
	OptionsTemplates []OptionsTemplate `json:"optionsTemplates,omitempty" yaml:"optionsTemplates,omitempty"`
	Records          []DataRecord      `json:"records,omitempty" yaml:"records,omitempty"`
}
