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
	"io"

	"gopkg.in/yaml.v3"
)

// MustEncodeYAML calls EncodeYAML and panics on error.
func MustEncodeYAML(w io.Writer, msg *Message) {
	if err := EncodeYAML(w, msg); err != nil {
		panic(err)
	}
}

// EncodeYAML writes msg to w as YAML, using the same flattened record
// projection as EncodeJSON.
func EncodeYAML(w io.Writer, msg *Message) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(projectMessage(msg))
}
