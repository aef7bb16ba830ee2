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

/*
Package ipfix decodes IPFIX (RFC 7011) messages.

It learns templates from template sets, stores them in a Registry, and uses
them to decode subsequent data sets into named, typed records. Transport,
persistence, and NetFlow v5/v9 compatibility are explicitly out of scope:
callers hand pre-framed message buffers to a Decoder and get back decoded
Messages.

The package exposes two parsing entry points differing only in how they
access the template registry: ParseMessage assumes the caller has exclusive
access to the Registry, while ParseMessageShared goes through a
SharedRegistry, making it safe to call concurrently from multiple goroutines
against the same registry. The SharedRegistry takes its write lock once per
inserted template and its read lock once per data-set template lookup; no
lock is held across a whole template set or while a data set's records are
decoded.
*/
package ipfix
