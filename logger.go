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
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
)

// Log is the package-level logger used by Decoder for diagnostic events
// (sets that fail to decode: unknown templates, malformed sets). Missing
// formatters are not logged. It discards all
// output until SetLogger is called, so embedding this package never forces
// a logging dependency on a caller that doesn't want one.
var (
	logMu  sync.RWMutex
	logVal atomic.Value
)

func init() {
	logVal.Store(logr.Discard())
}

// SetLogger installs the logr.Logger used for this package's diagnostic
// output. Safe to call concurrently with decoding.
func SetLogger(l logr.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	logVal.Store(l)
}

// Log returns the currently installed logger.
func Log() logr.Logger {
	return logVal.Load().(logr.Logger)
}
