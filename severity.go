// Copyright 2025 The grpcobs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package grpcobs

import "cloud.google.com/go/logging"

// cloudSeverity converts a record's LogLevel to the corresponding Cloud
// Logging severity. The mapping is total: levels outside the known range
// (including LogLevelUnknown) fall through to logging.Default so a
// malformed record still produces a valid entry.
func cloudSeverity(level LogLevel) logging.Severity {
	switch level {
	case LogLevelTrace, LogLevelDebug:
		return logging.Debug
	case LogLevelInfo:
		return logging.Info
	case LogLevelWarn:
		return logging.Warning
	case LogLevelError:
		return logging.Error
	case LogLevelCritical:
		return logging.Critical
	default:
		return logging.Default
	}
}
