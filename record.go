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

import (
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
)

// EventType identifies which part of the RPC lifecycle produced a record.
// The values and their JSON names mirror the gRPC observability log record
// schema so that entries written by different language implementations stay
// queryable with the same filters.
type EventType int32

const (
	EventTypeUnknown EventType = iota
	EventTypeClientHeader
	EventTypeServerHeader
	EventTypeClientMessage
	EventTypeServerMessage
	EventTypeClientHalfClose
	EventTypeServerTrailer
	EventTypeCancel
)

var eventTypeNames = map[EventType]string{
	EventTypeUnknown:         "EVENT_TYPE_UNKNOWN",
	EventTypeClientHeader:    "EVENT_TYPE_CLIENT_HEADER",
	EventTypeServerHeader:    "EVENT_TYPE_SERVER_HEADER",
	EventTypeClientMessage:   "EVENT_TYPE_CLIENT_MESSAGE",
	EventTypeServerMessage:   "EVENT_TYPE_SERVER_MESSAGE",
	EventTypeClientHalfClose: "EVENT_TYPE_CLIENT_HALF_CLOSE",
	EventTypeServerTrailer:   "EVENT_TYPE_SERVER_TRAILER",
	EventTypeCancel:          "EVENT_TYPE_CANCEL",
}

// String returns the schema name of the event type, or a numeric placeholder
// for unrecognized values.
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EVENT_TYPE(%d)", int32(t))
}

// MarshalJSON renders the event type as its schema name, matching how the
// proto JSON form of the record serializes enums.
func (t EventType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// LoggerType records which side of the call emitted the record.
type LoggerType int32

const (
	LoggerUnknown LoggerType = iota
	LoggerClient
	LoggerServer
)

var loggerTypeNames = map[LoggerType]string{
	LoggerUnknown: "LOGGER_UNKNOWN",
	LoggerClient:  "LOGGER_CLIENT",
	LoggerServer:  "LOGGER_SERVER",
}

// String returns the schema name of the logger type.
func (t LoggerType) String() string {
	if name, ok := loggerTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("LOGGER(%d)", int32(t))
}

// MarshalJSON renders the logger type as its schema name.
func (t LoggerType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// LogLevel is the severity a record was produced at. The zero value is
// unspecified; unrecognized values map to the backend's DEFAULT severity.
type LogLevel int32

const (
	LogLevelUnknown LogLevel = iota
	LogLevelTrace
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelCritical
)

var logLevelNames = map[LogLevel]string{
	LogLevelUnknown:  "LOG_LEVEL_UNKNOWN",
	LogLevelTrace:    "LOG_LEVEL_TRACE",
	LogLevelDebug:    "LOG_LEVEL_DEBUG",
	LogLevelInfo:     "LOG_LEVEL_INFO",
	LogLevelWarn:     "LOG_LEVEL_WARN",
	LogLevelError:    "LOG_LEVEL_ERROR",
	LogLevelCritical: "LOG_LEVEL_CRITICAL",
}

// String returns the schema name of the log level.
func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LOG_LEVEL(%d)", int32(l))
}

// MarshalJSON renders the log level as its schema name.
func (l LogLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// Address describes one endpoint of the call.
type Address struct {
	Type    string `json:"type,omitempty"`
	Address string `json:"address,omitempty"`
	IPPort  uint32 `json:"ip_port,omitempty"`
}

// Payload carries the event-specific content of a record: metadata for
// header events, message bytes for message events, and status details for
// trailer events.
type Payload struct {
	Metadata map[string]string `json:"metadata,omitempty"`
	// Timeout is the client-advertised deadline, present on client header
	// events only.
	Timeout       time.Duration `json:"timeout,omitempty"`
	StatusCode    codes.Code    `json:"status_code,omitempty"`
	StatusMessage string        `json:"status_message,omitempty"`
	StatusDetails []byte        `json:"status_details,omitempty"`
	MessageLength uint32        `json:"message_length,omitempty"`
	Message       []byte        `json:"message,omitempty"`
}

// LogRecord is one gRPC observability event, produced upstream by the host
// logging framework. Records are treated as immutable by the sink.
//
// The JSON field names match the observability log record schema
// (snake_case proto field names). SequenceID carries the ",string" tag
// because 64-bit integers are rendered as strings in proto JSON form; the
// sink deliberately preserves that representation.
type LogRecord struct {
	Timestamp        time.Time  `json:"timestamp,omitzero"`
	RPCID            string     `json:"rpc_id,omitempty"`
	SequenceID       uint64     `json:"sequence_id,omitempty,string"`
	EventType        EventType  `json:"event_type,omitempty"`
	Logger           LoggerType `json:"logger,omitempty"`
	ServiceName      string     `json:"service_name,omitempty"`
	MethodName       string     `json:"method_name,omitempty"`
	Authority        string     `json:"authority,omitempty"`
	LogLevel         LogLevel   `json:"log_level,omitempty"`
	PayloadTruncated bool       `json:"payload_truncated,omitempty"`
	Peer             *Address   `json:"peer,omitempty"`
	Payload          *Payload   `json:"payload,omitempty"`
}
