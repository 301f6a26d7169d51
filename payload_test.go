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
	"testing"
	"time"

	"google.golang.org/grpc/codes"
)

// TestRecordPayloadFieldNames verifies that the converted payload preserves
// the schema's snake_case field names and enum value names rather than Go
// identifiers.
func TestRecordPayloadFieldNames(t *testing.T) {
	rec := &LogRecord{
		Timestamp:   time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		RPCID:       "rpc-1",
		SequenceID:  42,
		EventType:   EventTypeClientHeader,
		Logger:      LoggerClient,
		ServiceName: "echo.EchoService",
		MethodName:  "UnaryEcho",
		Authority:   "example.com:443",
		LogLevel:    LogLevelInfo,
		Payload: &Payload{
			Metadata: map[string]string{"user-agent": "grpc-go/1.77.0"},
		},
	}

	payload, err := recordPayload(rec)
	if err != nil {
		t.Fatalf("recordPayload() returned error: %v", err)
	}
	fields := payload.AsMap()

	wantStrings := map[string]string{
		"rpc_id":       "rpc-1",
		"event_type":   "EVENT_TYPE_CLIENT_HEADER",
		"logger":       "LOGGER_CLIENT",
		"service_name": "echo.EchoService",
		"method_name":  "UnaryEcho",
		"authority":    "example.com:443",
		"log_level":    "LOG_LEVEL_INFO",
	}
	for key, want := range wantStrings {
		got, ok := fields[key].(string)
		if !ok {
			t.Errorf("payload field %q = %T(%v), want string", key, fields[key], fields[key])
			continue
		}
		if got != want {
			t.Errorf("payload field %q = %q, want %q", key, got, want)
		}
	}

	inner, ok := fields["payload"].(map[string]any)
	if !ok {
		t.Fatalf("payload field %q = %T, want map", "payload", fields["payload"])
	}
	md, ok := inner["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("metadata field = %T, want map", inner["metadata"])
	}
	if got := md["user-agent"]; got != "grpc-go/1.77.0" {
		t.Errorf("metadata[user-agent] = %v, want %q", got, "grpc-go/1.77.0")
	}
}

// TestRecordPayloadSequenceIDIsString pins down the documented conversion
// limitation: 64-bit sequence IDs are rendered as strings, matching the
// proto JSON form of the schema. Changing this silently would break queries
// written against entries from other language implementations.
func TestRecordPayloadSequenceIDIsString(t *testing.T) {
	payload, err := recordPayload(&LogRecord{SequenceID: 42})
	if err != nil {
		t.Fatalf("recordPayload() returned error: %v", err)
	}
	got, ok := payload.AsMap()["sequence_id"]
	if !ok {
		t.Fatal("sequence_id absent from payload")
	}
	s, ok := got.(string)
	if !ok {
		t.Fatalf("sequence_id = %T(%v), want string", got, got)
	}
	if s != "42" {
		t.Errorf("sequence_id = %q, want %q", s, "42")
	}
}

// TestRecordPayloadOmitsEmptyFields verifies zero-valued fields do not
// appear in the written entry.
func TestRecordPayloadOmitsEmptyFields(t *testing.T) {
	payload, err := recordPayload(&LogRecord{ServiceName: "svc"})
	if err != nil {
		t.Fatalf("recordPayload() returned error: %v", err)
	}
	fields := payload.AsMap()
	for _, key := range []string{"timestamp", "rpc_id", "sequence_id", "event_type", "peer", "payload"} {
		if _, present := fields[key]; present {
			t.Errorf("zero-valued field %q present in payload: %v", key, fields[key])
		}
	}
	if got := fields["service_name"]; got != "svc" {
		t.Errorf("service_name = %v, want %q", got, "svc")
	}
}

// TestRecordPayloadStatusFields checks trailer-style records carry status
// information through the conversion.
func TestRecordPayloadStatusFields(t *testing.T) {
	payload, err := recordPayload(&LogRecord{
		EventType: EventTypeServerTrailer,
		Payload: &Payload{
			StatusCode:    codes.NotFound,
			StatusMessage: "no such user",
		},
	})
	if err != nil {
		t.Fatalf("recordPayload() returned error: %v", err)
	}
	inner, ok := payload.AsMap()["payload"].(map[string]any)
	if !ok {
		t.Fatalf("payload field = %T, want map", payload.AsMap()["payload"])
	}
	// JSON numbers decode as float64.
	if got, want := inner["status_code"], float64(codes.NotFound); got != want {
		t.Errorf("status_code = %v, want %v", got, want)
	}
	if got := inner["status_message"]; got != "no such user" {
		t.Errorf("status_message = %v, want %q", got, "no such user")
	}
}
