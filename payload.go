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
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// recordPayload converts a record into the structured payload of a Cloud
// Logging entry. The record is routed through its JSON form so that field
// names in the written entry match the observability schema (snake_case,
// enum names spelled out) rather than Go identifiers.
//
// Known limitation: 64-bit integer fields (sequence_id) survive the round
// trip as strings, matching the proto JSON form the schema was defined
// against. Queries written against entries from other language
// implementations rely on this, so it is not normalized back to a number.
func recordPayload(rec *LogRecord) (*structpb.Struct, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal log record: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode log record payload: %w", err)
	}
	payload, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build payload struct: %w", err)
	}
	return payload, nil
}
