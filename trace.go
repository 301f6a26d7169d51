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
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
)

// extractTraceSpan pulls the OpenTelemetry span context out of ctx and
// formats it the way Cloud Logging expects for trace correlation
// (projects/PROJECT_ID/traces/TRACE_ID). Correlation needs both a valid
// trace ID and a project ID; when either is missing everything is returned
// empty and the entry is written uncorrelated.
func extractTraceSpan(ctx context.Context, projectID string) (traceName, spanID string, sampled bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() || projectID == "" {
		return "", "", false
	}
	traceName = fmt.Sprintf("projects/%s/traces/%s", projectID, sc.TraceID().String())
	if sc.SpanID().IsValid() {
		spanID = sc.SpanID().String()
	}
	return traceName, spanID, sc.IsSampled()
}
