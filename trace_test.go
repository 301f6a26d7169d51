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
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func validSpanContext() trace.SpanContext {
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99},
		SpanID:     trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		TraceFlags: trace.FlagsSampled,
	})
}

func TestExtractTraceSpan(t *testing.T) {
	sc := validSpanContext()

	t.Run("ValidSpanAndProject", func(t *testing.T) {
		ctx := trace.ContextWithSpanContext(context.Background(), sc)
		traceName, spanID, sampled := extractTraceSpan(ctx, "proj")
		wantTrace := "projects/proj/traces/" + sc.TraceID().String()
		if traceName != wantTrace {
			t.Errorf("trace name = %q, want %q", traceName, wantTrace)
		}
		if spanID != sc.SpanID().String() {
			t.Errorf("span ID = %q, want %q", spanID, sc.SpanID().String())
		}
		if !sampled {
			t.Error("sampled = false, want true")
		}
	})

	t.Run("NoSpanInContext", func(t *testing.T) {
		traceName, spanID, sampled := extractTraceSpan(context.Background(), "proj")
		if traceName != "" || spanID != "" || sampled {
			t.Errorf("extractTraceSpan(no span) = (%q, %q, %v), want empty", traceName, spanID, sampled)
		}
	})

	t.Run("EmptyProjectID", func(t *testing.T) {
		ctx := trace.ContextWithSpanContext(context.Background(), sc)
		traceName, spanID, sampled := extractTraceSpan(ctx, "")
		if traceName != "" || spanID != "" || sampled {
			t.Errorf("extractTraceSpan(empty project) = (%q, %q, %v), want empty", traceName, spanID, sampled)
		}
	})

	t.Run("UnsampledSpan", func(t *testing.T) {
		unsampled := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: sc.TraceID(),
			SpanID:  sc.SpanID(),
		})
		ctx := trace.ContextWithSpanContext(context.Background(), unsampled)
		traceName, _, sampled := extractTraceSpan(ctx, "proj")
		if traceName == "" {
			t.Fatal("trace name empty for valid unsampled span")
		}
		if sampled {
			t.Error("sampled = true for unsampled span")
		}
	})
}
