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

// Package grpcobs forwards gRPC observability log records to Google Cloud
// Logging.
//
// The primary entry point is [NewGcpLogSink], which returns a [Sink] that
// converts each [LogRecord] into a Cloud Logging entry under the log ID
// "microservices.googleapis.com/observability/grpc", attaches a
// k8s_container monitored resource and optional labels, and writes it
// through a lazily created `cloud.google.com/go/logging` client. The client
// is created on the first write rather than at construction because the
// Cloud Logging client itself speaks gRPC; deferring initialization avoids
// the sink observing its own transport traffic while it is still being set
// up.
//
// Writes are best effort. The sink never returns an error to the caller:
// conversion, write, and flush failures are reported through an internal
// [log/slog] diagnostics logger and the record is dropped. Entries are
// buffered by the client and flushed every N writes (default 100,
// configurable with [WithFlushLimit]).
//
// Configuration can be supplied programmatically through functional options
// or loaded from the GRPC_OBSERVABILITY_CONFIG /
// GRPC_OBSERVABILITY_CONFIG_FILE environment variables via [LoadConfig] and
// [NewSinkFromConfig]. When the destination project is left empty it is
// resolved from GOOGLE_CLOUD_PROJECT or the GCE metadata server.
//
// When the context passed to [Sink.Write] carries an OpenTelemetry span,
// entries are annotated with the trace name, span ID, and sampling decision
// in the format Cloud Logging uses for correlation with Cloud Trace.
package grpcobs
