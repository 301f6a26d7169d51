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
	"log/slog"
	"sync"

	"cloud.google.com/go/logging"
	mrpb "google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/obskit/grpcobs/internal/gcp"
)

const (
	// defaultLogID is the log all observability records are written to. Its
	// URL-escaped form, microservices.googleapis.com%2Fobservability%2Fgrpc,
	// is the log name that appears on written entries.
	defaultLogID = "microservices.googleapis.com/observability/grpc"

	// defaultFlushLimit is the number of writes between forced flushes when
	// WithFlushLimit is not used.
	defaultFlushLimit = 100
)

// Sink is a terminal consumer of gRPC observability log records.
//
// Both methods are best effort and never report failure to the caller: a
// host logging framework must keep serving traffic regardless of whether
// its logs are delivered.
type Sink interface {
	// Write forwards one record to the backing store. It may block briefly
	// on network I/O but never returns an error; failed records are logged
	// internally and dropped.
	Write(ctx context.Context, rec *LogRecord)

	// Close releases the backing store. Safe to call when nothing was ever
	// written and safe to call more than once.
	Close()
}

// entryWriter is the slice of the Cloud Logging client the sink uses.
// *gcp.Client satisfies it in production; tests substitute fakes.
type entryWriter interface {
	Log(e logging.Entry)
	Flush() error
	Close() error
}

// GcpLogSink writes gRPC observability log records to Google Cloud Logging.
//
// The underlying client is created on the first write, exactly once across
// concurrent callers. Writes from different goroutines are serialized by a
// single mutex, which also guards the flush counter; this is a deliberate
// simplicity-over-throughput tradeoff for a sink that sits behind a
// buffering client.
type GcpLogSink struct {
	projectID  string
	labels     map[string]string
	resource   *mrpb.MonitoredResource
	flushLimit int
	exclude    map[string]bool
	diag       *slog.Logger

	// newClientFn is replaced in tests to observe initialization.
	newClientFn func(ctx context.Context) (entryWriter, error)
	initOnce    sync.Once
	initErr     error

	mu         sync.Mutex
	client     entryWriter
	flushCount int
	closed     bool
}

var _ Sink = (*GcpLogSink)(nil)

// NewGcpLogSink returns a sink that writes to destinationProjectID. An
// empty destination means the ambient project (GOOGLE_CLOUD_PROJECT or the
// metadata server) is resolved when the client is first created.
//
// Label and resource metadata are derived once here and are immutable for
// the life of the sink.
func NewGcpLogSink(destinationProjectID string, opts ...Option) *GcpLogSink {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	exclude := make(map[string]bool, len(o.excludedServices))
	for _, svc := range o.excludedServices {
		exclude[svc] = true
	}

	s := &GcpLogSink{
		projectID:  destinationProjectID,
		labels:     deriveLabels(o.customTags, o.locationTags, destinationProjectID),
		resource:   deriveResource(o.locationTags),
		flushLimit: o.flushLimit,
		exclude:    exclude,
		diag:       o.diagLogger,
	}

	clientOpts := o.clientOptions
	onError := o.onError
	s.newClientFn = func(ctx context.Context) (entryWriter, error) {
		projectID := s.projectID
		if projectID == "" {
			id, err := gcp.ResolveProjectID(ctx)
			if err != nil {
				return nil, err
			}
			projectID = id
		}
		client, err := gcp.Dial(ctx, projectID, defaultLogID, onError, clientOpts...)
		if err != nil {
			return nil, err
		}
		// Record the resolved project for trace correlation on entries.
		s.projectID = projectID
		return client, nil
	}
	return s
}

// ensureClient performs the once-only client initialization. Every caller
// observes the same outcome; a failed initialization is permanent for this
// sink instance.
func (s *GcpLogSink) ensureClient(ctx context.Context) error {
	s.initOnce.Do(func() {
		client, err := s.newClientFn(ctx)
		if err != nil {
			s.initErr = err
			logDiagnostic(s.diag, slog.LevelError, "cloud logging client initialization failed",
				slog.Any("error", err))
			return
		}
		s.mu.Lock()
		s.client = client
		s.mu.Unlock()
	})
	return s.initErr
}

// Write converts rec into a Cloud Logging entry and hands it to the client.
// Records for excluded services are dropped silently. All failures are
// logged through the diagnostics logger and swallowed; Write never blocks
// the caller beyond the sink mutex and the client's own I/O.
func (s *GcpLogSink) Write(ctx context.Context, rec *LogRecord) {
	if rec == nil {
		return
	}
	if err := s.ensureClient(ctx); err != nil {
		logDiagnostic(s.diag, slog.LevelDebug, "dropping record: client unavailable",
			slog.String("service", rec.ServiceName))
		return
	}
	if s.exclude[rec.ServiceName] {
		return
	}

	payload, err := recordPayload(rec)
	if err != nil {
		logDiagnostic(s.diag, slog.LevelError, "failed to convert log record",
			slog.Any("error", err),
			slog.String("service", rec.ServiceName),
			slog.String("event_type", rec.EventType.String()))
		return
	}

	e := logging.Entry{
		Timestamp: rec.Timestamp,
		Severity:  cloudSeverity(rec.LogLevel),
		Payload:   payload,
		Resource:  s.resource,
	}
	if len(s.labels) > 0 {
		e.Labels = s.labels
	}
	if traceName, spanID, sampled := extractTraceSpan(ctx, s.projectID); traceName != "" {
		e.Trace = traceName
		e.SpanID = spanID
		e.TraceSampled = sampled
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		logDiagnostic(s.diag, slog.LevelWarn, "dropping record written after close",
			slog.String("service", rec.ServiceName))
		return
	}

	logDiagnostic(s.diag, slog.LevelDebug, "writing gRPC event to cloud logging",
		slog.String("event_type", rec.EventType.String()))
	s.client.Log(e)
	s.flushCount++
	if s.flushCount >= s.flushLimit {
		if err := s.client.Flush(); err != nil {
			// Counter stays at the limit so the next write retries the flush.
			logDiagnostic(s.diag, slog.LevelError, "failed to flush cloud logging entries",
				slog.Any("error", err))
			return
		}
		s.flushCount = 0
	}
}

// Close shuts down the Cloud Logging client, flushing buffered entries.
// Closing a sink that never created a client, or closing twice, logs a
// warning and does nothing.
func (s *GcpLogSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		logDiagnostic(s.diag, slog.LevelWarn, "close called before any client was created; nothing to do")
		return
	}
	if s.closed {
		logDiagnostic(s.diag, slog.LevelWarn, "close called on already closed sink")
		return
	}
	s.closed = true
	if err := s.client.Close(); err != nil {
		logDiagnostic(s.diag, slog.LevelError, "failed to close cloud logging client",
			slog.Any("error", err))
	}
}

// logDiagnostic emits internal diagnostic messages, guarding against nil
// loggers in tests.
func logDiagnostic(logger *slog.Logger, level slog.Level, msg string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	logger.LogAttrs(context.Background(), level, msg, attrs...)
}
