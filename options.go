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
	"log/slog"
	"maps"

	"google.golang.org/api/option"
)

// Option configures a GcpLogSink during construction via NewGcpLogSink.
// Options are applied in order, so later options override earlier ones.
type Option func(*options)

// options holds the configurable settings for a sink. Populated by the
// functional options and frozen once NewGcpLogSink returns.
type options struct {
	locationTags     map[string]string
	customTags       map[string]string
	flushLimit       int
	excludedServices []string
	clientOptions    []option.ClientOption
	diagLogger       *slog.Logger
	onError          func(error)
}

func defaultOptions() options {
	return options{
		flushLimit: defaultFlushLimit,
		diagLogger: slog.Default(),
	}
}

// WithLocationTags returns an Option that supplies the tags describing
// where the workload runs. Keys in the k8s_container allow-list (project_id,
// location, cluster_name, namespace_name, pod_name, container_name) become
// monitored resource labels; the project_id tag additionally drives
// source_project_id label derivation. The map is copied.
func WithLocationTags(tags map[string]string) Option {
	return func(o *options) {
		o.locationTags = maps.Clone(tags)
	}
}

// WithCustomTags returns an Option that attaches user-defined labels to
// every entry. Custom tags take precedence over derived labels with the
// same key. The map is copied.
func WithCustomTags(tags map[string]string) Option {
	return func(o *options) {
		o.customTags = maps.Clone(tags)
	}
}

// WithFlushLimit returns an Option that sets how many writes occur between
// forced flushes of the Cloud Logging client. Values below one are ignored
// and the default of 100 applies.
func WithFlushLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.flushLimit = n
		}
	}
}

// WithExcludedServices returns an Option naming gRPC services whose records
// the sink drops without writing. Typically used for the Cloud Logging API
// itself and other infrastructure services whose logs would be circular or
// pure noise. Multiple uses are cumulative.
func WithExcludedServices(services ...string) Option {
	return func(o *options) {
		o.excludedServices = append(o.excludedServices, services...)
	}
}

// WithClientOptions returns an Option passing additional
// google.golang.org/api options (credentials, endpoint, user agent) through
// to the Cloud Logging client when it is created.
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, opts...)
	}
}

// WithDiagnosticsLogger returns an Option that sets the slog.Logger the
// sink reports its own failures through. Defaults to slog.Default().
func WithDiagnosticsLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.diagLogger = logger
	}
}

// WithClientOnError returns an Option that installs fn as the Cloud Logging
// client's background error callback, invoked when buffered entries fail to
// deliver asynchronously.
func WithClientOnError(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}
