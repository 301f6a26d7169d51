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
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/obskit/grpcobs/internal/gcp"
)

// Environment variable names used for configuration.
const (
	// envObservabilityConfig carries the observability configuration as an
	// inline JSON document.
	envObservabilityConfig = "GRPC_OBSERVABILITY_CONFIG"
	// envObservabilityConfigFile points at a file holding the same JSON
	// document. The inline variable wins when both are set.
	envObservabilityConfigFile = "GRPC_OBSERVABILITY_CONFIG_FILE"
)

// Config is the observability sink configuration, normally loaded from the
// environment with LoadConfig.
type Config struct {
	// DestinationProjectID is the project logs are written to. Empty means
	// the ambient project is resolved when the client is created.
	DestinationProjectID string `json:"destination_project_id"`

	// CustomTags are attached to every entry as labels.
	CustomTags map[string]string `json:"custom_tags"`

	// FlushMessageCount overrides the number of writes between forced
	// flushes. Nil means the default of 100.
	FlushMessageCount *int `json:"flush_message_count"`

	// ExcludedServices lists gRPC service names whose records are dropped.
	ExcludedServices []string `json:"excluded_services"`
}

// LoadConfig reads the observability configuration from
// GRPC_OBSERVABILITY_CONFIG, falling back to the file named by
// GRPC_OBSERVABILITY_CONFIG_FILE. It returns ErrConfigMissing when neither
// is set, which callers commonly treat as "observability disabled" rather
// than a failure.
func LoadConfig() (Config, error) {
	raw := os.Getenv(envObservabilityConfig)
	if strings.TrimSpace(raw) == "" {
		path := os.Getenv(envObservabilityConfigFile)
		if path == "" {
			return Config{}, ErrConfigMissing
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read observability config file: %w", err)
		}
		raw = string(b)
	}
	if strings.TrimSpace(raw) == "" {
		return Config{}, ErrConfigMissing
	}

	var cfg Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse observability config: %w", err)
	}
	return cfg, nil
}

// NewSinkFromConfig builds a GcpLogSink from cfg, detecting Kubernetes
// location tags from the runtime environment. ctx bounds the metadata
// server lookups performed during detection. Additional options are applied
// after the config-derived ones and may override them.
func NewSinkFromConfig(ctx context.Context, cfg Config, extra ...Option) *GcpLogSink {
	opts := []Option{
		WithLocationTags(gcp.DetectLocationTags(ctx)),
		WithCustomTags(cfg.CustomTags),
		WithExcludedServices(cfg.ExcludedServices...),
	}
	if cfg.FlushMessageCount != nil {
		opts = append(opts, WithFlushLimit(*cfg.FlushMessageCount))
	}
	opts = append(opts, extra...)
	return NewGcpLogSink(cfg.DestinationProjectID, opts...)
}
