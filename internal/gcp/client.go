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

package gcp

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"cloud.google.com/go/logging"
	"google.golang.org/api/option"
)

// defaultDialTimeout bounds client creation so a caller blocked on the first
// write is not stuck indefinitely when the logging endpoint is unreachable.
const defaultDialTimeout = 10 * time.Second

// Client bundles a Cloud Logging client with the single logger the sink
// writes through.
type Client struct {
	client *logging.Client
	logger *logging.Logger
}

// Dial creates the Cloud Logging client for projectID and a logger for
// logID. The log ID is passed in its raw form (slashes and all) and
// URL-escaped here, which is what produces the percent-encoded log name
// visible on written entries.
//
// onError, when non-nil, receives errors the client encounters while
// writing buffered entries in the background.
func Dial(ctx context.Context, projectID, logID string, onError func(error), opts ...option.ClientOption) (*Client, error) {
	if projectID == "" {
		return nil, ErrProjectMissing
	}

	ctx, cancel := context.WithTimeout(ctx, defaultDialTimeout)
	defer cancel()

	client, err := logging.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create cloud logging client: %w", err)
	}
	if onError != nil {
		client.OnError = onError
	}
	return &Client{
		client: client,
		logger: client.Logger(url.PathEscape(logID)),
	}, nil
}

// Log buffers one entry for delivery.
func (c *Client) Log(e logging.Entry) { c.logger.Log(e) }

// Flush sends all buffered entries and waits for the result.
func (c *Client) Flush() error { return c.logger.Flush() }

// Close flushes remaining entries and shuts the client down.
func (c *Client) Close() error { return c.client.Close() }
