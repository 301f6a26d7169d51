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

import "errors"

// ErrConfigMissing indicates that neither GRPC_OBSERVABILITY_CONFIG nor
// GRPC_OBSERVABILITY_CONFIG_FILE provided an observability configuration.
var ErrConfigMissing = errors.New("grpcobs: observability config not present in environment")
