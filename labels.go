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
	mrpb "google.golang.org/genproto/googleapis/api/monitoredres"
)

const (
	// monitoredResourceType is the fixed type of the resource descriptor
	// attached to every entry. Observability logs are attributed to the
	// container the workload runs in.
	monitoredResourceType = "k8s_container"

	// sourceProjectIDLabel marks entries that were routed to a project other
	// than the one the workload runs in.
	sourceProjectIDLabel = "source_project_id"

	projectIDTag = "project_id"
)

// k8sResourceLabels is the allow-list of location tag keys recognized as
// k8s_container resource labels. Anything else in the location tags is
// dropped from the resource silently.
var k8sResourceLabels = map[string]bool{
	"project_id":     true,
	"location":       true,
	"cluster_name":   true,
	"namespace_name": true,
	"pod_name":       true,
	"container_name": true,
}

// deriveLabels builds the immutable label map attached to entries. When the
// workload's own project (location tag "project_id") differs from the
// destination project and both are known, a source_project_id label is
// injected so cross-project routing stays visible. Explicit custom tags are
// overlaid afterwards and win on key collision.
func deriveLabels(customTags, locationTags map[string]string, destinationProjectID string) map[string]string {
	labels := make(map[string]string, len(customTags)+1)
	sourceProjectID := locationTags[projectIDTag]
	if destinationProjectID != "" && sourceProjectID != "" && sourceProjectID != destinationProjectID {
		labels[sourceProjectIDLabel] = sourceProjectID
	}
	for k, v := range customTags {
		labels[k] = v
	}
	return labels
}

// deriveResource builds the k8s_container monitored resource from the
// supplied location tags, keeping only allow-listed keys.
func deriveResource(locationTags map[string]string) *mrpb.MonitoredResource {
	res := &mrpb.MonitoredResource{
		Type:   monitoredResourceType,
		Labels: make(map[string]string, len(locationTags)),
	}
	for k, v := range locationTags {
		if k8sResourceLabels[k] {
			res.Labels[k] = v
		}
	}
	return res
}
