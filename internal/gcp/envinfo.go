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
	"os"
	"strings"

	"cloud.google.com/go/compute/metadata"
)

// namespaceFile is where Kubernetes mounts the pod's namespace. A var so
// tests can point it at a fixture.
var namespaceFile = "/var/run/secrets/kubernetes.io/serviceaccount/namespace"

// ResolveProjectID returns the ambient project ID: GOOGLE_CLOUD_PROJECT
// first, then the metadata server when running on GCE.
func ResolveProjectID(ctx context.Context) (string, error) {
	if id := strings.TrimSpace(os.Getenv("GOOGLE_CLOUD_PROJECT")); id != "" {
		return id, nil
	}
	if metadata.OnGCE() {
		if id, err := metadata.ProjectIDWithContext(ctx); err == nil && id != "" {
			return id, nil
		}
	}
	return "", ErrProjectMissing
}

// DetectLocationTags inspects the runtime environment for the Kubernetes
// location tags recognized by the k8s_container monitored resource.
// Detection is best effort: values that cannot be determined are simply
// absent from the returned map.
func DetectLocationTags(ctx context.Context) map[string]string {
	tags := make(map[string]string)

	if id, err := ResolveProjectID(ctx); err == nil {
		tags["project_id"] = id
	}

	if metadata.OnGCE() {
		// GKE publishes the cluster identity as instance attributes.
		if v, err := metadata.InstanceAttributeValueWithContext(ctx, "cluster-name"); err == nil && v != "" {
			tags["cluster_name"] = v
		}
		if v, err := metadata.InstanceAttributeValueWithContext(ctx, "cluster-location"); err == nil && v != "" {
			tags["location"] = v
		}
	}

	if b, err := os.ReadFile(namespaceFile); err == nil {
		if ns := strings.TrimSpace(string(b)); ns != "" {
			tags["namespace_name"] = ns
		}
	}
	// Kubernetes sets the pod name as the hostname.
	if pod := strings.TrimSpace(os.Getenv("HOSTNAME")); pod != "" {
		tags["pod_name"] = pod
	}
	if container := strings.TrimSpace(os.Getenv("CONTAINER_NAME")); container != "" {
		tags["container_name"] = container
	}
	return tags
}
