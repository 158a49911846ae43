/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package header provides the common metadata envelope for serialized
// symceil resources: a resource kind, a schema apiVersion, and free-form
// metadata such as the creation timestamp and tool version. The envelope
// lets consumers of JSON/YAML output identify what they are reading without
// out-of-band knowledge.
package header
