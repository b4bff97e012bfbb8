// Package source loads record collections from files: the exported output of
// the platform's REST endpoints (posts, events, ventures, members) saved as
// JSON, NDJSON or YAML.
package source
