// Package cache stores rendered artifacts so identical canvases are not
// rendered twice.
//
// # Overview
//
// The render pipeline replays a script, serializes the resulting scene and
// hashes it. The hash, combined with the output format and its options, is
// the artifact key: replaying the same script with the same options always
// lands on the same key, while any change to an element or an option lands
// on a new one.
//
// Two backends are provided:
//
//   - [FileCache]: entries as JSON files under a directory (the CLI uses
//     ~/.cache/wireframe)
//   - [NullCache]: never stores anything, used for --no-cache
//
// Keys are built by a [Keyer]. [ScopedKeyer] prefixes every key, which the
// CLI uses to separate artifacts produced by different builds.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Scale     float64 `json:"scale,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Selection bool    `json:"selection,omitempty"`
	Grid      bool    `json:"grid,omitempty"`
	Detailed  bool    `json:"detailed,omitempty"`
	EmbedFont bool    `json:"embed_font,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey identifies one rendered output of a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<sha256>" over the scene hash and options.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
