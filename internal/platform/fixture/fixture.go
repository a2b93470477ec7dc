// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package fixture loads the static seed collections the marketplace runs on.

The JSON files under data/ are embedded into the binary. Setting
FIXTURE_DIR swaps them for files on disk with the same names, which is how
staging environments preview a different catalogue without a rebuild.

Fixtures are read once at startup and never written back.
*/
package fixture

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

const (
	// ArtistsFile holds the artist profiles shown on the listing.
	ArtistsFile = "artists.json"

	// SubmissionsFile holds the applications shown on the dashboard.
	SubmissionsFile = "submissions.json"
)

//go:embed data/*.json
var embedded embed.FS

// Source is a read-only directory of fixture files.
type Source struct {
	fsys   fs.FS
	origin string
}

// Embedded returns the fixtures compiled into the binary.
func Embedded() Source {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic("fixture: embedded data missing: " + err.Error())
	}
	return Source{fsys: sub, origin: "embedded"}
}

// Dir returns fixtures read from a directory on disk.
func Dir(path string) Source {
	return Source{fsys: os.DirFS(path), origin: path}
}

// New picks [Dir] when dir is set and [Embedded] otherwise.
func New(dir string) Source {
	if dir == "" {
		return Embedded()
	}
	return Dir(dir)
}

// Origin describes where the fixtures come from, for startup logs.
func (s Source) Origin() string {
	return s.origin
}

// Load decodes the JSON array stored in name.
//
// Unknown fields are rejected so a typo in a fixture fails loudly at startup
// instead of silently zeroing a field.
func Load[T any](src Source, name string) ([]T, error) {
	raw, err := fs.ReadFile(src.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s from %s: %w", name, src.origin, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	items := []T{}
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("fixture: decode %s from %s: %w", name, src.origin, err)
	}

	return items, nil
}
