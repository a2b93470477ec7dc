package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/fixture"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestLoad_FromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.json"),
		[]byte(`[{"id":2,"name":"Rita"},{"id":1,"name":"Arjun"}]`), 0o600))

	items, err := fixture.Load[record](fixture.New(dir), "people.json")
	require.NoError(t, err)

	assert.Equal(t, []record{{ID: 2, Name: "Rita"}, {ID: 1, Name: "Arjun"}}, items)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.json"),
		[]byte(`[{"id":1,"nmae":"typo"}]`), 0o600))

	_, err := fixture.Load[record](fixture.Dir(dir), "people.json")
	assert.ErrorContains(t, err, "decode people.json")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := fixture.Load[record](fixture.Dir(t.TempDir()), "absent.json")
	assert.ErrorContains(t, err, "read absent.json")
}

func TestEmbedded_HasBothCollections(t *testing.T) {
	src := fixture.Embedded()
	assert.Equal(t, "embedded", src.Origin())

	for _, name := range []string{fixture.ArtistsFile, fixture.SubmissionsFile} {
		_, err := fixture.Load[map[string]any](src, name)
		assert.NoError(t, err, name)
	}
}
