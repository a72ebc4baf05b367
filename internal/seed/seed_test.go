package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagritimaurya743-source/college-society-management/internal/domain"
)

func TestDefault(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	assert.Len(t, ds.Societies, 8)
	assert.Len(t, ds.Events, 7)
	assert.Len(t, ds.Activities, 4)
	assert.Len(t, ds.Stats, 4)
	assert.Len(t, ds.Monthly, 6)

	assert.Equal(t, "Tech Innovators", ds.Societies[0].Name)
	assert.Equal(t, []string{"AI", "Web Dev", "Open Source"}, ds.Societies[0].Tags)
	assert.Equal(t, domain.StatusUpcoming, ds.Events[0].Status)
}

func TestDecode_RejectsUnknownCategory(t *testing.T) {
	raw := []byte(`
societies:
  - id: "1"
    name: Chess Club
    category: Games
`)
	_, err := Decode(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecode_RejectsBadEvents(t *testing.T) {
	cases := map[string]string{
		"status": `
events:
  - {id: "1", title: Gala, status: postponed, capacity: 10}
`,
		"capacity": `
events:
  - {id: "1", title: Gala, status: upcoming, capacity: -1}
`,
		"registered": `
events:
  - {id: "1", title: Gala, status: upcoming, capacity: 10, registered: -3}
`,
		"duplicate": `
events:
  - {id: "1", title: Gala, status: upcoming}
  - {id: "1", title: Ball, status: upcoming}
`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(raw))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := Decode([]byte("societies:\n  - id: \"1\"\n    colour: red\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded data", func(t *testing.T) {
		ds, err := Load("")
		require.NoError(t, err)
		assert.NotEmpty(t, ds.Events)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
societies:
  - {id: a, name: Chess Club, category: Social, memberCount: 12}
`), 0o600))

		ds, err := Load(path)
		require.NoError(t, err)
		require.Len(t, ds.Societies, 1)
		assert.Equal(t, domain.CategorySocial, ds.Societies[0].Category)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
