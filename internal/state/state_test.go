package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/taboola-extractor/internal/domain"
)

func TestLoadWithoutPath(t *testing.T) {
	st, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", st.StartDate)
}

func TestLoadMissingFileIsEmptyState(t *testing.T) {
	st, err := Load(filepath.Join(t.TempDir(), "inexistente.json"))
	require.NoError(t, err)
	assert.Equal(t, "", st.StartDate)
}

func TestLoadInvalidJSONIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{start_date"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	require.NoError(t, Save(path, &State{StartDate: "2021-03-20"}))

	st, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2021-03-20", st.StartDate)
}
