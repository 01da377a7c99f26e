package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseURL   string   `json:"base_url"`
	Selectors []string `json:"selectors"`
	Jobs      int      `json:"jobs"`
}

func TestLocalName(t *testing.T) {
	require.Equal(t, "selectors.local.json5", LocalName("selectors.json5"))
	require.Equal(t, filepath.Join("a", "b.local.json5"), LocalName(filepath.Join("a", "b.json5")))
}

func TestReadOnto(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")

	base := testConfig{BaseURL: "https://www.amazon.com", Jobs: 4}

	_, err := ReadOnto(base, name)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(name, []byte(`{
		// comments are allowed
		selectors: ["div.order"],
	}`), 0666))
	require.NoError(t, os.WriteFile(LocalName(name), []byte(`{ base_url: "https://www.amazon.ca" }`), 0666))

	out, err := ReadOnto(base, name)
	require.NoError(t, err)
	require.Equal(t, testConfig{
		BaseURL:   "https://www.amazon.ca",
		Selectors: []string{"div.order"},
		Jobs:      4,
	}, out)
}

func TestReadOntoInvalid(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")
	require.NoError(t, os.WriteFile(name, []byte(`{ jobs: `), 0666))

	_, err := ReadConfig[testConfig](name)
	require.Error(t, err)
}
