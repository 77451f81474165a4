package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeAsset(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadMarkup_ExactName(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "huggies-cards.html", "<div>cards</div>")
	writeAsset(t, dir, "huggies-cards-v2.html", "<div>hashed</div>")

	loader := NewLoader(dir, zap.NewNop())
	html, err := loader.LoadMarkup("huggies-cards")
	require.NoError(t, err)
	require.Equal(t, "<div>cards</div>", html)
}

func TestLoadMarkup_FallbackPicksLexicographicallyLast(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "huggies-map-aaa111.html", "<div>old</div>")
	writeAsset(t, dir, "huggies-map-zzz999.html", "<div>new</div>")

	loader := NewLoader(dir, zap.NewNop())
	html, err := loader.LoadMarkup("huggies-map")
	require.NoError(t, err)
	require.Equal(t, "<div>new</div>", html)
}

func TestLoadMarkup_Missing(t *testing.T) {
	loader := NewLoader(t.TempDir(), zap.NewNop())
	_, err := loader.LoadMarkup("huggies-gender")
	require.Error(t, err)
	require.Contains(t, err.Error(), "huggies-gender")
}

func TestLoadMarkup_EmptyName(t *testing.T) {
	loader := NewLoader(t.TempDir(), zap.NewNop())
	_, err := loader.LoadMarkup("")
	require.Error(t, err)
}
