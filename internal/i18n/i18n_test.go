package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SupportedLanguages(t *testing.T) {
	for _, lang := range Supported {
		d, err := Load(lang)
		require.NoError(t, err, lang)
		assert.Equal(t, lang, d.Lang())
	}
}

func TestLoad_UnsupportedFallsBackToDefault(t *testing.T) {
	for _, lang := range []string{"", "de", "klingon"} {
		d, err := Load(lang)
		require.NoError(t, err, lang)
		assert.Equal(t, DefaultLang, d.Lang(), lang)
	}
}

func TestLoad_CaseInsensitive(t *testing.T) {
	d, err := Load("EN")
	require.NoError(t, err)
	assert.Equal(t, "en", d.Lang())
}

func TestLookup_DottedPath(t *testing.T) {
	d, err := Load("en")
	require.NoError(t, err)

	v, ok := d.Lookup("dashboard.title")
	require.True(t, ok)
	assert.Equal(t, "Dashboard", v)
}

func TestLookup_FailsClosed(t *testing.T) {
	d, err := Load("en")
	require.NoError(t, err)

	// Missing leaf.
	_, ok := d.Lookup("dashboard.nope")
	assert.False(t, ok)

	// Non-leaf path: "dashboard" resolves to a mapping, not a string.
	_, ok = d.Lookup("dashboard")
	assert.False(t, ok)

	// Path descending through a leaf.
	_, ok = d.Lookup("dashboard.title.deeper")
	assert.False(t, ok)
}

func TestT_ReturnsPathOnMiss(t *testing.T) {
	d, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, "Dashboard", d.T("dashboard.title"))
	assert.Equal(t, "no.such.key", d.T("no.such.key"))
}

func TestTf(t *testing.T) {
	d, err := Load("en")
	require.NoError(t, err)
	assert.Equal(t, "3/14 tasks done", d.Tf("roadmap.progress", 3, 14))
}

func TestDictionariesShareKeySets(t *testing.T) {
	fr, err := Load("fr")
	require.NoError(t, err)
	en, err := Load("en")
	require.NoError(t, err)

	assert.ElementsMatch(t, leafPaths(fr.root, ""), leafPaths(en.root, ""))
}

func leafPaths(node map[string]any, prefix string) []string {
	var out []string
	for k, v := range node {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			out = append(out, leafPaths(child, path)...)
			continue
		}
		out = append(out, path)
	}
	return out
}
