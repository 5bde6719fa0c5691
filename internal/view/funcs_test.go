package view

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "High Speed Spindle", StripHTML(`<p>High Speed <b>Spindle</b></p>`))
	assert.Equal(t, "", StripHTML(""))
	assert.Equal(t, "plain text", StripHTML("plain text"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "高精度...", Truncate("高精度CNC车床", 3))
	assert.Equal(t, "abcdef", Truncate("abcdef", 0))
}

func TestFeatureImages(t *testing.T) {
	features := "高速主轴" +
		`<p><img src="/images/1.jpg" class="img-fluid"></p>` +
		`<p><img src="/images/2.jpg" class="img-fluid"></p>`

	assert.Equal(t, []string{"/images/1.jpg", "/images/2.jpg"}, FeatureImages(features))
	assert.Nil(t, FeatureImages("no images"))
}

func TestNL2BR(t *testing.T) {
	assert.Equal(t, "a<br>&lt;b&gt;", string(NL2BR("a\n<b>")))
}

func TestRenderer_Load(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		full := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	write("layouts/public.html", `<main>{{template "content" .}}</main>`)
	write("layouts/admin.html", `<admin>{{template "content" .}}</admin>`)
	write("pages/index.html", `{{define "content"}}{{l .Lang .P "name"}}{{end}}`)
	write("admin/products.html", `{{define "content"}}{{truncate "abcdef" 2}}{{end}}`)

	r, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, r.Has("pages/index.html"))
	assert.True(t, r.Has("admin/products.html"))

	var sb strings.Builder
	data := map[string]any{"Lang": "en", "P": map[string]any{"name": "车床", "name_en": "Lathe"}}
	require.NoError(t, r.templates["pages/index.html"].ExecuteTemplate(&sb, layoutName("pages/index.html"), data))
	assert.Equal(t, "<main>Lathe</main>", sb.String())

	sb.Reset()
	require.NoError(t, r.templates["admin/products.html"].ExecuteTemplate(&sb, layoutName("admin/products.html"), nil))
	assert.Equal(t, "<admin>ab...</admin>", sb.String())
}
