package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inovacc/repovault/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRepos = `[
	{"id": 1, "name": "alpha", "full_name": "user/alpha", "description": "HTTP router",
	 "html_url": "https://github.com/user/alpha", "language": "Go", "stargazers_count": 30,
	 "forks_count": 3, "owner": {"login": "user"}},
	{"id": 2, "name": "beta", "full_name": "user/beta", "description": "Terminal UI",
	 "html_url": "https://github.com/user/beta", "language": "Rust", "stargazers_count": 10,
	 "owner": {"login": "user"}}
]`

// cli runs commands against one on-disk data directory.
type cli struct {
	t       *testing.T
	dataDir string
	config  string
}

func newCLI(t *testing.T) *cli {
	t.Helper()

	dir := t.TempDir()
	config := filepath.Join(dir, "repovault.ini")
	require.NoError(t, os.WriteFile(config, nil, 0600))

	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")

	return &cli{t: t, dataDir: filepath.Join(dir, "data"), config: config}
}

func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()

	root := NewRootCmd()

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", c.config, "--backend", "file", "--data-dir", c.dataDir}, args...))

	err := root.Execute()

	return out.String(), err
}

func (c *cli) mustRun(stdin string, args ...string) string {
	c.t.Helper()

	out, err := c.run(stdin, args...)
	require.NoError(c.t, err, out)

	return out
}

func (c *cli) page(args ...string) model.Page {
	c.t.Helper()

	var page model.Page
	require.NoError(c.t, json.Unmarshal([]byte(c.mustRun("", append(args, "--json")...)), &page))

	return page
}

func TestSaveListSearch(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun(sampleRepos, "save", "--tag", "lib,go", "--notes", "look later")
	assert.Contains(t, out, "Saved: user/alpha")
	assert.Contains(t, out, "Saved: user/beta")

	page := c.page("list", "--sort", "stars", "--order", "asc")
	require.Equal(t, 2, page.Total)
	assert.Equal(t, "beta", page.Items[0].Name)
	assert.Equal(t, "alpha", page.Items[1].Name)
	assert.Equal(t, []string{"lib", "go"}, page.Items[0].Tags)
	assert.Equal(t, "look later", page.Items[0].Notes)

	page = c.page("search", "router")
	require.Len(t, page.Items, 1)
	assert.Equal(t, "alpha", page.Items[0].Name)

	page = c.page("search", "ROUTER", "--tag", "missing")
	assert.Empty(t, page.Items)

	out = c.mustRun("", "list")
	assert.Contains(t, out, "user/alpha")
	assert.Contains(t, out, "Page 1 of 1 (2 repositories)")

	out = c.mustRun("", "tags")
	assert.Equal(t, "go\nlib\n", out)
}

func TestUpdateViewRemove(t *testing.T) {
	c := newCLI(t)
	c.mustRun(sampleRepos, "save")

	page := c.page("list", "--sort", "name", "--order", "asc")
	require.Len(t, page.Items, 2)

	id := page.Items[0].ID

	c.mustRun("", "update", id, "--notes", "edited", "--tag", "a", "--tag", "a", "--tag", "b")

	var rec model.SavedRepository
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("", "show", id, "--json")), &rec))
	assert.Equal(t, "edited", rec.Notes)
	assert.Equal(t, []string{"a", "b"}, rec.Tags)

	c.mustRun("", "update", id, "--clear-tags")
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("", "show", id, "--json")), &rec))
	assert.Empty(t, rec.Tags)

	_, err := c.run("", "update", id)
	require.Error(t, err)

	out := c.mustRun("", "view", id)
	assert.Contains(t, out, "user/alpha")

	out = c.mustRun("n\n", "remove", id)
	assert.Contains(t, out, "Cancelled.")

	out = c.mustRun("", "remove", id, "--yes")
	assert.Contains(t, out, "Removed: user/alpha")

	_, err = c.run("", "show", id)
	require.Error(t, err)

	_, err = c.run("", "remove", id, "--yes")
	require.Error(t, err)

	assert.Equal(t, 1, c.page("list").Total)

	out = c.mustRun("", "show", "USER/beta")
	assert.Contains(t, out, "Terminal UI")

	out = c.mustRun("", "view", "https://github.com/user/beta/")
	assert.Contains(t, out, "user/beta")
}

func TestSettingsCommands(t *testing.T) {
	c := newCLI(t)
	c.mustRun(sampleRepos, "save")

	c.mustRun("", "settings", "set", "--per-page", "1", "--sort", "name", "--order", "desc")

	page := c.page("list")
	assert.Equal(t, 1, page.PerPage)
	assert.Equal(t, 2, page.Pages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "beta", page.Items[0].Name)

	var settings model.Settings
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("", "settings", "show", "--json")), &settings))
	assert.Equal(t, model.SortByName, settings.DefaultSortField)
	assert.True(t, settings.ShowLanguage, "untouched keys keep their value")

	_, err := c.run("", "settings", "set", "--per-page", "0")
	require.Error(t, err)

	_, err = c.run("", "settings", "set")
	require.Error(t, err)

	_, err = c.run("", "settings", "set", "--sort", "popularity")
	require.Error(t, err)

	c.mustRun("", "settings", "reset")
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("", "settings", "show", "--json")), &settings))
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestTokenCommands(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("", "token", "show")
	assert.Contains(t, out, "No token stored.")

	out = c.mustRun("", "token", "status")
	assert.Contains(t, out, "No token available.")

	_, err := c.run("   \n", "token", "set", "--stdin")
	require.Error(t, err)

	c.mustRun("ghp_secret1234\n", "token", "set", "--stdin")

	out = c.mustRun("", "token", "show")
	assert.Contains(t, out, "1234")
	assert.NotContains(t, out, "ghp_secret")

	out = c.mustRun("", "token", "show", "--reveal")
	assert.Equal(t, "ghp_secret1234\n", out)

	out = c.mustRun("", "token", "status")
	assert.Contains(t, out, "store")

	t.Setenv("GITHUB_TOKEN", "ghp_fromenv0000")

	out = c.mustRun("", "token", "status")
	assert.Contains(t, out, "GITHUB_TOKEN")

	c.mustRun("", "token", "clear")

	out = c.mustRun("", "token", "show")
	assert.Contains(t, out, "No token stored.")
}

func TestExportImport(t *testing.T) {
	src := newCLI(t)
	src.mustRun(sampleRepos, "save", "--tag", "x")

	path := filepath.Join(t.TempDir(), "backup.yaml")
	out := src.mustRun("", "export", "--output", path)
	assert.Contains(t, out, "Exported 2 repositories")

	dst := newCLI(t)

	out = dst.mustRun("", "import", path)
	assert.Contains(t, out, "2 added, 0 updated, 0 skipped")

	assert.Equal(t, src.page("list").Items, dst.page("list").Items)

	jsonExport := src.mustRun("", "export", "--format", "json")
	out = dst.mustRun(jsonExport, "import", "-")
	assert.Contains(t, out, "0 added, 2 updated")
}

func TestRootFlags(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "list", "--backend", "etcd")
	require.Error(t, err)

	_, err = c.run("", "list", "--log-format", "xml")
	require.Error(t, err)

	_, err = c.run("", "list", "--order", "sideways")
	require.Error(t, err)

	out := c.mustRun("", "version")
	assert.True(t, strings.HasPrefix(out, "repovault "), out)

	out = c.mustRun("", "config", "show")
	assert.Contains(t, out, "file")
}
