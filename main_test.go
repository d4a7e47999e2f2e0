package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planmerge/planmerge/internal/config"
	"github.com/planmerge/planmerge/internal/models"
	"github.com/planmerge/planmerge/internal/parser"
)

// chdir changes into dir for the duration of the test; it stands in for
// t.Chdir, which needs a newer Go than this toolchain provides.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestUnionCmd_Run(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "a.json", `{"alpha": 1}`)
	writeFile(t, src, "b.json", `{"beta": 2}`)
	writeFile(t, src, "c.json", `["x", "y"]`)

	out := filepath.Join(t.TempDir(), "merged_output.json")
	cmd := &UnionCmd{Source: src, Output: out}
	require.NoError(t, cmd.Run(config.NewConfig()))

	value, err := parser.ParseFile(out)
	require.NoError(t, err)
	obj, ok := value.(models.JSONObject)
	require.True(t, ok)

	assert.Contains(t, obj, "alpha")
	assert.Contains(t, obj, "beta")
	assert.Equal(t, models.JSONArray{"x", "y"}, obj["merged_list"])
}

func TestUnionCmd_Run_FlagsOverrideConfig(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "a.json", `["solo"]`)

	out := filepath.Join(t.TempDir(), "merged_output.json")
	cfg := config.NewConfig()
	cfg.Union.Source = "/should/not/be/used"
	cfg.Union.ListKey = "from_config"

	cmd := &UnionCmd{Source: src, Output: out, ListKey: "from_flag"}
	require.NoError(t, cmd.Run(cfg))

	value, err := parser.ParseFile(out)
	require.NoError(t, err)
	obj := value.(models.JSONObject)

	assert.Contains(t, obj, "from_flag")
	assert.NotContains(t, obj, "from_config")
}

func TestUnionCmd_Run_MissingSource(t *testing.T) {
	cmd := &UnionCmd{Source: "/non/existent/dir", Output: filepath.Join(t.TempDir(), "out.json")}
	assert.Error(t, cmd.Run(config.NewConfig()))
}

func TestCollectCmd_Run(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "p1.json", `{"plan": "one"}`)
	writeFile(t, src, "p2.json", `{"plan": "two"}`)
	writeFile(t, src, "broken.json", `{oops`)

	out := filepath.Join(t.TempDir(), "merged_plans.json")
	cmd := &CollectCmd{Source: src, Output: out}
	require.NoError(t, cmd.Run(config.NewConfig()))

	value, err := parser.ParseFile(out)
	require.NoError(t, err)
	arr, ok := value.(models.JSONArray)
	require.True(t, ok)
	assert.Len(t, arr, 2)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "flag", firstNonEmpty("flag", "config"))
	assert.Equal(t, "config", firstNonEmpty("", "config"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestLoadConfig_Defaults(t *testing.T) {
	// No --config and no config file anywhere up the tree.
	chdir(t, t.TempDir())

	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Config = ""

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultUnionSource, cfg.Union.Source)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("collect:\n  output: \"all.json\"\n"), 0644))

	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Config = path

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "all.json", cfg.Collect.Output)
}
