package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeColumns = `
width: 100
height: 10
root:
  name: row
  style: {flexDirection: row}
  children:
    - {name: a, style: {flexGrow: 1}}
    - {name: b, style: {flexGrow: 1}}
    - {name: c, style: {flexGrow: 1}, exclude: true}
    - {name: d, style: {flexGrow: 1}}
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decode(t *testing.T, out string) jsonOutput {
	t.Helper()
	var got jsonOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

func TestLayout_JSON(t *testing.T) {
	out, err := run(t, "layout", "--format", "json", "--scale", "0", writeScene(t, threeColumns))
	require.NoError(t, err)

	got := decode(t, out)
	assert.Equal(t, 100.0, got.Width)
	assert.Equal(t, 10.0, got.Height)
	require.Len(t, got.Frames, 5)
	assert.Equal(t, "a", got.Frames[1].Name)
	assert.InDelta(t, 100.0/3, got.Frames[1].Width, 1e-3)
	assert.InDelta(t, 200.0/3, got.Frames[4].X, 1e-3)
	assert.True(t, got.Frames[3].Excluded)
}

func TestLayout_SizeOverride(t *testing.T) {
	out, err := run(t, "layout", "-f", "json", "--width", "300", writeScene(t, threeColumns))
	require.NoError(t, err)

	got := decode(t, out)
	assert.Equal(t, 300.0, got.Width)
	assert.Equal(t, 100.0, got.Frames[1].Width)
}

func TestLayout_Table(t *testing.T) {
	out, err := run(t, "layout", writeScene(t, threeColumns))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "100x10")
	assert.Contains(t, lines[1], "VIEW")
	assert.True(t, strings.HasPrefix(lines[2], "row"))
	assert.True(t, strings.HasPrefix(lines[3], "  a"))
	assert.Contains(t, lines[5], "(excluded)")
}

func TestLayout_Errors(t *testing.T) {
	tests := map[string][]string{
		"no args":      {"layout"},
		"missing file": {"layout", filepath.Join(t.TempDir(), "missing.yaml")},
		"bad format":   {"layout", "--format", "xml", writeScene(t, threeColumns)},
		"bad scale":    {"layout", "--scale", "-2", writeScene(t, threeColumns)},
		"bad scene":    {"layout", writeScene(t, "root: {style: {width: wide}}")},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestRender(t *testing.T) {
	path := writeScene(t, `
width: 10
height: 3
root:
  style: {flexDirection: row}
  children:
    - {text: ab, style: {flexGrow: 1}}
    - {text: cd, style: {flexGrow: 1}}
`)

	out, err := run(t, "render", path)
	require.NoError(t, err)

	want := "+---++---+\n" +
		"|ab ||cd |\n" +
		"+---++---+\n"
	assert.Equal(t, want, out)
}

func TestRender_TextOnlyWhenTooSmall(t *testing.T) {
	path := writeScene(t, `
width: 8
height: 1
root:
  style: {flexDirection: row}
  children:
    - {text: hi}
    - {text: there}
`)

	out, err := run(t, "render", path)
	require.NoError(t, err)
	assert.Equal(t, "hithere\n", out)
}

func TestRender_YUp(t *testing.T) {
	path := writeScene(t, `
width: 4
height: 4
yUp: true
root:
  children:
    - {text: "x", style: {height: "1"}}
`)

	out, err := run(t, "render", path)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "x--+", lines[0])
	assert.Equal(t, "|  |", lines[1])
	assert.Equal(t, "+--+", lines[3])
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "flexview.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scale: 0\n"), 0644))

	out, err := run(t, "--config", cfgPath, "layout", "-f", "json", writeScene(t, threeColumns))
	require.NoError(t, err)

	got := decode(t, out)
	assert.InDelta(t, 100.0/3, got.Frames[1].Width, 1e-3)
}

func TestConfigFile_Missing(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "version")
	assert.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("FLEXVIEW_SCALE", "0")

	out, err := run(t, "layout", "-f", "json", writeScene(t, threeColumns))
	require.NoError(t, err)

	got := decode(t, out)
	assert.InDelta(t, 100.0/3, got.Frames[1].Width, 1e-3)
}

func TestDebugLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")

	_, err := run(t, "--debug", logPath, "layout", writeScene(t, threeColumns))
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"configured"`)
	assert.Contains(t, string(data), `"msg":"rebuilt layout children"`)
	assert.Contains(t, string(data), `"msg":"laid out scene"`)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "flexview version "+version+"\n", out)

	out, err = run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "flexview version "+version+"\n", out)
}
