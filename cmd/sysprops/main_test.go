package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allauncher/sysprops/errors"
)

func quiet(t *testing.T) {
	t.Setenv("SYSPROPS_LOG_LEVEL", "error")
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-version"}, nil, &out, &out))
	assert.Contains(t, out.String(), "sysprops version")
}

func TestUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-format", "xml"}, nil, &out, &out)
	assert.Error(t, err)
}

func TestScriptFromStdin(t *testing.T) {
	quiet(t)
	script := "instanceName Stdin-Instance\nwindowTitle Stdin Title\nlaunch\n"

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-script", "-"}, strings.NewReader(script), &out, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines, "-Dorg.allauncher.instance.name=Stdin-Instance")
	assert.Contains(t, lines, "-Dmultimc.instance.title=Stdin-Instance")
	assert.Contains(t, lines, "-Dorg.allauncher.window.title=Stdin Title")
}

func TestAbortedScript(t *testing.T) {
	quiet(t)
	var out bytes.Buffer
	err := run(context.Background(), []string{"-script", "-"}, strings.NewReader("abort\n"), &out, &out)
	assert.ErrorIs(t, err, errors.ErrAborted)
}

func TestLaterSourcesWin(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "instance.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("instanceIconKey: from-yaml\nlauncherBrand: Merge-Brand\n"), 0o644))
	scriptPath := filepath.Join(dir, "launch.txt")
	require.NoError(t, os.WriteFile(scriptPath, []byte("instanceIconKey from-script\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(),
		[]string{"-params", yamlPath, "-script", scriptPath, "-format", "properties"}, nil, &out, &out))

	assert.Contains(t, out.String(), "multimc.instance.icon = from-script")
	assert.Contains(t, out.String(), "minecraft.launcher.brand = Merge-Brand")
}

func TestExportEnv(t *testing.T) {
	quiet(t)
	t.Setenv("SYSPROPS_ENV_PREFIX", "SYSPROPS_TEST_")
	t.Setenv("SYSPROPS_TEST_ORG_ALLAUNCHER_WINDOW_DIMENSIONS", "")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-script", "-", "-format", "env"},
		strings.NewReader("windowParams 854x480\n"), &out, &out))

	assert.Equal(t, "SYSPROPS_TEST_ORG_ALLAUNCHER_WINDOW_DIMENSIONS=854x480\n", out.String())
	assert.Equal(t, "854x480", os.Getenv("SYSPROPS_TEST_ORG_ALLAUNCHER_WINDOW_DIMENSIONS"))
}

func TestDDBRequiresTable(t *testing.T) {
	quiet(t)
	t.Setenv("AWS_DDB_TABLE", "")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-ddb"}, nil, &out, &out)
	assert.Error(t, err)
}
