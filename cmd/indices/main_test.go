package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("INDICES_TEST_VALUE", "from-env")

	assert.Equal(t, "from-env", getEnv("INDICES_TEST_VALUE", "default"))
	assert.Equal(t, "default", getEnv("INDICES_TEST_MISSING", "default"))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("INDICES_URL", "https://example.com/indices/")
	t.Setenv("INDICES_REPORT", "report.xlsx")

	env := loadEnv()
	assert.Equal(t, "https://example.com/indices/", env.URL)
	assert.Equal(t, "report.xlsx", env.Report)
	assert.Equal(t, ".", env.OutputDir)
}

func TestCommand_Input(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "indices.html")
	page := `<html><body><div class="panel-body">
		<h4 class="media-heading">Índice A</h4>
		<p class="abstract ng-binding">Texto</p>
	</div></body></html>`
	require.NoError(t, os.WriteFile(input, []byte(page), 0644))

	outputDir := filepath.Join(dir, "out")
	cmd := newCommand(envDefaults{
		URL:       "https://imco.org.mx/indices/",
		OutputDir: ".",
		Report:    "indices_data.xlsx",
	})
	cmd.SetArgs([]string{"--input", input, "--output-dir", outputDir, "--quiet"})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(outputDir, "Índice_A"))
	assert.FileExists(t, filepath.Join(outputDir, "indices_data.xlsx"))
}

func TestCommand_NoPanels(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.html")
	require.NoError(t, os.WriteFile(input, []byte(`<html><body></body></html>`), 0644))

	cmd := newCommand(envDefaults{OutputDir: dir, Report: "indices_data.xlsx"})
	cmd.SetArgs([]string{"--input", input, "--quiet"})

	err := cmd.Execute()
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "indices_data.xlsx"))
}

func TestCommand_LogsToStdout(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "indices.html")
	page := `<html><body><div class="panel-body">
		<h4 class="media-heading">Índice A</h4>
	</div></body></html>`
	require.NoError(t, os.WriteFile(input, []byte(page), 0644))

	// Capture stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w
	defer func() {
		os.Stdout = stdout
		logrus.SetOutput(os.Stderr)
	}()

	captured := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		captured <- buf.String()
	}()

	setupLogging()
	cmd := newCommand(envDefaults{OutputDir: dir, Report: "indices_data.xlsx"})
	cmd.SetArgs([]string{"--input", input})
	err = cmd.Execute()

	w.Close()
	output := <-captured

	require.NoError(t, err)
	assert.Contains(t, output, "title found: Índice A")
	assert.Contains(t, output, "summary not found")
}
