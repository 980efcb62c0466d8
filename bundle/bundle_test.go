package bundle_test

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubolab/qverify/bundle"
)

// writeInputs stages a problem/solution pair in a temp dir.
func writeInputs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	problem := filepath.Join(dir, "problem.json")
	solution := filepath.Join(dir, "solution.json")
	require.NoError(t, os.WriteFile(problem, []byte(`{"variables": ["a"]}`), 0o644))
	require.NoError(t, os.WriteFile(solution, []byte(`{"assignment": {"a": 1}}`), 0o644))
	return problem, solution
}

// readArchive extracts entry name -> content from a tar.gz.
func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(gz)

	out := map[string]string{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(tr)
		require.NoError(t, err)
		out[hdr.Name] = string(data)
	}
	return out
}

// TestCreate_ArchiveContents checks the archive holds the copied inputs, the
// captured streams, the exit code and the metadata document.
func TestCreate_ArchiveContents(t *testing.T) {
	problem, solution := writeInputs(t)
	dir := t.TempDir()

	archive, err := bundle.Create(bundle.Options{
		ProblemPath:  problem,
		SolutionPath: solution,
		Stdout:       "report text",
		Stderr:       "",
		ExitCode:     1,
		Origin:       "cli",
		Dir:          dir,
	})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(archive, ".tar.gz"))

	name := strings.TrimSuffix(filepath.Base(archive), ".tar.gz")
	entries := readArchive(t, archive)
	assert.Equal(t, `{"variables": ["a"]}`, entries[name+"/problem.json"])
	assert.Equal(t, `{"assignment": {"a": 1}}`, entries[name+"/solution.json"])
	assert.Equal(t, "report text", entries[name+"/stdout.txt"])
	assert.Equal(t, "", entries[name+"/stderr.txt"])
	assert.Equal(t, "1", entries[name+"/exit_code.txt"])

	var meta map[string]any
	require.NoError(t, json.Unmarshal([]byte(entries[name+"/metadata.json"]), &meta))
	assert.Equal(t, "cli", meta["origin"])
	assert.Equal(t, float64(1), meta["exit_code"])
	assert.Equal(t, "problem.json", meta["problem"])
	assert.NotEmpty(t, meta["cli_version"])
	assert.NotEmpty(t, meta["git_sha"])
	assert.NotContains(t, meta, "ui_version")
}

// TestCreate_NameEncodesRun: bundle names carry timestamp, origin, exit code
// and a collision suffix.
func TestCreate_NameEncodesRun(t *testing.T) {
	problem, solution := writeInputs(t)
	dir := t.TempDir()

	archive, err := bundle.Create(bundle.Options{
		ProblemPath:  problem,
		SolutionPath: solution,
		ExitCode:     2,
		Origin:       "http",
		Dir:          dir,
	})
	require.NoError(t, err)

	name := strings.TrimSuffix(filepath.Base(archive), ".tar.gz")
	assert.Regexp(t, regexp.MustCompile(`^\d{8}T\d{6}Z_http_2_[0-9a-f-]{6}$`), name)
}

// TestCreate_UIVersionAndWarnings land in metadata when provided.
func TestCreate_UIVersionAndWarnings(t *testing.T) {
	problem, solution := writeInputs(t)
	dir := t.TempDir()

	archive, err := bundle.Create(bundle.Options{
		ProblemPath:        problem,
		SolutionPath:       solution,
		Origin:             "ui",
		Dir:                dir,
		UIVersion:          "ui-0.3",
		ValidationWarnings: []string{"assumed_unit_coeff"},
	})
	require.NoError(t, err)

	name := strings.TrimSuffix(filepath.Base(archive), ".tar.gz")
	var meta map[string]any
	require.NoError(t, json.Unmarshal([]byte(readArchive(t, archive)[name+"/metadata.json"]), &meta))
	assert.Equal(t, "ui-0.3", meta["ui_version"])
	assert.Equal(t, []any{"assumed_unit_coeff"}, meta["validation_warnings"])
}

// TestCreate_UniqueNames: two bundles in the same second must not collide.
func TestCreate_UniqueNames(t *testing.T) {
	problem, solution := writeInputs(t)
	dir := t.TempDir()

	opts := bundle.Options{ProblemPath: problem, SolutionPath: solution, Origin: "cli", Dir: dir}
	first, err := bundle.Create(opts)
	require.NoError(t, err)
	second, err := bundle.Create(opts)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

// TestRun_PropagatesVerifierExit checks Run reports the verifier's exit code
// while still archiving the captured streams. The verifier is a stub script
// so the test pins the subprocess contract, not the report itself.
func TestRun_PropagatesVerifierExit(t *testing.T) {
	problem, solution := writeInputs(t)
	dir := t.TempDir()

	stub := filepath.Join(t.TempDir(), "verifier.sh")
	script := "#!/bin/sh\necho \"report text\"\necho \"warning text\" >&2\nexit 1\n"
	require.NoError(t, os.WriteFile(stub, []byte(script), 0o755))

	exitCode, archive, err := bundle.Run(context.Background(), stub, problem, solution, dir, "cli")
	require.NoError(t, err)
	assert.Equal(t, 1, exitCode)

	name := strings.TrimSuffix(filepath.Base(archive), ".tar.gz")
	entries := readArchive(t, archive)
	assert.Equal(t, "report text\n", entries[name+"/stdout.txt"])
	assert.Equal(t, "warning text\n", entries[name+"/stderr.txt"])
	assert.Equal(t, "1", entries[name+"/exit_code.txt"])
}

// TestRun_MissingBinary: a binary that cannot start at all is an error, not
// an exit code.
func TestRun_MissingBinary(t *testing.T) {
	problem, solution := writeInputs(t)
	_, _, err := bundle.Run(context.Background(), filepath.Join(t.TempDir(), "absent"),
		problem, solution, t.TempDir(), "cli")
	require.Error(t, err)
}

// TestCreate_MissingInput surfaces the read failure instead of writing a
// partial bundle archive.
func TestCreate_MissingInput(t *testing.T) {
	_, solution := writeInputs(t)
	_, err := bundle.Create(bundle.Options{
		ProblemPath:  filepath.Join(t.TempDir(), "absent.json"),
		SolutionPath: solution,
		Origin:       "cli",
		Dir:          t.TempDir(),
	})
	require.Error(t, err)
}
