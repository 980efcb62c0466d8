// Package bundle archives verification runs for offline reproduction: the
// two input documents plus captured stdout/stderr, the exit code, and version
// metadata, packed into a tar.gz whose name encodes when and why the run was
// kept.
package bundle

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/qubolab/qverify/version"
)

// DefaultDir is where bundles land when the caller does not choose a
// directory.
const DefaultDir = "run_bundles"

// Options describes one run to archive. ProblemPath and SolutionPath are
// copied into the bundle byte for byte, so the archive reproduces the run
// exactly even if the originals change later.
type Options struct {
	ProblemPath  string
	SolutionPath string
	Stdout       string
	Stderr       string
	ExitCode     int
	// Origin labels who triggered the run ("cli", "http", ...).
	Origin string
	// Dir is the bundle output directory; empty selects DefaultDir.
	Dir string
	// UIVersion, when set, is recorded alongside the verifier's own version.
	UIVersion string
	// ValidationWarnings carries draft-pipeline warnings into the metadata.
	ValidationWarnings []string
}

// Create writes the bundle directory and its tar.gz archive, returning the
// archive path. Bundle names are "<utc-timestamp>_<origin>_<exitcode>_<id>"
// with a 6-hex id so concurrent runs in the same second cannot collide.
func Create(opts Options) (string, error) {
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("bundle: create dir: %w", err)
	}

	ts := time.Now().UTC().Format("20060102T150405Z")
	name := fmt.Sprintf("%s_%s_%d_%s", ts, opts.Origin, opts.ExitCode, uuid.NewString()[:6])
	root := filepath.Join(dir, name)
	if err := os.Mkdir(root, 0o755); err != nil {
		return "", fmt.Errorf("bundle: create %s: %w", root, err)
	}

	if err := copyFile(opts.ProblemPath, filepath.Join(root, filepath.Base(opts.ProblemPath))); err != nil {
		return "", err
	}
	if err := copyFile(opts.SolutionPath, filepath.Join(root, filepath.Base(opts.SolutionPath))); err != nil {
		return "", err
	}
	files := map[string]string{
		"stdout.txt":    opts.Stdout,
		"stderr.txt":    opts.Stderr,
		"exit_code.txt": fmt.Sprintf("%d", opts.ExitCode),
	}
	for fname, content := range files {
		if err := os.WriteFile(filepath.Join(root, fname), []byte(content), 0o644); err != nil {
			return "", fmt.Errorf("bundle: write %s: %w", fname, err)
		}
	}

	meta := map[string]any{
		"timestamp": ts,
		"origin":    opts.Origin,
		"problem":   filepath.Base(opts.ProblemPath),
		"solution":  filepath.Base(opts.SolutionPath),
		"exit_code": opts.ExitCode,
	}
	for k, v := range version.Metadata(opts.UIVersion) {
		meta[k] = v
	}
	if len(opts.ValidationWarnings) > 0 {
		meta["validation_warnings"] = opts.ValidationWarnings
	}
	// MarshalIndent sorts map keys, keeping metadata.json diffable.
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("bundle: encode metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, "metadata.json"), metaJSON, 0o644); err != nil {
		return "", fmt.Errorf("bundle: write metadata: %w", err)
	}

	archive := filepath.Join(dir, name+".tar.gz")
	if err := writeArchive(archive, root, name); err != nil {
		return "", err
	}
	return archive, nil
}

// Run executes the verifier binary on the two documents, captures its
// output, and archives the run regardless of outcome. It returns the
// verifier's exit code and the archive path. A failure to start the binary
// at all is an error; a nonzero verifier exit is not.
func Run(ctx context.Context, verifyBin, problemPath, solutionPath, dir, origin string) (int, string, error) {
	cmd := exec.CommandContext(ctx, verifyBin, "verify", problemPath, solutionPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 0, "", fmt.Errorf("bundle: run %s: %w", verifyBin, err)
		}
		exitCode = exitErr.ExitCode()
	}

	archive, err := Create(Options{
		ProblemPath:  problemPath,
		SolutionPath: solutionPath,
		Stdout:       stdout.String(),
		Stderr:       stderr.String(),
		ExitCode:     exitCode,
		Origin:       origin,
		Dir:          dir,
	})
	if err != nil {
		return exitCode, "", err
	}
	return exitCode, archive, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("bundle: read %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("bundle: copy to %s: %w", dst, err)
	}
	return nil
}

// writeArchive packs root into a gzip'd tar at archivePath, with every entry
// prefixed by the bundle name so extraction recreates one directory.
func writeArchive(archivePath, root, name string) error {
	out, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("bundle: create archive: %w", err)
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	defer gz.Close()
	tw := tar.NewWriter(gz)
	defer tw.Close()

	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("bundle: read %s: %w", root, err)
	}
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("bundle: stat %s: %w", path, err)
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return fmt.Errorf("bundle: header for %s: %w", path, err)
		}
		hdr.Name = name + "/" + entry.Name()
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("bundle: write header: %w", err)
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("bundle: open %s: %w", path, err)
		}
		_, err = io.Copy(tw, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("bundle: archive %s: %w", path, err)
		}
	}
	return nil
}
