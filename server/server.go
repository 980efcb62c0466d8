// Package server exposes the verifier over HTTP for the review UI: document
// verification, natural-language draft translation, and draft-to-document
// conversion. Responses carry the verifier's exact stdout so the UI shows the
// same report the CLI prints.
package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/qubolab/qverify/logging"
)

// RunOutput is one verifier invocation's captured result.
type RunOutput struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes the verifier on a pair of document files. The interface
// exists so handlers can be tested without a compiled binary.
type Runner interface {
	Verify(ctx context.Context, problemPath, solutionPath string) (RunOutput, error)
}

// ExecRunner runs the verifier binary at Bin as a subprocess.
type ExecRunner struct {
	Bin string
}

// Verify runs the binary and captures both streams. A nonzero exit is a
// normal outcome, not an error; only failing to start the process errors.
func (r ExecRunner) Verify(ctx context.Context, problemPath, solutionPath string) (RunOutput, error) {
	cmd := exec.CommandContext(ctx, r.Bin, "verify", problemPath, solutionPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	out := RunOutput{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return RunOutput{}, err
		}
		out.ExitCode = exitErr.ExitCode()
	}
	out.Stdout = stdout.String()
	out.Stderr = stderr.String()
	return out, nil
}

// Server wires the config, runner and logger into a gin engine.
type Server struct {
	cfg    Config
	runner Runner
	log    *slog.Logger
	engine *gin.Engine
}

// New builds a Server. A nil runner defaults to ExecRunner over
// cfg.VerifyBin; a nil logger defaults to logging.Default.
func New(cfg Config, runner Runner, logger *slog.Logger) *Server {
	if runner == nil {
		runner = ExecRunner{Bin: cfg.VerifyBin}
	}
	if logger == nil {
		logger = logging.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{cfg: cfg, runner: runner, log: logger, engine: engine}

	engine.GET("/healthz", s.handleHealth)
	engine.POST("/verify", s.handleVerify)
	engine.POST("/draft", s.handleDraft)
	engine.POST("/draft/convert", s.handleDraftConvert)
	if cfg.StaticDir != "" {
		engine.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
		engine.Static("/ui", cfg.StaticDir)
	}
	return s
}

// Router returns the underlying gin engine, mainly for httptest.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	s.log.Info("listening", "addr", s.cfg.Addr)
	return s.engine.Run(s.cfg.Addr)
}
