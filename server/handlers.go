package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/qubolab/qverify/bundle"
	"github.com/qubolab/qverify/draft"
	"github.com/qubolab/qverify/version"
)

type verifyRequest struct {
	Problem  string `json:"problem" binding:"required"`
	Solution string `json:"solution" binding:"required"`
}

type verifyResponse struct {
	ExitCode int    `json:"exitCode"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	Bundle   string `json:"bundle,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.String()})
}

// handleVerify writes the posted documents to temp files, runs the verifier,
// and returns its exit code and streams. Failing runs are archived so they
// can be replayed offline.
func (s *Server) handleVerify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both 'problem' and 'solution' must be provided as strings"})
		return
	}

	dir, err := os.MkdirTemp("", "qverify-run-")
	if err != nil {
		s.log.Error("temp dir", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not stage input files"})
		return
	}
	defer os.RemoveAll(dir)

	problemPath := filepath.Join(dir, "problem.json")
	solutionPath := filepath.Join(dir, "solution.json")
	if err := os.WriteFile(problemPath, []byte(req.Problem), 0o600); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not stage input files"})
		return
	}
	if err := os.WriteFile(solutionPath, []byte(req.Solution), 0o600); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not stage input files"})
		return
	}

	out, err := s.runner.Verify(c.Request.Context(), problemPath, solutionPath)
	if err != nil {
		s.log.Error("verifier failed to start", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := verifyResponse{ExitCode: out.ExitCode, Stdout: out.Stdout, Stderr: out.Stderr}
	if out.ExitCode != 0 {
		archive, err := bundle.Create(bundle.Options{
			ProblemPath:  problemPath,
			SolutionPath: solutionPath,
			Stdout:       out.Stdout,
			Stderr:       out.Stderr,
			ExitCode:     out.ExitCode,
			Origin:       "http",
			Dir:          s.cfg.BundleDir,
		})
		if err != nil {
			s.log.Error("bundle", "error", err)
		} else {
			resp.Bundle = archive
		}
	}
	s.log.Info("verify", "exit_code", out.ExitCode)
	c.JSON(http.StatusOK, resp)
}

type draftRequest struct {
	Text string `json:"text" binding:"required"`
}

// handleDraft translates free text into a structured draft plus warnings.
func (s *Server) handleDraft(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'text' must be provided as a string"})
		return
	}
	c.JSON(http.StatusOK, draft.TranslateText(req.Text))
}

type convertRequest struct {
	StructuredDraft draft.Draft `json:"structured_draft" binding:"required"`
}

// handleDraftConvert turns an approved draft into engine documents. Blocking
// warnings abort with 409 so the UI sends the user back to editing.
func (s *Server) handleDraftConvert(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'structured_draft' must be provided"})
		return
	}

	d := req.StructuredDraft
	problemDoc, solutionDoc, warnings := draft.ToDocuments(&d)
	if draft.HasBlocking(warnings) {
		c.JSON(http.StatusConflict, gin.H{"warnings": warnings})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"problem":  string(problemDoc),
		"solution": string(solutionDoc),
		"warnings": warnings,
	})
}
