package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qubolab/qverify/bundle"
	"github.com/qubolab/qverify/logging"
	"github.com/qubolab/qverify/parse"
	"github.com/qubolab/qverify/report"
	"github.com/qubolab/qverify/server"
	"github.com/qubolab/qverify/verify"
	"github.com/qubolab/qverify/version"
)

var (
	compareSolvers bool
	maxBruteSize   int
	solverSeed     int64

	bundleDir    string
	bundleBin    string
	bundleOrigin string

	configPath string

	rootCmd = &cobra.Command{
		Use:           "qverify",
		Short:         "Verify binary quadratic optimization solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	verifyCmd = &cobra.Command{
		Use:   "verify <problem.json> <solution.json>",
		Short: "Check a candidate solution and print the verification report",
		Args:  cobra.ExactArgs(2),
		Run:   runVerify,
	}

	bundleCmd = &cobra.Command{
		Use:   "bundle <problem.json> <solution.json>",
		Short: "Run the verifier and archive the run for offline reproduction",
		Args:  cobra.ExactArgs(2),
		RunE:  runBundle,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the verifier over HTTP for the review UI",
		RunE:  runServe,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the verifier version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
)

func init() {
	verifyCmd.Flags().BoolVar(&compareSolvers, "compare-solvers", false,
		"run deterministic internal solvers for comparison")
	verifyCmd.Flags().IntVar(&maxBruteSize, "max-brute-size", 4096,
		"maximum states for brute force (2^n); skips if exceeded")
	verifyCmd.Flags().Int64Var(&solverSeed, "seed", 0,
		"seed for randomized solver components")

	bundleCmd.Flags().StringVar(&bundleDir, "bundle-dir", bundle.DefaultDir,
		"directory for run bundles")
	bundleCmd.Flags().StringVar(&bundleBin, "verify-bin", "",
		"verifier binary to run (defaults to this executable)")
	bundleCmd.Flags().StringVar(&bundleOrigin, "origin", "cli",
		"origin label recorded in the bundle")

	serveCmd.Flags().StringVar(&configPath, "config", "",
		"path to YAML server config")

	rootCmd.AddCommand(verifyCmd, bundleCmd, serveCmd, versionCmd)
}

// runVerify owns the process exit code, so it never returns an error to
// cobra: parse failures exit 2, otherwise the feasibility status decides.
func runVerify(cmd *cobra.Command, args []string) {
	problem, err := parse.LoadProblem(args[0])
	if err != nil {
		exitLoadError(err)
	}
	solution, err := parse.LoadSolution(args[1], problem)
	if err != nil {
		exitLoadError(err)
	}

	result := verify.Run(problem, solution, verify.Options{
		CompareSolvers: compareSolvers,
		MaxBruteStates: maxBruteSize,
		Seed:           solverSeed,
	})
	fmt.Println(report.Render(problem, solution, result, nil))
	os.Exit(verify.ExitCode(result.Feasibility.Status))
}

func exitLoadError(err error) {
	var perr *parse.Error
	if errors.As(err, &perr) {
		fmt.Fprintf(os.Stderr, "Parse error: %s\n", perr)
	} else {
		fmt.Fprintf(os.Stderr, "Unexpected error loading inputs: %s\n", err)
	}
	os.Exit(verify.ExitError)
}

func runBundle(cmd *cobra.Command, args []string) error {
	bin := bundleBin
	if bin == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve verifier binary: %w", err)
		}
		bin = exe
	}

	exitCode, archive, err := bundle.Run(context.Background(), bin, args[0], args[1], bundleDir, bundleOrigin)
	if err != nil {
		return err
	}
	fmt.Printf("Bundle written to %s (exit=%d, version=%s)\n", archive, exitCode, version.String())
	// The process reports the verifier's verdict, not the bundling outcome.
	os.Exit(exitCode)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.DefaultConfig()
	if configPath != "" {
		loaded, err := server.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger := logging.New(logging.Config{Service: "server", JSON: true})
	return server.New(cfg, nil, logger).Run()
}
