package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/datacore/crew_stats/internal/config"

	"github.com/spf13/cobra"
)

// Run executes the command line and returns the desired process exit code.
func Run(args []string) int {
	return RunWithOptions(Options{Args: args})
}

type Options struct {
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
	// Dir is where root discovery starts and relative flags are anchored.
	// Empty means the working directory.
	Dir string
}

type flags struct {
	configPath string
	staticDir  string
	crewDir    string
	outputDir  string
	verbose    bool
}

// RunWithOptions executes the command line and returns the desired process exit code.
func RunWithOptions(opts Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(opts.Stderr, err)
			return exitFailure
		}
		opts.Dir = cwd
	}

	cmd := newRootCommand(opts)
	cmd.SetArgs(opts.Args)
	if err := cmd.Execute(); err != nil {
		if ee, ok := asExitError(err); ok {
			if ee.Err != nil && ee.Code != 0 {
				fmt.Fprintln(opts.Stderr, ee.Err)
			}
			return ee.Code
		}
		fmt.Fprintln(opts.Stderr, err)
		return exitFailure
	}
	return 0
}

func newRootCommand(opts Options) *cobra.Command {
	var f flags
	var r runner

	root := &cobra.Command{
		Use:           "crew_stats",
		Short:         "Precalculate crew equipment demand and rankings",
		Long:          "Resolve crew equipment demand, estimate chroniton and craft costs, rank crew by skill, and write the derived JSON and workbook outputs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			prepared, err := prepare(opts, f)
			if err != nil {
				return err
			}
			r = prepared
			return nil
		},
	}
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return ExitWithError(exitUsage, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "run config (default: "+config.FileName+" in the app root)")
	pf.StringVar(&f.staticDir, "static", "", "directory holding crew.json and items.json")
	pf.StringVar(&f.crewDir, "crew-dir", "", "directory holding per-crew markdown files")
	pf.StringVar(&f.outputDir, "out", "", "directory outputs are written to (default: the static directory)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "precalc",
			Short: "Run every calculation and write all outputs",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return r.precalc() },
		},
		&cobra.Command{
			Use:   "botstats",
			Short: "Rebuild botcrew.json from the enriched crew.json",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return r.botstats() },
		},
		&cobra.Command{
			Use:   "sheet",
			Short: "Rebuild the workbook from the enriched crew.json and misc stats",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return r.sheet() },
		},
	)
	return root
}

func prepare(opts Options, f flags) (runner, error) {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{Level: level}))

	appRoot, found := FindRoot(opts.Dir)
	configPath := filepath.Join(appRoot, config.FileName)
	if f.configPath != "" {
		configPath = anchor(opts.Dir, f.configPath)
		appRoot = filepath.Dir(configPath)
		found = true
	}
	if !found {
		logger.Debug("no run config found, using defaults", "dir", opts.Dir)
	}

	cfg, err := config.Load(configPath, config.Flags{
		StaticDir: anchor(opts.Dir, f.staticDir),
		CrewDir:   anchor(opts.Dir, f.crewDir),
		OutputDir: anchor(opts.Dir, f.outputDir),
	})
	if err != nil {
		return runner{}, ExitWithError(exitUsage, err)
	}
	paths := config.Resolve(appRoot, cfg)
	logger.Debug("paths resolved", "root", appRoot, "crew", paths.CrewFile, "items", paths.ItemsFile, "crew_dir", paths.CrewDir)

	return runner{cfg: cfg, paths: paths, log: logger, stdout: opts.Stdout}, nil
}

func anchor(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
