package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	errwhile "github.com/xgx-io/xgx-errwhile"
	"github.com/xgx-io/xgx-errwhile/errwhilezap"
	"github.com/xgx-io/xgx-errwhile/internal/config"
	"github.com/xgx-io/xgx-errwhile/internal/manifest"
)

var errManifestsFailed = errors.New("manifest check failed")

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse manifests and report each failure with its context chain",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errwhile.Wrap(err, "loading config")
	}
	if err := cfg.Validate(); err != nil {
		return errwhile.Wrap(err, "validating config")
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return errwhile.Wrap(err, "building logger")
	}
	SetLogger(log)
	defer log.Sync()

	rep := newReporter(cmd.ErrOrStderr(), cfg)
	failed := 0
	for _, path := range args {
		m, err := checkFile(path)
		if err != nil {
			failed++
			rep.failure(err)
			Logger().Error("manifest rejected", zap.String("path", path), errwhilezap.Error(err))
			continue
		}
		Logger().Info("manifest ok",
			zap.String("path", path),
			zap.String("name", m.Name),
			zap.Int("version", m.Version),
		)
	}

	if failed > 0 {
		return errors.WithMessagef(errManifestsFailed, "%d of %d", failed, len(args))
	}
	return nil
}

func checkFile(path string) (*manifest.Manifest, error) {
	return errwhile.WrapInContextOfFunc(
		func() string { return "checking " + path },
		func() (*manifest.Manifest, error) {
			dir, name := filepath.Split(path)
			if dir == "" {
				dir = "."
			}
			return manifest.Load(os.DirFS(dir), name)
		},
	)
}

// reporter prints one failure per manifest.
type reporter struct {
	w       io.Writer
	verbose bool
	label   *color.Color
}

func newReporter(w io.Writer, cfg *config.Config) *reporter {
	label := color.New(color.FgRed, color.Bold)
	if cfg.NoColor {
		label.DisableColor()
	}
	return &reporter{w: w, verbose: cfg.Verbose, label: label}
}

func (r *reporter) failure(err error) {
	r.label.Fprint(r.w, "error:")
	if r.verbose {
		fmt.Fprintf(r.w, " %+v\n", err)
		return
	}
	fmt.Fprintf(r.w, " %v\n", err)
}
