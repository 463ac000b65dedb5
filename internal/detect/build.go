package detect

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/execx"
)

// Build runs the project's build step so the derived launch command has a
// runnable artifact. Only the pass/fail result matters to callers; output is
// surfaced in the error on failure.
func Build(ctx context.Context, logger *slog.Logger, p *Project) error {
	if !p.NeedsBuild {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("building project", "dir", p.Dir, "type", p.Type)

	res, err := execx.RunIn(ctx, p.Dir, "npm", "run", "build")
	if err != nil {
		return errors.Wrap(err, "running npm build")
	}
	if res.ExitCode != 0 {
		return errors.Newf("npm run build failed (exit %d): %s", res.ExitCode, res.Output)
	}

	return nil
}
