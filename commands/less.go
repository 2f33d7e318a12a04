package commands

import (
	"context"
	"errors"
	"io/fs"
	"syscall"

	"github.com/josephlewis42/debsh/core/logger"
	"github.com/josephlewis42/debsh/core/pager"
	"github.com/josephlewis42/debsh/core/vos"
)

// Less pages each file in turn. Quitting stops the remaining files.
func Less(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "less FILE...",
		Short: "Page through files one screen at a time.",
	}

	return cmd.RunE(virtOS, func() error {
		files := cmd.Flags().Args()
		if len(files) == 0 {
			PrintError(virtOS, "less: missing file operand")
			return nil
		}

		cfg := virtOS.Config().Pager
		rec := logger.FromContext(ctx)

		for _, file := range files {
			data, err := readFile(virtOS, file)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				PrintError(virtOS, "less: cannot open '%s': No such file or directory", file)
				continue
			case errors.Is(err, syscall.EISDIR):
				PrintError(virtOS, "less: '%s': Is a directory", file)
				continue
			case err != nil:
				PrintError(virtOS, "less: %s", formatErr(err))
				continue
			}

			viewer := pager.New(virtOS.Console(), virtOS.Stdout(), pager.Options{
				PageSize:  cfg.PageSize,
				Encodings: cfg.Encodings,
				Marker:    cfg.Marker,
				PollWait:  cfg.PollWait(),
			})

			stats, err := viewer.View(ctx, data)
			rec.PagerSession(file, stats.Encoding, stats.Lines, stats.Displays, stats.Searches, stats.Quit)
			switch {
			case errors.Is(err, pager.ErrUnsupportedEncoding):
				PrintError(virtOS, "less: cannot display '%s': unsupported encoding", file)
				continue
			case err != nil:
				return err
			}

			if stats.Quit {
				return nil
			}
		}

		return nil
	})
}

var _ vos.ProcessFunc = Less

func init() {
	mustAddCmd("less", Less)
}
