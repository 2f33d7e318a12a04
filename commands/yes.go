package commands

import (
	"context"
	"io"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/juju/ratelimit"
)

// Yes repeats a line until interrupted. Output is throttled when
// yes.bytes_per_second is set.
func Yes(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "yes [STRING]...",
		Short: "Repeatedly output a line with all specified STRING(s), or 'y'.",
	}

	return cmd.RunE(virtOS, func() error {
		text := "y"
		if args := cmd.Flags().Args(); len(args) > 0 {
			text = strings.Join(args, " ")
		}
		line := []byte(text + "\n")

		var w io.Writer = virtOS.Stdout()
		if rate := virtOS.Config().Yes.BytesPerSecond; rate > 0 {
			w = ratelimit.Writer(w, ratelimit.NewBucketWithRate(float64(rate), max(rate, int64(len(line)))))
		}

		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := w.Write(line); err != nil {
				return err
			}
		}
	})
}

var _ vos.ProcessFunc = Yes

func init() {
	mustAddCmd("yes", Yes)
}
