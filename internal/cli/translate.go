package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/periodgate/pkg/gate"
	"github.com/ib-77/periodgate/pkg/period"
	"github.com/ib-77/periodgate/pkg/rop/solo"
)

func translateCmd(out *gate.Gate) *cobra.Command {
	var (
		jobs   int
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "translate [periods...]",
		Short: "Print the display form of each period",
		Long: "Translates every argument concurrently. Lines are written one at a time\n" +
			"but in completion order, which may differ from argument order.",
		RunE: func(c *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
			}
			w := c.OutOrStdout()
			g, ctx := errgroup.WithContext(c.Context())
			g.SetLimit(jobs)

			for _, arg := range args {
				g.Go(func() error {
					res := period.TranslateResult(ctx, period.Check(ctx, arg))
					line := solo.Finally(ctx, res,
						func(_ context.Context, s string) string { return s },
						func(_ context.Context, _ error) string { return arg },
						func(_ context.Context, _ error) string { return arg },
					)
					if strict && res.IsFailure() {
						return res.Err()
					}
					return gate.Do(ctx, out, func(context.Context) error {
						_, err := fmt.Fprintf(w, "%s\t%s\n", arg, line)
						return err
					})
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "number of concurrent translations")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on strings that are not a season or a month range")
	return cmd
}
