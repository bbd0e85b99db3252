package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/periodgate/pkg/gate"
	"github.com/ib-77/periodgate/pkg/period"
	"github.com/ib-77/periodgate/pkg/rop/core"
)

func sortCmd(out *gate.Gate) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sort [periods...]",
		Short: "Sort periods (all seasons or all month ranges) and print them translated",
		RunE: func(c *cobra.Command, args []string) error {
			var issues []issueDTO
			switch {
			case file != "" && len(args) > 0:
				return errors.New("pass periods as arguments or with --file, not both")
			case file != "":
				loaded, err := loadIssues(file)
				if err != nil {
					return err
				}
				issues = loaded
			default:
				issues = issuesFromArgs(args)
			}

			ctx := c.Context()
			log := core.Logger(ctx, nil)

			if err := period.SortBy(issues, func(is issueDTO) string { return is.Period }); err != nil {
				log.Warn("sort.failed", "err", err)
				return err
			}
			log.Debug("sort.done", "count", len(issues))

			w := c.OutOrStdout()
			return gate.Do(ctx, out, func(context.Context) error {
				for _, is := range issues {
					line := period.TranslatePeriod(is.Period)
					if is.Name != "" {
						line = is.Name + "\t" + line
					}
					if _, err := fmt.Fprintln(w, line); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML list of issues with name and period")
	return cmd
}
