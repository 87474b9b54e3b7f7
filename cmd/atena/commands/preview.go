package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/atena/internal/filter"
	"github.com/crimson-sun/atena/internal/render"
)

// NewPreviewCommand builds the preview command: show the records an export
// with the same criteria would cover.
func NewPreviewCommand(previewLimit *int) *cobra.Command {
	var (
		imports importFlags
		filters filterFlags
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the records matching the given criteria",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := imports.load()
			if err != nil {
				return err
			}
			c, err := filters.criteria()
			if err != nil {
				return err
			}

			if limit == 0 {
				limit = *previewLimit
			}
			matched := filter.Apply(s.Records(), c)
			fmt.Fprintln(cmd.OutOrStdout(), render.Preview(matched, limit))
			return nil
		},
	}

	imports.register(cmd)
	filters.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows to display (0 = configured default)")
	return cmd
}
