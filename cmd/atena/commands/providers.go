package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewProvidersCommand builds the providers command: list the recipient
// master in declaration order, which is also the lookup tie-break order.
func NewProvidersCommand(providersFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the provider master",
		RunE: func(cmd *cobra.Command, _ []string) error {
			master, err := loadMaster(*providersFile)
			if err != nil {
				return err
			}

			w := table.NewWriter()
			w.SetStyle(table.StyleLight)
			w.AppendHeader(table.Row{"キー", "正式名称", "郵便番号", "部署"})
			for _, p := range master.All() {
				w.AppendRow(table.Row{p.Key, p.FullName, p.PostalCode, p.Department})
			}
			fmt.Fprintln(cmd.OutOrStdout(), w.Render())
			return nil
		},
	}
}
