package commands

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crimson-sun/atena/internal/export"
	"github.com/crimson-sun/atena/internal/filter"
)

// ErrNoTarget is returned when export is invoked without a recipient.
var ErrNoTarget = errors.New("no recipient. Use --target, e.g.: --target KDDI")

// NewExportCommand builds the export command: filter records and write the
// webletter document, optionally with its VIPN reconciliation map.
func NewExportCommand(providersFile *string) *cobra.Command {
	var (
		imports  importFlags
		filters  filterFlags
		target   string
		out      string
		withVIPN bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the webletter CSV for a recipient",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if target == "" {
				return ErrNoTarget
			}

			s, err := imports.load()
			if err != nil {
				return err
			}
			c, err := filters.criteria()
			if err != nil {
				return err
			}
			master, err := loadMaster(*providersFile)
			if err != nil {
				return err
			}

			matched := filter.Apply(s.Records(), c)
			if master.Resolve(target) == nil {
				slog.Warn("recipient not in provider master, emitting raw label", "target", target)
			}

			now := time.Now()
			doc := export.Webletter(matched, target, master, now)
			if _, err := export.WriteFile(out, doc); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s: %d件\n", out, len(matched))

			if withVIPN {
				vipnPath := vipnPathFor(out)
				if _, err := export.WriteFile(vipnPath, export.VIPNDocument(matched, now)); err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s: %d件\n", vipnPath, len(matched))
			}
			return nil
		},
	}

	imports.register(cmd)
	filters.register(cmd)
	cmd.Flags().StringVar(&target, "target", "", "recipient provider label")
	cmd.Flags().StringVarP(&out, "out", "o", "webletter_export.csv", "output file path")
	cmd.Flags().BoolVar(&withVIPN, "with-vipn", false, "also write the VIPN reconciliation map")
	return cmd
}

// vipnPathFor derives the reconciliation map path from the webletter path.
func vipnPathFor(out string) string {
	if ext := ".csv"; strings.HasSuffix(out, ext) {
		return strings.TrimSuffix(out, ext) + "_vipn" + ext
	}
	return out + ".vipn.csv"
}
