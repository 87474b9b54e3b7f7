// Package commands implements the CLI command handlers for atena.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/atena/internal/model"
	"github.com/crimson-sun/atena/internal/parser"
	"github.com/crimson-sun/atena/internal/providers"
	"github.com/crimson-sun/atena/internal/sjis"
	"github.com/crimson-sun/atena/internal/store"
)

// ErrNoInput is returned when a command that consumes monitoring exports
// is invoked without --input.
var ErrNoInput = errors.New("no input files. Use --input, e.g.: --input batch.csv")

// importFlags carries the per-import metadata and input file list shared
// by every record-consuming command.
type importFlags struct {
	inputs      []string
	category    string
	sourceType  string
	productCode string
}

func (f *importFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.inputs, "input", "i", nil, "monitoring export file (Shift_JIS CSV, repeatable)")
	cmd.Flags().StringVar(&f.category, "category", "", "category tag for imported records")
	cmd.Flags().StringVar(&f.sourceType, "source-type", "isp", "ingestion channel: isp or direct")
	cmd.Flags().StringVar(&f.productCode, "product-code", "", "product code for imported records")
}

// load reads and parses every input file into a fresh store. A decode
// failure on any file aborts the whole load.
func (f *importFlags) load() (*store.Store, error) {
	if len(f.inputs) == 0 {
		return nil, ErrNoInput
	}

	meta := model.ImportMeta{
		Category:    f.category,
		SourceType:  f.sourceType,
		ProductCode: f.productCode,
	}

	s := store.New()
	for _, path := range f.inputs {
		text, err := sjis.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read file: %w", err)
		}
		records := parser.Parse(text, meta)
		s.Append(records)
		slog.Info("imported", "path", path, "records", len(records))
	}
	return s, nil
}

// loadMaster returns the provider master: the YAML file when one is
// configured, the built-in table otherwise.
func loadMaster(path string) (*providers.Master, error) {
	if path == "" {
		return providers.Default(), nil
	}
	return providers.LoadFile(path)
}

// filterFlags carries the optional export criteria.
type filterFlags struct {
	isps     []string
	cats     []string
	from     string
	to       string
	products []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.isps, "isp", nil, "normalized provider name to include (repeatable)")
	cmd.Flags().StringSliceVar(&f.cats, "filter-category", nil, "category tag to include (repeatable)")
	cmd.Flags().StringVar(&f.from, "from", "", "start date, inclusive (YYYY/MM/DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "end date, inclusive (YYYY/MM/DD)")
	cmd.Flags().StringSliceVar(&f.products, "product", nil, "product code to include (repeatable)")
}

// criteria converts the flag values to filter criteria. Date flags must
// parse; unlike record timestamps there is no lenient fallback for
// operator input.
func (f *filterFlags) criteria() (model.Criteria, error) {
	c := model.Criteria{
		ISPs:         f.isps,
		Categories:   f.cats,
		ProductCodes: f.products,
	}
	if f.from != "" {
		t, err := time.ParseInLocation("2006/01/02", f.from, time.Local)
		if err != nil {
			return c, fmt.Errorf("bad --from date %q: %w", f.from, err)
		}
		c.Start = &t
	}
	if f.to != "" {
		t, err := time.ParseInLocation("2006/01/02", f.to, time.Local)
		if err != nil {
			return c, fmt.Errorf("bad --to date %q: %w", f.to, err)
		}
		// Inclusive of the whole end day.
		end := t.Add(24*time.Hour - time.Second)
		c.End = &end
	}
	return c, nil
}
