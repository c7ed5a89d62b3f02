package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/rv-stats/internal/export"
	"github.com/example/rv-stats/internal/metrics"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	format string
	out    string
}

func newExportCmd(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <log.html>",
		Short: "Write the purchase, deposit and balance tables to files",
		Long: `Export writes the derived tables. csv writes one file per table into
the --out directory, json writes a single document and xlsx writes a
workbook with one sheet per table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, res, err := load(cmd, root, args[0])
			if err != nil {
				return err
			}

			format := cfg.Export.Format
			if cmd.Flags().Changed("format") {
				format = opts.format
			}

			switch format {
			case "csv":
				return exportCSV(opts.out, res.Tables)
			case "json":
				return exportJSON(opts.out, res.Tables)
			case "xlsx":
				return export.WriteXLSX(opts.out, res.Title, res.Tables)
			}
			return fmt.Errorf("unsupported format %q", format)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "csv", "output format: csv, json or xlsx")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (json, xlsx) or directory (csv)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func exportCSV(dir string, tables metrics.Tables) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	for _, t := range export.Tables {
		if err := writeFile(filepath.Join(dir, string(t)+".csv"), func(f *os.File) error {
			return export.WriteCSV(f, tables, t)
		}); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(path string, tables metrics.Tables) error {
	return writeFile(path, func(f *os.File) error {
		return export.WriteJSON(f, tables)
	})
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
