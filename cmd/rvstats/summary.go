package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/rv-stats/internal/export"
	"github.com/example/rv-stats/internal/metrics"
	"github.com/spf13/cobra"
)

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type summaryOptions struct {
	fromYear int
	toYear   int
	topItems int
}

func newSummaryCmd(root *rootOptions) *cobra.Command {
	opts := &summaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary <log.html>",
		Short: "Print spending statistics for a log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, res, err := load(cmd, root, args[0])
			if err != nil {
				return err
			}

			tables := res.Tables
			if cmd.Flags().Changed("from-year") || cmd.Flags().Changed("to-year") {
				first, last, _ := tables.YearRange()
				if !cmd.Flags().Changed("from-year") {
					opts.fromYear = first
				}
				if !cmd.Flags().Changed("to-year") {
					opts.toYear = last
				}
				tables = tables.FilterYears(opts.fromYear, opts.toYear)
			}

			top := cfg.Report.TopItems
			if cmd.Flags().Changed("top") {
				top = opts.topItems
			}
			return writeSummary(cmd.OutOrStdout(), res.Title, tables, top)
		},
	}

	cmd.Flags().IntVar(&opts.fromYear, "from-year", 0, "first year to include")
	cmd.Flags().IntVar(&opts.toYear, "to-year", 0, "last year to include")
	cmd.Flags().IntVar(&opts.topItems, "top", 0, "number of most bought items to list (overrides config)")
	return cmd
}

func writeSummary(out io.Writer, title string, tables metrics.Tables, top int) error {
	s := tables.Summary()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	if title != "" {
		fmt.Fprintf(out, "%s\n\n", title)
	}

	fmt.Fprintf(w, "Purchases\t%d\t%s\t\n", s.Purchases.Count, export.Money(s.Purchases.Sum))
	fmt.Fprintf(w, "Deposits\t%d\t%s\t\n", s.Deposits.Count, export.Money(s.Deposits.Sum))
	fmt.Fprintf(w, "Unique items\t%d\t\t\n", s.UniqueItems)
	if s.Purchases.Count > 0 {
		fmt.Fprintf(w, "Price min/mean/max\t%s\t%.2f\t%s\t\n",
			export.Money(s.Purchases.Min), s.Purchases.Mean/100, export.Money(s.Purchases.Max))
	}
	fmt.Fprintf(w, "Final balance\t%s\t\t\n", export.Money(s.FinalBalance))
	fmt.Fprintf(w, "Lowest balance\t%s\t\t\n", export.Money(s.LowestBalance))
	fmt.Fprintf(w, "Overdrawn events\t%d\t\t\n", s.NegativeEvents)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nHourly spend")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "hour\tcount\tspent\t")
	for _, b := range metrics.HourlySpend(tables.Purchases) {
		if b.Count == 0 {
			continue
		}
		fmt.Fprintf(w, "%02d\t%d\t%s\t\n", b.Hour, b.Count, export.Money(b.Sum))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nPurchases by hour and weekday")
	w = tabwriter.NewWriter(out, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "hour\t")
	for _, d := range weekdayNames {
		fmt.Fprintf(w, "%s\t", d)
	}
	fmt.Fprintln(w)
	for h, row := range metrics.WeekdayHourCounts(tables.Purchases) {
		fmt.Fprintf(w, "%02d\t", h)
		for _, c := range row {
			fmt.Fprintf(w, "%d\t", c)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	items := metrics.TopItems(tables.Purchases, top)
	if len(items) == 0 {
		return nil
	}
	fmt.Fprintln(out, "\nMost bought items")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, it := range items {
		fmt.Fprintf(w, "%d.\t%s\t%d\t%s\n", i+1, it.Item, it.Count, export.Money(it.Spent))
	}
	return w.Flush()
}
