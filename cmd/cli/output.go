package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/models"
)

// table prints aligned columns.
type table struct {
	tw *tabwriter.Writer
}

func newTable(out io.Writer, headers ...string) *table {
	t := &table{tw: tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)}
	t.row(headers...)
	return t
}

func (t *table) row(cells ...string) {
	fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

func (t *table) flush() error { return t.tw.Flush() }

func itoa(n int) string { return strconv.Itoa(n) }

func optInt(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func dateFlag(cmd *cobra.Command, name string) (models.Date, error) {
	raw, _ := cmd.Flags().GetString(name)
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}

// changedString returns the flag value when it was set on the command line.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func changedDate(cmd *cobra.Command, name string) (*models.Date, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	d, err := dateFlag(cmd, name)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseAmount reads a money amount. A single decimal comma is accepted as
// written in Portuguese ("1540,50"); anything else must be a plain number.
func parseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") || strings.Count(s, ",") > 1 {
			return 0, fmt.Errorf("invalid amount %q", raw)
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}

// changedAmount parses an amount flag when it was set on the command line.
func changedAmount(cmd *cobra.Command, name string) (*float64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	raw, _ := cmd.Flags().GetString(name)
	amount, err := parseAmount(raw)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return &amount, nil
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// idList parses a comma separated list of ids such as "4,7,9".
func idList(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return []int{}, nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	ids := make([]int, len(parts))
	for i := range parts {
		id, err := idArg(parts, i)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func idArg(args []string, i int) (int, error) {
	id, err := strconv.Atoi(args[i])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[i])
	}
	return id, nil
}
