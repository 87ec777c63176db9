package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/club"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show finance totals, dues status and player availability",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScope(func(_ *club.Club, sc club.Scope) error {
			s, err := sc.Summary()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Season %s\n\n", s.Season)
			fmt.Fprintf(out, "Revenue  %s\nExpense  %s\nBalance  %s\n\n", money(s.Finance.Revenue), money(s.Finance.Expense), money(s.Finance.Balance))

			t := newTable(out, "TYPE", "CATEGORY", "TOTAL")
			for _, c := range s.Finance.Categories {
				t.row(string(c.Type), c.Category, money(c.Total))
			}
			if err := t.flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nMembers  %d (paid %d, pending %d)\n\n", s.Dues.Total, s.Dues.Paid, s.Dues.Pending)

			t = newTable(out, "PLAYER", "NAME", "AVAILABLE", "RETURN")
			for _, p := range s.Availability {
				t.row(itoa(p.PlayerID), p.Name, fmt.Sprint(p.Available), p.ReturnDate.String())
			}
			return t.flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
