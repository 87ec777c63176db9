package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
)

var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Manage revenues and expenses",
}

var financeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List finance records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var f club.FinanceFilter
		typ, _ := cmd.Flags().GetString("type")
		f.Type = models.RecordType(typ)
		f.Category, _ = cmd.Flags().GetString("category")
		var err error
		if f.From, err = dateFlag(cmd, "from"); err != nil {
			return err
		}
		if f.To, err = dateFlag(cmd, "to"); err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			records, err := sc.Finance().List(f)
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "DATE", "TYPE", "CATEGORY", "AMOUNT", "DESCRIPTION", "COUNTERPARTY")
			for _, r := range records {
				t.row(itoa(r.ID), r.Date.String(), string(r.Type), r.Category, money(r.Amount), r.Description, r.Counterparty)
			}
			return t.flush()
		})
	},
}

// recordAdd builds the revenue and expense commands.
func recordAdd(typ models.RecordType) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(typ) + " DESCRIPTION AMOUNT CATEGORY",
		Short: "Record a " + string(typ),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			in := club.FinanceInput{Type: typ, Description: args[0], Amount: amount, Category: args[2]}
			in.Counterparty, _ = cmd.Flags().GetString("counterparty")
			if in.Date, err = dateFlag(cmd, "date"); err != nil {
				return err
			}
			return withScope(func(c *club.Club, sc club.Scope) error {
				if in.Date.IsZero() {
					in.Date = c.Today()
				}
				r, err := sc.Finance().Add(in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Finance record %d added: %s %s\n", r.ID, r.Type, money(r.Amount))
				return nil
			})
		},
	}
	cmd.Flags().String("date", "", "Record date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().String("counterparty", "", "Source or vendor")
	return cmd
}

var financeDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a finance record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			if err := sc.Finance().Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Finance record %d deleted\n", id)
			return nil
		})
	},
}

func init() {
	financeListCmd.Flags().String("type", "", "Only revenue or expense")
	financeListCmd.Flags().String("category", "", "Only this category")
	financeListCmd.Flags().String("from", "", "First date, inclusive (YYYY-MM-DD)")
	financeListCmd.Flags().String("to", "", "Last date, inclusive (YYYY-MM-DD)")

	financeCmd.AddCommand(financeListCmd, recordAdd(models.Revenue), recordAdd(models.Expense), financeDeleteCmd)
	rootCmd.AddCommand(financeCmd)
}
