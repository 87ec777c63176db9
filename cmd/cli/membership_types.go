package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/club"
)

var membershipTypeCmd = &cobra.Command{
	Use:     "membership-type",
	Aliases: []string{"mtype"},
	Short:   "Manage membership types and their dues",
}

var membershipTypeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List membership types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScope(func(_ *club.Club, sc club.Scope) error {
			types, err := sc.MembershipTypes().List()
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "AMOUNT", "FREQUENCY", "DESCRIPTION")
			for _, mt := range types {
				t.row(itoa(mt.ID), mt.Name, money(mt.Amount), mt.Frequency, mt.Description)
			}
			return t.flush()
		})
	},
}

var membershipTypeAddCmd = &cobra.Command{
	Use:   "add NAME AMOUNT",
	Short: "Add a membership type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		in := club.MembershipTypeInput{Name: args[0], Amount: amount}
		in.Frequency, _ = cmd.Flags().GetString("frequency")
		in.Description, _ = cmd.Flags().GetString("description")
		return withScope(func(_ *club.Club, sc club.Scope) error {
			mt, err := sc.MembershipTypes().Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Membership type %d added: %s %s (%s)\n", mt.ID, mt.Name, money(mt.Amount), mt.Frequency)
			return nil
		})
	},
}

var membershipTypeUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Change a membership type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		patch := club.MembershipTypePatch{
			Name:        changedString(cmd, "name"),
			Frequency:   changedString(cmd, "frequency"),
			Description: changedString(cmd, "description"),
		}
		if patch.Amount, err = changedAmount(cmd, "amount"); err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			mt, err := sc.MembershipTypes().Update(id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Membership type %d updated\n", mt.ID)
			return nil
		})
	},
}

var membershipTypeDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a membership type no member belongs to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			if err := sc.MembershipTypes().Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Membership type %d deleted\n", id)
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{membershipTypeAddCmd, membershipTypeUpdateCmd} {
		c.Flags().String("frequency", "", "Billing frequency (defaults to Mensal)")
		c.Flags().String("description", "", "Description")
	}
	membershipTypeUpdateCmd.Flags().String("name", "", "Name")
	membershipTypeUpdateCmd.Flags().String("amount", "", "Amount")

	membershipTypeCmd.AddCommand(membershipTypeListCmd, membershipTypeAddCmd, membershipTypeUpdateCmd, membershipTypeDeleteCmd)
	rootCmd.AddCommand(membershipTypeCmd)
}
