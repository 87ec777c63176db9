package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage members and their dues",
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "List members",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dues, _ := cmd.Flags().GetString("dues")
		return withScope(func(_ *club.Club, sc club.Scope) error {
			members, err := sc.Members().List(club.MemberFilter{DuesStatus: models.DuesStatus(dues)})
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "NUMBER", "NAME", "TYPE", "DUES", "PERIOD", "JOINED")
			for _, m := range members {
				t.row(itoa(m.ID), itoa(m.MemberNumber), m.Name, m.MembershipType, string(m.DuesStatus), m.DuesPeriod, m.JoinDate.String())
			}
			return t.flush()
		})
	},
}

var memberAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := club.MemberInput{Name: args[0]}
		in.MemberNumber, _ = cmd.Flags().GetInt("number")
		in.MembershipType, _ = cmd.Flags().GetString("type")
		in.MembershipTypeID = changedInt(cmd, "type-id")
		in.Contact, _ = cmd.Flags().GetString("contact")
		if paid, _ := cmd.Flags().GetBool("paid"); paid {
			in.DuesStatus = models.DuesPaid
		}
		in.DuesPeriod, _ = cmd.Flags().GetString("period")
		var err error
		if in.JoinDate, err = dateFlag(cmd, "joined"); err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			m, err := sc.Members().Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Member %d added: %s (#%d)\n", m.ID, m.Name, m.MemberNumber)
			return nil
		})
	},
}

var memberDuesCmd = &cobra.Command{
	Use:   "dues ID paid|pending",
	Short: "Set a member's dues status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		status := models.DuesStatus(args[1])
		patch := club.MemberPatch{DuesStatus: &status, DuesPeriod: changedString(cmd, "period")}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			m, err := sc.Members().Update(id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Member %d dues: %s\n", m.ID, m.DuesStatus)
			return nil
		})
	},
}

var memberDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a member without payments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			if err := sc.Members().Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Member %d deleted\n", id)
			return nil
		})
	},
}

var memberPayCmd = &cobra.Command{
	Use:   "pay ID AMOUNT PERIOD",
	Short: "Register a dues payment and book it as revenue",
	Long:  "Register a dues payment and book it as revenue. An AMOUNT of 0 charges the amount of the member's membership type.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		in := club.PaymentInput{MemberID: id, Amount: amount, Period: args[2]}
		in.Notes, _ = cmd.Flags().GetString("notes")
		if in.PaidOn, err = dateFlag(cmd, "paid-on"); err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			p, err := sc.Members().RegisterPayment(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Payment %d registered (finance record %d)\n", p.ID, p.FinanceRecordID)
			return nil
		})
	},
}

var memberPaymentsCmd = &cobra.Command{
	Use:   "payments [ID]",
	Short: "List dues payments, optionally for one member",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		memberID := 0
		if len(args) == 1 {
			id, err := idArg(args, 0)
			if err != nil {
				return err
			}
			memberID = id
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			payments, err := sc.Members().ListPayments(memberID)
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "MEMBER", "AMOUNT", "PERIOD", "PAID ON", "RECORD")
			for _, p := range payments {
				t.row(itoa(p.ID), itoa(p.MemberID), money(p.Amount), p.Period, p.PaidOn.String(), itoa(p.FinanceRecordID))
			}
			return t.flush()
		})
	},
}

var memberUnpayCmd = &cobra.Command{
	Use:   "unpay PAYMENT_ID",
	Short: "Remove a dues payment and its revenue record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			if err := sc.Members().RemovePayment(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Payment %d removed\n", id)
			return nil
		})
	},
}

func init() {
	memberListCmd.Flags().String("dues", "", "Only members with this dues status (paid|pending)")
	memberAddCmd.Flags().Int("number", 0, "Member number (assigned when omitted)")
	memberAddCmd.Flags().String("type", "", "Membership type")
	memberAddCmd.Flags().Int("type-id", 0, "Membership type id (see membership-type list)")
	memberAddCmd.Flags().String("contact", "", "Contact")
	memberAddCmd.Flags().Bool("paid", false, "Dues are paid")
	memberAddCmd.Flags().String("period", "", "Dues period the status refers to")
	memberAddCmd.Flags().String("joined", "", "Join date (YYYY-MM-DD, defaults to today)")
	memberDuesCmd.Flags().String("period", "", "Dues period the status refers to")
	memberPayCmd.Flags().String("paid-on", "", "Payment date (YYYY-MM-DD, defaults to today)")
	memberPayCmd.Flags().String("notes", "", "Notes")

	memberCmd.AddCommand(memberListCmd, memberAddCmd, memberDuesCmd, memberDeleteCmd, memberPayCmd, memberPaymentsCmd, memberUnpayCmd)
	rootCmd.AddCommand(memberCmd)
}
