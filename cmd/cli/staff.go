package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/club"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Manage the coaching staff",
}

var coachListCmd = &cobra.Command{
	Use:   "list",
	Short: "List coaches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScope(func(_ *club.Club, sc club.Scope) error {
			coaches, err := sc.Coaches().List()
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "ROLE", "LICENSE", "CONTACT")
			for _, c := range coaches {
				t.row(itoa(c.ID), c.Name, c.Role, c.LicenseLevel, c.Contact)
			}
			return t.flush()
		})
	},
}

var coachAddCmd = &cobra.Command{
	Use:   "add NAME ROLE",
	Short: "Add a coach",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := club.CoachInput{Name: args[0], Role: args[1]}
		in.LicenseLevel, _ = cmd.Flags().GetString("license")
		in.Contact, _ = cmd.Flags().GetString("contact")
		var err error
		if in.Birthdate, err = dateFlag(cmd, "birthdate"); err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			c, err := sc.Coaches().Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Coach %d added: %s\n", c.ID, c.Name)
			return nil
		})
	},
}

var coachUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Change a coach's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		patch := club.CoachPatch{
			Name:         changedString(cmd, "name"),
			Role:         changedString(cmd, "role"),
			LicenseLevel: changedString(cmd, "license"),
			Contact:      changedString(cmd, "contact"),
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			c, err := sc.Coaches().Update(id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Coach %d updated\n", c.ID)
			return nil
		})
	},
}

var coachDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a coach",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			if err := sc.Coaches().Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Coach %d deleted\n", id)
			return nil
		})
	},
}

var physioCmd = &cobra.Command{
	Use:   "physio",
	Short: "Manage the medical staff",
}

var physioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List physiotherapists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScope(func(_ *club.Club, sc club.Scope) error {
			physios, err := sc.Physiotherapists().List()
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "ROLE", "CONTACT")
			for _, p := range physios {
				t.row(itoa(p.ID), p.Name, p.Role, p.Contact)
			}
			return t.flush()
		})
	},
}

var physioAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a physiotherapist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := club.PhysioInput{Name: args[0]}
		in.Role, _ = cmd.Flags().GetString("role")
		in.Contact, _ = cmd.Flags().GetString("contact")
		var err error
		if in.Birthdate, err = dateFlag(cmd, "birthdate"); err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			p, err := sc.Physiotherapists().Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Physiotherapist %d added: %s\n", p.ID, p.Name)
			return nil
		})
	},
}

var physioDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a physiotherapist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			if err := sc.Physiotherapists().Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Physiotherapist %d deleted\n", id)
			return nil
		})
	},
}

func init() {
	coachAddCmd.Flags().String("license", "", "Coaching licence level")
	coachAddCmd.Flags().String("contact", "", "Contact")
	coachAddCmd.Flags().String("birthdate", "", "Birthdate (YYYY-MM-DD)")
	coachUpdateCmd.Flags().String("name", "", "Name")
	coachUpdateCmd.Flags().String("role", "", "Role")
	coachUpdateCmd.Flags().String("license", "", "Coaching licence level")
	coachUpdateCmd.Flags().String("contact", "", "Contact")

	physioAddCmd.Flags().String("role", "", "Specialisation")
	physioAddCmd.Flags().String("contact", "", "Contact")
	physioAddCmd.Flags().String("birthdate", "", "Birthdate (YYYY-MM-DD)")

	coachCmd.AddCommand(coachListCmd, coachAddCmd, coachUpdateCmd, coachDeleteCmd)
	physioCmd.AddCommand(physioListCmd, physioAddCmd, physioDeleteCmd)
	rootCmd.AddCommand(coachCmd, physioCmd)
}
