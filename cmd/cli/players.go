package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Manage the season's players",
}

var playerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List players",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		squad, _ := cmd.Flags().GetString("squad")
		position, _ := cmd.Flags().GetString("position")
		return withScope(func(_ *club.Club, sc club.Scope) error {
			players, err := sc.Players().List(club.PlayerFilter{Squad: models.Squad(squad), Position: position})
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "POSITION", "SQUAD", "SHIRT", "BIRTHDATE")
			for _, p := range players {
				t.row(itoa(p.ID), p.Name, p.Position, string(p.Squad), optInt(p.ShirtNumber), p.Birthdate.String())
			}
			return t.flush()
		})
	},
}

var playerAddCmd = &cobra.Command{
	Use:   "add NAME POSITION",
	Short: "Add a player",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := club.PlayerInput{Name: args[0], Position: args[1], ShirtNumber: changedInt(cmd, "shirt")}
		squad, _ := cmd.Flags().GetString("squad")
		in.Squad = models.Squad(squad)
		in.Contact, _ = cmd.Flags().GetString("contact")
		in.FederationID, _ = cmd.Flags().GetString("federation-id")
		var err error
		if in.Birthdate, err = dateFlag(cmd, "birthdate"); err != nil {
			return err
		}
		if in.MembershipSince, err = dateFlag(cmd, "since"); err != nil {
			return err
		}
		if in.MonthlyFee, err = changedAmount(cmd, "monthly-fee"); err != nil {
			return err
		}
		if in.KitFee, err = changedAmount(cmd, "kit-fee"); err != nil {
			return err
		}
		in.MonthlyFeePaid, _ = cmd.Flags().GetBool("monthly-paid")
		in.KitFeePaid, _ = cmd.Flags().GetBool("kit-paid")
		return withScope(func(_ *club.Club, sc club.Scope) error {
			p, err := sc.Players().Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Player %d added: %s\n", p.ID, p.Name)
			return nil
		})
	},
}

var playerUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Change a player's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		patch := club.PlayerPatch{
			Name:         changedString(cmd, "name"),
			Position:     changedString(cmd, "position"),
			ShirtNumber:  changedInt(cmd, "shirt"),
			Contact:      changedString(cmd, "contact"),
			FederationID: changedString(cmd, "federation-id"),
		}
		patch.ClearShirtNumber, _ = cmd.Flags().GetBool("no-shirt")
		if squad := changedString(cmd, "squad"); squad != nil {
			s := models.Squad(*squad)
			patch.Squad = &s
		}
		if patch.Birthdate, err = changedDate(cmd, "birthdate"); err != nil {
			return err
		}
		if patch.MonthlyFee, err = changedAmount(cmd, "monthly-fee"); err != nil {
			return err
		}
		if patch.KitFee, err = changedAmount(cmd, "kit-fee"); err != nil {
			return err
		}
		patch.MonthlyFeePaid = changedBool(cmd, "monthly-paid")
		patch.KitFeePaid = changedBool(cmd, "kit-paid")
		return withScope(func(_ *club.Club, sc club.Scope) error {
			p, err := sc.Players().Update(id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Player %d updated\n", p.ID)
			return nil
		})
	},
}

var playerDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			if err := sc.Players().Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Player %d deleted\n", id)
			return nil
		})
	},
}

func init() {
	playerListCmd.Flags().String("squad", "", "Only players of this squad (senior|youth)")
	playerListCmd.Flags().String("position", "", "Only players in this position")

	for _, c := range []*cobra.Command{playerAddCmd, playerUpdateCmd} {
		c.Flags().String("squad", "", "Squad (senior|youth)")
		c.Flags().Int("shirt", 0, "Shirt number (1-99)")
		c.Flags().String("birthdate", "", "Birthdate (YYYY-MM-DD)")
		c.Flags().String("contact", "", "Contact")
		c.Flags().String("federation-id", "", "Federation registration id")
		c.Flags().String("monthly-fee", "", "Youth monthly fee")
		c.Flags().Bool("monthly-paid", false, "Youth monthly fee is paid")
		c.Flags().String("kit-fee", "", "Youth training kit fee")
		c.Flags().Bool("kit-paid", false, "Youth training kit fee is paid")
	}
	playerAddCmd.Flags().String("since", "", "Membership since (YYYY-MM-DD)")
	playerUpdateCmd.Flags().String("name", "", "Name")
	playerUpdateCmd.Flags().String("position", "", "Position")
	playerUpdateCmd.Flags().Bool("no-shirt", false, "Remove the shirt number")

	playerCmd.AddCommand(playerListCmd, playerAddCmd, playerUpdateCmd, playerDeleteCmd)
	rootCmd.AddCommand(playerCmd)
}
