package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
)

var youthCmd = &cobra.Command{
	Use:   "youth",
	Short: "Manage youth squads",
}

var youthListCmd = &cobra.Command{
	Use:   "list",
	Short: "List youth squads",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScope(func(_ *club.Club, sc club.Scope) error {
			squads, err := sc.YouthSquads().List()
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "CATEGORY", "COACH", "PLAYERS")
			for _, y := range squads {
				ids := make([]string, len(y.PlayerIDs))
				for i, id := range y.PlayerIDs {
					ids[i] = itoa(id)
				}
				t.row(itoa(y.ID), y.Name, y.Category, itoa(y.CoachID), strings.Join(ids, ","))
			}
			return t.flush()
		})
	},
}

var youthAddCmd = &cobra.Command{
	Use:   "add NAME COACH_ID",
	Short: "Add a youth squad led by an existing coach",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		coachID, err := idArg(args, 1)
		if err != nil {
			return err
		}
		in := club.YouthSquadInput{Name: args[0], CoachID: coachID}
		in.Category, _ = cmd.Flags().GetString("category")
		in.PlayerIDs, _ = cmd.Flags().GetIntSlice("players")
		return withScope(func(_ *club.Club, sc club.Scope) error {
			y, err := sc.YouthSquads().Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Youth squad %d added: %s\n", y.ID, y.Name)
			return nil
		})
	},
}

// squadChange builds the assign and unassign commands.
func squadChange(use, short, done string, change func(r *club.YouthSquads, squadID, playerID int) (models.YouthSquad, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " SQUAD_ID PLAYER_ID",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			squadID, err := idArg(args, 0)
			if err != nil {
				return err
			}
			playerID, err := idArg(args, 1)
			if err != nil {
				return err
			}
			return withScope(func(_ *club.Club, sc club.Scope) error {
				y, err := change(sc.YouthSquads(), squadID, playerID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Player %d %s %s\n", playerID, done, y.Name)
				return nil
			})
		},
	}
}

var youthDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a youth squad",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			if err := sc.YouthSquads().Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Youth squad %d deleted\n", id)
			return nil
		})
	},
}

func init() {
	youthAddCmd.Flags().String("category", "", "Age category")
	youthAddCmd.Flags().IntSlice("players", nil, "Player ids, comma separated")

	youthCmd.AddCommand(
		youthListCmd,
		youthAddCmd,
		squadChange("assign", "Add a player to a youth squad", "assigned to", (*club.YouthSquads).AssignPlayer),
		squadChange("unassign", "Remove a player from a youth squad", "removed from", (*club.YouthSquads).UnassignPlayer),
		youthDeleteCmd,
	)
	rootCmd.AddCommand(youthCmd)
}
