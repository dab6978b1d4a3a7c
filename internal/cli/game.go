package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands (coordinates are 1-based)",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameMoveCmd())
	cmd.AddCommand(newGameComputerCmd())
	cmd.AddCommand(newGameAutoCmd())
	cmd.AddCommand(newGameSuggestCmd())
	cmd.AddCommand(newGameSimulateCmd())
	cmd.AddCommand(newGameResetCmd())
	cmd.AddCommand(newGameSummariesCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Post("/api/v1/game/start", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current game state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Get("/api/v1/game", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <row> <col>",
		Short: "Place your mark (1-based coordinates)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parseCoords(args[0], args[1])
			if err != nil {
				return err
			}

			req := map[string]int{"row": row, "col": col}
			var result MoveResult

			if err := client.Post("/api/v1/game/player-move", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameComputerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "computer <row> <col>",
		Short: "Record the computer's mark (1-based coordinates)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parseCoords(args[0], args[1])
			if err != nil {
				return err
			}

			req := map[string]int{"row": row, "col": col}
			var result MoveResult

			if err := client.Post("/api/v1/game/computer-move", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameAutoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Let the server pick a random computer move",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MoveResult

			if err := client.Post("/api/v1/game/computer-move/random", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Show the suggested move for the current turn",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SuggestionResult

			if err := client.Get("/api/v1/game/suggestion", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSimulateCmd() *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "simulate <row> <col>",
		Short: "Preview a move without playing it (1-based coordinates)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parseCoords(args[0], args[1])
			if err != nil {
				return err
			}

			if side != "" && side != "player" && side != "computer" {
				return fmt.Errorf("side must be \"player\" or \"computer\"")
			}

			req := map[string]any{"row": row, "col": col}
			if side != "" {
				req["side"] = side
			}
			var result Simulation

			if err := client.Post("/api/v1/game/simulate", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&side, "side", "", "Whose mark to simulate: player (default) or computer")

	return cmd
}

func newGameResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the game to its pre-start state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/game/reset", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game reset")
			return nil
		},
	}
}

func newGameSummariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summaries",
		Short: "List completed games for this session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []GameSummary

			if err := client.Get("/api/v1/game/summaries", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// parseCoords converts 1-based command arguments to the API's 0-based
// coordinates.
func parseCoords(rowArg, colArg string) (int, int, error) {
	row, err := strconv.Atoi(rowArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row: %w", err)
	}

	col, err := strconv.Atoi(colArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid col: %w", err)
	}

	return row - 1, col - 1, nil
}
