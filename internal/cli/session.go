package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session management commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionResumeCmd())
	cmd.AddCommand(newSessionMeCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	var name, passcode string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]string{"display_name": name}
			if passcode != "" {
				req["passcode"] = passcode
			}
			var result AuthResult

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&passcode, "passcode", "", "Optional passcode protecting the session")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSessionResumeCmd() *cobra.Command {
	var passcode string

	cmd := &cobra.Command{
		Use:   "resume <session-id>",
		Short: "Resume an existing session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"session_id": args[0]}
			if passcode != "" {
				req["passcode"] = passcode
			}
			var result AuthResult

			if err := client.Post("/api/v1/sessions/resume", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&passcode, "passcode", "", "Session passcode, if one was set")

	return cmd
}

func newSessionMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show current session info",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get("/api/v1/sessions/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
