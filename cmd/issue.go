package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"meetgate/internal/app/user"
	"meetgate/internal/configs"
	"meetgate/internal/pkg/logx"
)

var (
	issueName     string
	issueRole     string
	issueRoom     string
	issueEmail    string
	issuePassword string
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Sign a meeting token locally",
	Long: `Signs a meeting token with the configured secret and prints it together with its claims.
With --email and --password the registered user is authenticated and its registered role is used;
otherwise a guest token is issued for --name and --role.`,
	Example: `  meetgate issue --name alice --role teacher --room math101
  meetgate issue --email tutor@example.com --password tutor123 --room math101`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configs.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Keep stdout for the token itself.
		logx.SetOutput(zerolog.ConsoleWriter{Out: os.Stderr}, zerolog.WarnLevel)

		service, issuer, err := newMeeting(cfg, clockwork.NewRealClock())
		if err != nil {
			return err
		}

		var token string
		if issueEmail != "" && issuePassword != "" {
			token, err = service.IssueWithCredentials(issueEmail, issuePassword, issueRoom)
		} else {
			if issueName == "" {
				return errors.New("--name is required unless --email and --password are given")
			}

			role, roleErr := user.ParseRole(issueRole)
			if roleErr != nil {
				return roleErr
			}

			token, err = service.Issue(user.NewGuest(issueName, issueEmail, role, cfg.GuestEmailDomain), issueRoom)
		}
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}

		claims, err := issuer.Verify(token, issueRoom)
		if err != nil {
			return fmt.Errorf("issued token does not verify: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"token":  token,
			"claims": claims,
		})
	},
}

func init() {
	rootCmd.AddCommand(issueCmd)

	issueCmd.Flags().StringVarP(&issueName, "name", "n", "", "Display name of the guest")
	issueCmd.Flags().StringVar(&issueRole, "role", "student", "Guest role (teacher or student)")
	issueCmd.Flags().StringVarP(&issueRoom, "room", "r", "", "Room the token is valid for")
	issueCmd.Flags().StringVar(&issueEmail, "email", "", "Email of a registered user, or the guest email")
	issueCmd.Flags().StringVar(&issuePassword, "password", "", "Password of a registered user")

	_ = issueCmd.MarkFlagRequired("room")
}
