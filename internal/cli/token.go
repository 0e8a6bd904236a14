package cli

import (
	"errors"
	"fmt"

	"auditpro/internal/domain"
	"auditpro/internal/service"

	"github.com/spf13/cobra"
)

const (
	userFlagName = "user"
	roleFlagName = "role"
	ttlFlagName  = "ttl"
)

func newTokenCommand(deps Dependencies) *cobra.Command {
	command := &cobra.Command{
		Use:   "token",
		Short: "Development bearer tokens",
	}

	issue := &cobra.Command{
		Use:     "issue",
		Short:   "Sign a bearer token with the configured secret",
		Long:    "issue signs a token in the identity provider's format so the API can be exercised locally. It does not check that the profile exists.",
		Example: "auditctl token issue --user 01J000000000000000000ADM01 --role admin",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, _ := cmd.Flags().GetString(userFlagName)
			roleName, _ := cmd.Flags().GetString(roleFlagName)
			role, ok := domain.ParseRole(roleName)
			if !ok {
				return errors.New("--role must be one of admin, auditor, supplier, consumer")
			}

			cfg, _, err := loadConfig(deps)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed(ttlFlagName) {
				cfg.Auth.TokenTTL, _ = cmd.Flags().GetDuration(ttlFlagName)
			}

			authService, err := service.NewAuthService(nil, cfg.Auth)
			if err != nil {
				return err
			}
			token, err := authService.IssueToken(userID, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().String(userFlagName, "", "Profile ID placed in the subject claim")
	issue.Flags().String(roleFlagName, "", "Role claim")
	issue.Flags().Duration(ttlFlagName, 0, "Token lifetime (defaults to auth.token_ttl)")
	_ = issue.MarkFlagRequired(userFlagName)
	_ = issue.MarkFlagRequired(roleFlagName)

	command.AddCommand(issue)
	return command
}
