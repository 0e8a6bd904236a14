// Package cli implements auditctl, the operator command line for AuditPro.
package cli

import (
	"fmt"

	"auditpro/internal/config"
	"auditpro/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	rootUseName          = "auditctl"
	rootShortDescription = "Operate an AuditPro deployment"
	rootLongDescription  = "auditctl runs schema migrations, seeds default categories, previews checklist parsing and issues development tokens. Settings come from config.yaml and AUDITPRO_* environment variables."
)

// Dependencies lets tests replace configuration loading.
type Dependencies struct {
	ConfigProvider func() (*config.Config, error)
}

// NewRootCommand assembles auditctl and its subcommands.
func NewRootCommand(deps Dependencies) *cobra.Command {
	if deps.ConfigProvider == nil {
		deps.ConfigProvider = config.LoadConfig
	}

	root := &cobra.Command{
		Use:           rootUseName,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCommand(deps),
		newSeedCommand(deps),
		newChecklistCommand(),
		newTokenCommand(deps),
	)
	return root
}

// loadConfig reads configuration and initializes the global logger from it.
func loadConfig(deps Dependencies) (*config.Config, *zap.Logger, error) {
	cfg, err := deps.ConfigProvider()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger.Get(), nil
}
