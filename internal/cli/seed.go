package cli

import (
	"fmt"
	"os"

	"auditpro/internal/adapter"
	"auditpro/internal/cache"
	"auditpro/internal/database"
	"auditpro/internal/repository"
	"auditpro/internal/seed"
	"auditpro/internal/service"

	"github.com/spf13/cobra"
)

const (
	fileFlagName     = "file"
	profilesFlagName = "profiles"
	seedDoneTemplate = "categories: %d created, %d skipped; profiles: %d created, %d skipped\n"
)

func newSeedCommand(deps Dependencies) *cobra.Command {
	command := &cobra.Command{
		Use:     "seed",
		Short:   "Create the default business categories",
		Long:    "seed creates every category from the seed file that does not exist yet, matching by name. With --profiles it also creates the demo admin, auditor and supplier profiles.",
		Example: "auditctl seed --profiles\nauditctl seed --file ./categories.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString(fileFlagName)
			withProfiles, _ := cmd.Flags().GetBool(profilesFlagName)

			file, err := loadSeedFile(path)
			if err != nil {
				return err
			}

			cfg, log, err := loadConfig(deps)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := database.NewSQLXOracleDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			redisClient, err := cache.NewRedisClient(cfg.Redis)
			if err != nil {
				return err
			}
			defer redisClient.Close()

			categoryRepo := repository.NewCategoryDatabaseAdapter(db)
			categories := service.NewCategoryService(categoryRepo, adapter.NewRedisCacheAdapter(redisClient), cfg.Cache.CategoriesTTL)
			seeder := seed.NewSeeder(categories, categoryRepo, repository.NewProfileDatabaseAdapter(db), log)

			res, err := seeder.Run(cmd.Context(), file, withProfiles)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), seedDoneTemplate, res.CategoriesCreated, res.CategoriesSkipped, res.ProfilesCreated, res.ProfilesSkipped)
			return nil
		},
	}
	command.Flags().String(fileFlagName, "", "Seed file to load instead of the built-in defaults")
	command.Flags().Bool(profilesFlagName, false, "Also create demo profiles")
	return command
}

func loadSeedFile(path string) (*seed.File, error) {
	if path == "" {
		return seed.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return seed.Load(data)
}
