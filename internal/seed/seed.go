// Package seed loads the default business categories and demo profiles.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"auditpro/internal/checklist"
	"auditpro/internal/domain"
	"auditpro/internal/dto"
	"auditpro/internal/service"
	"auditpro/internal/util"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed default_categories.yaml
var defaultSeed []byte

// systemActor performs seed writes that go through role-checked services.
var systemActor = domain.Actor{UserID: "auditctl", Role: domain.RoleAdmin}

type File struct {
	Categories []Category `yaml:"categories"`
	Profiles   []Profile  `yaml:"profiles"`
}

type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Payout      string `yaml:"payout"`
	Checklist   string `yaml:"checklist"`
}

type Profile struct {
	ID        string   `yaml:"id"`
	Email     string   `yaml:"email"`
	FullName  string   `yaml:"full_name"`
	Role      string   `yaml:"role"`
	Phone     string   `yaml:"phone"`
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
}

// Default returns the embedded seed file.
func Default() (*File, error) {
	return Load(defaultSeed)
}

// Load decodes a seed file and checks every entry, so a bad file fails
// before anything is written.
func Load(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	seen := make(map[string]bool, len(f.Categories))
	for i, c := range f.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("categories[%d]: name is required", i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("categories[%d]: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true

		if _, err := util.ToMinorUnits(c.Payout); err != nil {
			return nil, fmt.Errorf("category %q: payout %q: %w", c.Name, c.Payout, err)
		}
		def, err := checklist.Parse(c.Checklist)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", c.Name, err)
		}
		if err := checklist.Validate(def); err != nil {
			return nil, fmt.Errorf("category %q: %w", c.Name, err)
		}
	}

	for i, p := range f.Profiles {
		if _, err := p.toDomain(); err != nil {
			return nil, fmt.Errorf("profiles[%d]: %w", i, err)
		}
	}
	return &f, nil
}

func (p Profile) toDomain() (*domain.Profile, error) {
	if p.ID == "" || p.Email == "" {
		return nil, fmt.Errorf("id and email are required")
	}
	if !util.IsULID(p.ID) {
		return nil, fmt.Errorf("id %q is not a ULID", p.ID)
	}
	role, ok := domain.ParseRole(p.Role)
	if !ok {
		return nil, fmt.Errorf("unknown role %q", p.Role)
	}
	if (p.Latitude == nil) != (p.Longitude == nil) {
		return nil, fmt.Errorf("latitude and longitude must be set together")
	}

	profile := &domain.Profile{
		ID:       p.ID,
		Email:    p.Email,
		FullName: p.FullName,
		Role:     role,
		Phone:    p.Phone,
	}
	if p.Latitude != nil {
		profile.Location = &domain.Coordinates{Latitude: *p.Latitude, Longitude: *p.Longitude}
	}
	return profile, nil
}

// Result counts what a seed run wrote and skipped.
type Result struct {
	CategoriesCreated int
	CategoriesSkipped int
	ProfilesCreated   int
	ProfilesSkipped   int
}

type Seeder struct {
	categories   service.CategoryService
	categoryRepo domain.CategoryRepository
	profileRepo  domain.ProfileRepository
	log          *zap.Logger
}

func NewSeeder(categories service.CategoryService, categoryRepo domain.CategoryRepository, profileRepo domain.ProfileRepository, log *zap.Logger) *Seeder {
	return &Seeder{
		categories:   categories,
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		log:          log,
	}
}

// Run creates missing categories by name and, when withProfiles is set,
// missing profiles by ID. Existing rows are left untouched.
func (s *Seeder) Run(ctx context.Context, f *File, withProfiles bool) (*Result, error) {
	res := &Result{}

	for _, c := range f.Categories {
		existing, err := s.categoryRepo.GetCategoryByName(ctx, c.Name)
		if err != nil {
			return res, fmt.Errorf("error checking category %s: %w", c.Name, err)
		}
		if existing != nil {
			s.log.Info("Category exists.", zap.String("id", existing.ID), zap.String("name", existing.Name))
			res.CategoriesSkipped++
			continue
		}

		created, err := s.categories.CreateCategory(ctx, systemActor, dto.CreateCategoryRequest{
			Name:          c.Name,
			Description:   c.Description,
			PayoutAmount:  json.Number(c.Payout),
			ChecklistText: c.Checklist,
		})
		if err != nil {
			return res, fmt.Errorf("failed to create category %s: %w", c.Name, err)
		}
		s.log.Info("Created category.", zap.String("id", created.ID), zap.String("name", created.Name))
		res.CategoriesCreated++
	}

	if !withProfiles {
		return res, nil
	}

	for _, p := range f.Profiles {
		profile, err := p.toDomain()
		if err != nil {
			return res, err
		}
		existing, err := s.profileRepo.GetProfileByID(ctx, profile.ID)
		if err != nil {
			return res, fmt.Errorf("error checking profile %s: %w", profile.ID, err)
		}
		if existing != nil {
			res.ProfilesSkipped++
			continue
		}
		if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
			return res, fmt.Errorf("failed to create profile %s: %w", profile.Email, err)
		}
		s.log.Info("Created profile.", zap.String("id", profile.ID), zap.String("role", string(profile.Role)))
		res.ProfilesCreated++
	}
	return res, nil
}
