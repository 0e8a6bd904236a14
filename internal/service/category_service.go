package service

import (
	"context"
	"strings"
	"time"

	"auditpro/internal/cache"
	"auditpro/internal/checklist"
	"auditpro/internal/domain"
	"auditpro/internal/dto"
	"auditpro/internal/logger"
	"auditpro/internal/util"

	"go.uber.org/zap"
)

const categoryCacheService = "category"

// CategoryService manages business categories and their checklists.
type CategoryService interface {
	CreateCategory(ctx context.Context, actor domain.Actor, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, actor domain.Actor, id string, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	ParseChecklist(ctx context.Context, actor domain.Actor, text string) (*dto.ParseChecklistResponse, error)
}

type categoryServiceImpl struct {
	repo     domain.CategoryRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewCategoryService creates a category service. cache may be nil.
func NewCategoryService(repo domain.CategoryRepository, c domain.Cache, cacheTTL time.Duration) CategoryService {
	return &categoryServiceImpl{repo: repo, cache: c, cacheTTL: cacheTTL}
}

func categoryListKey() string {
	return cache.GenerateCacheKey(categoryCacheService, "list", "all")
}

func categoryDetailKey(id string) string {
	return cache.GenerateCacheKey(categoryCacheService, "detail", id)
}

// buildChecklist turns submitted checklist text into a validated definition.
// Every parse or schema failure is reported as INVALID_CHECKLIST_FORMAT.
func buildChecklist(text string) (*domain.ChecklistDefinition, error) {
	def, err := checklist.Parse(text)
	if err != nil {
		return nil, domain.NewInvalidChecklistError(err)
	}
	if err := checklist.Validate(def); err != nil {
		return nil, domain.NewInvalidChecklistError(err)
	}
	return def, nil
}

// buildCategory applies req to category, which may be a fresh value.
func buildCategory(category *domain.BusinessCategory, req dto.CreateCategoryRequest) error {
	def, err := buildChecklist(req.ChecklistText)
	if err != nil {
		return err
	}
	payout, err := util.ToMinorUnits(req.PayoutAmount.String())
	if err != nil {
		return domain.NewInvalidPayoutError(req.PayoutAmount.String())
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(def.CategoryName)
	}

	category.Name = name
	category.Description = strings.TrimSpace(req.Description)
	category.PayoutAmount = payout
	category.Checklist = *def
	category.ChecklistText = req.ChecklistText

	if err := category.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, actor domain.Actor, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	category := domain.NewBusinessCategory("", "", 0, domain.ChecklistDefinition{}, "")
	if err := buildCategory(category, req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetCategoryByName(ctx, category.Name)
	if err != nil {
		return nil, repoError("failed to check category name", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("a category with this name already exists").WithContext("name", category.Name)
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, repoError("failed to create category", err)
	}
	cacheInvalidate(ctx, s.cache, categoryListKey())

	logger.Get().Info("category created",
		zap.String("category_id", category.ID),
		zap.String("name", category.Name),
		zap.Int("questions", len(category.Checklist.Questions)),
		zap.String("actor", actor.UserID))

	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, actor domain.Actor, id string, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, repoError("failed to load category", err)
	}
	if category == nil {
		return nil, domain.NewNotFoundError("category not found").WithContext("id", id)
	}

	if err := buildCategory(category, req); err != nil {
		return nil, err
	}

	other, err := s.repo.GetCategoryByName(ctx, category.Name)
	if err != nil {
		return nil, repoError("failed to check category name", err)
	}
	if other != nil && other.ID != category.ID {
		return nil, domain.NewConflictError("a category with this name already exists").WithContext("name", category.Name)
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, repoError("failed to update category", err)
	}
	cacheInvalidate(ctx, s.cache, categoryListKey(), categoryDetailKey(id))

	logger.Get().Info("category updated", zap.String("category_id", id), zap.String("actor", actor.UserID))

	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

func (s *categoryServiceImpl) GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	key := categoryDetailKey(id)
	var cached dto.CategoryResponse
	if cacheGetJSON(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, repoError("failed to load category", err)
	}
	if category == nil {
		return nil, domain.NewNotFoundError("category not found").WithContext("id", id)
	}

	resp := dto.NewCategoryResponse(category)
	cacheSetJSON(ctx, s.cache, key, resp, s.cacheTTL)
	return &resp, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	key := categoryListKey()
	var cached []dto.CategoryResponse
	if cacheGetJSON(ctx, s.cache, key, &cached) {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, repoError("failed to list categories", err)
	}

	resp := make([]dto.CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = dto.NewCategoryResponse(c)
	}
	cacheSetJSON(ctx, s.cache, key, resp, s.cacheTTL)
	return resp, nil
}

// ParseChecklist previews checklist text without persisting anything.
func (s *categoryServiceImpl) ParseChecklist(ctx context.Context, actor domain.Actor, text string) (*dto.ParseChecklistResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	def, err := buildChecklist(text)
	if err != nil {
		return nil, err
	}
	return &dto.ParseChecklistResponse{Checklist: *def, NormalizedText: checklist.Format(def)}, nil
}
