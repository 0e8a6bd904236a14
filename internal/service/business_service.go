package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"auditpro/internal/cache"
	"auditpro/internal/domain"
	"auditpro/internal/dto"
	"auditpro/internal/logger"

	"go.uber.org/zap"
)

const (
	businessCacheService = "business"
	defaultPageSize      = 50
)

// BusinessService onboards businesses and exposes them to the right roles.
type BusinessService interface {
	OnboardBusiness(ctx context.Context, actor domain.Actor, req dto.OnboardBusinessRequest) (*dto.BusinessResponse, error)
	GetBusiness(ctx context.Context, actor domain.Actor, id string) (*dto.BusinessResponse, error)
	ListBusinesses(ctx context.Context, actor domain.Actor, query dto.BusinessListQuery) (*dto.BusinessListResponse, error)
	UpdateBusinessStatus(ctx context.Context, actor domain.Actor, id string, status string) (*dto.BusinessResponse, error)
}

type businessServiceImpl struct {
	businessRepo domain.BusinessRepository
	categoryRepo domain.CategoryRepository
	cache        domain.Cache
	cacheTTL     time.Duration
}

func NewBusinessService(businessRepo domain.BusinessRepository, categoryRepo domain.CategoryRepository, c domain.Cache, cacheTTL time.Duration) BusinessService {
	return &businessServiceImpl{
		businessRepo: businessRepo,
		categoryRepo: categoryRepo,
		cache:        c,
		cacheTTL:     cacheTTL,
	}
}

func businessListPrefix() string {
	return cache.GeneratePrefix(businessCacheService, "list")
}

func businessListKey(filter domain.BusinessFilter) string {
	return cache.GenerateCacheKey(businessCacheService, "list", string(filter.Status),
		filter.CategoryID, strings.ToLower(filter.City), strconv.Itoa(filter.Limit), strconv.Itoa(filter.Offset))
}

// invalidateBusinessListings drops every cached listing; a status change can
// move a business in or out of any of them.
func invalidateBusinessListings(ctx context.Context, c domain.Cache) {
	cacheInvalidatePrefix(ctx, c, businessListPrefix())
}

func (s *businessServiceImpl) OnboardBusiness(ctx context.Context, actor domain.Actor, req dto.OnboardBusinessRequest) (*dto.BusinessResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, repoError("failed to load category", err)
	}
	if category == nil {
		return nil, domain.NewNotFoundError("category not found").WithContext("id", req.CategoryID)
	}

	business := domain.NewBusiness(strings.TrimSpace(req.Name), req.CategoryID, actor.UserID)
	business.OwnerName = strings.TrimSpace(req.OwnerName)
	business.Email = strings.TrimSpace(req.Email)
	business.Phone = strings.TrimSpace(req.Phone)
	business.Address = strings.TrimSpace(req.Address)
	business.City = strings.TrimSpace(req.City)
	if req.Latitude != nil && req.Longitude != nil {
		business.Location = &domain.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}
	if err := business.Validate(); err != nil {
		return nil, err
	}

	if err := s.businessRepo.CreateBusiness(ctx, business); err != nil {
		return nil, repoError("failed to create business", err)
	}
	invalidateBusinessListings(ctx, s.cache)

	logger.Get().Info("business onboarded",
		zap.String("business_id", business.ID),
		zap.String("category_id", business.CategoryID),
		zap.String("actor", actor.UserID))

	resp := dto.NewBusinessResponse(business)
	return &resp, nil
}

// GetBusiness returns a business. Consumers only see verified businesses.
func (s *businessServiceImpl) GetBusiness(ctx context.Context, actor domain.Actor, id string) (*dto.BusinessResponse, error) {
	if err := actor.Require(domain.RoleAdmin, domain.RoleAuditor, domain.RoleSupplier, domain.RoleConsumer); err != nil {
		return nil, err
	}

	business, err := s.businessRepo.GetBusinessByID(ctx, id)
	if err != nil {
		return nil, repoError("failed to load business", err)
	}
	if business == nil || (actor.Role == domain.RoleConsumer && business.Status != domain.BusinessVerified) {
		return nil, domain.NewNotFoundError("business not found").WithContext("id", id)
	}

	resp := dto.NewBusinessResponse(business)
	return &resp, nil
}

// ListBusinesses lists businesses for administrators. Consumers get the
// verified businesses only, served from the cache when possible.
func (s *businessServiceImpl) ListBusinesses(ctx context.Context, actor domain.Actor, query dto.BusinessListQuery) (*dto.BusinessListResponse, error) {
	if err := actor.Require(domain.RoleAdmin, domain.RoleConsumer); err != nil {
		return nil, err
	}

	filter := domain.BusinessFilter{
		CategoryID: query.CategoryID,
		City:       strings.TrimSpace(query.City),
		Limit:      query.Limit,
		Offset:     query.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if query.Status != "" {
		status, ok := domain.ParseBusinessStatus(query.Status)
		if !ok {
			return nil, domain.ValidationErrors{domain.NewInvalidFormatError("status", query.Status)}
		}
		filter.Status = status
	}

	useCache := actor.Role == domain.RoleConsumer
	if useCache {
		filter.Status = domain.BusinessVerified
	}

	key := businessListKey(filter)
	if useCache {
		var cached dto.BusinessListResponse
		if cacheGetJSON(ctx, s.cache, key, &cached) {
			return &cached, nil
		}
	}

	businesses, total, err := s.businessRepo.ListBusinesses(ctx, filter)
	if err != nil {
		return nil, repoError("failed to list businesses", err)
	}

	resp := &dto.BusinessListResponse{
		Items:  make([]dto.BusinessResponse, len(businesses)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i, b := range businesses {
		resp.Items[i] = dto.NewBusinessResponse(b)
	}

	if useCache {
		cacheSetJSON(ctx, s.cache, key, resp, s.cacheTTL)
	}
	return resp, nil
}

func (s *businessServiceImpl) UpdateBusinessStatus(ctx context.Context, actor domain.Actor, id string, status string) (*dto.BusinessResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	newStatus, ok := domain.ParseBusinessStatus(status)
	if !ok {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("status", status)}
	}

	business, err := s.businessRepo.GetBusinessByID(ctx, id)
	if err != nil {
		return nil, repoError("failed to load business", err)
	}
	if business == nil {
		return nil, domain.NewNotFoundError("business not found").WithContext("id", id)
	}

	if err := s.businessRepo.UpdateBusinessStatus(ctx, id, newStatus); err != nil {
		return nil, repoError("failed to update business status", err)
	}
	invalidateBusinessListings(ctx, s.cache)

	logger.Get().Info("business status changed",
		zap.String("business_id", id),
		zap.String("from", string(business.Status)),
		zap.String("to", string(newStatus)),
		zap.String("actor", actor.UserID))

	business.Status = newStatus
	business.UpdatedAt = time.Now()
	resp := dto.NewBusinessResponse(business)
	return &resp, nil
}
