package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"auditpro/internal/domain"
	"auditpro/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestBusinessService_OnboardBusiness(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		businessRepo := new(MockBusinessRepository)
		categoryRepo := new(MockCategoryRepository)
		cache := new(MockCache)
		svc := NewBusinessService(businessRepo, categoryRepo, cache, time.Minute)

		categoryRepo.On("GetCategoryByID", mock.Anything, "cat-1").Return(&domain.BusinessCategory{ID: "cat-1"}, nil)
		businessRepo.On("CreateBusiness", mock.Anything, mock.MatchedBy(func(b *domain.Business) bool {
			return b.Name == "Joe's Diner" && b.Status == domain.BusinessPending &&
				b.Location != nil && b.Location.Latitude == 12.97 && b.CreatedBy == adminActor.UserID
		})).Return(nil)
		cache.On("DeleteByPrefix", mock.Anything, businessListPrefix()).Return(nil)

		resp, err := svc.OnboardBusiness(context.Background(), adminActor, dto.OnboardBusinessRequest{
			Name:       " Joe's Diner ",
			CategoryID: "cat-1",
			City:       "Bengaluru",
			Latitude:   floatPtr(12.97),
			Longitude:  floatPtr(77.59),
		})

		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "Pending", resp.StatusLabel)
		businessRepo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("unknown category", func(t *testing.T) {
		businessRepo := new(MockBusinessRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := NewBusinessService(businessRepo, categoryRepo, nil, time.Minute)
		categoryRepo.On("GetCategoryByID", mock.Anything, "nope").Return(nil, nil)

		_, err := svc.OnboardBusiness(context.Background(), adminActor, dto.OnboardBusinessRequest{Name: "X", CategoryID: "nope"})

		assert.True(t, domain.IsCode(err, domain.CodeNotFound))
		businessRepo.AssertNotCalled(t, "CreateBusiness", mock.Anything, mock.Anything)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		svc := NewBusinessService(new(MockBusinessRepository), categoryRepo, nil, time.Minute)
		categoryRepo.On("GetCategoryByID", mock.Anything, "cat-1").Return(&domain.BusinessCategory{ID: "cat-1"}, nil)

		_, err := svc.OnboardBusiness(context.Background(), adminActor, dto.OnboardBusinessRequest{
			Name: "X", CategoryID: "cat-1", Latitude: floatPtr(91), Longitude: floatPtr(0),
		})

		var verrs domain.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "latitude", verrs[0].Field)
	})

	t.Run("consumer forbidden", func(t *testing.T) {
		svc := NewBusinessService(new(MockBusinessRepository), new(MockCategoryRepository), nil, time.Minute)
		_, err := svc.OnboardBusiness(context.Background(), consumerActor, dto.OnboardBusinessRequest{Name: "X", CategoryID: "c"})
		assert.True(t, domain.IsCode(err, domain.CodeForbidden))
	})
}

func TestBusinessService_GetBusiness_ConsumerSeesVerifiedOnly(t *testing.T) {
	businessRepo := new(MockBusinessRepository)
	svc := NewBusinessService(businessRepo, new(MockCategoryRepository), nil, time.Minute)

	businessRepo.On("GetBusinessByID", mock.Anything, "pending-1").Return(&domain.Business{ID: "pending-1", Status: domain.BusinessPending}, nil)
	businessRepo.On("GetBusinessByID", mock.Anything, "verified-1").Return(&domain.Business{ID: "verified-1", Status: domain.BusinessVerified}, nil)

	_, err := svc.GetBusiness(context.Background(), consumerActor, "pending-1")
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))

	resp, err := svc.GetBusiness(context.Background(), consumerActor, "verified-1")
	require.NoError(t, err)
	assert.Equal(t, "Verified", resp.StatusLabel)

	resp, err = svc.GetBusiness(context.Background(), adminActor, "pending-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestBusinessService_ListBusinesses_ConsumerForcedVerifiedAndCached(t *testing.T) {
	businessRepo := new(MockBusinessRepository)
	cache := new(MockCache)
	svc := NewBusinessService(businessRepo, new(MockCategoryRepository), cache, 2*time.Minute)

	want := domain.BusinessFilter{Status: domain.BusinessVerified, City: "Pune", Limit: defaultPageSize}
	key := businessListKey(want)
	cache.On("Get", mock.Anything, key).Return("", domain.ErrCacheMiss).Once()
	businessRepo.On("ListBusinesses", mock.Anything, want).
		Return([]*domain.Business{{ID: "b1", Name: "Cafe", Status: domain.BusinessVerified}}, 1, nil).Once()
	cache.On("Set", mock.Anything, key, mock.AnythingOfType("string"), 2*time.Minute).Return(nil).Once()

	resp, err := svc.ListBusinesses(context.Background(), consumerActor, dto.BusinessListQuery{Status: "pending", City: " Pune "})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Cafe", resp.Items[0].Name)

	cached, _ := json.Marshal(resp)
	cache.On("Get", mock.Anything, key).Return(string(cached), nil).Once()

	again, err := svc.ListBusinesses(context.Background(), consumerActor, dto.BusinessListQuery{City: "Pune"})
	require.NoError(t, err)
	assert.Equal(t, resp.Items[0].ID, again.Items[0].ID)

	businessRepo.AssertNumberOfCalls(t, "ListBusinesses", 1)
	cache.AssertExpectations(t)
}

func TestBusinessService_ListBusinesses_AdminBypassesCache(t *testing.T) {
	businessRepo := new(MockBusinessRepository)
	cache := new(MockCache)
	svc := NewBusinessService(businessRepo, new(MockCategoryRepository), cache, time.Minute)

	filter := domain.BusinessFilter{Status: domain.BusinessAudited, Limit: 10, Offset: 20}
	businessRepo.On("ListBusinesses", mock.Anything, filter).Return([]*domain.Business{}, 25, nil)

	resp, err := svc.ListBusinesses(context.Background(), adminActor, dto.BusinessListQuery{Status: "audited", Limit: 10, Offset: 20})

	require.NoError(t, err)
	assert.Equal(t, 25, resp.Total)
	assert.Equal(t, 20, resp.Offset)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestBusinessService_ListBusinesses_Validation(t *testing.T) {
	svc := NewBusinessService(new(MockBusinessRepository), new(MockCategoryRepository), nil, time.Minute)

	_, err := svc.ListBusinesses(context.Background(), adminActor, dto.BusinessListQuery{Status: "closed"})
	var verrs domain.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.ListBusinesses(context.Background(), auditorActor, dto.BusinessListQuery{})
	assert.True(t, domain.IsCode(err, domain.CodeForbidden))
}

func TestBusinessService_UpdateBusinessStatus(t *testing.T) {
	businessRepo := new(MockBusinessRepository)
	cache := new(MockCache)
	svc := NewBusinessService(businessRepo, new(MockCategoryRepository), cache, time.Minute)

	businessRepo.On("GetBusinessByID", mock.Anything, "b1").Return(&domain.Business{ID: "b1", Status: domain.BusinessAudited}, nil)
	businessRepo.On("UpdateBusinessStatus", mock.Anything, "b1", domain.BusinessVerified).Return(nil)
	cache.On("DeleteByPrefix", mock.Anything, businessListPrefix()).Return(nil)

	resp, err := svc.UpdateBusinessStatus(context.Background(), adminActor, "b1", "verified")

	require.NoError(t, err)
	assert.Equal(t, "verified", resp.Status)
	businessRepo.AssertExpectations(t)
	cache.AssertExpectations(t)

	_, err = svc.UpdateBusinessStatus(context.Background(), adminActor, "b1", "gone")
	var verrs domain.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
