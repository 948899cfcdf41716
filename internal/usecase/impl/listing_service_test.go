package impl

import (
	"context"
	"testing"
	"time"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
	mockRepo "agriconnect/internal/mocks/repository"
	mockSvc "agriconnect/internal/mocks/service"
	"agriconnect/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingMocks struct {
	cropRepo  *mockRepo.MockCropRepository
	userRepo  *mockRepo.MockUserRepository
	qrService *mockSvc.MockQRCodeService
}

func newListingService(t *testing.T) (usecase.ListingUsecase, *listingMocks) {
	t.Helper()

	mocks := &listingMocks{
		cropRepo:  mockRepo.NewMockCropRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		qrService: mockSvc.NewMockQRCodeService(t),
	}
	service := NewListingService(mocks.cropRepo, mocks.userRepo, mocks.qrService, testLogger())

	return service, mocks
}

func testFarmer() *entity.User {
	return &entity.User{
		ID:       "f1",
		Name:     "Ramesh Singh",
		Phone:    "9876543210",
		Location: "Punjab",
		Role:     entity.RoleFarmer,
		Verified: true,
	}
}

func testAgent() *entity.User {
	return &entity.User{
		ID:       "a1",
		Name:     "Sunita Devi",
		Phone:    "9000000002",
		Location: "Punjab",
		Role:     entity.RoleCommunity,
		Verified: true,
	}
}

func TestListingService_AddCrop(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().FindByID(ctx, "f1").Return(testFarmer(), nil)
	mocks.cropRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Crop")).Return(nil)

	crop, err := service.AddCrop(ctx, &usecase.AddCropInput{
		FarmerID: "f1",
		Name:     "Basmati Rice",
		Price:    80,
		Quantity: 50,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, crop.ID)
	assert.Equal(t, "f1", crop.FarmerID)
	assert.Equal(t, "Ramesh Singh", crop.FarmerName)
	assert.Equal(t, "9876543210", crop.FarmerPhone)
	assert.Equal(t, "Punjab", crop.FarmerLocation)
	assert.Equal(t, "kg", crop.Unit)
	assert.Equal(t, "Vegetables", crop.Category)
	assert.False(t, crop.Verified)
	assert.Empty(t, crop.ListedBy)
}

func TestListingService_AddCrop_NonFarmerForbidden(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	vendor := testFarmer()
	vendor.Role = entity.RoleVendor
	mocks.userRepo.EXPECT().FindByID(ctx, "f1").Return(vendor, nil)

	crop, err := service.AddCrop(ctx, &usecase.AddCropInput{
		FarmerID: "f1",
		Name:     "Wheat",
		Price:    50,
		Quantity: 100,
	})
	assert.Nil(t, crop)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestListingService_ProxyListCrop(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().FindByID(ctx, "a1").Return(testAgent(), nil)
	mocks.userRepo.EXPECT().FindByID(ctx, "f1").Return(testFarmer(), nil)
	mocks.cropRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Crop")).Return(nil)

	crop, err := service.ProxyListCrop(ctx, "a1", &usecase.AddCropInput{
		FarmerID: "f1",
		Name:     "Mustard",
		Price:    60,
		Quantity: 40,
		Unit:     "quintal",
		Category: "Oilseeds",
	})
	require.NoError(t, err)

	assert.True(t, crop.Verified)
	assert.Equal(t, "a1", crop.ListedBy)
	assert.Equal(t, "quintal", crop.Unit)
	assert.Equal(t, "Oilseeds", crop.Category)
}

func TestListingService_ProxyListCrop_NonCommunityForbidden(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().FindByID(ctx, "f1").Return(testFarmer(), nil)

	crop, err := service.ProxyListCrop(ctx, "f1", &usecase.AddCropInput{
		FarmerID: "f1",
		Name:     "Wheat",
		Price:    50,
		Quantity: 100,
	})
	assert.Nil(t, crop)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestListingService_BrowseCrops_Filters(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	now := time.Now()
	crops := []*entity.Crop{
		{ID: "c1", Name: "Wheat", FarmerLocation: "Punjab", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "c2", Name: "Winter Wheat", FarmerLocation: "Punjab", CreatedAt: now},
		{ID: "c3", Name: "Rice", FarmerLocation: "Kerala", CreatedAt: now.Add(-time.Hour)},
	}
	mocks.cropRepo.EXPECT().List(ctx).Return(crops, nil)

	found, err := service.BrowseCrops(ctx, &usecase.BrowseCropsFilter{
		Name:     "  wheat ",
		Location: "punjab",
	})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "c2", found[0].ID)
	assert.Equal(t, "c1", found[1].ID)
}

func TestListingService_BrowseCrops_NilFilter(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	mocks.cropRepo.EXPECT().List(ctx).Return([]*entity.Crop{{ID: "c1"}}, nil)

	found, err := service.BrowseCrops(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestListingService_RequestCropVerification(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	crop := &entity.Crop{ID: "c1", Name: "Wheat"}
	mocks.cropRepo.EXPECT().FindByID(ctx, "c1").Return(crop, nil)
	mocks.cropRepo.EXPECT().Update(ctx, mock.MatchedBy(func(updated *entity.Crop) bool {
		return updated.VerificationRequested && !updated.Verified
	})).Return(nil)

	require.NoError(t, service.RequestCropVerification(ctx, "c1"))
}

func TestListingService_RequestCropVerification_AlreadyVerifiedIsNoOp(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	crop := &entity.Crop{ID: "c1", Verified: true}
	mocks.cropRepo.EXPECT().FindByID(ctx, "c1").Return(crop, nil)

	require.NoError(t, service.RequestCropVerification(ctx, "c1"))
}

func TestListingService_VerifyCrop(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	crop := &entity.Crop{ID: "c1", VerificationRequested: true}
	mocks.cropRepo.EXPECT().FindByID(ctx, "c1").Return(crop, nil)
	mocks.cropRepo.EXPECT().Update(ctx, mock.MatchedBy(func(updated *entity.Crop) bool {
		return updated.Verified && !updated.VerificationRequested
	})).Return(nil)

	require.NoError(t, service.VerifyCrop(ctx, "c1"))
}

func TestListingService_VerifyCrop_AlreadyVerifiedIsNoOp(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	crop := &entity.Crop{ID: "c1", Verified: true}
	mocks.cropRepo.EXPECT().FindByID(ctx, "c1").Return(crop, nil)

	require.NoError(t, service.VerifyCrop(ctx, "c1"))
}

func TestListingService_ListingShareQR(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	mocks.cropRepo.EXPECT().FindByID(ctx, "c1").Return(&entity.Crop{ID: "c1"}, nil)
	mocks.qrService.EXPECT().GenerateListingQR("c1").Return([]byte{0x89, 0x50}, nil)

	png, err := service.ListingShareQR(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, png)
}

func TestListingService_ListingShareQR_UnknownCrop(t *testing.T) {
	service, mocks := newListingService(t)
	ctx := context.Background()

	mocks.cropRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrCropNotFound)

	png, err := service.ListingShareQR(ctx, "missing")
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrCropNotFound)
}
