package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"agriconnect/config"
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

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testConfig() *config.Config {
	return &config.Config{
		Escrow: &config.EscrowConfig{
			DisburseDelay: 3 * time.Second,
		},
		Marketplace: &config.MarketplaceConfig{
			QuantityMultiplier:  10,
			PlatformDeliveryFee: 150,
			PlatformTransitDays: 3,
			SelfTransitDays:     1,
		},
	}
}

type lifecycleMocks struct {
	txManager *mockRepo.MockTransactionManager
	txRepo    *mockRepo.MockTransactionRepository
	cropRepo  *mockRepo.MockCropRepository
	userRepo  *mockRepo.MockUserRepository
	scheduler *mockSvc.MockScheduler
}

func newLifecycleService(t *testing.T) (usecase.LifecycleUsecase, *lifecycleMocks) {
	t.Helper()

	mocks := &lifecycleMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		txRepo:    mockRepo.NewMockTransactionRepository(t),
		cropRepo:  mockRepo.NewMockCropRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		scheduler: mockSvc.NewMockScheduler(t),
	}
	service := NewLifecycleService(
		mocks.txManager,
		mocks.txRepo,
		mocks.cropRepo,
		mocks.userRepo,
		mocks.scheduler,
		testConfig(),
		testLogger(),
	)

	return service, mocks
}

func testBuyer() *entity.User {
	return &entity.User{
		ID:       "v1",
		Name:     "Anita Sharma",
		Phone:    "9000000001",
		Location: "Ludhiana, Punjab",
		Role:     entity.RoleVendor,
		Verified: true,
	}
}

func testOpenCrop() *entity.Crop {
	return &entity.Crop{
		ID:             "c1",
		FarmerID:       "f1",
		FarmerName:     "Ramesh Singh",
		FarmerLocation: "Punjab",
		Name:           "Wheat",
		Price:          50,
		Quantity:       100,
		Unit:           "kg",
	}
}

func TestLifecycleService_CreateTransaction_PlatformDelivery(t *testing.T) {
	service, mocks := newLifecycleService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().FindByID(ctx, "v1").Return(testBuyer(), nil)
	mocks.cropRepo.EXPECT().FindByID(ctx, "c1").Return(testOpenCrop(), nil)

	commitCrops := mockRepo.NewMockCropRepository(t)
	commitTxs := mockRepo.NewMockTransactionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCropRepository().Return(commitCrops)
	factory.EXPECT().NewTransactionRepository().Return(commitTxs)

	commitCrops.EXPECT().FindByID(ctx, "c1").Return(testOpenCrop(), nil)
	commitCrops.EXPECT().Update(ctx, mock.MatchedBy(func(crop *entity.Crop) bool {
		return crop.ID == "c1" && crop.IsSold
	})).Return(nil)
	commitTxs.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	before := time.Now()
	tx, err := service.CreateTransaction(ctx, &usecase.CreateTransactionInput{
		BuyerID:      "v1",
		CropID:       "c1",
		DeliveryMode: entity.DeliveryAgriConnect,
	})
	require.NoError(t, err)
	require.NotNil(t, tx)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "v1", tx.BuyerID)
	assert.Equal(t, "f1", tx.SellerID)
	assert.Equal(t, "c1", tx.CropID)
	assert.Equal(t, int64(650), tx.Amount) // 50*10 + 150 delivery fee
	assert.Equal(t, entity.StatusEscrowPaid, tx.Status)
	assert.Equal(t, entity.DeliveryAgriConnect, tx.DeliveryMode)
	assert.Equal(t, "Ludhiana, Punjab", tx.DeliveryAddress)

	expectedArrival := before.AddDate(0, 0, 3)
	assert.WithinDuration(t, expectedArrival, tx.EstimatedArrival, time.Minute)
}

func TestLifecycleService_CreateTransaction_SelfTransport(t *testing.T) {
	service, mocks := newLifecycleService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().FindByID(ctx, "v1").Return(testBuyer(), nil)
	mocks.cropRepo.EXPECT().FindByID(ctx, "c1").Return(testOpenCrop(), nil)

	commitCrops := mockRepo.NewMockCropRepository(t)
	commitTxs := mockRepo.NewMockTransactionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCropRepository().Return(commitCrops)
	factory.EXPECT().NewTransactionRepository().Return(commitTxs)
	commitCrops.EXPECT().FindByID(ctx, "c1").Return(testOpenCrop(), nil)
	commitCrops.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Crop")).Return(nil)
	commitTxs.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	before := time.Now()
	tx, err := service.CreateTransaction(ctx, &usecase.CreateTransactionInput{
		BuyerID:         "v1",
		CropID:          "c1",
		DeliveryMode:    entity.DeliverySelfTransport,
		DeliveryAddress: "Warehouse 7, Amritsar",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(500), tx.Amount) // no delivery fee
	assert.Equal(t, "Warehouse 7, Amritsar", tx.DeliveryAddress)
	assert.WithinDuration(t, before.AddDate(0, 0, 1), tx.EstimatedArrival, time.Minute)
}

func TestLifecycleService_CreateTransaction_InvalidDeliveryMode(t *testing.T) {
	service, _ := newLifecycleService(t)

	tx, err := service.CreateTransaction(context.Background(), &usecase.CreateTransactionInput{
		BuyerID:      "v1",
		CropID:       "c1",
		DeliveryMode: "DRONE",
	})
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDeliveryMode)
}

func TestLifecycleService_CreateTransaction_CropAlreadySold(t *testing.T) {
	service, mocks := newLifecycleService(t)
	ctx := context.Background()

	soldCrop := testOpenCrop()
	soldCrop.IsSold = true

	mocks.userRepo.EXPECT().FindByID(ctx, "v1").Return(testBuyer(), nil)
	mocks.cropRepo.EXPECT().FindByID(ctx, "c1").Return(soldCrop, nil)

	tx, err := service.CreateTransaction(ctx, &usecase.CreateTransactionInput{
		BuyerID:      "v1",
		CropID:       "c1",
		DeliveryMode: entity.DeliveryAgriConnect,
	})
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, domainerrors.ErrCropAlreadySold)
}

func TestLifecycleService_CreateTransaction_RaceLostInsideCommit(t *testing.T) {
	service, mocks := newLifecycleService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().FindByID(ctx, "v1").Return(testBuyer(), nil)
	mocks.cropRepo.EXPECT().FindByID(ctx, "c1").Return(testOpenCrop(), nil)

	// The intent-time check passed, but another purchase won the commit.
	soldCrop := testOpenCrop()
	soldCrop.IsSold = true

	commitCrops := mockRepo.NewMockCropRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCropRepository().Return(commitCrops)
	commitCrops.EXPECT().FindByID(ctx, "c1").Return(soldCrop, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	tx, err := service.CreateTransaction(ctx, &usecase.CreateTransactionInput{
		BuyerID:      "v1",
		CropID:       "c1",
		DeliveryMode: entity.DeliverySelfTransport,
	})
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, domainerrors.ErrCropAlreadySold)
}

func TestLifecycleService_AdvanceStatus_MarkShipped(t *testing.T) {
	service, mocks := newLifecycleService(t)
	ctx := context.Background()

	tx := &entity.Transaction{
		ID:     "t1",
		Status: entity.StatusEscrowPaid,
	}

	mocks.txRepo.EXPECT().FindByID(ctx, "t1").Return(tx, nil)
	mocks.txRepo.EXPECT().Update(ctx, mock.MatchedBy(func(updated *entity.Transaction) bool {
		return updated.Status == entity.StatusInTransit && updated.TrackingInfo == "TRK-42"
	})).Return(nil)

	updated, err := service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
		TransactionID: "t1",
		NextStatus:    entity.StatusInTransit,
		TrackingInfo:  "TRK-42",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInTransit, updated.Status)
	assert.Equal(t, "TRK-42", updated.TrackingInfo)
}

func TestLifecycleService_AdvanceStatus_BackwardRejected(t *testing.T) {
	service, mocks := newLifecycleService(t)
	ctx := context.Background()

	tx := &entity.Transaction{
		ID:     "t1",
		Status: entity.StatusDelivered,
	}
	mocks.txRepo.EXPECT().FindByID(ctx, "t1").Return(tx, nil)

	updated, err := service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
		TransactionID: "t1",
		NextStatus:    entity.StatusInTransit,
	})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrStatusNotForward)
}

func TestLifecycleService_AdvanceStatus_DisbursedImmutable(t *testing.T) {
	service, mocks := newLifecycleService(t)
	ctx := context.Background()

	tx := &entity.Transaction{
		ID:     "t1",
		Status: entity.StatusDisbursed,
	}
	mocks.txRepo.EXPECT().FindByID(ctx, "t1").Return(tx, nil)

	updated, err := service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
		TransactionID: "t1",
		NextStatus:    entity.StatusDelivered,
	})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFinal)
}

func TestLifecycleService_AdvanceStatus_DeliveredTriggersDisbursement(t *testing.T) {
	service, mocks := newLifecycleService(t)
	ctx := context.Background()

	tx := &entity.Transaction{
		ID:       "t1",
		SellerID: "f1",
		Amount:   650,
		Status:   entity.StatusInTransit,
	}

	mocks.txRepo.EXPECT().FindByID(ctx, "t1").Return(tx, nil).Once()
	mocks.txRepo.EXPECT().Update(ctx, mock.MatchedBy(func(updated *entity.Transaction) bool {
		return updated.Status == entity.StatusDelivered
	})).Return(nil).Once()

	var scheduled func()
	mocks.scheduler.EXPECT().
		Schedule("t1", 3*time.Second, mock.AnythingOfType("func()")).
		Run(func(_ string, _ time.Duration, task func()) {
			scheduled = task
		})

	updated, err := service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
		TransactionID: "t1",
		NextStatus:    entity.StatusDelivered,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, updated.Status)
	require.NotNil(t, scheduled)

	// When the timer fires, the record is re-read and moved to DISBURSED.
	delivered := &entity.Transaction{
		ID:       "t1",
		SellerID: "f1",
		Amount:   650,
		Status:   entity.StatusDelivered,
	}
	mocks.txRepo.EXPECT().FindByID(mock.Anything, "t1").Return(delivered, nil).Once()
	mocks.txRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(final *entity.Transaction) bool {
		return final.Status == entity.StatusDisbursed
	})).Return(nil).Once()

	scheduled()
}

func TestLifecycleService_Disbursement_MissingTransactionIsNoOp(t *testing.T) {
	service, mocks := newLifecycleService(t)
	ctx := context.Background()

	tx := &entity.Transaction{
		ID:     "t1",
		Status: entity.StatusInTransit,
	}
	mocks.txRepo.EXPECT().FindByID(ctx, "t1").Return(tx, nil).Once()
	mocks.txRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()

	var scheduled func()
	mocks.scheduler.EXPECT().
		Schedule("t1", mock.Anything, mock.AnythingOfType("func()")).
		Run(func(_ string, _ time.Duration, task func()) {
			scheduled = task
		})

	_, err := service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
		TransactionID: "t1",
		NextStatus:    entity.StatusDelivered,
	})
	require.NoError(t, err)

	// The record vanished before the timer fired. No update must happen.
	mocks.txRepo.EXPECT().
		FindByID(mock.Anything, "t1").
		Return(nil, repository.ErrTransactionNotFound).
		Once()

	scheduled()
}

func TestLifecycleService_ListTransactionsByParty(t *testing.T) {
	service, mocks := newLifecycleService(t)
	ctx := context.Background()

	older := &entity.Transaction{ID: "t1", BuyerID: "v1", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &entity.Transaction{ID: "t2", BuyerID: "v1", CreatedAt: time.Now()}

	mocks.txRepo.EXPECT().ListByBuyer(ctx, "v1").Return([]*entity.Transaction{older, newer}, nil)

	txs, err := service.ListTransactionsByParty(ctx, "v1", entity.RoleVendor)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "t2", txs[0].ID)
	assert.Equal(t, "t1", txs[1].ID)
}

func TestLifecycleService_ListTransactionsByParty_SellerSide(t *testing.T) {
	service, mocks := newLifecycleService(t)
	ctx := context.Background()

	mocks.txRepo.EXPECT().ListBySeller(ctx, "f1").Return([]*entity.Transaction{}, nil)

	txs, err := service.ListTransactionsByParty(ctx, "f1", entity.RoleFarmer)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestLifecycleService_ListTransactionsByParty_InvalidRole(t *testing.T) {
	service, _ := newLifecycleService(t)

	txs, err := service.ListTransactionsByParty(context.Background(), "u1", entity.RoleCommunity)
	assert.Nil(t, txs)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}
