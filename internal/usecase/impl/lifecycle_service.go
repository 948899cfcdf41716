// Package impl contains the concrete usecase services.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"agriconnect/config"
	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/domain/service"
	"agriconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultDeliveryAddress is used when neither the request nor the buyer's
// profile carries an address.
const defaultDeliveryAddress = "Default Delivery Point"

type lifecycleService struct {
	txManager repository.TransactionManager
	txRepo    repository.TransactionRepository
	cropRepo  repository.CropRepository
	userRepo  repository.UserRepository
	scheduler service.Scheduler
	cfg       *config.Config
	logger    *slog.Logger
}

// NewLifecycleService creates the transaction lifecycle engine.
func NewLifecycleService(
	txManager repository.TransactionManager,
	txRepo repository.TransactionRepository,
	cropRepo repository.CropRepository,
	userRepo repository.UserRepository,
	scheduler service.Scheduler,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LifecycleUsecase {
	return &lifecycleService{
		txManager: txManager,
		txRepo:    txRepo,
		cropRepo:  cropRepo,
		userRepo:  userRepo,
		scheduler: scheduler,
		cfg:       cfg,
		logger:    logger,
	}
}

// CreateTransaction records a purchase after payment confirmation. The crop's
// sold flip and the transaction append happen inside one store commit; the
// sold flag is re-checked inside that commit so a concurrent purchase of the
// same crop fails validation instead of double-selling.
func (s *lifecycleService) CreateTransaction(ctx context.Context, input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	if !input.DeliveryMode.IsValid() {
		return nil, domainerrors.ErrInvalidDeliveryMode
	}

	buyer, err := s.userRepo.FindByID(ctx, input.BuyerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer")
	}

	// Purchase-intent check. Rejecting here keeps the (cosmetic) payment step
	// from even starting against a sold crop; the authoritative check happens
	// again inside the commit below.
	crop, err := s.cropRepo.FindByID(ctx, input.CropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, domainerrors.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find crop")
	}
	if crop.IsSold {
		return nil, domainerrors.ErrCropAlreadySold
	}

	address := input.DeliveryAddress
	if address == "" {
		address = buyer.Location
	}
	if address == "" {
		address = defaultDeliveryAddress
	}

	now := time.Now()
	tx := &entity.Transaction{
		ID:               uuid.New().String(),
		BuyerID:          buyer.ID,
		SellerID:         crop.FarmerID,
		CropID:           crop.ID,
		Amount:           s.purchaseAmount(crop.Price, input.DeliveryMode),
		Status:           entity.StatusEscrowPaid,
		DeliveryMode:     input.DeliveryMode,
		DeliveryAddress:  address,
		EstimatedArrival: now.AddDate(0, 0, s.transitDays(input.DeliveryMode)),
		CreatedAt:        now,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		crops := factory.NewCropRepository()

		// Re-read under the commit: this serializes concurrent purchases of
		// the same crop.
		current, err := crops.FindByID(ctx, crop.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCropNotFound) {
				return domainerrors.ErrCropNotFound
			}

			return errors.Wrap(err, "failed to re-read crop")
		}
		if current.IsSold {
			return domainerrors.ErrCropAlreadySold
		}

		current.IsSold = true
		if err := crops.Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to mark crop sold")
		}

		if err := factory.NewTransactionRepository().Create(ctx, tx); err != nil {
			return errors.Wrap(err, "failed to create transaction")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("escrow payment recorded",
		slog.String("transaction_id", tx.ID),
		slog.String("crop_id", tx.CropID),
		slog.Int64("amount", tx.Amount),
		slog.String("delivery_mode", string(tx.DeliveryMode)),
	)

	return tx, nil
}

// AdvanceStatus moves a transaction forward along the delivery pipeline.
// Entering DELIVERED schedules the automatic disbursement.
func (s *lifecycleService) AdvanceStatus(ctx context.Context, input *usecase.AdvanceStatusInput) (*entity.Transaction, error) {
	if !input.NextStatus.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	tx, err := s.txRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, domainerrors.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	if tx.Status.IsTerminal() {
		return nil, domainerrors.ErrTransactionFinal
	}
	if !tx.Status.CanAdvanceTo(input.NextStatus) {
		return nil, domainerrors.ErrStatusNotForward
	}

	tx.Status = input.NextStatus
	if input.NextStatus == entity.StatusInTransit && input.TrackingInfo != "" {
		tx.TrackingInfo = input.TrackingInfo
	}

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "failed to update transaction status")
	}

	s.logger.Info("transaction status advanced",
		slog.String("transaction_id", tx.ID),
		slog.String("status", string(tx.Status)),
	)

	if tx.Status == entity.StatusDelivered {
		s.scheduleDisbursement(tx.ID)
	}

	return tx, nil
}

// scheduleDisbursement queues the escrow release. The task captures only the
// transaction id; the record is re-read when the timer fires so it reflects
// whatever the transaction looks like by then.
func (s *lifecycleService) scheduleDisbursement(txID string) {
	delay := s.cfg.Escrow.DisburseDelay
	s.scheduler.Schedule(txID, delay, func() {
		s.disburse(txID)
	})

	s.logger.Info("disbursement scheduled",
		slog.String("transaction_id", txID),
		slog.Duration("delay", delay),
	)
}

// disburse releases escrowed funds to the farmer. A missing transaction is a
// no-op; an already-disbursed one is left alone.
func (s *lifecycleService) disburse(txID string) {
	ctx := context.Background()

	tx, err := s.txRepo.FindByID(ctx, txID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			s.logger.Debug("disbursement target gone", slog.String("transaction_id", txID))

			return
		}
		s.logger.Error("disbursement lookup failed",
			slog.String("transaction_id", txID),
			slog.Any("error", err),
		)

		return
	}

	if tx.Status.IsTerminal() {
		return
	}

	tx.Status = entity.StatusDisbursed
	if err := s.txRepo.Update(ctx, tx); err != nil {
		s.logger.Error("disbursement update failed",
			slog.String("transaction_id", txID),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("escrow disbursed to farmer",
		slog.String("transaction_id", tx.ID),
		slog.String("seller_id", tx.SellerID),
		slog.Int64("amount", tx.Amount),
	)
}

// ListTransactionsByParty retrieves a user's transactions, newest first.
func (s *lifecycleService) ListTransactionsByParty(ctx context.Context, userID string, role entity.Role) ([]*entity.Transaction, error) {
	var (
		txs []*entity.Transaction
		err error
	)

	switch role {
	case entity.RoleVendor:
		txs, err = s.txRepo.ListByBuyer(ctx, userID)
	case entity.RoleFarmer:
		txs, err = s.txRepo.ListBySeller(ctx, userID)
	default:
		return nil, domainerrors.ErrInvalidRole
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})

	return txs, nil
}

func (s *lifecycleService) purchaseAmount(price int64, mode entity.DeliveryMode) int64 {
	amount := price * s.cfg.Marketplace.QuantityMultiplier
	if mode == entity.DeliveryAgriConnect {
		amount += s.cfg.Marketplace.PlatformDeliveryFee
	}

	return amount
}

func (s *lifecycleService) transitDays(mode entity.DeliveryMode) int {
	if mode == entity.DeliveryAgriConnect {
		return s.cfg.Marketplace.PlatformTransitDays
	}

	return s.cfg.Marketplace.SelfTransitDays
}
