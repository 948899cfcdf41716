package localstore

import (
	"context"

	"agriconnect/internal/domain/entity"
	"agriconnect/internal/domain/repository"

	"github.com/pkg/errors"
)

type transactionRepository struct {
	access accessor
}

// NewTransactionRepository creates a store-backed transaction repository.
func NewTransactionRepository(store *Store) repository.TransactionRepository {
	return &transactionRepository{access: store}
}

func (r *transactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var tx *entity.Transaction

	err := r.access.read(func(data *storeData) error {
		for _, model := range data.Transactions {
			if model.ID == id {
				tx = model.toEntity()

				return nil
			}
		}

		return repository.ErrTransactionNotFound
	})
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (r *transactionRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Transaction, error) {
	return r.list(func(model *transactionModel) bool {
		return model.BuyerID == buyerID
	})
}

func (r *transactionRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Transaction, error) {
	return r.list(func(model *transactionModel) bool {
		return model.SellerID == sellerID
	})
}

func (r *transactionRepository) ListByCrop(ctx context.Context, cropID string) ([]*entity.Transaction, error) {
	return r.list(func(model *transactionModel) bool {
		return model.CropID == cropID
	})
}

func (r *transactionRepository) list(match func(model *transactionModel) bool) ([]*entity.Transaction, error) {
	var txs []*entity.Transaction

	err := r.access.read(func(data *storeData) error {
		txs = make([]*entity.Transaction, 0)
		for _, model := range data.Transactions {
			if match(model) {
				txs = append(txs, model.toEntity())
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return txs, nil
}

func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	return r.access.write(func(data *storeData) error {
		for _, model := range data.Transactions {
			if model.ID == tx.ID {
				return errors.Errorf("transaction %s already exists", tx.ID)
			}
		}
		data.Transactions = append(data.Transactions, transactionToModel(tx))

		return nil
	})
}

func (r *transactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	return r.access.write(func(data *storeData) error {
		for i, model := range data.Transactions {
			if model.ID == tx.ID {
				data.Transactions[i] = transactionToModel(tx)

				return nil
			}
		}

		return repository.ErrTransactionNotFound
	})
}
