package localstore

import (
	"context"

	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
)

// commitSession is the accessor handed to repositories inside Execute. It
// works directly on the in-progress clone; the manager already holds the
// store lock, so no further locking happens here and nothing is persisted
// until the whole commit succeeds.
type commitSession struct {
	data *storeData
}

func (s *commitSession) read(fn func(data *storeData) error) error {
	return fn(s.data)
}

func (s *commitSession) write(fn func(data *storeData) error) error {
	return fn(s.data)
}

type repositoryFactory struct {
	session *commitSession
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{access: f.session}
}

func (f *repositoryFactory) NewCropRepository() repository.CropRepository {
	return &cropRepository{access: f.session}
}

func (f *repositoryFactory) NewTransactionRepository() repository.TransactionRepository {
	return &transactionRepository{access: f.session}
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager creates a manager that runs multi-repository
// mutations as one store commit.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute clones the document, runs fn against the clone, and swaps the clone
// in after it is persisted. fn errors propagate unchanged so domain sentinels
// survive; infrastructure failures surface as a store error.
func (m *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	clone, err := m.store.cloneData()
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "clone failed")
	}

	factory := &repositoryFactory{session: &commitSession{data: clone}}
	if err := fn(factory); err != nil {
		return err
	}

	if err := m.store.persist(clone); err != nil {
		return domainerrors.NewStoreExecuteError(err, "persist failed")
	}
	m.store.data = clone

	return nil
}
