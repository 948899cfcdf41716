package localstore

import (
	"context"

	"agriconnect/internal/domain/entity"
	"agriconnect/internal/domain/repository"

	"github.com/pkg/errors"
)

type userRepository struct {
	access accessor
}

// NewUserRepository creates a store-backed user repository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{access: store}
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user *entity.User

	err := r.access.read(func(data *storeData) error {
		for _, model := range data.Users {
			if model.ID == id {
				user = model.toEntity()

				return nil
			}
		}

		return repository.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var user *entity.User

	err := r.access.read(func(data *storeData) error {
		for _, model := range data.Users {
			if model.Phone == phone {
				user = model.toEntity()

				return nil
			}
		}

		return repository.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User

	err := r.access.read(func(data *storeData) error {
		users = make([]*entity.User, 0, len(data.Users))
		for _, model := range data.Users {
			users = append(users, model.toEntity())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.access.write(func(data *storeData) error {
		for _, model := range data.Users {
			if model.ID == user.ID {
				return errors.Errorf("user %s already exists", user.ID)
			}
		}
		data.Users = append(data.Users, userToModel(user))

		return nil
	})
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.access.write(func(data *storeData) error {
		for i, model := range data.Users {
			if model.ID == user.ID {
				data.Users[i] = userToModel(user)

				return nil
			}
		}

		return repository.ErrUserNotFound
	})
}
