package localstore

import (
	"context"
	"sort"

	"agriconnect/internal/domain/entity"
	"agriconnect/internal/domain/repository"

	"github.com/pkg/errors"
)

type cropRepository struct {
	access accessor
}

// NewCropRepository creates a store-backed crop repository.
func NewCropRepository(store *Store) repository.CropRepository {
	return &cropRepository{access: store}
}

func (r *cropRepository) FindByID(ctx context.Context, id string) (*entity.Crop, error) {
	var crop *entity.Crop

	err := r.access.read(func(data *storeData) error {
		for _, model := range data.Crops {
			if model.ID == id {
				crop = model.toEntity()

				return nil
			}
		}

		return repository.ErrCropNotFound
	})
	if err != nil {
		return nil, err
	}

	return crop, nil
}

func (r *cropRepository) List(ctx context.Context) ([]*entity.Crop, error) {
	var crops []*entity.Crop

	err := r.access.read(func(data *storeData) error {
		crops = make([]*entity.Crop, 0, len(data.Crops))
		for _, model := range data.Crops {
			crops = append(crops, model.toEntity())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(crops, func(i, j int) bool {
		return crops[i].CreatedAt.After(crops[j].CreatedAt)
	})

	return crops, nil
}

func (r *cropRepository) ListByFarmer(ctx context.Context, farmerID string) ([]*entity.Crop, error) {
	var crops []*entity.Crop

	err := r.access.read(func(data *storeData) error {
		crops = make([]*entity.Crop, 0)
		for _, model := range data.Crops {
			if model.FarmerID == farmerID {
				crops = append(crops, model.toEntity())
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return crops, nil
}

func (r *cropRepository) Create(ctx context.Context, crop *entity.Crop) error {
	return r.access.write(func(data *storeData) error {
		for _, model := range data.Crops {
			if model.ID == crop.ID {
				return errors.Errorf("crop %s already exists", crop.ID)
			}
		}
		data.Crops = append(data.Crops, cropToModel(crop))

		return nil
	})
}

func (r *cropRepository) Update(ctx context.Context, crop *entity.Crop) error {
	return r.access.write(func(data *storeData) error {
		for i, model := range data.Crops {
			if model.ID == crop.ID {
				data.Crops[i] = cropToModel(crop)

				return nil
			}
		}

		return repository.ErrCropNotFound
	})
}
