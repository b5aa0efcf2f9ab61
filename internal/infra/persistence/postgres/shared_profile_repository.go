package postgres

import (
	"context"

	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// sharedProfileRepository implements repository.SharedProfileRepository.
type sharedProfileRepository struct {
	db *gorm.DB
}

// NewSharedProfileRepository is the constructor for sharedProfileRepository.
func NewSharedProfileRepository(db *gorm.DB) repository.SharedProfileRepository {
	return &sharedProfileRepository{db: db}
}

// Get returns the shared value stored under key, or def when the key is absent.
func (repo *sharedProfileRepository) Get(ctx context.Context, key, def string) (string, error) {
	var options []model.SharedOptionModel
	err := repo.db.WithContext(ctx).
		Where("option_key = ?", key).
		Limit(1).
		Find(&options).Error
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to get shared option "+key)
	}

	if len(options) == 0 {
		return def, nil
	}

	return options[0].OptionValue, nil
}

// Snapshot returns every shared key/value pair.
func (repo *sharedProfileRepository) Snapshot(ctx context.Context) (map[string]string, error) {
	var options []model.SharedOptionModel
	if err := repo.db.WithContext(ctx).Find(&options).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load shared options")
	}

	values := make(map[string]string, len(options))
	for _, option := range options {
		values[option.OptionKey] = option.OptionValue
	}

	return values, nil
}
