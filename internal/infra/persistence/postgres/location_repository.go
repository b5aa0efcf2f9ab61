package postgres

import (
	"context"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	"locator/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// locationRepository implements repository.LocationRepository over the
// locations, location_meta and location_categories tables.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// GetField returns the location's own value for key. Unknown locations and unset
// keys both read as empty.
func (repo *locationRepository) GetField(ctx context.Context, locationID, key string) (string, error) {
	var metas []model.LocationMetaModel
	err := repo.db.WithContext(ctx).
		Where("location_id = ? AND meta_key = ?", locationID, key).
		Limit(1).
		Find(&metas).Error
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to get location field "+key)
	}

	if len(metas) == 0 {
		return "", nil
	}

	return metas[0].MetaValue, nil
}

// GetOverrideFlag reads the override flag stored next to key.
func (repo *locationRepository) GetOverrideFlag(ctx context.Context, locationID, key string) (bool, error) {
	value, err := repo.GetField(ctx, locationID, entity.OverrideKey(key))
	if err != nil {
		return false, err
	}

	return entity.IsAffirmative(value), nil
}

// FindLocation retrieves a location with its categories.
func (repo *locationRepository) FindLocation(ctx context.Context, locationID string) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("id = ?", locationID).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindPrimaryLocationID returns the primary location's id, empty when none is marked.
func (repo *locationRepository) FindPrimaryLocationID(ctx context.Context) (string, error) {
	var ids []string
	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("is_primary = ?", true).
		Order("created_at ASC").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to find primary location")
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0], nil
}

// ListLocationIDs returns every location id, primary first.
func (repo *locationRepository) ListLocationIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Order("is_primary DESC").
		Order("created_at ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list locations")
	}

	return ids, nil
}

// FindCategories returns the category names of a location.
func (repo *locationRepository) FindCategories(ctx context.Context, locationID string) ([]string, error) {
	var categories []string
	err := repo.db.WithContext(ctx).
		Model(&model.LocationCategoryModel{}).
		Where("location_id = ?", locationID).
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find location categories")
	}

	return categories, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	categories := make([]string, 0, len(data.Categories))
	for _, category := range data.Categories {
		categories = append(categories, category.Category)
	}

	return &entity.Location{
		ID:         data.ID,
		Name:       data.Name,
		IsPrimary:  data.IsPrimary,
		Categories: categories,
	}
}
