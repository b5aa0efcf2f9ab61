package model

import "time"

// SharedOptionModel is the GORM-specific struct for the 'shared_options' table:
// the organization-wide default profile and the global mode toggles.
type SharedOptionModel struct {
	OptionKey   string `gorm:"type:varchar(191);primaryKey"`
	OptionValue string `gorm:"type:text;not null;default:''"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SharedOptionModel) TableName() string {
	return "shared_options"
}

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID         string `gorm:"type:varchar(64);primaryKey"`
	Name       string `gorm:"type:varchar(255);not null;default:''"`
	IsPrimary  bool   `gorm:"not null;default:false;index:idx_locations_is_primary"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Categories []LocationCategoryModel `gorm:"foreignKey:LocationID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// LocationMetaModel is one key/value of a location: its own field values,
// opening-hours sub-fields and override flags.
type LocationMetaModel struct {
	LocationID string `gorm:"type:varchar(64);primaryKey"`
	MetaKey    string `gorm:"type:varchar(191);primaryKey"`
	MetaValue  string `gorm:"type:text;not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (LocationMetaModel) TableName() string {
	return "location_meta"
}

// LocationCategoryModel links a location to a category name.
type LocationCategoryModel struct {
	LocationID string `gorm:"type:varchar(64);primaryKey"`
	Category   string `gorm:"type:varchar(191);primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (LocationCategoryModel) TableName() string {
	return "location_categories"
}
