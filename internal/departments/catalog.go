package departments

import (
	"context"
	"log"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/doctrack-io/doctrackgo/internal/models"
)

// DefaultDepartments seeds a fresh installation. Admins extend the
// catalog through the departments endpoint afterwards.
var DefaultDepartments = []string{
	"Registry",
	"Transit",
	"Finance",
	"Legal",
	"Human Resources",
	"Archive",
}

// Catalog is the DB-backed department catalog consulted during move and
// redirect validation.
type Catalog struct {
	db *gorm.DB
}

// NewCatalog creates a catalog bound to the database.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// IsValid reports whether name resolves to an active department. Empty
// names are never valid. Lookup failures are logged and treated as
// invalid; a move against an unreachable catalog must not pass.
func (c *Catalog) IsValid(ctx context.Context, name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	var count int64
	err := c.db.WithContext(ctx).Model(&models.Department{}).
		Where("name = ? AND active = ?", name, true).
		Count(&count).Error
	if err != nil {
		log.Printf("⚠️ Department lookup failed for %q: %v", name, err)
		return false
	}
	return count > 0
}

// List returns all active departments ordered by name.
func (c *Catalog) List(ctx context.Context) ([]models.Department, error) {
	var deps []models.Department
	err := c.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&deps).Error
	return deps, err
}

// Seed inserts the default departments, skipping ones that already exist.
func (c *Catalog) Seed(ctx context.Context) error {
	for _, name := range DefaultDepartments {
		dep := models.Department{Name: name, Active: true}
		if err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&dep).Error; err != nil {
			return err
		}
	}
	return nil
}
