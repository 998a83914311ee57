package specification

import "gorm.io/gorm"

// Specification is a composable query filter; repositories chain Apply
// calls over the base query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
