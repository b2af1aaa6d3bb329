package service

import "gorm.io/gorm"

// Pagination is passed through to the query unchanged. A nil field is not
// applied, so an empty Pagination returns every row.
type Pagination struct {
	Limit  *int
	Offset *int
}

func (p Pagination) apply(db *gorm.DB) *gorm.DB {
	if p.Offset != nil {
		db = db.Offset(*p.Offset)
	}
	if p.Limit != nil {
		db = db.Limit(*p.Limit)
	}
	return db
}
