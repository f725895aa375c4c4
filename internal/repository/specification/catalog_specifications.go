package specification

import "gorm.io/gorm"

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// PointsWithin keeps badges whose threshold a points total already meets.
type PointsWithin struct {
	Points int
}

func (s PointsWithin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("points_required <= ?", s.Points)
}
