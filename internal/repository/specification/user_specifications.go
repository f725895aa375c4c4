package specification

import "gorm.io/gorm"

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// PublicProfiles keeps only users who opted into the leaderboard.
type PublicProfiles struct{}

func (s PublicProfiles) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("public_profile = ?", true)
}

// Token specs

type ByTokenHash struct {
	Hash string
}

func (s ByTokenHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token_hash = ?", s.Hash)
}
