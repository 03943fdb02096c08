package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	User      *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Comment   string     `gorm:"type:text;not null"`
	Rating    int        `gorm:"type:smallint;not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	CreatedAt time.Time  `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
