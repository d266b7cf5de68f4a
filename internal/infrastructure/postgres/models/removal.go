package models

import "gorm.io/gorm"

// RemovalMark is the shared soft-delete marker: a timestamp plus the actor
// who removed the row. gorm.DeletedAt makes every finder exclude removed
// rows implicitly; auditing queries must opt out with Unscoped().
type RemovalMark struct {
	DeletedAt gorm.DeletedAt `gorm:"index"`
	DeletedBy string
}
