package repository

import "gorm.io/gorm"

// pick returns tx when the caller is inside a transaction, or the repository's
// own handle otherwise.
func pick(tx, db *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}
