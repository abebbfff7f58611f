package refnum

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "jobportal-backend/models/db"
)

// Format renders a reference number from its parts, e.g. APP-2026-000042.
func Format(year int, seq int64) string {
	return fmt.Sprintf("APP-%d-%06d", year, seq)
}

// Next produces the next reference number for the given year. It must run
// inside the submission transaction: the counter row is locked FOR UPDATE, so
// two concurrent submissions cannot draw the same number, and a rolled-back
// submission never leaves a gap visible outside its own transaction.
func Next(tx *gorm.DB, year int) (string, error) {
	rec := dbmodels.ApplicationSequence{Year: year}
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(dbmodels.ApplicationSequence{Year: year}).
		FirstOrCreate(&rec).
		Error
	if err != nil {
		return "", err
	}
	rec.LastNo++
	err = tx.
		Model(&dbmodels.ApplicationSequence{}).
		Where("year = ?", year).
		Update("last_no", rec.LastNo).
		Error
	if err != nil {
		return "", err
	}
	return Format(year, rec.LastNo), nil
}
