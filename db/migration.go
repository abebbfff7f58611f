package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "jobportal-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Account{}); err != nil {
		return errors.Wrap(err, "failed to migrate Account")
	}
	if err := DB.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "failed to migrate Vacancy")
	}
	if err := DB.AutoMigrate(&dbmodels.Document{}); err != nil {
		return errors.Wrap(err, "failed to migrate Document")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "failed to migrate Application")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationDocument{}); err != nil {
		return errors.Wrap(err, "failed to migrate ApplicationDocument")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationSequence{}); err != nil {
		return errors.Wrap(err, "failed to migrate ApplicationSequence")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationStatusHistory{}); err != nil {
		return errors.Wrap(err, "failed to migrate ApplicationStatusHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.ReviewerAssignment{}); err != nil {
		return errors.Wrap(err, "failed to migrate ReviewerAssignment")
	}
	if err := DB.AutoMigrate(&dbmodels.Evaluation{}); err != nil {
		return errors.Wrap(err, "failed to migrate Evaluation")
	}
	if err := DB.AutoMigrate(&dbmodels.PushData{}); err != nil {
		return errors.Wrap(err, "failed to migrate PushData")
	}
	if err := DB.AutoMigrate(&dbmodels.AIRequestLog{}); err != nil {
		return errors.Wrap(err, "failed to migrate AIRequestLog")
	}
	log.Info("migrations finished")
	return nil
}
