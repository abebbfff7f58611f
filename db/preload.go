package db

import (
	log "github.com/sirupsen/logrus"

	"jobportal-backend/config"
	accountstore "jobportal-backend/lib/account/store"
	authutils "jobportal-backend/lib/utils/auth-utils"
	"jobportal-backend/models"
	dbmodels "jobportal-backend/models/db"
)

func InitPreload() {
	fillAdminAccount()
}

// fillAdminAccount seeds the initial administrator when the accounts table is
// empty, so a fresh install can be configured through the API.
func fillAdminAccount() {
	if config.Conf.Admin.Password == "" {
		log.Info("admin password not configured, skipping admin preload")
		return
	}
	store := accountstore.NewInstance(DB)
	exist, err := store.ExistByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("failed to check for the admin account")
		return
	}
	if exist {
		return
	}
	rec := dbmodels.Account{
		Email:     config.Conf.Admin.Email,
		Password:  authutils.GetMD5Hash(config.Conf.Admin.Password),
		FirstName: "Portal",
		LastName:  "Administrator",
		Role:      models.UserRoleAdmin,
		IsActive:  true,
	}
	if _, err = store.Create(rec); err != nil {
		log.WithError(err).Error("failed to seed the admin account")
		return
	}
	log.WithField("email", config.Conf.Admin.Email).Info("admin account created")
}
