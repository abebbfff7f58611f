package authhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"jobportal-backend/db"
	accountstore "jobportal-backend/lib/account/store"
	authutils "jobportal-backend/lib/utils/auth-utils"
	"jobportal-backend/models"
	accountapimodels "jobportal-backend/models/api/account"
	authapimodels "jobportal-backend/models/api/auth"
	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) (id string, err error)
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Me(userID string) (view accountapimodels.AccountView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: accountstore.NewInstance(db.DB),
	}
}

type impl struct {
	store accountstore.Provider
}

// Register creates an applicant account. Staff and reviewer accounts are
// created by the administrator.
func (i impl) Register(request authapimodels.RegisterRequest) (id string, err error) {
	logger := log.WithField("email", request.Email)
	exist, err := i.store.ExistByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("failed to check email uniqueness")
		return "", errors.New("failed to check email uniqueness")
	}
	if exist {
		return "", errors.New("an account with this email already exists")
	}
	rec := dbmodels.Account{
		Email:      request.Email,
		Password:   authutils.GetMD5Hash(request.Password),
		FirstName:  request.FirstName,
		MiddleName: request.MiddleName,
		LastName:   request.LastName,
		Phone:      request.Phone,
		Role:       models.UserRoleApplicant,
		IsActive:   true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create the account")
		return "", errors.New("failed to create the account")
	}
	return id, nil
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("failed to look up the account by email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("no account with this email")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	if !user.IsActive {
		logger.Debug("account is deactivated")
		return authapimodels.JWTResponse{}, errors.New("account is deactivated")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	tokenString, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		logger.WithError(err).Error("failed to issue JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"LastLogin": time.Now()})
	if err != nil {
		logger.WithError(err).Error("failed to update last login time")
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}

func (i impl) Me(userID string) (view accountapimodels.AccountView, err error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return view, err
	}
	if user == nil {
		return view, errors.New("account not found")
	}
	return accountapimodels.Convert(*user), nil
}
