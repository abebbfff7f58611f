package aiapimodels

import (
	"github.com/pkg/errors"

	"jobportal-backend/models"
)

type AssistRequest struct {
	Purpose models.AssistPurpose `json:"purpose"`
	Context string               `json:"context"` // free-form question or context
}

func (r AssistRequest) Validate() error {
	if err := r.Purpose.Validate(); err != nil {
		return err
	}
	if r.Context == "" {
		return errors.New("context is required")
	}
	return nil
}

type AssistResponse struct {
	Text string `json:"text"`
}
