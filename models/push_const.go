package models

type PushCode string

const (
	PushCodeNewApplication PushCode = "NEW_APPLICATION"
	PushCodeStatusChanged  PushCode = "APPLICATION_STATUS_CHANGED"
)
