package initializers

import (
	"context"

	"jobportal-backend/config"
	"jobportal-backend/fiberlog"
	authhandler "jobportal-backend/lib/account/auth"
	aihandler "jobportal-backend/lib/ai"
	applicationhandler "jobportal-backend/lib/application"
	documenthandler "jobportal-backend/lib/document"
	xlsexport "jobportal-backend/lib/export/xls"
	filestorage "jobportal-backend/lib/file-storage"
	"jobportal-backend/lib/notify"
	reviewhandler "jobportal-backend/lib/review"
	vacancyhandler "jobportal-backend/lib/vacancy"
	connectionhub "jobportal-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	// filestorage must come before documenthandler, the latter captures its instance
	filestorage.NewHandler()
	notify.NewHandler()
	authhandler.NewHandler()
	vacancyhandler.NewHandler()
	documenthandler.NewHandler()
	xlsexport.NewHandler()
	applicationhandler.NewHandler()
	reviewhandler.NewHandler()
	aihandler.NewHandler()
}
