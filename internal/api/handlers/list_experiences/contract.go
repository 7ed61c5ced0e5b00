package list_experiences

import (
	"context"

	browseCatalog "github.com/m04kA/SMC-StorefrontService/internal/usecase/browse_catalog"
)

type ListExperiencesUseCase interface {
	List(ctx context.Context, req *browseCatalog.ListRequest) (*browseCatalog.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
