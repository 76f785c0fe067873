package usecase

import (
	"organic-store/internal/data/repository"
	"organic-store/pkg/mailer"
	"organic-store/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Product ProductService
}

func NewService(repo *repository.Repository, mail mailer.Service, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, mail, config, log),
		Product: NewProductService(repo, log),
	}
}
