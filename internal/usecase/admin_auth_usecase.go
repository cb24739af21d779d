package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/usecase/interfaces"
	"cctv_estimator/pkg/logger"

	"go.uber.org/zap"
)

type IAdminAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.AdminSession, error)
}

type AdminAuthUseCase struct {
	auth   interfaces.IAuthenticator
	now    func() time.Time
	logger logger.Logger
}

var _ IAdminAuthUseCase = (*AdminAuthUseCase)(nil)

func NewAdminAuthUseCase(auth interfaces.IAuthenticator, log logger.Logger) *AdminAuthUseCase {
	return &AdminAuthUseCase{auth: auth, now: time.Now, logger: log}
}

func (u *AdminAuthUseCase) Login(ctx context.Context, email, password string) (entities.AdminSession, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.AdminSession{}, interfaces.ErrInvalidCredentials
	}
	if err := u.auth.Authenticate(ctx, email, password); err != nil {
		if errors.Is(err, interfaces.ErrInvalidCredentials) {
			u.logger.Warn("[admin][usecase] login rejected", zap.String("email", email))
		}
		return entities.AdminSession{}, err
	}
	u.logger.Info("[admin][usecase] login accepted", zap.String("email", email))
	return entities.AdminSession{Authenticated: true, Email: email, LoggedInAt: u.now().UTC()}, nil
}
