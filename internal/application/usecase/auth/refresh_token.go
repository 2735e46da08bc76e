package auth

import (
	"context"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// RefreshTokenInput contains the refresh token to exchange.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput contains the new token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase exchanges a valid refresh token for a fresh pair.
// The used token is revoked, so every refresh token works exactly once.
type RefreshTokenUseCase struct {
	employeeRepo adapter.EmployeeRepository
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase.
func NewRefreshTokenUseCase(employeeRepo adapter.EmployeeRepository, tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		employeeRepo: employeeRepo,
		tokenService: tokenService,
	}
}

// Execute validates and rotates the refresh token.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired refresh token",
			domainerror.ErrInvalidToken,
		)
	}

	valid, err := uc.tokenService.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeTokenRevoked,
			"refresh token has been revoked",
			domainerror.ErrTokenRevoked,
		)
	}

	employee, err := uc.employeeRepo.FindByID(ctx, claims.EmployeeID)
	if err != nil {
		return nil, err
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, err
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, employee)
	if err != nil {
		return nil, err
	}

	return &RefreshTokenOutput{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// LogoutInput contains the refresh token to revoke.
type LogoutInput struct {
	RefreshToken string
}

// LogoutUseCase revokes a refresh token.
type LogoutUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUseCase creates a new LogoutUseCase.
func NewLogoutUseCase(tokenService adapter.TokenService) *LogoutUseCase {
	return &LogoutUseCase{tokenService: tokenService}
}

// Execute revokes the refresh token. Revoking an already revoked or
// unknown token is not an error.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) error {
	if input.RefreshToken == "" {
		return nil
	}
	return uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)
}
