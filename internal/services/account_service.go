package services

import (
	"context"
	"log"
	"time"

	"serenely/internal/models/db_models"
	"serenely/internal/models/request_models"
	"serenely/internal/repositories"
	"serenely/pkg/utils"
)

const (
	minPasswordLength = 8
	verificationTTL   = 24 * time.Hour
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
}

type AccountService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.VerificationTokenRepository
	mail      IMailService
}

func NewAccountService(userRepo repositories.UserRepository, tokenRepo repositories.VerificationTokenRepository, mail IMailService) AccountServiceInterface {
	return &AccountService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mail:      mail,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	if request.DisplayName == "" || request.Email == "" || request.Password == "" {
		return utils.ErrMissingFields
	}
	if len(request.Password) < minPasswordLength {
		return utils.ErrPasswordTooShort
	}

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleMember,
	}
	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		return utils.ErrDatabaseError
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.tokenRepo.Insert(ctx, &db_models.VerificationToken{
		Token:     token,
		Email:     request.Email,
		ExpiresAt: time.Now().Add(verificationTTL).Unix(),
	}); err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.mail.SendMailToVerifyEmail(request.Email, request.DisplayName, token); err != nil {
		// account and token exist; the user can be re-sent a link later
		log.Printf("Error sending verification mail to %s: %v", request.Email, err)
		return utils.ErrMailDelivery
	}

	return nil
}

func (a *AccountService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return utils.ErrMissingFields
	}

	vt, err := a.tokenRepo.FindByToken(ctx, token)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if vt == nil {
		return utils.ErrInvalidToken
	}

	if time.Now().Unix() > vt.ExpiresAt {
		if err := a.tokenRepo.Delete(ctx, token); err != nil {
			return utils.ErrDatabaseError
		}
		return utils.ErrTokenExpired
	}

	if err := a.userRepo.MarkEmailVerified(ctx, vt.Email); err != nil {
		return utils.ErrDatabaseError
	}

	return a.tokenRepo.Delete(ctx, token)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	if !user.IsVerified() {
		return "", utils.ErrEmailNotVerified
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}
