package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vitaehq/vitae/pkg/iam/user"
	"github.com/vitaehq/vitae/pkg/kernel"
	"github.com/vitaehq/vitae/pkg/logx"
	"github.com/vitaehq/vitae/pkg/validate"
)

// AuthService implements signin/signup/logout on top of the user
// repository, password hasher, token service, and revocation store
type AuthService struct {
	userRepo    user.Repository
	passwordSvc PasswordService
	tokenSvc    TokenService
	revoker     TokenRevoker
}

func NewAuthService(
	userRepo user.Repository,
	passwordSvc PasswordService,
	tokenSvc TokenService,
	revoker TokenRevoker,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		revoker:     revoker,
	}
}

// SignIn authenticates a username/password pair and issues a bearer token
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*JWTResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Do not leak which half of the pair was wrong
		return nil, ErrInvalidCredentials()
	}

	if !s.passwordSvc.Verify(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials()
	}

	token, err := s.tokenSvc.GenerateAccessToken(u.ID, u.Username, u.Email)
	if err != nil {
		return nil, err
	}

	logx.Infof("User %s signed in", u.Username)

	return &JWTResponse{
		Token:    token,
		Type:     "Bearer",
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}, nil
}

// SignUp validates and registers a new account. The confirmation check
// runs with the other field validations, before any repository access.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*MessageResponse, error) {
	if err := s.validateSignUp(req); err != nil {
		return nil, err
	}

	taken, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, user.ErrUsernameTaken()
	}

	inUse, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, user.ErrEmailInUse()
	}

	hash, err := s.passwordSvc.Hash(req.Password)
	if err != nil {
		return nil, user.ErrRegistry.NewWithCause(user.CodeStorageFailure, err)
	}

	u := &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	logx.Infof("User %s registered", u.Username)

	return &MessageResponse{Message: "User registered successfully!"}, nil
}

func (s *AuthService) validateSignUp(req SignUpRequest) error {
	if err := validate.Name(req.FirstName); err != nil {
		return err
	}
	if err := validate.Name(req.LastName); err != nil {
		return err
	}
	if err := validate.Username(req.Username); err != nil {
		return err
	}
	if err := validate.Email(req.Email); err != nil {
		return err
	}
	if err := validate.Password(req.Password); err != nil {
		return err
	}
	return validate.PasswordConfirmation(req.Password, req.ConfirmPassword)
}

// Logout revokes the presented token for the remainder of its lifetime
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokenSvc.ValidateAccessToken(token)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	return s.revoker.Revoke(ctx, token, ttl)
}

// Me returns the account behind an authenticated request
func (s *AuthService) Me(ctx context.Context, userID kernel.UserID) (*MeResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &MeResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}, nil
}
