package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	store  repository.Store
	tokens security.TokenManager
}

func NewAuthService(store repository.Store, tokens security.TokenManager) AuthService {
	return &authService{store: store, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, *AuthTokens, error) {
	user, err := s.createUser(ctx, s.store, name, email, password, domain.UserRoleAdmin)
	if err != nil {
		return nil, nil, err
	}
	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// RegisterCustomer creates the user account and its linked customer profile
// in one transaction so a failed profile insert never leaves an orphan login.
func (s *authService) RegisterCustomer(ctx context.Context, customer *domain.Customer, password string) (*domain.User, *AuthTokens, error) {
	var user *domain.User
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		name := customer.FirstName + " " + customer.LastName
		var err error
		user, err = s.createUser(ctx, tx, name, customer.Email, password, domain.UserRoleCustomer)
		if err != nil {
			return err
		}
		customer.UserID = &user.ID
		return tx.Customers().Create(ctx, customer)
	})
	if err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, *AuthTokens, error) {
	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil, domain.InvalidInput("invalid email or password")
		}
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.InvalidInput("invalid email or password")
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, domain.InvalidInput("invalid refresh token")
	}
	if claims.Type != security.TokenTypeRefresh {
		return nil, domain.InvalidInput("invalid refresh token")
	}

	user, err := s.store.Users().GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) createUser(ctx context.Context, store repository.Store, name, email, password string, role domain.UserRole) (*domain.User, error) {
	if len(password) < 8 {
		return nil, domain.InvalidInput("password must be at least 8 characters")
	}
	if _, err := store.Users().GetByEmail(ctx, email); err == nil {
		return nil, domain.Conflict("email already registered")
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
	if err := store.Users().Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) issueTokens(user *domain.User) (*AuthTokens, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}
