package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/xinyujieHong/CSEN174-Project/internal/app"
	"github.com/xinyujieHong/CSEN174-Project/internal/db"
	svcErr "github.com/xinyujieHong/CSEN174-Project/internal/errors"
	"github.com/xinyujieHong/CSEN174-Project/internal/repository"
	"github.com/xinyujieHong/CSEN174-Project/internal/validate"
)

// AuthContext is the explicit session value handed to the client after
// login. It replaces ambient token storage: callers thread it (or the
// token inside it) through requests, and logout simply discards it.
type AuthContext struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// Service implements signup, signin and session resolution.
type Service struct {
	appCtx *app.AppContext
	users  *repository.UserRepository
}

// NewService creates the auth service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		users:  repository.NewUserRepository(appCtx.DB),
	}
}

// SignUp registers a new account.
//
// Behavior:
//   - email and password are validated with the boundary validators;
//     rejection is a 400, never a panic
//   - duplicate emails are a 409
//   - the password is stored as a bcrypt hash
//   - a signed JWT is minted so signup doubles as login
func (s *Service) SignUp(ctx context.Context, email, password, name string) (*AuthContext, error) {
	email = strings.TrimSpace(email)
	name = validate.SanitizeInput(name, 0)

	if !validate.IsValidEmail(email) {
		return nil, svcErr.InvalidArgument("invalid email address")
	}
	if !validate.IsValidPassword(password) {
		return nil, svcErr.InvalidArgument("password must be at least 8 characters with an uppercase letter, a lowercase letter and a digit")
	}
	if name == "" {
		return nil, svcErr.InvalidArgument("name is required")
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if exists {
		return nil, svcErr.AlreadyExists("user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	user := db.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Info("user signed up", "user", user.ID)
	return s.login(&user)
}

// SignIn checks credentials and mints a fresh session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*AuthContext, error) {
	email = strings.TrimSpace(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svcErr.Unauthorized("invalid credentials")
		}
		return nil, svcErr.Map(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, svcErr.Unauthorized("invalid credentials")
	}

	s.appCtx.Logger.Debug("user signed in", "user", user.ID)
	return s.login(user)
}

// Session resolves the user behind a previously minted token.
func (s *Service) Session(ctx context.Context, userID string) (*db.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return user, nil
}

func (s *Service) login(user *db.User) (*AuthContext, error) {
	token, err := s.mintToken(user)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &AuthContext{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Token:  token,
	}, nil
}

func (s *Service) mintToken(user *db.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(s.appCtx.Cfg.Auth.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.appCtx.Cfg.Auth.JWTSecret))
}
