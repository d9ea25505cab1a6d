package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"business-buddy/internal/data/entity"
	"business-buddy/internal/data/store"
	"business-buddy/internal/dto/request"
	"business-buddy/internal/dto/response"
	"business-buddy/pkg/metrics"
	"business-buddy/pkg/utils"

	"go.uber.org/zap"
)

const minPasswordLength = 6

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
	ListUsers(ctx context.Context) (*response.UserListResponse, error)
}

type authService struct {
	store *store.Store
	log   *zap.Logger
}

func NewAuthService(st *store.Store, log *zap.Logger) AuthService {
	return &authService{
		store: st,
		log:   log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Presence of all required fields
	if errs := utils.ValidateStruct(req); errs != nil {
		if missing := utils.MissingFields(errs); len(missing) > 0 {
			s.log.Warn("Register validation failed", zap.Strings("missing", missing))
			metrics.CountRegistration("invalid")
			return nil, fmt.Errorf("%s", utils.MissingFieldsMessage(missing))
		}
	}

	// 2. Password policy
	if len(req.Password) < minPasswordLength {
		metrics.CountRegistration("invalid")
		return nil, fmt.Errorf("Password must be at least %d characters long", minPasswordLength)
	}

	// 3. Role must be one of the enumerated values
	if !entity.ValidUserType(req.UserType) {
		metrics.CountRegistration("invalid")
		return nil, fmt.Errorf("Invalid user type")
	}

	// 4. Email uniqueness, case-insensitive against current store contents.
	// Not transactionally safe: two racing creates on the same email can both
	// pass this check.
	existing, err := s.store.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		metrics.CountRegistration("error")
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		metrics.CountRegistration("duplicate")
		return nil, fmt.Errorf("User with this email already exists")
	}

	// 5. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		metrics.CountRegistration("error")
		return nil, fmt.Errorf("failed to process password")
	}

	user := &entity.User{
		ID:           utils.GenerateID("user"),
		Name:         strings.TrimSpace(req.Name),
		Email:        utils.NormalizeEmail(req.Email),
		PasswordHash: hashedPassword,
		UserType:     entity.UserType(req.UserType),
		CompanyName:  strings.TrimSpace(req.CompanyName),
		Phone:        strings.TrimSpace(req.Phone),
		CreatedAt:    time.Now(),
	}

	if err := s.store.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", user.Email))
		metrics.CountRegistration("error")
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("user_type", string(user.UserType)),
	)
	metrics.CountRegistration("success")

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		metrics.CountLogin("invalid")
		return nil, fmt.Errorf("Email and password are required")
	}

	user, err := s.store.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		metrics.CountLogin("error")
		return nil, fmt.Errorf("failed to find user")
	}

	// Unknown email and wrong password fail identically so the response never
	// leaks which part was wrong.
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		metrics.CountLogin("rejected")
		return nil, fmt.Errorf("Invalid email or password")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID))
		metrics.CountLogin("rejected")
		return nil, fmt.Errorf("Invalid email or password")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("user_type", string(user.UserType)),
	)
	metrics.CountLogin("success")

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ListUsers backs the debug listing endpoints. Hashes are stripped by the
// response converter.
func (s *authService) ListUsers(ctx context.Context) (*response.UserListResponse, error) {
	users, err := s.store.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	resp := response.UsersToListResponse(users)
	return &resp, nil
}
