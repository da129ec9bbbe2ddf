package services

import (
	"context"
	"strconv"
	"time"

	"merchshop_server/database"
	"merchshop_server/lib"
	"merchshop_server/structs"
	"merchshop_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB, cacheService *CacheService) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: cacheService,
	}
}

func (as *AuthService) Register(ctx context.Context, req *structs.RegisterRequest) (*tables.User, error) {
	startTime := time.Now()

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	passwordHash, err := lib.HashPassword(req.Password, as.cfg.Auth.BcryptCost)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}

	user := &tables.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MiddleName:   req.MiddleName,
		DateOfBirth:  dob,
		Phone:        req.Phone,
		Email:        req.Email,
		GDPRConsent:  req.GDPRConsent,
		PasswordHash: passwordHash,
	}

	user, err = database.Query[tables.User](as.db).Insert(ctx, user)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		// Unique violations are user error, everything else is ours
		if lib.IsUniqueViolation(mappedErr) {
			as.logger.Warn("Registration failed - duplicate email",
				gecho.Field("email", req.Email),
			)
		} else {
			as.logger.Error("Database error during registration",
				gecho.Field("error", mappedErr),
				gecho.Field("email", req.Email),
			)
		}

		return nil, mappedErr
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User registered successfully", gecho.Field("user_id", user.ID), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	user.PasswordHash = ""

	return user, nil
}

// CheckCredentials compares a login attempt against the loaded user row. The
// returned error is the same sentinel for an unknown user and a wrong
// password so responses cannot be used to probe which emails are registered.
func CheckCredentials(user *tables.User, password string) error {
	if user == nil {
		return lib.ErrInvalidCredentials
	}
	if !lib.VerifyPassword(user.PasswordHash, password) {
		return lib.ErrInvalidCredentials
	}
	return nil
}

// Login authenticates a user and issues a fresh token pair. The error for an
// unknown email and a wrong password is identical on purpose.
func (as *AuthService) Login(ctx context.Context, req *structs.LoginRequest) (*structs.AuthResponse, error) {
	startTime := time.Now()

	user, err := database.Query[tables.User](as.db).Where("email", req.Email).First(ctx)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		as.logger.Debug("Database query during login",
			gecho.Field("identifier", req.Email),
			gecho.Field("error_detail", lib.GetDetailForLogging(mappedErr)),
		)

		if !lib.IsNotFound(mappedErr) {
			as.logger.Error("Unexpected database error during login",
				gecho.Field("error", mappedErr),
			)
		}

		return nil, lib.ErrInvalidCredentials
	}

	if err := CheckCredentials(user, req.Password); err != nil {
		as.logger.Debug("Rejected login attempt", gecho.Field("identifier", req.Email))
		return nil, err
	}

	resp, err := as.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User logged in successfully", gecho.Field("user_id", user.ID), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	// Cache the user asynchronously, login latency should not depend on redis
	go func() {
		user.PasswordHash = ""
		if cacheErr := as.cacheService.SetUserInCache(user); cacheErr != nil {
			as.logger.Warn("Failed to set user in cache after login", gecho.Field("error", cacheErr), gecho.Field("user_id", user.ID))
		}
	}()

	return resp, nil
}

// Refresh rotates the token pair. The access token is parsed without expiry
// validation to recover the user id; the opaque refresh token must match the
// one stored on the user row and must not be expired.
func (as *AuthService) Refresh(ctx context.Context, req *structs.RefreshRequest) (*structs.AuthResponse, error) {
	claims, err := lib.ParseExpiredToken(req.AccessToken, as.cfg.Auth.AccessTokenSecret)
	if err != nil {
		as.logger.Debug("Failed to parse access token during refresh", gecho.Field("error", err))
		return nil, lib.ErrInvalidToken
	}

	user, err := database.Query[tables.User](as.db).Where("id", claims.Sub).First(ctx)
	if err != nil {
		as.logger.Error("Failed to load user during refresh", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrInvalidToken
	}

	if user.RefreshToken == "" || user.RefreshToken != req.RefreshToken {
		as.logger.Warn("Refresh token mismatch", gecho.Field("user_id", user.ID))
		return nil, lib.ErrInvalidToken
	}

	if user.RefreshTokenExpiry == nil || time.Now().After(*user.RefreshTokenExpiry) {
		as.logger.Debug("Refresh token expired", gecho.Field("user_id", user.ID))
		return nil, lib.ErrExpiredToken
	}

	return as.issueTokens(ctx, user)
}

// issueTokens generates an access token and a new opaque refresh token and
// persists the refresh token on the user row.
func (as *AuthService) issueTokens(ctx context.Context, user *tables.User) (*structs.AuthResponse, error) {
	accessToken, err := as.GenerateAccessToken(user)
	if err != nil {
		as.logger.Error("Failed to generate access token", gecho.Field("error", err), gecho.Field("user_id", user.ID))
		return nil, err
	}

	refreshToken, err := lib.GenerateRandomToken()
	if err != nil {
		as.logger.Error("Failed to generate refresh token", gecho.Field("error", err), gecho.Field("user_id", user.ID))
		return nil, err
	}

	expiry := time.Now().Add(as.cfg.Auth.RefreshTokenExpiry)
	updates := map[string]any{
		"refresh_token":        refreshToken,
		"refresh_token_expiry": expiry,
	}
	if _, err := database.Query[tables.User](as.db).Where("id", user.ID).Update(ctx, updates); err != nil {
		as.logger.Error("Failed to persist refresh token", gecho.Field("error", err), gecho.Field("user_id", user.ID))
		return nil, lib.MapPgError(err)
	}

	return &structs.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		UserName:     user.FullName(),
	}, nil
}

// GenerateAccessToken generates a JWT access token for the given user
func (as *AuthService) GenerateAccessToken(user *tables.User) (string, error) {
	secret := as.cfg.Auth.AccessTokenSecret

	now := time.Now()
	exp := now.Add(as.cfg.Auth.AccessTokenExpiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
		"jti":   uuid.New().String(),
	})
	return token.SignedString([]byte(secret))
}

func (as *AuthService) GetUserByID(ctx context.Context, userID int64) (*tables.User, error) {
	// Try cache first
	cachedUser, err := as.cacheService.GetUserFromCache(userID)
	if err != nil {
		as.logger.Warn("Failed to get user from cache", gecho.Field("error", err), gecho.Field("user_id", userID))
	} else if cachedUser != nil {
		as.logger.Debug("User retrieved from cache", gecho.Field("user_id", userID))
		return cachedUser, nil
	}

	user, err := database.Query[tables.User](as.db).Where("id", userID).First(ctx)
	if err != nil {
		as.logger.Error("Failed to find user by ID", gecho.Field("error", err), gecho.Field("user_id", userID))
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}

	go func() {
		if err := as.cacheService.SetUserInCache(user); err != nil {
			as.logger.Warn("Failed to cache user after DB fetch", gecho.Field("error", err), gecho.Field("user_id", userID))
		}
	}()

	return user, nil
}

// Profile returns the non-secret fields of the user
func (as *AuthService) Profile(ctx context.Context, userID int64) (*structs.ProfileResponse, error) {
	user, err := as.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &structs.ProfileResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		MiddleName:  user.MiddleName,
		DateOfBirth: user.DateOfBirth,
		Phone:       user.Phone,
		Email:       user.Email,
		GDPRConsent: user.GDPRConsent,
	}, nil
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}
