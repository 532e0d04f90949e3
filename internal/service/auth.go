package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gunsmith-backend/internal/model"
	"gunsmith-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username or email already exists")
	ErrBanned             = errors.New("account is banned")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidUsername    = errors.New("username must be 3-32 letters, digits, _ or -")
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 30 * 24 * time.Hour

	// Every new account starts with enough credits for a handful of
	// low-tier parts and one starter frame on the bench.
	startingCredits   = 500
	starterWeaponName = "Training Rifle"
)

type AuthService struct {
	playerRepo  *repository.PlayerRepository
	sessionRepo *repository.SessionRepository
	armorySvc   *ArmoryService
	jwtSecret   []byte
}

func NewAuthService(playerRepo *repository.PlayerRepository, sessionRepo *repository.SessionRepository, armorySvc *ArmoryService, jwtSecret string) *AuthService {
	return &AuthService{
		playerRepo:  playerRepo,
		sessionRepo: sessionRepo,
		armorySvc:   armorySvc,
		jwtSecret:   []byte(jwtSecret),
	}
}

// isValidUsername accepts 3-32 characters from [a-zA-Z0-9_-]; usernames
// surface in Discord embeds and shop notifications, so no whitespace or
// markup characters.
func isValidUsername(name string) bool {
	if len(name) < 3 || len(name) > 32 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// Register creates the account with its starting balance and puts a
// bare starter weapon on the bench so the shop's buy flow has an active
// weapon to install into from the first session.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if !isValidUsername(req.Username) {
		return nil, ErrInvalidUsername
	}
	if len(req.Password) < 6 {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	player, err := s.playerRepo.Create(ctx, req.Username, req.Email, string(hash), startingCredits)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "unique") {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create player: %w", err)
	}

	// Best-effort: a failed starter weapon must not strand the account;
	// the player can still create one through the armory.
	if _, err := s.armorySvc.Create(ctx, player.ID, starterWeaponName); err != nil {
		log.Printf("[auth] starter weapon for %s failed: %v", player.Username, err)
	}

	tokens, err := s.generateTokenPair(ctx, player.ID, player.Username)
	if err != nil {
		return nil, err
	}

	_ = s.playerRepo.UpdateLoginTime(ctx, player.ID)

	return &model.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Player:       player,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	player, err := s.playerRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if player.IsBanned {
		return nil, ErrBanned
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokenPair(ctx, player.ID, player.Username)
	if err != nil {
		return nil, err
	}

	_ = s.playerRepo.UpdateLoginTime(ctx, player.ID)

	return &model.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Player:       player,
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	tokenHash := hashToken(refreshToken)

	playerID, err := s.sessionRepo.ValidateRefreshToken(ctx, tokenHash)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// Rotate: the presented token is spent either way.
	_ = s.sessionRepo.RevokeRefreshToken(ctx, tokenHash)

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.IsBanned {
		return nil, ErrBanned
	}

	return s.generateTokenPair(ctx, playerID, player.Username)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.sessionRepo.RevokeRefreshToken(ctx, hashToken(refreshToken))
}

func (s *AuthService) ValidateAccessToken(tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", ErrInvalidToken
	}

	playerID, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	if playerID == "" {
		return "", "", ErrInvalidToken
	}

	return playerID, username, nil
}

func (s *AuthService) generateTokenPair(ctx context.Context, playerID, username string) (*model.TokenPair, error) {
	now := time.Now()
	accessClaims := jwt.MapClaims{
		"sub":      playerID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTokenDuration).Unix(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessStr, err := accessToken.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshBytes := make([]byte, 32)
	if _, err := rand.Read(refreshBytes); err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	refreshStr := hex.EncodeToString(refreshBytes)

	// Only the hash is stored server-side.
	expiresAt := now.Add(refreshTokenDuration)
	if err := s.sessionRepo.StoreRefreshToken(ctx, playerID, hashToken(refreshStr), expiresAt); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &model.TokenPair{
		AccessToken:  accessStr,
		RefreshToken: refreshStr,
	}, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
