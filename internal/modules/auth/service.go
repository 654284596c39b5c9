package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/georgemunganga/printa-pos/internal/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveOperator   = errors.New("operator account is inactive")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims are the JWT claims issued to an operator. Subject is the user id.
type Claims struct {
	jwt.StandardClaims
	EmployeeID string `json:"eid,omitempty"`
}

// Service defines operator authentication.
type Service interface {
	Login(ctx context.Context, userID, password string) (*LoginResponse, error)
	Authenticate(token string) (Principal, error)
}

type service struct {
	repo   Repository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    *zap.Logger
}

// NewService creates an auth service signing HS256 tokens with secret.
func NewService(repo Repository, secret string, ttl time.Duration, log *zap.Logger) Service {
	return &service{repo: repo, secret: []byte(secret), ttl: ttl, now: time.Now, log: log}
}

func (s *service) Login(ctx context.Context, userID, password string) (*LoginResponse, error) {
	if validation.Blank(userID) || password == "" || len(userID) > validation.IDMaxLength {
		return nil, ErrInvalidCredentials
	}

	op, err := s.repo.GetOperator(ctx, userID)
	if errors.Is(err, ErrOperatorNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load operator: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !op.IsActive {
		return nil, ErrInactiveOperator
	}

	issued := s.now()
	expires := issued.Add(s.ttl)
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Subject:   op.UserID,
			IssuedAt:  issued.Unix(),
			ExpiresAt: expires.Unix(),
		},
		EmployeeID: op.EmployeeID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("operator logged in", zap.String("user_id", op.UserID), zap.String("jti", claims.Id))
	return &LoginResponse{Token: token, ExpiresAt: expires, Operator: *op}, nil
}

func (s *service) Authenticate(tokenString string) (Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return Principal{}, ErrInvalidToken
	}
	return Principal{UserID: claims.Subject, EmployeeID: claims.EmployeeID}, nil
}
