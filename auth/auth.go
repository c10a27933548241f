package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const PurposeSession = "session"
const PurposeActivation = "activation"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID  uint   `json:"userId"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates the HS256 tokens used for sessions and
// account activation links.
type TokenIssuer struct {
	secret        []byte
	sessionTTL    time.Duration
	activationTTL time.Duration
}

func NewTokenIssuer(secret string, sessionTTL time.Duration, activationTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:        []byte(secret),
		sessionTTL:    sessionTTL,
		activationTTL: activationTTL,
	}
}

func (i *TokenIssuer) IssueSession(userID uint) (string, error) {
	return i.issue(userID, PurposeSession, i.sessionTTL)
}

func (i *TokenIssuer) IssueActivation(userID uint) (string, error) {
	return i.issue(userID, PurposeActivation, i.activationTTL)
}

// Parse validates the signature, expiry and purpose, returning the user id
// the token was issued for.
func (i *TokenIssuer) Parse(tokenString string, purpose string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

func (i *TokenIssuer) issue(userID uint, purpose string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
