package jwt

import (
	"errors"

	"rentmarket/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims mirror what the external identity provider signs into access tokens.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 tokens issued by the identity provider. This
// service never issues tokens itself.
type Verifier struct {
	secretKey []byte
}

func NewVerifier(secretKey string) *Verifier {
	return &Verifier{secretKey: []byte(secretKey)}
}

func (v *Verifier) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SubjectValidator adapts Verifier to the (subject, role) shape the auth
// middleware consumes.
type SubjectValidator struct {
	verifier *Verifier
}

func NewSubjectValidator(secretKey string) *SubjectValidator {
	return &SubjectValidator{verifier: NewVerifier(secretKey)}
}

func (s *SubjectValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := s.verifier.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrInvalidToken
	}
	return claims.UserID, role, nil
}

// SignForTest issues a token the way the identity provider would. Test use only.
func SignForTest(secretKey string, userID uuid.UUID, role user.Role) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
