package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	Secret string
}

func SetupAuth(s string) Auth {
	return Auth{
		Secret: s,
	}
}

func (a Auth) GenerateToken(userID uint, email, role string) (string, error) {
	if userID == 0 || email == "" || role == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now().Unix()
	exp := time.Now().Add(24 * time.Hour).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"iat":     now,
		"exp":     exp,
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}

	return tokenStr, nil
}

// VerifyToken parses "Bearer <token>" or a bare token and returns the typed
// principal the middleware places in the request context.
func (a Auth) VerifyToken(tokenString string) (dto.AuthPrincipal, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return dto.AuthPrincipal{}, errors.New("missing token")
	}

	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return dto.AuthPrincipal{}, errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return dto.AuthPrincipal{}, errors.New("token parse error")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return dto.AuthPrincipal{}, errors.New("invalid token claims")
	}

	expAny, ok := claims["exp"]
	if !ok {
		return dto.AuthPrincipal{}, errors.New("missing expiry")
	}
	expFloat, ok := expAny.(float64)
	if !ok {
		return dto.AuthPrincipal{}, errors.New("invalid expiry type")
	}
	if float64(time.Now().Unix()) > expFloat {
		return dto.AuthPrincipal{}, errors.New("token expired")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return dto.AuthPrincipal{}, errors.New("invalid user_id claim")
	}
	email, ok := claims["email"].(string)
	if !ok {
		return dto.AuthPrincipal{}, errors.New("invalid email claim")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return dto.AuthPrincipal{}, errors.New("invalid role claim")
	}

	return dto.AuthPrincipal{
		UserID: uint(userID),
		Email:  email,
		Role:   role,
		Expiry: expFloat,
	}, nil
}

// GetCurrentUser reads the principal the auth middleware stored. Business
// code never touches raw claims or other ambient state.
func (a Auth) GetCurrentUser(ctx *fiber.Ctx) (dto.AuthPrincipal, error) {
	u := ctx.Locals("principal")
	principal, ok := u.(dto.AuthPrincipal)
	if !ok {
		return dto.AuthPrincipal{}, errors.New("missing auth principal in context")
	}
	return principal, nil
}

func (a Auth) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("failed to hash password")
	}
	return string(hashed), nil
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(plain),
	); err != nil {
		return errors.New("invalid email or password")
	}
	return nil
}
