package services

import (
	"strings"
	"time"

	"railticket/internal/domain"
	"railticket/internal/domain/models"
	"railticket/internal/repositories"
	"railticket/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and checks credentials for the mutating API
// endpoints.
type AuthService struct {
	Users     *repositories.UserStore
	Secret    []byte
	RequestID string
}

func (s AuthService) Register(name, email, password string) (models.User, error) {
	name = utils.NormalizeSpace(name)
	email = strings.ToLower(utils.TrimOrEmpty(email))
	if name == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if email == "" || !strings.Contains(email, "@") {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "must be a valid email"}
	}
	if len(password) < 6 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "must be at least 6 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "cannot hash password", Err: err}
	}

	u := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "user",
	}
	if err := s.Users.Create(u); err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", "email="+email)
	return u, nil
}

// Login checks the password and returns a signed token plus the user.
// Wrong email and wrong password are indistinguishable to the caller.
func (s AuthService) Login(email, password string) (string, models.User, error) {
	email = strings.ToLower(utils.TrimOrEmpty(email))

	u, err := s.Users.FindByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.User{}, domain.ValidationError{Msg: "invalid email or password"}
		}
		return "", models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, domain.ValidationError{Msg: "invalid email or password"}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "cannot sign token", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", "email="+email)
	return signed, u, nil
}
