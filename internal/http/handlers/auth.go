package handlers

import (
	"net/http"

	"railticket/internal/domain"
	"railticket/internal/http/middleware"
	"railticket/internal/services"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	a := getApp()
	svc := services.AuthService{Users: a.Users, Secret: a.JWTSecret, RequestID: middleware.GetRequestID(c)}

	u, err := svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	a := getApp()
	svc := services.AuthService{Users: a.Users, Secret: a.JWTSecret, RequestID: middleware.GetRequestID(c)}

	token, u, err := svc.Login(req.Email, req.Password)
	if err != nil {
		// Bad credentials surface as 401, not 400.
		if domain.IsValidation(err) {
			respondError(c, http.StatusUnauthorized, "unauthorized", "invalid email or password", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}
