package handler

import (
	"net/http"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/service"
	"loveacts-service/internal/middleware"

	"github.com/sirupsen/logrus"
)

type authResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	User        *entity.UserResponse `json:"user"`
}

func newAuthResponse(res *service.AuthResult) authResponse {
	return authResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
		User:        res.User.ToResponse(),
	}
}

// AuthHandler handles registration, login and the caller's own profile
type AuthHandler struct {
	authService service.AuthService
	log         logrus.FieldLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// Register handles user registration
// @Summary Register new user
// @Description Create an account with a fresh partner code and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string} true "Registration request"
// @Success 200 {object} object{access_token=string,token_type=string,user=entity.UserResponse}
// @Failure 400 {object} object{error=string,detail=string}
// @Failure 500 {object} object{error=string,detail=string}
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.authService.Register(r.Context(), &entity.UserCreate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, newAuthResponse(res))
}

// Login handles user authentication
// @Summary User login
// @Description Authenticate by email and password and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{access_token=string,token_type=string,user=entity.UserResponse}
// @Failure 400 {object} object{error=string,detail=string}
// @Failure 401 {object} object{error=string,detail=string}
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, newAuthResponse(res))
}

// Me returns the caller's profile
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.UserResponse
// @Failure 401 {object} object{error=string,detail=string}
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Me(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, user.ToResponse())
}

// Logout revokes the caller's session
// @Summary User logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=string,detail=string}
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), middleware.GetIdentity(r)); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Logout successful"})
}
