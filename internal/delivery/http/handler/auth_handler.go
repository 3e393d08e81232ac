package handler

import (
	"net/http"

	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/delivery/http/middleware"
	"clinica-api/internal/usecase"
	"clinica-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	log         *logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		log:         log,
	}
}

// Login handles user login
// @Summary Login user
// @Description Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 422 {object} response.ValidationResponse
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, tokens)
}

// Logout handles user logout
// @Summary Logout user
// @Description Revoke the token used for this request
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.MessageResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	tokenID, hasToken := middleware.GetTokenIDFromContext(r.Context())
	if !ok || !hasToken {
		response.Unauthenticated(w)
		return
	}

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID); err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Message(w, http.StatusOK, "Successfully logged out.")
}

// GetCurrentUser handles getting current user info
// @Summary Get current user
// @Description Get authenticated user information
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} response.MessageResponse
// @Router /user [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthenticated(w)
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, user)
}
