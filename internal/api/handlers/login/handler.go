package login

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBookingService/internal/integrations/accounts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "логин и пароль обязательны"
	msgInvalidCredentials = "неверный логин или пароль"
)

type Handler struct {
	auth   Authenticator
	logger Logger
}

func NewHandler(auth Authenticator, logger Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Login) == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	user, err := h.auth.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			h.logger.Warn("POST /auth/login - Invalid credentials: login=%s", req.Login)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /auth/login - Failed to authenticate: login=%s, error=%v", req.Login, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - User logged in: username=%s, role=%s", user.Username, user.Role)
	handlers.RespondJSON(w, http.StatusOK, FromDomainUser(user))
}
