package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/wordbridge/internal/common"
	"github.com/dmitrijs2005/wordbridge/internal/server/validation"
	"github.com/gin-gonic/gin"
)

// Client-facing messages.
const (
	msgUserCreated       = "User created successfully!"
	msgAlreadyRegistered = "user already registered"
	msgCreateFailed      = "Failed to create user"
	msgBadCredentials    = "invalid username or password"
	msgInvalidPassword   = "invalid password"
)

func (s *Server) handleSignup(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, []string{"Invalid JSON body"})
		return
	}

	req, msgs := validation.ParseSignup(raw)
	if len(msgs) > 0 {
		respondError(c, http.StatusBadRequest, msgs)
		return
	}

	if _, err := s.users.Signup(ctx, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			respondError(c, http.StatusConflict, msgAlreadyRegistered)
		case errors.Is(err, common.ErrorNotAcknowledged):
			respondError(c, http.StatusInternalServerError, msgCreateFailed)
		default:
			s.logger.Error(ctx, "signup failed", "error", err)
			respondError(c, http.StatusInternalServerError, errorMessage(err))
		}
		return
	}

	respondData(c, http.StatusCreated, msgUserCreated)
}

func (s *Server) handleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, []string{"Invalid JSON body"})
		return
	}

	req, msgs := validation.ParseLogin(raw)
	if len(msgs) > 0 {
		respondError(c, http.StatusBadRequest, msgs)
		return
	}

	user, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			respondError(c, http.StatusUnauthorized, msgBadCredentials)
		case errors.Is(err, common.ErrorInvalidPassword):
			respondError(c, http.StatusUnauthorized, msgInvalidPassword)
		default:
			s.logger.Error(ctx, "login failed", "error", err)
			respondError(c, http.StatusInternalServerError, errorMessage(err))
		}
		return
	}

	respondData(c, http.StatusOK, user.Public())
}

func (s *Server) handleTranslate(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, []string{"Invalid JSON body"})
		return
	}

	req, msgs := validation.ParseTranslate(raw)
	if len(msgs) > 0 {
		respondError(c, http.StatusBadRequest, msgs)
		return
	}

	text, err := s.translator.Translate(ctx, req.Text, req.Target)
	if err != nil {
		if errors.Is(err, common.ErrorUpstream) {
			respondError(c, http.StatusBadRequest, errorMessage(err))
			return
		}
		s.logger.Error(ctx, "translate failed", "error", err)
		respondError(c, http.StatusInternalServerError, errorMessage(err))
		return
	}

	if v, ok := text.Get(); ok {
		respondData(c, http.StatusOK, v)
		return
	}
	respondData(c, http.StatusOK, nil)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
