package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/middleware"
	"github.com/caderh/caderh-api/internal/modules/serializer"
	"github.com/caderh/caderh-api/internal/modules/service"
)

type AuthHandler struct {
	svc service.UserService
	log *zap.Logger
}

func NewAuthHandler(s service.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: s, log: log}
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PasswordReq struct {
	Password string `json:"password"`
}

type EmailReq struct {
	Email string `json:"email"`
}

type RecoverVerifyReq struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type RecoverPasswordReq struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type ResetTokenResp struct {
	ID string `json:"id"`
}

// Login godoc
//
//	@Summary	Log in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		handler.LoginReq	true	"Credentials"
//	@Success	200		{object}	service.LoginOutput
//	@Failure	400		{object}	serializer.Message
//	@Router		/api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, service.MsgBadCredentials)
		return
	}
	out, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// NewPassword godoc
//
//	@Summary	Set own password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.PasswordReq	true	"New password"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/auth/new-pass [post]
func (h *AuthHandler) NewPassword(c *gin.Context) {
	req := PasswordReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, service.MsgBadPassword)
		return
	}
	if err := h.svc.ChangePassword(c.Request.Context(), middleware.UserID(c), req.Password); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// Recover godoc
//
//	@Summary		Start password recovery
//	@Description	Always answers ok, whether or not the address is known
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.EmailReq	true	"Account email"
//	@Success		200	{object}	serializer.OKResponse
//	@Router			/api/auth/recover [post]
func (h *AuthHandler) Recover(c *gin.Context) {
	req := EmailReq{}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.StartRecovery(c.Request.Context(), req.Email); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// RecoverVerify godoc
//
//	@Summary	Exchange a recovery code for a reset token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		handler.RecoverVerifyReq	true	"Email and code"
//	@Success	200		{object}	handler.ResetTokenResp
//	@Router		/api/auth/recover_verify [post]
func (h *AuthHandler) RecoverVerify(c *gin.Context) {
	req := RecoverVerifyReq{}
	if !bindJSON(c, &req) {
		return
	}
	tok, err := h.svc.VerifyRecovery(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ResetTokenResp{ID: tok})
}

// RecoverPassword godoc
//
//	@Summary	Reset the password with a reset token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.RecoverPasswordReq	true	"Reset token and new password"
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/auth/recover_password [post]
func (h *AuthHandler) RecoverPassword(c *gin.Context) {
	req := RecoverPasswordReq{}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.ResetPassword(c.Request.Context(), req.ID, req.Password); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// ResendVerification godoc
//
//	@Summary	Re-send the pending recovery code
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.EmailReq	true	"Account email"
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/auth/resend_verification_email [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	req := EmailReq{}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.ResendVerification(c.Request.Context(), req.Email); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}
