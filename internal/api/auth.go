package api

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/walkingguide-web/internal/apiclient"
	"github.com/walkingguide-web/internal/modal"
	"github.com/walkingguide-web/internal/session"
	"github.com/walkingguide-web/internal/validation"
)

// formPage renders an auth form with inline errors and the submitted values
func (h *Handler) formPage(c *gin.Context, status int, name string, errs validation.Errors, values gin.H) {
	if values == nil {
		values = gin.H{}
	}
	h.render(c, status, name, gin.H{
		"Errors": errs.ByField(),
		"Values": values,
	})
}

// LoginPage handles GET /login
func (h *Handler) LoginPage(c *gin.Context) {
	if session.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	values := gin.H{"next": safePath(c.Query("next"), "")}
	if c.Query("expired") != "" {
		values["notice"] = "error.session_expired"
	} else if values["next"] != "" {
		values["notice"] = "error.login_required"
	}
	h.formPage(c, http.StatusOK, "login", nil, values)
}

// Login handles POST /login
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	next := safePath(c.PostForm("next"), "/")
	values := gin.H{"email": email, "next": next}

	resp, errs, err := h.services.Auth.Login(c.Request.Context(), email, c.PostForm("password"))
	if len(errs) > 0 {
		h.formPage(c, http.StatusUnprocessableEntity, "login", errs, values)
		return
	}
	if err != nil {
		values["error"] = "error.generic"
		status := http.StatusBadGateway
		if apiclient.IsUnauthorized(err) || apiclient.IsNotFound(err) {
			values["error"] = "error.invalid_credentials"
			status = http.StatusUnauthorized
		} else if msg := apiclient.Message(err); msg != "" {
			values["server_error"] = msg
			status = http.StatusBadRequest
		}
		h.formPage(c, status, "login", nil, values)
		return
	}

	if err := h.sessions.Login(c, resp.User, resp.Token); err != nil {
		h.log.Error().Err(err).Msg("Failed to start session")
		values["error"] = "error.generic"
		h.formPage(c, http.StatusInternalServerError, "login", nil, values)
		return
	}
	c.Redirect(http.StatusSeeOther, next)
}

// Logout handles POST /logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c); err != nil {
		h.log.Error().Err(err).Msg("Failed to end session")
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// RegisterPage handles GET /register
func (h *Handler) RegisterPage(c *gin.Context) {
	h.formPage(c, http.StatusOK, "register", nil, nil)
}

// Register handles POST /register
func (h *Handler) Register(c *gin.Context) {
	var form validation.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		h.formPage(c, http.StatusBadRequest, "register", nil, nil)
		return
	}
	values := gin.H{"full_name": form.FullName, "email": form.Email}

	errs, err := h.services.Auth.Register(c.Request.Context(), &form)
	if len(errs) > 0 {
		h.formPage(c, http.StatusUnprocessableEntity, "register", errs, values)
		return
	}
	if err != nil {
		values["error"] = "error.generic"
		values["server_error"] = apiclient.Message(err)
		h.formPage(c, http.StatusBadRequest, "register", nil, values)
		return
	}

	h.alert(c, modal.KindSuccess, "success.registered")
	c.Redirect(http.StatusSeeOther, "/verify-otp?email="+url.QueryEscape(form.Email))
}

// ForgotPasswordPage handles GET /forgot-password
func (h *Handler) ForgotPasswordPage(c *gin.Context) {
	h.formPage(c, http.StatusOK, "forgot_password", nil, nil)
}

// ForgotPassword handles POST /forgot-password
func (h *Handler) ForgotPassword(c *gin.Context) {
	email := c.PostForm("email")
	values := gin.H{"email": email}

	errs, err := h.services.Auth.ForgotPassword(c.Request.Context(), email)
	if len(errs) > 0 {
		h.formPage(c, http.StatusUnprocessableEntity, "forgot_password", errs, values)
		return
	}
	if err != nil {
		values["error"] = "error.generic"
		values["server_error"] = apiclient.Message(err)
		h.formPage(c, http.StatusBadRequest, "forgot_password", nil, values)
		return
	}

	h.alert(c, modal.KindSuccess, "success.reset_sent")
	c.Redirect(http.StatusSeeOther, "/login")
}

// ResetPasswordPage handles GET /reset-password?token=
func (h *Handler) ResetPasswordPage(c *gin.Context) {
	h.formPage(c, http.StatusOK, "reset_password", nil, gin.H{"token": c.Query("token")})
}

// ResetPassword handles POST /reset-password
func (h *Handler) ResetPassword(c *gin.Context) {
	token := c.PostForm("token")
	values := gin.H{"token": token}

	errs, err := h.services.Auth.ResetPassword(c.Request.Context(), token, c.PostForm("password"), c.PostForm("confirm_password"))
	if len(errs) > 0 {
		h.formPage(c, http.StatusUnprocessableEntity, "reset_password", errs, values)
		return
	}
	if err != nil {
		values["error"] = "error.generic"
		values["server_error"] = apiclient.Message(err)
		h.formPage(c, http.StatusBadRequest, "reset_password", nil, values)
		return
	}

	h.alert(c, modal.KindSuccess, "success.password_reset")
	c.Redirect(http.StatusSeeOther, "/login")
}

// VerifyEmail handles GET /verify-email?token=
func (h *Handler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		h.render(c, http.StatusBadRequest, "message", gin.H{"Message": "error.generic", "Kind": "error"})
		return
	}
	if err := h.services.Auth.VerifyEmail(c.Request.Context(), token); err != nil {
		h.log.Warn().Err(err).Msg("Email verification failed")
		h.render(c, http.StatusBadRequest, "message", gin.H{
			"Message":     "error.generic",
			"ServerError": apiclient.Message(err),
			"Kind":        "error",
			"Link":        "/resend-verification",
			"LinkText":    "auth.resend_verification",
		})
		return
	}
	h.render(c, http.StatusOK, "message", gin.H{
		"Message":  "success.verified",
		"Kind":     "success",
		"Link":     "/login",
		"LinkText": "nav.login",
	})
}

// ResendVerificationPage handles GET /resend-verification
func (h *Handler) ResendVerificationPage(c *gin.Context) {
	h.formPage(c, http.StatusOK, "resend_verification", nil, gin.H{"email": c.Query("email")})
}

// ResendVerification handles POST /resend-verification
func (h *Handler) ResendVerification(c *gin.Context) {
	email := c.PostForm("email")
	values := gin.H{"email": email}

	errs, err := h.services.Auth.ResendVerification(c.Request.Context(), email)
	if len(errs) > 0 {
		h.formPage(c, http.StatusUnprocessableEntity, "resend_verification", errs, values)
		return
	}
	if err != nil {
		values["error"] = "error.generic"
		values["server_error"] = apiclient.Message(err)
		h.formPage(c, http.StatusBadRequest, "resend_verification", nil, values)
		return
	}

	h.alert(c, modal.KindSuccess, "success.verification_sent")
	c.Redirect(http.StatusSeeOther, "/verify-otp?email="+url.QueryEscape(email))
}

// VerifyOTPPage handles GET /verify-otp
func (h *Handler) VerifyOTPPage(c *gin.Context) {
	h.formPage(c, http.StatusOK, "verify_otp", nil, gin.H{"email": c.Query("email")})
}

// VerifyOTP handles POST /verify-otp
func (h *Handler) VerifyOTP(c *gin.Context) {
	email := c.PostForm("email")
	values := gin.H{"email": email}

	errs, err := h.services.Auth.VerifyOTP(c.Request.Context(), email, c.PostForm("otp"))
	if len(errs) > 0 {
		h.formPage(c, http.StatusUnprocessableEntity, "verify_otp", errs, values)
		return
	}
	if err != nil {
		values["error"] = "error.generic"
		values["server_error"] = apiclient.Message(err)
		h.formPage(c, http.StatusBadRequest, "verify_otp", nil, values)
		return
	}

	h.alert(c, modal.KindSuccess, "success.verified")
	c.Redirect(http.StatusSeeOther, "/login")
}
