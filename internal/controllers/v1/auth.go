package v1

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/centsible/backend/internal/auth"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/mail"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthController holds the collaborators of the authentication endpoints.
type AuthController struct {
	Tokens  *auth.TokenManager
	Mail    mail.Sender
	BaseURL string
}

// RegisterRoutes registers the authentication routes with the RouterGroup
// that is passed. These routes are the only ones that do not require a
// session token.
func (co AuthController) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)

	r.OPTIONS("/forgot-password", httputil.OptionsPost)
	r.POST("/forgot-password", co.ForgotPassword)

	r.OPTIONS("/reset-password", httputil.OptionsPost)
	r.POST("/reset-password", co.ResetPassword)
}

type RegisterEditable struct {
	Username string `json:"username" example:"ada"`
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type UserResponse struct {
	Data  *models.User `json:"data"`  // The registered user
	Error *string      `json:"error"` // The error, if any occurred
}

// @Summary		Register
// @Description	Creates a new user account
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/auth/register [post]
func (co AuthController) Register(c *gin.Context) {
	var editable RegisterEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	// Check for collisions before hashing, the duplicate message is more
	// helpful than a constraint violation. The unique indexes still
	// backstop concurrent registrations.
	err = models.DB.First(&models.User{}, "username = ?", strings.TrimSpace(editable.Username)).Error
	if err == nil {
		e := models.ErrUsernameTaken.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &e})
		return
	}

	err = models.DB.First(&models.User{}, "email = ?", strings.ToLower(strings.TrimSpace(editable.Email))).Error
	if err == nil {
		e := models.ErrEmailTaken.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &e})
		return
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	user := models.User{
		Username:     editable.Username,
		Email:        editable.Email,
		PasswordHash: hash,
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: &user})
}

type LoginEditable struct {
	Username string `json:"username" example:"ada"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type Login struct {
	Token string      `json:"token"` // The session token for the Authorization header
	User  models.User `json:"user"`
}

type LoginResponse struct {
	Data  *Login  `json:"data"`
	Error *string `json:"error"`
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a session token
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co AuthController) Login(c *gin.Context) {
	var editable LoginEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	var user models.User
	err = models.DB.First(&user, "username = ?", strings.TrimSpace(editable.Username)).Error
	if err != nil {
		// An unknown username reads exactly like a wrong password
		e := auth.ErrInvalidCredentials.Error()
		c.JSON(status(auth.ErrInvalidCredentials), LoginResponse{Error: &e})
		return
	}

	err = auth.CheckPassword(user.PasswordHash, editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	token, err := co.Tokens.NewSession(user.ID)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Data: &Login{Token: token, User: user}})
}

type ForgotPasswordEditable struct {
	Email string `json:"email" example:"ada@example.com"`
}

type MessageResponse struct {
	Data  *string `json:"data"`  // A message about the result
	Error *string `json:"error"` // The error, if any occurred
}

// @Summary		Request password reset
// @Description	Sends a password reset link if an account with the email exists. The response does not reveal whether it does.
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	MessageResponse
// @Failure		500		{object}	MessageResponse
// @Param			email	body		ForgotPasswordEditable	true	"Email"
// @Router			/v1/auth/forgot-password [post]
func (co AuthController) ForgotPassword(c *gin.Context) {
	var editable ForgotPasswordEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{Error: &e})
		return
	}

	neutral := "if an account exists with that email, reset instructions have been sent"

	var user models.User
	err = models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(editable.Email))).Error
	if err != nil {
		c.JSON(http.StatusOK, MessageResponse{Data: &neutral})
		return
	}

	token, err := co.Tokens.NewPasswordReset(user.Email)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, MessageResponse{Error: &e})
		return
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", co.BaseURL, url.QueryEscape(token))

	err = co.Mail.SendPasswordReset(user.Email, user.Username, resetURL)
	if err != nil {
		// Outbound mail failure must not take the request down
		log.Error().Err(err).Msg("password reset mail failed")
		e := errMailNotSent.Error()
		c.JSON(http.StatusInternalServerError, MessageResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Data: &neutral})
}

type ResetPasswordEditable struct {
	Token    string `json:"token"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// @Summary		Reset password
// @Description	Sets a new password using a reset token from the password reset mail
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	MessageResponse
// @Failure		401		{object}	MessageResponse
// @Failure		404		{object}	MessageResponse
// @Param			reset	body		ResetPasswordEditable	true	"Reset token and new password"
// @Router			/v1/auth/reset-password [post]
func (co AuthController) ResetPassword(c *gin.Context) {
	var editable ResetPasswordEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{Error: &e})
		return
	}

	email, err := co.Tokens.ParsePasswordReset(editable.Token)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{Error: &e})
		return
	}

	var user models.User
	err = models.DB.First(&user, "email = ?", email).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{Error: &e})
		return
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{Error: &e})
		return
	}

	err = models.DB.Model(&user).Update("password_hash", hash).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{Error: &e})
		return
	}

	message := "your password has been reset successfully"
	c.JSON(http.StatusOK, MessageResponse{Data: &message})
}
