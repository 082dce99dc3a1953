package controllers

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vd437/quick-cash-control/i18n"
	"github.com/vd437/quick-cash-control/models"
	"github.com/vd437/quick-cash-control/store"
	"github.com/vd437/quick-cash-control/utils"
)

// AuthController handles login, registration and the email-code password
// recovery flow. Verification codes live in memory and expire quickly.
type AuthController struct {
	Store  store.Store
	Mailer *utils.Mailer

	mu     sync.Mutex
	codes  map[string]string
	expiry map[string]time.Time
}

func NewAuthController(s store.Store, mailer *utils.Mailer) *AuthController {
	return &AuthController{
		Store:  s,
		Mailer: mailer,
		codes:  make(map[string]string),
		expiry: make(map[string]time.Time),
	}
}

func (a *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := a.Store.FindUserByEmail(ctx, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if user == nil || !utils.VerifyPassword(user.Password, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T("loginError")})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.T("loginSuccess"),
		"token":   token,
		"user":    user,
	})
}

func (a *AuthController) Register(c *gin.Context) {
	var input models.NewUser
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Role == "" {
		input.Role = models.RoleCashier
	}
	if input.Role != models.RoleAdmin && input.Role != models.RoleCashier {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role: " + input.Role})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The store accepts duplicates as-is; uniqueness is enforced here.
	existing, err := a.Store.FindUserByEmail(ctx, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": i18n.T("emailExists")})
		return
	}

	user, err := a.Store.CreateUser(ctx, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": i18n.T("registerSuccess"),
		"token":   token,
		"user":    user,
	})
}

// RequestPasswordReset emails a 6-digit verification code.
func (a *AuthController) RequestPasswordReset(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := a.Store.FindUserByEmail(ctx, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	code := generateVerificationCode()
	a.mu.Lock()
	a.codes[input.Email] = code
	a.expiry[input.Email] = time.Now().Add(10 * time.Minute)
	a.mu.Unlock()

	body := fmt.Sprintf("Your verification code is: %s\nIt expires in 10 minutes.", code)
	if err := a.Mailer.Send(input.Email, "Password reset code", body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

func (a *AuthController) VerifyCode(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !a.codeValid(input.Email, input.Code) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Code verified"})
}

func (a *AuthController) ResetPassword(c *gin.Context) {
	var input struct {
		Email       string `json:"email" binding:"required"`
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"newpassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !a.codeValid(input.Email, input.Code) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired code"})
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	updated, err := a.Store.UpdateUserPassword(ctx, input.Email, hashed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating password"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	a.mu.Lock()
	delete(a.codes, input.Email)
	delete(a.expiry, input.Email)
	a.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

func (a *AuthController) codeValid(email, code string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	stored, ok := a.codes[email]
	return ok && stored == code && time.Now().Before(a.expiry[email])
}

func generateVerificationCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
