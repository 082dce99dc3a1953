package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vd437/quick-cash-control/store"
	"github.com/vd437/quick-cash-control/utils"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := store.NewMemory(store.DemoSeed())
	// Mailer without a host: sending is a no-op, which is what tests want.
	a := NewAuthController(m, &utils.Mailer{})

	r := gin.New()
	r.POST("/login", a.Login)
	r.POST("/register", a.Register)
	r.POST("/forgot-password", a.RequestPasswordReset)
	r.POST("/verify-code", a.VerifyCode)
	r.POST("/reset-password", a.ResetPassword)
	return r
}

func TestLoginSuccess(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/login", `{"email":"admin@example.com","password":"password"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Role)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/login", `{"email":"admin@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/login", `{"email":"ghost@example.com","password":"password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginOmitsPassword(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/login", `{"email":"admin@example.com","password":"password"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"password"`)
}

func TestRegisterAndLogin(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/register",
		`{"name":"new user","email":"new@example.com","password":"secret"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		User struct {
			ID   int    `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.User.ID, "continues after the seeded users")
	assert.Equal(t, "cashier", resp.User.Role, "role defaults to cashier")

	w = doJSON(r, http.MethodPost, "/login", `{"email":"new@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/register",
		`{"name":"x","email":"admin@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/register",
		`{"name":"x","email":"x@example.com","password":"pw","role":"superuser"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyCodeRejectsUnknown(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/verify-code",
		`{"email":"admin@example.com","code":"000000"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestForgotPasswordUnknownUser(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/forgot-password", `{"email":"ghost@example.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResetPasswordFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := store.NewMemory(store.DemoSeed())
	a := NewAuthController(m, &utils.Mailer{})

	r := gin.New()
	r.POST("/forgot-password", a.RequestPasswordReset)
	r.POST("/reset-password", a.ResetPassword)
	r.POST("/login", a.Login)

	w := doJSON(r, http.MethodPost, "/forgot-password", `{"email":"cashier@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Reach into the controller for the code the mail would have carried.
	a.mu.Lock()
	code := a.codes["cashier@example.com"]
	a.mu.Unlock()
	require.NotEmpty(t, code)

	w = doJSON(r, http.MethodPost, "/reset-password",
		`{"email":"cashier@example.com","code":"`+code+`","newpassword":"fresh"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The new password is stored hashed but logs in transparently.
	w = doJSON(r, http.MethodPost, "/login", `{"email":"cashier@example.com","password":"fresh"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodPost, "/login", `{"email":"cashier@example.com","password":"password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
