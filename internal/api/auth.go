package api

import (
	"errors"
	"net/http" // HTTP status codes

	"github.com/daryan97/bobatea/internal/domain"  // Importing domain models
	"github.com/daryan97/bobatea/internal/session" // Session cookie manager
	"github.com/daryan97/bobatea/internal/store"   // Credential store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Request structs. Forms bind explicitly so malformed input becomes a
// validation failure before any business logic runs.
type registerForm struct {
	Username     string `form:"username" binding:"required"` // Username must be provided
	Password     string `form:"password" binding:"required"` // Password must be provided
	Name         string `form:"name"`                        // Optional profile fields
	Contact      string `form:"contact"`
	EmailAddress string `form:"email_address"`
	Address      string `form:"address"`
	PostalCode   string `form:"postal_code"`
}

// Request struct for login
type loginForm struct {
	Username string `form:"username" binding:"required"` // Username must be provided
	Password string `form:"password" binding:"required"` // Password must be provided
}

// RegisterPageHandler renders the registration form
func RegisterPageHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, sessions, "register.html", gin.H{})
	}
}

// RegisterHandler creates a new user account. Success sends the client to
// the login page; registration never logs the user in directly.
func RegisterHandler(users *store.Store, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form registerForm
		if err := c.ShouldBind(&form); err != nil {
			sessions.Flash(c, "Username and password are required.")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		user := domain.User{
			Username:     form.Username,
			Password:     form.Password,
			Name:         form.Name,
			Contact:      form.Contact,
			EmailAddress: form.EmailAddress,
			Address:      form.Address,
			PostalCode:   form.PostalCode,
		}
		if err := users.Create(&user); err != nil {
			if errors.Is(err, domain.ErrDuplicateUsername) {
				sessions.Flash(c, "Username already exists! Try another.")
				c.Redirect(http.StatusFound, "/register")
				return
			}
			logrus.Errorf("register: %v", err)
			serverError(c)
			return
		}
		sessions.Flash(c, "Account created successfully! Please log in.")
		c.Redirect(http.StatusFound, "/login")
	}
}

// LoginPageHandler renders the login form
func LoginPageHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, sessions, "login.html", gin.H{})
	}
}

// LoginHandler verifies credentials and establishes the session. A match
// redirects to the menu; a mismatch re-renders the form with a message.
func LoginHandler(users *store.Store, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form loginForm
		if err := c.ShouldBind(&form); err != nil {
			render(c, sessions, "login.html", gin.H{"Flash": "Username and password are required."})
			return
		}
		user, err := users.Verify(form.Username, form.Password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				logrus.Warnf("failed login for %q", form.Username)
				render(c, sessions, "login.html", gin.H{"Flash": "Invalid username or password!"})
				return
			}
			logrus.Errorf("login: %v", err)
			serverError(c)
			return
		}
		if err := sessions.Login(c, user.Username); err != nil {
			logrus.Errorf("session login: %v", err)
			serverError(c)
			return
		}
		sessions.Flash(c, "Login successful!")
		c.Redirect(http.StatusFound, "/menu")
	}
}

// LogoutHandler clears the session and returns the client to the landing
// page. Logging out while anonymous is harmless.
func LogoutHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.Logout(c)
		sessions.Flash(c, "You have been logged out.")
		c.Redirect(http.StatusFound, "/")
	}
}
