// Package session implements the browser session: a signed JWT carried in
// an HTTP-only cookie, plus one-shot flash messages. There is no server-side
// session state.
package session

import (
	"time" // Time for token expiration

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
)

const (
	cookieName      = "bobatea_session"
	flashCookieName = "bobatea_flash"
	tokenLifetime   = 24 * time.Hour // Token expires in 24 hours
)

// Claims carried by the session token
type Claims struct {
	Username             string `json:"username"` // Authenticated username
	jwt.RegisteredClaims        // Standard JWT claims
}

// Manager issues and validates session cookies
type Manager struct {
	secret []byte
	secure bool // Set the Secure cookie attribute (production)
}

// NewManager returns a Manager signing with secret
func NewManager(secret string, secure bool) *Manager {
	return &Manager{secret: []byte(secret), secure: secure}
}

// Login associates the client with username by setting the session cookie.
// An error here means token signing failed, which is a server fault.
func (m *Manager) Login(c *gin.Context, username string) error {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}
	c.SetCookie(cookieName, token, int(tokenLifetime.Seconds()), "/", "", m.secure, true)
	return nil
}

// Logout clears the association; the client is anonymous afterwards
func (m *Manager) Logout(c *gin.Context) {
	c.SetCookie(cookieName, "", -1, "/", "", m.secure, true)
}

// CurrentUser returns the authenticated username for this request.
// Missing, malformed, forged and expired cookies all read as anonymous.
func (m *Manager) CurrentUser(c *gin.Context) (string, bool) {
	tokenStr, err := c.Cookie(cookieName)
	if err != nil || tokenStr == "" {
		return "", false
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return m.secret, nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return "", false
	}
	return claims.Username, true
}

// Flash stores a one-time message shown on the next rendered page
func (m *Manager) Flash(c *gin.Context, msg string) {
	c.SetCookie(flashCookieName, msg, 300, "/", "", m.secure, true)
}

// TakeFlash returns the pending flash message, clearing it so it renders
// exactly once
func (m *Manager) TakeFlash(c *gin.Context) (string, bool) {
	msg, err := c.Cookie(flashCookieName)
	if err != nil || msg == "" {
		return "", false
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", m.secure, true)
	return msg, true
}
