package transport

import (
	"net/http"

	"github.com/alex-pricope/hackathon-voting/identity"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const deviceKey = "device"

// DeviceMiddleware attaches the caller's device identity, minting an id on first contact.
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		device := identity.New(&identity.SessionStore{Session: sessions.Default(c)})
		if _, err := device.ID(); err != nil {
			logging.Log.Errorf("DEVICE: failed to persist device id: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not establish device identity"})
			return
		}
		c.Set(deviceKey, device)
		c.Next()
	}
}

// Device returns the identity set by DeviceMiddleware, or builds one from the session.
func Device(c *gin.Context) *identity.Device {
	if v, ok := c.Get(deviceKey); ok {
		if device, ok := v.(*identity.Device); ok {
			return device
		}
	}
	device := identity.New(&identity.SessionStore{Session: sessions.Default(c)})
	c.Set(deviceKey, device)
	return device
}

// AdminAuthMiddleware compares the x-admin-token header with the configured passphrase.
// An empty passphrase locks the admin routes entirely.
func AdminAuthMiddleware(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-admin-token")

		if token == "" || expected == "" || token != expected {
			logging.Log.Warnf("ADMIN: Unauthorized access attempt to %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// JudgeGateMiddleware lets a device through once it has presented the judge passphrase
// as ?code=. The judge role is remembered in the session afterwards.
func JudgeGateMiddleware(code string) gin.HandlerFunc {
	return func(c *gin.Context) {
		device := Device(c)

		if supplied := c.Query("code"); supplied != "" {
			if code == "" || supplied != code {
				logging.Log.Warnf("JUDGE: wrong passphrase on %s", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid judge code"})
				return
			}
			if err := device.SetRole(identity.RoleJudge); err != nil {
				logging.Log.Errorf("JUDGE: failed to remember judge role: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not store judge role"})
				return
			}
		}

		if device.Role() != identity.RoleJudge {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "judge code required"})
			return
		}
		c.Next()
	}
}
