package httpx

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartCookie = "foodhub_cart_id"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// CartID resolves the caller's cart id cookie, minting one on first use.
// The cart lives server-side; the cookie only names it.
func CartID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cartCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(cartCookie, id, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
		}
		c.Set("cartID", id)
		c.Next()
	}
}

// GetCartID returns the cart id set by the CartID middleware.
func GetCartID(c *gin.Context) string {
	return c.GetString("cartID")
}

// SessionToken reads the gateway's session cookie. Empty when anonymous.
func SessionToken(c *gin.Context, cookieName string) string {
	tok, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return tok
}

// Error writes the standard error shape.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

// OK writes the standard success envelope.
func OK(c *gin.Context, status int, msg string, data any) {
	body := gin.H{"success": true}
	if msg != "" {
		body["message"] = msg
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}
