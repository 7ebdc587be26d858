package middleware

import (
	"coursehub/config"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for an authenticated user. The id is
// role-scoped (student_id / teacher_id / admin_id).
func GenerateJWT(id, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   id,
		"name": name,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(1 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for a valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return Message(c, fiber.StatusUnauthorized, "Unauthorized: missing token")
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return Message(c, fiber.StatusUnauthorized, "Unauthorized: invalid Authorization header format")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return Message(c, fiber.StatusUnauthorized, "Unauthorized: invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil || claims["role"] == nil {
		return Message(c, fiber.StatusUnauthorized, "Unauthorized: invalid token payload")
	}

	userID, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)
	if userID == "" || role == "" {
		return Message(c, fiber.StatusUnauthorized, "Unauthorized: invalid token payload")
	}

	c.Locals("userId", userID)
	c.Locals("userName", name)
	c.Locals("role", role)

	return c.Next()
}

// RequireRoles guards a route so only the listed roles may pass. Runs after
// JWTMiddleware, which stores the role in Locals.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return Message(c, fiber.StatusUnauthorized, "Unauthorized: missing role")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return Message(c, fiber.StatusForbidden, "Forbidden: insufficient role")
	}
}

// Message writes the uniform {"message": ...} body used by every endpoint
// for confirmations and by every non-2xx response.
func Message(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}

// ValidationErrorResponse reports field-level validation failures.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	first := ""
	for _, v := range errors {
		first = v
		break
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": first,
		"errors":  errors,
	})
}
