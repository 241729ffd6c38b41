package local

import "github.com/gofiber/fiber/v2"

func GetAccessToken(c *fiber.Ctx) string {
	token, _ := c.Locals("accessToken").(string)
	return token
}

func SetAccessToken(c *fiber.Ctx, token string) {
	c.Locals("accessToken", token)
}

func SetUserName(c *fiber.Ctx, userName string) {
	c.Locals("userName", userName)
}

func GetUserName(c *fiber.Ctx) string {
	userName, _ := c.Locals("userName").(string)
	return userName
}

// LoggedIn reports whether the request carries a usable access token.
func LoggedIn(c *fiber.Ctx) bool {
	return GetAccessToken(c) != ""
}
