package handlers

import "github.com/gofiber/fiber/v2"

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Sales Insight</title></head>
<body>
  <h1>Sales Insight</h1>
  <form method="post" action="/ask">
    <input type="text" name="question" placeholder="e.g. Top 5 best-selling products today" size="50">
    <button type="submit">Ask</button>
  </form>
</body>
</html>
`

// HandleIndex serves the static question page.
// GET /
func HandleIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexPage)
}

// HandleHealth reports service liveness.
// GET /api/v1/health
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
