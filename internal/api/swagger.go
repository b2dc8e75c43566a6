package api

import (
	"net/url"

	docs "github.com/SundayYogurt/alumni_service/docs"
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// RegisterSwagger serves the UI. Host and scheme come from the API's public
// URL and are fixed before the first request is served.
func RegisterSwagger(app *fiber.App, publicURL string) {
	if u, err := url.Parse(publicURL); err == nil && u.Host != "" {
		docs.SwaggerInfo.Host = u.Host
		docs.SwaggerInfo.Schemes = []string{u.Scheme}
	}

	app.Get("/swagger/*", fiberSwagger.WrapHandler)
}
