package main

// @title Cocktail Catalog API
// @version 1.0
// @description Cocktail recipe catalog with pantry tracking and favorites, with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/barkeep/cocktail-api
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/barkeep/cocktail-api/blob/main/LICENSE

// @host localhost:8000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Cocktails
// @tag.description Cocktail catalog endpoints

// @tag.name Favorites
// @tag.description User favorite endpoints

// @tag.name Pantry
// @tag.description Pantry tracking endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
