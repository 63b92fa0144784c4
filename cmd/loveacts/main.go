package main

import (
	_ "loveacts-service/docs" // Import generated docs
)

// @title LoveActs API
// @version 2.0.0
// @description Couples app API: partner linking, acts of love, daily moods and achievements

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	Execute()
}
