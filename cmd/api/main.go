package main

import (
	_ "carmasters/docs"
	"carmasters/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CarMasters Shop API
// @version         1.0
// @description     Shop-management backend for the CarMasters detailing studio: customers, vehicles, service orders and per-order costs over SQLite or PostgreSQL.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
