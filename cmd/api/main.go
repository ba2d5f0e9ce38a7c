package main

import (
	_ "github.com/joho/godotenv/autoload"

	_ "github.com/qwhomes/proposal-service/docs"
	"github.com/qwhomes/proposal-service/internal/adapter/http/routes"
)

// @title           Proposal Service API
// @version         1.0
// @description     Sales proposal engine (proposals, pricing, exports) backed by PostgreSQL.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
