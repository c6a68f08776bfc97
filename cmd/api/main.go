package main

import (
	_ "serralheria_os/docs"
	"serralheria_os/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Workshop Order Service API
// @version         1.0
// @description     Order lifecycle and billing engine for a fabrication shop (budgets, service orders, tasks, invoices) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
