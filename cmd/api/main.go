package main

import (
	_ "cfr_notifier/docs"
	"cfr_notifier/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CFR Notifier API
// @version         1.0
// @description     Appointment confirmations, reminders and message relays for Canadian Fitness Repair.
// @termsOfService  http://swagger.io/terms/

// @contact.name   Canadian Fitness Repair
// @contact.url    https://canadianfitnessrepair.com
// @contact.email  canadianfitnessrepair@gmail.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3001

// @BasePath  /

func main() {
	routes.Run()
}
