package main

import (
	"log"

	"tourquote/internal/api"
)

// @title Tour Quote API
// @version 1.0
// @description Расчёт стоимости групповых туров: каталог услуг, сценарии, наценка агента

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
