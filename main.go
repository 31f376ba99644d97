package main

import (
	"github.com/joho/godotenv"

	"github.com/Sena-ops/auditbridge/cmd"
)

func main() {
	// carrega .env se existir
	_ = godotenv.Load()

	cmd.Execute()
}
