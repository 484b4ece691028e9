package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/vladimiradmaev/dietlog/internal/cli"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}
	cli.Execute()
}
