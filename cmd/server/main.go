// Package main implements the entry point for the Assessment Creator API
// server, which turns structured assessment requests into generated
// multiple-choice questions through the Gemini generateContent API.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
)

// main initializes configuration, sets up logging, wires the service
// dependencies, and runs the HTTP server until a shutdown signal arrives.
func main() {
	// A .env file is optional; deployments usually configure through the
	// environment directly.
	_ = godotenv.Load()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
