package main

import (
	"context"
	"os"

	"github.com/SscSPs/finstatements/internal/commands"
)

// @title Financial Statements API
// @version 1.0
// @description Chart of accounts, journal posting and financial statements.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := commands.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
