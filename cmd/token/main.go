// token emite un JWT de administrador para POST/DELETE /questions.
//
// Uso: go run ./cmd/token [subject]
// Usa JWT_SECRET, JWT_ISSUER y JWT_EXPIRATION_MINUTES de la configuración.
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/trivia-api/pkg/config"
	"github.com/jhoicas/trivia-api/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido")
		os.Exit(1)
	}

	subject := "admin"
	if len(os.Args) > 1 {
		subject = os.Args[1]
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, subject, jwt.RoleAdmin, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
