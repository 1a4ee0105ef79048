// Command editor-token issues a signed token that authorizes sign bank
// writes. The token is printed to stdout.
//
// Flags:
//
//	--editor  editor name recorded as the token subject (required)
//	--ttl     token lifetime (default: AUTH_EDITOR_TOKEN_TTL)
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/heartmarshall/signphon/internal/auth"
	"github.com/heartmarshall/signphon/internal/config"
)

func main() {
	editor := flag.String("editor", "", "editor name (required)")
	ttl := flag.Duration("ttl", 0, "token lifetime, 0 uses the configured default")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.EditorTokenTTL)

	token, err := jwt.IssueEditorToken(*editor, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
