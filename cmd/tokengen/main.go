// Command tokengen prints a signed access token for a username so the API
// can be exercised locally without an identity provider.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"profile-service/internal/config"
	"profile-service/internal/pkg/jwt"
)

func main() {
	username := flag.String("user", "", "login name to put in the token")
	flag.Parse()

	if strings.TrimSpace(*username) == "" {
		fmt.Fprintln(os.Stderr, "usage: tokengen -user <username>")
		os.Exit(2)
	}

	cfg, err := config.LoadJWT()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	svc := jwt.NewHMACService(cfg.AccessSecret, cfg.AccessExpiresIn, cfg.Issuer)
	token, err := svc.GenerateAccessToken(*username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
