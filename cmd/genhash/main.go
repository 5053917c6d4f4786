// cmd/genhash prints a bcrypt hash for the password given on the command line,
// using the same cost as the server.
package main

import (
	"fmt"
	"os"

	"jhris/internal/config"
	"jhris/internal/security"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(2)
	}

	cost := 12
	if cfg, err := config.Load(); err == nil {
		cost = cfg.BcryptCost
	}

	h, err := security.NewCredentialStore(cost).Hash(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(h)
}
