/*
 * Copyright (c) 2025 Stateset, Inc.
 *
 * This source code is licensed under the Business Source License 1.1.
 *
 * Change Date: 2027-11-28
 * Change License: AGPL-3.0
 */

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/stateset/stateset-api/internal/config"
	"github.com/stateset/stateset-api/internal/token"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Resolve the signing secret and token lifetime
	settings, ok := config.Load(config.DefaultFile)
	if !ok {
		fmt.Fprintln(os.Stderr, "Unable to locate JWT secret. Set APP__JWT_SECRET or update config/default.toml.")
		return 1
	}

	// 2. Mint the token
	issuer := token.NewIssuer([]byte(settings.Secret))
	jwt, err := issuer.Issue(int64(settings.ExpirationSeconds), time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to sign token:", err)
		return 1
	}

	// 3. Report
	fmt.Printf("Generated admin JWT (valid for %d seconds):\n\n", settings.ExpirationSeconds)
	fmt.Println(jwt)
	fmt.Println("\nUse it as:")
	fmt.Printf("Authorization: Bearer %s\n", jwt)
	return 0
}
