/*
 * Copyright (c) 2025 Stateset, Inc.
 *
 * This source code is licensed under the Business Source License 1.1.
 *
 * Change Date: 2027-11-28
 * Change License: AGPL-3.0
 */

// Package token mints self-contained HS256 admin bearer tokens for local
// development: three dot-separated, unpadded base64url segments over a
// canonically encoded header and claim set, signed with HMAC-SHA256.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"time"
)

// Issuer signs admin tokens with a shared secret.
type Issuer struct {
	secret []byte
}

// NewIssuer returns an Issuer signing with secret. The secret must be
// non-empty; enforcing that is the caller's job (see config.Load).
func NewIssuer(secret []byte) *Issuer {
	return &Issuer{secret: secret}
}

// Issue builds, encodes and signs one admin token valid for lifetimeSeconds
// starting at now:
//
//	base64url(header) "." base64url(claims) "." base64url(HMAC-SHA256(secret, input))
//
// with no padding in any segment. Apart from the freshly generated subject
// and jti, the output is deterministic for identical inputs.
func (i *Issuer) Issue(lifetimeSeconds int64, now time.Time) (string, error) {
	header := map[string]interface{}{
		"alg": "HS256",
		"typ": "JWT",
	}
	claims := NewAdminClaims(now, lifetimeSeconds)

	headerJSON, err := canonicalJSON(header)
	if err != nil {
		return "", err
	}
	claimsJSON, err := canonicalJSON(claims.wireMap())
	if err != nil {
		return "", err
	}

	enc := base64.RawURLEncoding
	signingInput := enc.EncodeToString(headerJSON) + "." + enc.EncodeToString(claimsJSON)

	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(signingInput))
	signature := enc.EncodeToString(mac.Sum(nil))

	return signingInput + "." + signature, nil
}
