/*
 * Copyright (c) 2025 Stateset, Inc.
 *
 * This source code is licensed under the Business Source License 1.1.
 *
 * Change Date: 2027-11-28
 * Change License: AGPL-3.0
 */

package token

import (
	"time"

	"github.com/google/uuid"
)

const (
	// TokenIssuer and TokenAudience must match what the API's auth
	// middleware validates against.
	TokenIssuer   = "stateset-auth"
	TokenAudience = "stateset-api"

	adminName  = "Local Admin"
	adminEmail = "admin@example.com"
)

// DefaultAdminPermissions grants every action in every resource domain,
// including the per-domain wildcards. Process-wide constant data; callers
// must treat it as read-only.
var DefaultAdminPermissions = []string{
	// Orders
	"orders:read",
	"orders:create",
	"orders:update",
	"orders:delete",
	"orders:cancel",
	"orders:*",
	// Inventory
	"inventory:read",
	"inventory:adjust",
	"inventory:transfer",
	"inventory:*",
	// Returns
	"returns:read",
	"returns:create",
	"returns:approve",
	"returns:reject",
	"returns:*",
	// Shipments
	"shipments:read",
	"shipments:create",
	"shipments:update",
	"shipments:delete",
	"shipments:*",
	// Warranties
	"warranties:read",
	"warranties:create",
	"warranties:update",
	"warranties:delete",
	"warranties:*",
	// Work orders
	"workorders:read",
	"workorders:create",
	"workorders:update",
	"workorders:delete",
	"workorders:*",
	// Misc application permissions
	"admin:outbox",
	"payments:access",
	"agents:access",
}

// Claims is the payload of an issued token. TenantID and Scope are never set
// by this issuer but are still emitted as explicit JSON nulls, so the payload
// keeps the exact shape of a production token.
type Claims struct {
	Subject     string
	Name        string
	Email       string
	Roles       []string
	Permissions []string
	TenantID    *string
	TokenID     string
	IssuedAt    int64
	ExpiresAt   int64
	NotBefore   int64
	Issuer      string
	Audience    string
	Scope       *string
}

// NewAdminClaims builds the claim set for a synthetic local administrator.
// Subject and TokenID are fresh UUIDs on every call; they are never reused
// or persisted.
func NewAdminClaims(now time.Time, lifetimeSeconds int64) Claims {
	iat := now.Unix()
	return Claims{
		Subject:     uuid.NewString(),
		Name:        adminName,
		Email:       adminEmail,
		Roles:       []string{"admin"},
		Permissions: DefaultAdminPermissions,
		TokenID:     uuid.NewString(),
		IssuedAt:    iat,
		ExpiresAt:   iat + lifetimeSeconds,
		NotBefore:   iat,
		Issuer:      TokenIssuer,
		Audience:    TokenAudience,
	}
}

// wireMap lays the claims out under their JWT claim names for canonical
// encoding. Every key is always present, including the null ones.
func (c Claims) wireMap() map[string]interface{} {
	var tenantID, scope interface{}
	if c.TenantID != nil {
		tenantID = *c.TenantID
	}
	if c.Scope != nil {
		scope = *c.Scope
	}
	return map[string]interface{}{
		"sub":         c.Subject,
		"name":        c.Name,
		"email":       c.Email,
		"roles":       c.Roles,
		"permissions": c.Permissions,
		"tenant_id":   tenantID,
		"jti":         c.TokenID,
		"iat":         c.IssuedAt,
		"exp":         c.ExpiresAt,
		"nbf":         c.NotBefore,
		"iss":         c.Issuer,
		"aud":         c.Audience,
		"scope":       scope,
	}
}
