//go:build integration
// +build integration

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stateset/stateset-api/internal/config"
	"github.com/stateset/stateset-api/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIssueEndToEnd runs the full pipeline in-process: primary secret in the
// environment, no lifetime variable, no config file. The result must be a
// verifiable token with the default one-hour lifetime.
func TestIssueEndToEnd(t *testing.T) {
	for _, name := range []string{"JWT_SECRET", "APP__JWT_EXPIRATION", "JWT_EXPIRATION"} {
		t.Setenv(name, "")
	}
	t.Setenv("APP__JWT_SECRET", "topsecret")
	missingFile := filepath.Join(t.TempDir(), "default.toml")

	settings, ok := config.Load(missingFile)
	require.True(t, ok)
	require.Equal(t, "topsecret", settings.Secret)
	require.Equal(t, 3600, settings.ExpirationSeconds)

	out, err := token.NewIssuer([]byte(settings.Secret)).Issue(int64(settings.ExpirationSeconds), time.Now())
	require.NoError(t, err)

	parsed, err := jwt.Parse(out,
		func(tok *jwt.Token) (interface{}, error) { return []byte("topsecret"), nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, exp.Sub(iat.Time))
}

// TestCLIBehavior exercises the built gen-admin-token binary as a black box.
// Point GEN_ADMIN_TOKEN_BIN at the binary to enable it:
//
//	go build -o /tmp/gen-admin-token ./cmd/gen-admin-token
//	GEN_ADMIN_TOKEN_BIN=/tmp/gen-admin-token go test -tags integration ./tests/integration/
func TestCLIBehavior(t *testing.T) {
	bin := os.Getenv("GEN_ADMIN_TOKEN_BIN")
	if bin == "" {
		t.Skip("GEN_ADMIN_TOKEN_BIN not set")
	}

	// Run from an empty dir so config/default.toml cannot interfere.
	env := []string{"PATH=" + os.Getenv("PATH")}

	t.Run("Success", func(t *testing.T) {
		cmd := exec.Command(bin)
		cmd.Dir = t.TempDir()
		cmd.Env = append(env, "APP__JWT_SECRET=topsecret")

		stdout, err := cmd.Output()
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(string(stdout), "\n"), "\n")
		require.GreaterOrEqual(t, len(lines), 6)
		assert.Equal(t, "Generated admin JWT (valid for 3600 seconds):", lines[0])
		assert.Equal(t, "", lines[1])
		assert.Equal(t, 2, strings.Count(lines[2], "."), "token line")
		assert.Equal(t, "", lines[3])
		assert.Equal(t, "Use it as:", lines[4])
		assert.True(t, strings.HasPrefix(lines[5], "Authorization: Bearer "))
	})

	t.Run("Missing Secret", func(t *testing.T) {
		cmd := exec.Command(bin)
		cmd.Dir = t.TempDir()
		cmd.Env = env

		stdout, err := cmd.Output()
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.ExitCode())
		assert.Empty(t, stdout, "no token may reach stdout without a secret")
		assert.Contains(t, string(exitErr.Stderr), "Unable to locate JWT secret")
	})

	t.Run("Non Numeric Expiration", func(t *testing.T) {
		cmd := exec.Command(bin)
		cmd.Dir = t.TempDir()
		cmd.Env = append(env, "APP__JWT_SECRET=topsecret", "JWT_EXPIRATION=abc")

		stdout, err := cmd.Output()
		require.NoError(t, err)
		assert.Contains(t, string(stdout), fmt.Sprintf("valid for %d seconds", 3600))
	})
}
