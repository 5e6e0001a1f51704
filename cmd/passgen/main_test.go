package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func testConfig() config.Config {
	var cfg config.Config
	cfg.JWTSecret = "cli-test-secret"
	cfg.JWTExpiry = time.Hour
	cfg.Password.MinLength = 4
	cfg.Password.MaxLength = 128
	cfg.Password.DefaultLength = 24
	return cfg
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand(testConfig())
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateDefault(t *testing.T) {
	out, err := run(t, "generate")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 24)
	assert.True(t, strings.HasPrefix(lines[1], "Password Strength: "))
}

func TestGenerateDigitsOnly(t *testing.T) {
	out, err := run(t, "generate", "-l", "5", "--lower=false", "--upper=false", "--symbols=false", "-q")
	require.NoError(t, err)

	pw := strings.TrimSpace(out)
	assert.Len(t, pw, 5)
	assert.Empty(t, strings.Trim(pw, "0123456789"))
}

func TestGenerateCountAndClamp(t *testing.T) {
	out, err := run(t, "generate", "-c", "3", "-l", "500", "-q")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Len(t, l, 128)
	}
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	a, err := run(t, "generate", "--seed", "42", "-c", "2")
	require.NoError(t, err)
	b, err := run(t, "generate", "--seed", "42", "-c", "2")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateNoClasses(t *testing.T) {
	_, err := run(t, "generate", "--lower=false", "--upper=false", "--digits=false", "--symbols=false")
	require.ErrorIs(t, err, errNoClasses)
}

func TestStrengthCommand(t *testing.T) {
	out, err := run(t, "strength", "Abcdefghijklmnop12$$")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 5/6")
	assert.Contains(t, out, "Password Strength: Strong")
	assert.Contains(t, out, "Estimated crack time: ")
}

func TestStrengthCommandLongPassword(t *testing.T) {
	out, err := run(t, "strength", strings.Repeat("aZ9!", 2_000))
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 6/6")
	assert.Contains(t, out, "estimate covers a prefix")
}

func TestStrengthCommandNeedsArgument(t *testing.T) {
	_, err := run(t, "strength")
	require.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	out, err := run(t, "token", "--subject", "dashboard")
	require.NoError(t, err)

	claims, err := crypto.ValidateToken(strings.TrimSpace(out), "cli-test-secret")
	require.NoError(t, err)
	assert.Equal(t, "dashboard", claims.Subject)
}

func TestTokenCommandRequiresSubject(t *testing.T) {
	_, err := run(t, "token")
	require.Error(t, err)
}
