package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"auditpro/internal/config"
	"auditpro/internal/domain"
	"auditpro/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-with-at-least-32-bytes!!"

func testConfig() (*config.Config, error) {
	return &config.Config{
		Auth:   config.AuthConfig{JWTSecret: testSecret, Issuer: "auditpro", TokenTTL: time.Hour},
		Logger: config.LoggerConfig{Env: "test", Level: "error"},
	}, nil
}

func runCommand(t *testing.T, deps Dependencies, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(deps)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand(Dependencies{ConfigProvider: testConfig})
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"migrate", "seed", "checklist", "token"} {
		assert.Contains(t, names, want)
	}
}

func TestChecklistParse(t *testing.T) {
	const text = `category_name: Restaurant
checklist:
  - question: "Is the kitchen clean?"
    type: checkbox
  - question: "Rate hygiene"
    type: rating
    min: 1
    max: 5
`

	t.Run("json from stdin", func(t *testing.T) {
		out, err := runCommand(t, Dependencies{}, text, "checklist", "parse")
		require.NoError(t, err)

		var def domain.ChecklistDefinition
		require.NoError(t, json.Unmarshal([]byte(out), &def))
		assert.Equal(t, "Restaurant", def.CategoryName)
		require.Len(t, def.Questions, 2)
		require.NotNil(t, def.Questions[1].Max)
		assert.Equal(t, 5, *def.Questions[1].Max)
	})

	t.Run("text from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "restaurant.txt")
		require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

		out, err := runCommand(t, Dependencies{}, "", "checklist", "parse", path, "--format", "text")
		require.NoError(t, err)
		assert.Contains(t, out, `- question: "Rate hygiene"`)
		assert.Contains(t, out, "max: 5")
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := runCommand(t, Dependencies{}, text, "checklist", "parse", "--format", "xml")
		assert.ErrorContains(t, err, "unsupported format")
	})

	t.Run("empty checklist", func(t *testing.T) {
		_, err := runCommand(t, Dependencies{}, "category_name: Empty\n", "checklist", "parse")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runCommand(t, Dependencies{}, "", "checklist", "parse", filepath.Join(t.TempDir(), "nope.txt"))
		assert.ErrorContains(t, err, "failed to read")
	})
}

func TestTokenIssue(t *testing.T) {
	t.Run("issued token verifies", func(t *testing.T) {
		out, err := runCommand(t, Dependencies{ConfigProvider: testConfig}, "",
			"token", "issue", "--user", "01J000000000000000000ADT01", "--role", "auditor")
		require.NoError(t, err)

		cfg, _ := testConfig()
		authService, err := service.NewAuthService(nil, cfg.Auth)
		require.NoError(t, err)
		actor, err := authService.VerifyToken(context.Background(), strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, domain.Actor{UserID: "01J000000000000000000ADT01", Role: domain.RoleAuditor}, actor)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := runCommand(t, Dependencies{ConfigProvider: testConfig}, "",
			"token", "issue", "--user", "u1", "--role", "owner")
		assert.ErrorContains(t, err, "--role must be one of")
	})

	t.Run("missing flags", func(t *testing.T) {
		_, err := runCommand(t, Dependencies{ConfigProvider: testConfig}, "", "token", "issue")
		assert.Error(t, err)
	})

	t.Run("config failure", func(t *testing.T) {
		deps := Dependencies{ConfigProvider: func() (*config.Config, error) {
			return nil, errors.New("boom")
		}}
		_, err := runCommand(t, deps, "", "token", "issue", "--user", "u1", "--role", "admin")
		assert.ErrorContains(t, err, "failed to load config")
	})
}

func TestMigrateDown_RejectsZeroSteps(t *testing.T) {
	_, err := runCommand(t, Dependencies{ConfigProvider: testConfig}, "", "migrate", "down", "--steps", "0")
	assert.ErrorContains(t, err, "--steps must be at least 1")
}

func TestSeed_BadFileFailsBeforeConnecting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: A\n    payout: \"-1\"\n    checklist: \"- question: Q\"\n"), 0o600))

	called := false
	deps := Dependencies{ConfigProvider: func() (*config.Config, error) {
		called = true
		return testConfig()
	}}
	_, err := runCommand(t, deps, "", "seed", "--file", path)
	assert.ErrorContains(t, err, "payout")
	assert.False(t, called)
}
