package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartikbazzad/gdnsh/internal/config"
	gdnerrors "github.com/kartikbazzad/gdnsh/internal/errors"
	"github.com/kartikbazzad/gdnsh/pkg/gdn/gdntest"
)

func setEnv(t *testing.T, srv *gdntest.Server) {
	t.Helper()
	t.Setenv("BASE_URL", srv.URL)
	t.Setenv("API_KEY", srv.APIKey)
	t.Setenv("FABRIC", srv.Fabric)
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "absent.env")}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_MissingSettingsFailBeforeAnyRequest(t *testing.T) {
	srv := gdntest.NewServer("key", "_system")
	defer srv.Close()

	tests := []struct {
		name  string
		unset string
		want  error
	}{
		{"base url", "BASE_URL", config.ErrBaseURLRequired},
		{"api key", "API_KEY", config.ErrAPIKeyRequired},
		{"fabric", "FABRIC", config.ErrFabricRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, srv)
			t.Setenv(tt.unset, "")

			_, err := execute(t, "6\n", "kv", "get", "users", "k1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Empty(t, srv.Requests())
}

func TestRoot_InteractiveShell(t *testing.T) {
	srv := gdntest.NewServer("key", "_system")
	defer srv.Close()
	setEnv(t, srv)

	out, err := execute(t, "1\nusers\n6\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Collection 'users' created successfully")
	assert.True(t, strings.HasSuffix(out, "Exiting the program.\n"))
}

func TestRoot_KeyValueSubcommands(t *testing.T) {
	srv := gdntest.NewServer("key", "_system")
	defer srv.Close()
	setEnv(t, srv)

	out, err := execute(t, "", "kv", "create", "users")
	require.NoError(t, err)
	assert.Equal(t, "Collection 'users' created successfully\n", out)

	out, err = execute(t, "", "kv", "set", "users", "k1", "v1", "--expire-at", "1893456000")
	require.NoError(t, err)
	assert.Equal(t, "Data added to collection 'users'\n", out)
	assert.JSONEq(t, `{"_key":"k1","value":"v1","expireAt":1893456000}`, string(srv.Pairs("users")["k1"]))

	out, err = execute(t, "", "kv", "get", "users", "k1")
	require.NoError(t, err)
	assert.Contains(t, out, "Retrieved value: \"v1\"")

	_, err = execute(t, "", "kv", "get", "users", "missing")
	require.Error(t, err)
	assert.True(t, gdnerrors.Is(err, gdnerrors.KindNotFound))
}

func TestRoot_KeyValueCreateRejectsBadConfig(t *testing.T) {
	srv := gdntest.NewServer("key", "_system")
	defer srv.Close()
	setEnv(t, srv)

	_, err := execute(t, "", "kv", "create", "users", "--config", `{"stream": "yes"}`)
	require.Error(t, err)
	assert.True(t, gdnerrors.Is(err, gdnerrors.KindConfig))
	assert.Empty(t, srv.Requests())
}

func TestRoot_DocumentSubcommands(t *testing.T) {
	srv := gdntest.NewServer("key", "_system")
	defer srv.Close()
	setEnv(t, srv)

	out, err := execute(t, "", "doc", "create-collection", "orders")
	require.NoError(t, err)
	assert.Equal(t, "Document collection 'orders' created successfully\n", out)

	out, err = execute(t, "", "doc", "insert", "orders", `{"a":1,"b":[true,null]}`)
	require.NoError(t, err)
	assert.Equal(t, "Document added to collection 'orders'\n", out)
	require.Len(t, srv.Documents("orders"), 1)
	assert.Equal(t, `{"a":1,"b":[true,null]}`, string(srv.Documents("orders")[0]))

	_, err = execute(t, "", "doc", "insert", "orders", `{"a":`)
	require.Error(t, err)
	assert.True(t, gdnerrors.Is(err, gdnerrors.KindConfig))
}

func TestRoot_EnvFile(t *testing.T) {
	srv := gdntest.NewServer("key", "_system")
	defer srv.Close()
	t.Setenv("BASE_URL", "")
	t.Setenv("API_KEY", "")
	t.Setenv("FABRIC", "")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "BASE_URL=" + srv.URL + "\nAPI_KEY=key\nFABRIC=_system\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--env-file", envFile, "doc", "create-collection", "orders"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Document collection 'orders' created successfully\n", out.String())
}
