package command

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/velocity-go/internal/cli/output"
	"github.com/yndnr/velocity-go/internal/proxy/config"
)

const validDocument = `
bind = "0.0.0.0:25577"
motd = "&cHello &lworld"
show-max-players = 500
online-mode = true
ip-forwarding = "none"

[servers]
lobby = "127.0.0.1:25565"
try = ["lobby"]
`

const danglingDocument = `
bind = "0.0.0.0:25577"
motd = "A Server"
show-max-players = 500
online-mode = true
ip-forwarding = "modern"

[servers]
lobby = "127.0.0.1:25565"
try = ["lobby", "survival"]
`

type result struct {
	stdout string
	stderr string
	err    error
}

func (r result) exitCode() int {
	var ec cli.ExitCoder
	if errors.As(r.err, &ec) {
		return ec.ExitCode()
	}
	if r.err != nil {
		return -1
	}
	return 0
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "velocity.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer

	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"velocity-config"}, args...))
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestApp(t *testing.T) {
	app := App()
	require.NotNil(t, app)
	assert.Equal(t, "velocity-config", app.Name)
	assert.NotEmpty(t, app.Usage)

	var commands []string
	for _, cmd := range app.Commands {
		commands = append(commands, cmd.Name)
	}
	assert.Equal(t, []string{"check", "show", "motd"}, commands)

	var flags []string
	for _, f := range app.Flags {
		flags = append(flags, f.Names()[0])
	}
	assert.Equal(t, []string{"settings", "log-level", "log-format", "output", "wide"}, flags)
}

func TestCheck_Valid(t *testing.T) {
	path := writeDocument(t, validDocument)

	r := run(t, "check", path)
	require.NoError(t, r.err)
	assert.Equal(t, path+": configuration is valid\n", r.stdout)
	assert.Contains(t, r.stderr, "IP forwarding is disabled!")
}

func TestCheck_DanglingFallback(t *testing.T) {
	path := writeDocument(t, danglingDocument)

	r := run(t, "check", path)
	assert.Equal(t, 1, r.exitCode())
	assert.Contains(t, r.stdout, "CHECK")
	assert.Contains(t, r.stdout, "Fallback server survival doesn't exist!")
	assert.NotContains(t, r.stdout, "SERVER")
	assert.Contains(t, r.stderr, "Modern IP forwarding is not currently implemented.")
}

func TestCheck_Wide(t *testing.T) {
	path := writeDocument(t, danglingDocument)

	r := run(t, "--wide", "check", path)
	assert.Equal(t, 1, r.exitCode())
	assert.Contains(t, r.stdout, "SERVER")
	assert.Contains(t, r.stdout, "survival")
}

func TestCheck_JSONReport(t *testing.T) {
	path := writeDocument(t, danglingDocument)

	r := run(t, "-o", "json", "check", path)
	assert.Equal(t, 1, r.exitCode())

	var report checkReport
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &report))
	assert.Equal(t, checkReport{
		File:  path,
		Valid: false,
		Issues: []config.Issue{{
			Check:   config.CheckFallbackServer,
			Message: "Fallback server survival doesn't exist!",
			Server:  "survival",
		}},
	}, report)
}

func TestCheck_Unreadable(t *testing.T) {
	path := writeDocument(t, strings.Replace(validDocument, "lobby = \"127.0.0.1:25565\"", "lobby = \"127.0.0.1:25565\"\nbad = 42", 1))

	r := run(t, "check", path)
	assert.Equal(t, 1, r.exitCode())
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "configuration could not be read")
	assert.Contains(t, r.stderr, "bad")
}

func TestCheck_MetricsFile(t *testing.T) {
	path := writeDocument(t, danglingDocument)
	metrics := filepath.Join(t.TempDir(), "velocity.prom")

	r := run(t, "check", "--metrics-file", metrics, path)
	assert.Equal(t, 1, r.exitCode())

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	body := string(data)
	assert.Contains(t, body, `velocity_config_loads_total{result="ok"} 1`)
	assert.Contains(t, body, "velocity_config_valid 0")
	assert.Contains(t, body, "velocity_config_fallback_servers 2")
	assert.Contains(t, body, `velocity_config_validation_issues{check="fallback_server"} 1`)
}

func TestCheck_MetricsFileOnReadFailure(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "velocity.prom")

	r := run(t, "check", "--metrics-file", metrics, filepath.Join(t.TempDir(), "absent.toml"))
	assert.Equal(t, 1, r.exitCode())

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `velocity_config_loads_total{result="error"} 1`)
}

func TestCheck_MissingArgument(t *testing.T) {
	r := run(t, "check")
	assert.Equal(t, 2, r.exitCode())
}

func TestCheck_JSONLogs(t *testing.T) {
	path := writeDocument(t, danglingDocument)

	r := run(t, "--log-format", "json", "--log-level", "debug", "check", path)
	assert.Equal(t, 1, r.exitCode())

	var messages []string
	sc := bufio.NewScanner(strings.NewReader(r.stderr))
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		assert.Equal(t, path, entry["file"])
		messages = append(messages, entry["message"].(string))
	}
	assert.Contains(t, messages, "configuration read")
	assert.Contains(t, messages, "Fallback server survival doesn't exist!")
}

func TestShow_Table(t *testing.T) {
	path := writeDocument(t, validDocument)

	r := run(t, "show", path)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "0.0.0.0:25577")
	assert.Contains(t, r.stdout, "lobby=127.0.0.1:25565")
	assert.Contains(t, r.stdout, "none")
}

func TestShow_YAML(t *testing.T) {
	path := writeDocument(t, validDocument)

	r := run(t, "-o", "yaml", "show", path)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "bind:")
	assert.Contains(t, r.stdout, "0.0.0.0:25577")
	assert.Contains(t, r.stdout, "ip_forwarding: none")
}

func TestShow_TOMLRoundTrip(t *testing.T) {
	path := writeDocument(t, validDocument)

	r := run(t, "-o", "toml", "show", path)
	require.NoError(t, r.err)

	original, err := config.Read(path)
	require.NoError(t, err)
	again, err := config.Read(writeDocument(t, r.stdout))
	require.NoError(t, err)

	assert.Equal(t, original.Summary(), again.Summary())
}

func TestShow_ReadError(t *testing.T) {
	r := run(t, "show", filepath.Join(t.TempDir(), "absent.toml"))
	assert.Equal(t, 1, r.exitCode())
}

func TestShow_UnknownOutput(t *testing.T) {
	path := writeDocument(t, validDocument)

	r := run(t, "-o", "xml", "show", path)
	require.Error(t, r.err)
	assert.ErrorIs(t, r.err, output.ErrUnknownFormat)
}

func TestMotd(t *testing.T) {
	path := writeDocument(t, validDocument)

	tests := []struct {
		format string
		want   string
	}{
		{"plain", "Hello world\n"},
		{"legacy", "&cHello &c&lworld\n"},
		{"json", `{"text":"","extra":[{"text":"Hello ","color":"red"},{"text":"world","color":"red","bold":true}]}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r := run(t, "motd", "--format", tt.format, path)
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.stdout)
		})
	}
}

func TestMotd_UnknownFormat(t *testing.T) {
	path := writeDocument(t, validDocument)

	r := run(t, "motd", "--format", "html", path)
	assert.Equal(t, 2, r.exitCode())
}

func TestMotd_MalformedJSON(t *testing.T) {
	path := writeDocument(t, strings.Replace(validDocument, `motd = "&cHello &lworld"`, `motd = "{nope"`, 1))

	r := run(t, "motd", path)
	assert.Equal(t, 1, r.exitCode())
}

func TestSettings_Default(t *testing.T) {
	app := App()
	ctx := cli.NewContext(app, nil, nil)
	assert.Equal(t, "table", Settings(ctx).Output.Format)
}
