package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeConfigFixture(home))

	_, stderr, err := runEA(t, binaryPath, home, "env", "use", "remote")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runEA(t, binaryPath, home, "env", "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "pinned to remote")
	assert.Contains(t, stdout, "https://crm.example.test")

	_, _, err = runEA(t, binaryPath, home, "auth", "whoami")
	require.Error(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ea-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ea")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ea binary: %s", string(output))
	return binaryPath
}

func runEA(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

// writeConfigFixture points both origins at addresses no real backend owns.
func writeConfigFixture(home string) error {
	configDir := filepath.Join(home, ".estate-admin")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	config := `[environments.local]
base_url = "http://127.0.0.1:1"
timeout = "2s"

[environments.remote]
base_url = "https://crm.example.test"
timeout = "5s"

[probe]
timeout = "500ms"
`

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644)
}
