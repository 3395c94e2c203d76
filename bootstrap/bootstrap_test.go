package bootstrap

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketsoftware/jvmfind/java"
	"github.com/rocketsoftware/jvmfind/settings"
)

// testHome creates a JDK-like directory and points JAVA_HOME at it.
func testHome(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range []string{
		"include/jni.h",
		"include/platform/jni_md.h",
		"lib/server/" + java.NativeLibraryFilename,
		"conf/security/java.security",
	} {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "release"), []byte("JAVA_VERSION=\"11.0.20\"\nOS_NAME=\"Linux\"\n"), 0644))
	t.Setenv(java.EnvVar, root)
	t.Setenv(settings.ConfigFileVariable, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(settings.DetectionVariable, "")
	t.Setenv(settings.JavaDirVariable, "")
	return root
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run("jvmfind", "jvmfind", "1.2.3", args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "jvmfind 1.2.3\n", stdout)
}

func TestHomeIsDefaultCommand(t *testing.T) {
	root := testHome(t)
	code, stdout, stderr := runCLI(t)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, root+"\n", stdout)
}

func TestHomeJSON(t *testing.T) {
	root := testHome(t)
	code, stdout, stderr := runCLI(t, "--json", "home")
	require.Equal(t, 0, code, stderr)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, root, got["path"])
	assert.Contains(t, got["source"], java.EnvVar)
}

func TestJavaDirFlag(t *testing.T) {
	testHome(t)
	other := t.TempDir()
	code, stdout, stderr := runCLI(t, "--java-dir", other, "home")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, other+"\n", stdout)
}

func TestInclude(t *testing.T) {
	root := testHome(t)
	code, stdout, stderr := runCLI(t, "include")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "include"),
		filepath.Join(root, "include", "platform"),
	}, lines)
}

func TestNativeLibrary(t *testing.T) {
	root := testHome(t)
	code, stdout, stderr := runCLI(t, "native-library")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, filepath.Join(root, "lib", "server", java.NativeLibraryFilename)+"\n", stdout)
}

func TestFindFile(t *testing.T) {
	root := testHome(t)
	code, stdout, stderr := runCLI(t, "find-file", "java.security")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, filepath.Join(root, "conf", "security", "java.security")+"\n", stdout)

	code, _, stderr = runCLI(t, "find-file", "tools.jar")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "tools.jar wasn't found")
}

func TestFindFolder(t *testing.T) {
	root := testHome(t)
	code, stdout, stderr := runCLI(t, "find-folder", "security")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, filepath.Join(root, "conf", "security")+"\n", stdout)
}

func TestRelease(t *testing.T) {
	testHome(t)
	code, stdout, stderr := runCLI(t, "release")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "JAVA_VERSION=\"11.0.20\"\nOS_NAME=\"Linux\"\n", stdout)
}

func TestListRequire(t *testing.T) {
	root := testHome(t)
	t.Setenv("PATH", t.TempDir())

	code, stdout, stderr := runCLI(t, "list", "--require", "11+")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, root+" (11.0.20)")

	code, stdout, stderr = runCLI(t, "--json", "list", "--require", "99")
	require.Equal(t, 0, code, stderr)
	assert.NotContains(t, stdout, root)

	code, _, _ = runCLI(t, "list", "--require", "abc")
	assert.Equal(t, 1, code)
}

func TestInvalidStrategy(t *testing.T) {
	testHome(t)
	code, _, stderr := runCLI(t, "--strategy", "registry", "home")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown Java detection strategy")
}

func TestHelpAndUsageErrors(t *testing.T) {
	code, stdout, _ := runCLI(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "native-library")

	code, _, stderr := runCLI(t, "--no-such-flag")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr)
}
