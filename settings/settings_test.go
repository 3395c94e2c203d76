package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketsoftware/jvmfind/java"
)

// isolate points the config file at dir and clears the environment
// variables read by Load.
func isolate(t *testing.T, config string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jvmfind.env")
	if config != "" {
		require.NoError(t, os.WriteFile(path, []byte(config), 0644))
	}
	t.Setenv(ConfigFileVariable, path)
	t.Setenv(DetectionVariable, "")
	t.Setenv(JavaDirVariable, "")
}

func Test_ParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"JavaHome", StrategyJavaHome, false},
		{"valid", StrategyValid, false},
		{"PATH", StrategyPath, false},
		{"registry", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t, "")
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StrategyValid, s.Strategy)
	assert.Empty(t, s.JavaDir)
	assert.Equal(t, "default", s.StrategySource())
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t, "JVMFIND_DETECTION=Path\nJVMFIND_JAVA_DIR=/opt/jdk\n")
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StrategyPath, s.Strategy)
	assert.Equal(t, "/opt/jdk", s.JavaDir)
	assert.Contains(t, s.StrategySource(), "config file")
}

func TestLoadEnvironmentOverridesConfigFile(t *testing.T) {
	isolate(t, "JVMFIND_DETECTION=Path\n")
	t.Setenv(DetectionVariable, "javahome")
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StrategyJavaHome, s.Strategy)
	assert.Equal(t, "environment variable", s.StrategySource())
}

func Test_registrySource(t *testing.T) {
	tests := []struct {
		root string
		want string
	}{
		{"HKEY_CURRENT_USER", `registry key HKEY_CURRENT_USER\Software\jvmfind`},
		{"HKEY_LOCAL_MACHINE", `registry key HKEY_LOCAL_MACHINE\Software\jvmfind`},
	}
	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			if got := registrySource(tt.root); got != tt.want {
				t.Errorf("registrySource() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocateJavaDirFromRegistry(t *testing.T) {
	isolate(t, "")
	dir := t.TempDir()
	s := &Settings{Strategy: StrategyValid}
	require.NoError(t, s.apply("", dir, registrySource("HKEY_LOCAL_MACHINE")))
	_, err := s.Locate()
	require.NoError(t, err)
	assert.Contains(t, s.JavaSource(), `from registry key HKEY_LOCAL_MACHINE\Software\jvmfind`)
}

func TestLoadInvalidStrategy(t *testing.T) {
	isolate(t, "JVMFIND_DETECTION=registry\n")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")
}

func TestSetStrategy(t *testing.T) {
	s := &Settings{Strategy: StrategyValid}
	require.NoError(t, s.SetStrategy("path"))
	assert.Equal(t, StrategyPath, s.Strategy)
	assert.Error(t, s.SetStrategy("nope"))
}

func TestUseJavaDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	s := &Settings{}
	got, err := s.UseJavaDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.Equal(t, dir, s.JavaDir)

	_, err = s.UseJavaDir(file)
	assert.EqualError(t, err, `javadir '`+file+`' is not a directory`)

	missing := filepath.Join(dir, "missing")
	_, err = s.UseJavaDir(missing)
	assert.EqualError(t, err, `javadir '`+missing+`' doesn't exist`)
}

func TestLocateJavaDir(t *testing.T) {
	dir := t.TempDir()
	s := &Settings{Strategy: StrategyPath, JavaDir: dir, javaSource: "environment variable"}
	home, err := s.Locate()
	require.NoError(t, err)
	assert.Equal(t, &java.Home{Path: dir}, home)
	assert.Contains(t, s.JavaSource(), "environment variable")
}

func TestLocateMissingJavaDir(t *testing.T) {
	s := &Settings{JavaDir: filepath.Join(t.TempDir(), "missing"), javaSource: "config file"}
	_, err := s.Locate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Java location configured using config file")
}

func TestLocateJavaHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(java.EnvVar, dir)
	s := &Settings{Strategy: StrategyValid}
	home, err := s.Locate()
	require.NoError(t, err)
	assert.Equal(t, dir, home.Path)
	assert.Equal(t, "JAVA_HOME environment variable - "+dir, s.JavaSource())
}
