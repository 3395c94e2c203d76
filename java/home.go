// Package java locates Java installations and the well-known files inside them.
package java

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rocketsoftware/jvmfind/utils"
	"github.com/rocketsoftware/jvmfind/utils/log"
)

// EnvVar is the environment variable consulted before running java.
const EnvVar = "JAVA_HOME"

// javaCommand is resolved against PATH when querying the active installation.
var javaCommand = "java"

// Home is a located Java home directory. A Home is not guaranteed to be
// valid (a stale JAVA_HOME, a hand-built value), so every path derived
// from it is checked when used.
type Home struct {
	Path string `json:"path"`
}

func (h *Home) String() string {
	return h.Path
}

// Join joins elem onto the home directory.
func (h *Home) Join(elem ...string) string {
	return filepath.Join(append([]string{h.Path}, elem...)...)
}

// FindHome returns JAVA_HOME if it is non-empty, or queries the active
// Java installation. JAVA_HOME is not validated.
func FindHome() (*Home, error) {
	if javaHome := os.Getenv(EnvVar); javaHome != "" {
		log.Debugf("using %s environment variable %s", EnvVar, javaHome)
		return &Home{Path: javaHome}, nil
	}
	return FindActiveHome()
}

// FindValidHome checks that JAVA_HOME points to an existing directory and
// falls back to the active Java installation otherwise. Errors accessing
// JAVA_HOME other than it not existing (permissions, broken links) are
// returned as-is instead of falling back.
func FindValidHome() (*Home, error) {
	javaHome := os.Getenv(EnvVar)
	if javaHome == "" {
		return FindActiveHome()
	}
	isDir, err := utils.IsDir(javaHome)
	if err != nil {
		return nil, ioError(err, javaHome)
	}
	if isDir {
		log.Debugf("using %s environment variable %s", EnvVar, javaHome)
		return &Home{Path: javaHome}, nil
	}
	log.Debugf("%s environment variable %s is not a directory, querying java executable", EnvVar, javaHome)
	return FindActiveHome()
}

// FindActiveHome queries the first java executable on PATH for its home
// directory using java -XshowSettings:properties -version.
func FindActiveHome() (*Home, error) {
	log.Debugf("finding currently active %s location by running the %s command from the system path", EnvVar, javaCommand)
	stdout, stderr, err := showSettings(javaCommand)
	if err != nil {
		return nil, err
	}
	var found string
	for _, line := range append(lines(stdout), lines(stderr)...) {
		if strings.Contains(line, "java.home") {
			found = line
			break
		}
	}
	if found == "" {
		log.Debugf("\tnot found")
		return nil, ErrNoJavaHomeProperty
	}
	log.Debugf("\tfound: %s", found)
	i := strings.Index(found, "=")
	if i == -1 {
		return nil, ErrNoJavaHomeProperty
	}
	return &Home{Path: strings.TrimSpace(found[i+1:])}, nil
}

// ActiveProperties returns every system property reported by the java
// executable on PATH.
func ActiveProperties() (Properties, error) {
	stdout, stderr, err := showSettings(javaCommand)
	if err != nil {
		return nil, err
	}
	props := ParseProperties(stderr)
	for key, value := range ParseProperties(stdout) {
		props[key] = value
	}
	return props, nil
}

// showSettings runs java with the property listing enabled. A non-zero
// exit status still yields the captured output; only failing to start the
// process is an error.
func showSettings(command string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(command, "-XshowSettings:properties", "-version")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	utils.HideWindow(cmd)
	if err := cmd.Run(); err != nil {
		if _, exited := err.(*exec.ExitError); !exited {
			return "", "", &ExecutionError{Command: command, Err: err}
		}
		log.Debugf("%s exited with %v", command, err)
	}
	return stdout.String(), stderr.String(), nil
}

func lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
