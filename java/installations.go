package java

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rocketsoftware/jvmfind/utils"
	"github.com/rocketsoftware/jvmfind/utils/log"
)

// Installations returns every distinct Java home found on the machine in
// discovery order: JAVA_HOME, the java executables on PATH, then the
// locations specific to the platform.
func Installations() ([]*Home, error) {
	var candidates []string
	if javaHome := os.Getenv(EnvVar); javaHome != "" {
		candidates = append(candidates, javaHome)
	}
	candidates = append(candidates, pathInstallations(os.Getenv("PATH"))...)
	platform, err := platformInstallations()
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, platform...)

	var homes []*Home
	seen := make(map[string]bool)
	for _, candidate := range candidates {
		key := filepath.Clean(candidate)
		if isCaseInsensitiveFS {
			key = strings.ToLower(key)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		isDir, err := utils.IsDir(candidate)
		if err != nil {
			log.Debugf("skipping java home candidate %s: %v", candidate, err)
			continue
		}
		if !isDir {
			continue
		}
		homes = append(homes, &Home{Path: filepath.Clean(candidate)})
	}
	return homes, nil
}

// pathInstallations walks the PATH list and returns the home of every java
// executable on it. Symbolic links such as /usr/bin/java are resolved
// so that the real installation is reported.
func pathInstallations(pathList string) []string {
	java := utils.ExecutableName("java")
	var homes []string
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			dir = "."
		}
		executable := filepath.Join(dir, java)
		if !utils.IsFile(executable) {
			continue
		}
		resolved, err := filepath.EvalSymlinks(executable)
		if err != nil {
			log.Debugf("unable to resolve %s: %v", executable, err)
			continue
		}
		bin := filepath.Dir(resolved)
		if !strings.EqualFold(filepath.Base(bin), "bin") {
			log.Debugf("%s is not inside a bin directory", resolved)
			continue
		}
		log.Debugf("found java executable %s", resolved)
		homes = append(homes, filepath.Dir(bin))
	}
	return homes
}

// subdirectories lists the directories directly inside each of dirs whose
// names match pattern. Missing directories are skipped.
func subdirectories(pattern string, dirs ...string) []string {
	var result []string
	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		for _, match := range matches {
			if isDir, err := utils.IsDir(match); err == nil && isDir {
				result = append(result, match)
			}
		}
	}
	return result
}
