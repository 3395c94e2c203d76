package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/rocketsoftware/jvmfind/java"
	"github.com/rocketsoftware/jvmfind/utils"
	"github.com/rocketsoftware/jvmfind/utils/log"
)

// Strategy selects how the Java home is located.
type Strategy string

const (
	// StrategyJavaHome trusts JAVA_HOME as-is.
	StrategyJavaHome Strategy = "JavaHome"
	// StrategyValid uses JAVA_HOME only if it is an existing directory.
	StrategyValid Strategy = "Valid"
	// StrategyPath asks the java executable found in PATH.
	StrategyPath Strategy = "Path"
)

const (
	DetectionVariable  = "JVMFIND_DETECTION"
	JavaDirVariable    = "JVMFIND_JAVA_DIR"
	ConfigFileVariable = "JVMFIND_CONFIG"
)

const registryKeyPath = `Software\jvmfind`

// platformSettings holds values from the platform settings store, each
// with the place it was read from.
type platformSettings struct {
	Strategy       string
	StrategySource string
	JavaDir        string
	JavaDirSource  string
}

func registrySource(rootName string) string {
	return `registry key ` + rootName + `\` + registryKeyPath
}

var strategies = []Strategy{StrategyJavaHome, StrategyValid, StrategyPath}

func ParseStrategy(s string) (Strategy, error) {
	for _, strategy := range strategies {
		if strings.EqualFold(s, string(strategy)) {
			return strategy, nil
		}
	}
	return "", errors.Errorf(`unknown Java detection strategy "%s"`, s)
}

type Settings struct {
	Strategy Strategy
	JavaDir  string

	strategySource string
	javaSource     string
}

// Load reads the settings from, in increasing precedence, the config
// file, the platform settings store and the environment.
func Load() (*Settings, error) {
	s := &Settings{Strategy: StrategyValid, strategySource: "default"}
	configFile, err := ConfigFile()
	if err != nil {
		return nil, err
	}
	if utils.IsFile(configFile) {
		values, err := godotenv.Read(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
		}
		if err := s.apply(values[DetectionVariable], values[JavaDirVariable], "config file "+configFile); err != nil {
			return nil, err
		}
	}
	platform := getPlatformSettings()
	if err := s.apply(platform.Strategy, "", platform.StrategySource); err != nil {
		return nil, err
	}
	if err := s.apply("", platform.JavaDir, platform.JavaDirSource); err != nil {
		return nil, err
	}
	if err := s.apply(os.Getenv(DetectionVariable), os.Getenv(JavaDirVariable), "environment variable"); err != nil {
		return nil, err
	}
	log.Debugf("java detection strategy is %s from %s", s.Strategy, s.strategySource)
	return s, nil
}

// ConfigFile returns the path of the dotenv config file, which may not exist.
func ConfigFile() (string, error) {
	if path := os.Getenv(ConfigFileVariable); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to locate user config directory")
	}
	return filepath.Join(dir, "jvmfind", "jvmfind.env"), nil
}

func (s *Settings) apply(strategy, javaDir, source string) error {
	if strategy != "" {
		parsed, err := ParseStrategy(strategy)
		if err != nil {
			return errors.Wrapf(err, "invalid setting in %s", source)
		}
		s.Strategy = parsed
		s.strategySource = source
	}
	if javaDir != "" {
		s.JavaDir = javaDir
		s.javaSource = source
	}
	return nil
}

// SetStrategy overrides the strategy from a command line argument.
func (s *Settings) SetStrategy(strategy string) error {
	return s.apply(strategy, "", "command line argument")
}

// UseJavaDir forces to use Java installation from directory dir.
// Returns absolute path to the specified directory.
func (s *Settings) UseJavaDir(dir string) (string, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, `invalid javadir '%s'`, dir)
	}
	fileInfo, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return "", errors.Errorf(`javadir '%s' doesn't exist`, dir)
	}
	if err != nil {
		return "", errors.Wrapf(err, `invalid javadir '%s'`, dir)
	}
	if !fileInfo.IsDir() {
		return "", errors.Errorf(`javadir '%s' is not a directory`, dir)
	}
	s.JavaDir = absPath
	s.javaSource = "command line argument"
	return absPath, nil
}

// Locate finds the Java home according to the settings. An explicit Java
// directory wins over the detection strategy.
func (s *Settings) Locate() (*java.Home, error) {
	if s.JavaDir != "" {
		source := s.javaSource
		dir, err := s.UseJavaDir(s.JavaDir)
		if err != nil {
			return nil, errors.Wrapf(err, "Java location configured using %s", source)
		}
		s.javaSource = `javadir '` + dir + `' from ` + source
		log.Debugf("java home is %s found using %s", dir, s.javaSource)
		return &java.Home{Path: dir}, nil
	}
	var home *java.Home
	var err error
	switch s.Strategy {
	case StrategyJavaHome:
		home, err = java.FindHome()
	case StrategyPath:
		home, err = java.FindActiveHome()
	default:
		home, err = java.FindValidHome()
	}
	if err != nil {
		return nil, err
	}
	if javaHome := os.Getenv(java.EnvVar); javaHome != "" && filepath.Clean(javaHome) == filepath.Clean(home.Path) && s.Strategy != StrategyPath {
		s.javaSource = java.EnvVar + " environment variable - " + javaHome
	} else {
		s.javaSource = "PATH environment variable"
	}
	log.Debugf("java home is %s found using %s", home.Path, s.javaSource)
	return home, nil
}

// StrategySource describes where the detection strategy was configured.
func (s *Settings) StrategySource() string {
	return s.strategySource
}

// JavaSource describes where the last located Java home came from.
func (s *Settings) JavaSource() string {
	return s.javaSource
}
