package settings

import (
	"golang.org/x/sys/windows/registry"
)

// rootKeys are read in order; the current user overrides the machine.
var rootKeys = []struct {
	key  registry.Key
	name string
}{
	{registry.CURRENT_USER, "HKEY_CURRENT_USER"},
	{registry.LOCAL_MACHINE, "HKEY_LOCAL_MACHINE"},
}

func getStringValueFromRootKey(rootKey registry.Key, key string) (string, error) {
	registryKey, err := registry.OpenKey(rootKey, registryKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer registryKey.Close()
	value, _, err := registryKey.GetStringValue(key)
	if err != nil {
		return "", err
	}
	return value, nil
}

// getStringValue returns the first value found and the root key it came from.
func getStringValue(key string) (value, source string) {
	for _, root := range rootKeys {
		value, err := getStringValueFromRootKey(root.key, key)
		if err == nil && value != "" {
			return value, registrySource(root.name)
		}
	}
	return "", ""
}

func getPlatformSettings() platformSettings {
	var p platformSettings
	p.Strategy, p.StrategySource = getStringValue("JavaDetection")
	p.JavaDir, p.JavaDirSource = getStringValue("JavaDir")
	return p
}
