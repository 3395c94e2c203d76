package java

import (
	"golang.org/x/sys/windows/registry"

	"github.com/rocketsoftware/jvmfind/utils/log"
)

// NativeLibraryFilename is the native library applications link to.
const NativeLibraryFilename = NativeLibraryFilenameWindows

const isCaseInsensitiveFS = true

// javaSoftKeys hold one subkey per installed version, each with a
// JavaHome value. The first two are used up to JDK 1.8, the last two
// from JDK 9 on.
var javaSoftKeys = []string{
	`SOFTWARE\JavaSoft\Java Development Kit`,
	`SOFTWARE\JavaSoft\Java Runtime Environment`,
	`SOFTWARE\JavaSoft\JDK`,
	`SOFTWARE\JavaSoft\JRE`,
}

func getJavaHomesFromRootKey(rootKey registry.Key, path string) ([]string, error) {
	key, err := registry.OpenKey(rootKey, path, registry.ENUMERATE_SUB_KEYS|registry.WOW64_64KEY)
	if err != nil {
		return nil, err
	}
	defer key.Close()
	versions, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, err
	}
	var homes []string
	for _, version := range versions {
		home, err := getJavaHomeFromVersionKey(rootKey, path+`\`+version)
		if err != nil {
			log.Debugf("no JavaHome for %s\\%s: %v", path, version, err)
			continue
		}
		homes = append(homes, home)
	}
	return homes, nil
}

func getJavaHomeFromVersionKey(rootKey registry.Key, path string) (string, error) {
	key, err := registry.OpenKey(rootKey, path, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return "", err
	}
	defer key.Close()
	value, _, err := key.GetStringValue("JavaHome")
	if err != nil {
		return "", err
	}
	return value, nil
}

func platformInstallations() ([]string, error) {
	var homes []string
	for _, path := range javaSoftKeys {
		found, err := getJavaHomesFromRootKey(registry.LOCAL_MACHINE, path)
		if err != nil {
			log.Debugf("unable to read HKLM\\%s: %v", path, err)
			continue
		}
		homes = append(homes, found...)
	}
	return homes, nil
}
