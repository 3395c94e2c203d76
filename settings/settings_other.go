//go:build !windows

package settings

func getPlatformSettings() platformSettings {
	return platformSettings{}
}
