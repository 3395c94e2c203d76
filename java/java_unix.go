//go:build !windows && !darwin

package java

// NativeLibraryFilename is the shared library object applications link to.
const NativeLibraryFilename = NativeLibraryFilenameLinux

const isCaseInsensitiveFS = false

var jvmDirs = []string{"/usr/lib/jvm", "/usr/lib64/jvm", "/usr/java", "/usr/local/openjdk", "/opt/java"}

func platformInstallations() ([]string, error) {
	homes := subdirectories("*", jvmDirs...)
	homes = append(homes, subdirectories("jdk*", "/usr/local")...)
	return homes, nil
}
