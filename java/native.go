package java

const (
	// NativeLibraryFilenameWindows is the Windows native library - jvm.dll.
	NativeLibraryFilenameWindows = "jvm.dll"
	// NativeLibraryFilenameLinux is the Linux shared library object - libjvm.so.
	NativeLibraryFilenameLinux = "libjvm.so"
	// NativeLibraryFilenameMac is the macOS dynamic library - libjli.dylib.
	// macOS consumers link to libjli.dylib instead of libjvm.dylib because
	// of a bug in the distribution.
	NativeLibraryFilenameMac = "libjli.dylib"
)
