package java

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/rocketsoftware/jvmfind/utils"
	"github.com/rocketsoftware/jvmfind/utils/log"
)

var errStopWalk = errors.New("stop walk")

// Include returns the include directories needed to compile against JNI
// headers: <home>/include followed by every directory beneath it. It
// returns nil when the home has no include directory, which usually
// means only a JRE is installed.
func (h *Home) Include() ([]string, error) {
	base := h.Join("include")
	log.Debugf("looking for $%s/include at %s", EnvVar, base)
	info, err := os.Stat(base)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, ioError(err, base)
	}
	if !info.IsDir() {
		return nil, &BadHomePathError{Path: h.Path}
	}
	dirs := []string{base}
	err = glob(base, "**/*", func(path string, isDir bool) error {
		if isDir {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}

// NativeLibrary returns the path to the platform native JVM library
// (jvm.dll, libjvm.so or libjli.dylib), suitable for linking with.
func (h *Home) NativeLibrary() (string, error) {
	log.Debugf("looking for JVM native library %s below %s", NativeLibraryFilename, h.Path)
	found, err := h.find(NativeLibraryFilename, false)
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", ErrNoNativeLibrary
	}
	return found, nil
}

// FindFile searches the home directory at any depth for a file named
// name, matched literally. It returns "" if there is none.
func (h *Home) FindFile(name string) (string, error) {
	return h.find(name, false)
}

// FindFolder searches the home directory at any depth for a directory
// named name, matched literally. It returns "" if there is none or name
// is empty.
func (h *Home) FindFolder(name string) (string, error) {
	return h.find(name, true)
}

// Bin returns the bin directory holding the java executables.
func (h *Home) Bin() (string, error) {
	bin := h.Join("bin")
	isDir, err := utils.IsDir(bin)
	if err != nil {
		return "", ioError(err, bin)
	}
	if !isDir {
		return "", &BadHomePathError{Path: h.Path}
	}
	return bin, nil
}

// Executable returns the path of the named program in the bin directory,
// adding the platform executable suffix.
func (h *Home) Executable(name string) (string, error) {
	bin, err := h.Bin()
	if err != nil {
		return "", err
	}
	path := filepath.Join(bin, utils.ExecutableName(name))
	if !utils.IsFile(path) {
		return "", errors.Errorf("%s executable wasn't found in %s", name, bin)
	}
	return path, nil
}

// JDK returns the home of the enclosing JDK. For JDK 8 layouts java.home
// points at <jdk>/jre, so the parent is checked as well. It returns ""
// when only a JRE is installed.
func (h *Home) JDK() string {
	javac := utils.ExecutableName("javac")
	if utils.IsFile(h.Join("bin", javac)) {
		return h.Path
	}
	if strings.EqualFold(filepath.Base(h.Path), "jre") {
		parent := filepath.Dir(h.Path)
		if utils.IsFile(filepath.Join(parent, "bin", javac)) {
			return parent
		}
	}
	return ""
}

// JRE returns the runtime home: the jre subdirectory of a JDK 8 layout,
// or the home itself for modular runtimes.
func (h *Home) JRE() string {
	jre := h.Join("jre")
	if isDir, err := utils.IsDir(jre); err == nil && isDir {
		return jre
	}
	return h.Path
}

func (h *Home) find(name string, wantDir bool) (string, error) {
	if name == "" {
		return "", nil
	}
	var found string
	err := glob(h.Path, "**/"+escapeMeta(name), func(path string, isDir bool) error {
		if isDir != wantDir {
			return nil
		}
		found = path
		return errStopWalk
	})
	if err != nil {
		return "", err
	}
	return found, nil
}

// glob walks base for entries matching the slash-separated pattern and
// calls fn with their native paths. Symbolic links to directories count
// as directories.
func glob(base, pattern string, fn func(path string, isDir bool) error) error {
	fsys := os.DirFS(base)
	err := doublestar.GlobWalk(fsys, pattern, func(p string, d fs.DirEntry) error {
		isDir := d.IsDir()
		if d.Type()&fs.ModeSymlink != 0 {
			if info, err := fs.Stat(fsys, p); err == nil {
				isDir = info.IsDir()
			}
		}
		return fn(filepath.Join(base, filepath.FromSlash(p)), isDir)
	})
	if errors.Is(err, errStopWalk) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "unable to search %s", base)
	}
	return nil
}

func escapeMeta(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '\\', '*', '?', '[', ']', '{', '}':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
