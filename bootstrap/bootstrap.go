package bootstrap

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	"github.com/rocketsoftware/jvmfind/java"
	"github.com/rocketsoftware/jvmfind/settings"
	"github.com/rocketsoftware/jvmfind/utils"
	"github.com/rocketsoftware/jvmfind/utils/log"
)

type nameArg struct {
	Name string `arg:"" help:"File or directory name, matched literally."`
}

type cli struct {
	Debug    bool   `help:"Enable debug logging emitted to stderr."`
	JSON     bool   `name:"json" help:"Print results as JSON."`
	Strategy string `help:"Java detection strategy: JavaHome, Valid or Path."`
	JavaDir  string `name:"java-dir" help:"Use the Java installation in this directory." type:"path"`

	Home          struct{} `cmd:"" default:"1" help:"Print the located Java home."`
	Info          struct{} `cmd:"" help:"Print the Java home as found by every lookup, its include directories and native library."`
	Include       struct{} `cmd:"" help:"Print the JNI include directories."`
	NativeLibrary struct{} `cmd:"" name:"native-library" help:"Print the path of the native JVM library."`
	Bin           struct{} `cmd:"" help:"Print the bin directory."`
	Release       struct{} `cmd:"" help:"Print the release metadata of the Java home."`
	FindFile      nameArg  `cmd:"" name:"find-file" help:"Find a file anywhere in the Java home."`
	FindFolder    nameArg  `cmd:"" name:"find-folder" help:"Find a directory anywhere in the Java home."`
	List          struct {
		Require string `help:"Only list installations matching this version, e.g. 1.8 or 11+."`
	} `cmd:"" help:"List every Java installation found on this machine."`
	Version struct{} `cmd:"" help:"Show version."`
}

type exitCode int

type app struct {
	productName    string
	productTitle   string
	productVersion string
	stdout         io.Writer
	json           bool
	settings       *settings.Settings
}

func Run(productName, productTitle, productVersion string) {
	os.Exit(run(productName, productTitle, productVersion, os.Args[1:], os.Stdout, os.Stderr))
}

func run(productName, productTitle, productVersion string, args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			exit, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(exit)
		}
	}()
	var c cli
	parser, err := kong.New(&c,
		kong.Name(productName),
		kong.Description(productTitle+" locates Java installations and the files inside them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitCode(code)) }),
	)
	if err != nil {
		log.SetOutput(stderr)
		log.Println("unable to create command line parser:", err)
		return 1
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 1
	}
	log.SetOutput(stderr)
	log.SetDebug(c.Debug)
	log.Debugf("starting %s %s with arguments %v", productTitle, productVersion, args)
	log.Debugf("current platform is OS=%q Architecture=%q", runtime.GOOS, runtime.GOARCH)

	a := &app{
		productName:    productName,
		productTitle:   productTitle,
		productVersion: productVersion,
		stdout:         stdout,
		json:           c.JSON,
	}
	if err := a.dispatch(ctx.Command(), &c); err != nil {
		fmt.Fprintf(stderr, "%s: error: %v\n", productName, err)
		return 1
	}
	return 0
}

func (a *app) dispatch(command string, c *cli) error {
	if command == "version" {
		return a.print(map[string]string{"name": a.productName, "version": a.productVersion},
			fmt.Sprintf("%s %s", a.productTitle, a.productVersion))
	}
	s, err := settings.Load()
	if err != nil {
		return err
	}
	if c.Strategy != "" {
		if err := s.SetStrategy(c.Strategy); err != nil {
			return err
		}
	}
	if c.JavaDir != "" {
		if _, err := s.UseJavaDir(c.JavaDir); err != nil {
			return err
		}
	}
	a.settings = s

	switch command {
	case "list":
		return a.list(c.List.Require)
	case "info":
		return a.info()
	}

	home, err := s.Locate()
	if err != nil {
		return err
	}
	switch command {
	case "home":
		return a.print(map[string]string{"path": home.Path, "source": s.JavaSource()}, home.Path)
	case "include":
		return a.include(home)
	case "native-library":
		lib, err := home.NativeLibrary()
		if err != nil {
			return err
		}
		return a.print(map[string]string{"path": lib}, lib)
	case "bin":
		bin, err := home.Bin()
		if err != nil {
			return err
		}
		return a.print(map[string]string{"path": bin}, bin)
	case "release":
		return a.release(home)
	case "find-file <name>":
		path, err := home.FindFile(c.FindFile.Name)
		return a.found(c.FindFile.Name, path, err)
	case "find-folder <name>":
		path, err := home.FindFolder(c.FindFolder.Name)
		return a.found(c.FindFolder.Name, path, err)
	}
	return errors.Errorf("unknown command %q", command)
}

func (a *app) print(v interface{}, text string) error {
	if a.json {
		return utils.PrettyPrint(a.stdout, v)
	}
	_, err := fmt.Fprintln(a.stdout, text)
	return err
}

func (a *app) found(name, path string, err error) error {
	if err != nil {
		return err
	}
	if path == "" {
		return errors.Errorf("%s wasn't found", name)
	}
	return a.print(map[string]string{"path": path}, path)
}

func (a *app) include(home *java.Home) error {
	dirs, err := home.Include()
	if err != nil {
		return err
	}
	if dirs == nil {
		return errors.Errorf("%s has no include directory, is a JDK installed?", home.Path)
	}
	if a.json {
		return utils.PrettyPrint(a.stdout, dirs)
	}
	for _, dir := range dirs {
		fmt.Fprintln(a.stdout, dir)
	}
	return nil
}

func (a *app) release(home *java.Home) error {
	release, err := home.Release()
	if err != nil {
		return err
	}
	if a.json {
		return utils.PrettyPrint(a.stdout, release)
	}
	keys := make([]string, 0, len(release.Values))
	for key := range release.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(a.stdout, "%s=%q\n", key, release.Values[key])
	}
	return nil
}

type installation struct {
	Path    string `json:"path"`
	Version string `json:"version,omitempty"`
}

func (a *app) list(require string) error {
	var required *java.Version
	if require != "" {
		var err error
		if required, err = java.ParseVersion(require); err != nil {
			return err
		}
	}
	homes, err := java.Installations()
	if err != nil {
		return err
	}
	installations := []installation{}
	for _, home := range homes {
		entry := installation{Path: home.Path}
		release, err := home.Release()
		if err == nil {
			entry.Version = release.JavaVersion
		}
		if required != nil {
			version, err := home.Version()
			if err != nil {
				log.Debugf("skipping %s: %v", home.Path, err)
				continue
			}
			if !version.Matches(required) {
				continue
			}
		}
		installations = append(installations, entry)
	}
	if a.json {
		return utils.PrettyPrint(a.stdout, installations)
	}
	for _, entry := range installations {
		if entry.Version != "" {
			fmt.Fprintf(a.stdout, "%s (%s)\n", entry.Path, entry.Version)
		} else {
			fmt.Fprintln(a.stdout, entry.Path)
		}
	}
	return nil
}

type info struct {
	Home          string   `json:"home"`
	ActiveHome    string   `json:"activeHome"`
	ValidHome     string   `json:"validHome"`
	Include       []string `json:"include"`
	NativeLibrary string   `json:"nativeLibrary"`
}

func (a *app) info() error {
	home, err := java.FindHome()
	if err != nil {
		return err
	}
	active, err := java.FindActiveHome()
	if err != nil {
		return err
	}
	valid, err := java.FindValidHome()
	if err != nil {
		return err
	}
	include, err := home.Include()
	if err != nil {
		return err
	}
	lib, err := home.NativeLibrary()
	if err != nil {
		return err
	}
	result := info{
		Home:          home.Path,
		ActiveHome:    active.Path,
		ValidHome:     valid.Path,
		Include:       include,
		NativeLibrary: lib,
	}
	if a.json {
		return utils.PrettyPrint(a.stdout, result)
	}
	fmt.Fprintf(a.stdout, "home: %s\n", result.Home)
	fmt.Fprintf(a.stdout, "active home: %s\n", result.ActiveHome)
	fmt.Fprintf(a.stdout, "valid home: %s\n", result.ValidHome)
	if include == nil {
		fmt.Fprintln(a.stdout, "include: <JDK not installed?>")
	} else {
		fmt.Fprintln(a.stdout, "include:")
		for _, dir := range include {
			fmt.Fprintf(a.stdout, "\t%s\n", dir)
		}
	}
	fmt.Fprintf(a.stdout, "native library: %s\n", result.NativeLibrary)
	return nil
}
