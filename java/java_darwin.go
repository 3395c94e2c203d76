package java

import (
	"bytes"
	"os/exec"

	"github.com/rocketsoftware/jvmfind/utils/log"
)

// NativeLibraryFilename is the dynamic library applications link to.
const NativeLibraryFilename = NativeLibraryFilenameMac

const isCaseInsensitiveFS = true

const javaHomeTool = "/usr/libexec/java_home"

func platformInstallations() ([]string, error) {
	var stdout bytes.Buffer
	cmd := exec.Command(javaHomeTool, "-X")
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		log.Debugf("%s -X failed: %v", javaHomeTool, err)
		return bundledVirtualMachines(), nil
	}
	vms, err := parseJavaHomeXML(stdout.Bytes())
	if err != nil {
		log.Printf("ignoring %s -X output: %v", javaHomeTool, err)
		return bundledVirtualMachines(), nil
	}
	return enabledHomes(vms), nil
}

func bundledVirtualMachines() []string {
	return subdirectories("*/Contents/Home", "/Library/Java/JavaVirtualMachines")
}
