package java

import (
	"bytes"

	"github.com/pkg/errors"
	"howett.net/plist"
)

// VirtualMachine is one entry of the macOS java_home -X listing.
type VirtualMachine struct {
	Home    string `plist:"JVMHomePath"`
	Name    string `plist:"JVMName"`
	Vendor  string `plist:"JVMVendor"`
	Version string `plist:"JVMVersion"`
	Arch    string `plist:"JVMArch"`
	Enabled bool   `plist:"JVMEnabled"`
}

func parseJavaHomeXML(data []byte) ([]VirtualMachine, error) {
	var vms []VirtualMachine
	decoder := plist.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&vms); err != nil {
		return nil, errors.Wrap(err, "unable to decode java_home output")
	}
	return vms, nil
}

// enabledHomes returns the homes of the virtual machines that are not
// disabled in the java_home listing.
func enabledHomes(vms []VirtualMachine) []string {
	var homes []string
	for _, vm := range vms {
		if !vm.Enabled || vm.Home == "" {
			continue
		}
		homes = append(homes, vm.Home)
	}
	return homes
}
