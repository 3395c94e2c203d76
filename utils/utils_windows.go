package utils

import (
	"os/exec"
	"syscall"
)

const executableSuffix = ".exe"

func HideWindow(cmd *exec.Cmd) {
	var sysProcAttr *syscall.SysProcAttr
	if cmd.SysProcAttr != nil {
		sysProcAttr = cmd.SysProcAttr
	} else {
		sysProcAttr = &syscall.SysProcAttr{}
		cmd.SysProcAttr = sysProcAttr
	}
	sysProcAttr.HideWindow = true
}
