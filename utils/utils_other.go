//go:build !windows

package utils

import "os/exec"

const executableSuffix = ""

func HideWindow(cmd *exec.Cmd) {
}
