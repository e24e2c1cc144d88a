//go:build !windows

package modding

import "os/exec"

func hideConsole(cmd *exec.Cmd) {}
