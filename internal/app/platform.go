package app

import (
	"os/exec"
	"runtime"
	"strings"
)

func detectClipboard() ([]string, bool) {
	return detectClipboardInternal(runtime.GOOS, exec.LookPath)
}

func detectClipboardInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	if strings.EqualFold(goos, "windows") {
		for _, candidate := range []string{"clip.exe", "clip"} {
			if path, err := lookPath(candidate); err == nil && path != "" {
				return []string{path}, true
			}
		}
		for _, ps := range []string{"powershell", "powershell.exe", "pwsh"} {
			if path, err := lookPath(ps); err == nil && path != "" {
				return []string{path, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}, true
			}
		}
		return nil, false
	}

	commands := []string{"pbcopy", "xclip", "wl-copy", "xsel"}
	for _, cmd := range commands {
		if resolved, err := lookPath(cmd); err == nil && resolved != "" {
			return []string{resolved}, true
		}
	}

	return nil, false
}
