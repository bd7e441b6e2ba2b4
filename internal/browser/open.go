// Package browser hands URLs off to the system's default browser. The
// dashboard uses it for hosted image links, which a terminal cannot render.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches url in the default browser. The command is started, not
// waited on.
func Open(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
