package manpager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WritePages writes every rendered page into dir, creating it as
// needed. Callers wanting all-or-nothing runs render the full page set
// before calling this.
func WritePages(dir string, pages []Page) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, page := range pages {
		if err := os.WriteFile(filepath.Join(dir, page.Name), page.Content, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// LauncherScript builds a POSIX sh wrapper that runs target under the
// program's name, the per-module launcher of the build-step surface.
// The target is quoted so paths with spaces or shell metacharacters
// survive.
func LauncherScript(target string) []byte {
	return fmt.Appendf(nil, "#!/bin/sh\nexec %s \"$@\"\n", shellQuote(target))
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// WriteLauncher writes an executable launcher script named after the
// program into dir.
func WriteLauncher(dir, program, target string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, program), LauncherScript(target), 0o755)
}
