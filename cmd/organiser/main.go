package main

import (
	"os"
	"strings"

	"playlist-organiser/internal/cli"
	"playlist-organiser/internal/index"
)

func rewriteDirectMoveArgs(argv []string) []string {
	// Convenience: `organiser <item-id> <point-key>` works like `organiser move <item-id> <point-key>`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv before parsing.
	// Persistent flags may come first (e.g. `organiser --tree lib.yaml a root/insertion/0`), so
	// positionals are found by skipping flags and their values.
	if len(argv) < 3 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":    true,
		"--tree":      true,
		"--journal":   true,
		"--log-level": true,
		"--log-file":  true,
		"--format":    true,
	}

	var positional []int
	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		positional = append(positional, i)
	}

	if len(positional) != 2 {
		return argv
	}
	if _, ok := index.ParseKey(argv[positional[1]]); !ok {
		return argv
	}
	at := positional[0]
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:at]...)
	out = append(out, "move")
	out = append(out, argv[at:]...)
	return out
}

func main() {
	os.Args = rewriteDirectMoveArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
