package scheduler

import (
	_ "embed"
	"os"
	"strings"

	"github.com/go-pkgz/lgr"
)

//go:embed greetings.txt
var defaultGreetings string

// LoadGreetings reads reminder greetings from file, one per line, blank lines ignored.
// Empty path, unreadable or empty file gives the built-in list.
func LoadGreetings(path string) []string {
	if path == "" {
		return parseGreetings(defaultGreetings)
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		lgr.Printf("[WARN] can't read greetings from %s, use defaults: %v", path, err)
		return parseGreetings(defaultGreetings)
	}
	res := parseGreetings(string(data))
	if len(res) == 0 {
		lgr.Printf("[WARN] no greetings in %s, use defaults", path)
		return parseGreetings(defaultGreetings)
	}
	return res
}

func parseGreetings(s string) []string {
	res := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			res = append(res, line)
		}
	}
	return res
}
