package tool

import (
	"os"
	"os/exec"
	"strings"
)

// plainEnv are the variables forced on every tool run so that output is
// undecorated text regardless of the caller's terminal settings. They are
// appended in this order.
var plainEnv = []struct{ key, value string }{
	{"NO_COLOR", "1"},
	{"TERM", "dumb"},
}

func isPlainEnvKey(key string) bool {
	for _, kv := range plainEnv {
		if kv.key == key {
			return true
		}
	}
	return false
}

// SetPlainEnv copies the current environment into cmd and overrides the
// variables in plainEnv.
func SetPlainEnv(cmd *exec.Cmd) {
	env := os.Environ()
	result := make([]string, 0, len(env)+len(plainEnv))

	for _, kv := range env {
		key, _, _ := strings.Cut(kv, "=")
		if isPlainEnvKey(key) {
			continue
		}
		result = append(result, kv)
	}

	for _, kv := range plainEnv {
		result = append(result, kv.key+"="+kv.value)
	}

	cmd.Env = result
}
