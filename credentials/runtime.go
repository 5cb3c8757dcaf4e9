// Package credentials assembles the credential store for the resolver.
package credentials

import (
	"os"
	"path/filepath"
	"strings"
)

// Colab-style hosted runtimes expose these marker variables. The probe is a
// pure optional enrichment step: it never raises and never blocks primary
// resolution.
const (
	envRuntimeMarkerTag = "COLAB_RELEASE_TAG"
	envRuntimeMarkerGPU = "COLAB_GPU"

	// envRuntimeSecretsDir overrides where the runtime mounts its secrets.
	envRuntimeSecretsDir = "COLAB_SECRETS_DIR"

	defaultRuntimeSecretsDir = "/content/secrets"
)

// hostedRuntimeActive reports whether the process appears to run inside a
// hosted notebook runtime.
func hostedRuntimeActive() bool {
	return os.Getenv(envRuntimeMarkerTag) != "" || os.Getenv(envRuntimeMarkerGPU) != ""
}

// runtimeSecret reads one secret from the runtime's secret store. The store
// is a directory of per-key files. Any failure yields an empty string; the
// credential is then simply left unset.
func runtimeSecret(key string) string {
	dir := os.Getenv(envRuntimeSecretsDir)
	if dir == "" {
		dir = defaultRuntimeSecretsDir
	}

	data, err := os.ReadFile(filepath.Join(dir, key))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
