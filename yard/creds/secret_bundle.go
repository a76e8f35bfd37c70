package creds

import (
	"fmt"
	"sort"
	"sync"
)

// SecretBundle is the decrypted secret set for exactly one build. The
// executor materialises it immediately before provisioning the container and
// zeroises it when the build terminates, so plaintext lifetime is bounded by
// the build.
type SecretBundle struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewSecretBundle(values map[string][]byte) *SecretBundle {
	return &SecretBundle{values: values}
}

func (b *SecretBundle) Lookup(name string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	value, found := b.values[name]
	if !found {
		return "", false
	}
	return string(value), true
}

func (b *SecretBundle) Names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	names := make([]string, 0, len(b.values))
	for name := range b.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b *SecretBundle) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.values)
}

// Env renders the bundle as NAME=value pairs for container exec, sorted so
// provisioning is deterministic.
func (b *SecretBundle) Env() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	env := make([]string, 0, len(b.values))
	for name, value := range b.values {
		env = append(env, fmt.Sprintf("%s=%s", name, value))
	}
	sort.Strings(env)
	return env
}

// RedactionValues lists the plaintext values so log writers can scrub them
// from build output.
func (b *SecretBundle) RedactionValues() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	values := make([]string, 0, len(b.values))
	for _, value := range b.values {
		values = append(values, string(value))
	}
	return values
}

// Zeroise overwrites every value in place and drops the map. Safe to call
// more than once; lookups afterwards report not found.
func (b *SecretBundle) Zeroise() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, value := range b.values {
		for i := range value {
			value[i] = 0
		}
	}
	b.values = nil
}
