package creds

import (
	"fmt"
	"regexp"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/db/encryption"
)

// Secret names line up with POSIX environment variable naming so they can be
// exported into build containers verbatim.
var secretNameRegexp = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . SecretReader

// SecretReader fetches one stored secret row. Rows hold ciphertext; callers
// decrypt. Implementations may memoise, which is why reads are expressed
// against the row rather than the plaintext.
type SecretReader interface {
	ReadSecret(project db.Project, name string) (ciphertext string, nonce *string, found bool, err error)
}

// DBSecretReader reads rows straight from the project's secrets table.
type DBSecretReader struct{}

func (DBSecretReader) ReadSecret(project db.Project, name string) (string, *string, bool, error) {
	return project.SecretRow(name)
}

// Invalidator is implemented by readers that memoise rows and need to be
// told about writes.
type Invalidator interface {
	Invalidate(projectID int, name string)
}

//counterfeiter:generate . Vault

// Vault stores project secrets encrypted at rest and hands the executor a
// decrypted bundle once per build. Plaintext never leaves the bundle.
type Vault interface {
	Put(project db.Project, name string, value []byte) error
	Delete(project db.Project, name string) (bool, error)
	Materialise(project db.Project) (*SecretBundle, error)
}

type vault struct {
	strategy encryption.Strategy
	reader   SecretReader
}

func NewVault(strategy encryption.Strategy, reader SecretReader) Vault {
	return &vault{
		strategy: strategy,
		reader:   reader,
	}
}

// Put overwrites on name collision, matching how operators rotate values.
func (v *vault) Put(project db.Project, name string, value []byte) error {
	if !secretNameRegexp.MatchString(name) {
		return yard.ValidationError{
			Reason: fmt.Sprintf("invalid secret name %q: must match %s", name, secretNameRegexp.String()),
		}
	}

	err := project.SaveSecret(name, value)
	if err != nil {
		return err
	}

	v.invalidate(project.ID(), name)
	return nil
}

func (v *vault) Delete(project db.Project, name string) (bool, error) {
	found, err := project.DeleteSecret(name)
	if err != nil {
		return false, err
	}

	v.invalidate(project.ID(), name)
	return found, nil
}

// Materialise decrypts every secret the project has stored. Missing required
// names are the executor's call; the vault only reports what exists.
func (v *vault) Materialise(project db.Project) (*SecretBundle, error) {
	names, err := project.SecretNames()
	if err != nil {
		return nil, err
	}

	values := make(map[string][]byte, len(names))
	for _, name := range names {
		ciphertext, nonce, found, err := v.reader.ReadSecret(project, name)
		if err != nil {
			return nil, err
		}
		if !found {
			// Deleted between the listing and the read. Treat as absent.
			continue
		}

		plaintext, err := v.strategy.Decrypt(ciphertext, nonce)
		if err != nil {
			return nil, fmt.Errorf("decrypt secret %q: %w", name, err)
		}

		values[name] = plaintext
	}

	return NewSecretBundle(values), nil
}

func (v *vault) invalidate(projectID int, name string) {
	if inv, ok := v.reader.(Invalidator); ok {
		inv.Invalidate(projectID, name)
	}
}
