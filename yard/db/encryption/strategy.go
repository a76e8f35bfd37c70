package encryption

import "errors"

var (
	ErrDataIsEncrypted    = errors.New("failed to decrypt data that is encrypted")
	ErrDataIsNotEncrypted = errors.New("failed to decrypt data that is not encrypted")
)

// Strategy encrypts values before they reach the database and decrypts them
// on the way out. The nonce is nil for values stored without encryption,
// which is how rows written by one strategy are recognised by another.
type Strategy interface {
	Encrypt(plaintext []byte) (string, *string, error)
	Decrypt(text string, nonce *string) ([]byte, error)
}
