package encryption_test

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/slipway/slipway/yard/db/encryption"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Key", func() {
	var key *encryption.Key

	BeforeEach(func() {
		block, err := aes.NewCipher([]byte("AES256Key-32Characters1234567890"))
		Expect(err).ToNot(HaveOccurred())

		aesgcm, err := cipher.NewGCM(block)
		Expect(err).ToNot(HaveOccurred())

		key = encryption.NewKey(aesgcm)
	})

	It("round-trips a value", func() {
		ciphertext, nonce, err := key.Encrypt([]byte("super secret"))
		Expect(err).ToNot(HaveOccurred())
		Expect(nonce).ToNot(BeNil())
		Expect(ciphertext).ToNot(ContainSubstring("super secret"))

		plaintext, err := key.Decrypt(ciphertext, nonce)
		Expect(err).ToNot(HaveOccurred())
		Expect(plaintext).To(Equal([]byte("super secret")))
	})

	It("produces a fresh nonce per encryption", func() {
		_, nonce1, err := key.Encrypt([]byte("same value"))
		Expect(err).ToNot(HaveOccurred())

		_, nonce2, err := key.Encrypt([]byte("same value"))
		Expect(err).ToNot(HaveOccurred())

		Expect(*nonce1).ToNot(Equal(*nonce2))
	})

	It("refuses to decrypt a value stored without encryption", func() {
		_, err := key.Decrypt("plain text row", nil)
		Expect(err).To(Equal(encryption.ErrDataIsNotEncrypted))
	})

	It("fails on a tampered ciphertext", func() {
		ciphertext, nonce, err := key.Encrypt([]byte("super secret"))
		Expect(err).ToNot(HaveOccurred())

		tampered := "00" + ciphertext[2:]
		_, err = key.Decrypt(tampered, nonce)
		Expect(err).To(HaveOccurred())
	})
})
