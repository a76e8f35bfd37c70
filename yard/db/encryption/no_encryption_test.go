package encryption_test

import (
	"github.com/slipway/slipway/yard/db/encryption"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NoEncryption", func() {
	var strategy *encryption.NoEncryption

	BeforeEach(func() {
		strategy = encryption.NewNoEncryption()
	})

	It("stores the value as-is with no nonce", func() {
		text, nonce, err := strategy.Encrypt([]byte("some value"))
		Expect(err).ToNot(HaveOccurred())
		Expect(text).To(Equal("some value"))
		Expect(nonce).To(BeNil())
	})

	It("reads back a value stored without encryption", func() {
		plaintext, err := strategy.Decrypt("some value", nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(plaintext).To(Equal([]byte("some value")))
	})

	It("refuses rows written by an encrypting strategy", func() {
		nonce := "deadbeef"
		_, err := strategy.Decrypt("abc123", &nonce)
		Expect(err).To(Equal(encryption.ErrDataIsEncrypted))
	})
})
