package creds_test

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"time"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/creds"
	"github.com/slipway/slipway/yard/creds/credsfakes"
	"github.com/slipway/slipway/yard/db/dbfakes"
	"github.com/slipway/slipway/yard/db/encryption"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Vault", func() {
	var (
		project  *dbfakes.FakeProject
		strategy encryption.Strategy
		vault    creds.Vault
	)

	BeforeEach(func() {
		project = new(dbfakes.FakeProject)
		project.IDReturns(7)
		strategy = encryption.NewNoEncryption()
		vault = creds.NewVault(strategy, creds.DBSecretReader{})
	})

	Describe("Put", func() {
		It("stores the value on the project", func() {
			err := vault.Put(project, "DEPLOY_TOKEN", []byte("hunter2"))
			Expect(err).ToNot(HaveOccurred())

			Expect(project.SaveSecretCallCount()).To(Equal(1))
			name, value := project.SaveSecretArgsForCall(0)
			Expect(name).To(Equal("DEPLOY_TOKEN"))
			Expect(value).To(Equal([]byte("hunter2")))
		})

		It("accepts names with leading underscores and digits after the first rune", func() {
			Expect(vault.Put(project, "_PRIVATE", []byte("v"))).To(Succeed())
			Expect(vault.Put(project, "S3_BUCKET_2", []byte("v"))).To(Succeed())
		})

		DescribeTable("rejects invalid names without touching storage",
			func(name string) {
				err := vault.Put(project, name, []byte("v"))
				Expect(err).To(BeAssignableToTypeOf(yard.ValidationError{}))
				Expect(project.SaveSecretCallCount()).To(BeZero())
			},
			Entry("empty", ""),
			Entry("lowercase", "deploy_token"),
			Entry("leading digit", "2FAST"),
			Entry("hyphen", "DEPLOY-TOKEN"),
			Entry("space", "DEPLOY TOKEN"),
			Entry("dollar", "$HOME"),
		)

		It("propagates storage errors", func() {
			disaster := errors.New("nope")
			project.SaveSecretReturns(disaster)

			err := vault.Put(project, "DEPLOY_TOKEN", []byte("v"))
			Expect(err).To(MatchError(disaster))
		})
	})

	Describe("Delete", func() {
		It("reports whether the secret existed", func() {
			project.DeleteSecretReturns(true, nil)
			found, err := vault.Delete(project, "DEPLOY_TOKEN")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())

			project.DeleteSecretReturns(false, nil)
			found, err = vault.Delete(project, "NEVER_THERE")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})

	Describe("Materialise", func() {
		BeforeEach(func() {
			project.SecretNamesReturns([]string{"API_KEY", "DB_PASSWORD"}, nil)
			project.SecretRowStub = func(name string) (string, *string, bool, error) {
				switch name {
				case "API_KEY":
					return "key-plaintext", nil, true, nil
				case "DB_PASSWORD":
					return "pw-plaintext", nil, true, nil
				default:
					return "", nil, false, nil
				}
			}
		})

		It("decrypts every stored secret into the bundle", func() {
			bundle, err := vault.Materialise(project)
			Expect(err).ToNot(HaveOccurred())

			Expect(bundle.Len()).To(Equal(2))
			Expect(bundle.Names()).To(Equal([]string{"API_KEY", "DB_PASSWORD"}))

			value, found := bundle.Lookup("API_KEY")
			Expect(found).To(BeTrue())
			Expect(value).To(Equal("key-plaintext"))
		})

		It("skips rows deleted between listing and read", func() {
			project.SecretNamesReturns([]string{"API_KEY", "GONE"}, nil)

			bundle, err := vault.Materialise(project)
			Expect(err).ToNot(HaveOccurred())
			Expect(bundle.Len()).To(Equal(1))

			_, found := bundle.Lookup("GONE")
			Expect(found).To(BeFalse())
		})

		It("fails when a row cannot be read", func() {
			disaster := errors.New("connection reset")
			reader := new(credsfakes.FakeSecretReader)
			reader.ReadSecretReturns("", nil, false, disaster)
			vault = creds.NewVault(strategy, reader)

			_, err := vault.Materialise(project)
			Expect(err).To(MatchError(disaster))
		})
	})

	Describe("with an AES-GCM key", func() {
		var rows map[string]struct {
			ciphertext string
			nonce      *string
		}

		BeforeEach(func() {
			block, err := aes.NewCipher(randomKey())
			Expect(err).ToNot(HaveOccurred())
			aesgcm, err := cipher.NewGCM(block)
			Expect(err).ToNot(HaveOccurred())
			strategy = encryption.NewKey(aesgcm)
			vault = creds.NewVault(strategy, creds.DBSecretReader{})

			rows = map[string]struct {
				ciphertext string
				nonce      *string
			}{}

			// Store through the same strategy the db layer would use.
			project.SaveSecretStub = func(name string, value []byte) error {
				ciphertext, nonce, err := strategy.Encrypt(value)
				if err != nil {
					return err
				}
				rows[name] = struct {
					ciphertext string
					nonce      *string
				}{ciphertext, nonce}
				return nil
			}
			project.SecretRowStub = func(name string) (string, *string, bool, error) {
				row, found := rows[name]
				if !found {
					return "", nil, false, nil
				}
				return row.ciphertext, row.nonce, true, nil
			}
			project.SecretNamesStub = func() ([]string, error) {
				names := []string{}
				for name := range rows {
					names = append(names, name)
				}
				return names, nil
			}
		})

		It("round trips plaintext through ciphertext rows", func() {
			Expect(vault.Put(project, "SIGNING_KEY", []byte("s3cret"))).To(Succeed())

			ciphertext, _, found, err := project.SecretRow("SIGNING_KEY")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(ciphertext).ToNot(ContainSubstring("s3cret"))

			bundle, err := vault.Materialise(project)
			Expect(err).ToNot(HaveOccurred())

			value, found := bundle.Lookup("SIGNING_KEY")
			Expect(found).To(BeTrue())
			Expect(value).To(Equal("s3cret"))
		})
	})

	Describe("cache invalidation", func() {
		var (
			reader *credsfakes.FakeSecretReader
			cached *creds.CachedSecrets
		)

		BeforeEach(func() {
			reader = new(credsfakes.FakeSecretReader)
			reader.ReadSecretReturns("stale-row", nil, true, nil)
			cached = creds.NewCachedSecrets(reader, creds.SecretCacheConfig{
				Duration:         time.Minute,
				DurationNotFound: 10 * time.Second,
				PurgeInterval:    time.Minute,
			})
			vault = creds.NewVault(strategy, cached)
		})

		It("drops the cached row when the secret is overwritten", func() {
			_, _, _, err := cached.ReadSecret(project, "API_KEY")
			Expect(err).ToNot(HaveOccurred())
			Expect(reader.ReadSecretCallCount()).To(Equal(1))

			// Cached now; a second read stays local.
			_, _, _, err = cached.ReadSecret(project, "API_KEY")
			Expect(err).ToNot(HaveOccurred())
			Expect(reader.ReadSecretCallCount()).To(Equal(1))

			Expect(vault.Put(project, "API_KEY", []byte("fresh"))).To(Succeed())

			_, _, _, err = cached.ReadSecret(project, "API_KEY")
			Expect(err).ToNot(HaveOccurred())
			Expect(reader.ReadSecretCallCount()).To(Equal(2))
		})
	})
})

func randomKey() []byte {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	Expect(err).ToNot(HaveOccurred())
	return key
}
