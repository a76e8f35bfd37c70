package creds_test

import (
	"github.com/slipway/slipway/yard/creds"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SecretBundle", func() {
	var bundle *creds.SecretBundle

	BeforeEach(func() {
		bundle = creds.NewSecretBundle(map[string][]byte{
			"NPM_TOKEN":  []byte("tok-123"),
			"API_KEY":    []byte("key-456"),
			"EMPTY_ONE":  []byte(""),
			"DEPLOY_KEY": []byte("dk-789"),
		})
	})

	Describe("Lookup", func() {
		It("returns the plaintext for a known name", func() {
			value, found := bundle.Lookup("NPM_TOKEN")
			Expect(found).To(BeTrue())
			Expect(value).To(Equal("tok-123"))
		})

		It("reports unknown names as not found", func() {
			_, found := bundle.Lookup("NOPE")
			Expect(found).To(BeFalse())
		})
	})

	Describe("Names", func() {
		It("lists names in sorted order", func() {
			Expect(bundle.Names()).To(Equal([]string{
				"API_KEY", "DEPLOY_KEY", "EMPTY_ONE", "NPM_TOKEN",
			}))
		})
	})

	Describe("Env", func() {
		It("renders sorted NAME=value pairs", func() {
			Expect(bundle.Env()).To(Equal([]string{
				"API_KEY=key-456",
				"DEPLOY_KEY=dk-789",
				"EMPTY_ONE=",
				"NPM_TOKEN=tok-123",
			}))
		})
	})

	Describe("RedactionValues", func() {
		It("exposes every plaintext value", func() {
			Expect(bundle.RedactionValues()).To(ConsistOf(
				"tok-123", "key-456", "", "dk-789",
			))
		})
	})

	Describe("Zeroise", func() {
		It("overwrites the backing bytes in place", func() {
			backing := []byte("super-secret")
			bundle = creds.NewSecretBundle(map[string][]byte{"TOKEN": backing})

			bundle.Zeroise()

			Expect(backing).To(Equal(make([]byte, len("super-secret"))))
		})

		It("empties the bundle", func() {
			bundle.Zeroise()

			Expect(bundle.Len()).To(BeZero())
			Expect(bundle.Names()).To(BeEmpty())
			Expect(bundle.Env()).To(BeEmpty())
			Expect(bundle.RedactionValues()).To(BeEmpty())

			_, found := bundle.Lookup("NPM_TOKEN")
			Expect(found).To(BeFalse())
		})

		It("is safe to call twice", func() {
			bundle.Zeroise()
			Expect(func() { bundle.Zeroise() }).NotTo(Panic())
		})
	})
})
