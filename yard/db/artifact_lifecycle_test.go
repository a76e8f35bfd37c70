package db_test

import (
	"time"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ArtifactLifecycle", func() {
	var (
		project   db.Project
		build     db.Build
		lifecycle db.ArtifactLifecycle
	)

	BeforeEach(func() {
		var err error
		project, err = projectFactory.UpsertProject(yard.Project{
			Name:     "acme/anvil",
			CloneURL: "https://git.example.com/acme/anvil.git",
		})
		Expect(err).ToNot(HaveOccurred())

		build, err = buildFactory.CreateBuild(project, yard.Trigger{
			Commit: "deadbeef",
			Branch: "main",
			Kind:   yard.TriggerPush,
		})
		Expect(err).ToNot(HaveOccurred())

		lifecycle = db.NewArtifactLifecycle(dbConn)
	})

	save := func(name string, expiresAt time.Time) db.Artifact {
		artifact, err := build.SaveArtifact(
			name,
			"/var/lib/slipway/artifacts/1/"+name,
			14,
			expiresAt,
		)
		Expect(err).ToNot(HaveOccurred())
		return artifact
	}

	Describe("ExpiredArtifacts", func() {
		It("lists only artifacts whose expiry has passed", func() {
			expired := save("out.tgz", time.Now().Add(-time.Hour))
			save("report.xml", time.Now().Add(time.Hour))

			artifacts, err := lifecycle.ExpiredArtifacts()
			Expect(err).ToNot(HaveOccurred())
			Expect(artifacts).To(HaveLen(1))
			Expect(artifacts[0].ID).To(Equal(expired.ID))
			Expect(artifacts[0].Name).To(Equal("out.tgz"))
			Expect(artifacts[0].StoragePath).To(Equal(expired.StoragePath))
		})

		It("groups a build's artifacts together, ordered by name", func() {
			save("zzz.log", time.Now().Add(-time.Hour))
			save("aaa.tgz", time.Now().Add(-time.Hour))

			artifacts, err := lifecycle.ExpiredArtifacts()
			Expect(err).ToNot(HaveOccurred())
			Expect(artifacts).To(HaveLen(2))
			Expect(artifacts[0].Name).To(Equal("aaa.tgz"))
			Expect(artifacts[1].Name).To(Equal("zzz.log"))
		})
	})

	Describe("ArtifactsForBuild", func() {
		It("lists every artifact of the build, expired or not", func() {
			save("out.tgz", time.Now().Add(-time.Hour))
			save("report.xml", time.Now().Add(time.Hour))

			other, err := buildFactory.CreateBuild(project, yard.Trigger{
				Commit: "cafed00d",
				Branch: "main",
				Kind:   yard.TriggerPush,
			})
			Expect(err).ToNot(HaveOccurred())

			_, err = other.SaveArtifact("stray.bin", "/var/lib/slipway/artifacts/2/stray.bin", 14, time.Now().Add(time.Hour))
			Expect(err).ToNot(HaveOccurred())

			artifacts, err := lifecycle.ArtifactsForBuild(build.ID())
			Expect(err).ToNot(HaveOccurred())
			Expect(artifacts).To(HaveLen(2))
			Expect(artifacts[0].Name).To(Equal("out.tgz"))
			Expect(artifacts[1].Name).To(Equal("report.xml"))
		})

		It("returns nothing for a build without artifacts", func() {
			artifacts, err := lifecycle.ArtifactsForBuild(build.ID())
			Expect(err).ToNot(HaveOccurred())
			Expect(artifacts).To(BeEmpty())
		})
	})

	Describe("RemoveArtifact", func() {
		It("deletes the row", func() {
			artifact := save("out.tgz", time.Now().Add(-time.Hour))

			Expect(lifecycle.RemoveArtifact(artifact.ID)).To(Succeed())

			artifacts, err := lifecycle.ArtifactsForBuild(build.ID())
			Expect(err).ToNot(HaveOccurred())
			Expect(artifacts).To(BeEmpty())
		})

		It("tolerates a row that is already gone", func() {
			Expect(lifecycle.RemoveArtifact(40)).To(Succeed())
		})
	})
})
