package gc_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3/lagerctx"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/db/dbfakes"
	"github.com/slipway/slipway/yard/db/lock"
	"github.com/slipway/slipway/yard/db/lock/lockfakes"
	"github.com/slipway/slipway/yard/gc"
	"github.com/slipway/slipway/yard/metric"
)

var _ = Describe("ArtifactCollector", func() {
	var (
		logger *lagertest.TestLogger
		ctx    context.Context

		fakeLifecycle   *dbfakes.FakeArtifactLifecycle
		fakeLockFactory *lockfakes.FakeLockFactory
		fakeLock        *lockfakes.FakeLock

		root      string
		collector gc.Collector
	)

	writeFile := func(path string) {
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte("artifact bytes"), 0o644)).To(Succeed())
	}

	expiredArtifact := func(id, buildID int, name string) db.Artifact {
		path := filepath.Join(root, "builds", filepath.FromSlash(name))
		writeFile(path)
		return db.Artifact{
			ID:          id,
			BuildID:     buildID,
			Name:        name,
			StoragePath: path,
		}
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("gc-test")
		ctx = lagerctx.NewContext(context.Background(), logger)

		var err error
		root, err = os.MkdirTemp("", "gc-artifacts")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { os.RemoveAll(root) })

		fakeLifecycle = new(dbfakes.FakeArtifactLifecycle)

		fakeLock = new(lockfakes.FakeLock)
		fakeLockFactory = new(lockfakes.FakeLockFactory)
		fakeLockFactory.AcquireReturns(fakeLock, true, nil)

		collector = gc.NewArtifactCollector(fakeLifecycle, fakeLockFactory, filepath.Join(root, "builds"))

		metric.Metrics.ArtifactsDeleted.Delta()
	})

	It("is named for the log session it runs under", func() {
		Expect(collector.Name()).To(Equal("artifact-collector"))
	})

	Context("when artifacts of two builds have expired", func() {
		var first, second, third db.Artifact

		BeforeEach(func() {
			first = expiredArtifact(1, 40, "40/out.tgz")
			second = expiredArtifact(2, 40, "40/report.xml")
			third = expiredArtifact(3, 41, "41/bin")

			fakeLifecycle.ExpiredArtifactsReturns([]db.Artifact{first, second, third}, nil)
		})

		It("removes each file and then its row, one retention lock per build", func() {
			Expect(collector.Run(ctx)).To(Succeed())

			By("deleting the stored files")
			Expect(first.StoragePath).NotTo(BeAnExistingFile())
			Expect(second.StoragePath).NotTo(BeAnExistingFile())
			Expect(third.StoragePath).NotTo(BeAnExistingFile())

			By("pruning the emptied per-build directories")
			Expect(filepath.Dir(first.StoragePath)).NotTo(BeADirectory())
			Expect(filepath.Dir(third.StoragePath)).NotTo(BeADirectory())
			Expect(filepath.Join(root, "builds")).To(BeADirectory())

			By("deleting the rows")
			Expect(fakeLifecycle.RemoveArtifactCallCount()).To(Equal(3))
			Expect(fakeLifecycle.RemoveArtifactArgsForCall(0)).To(Equal(1))
			Expect(fakeLifecycle.RemoveArtifactArgsForCall(1)).To(Equal(2))
			Expect(fakeLifecycle.RemoveArtifactArgsForCall(2)).To(Equal(3))

			By("locking each build once and releasing it")
			Expect(fakeLockFactory.AcquireCallCount()).To(Equal(2))
			_, lockID := fakeLockFactory.AcquireArgsForCall(0)
			Expect(lockID).To(Equal(lock.NewBuildRetentionLockID(40)))
			_, lockID = fakeLockFactory.AcquireArgsForCall(1)
			Expect(lockID).To(Equal(lock.NewBuildRetentionLockID(41)))
			Expect(fakeLock.ReleaseCallCount()).To(Equal(2))

			Expect(metric.Metrics.ArtifactsDeleted.Delta()).To(Equal(float64(3)))
			Expect(logger.Buffer()).To(gbytes.Say("swept"))
		})

		Context("when a file is already gone", func() {
			BeforeEach(func() {
				Expect(os.Remove(second.StoragePath)).To(Succeed())
			})

			It("still deletes the row", func() {
				Expect(collector.Run(ctx)).To(Succeed())

				Expect(fakeLifecycle.RemoveArtifactCallCount()).To(Equal(3))
				Expect(logger.Buffer()).To(gbytes.Say("artifact-file-already-gone"))
				Expect(metric.Metrics.ArtifactsDeleted.Delta()).To(Equal(float64(3)))
			})
		})

		Context("when another sweeper holds a build's retention lock", func() {
			BeforeEach(func() {
				fakeLockFactory.AcquireReturnsOnCall(0, nil, false, nil)
			})

			It("leaves that build alone and sweeps the next", func() {
				Expect(collector.Run(ctx)).To(Succeed())

				Expect(first.StoragePath).To(BeAnExistingFile())
				Expect(second.StoragePath).To(BeAnExistingFile())
				Expect(third.StoragePath).NotTo(BeAnExistingFile())

				Expect(fakeLifecycle.RemoveArtifactCallCount()).To(Equal(1))
				Expect(fakeLifecycle.RemoveArtifactArgsForCall(0)).To(Equal(3))
				Expect(logger.Buffer()).To(gbytes.Say("retention-lock-busy"))
			})
		})

		Context("when deleting a row fails", func() {
			BeforeEach(func() {
				fakeLifecycle.RemoveArtifactReturnsOnCall(0, errors.New("conn reset"))
			})

			It("keeps sweeping the remaining artifacts and reports the failure", func() {
				err := collector.Run(ctx)
				Expect(err).To(MatchError(ContainSubstring("remove row of artifact 1")))

				Expect(fakeLifecycle.RemoveArtifactCallCount()).To(Equal(3))
				Expect(metric.Metrics.ArtifactsDeleted.Delta()).To(Equal(float64(2)))
			})
		})

		Context("when acquiring a lock fails", func() {
			BeforeEach(func() {
				fakeLockFactory.AcquireReturnsOnCall(0, nil, false, errors.New("conn reset"))
			})

			It("reports the failure and sweeps the next build", func() {
				err := collector.Run(ctx)
				Expect(err).To(MatchError(ContainSubstring("acquire retention lock for build 40")))

				Expect(third.StoragePath).NotTo(BeAnExistingFile())
				Expect(fakeLifecycle.RemoveArtifactCallCount()).To(Equal(1))
			})
		})

		Context("when the sweep is cancelled between builds", func() {
			var cancel context.CancelFunc

			BeforeEach(func() {
				ctx, cancel = context.WithCancel(ctx)

				fakeLifecycle.RemoveArtifactStub = func(int) error {
					cancel()
					return nil
				}
			})

			It("stops without touching the remaining builds", func() {
				Expect(collector.Run(ctx)).To(MatchError(context.Canceled))

				Expect(fakeLifecycle.RemoveArtifactCallCount()).To(Equal(2))
				Expect(third.StoragePath).To(BeAnExistingFile())
			})
		})
	})

	Context("when an artifact was stored under a nested name", func() {
		BeforeEach(func() {
			nested := expiredArtifact(9, 42, "42/coverage/html/index.html")
			fakeLifecycle.ExpiredArtifactsReturns([]db.Artifact{nested}, nil)
		})

		It("prunes every directory the removal emptied, stopping at the root", func() {
			Expect(collector.Run(ctx)).To(Succeed())

			Expect(filepath.Join(root, "builds", "42")).NotTo(BeADirectory())
			Expect(filepath.Join(root, "builds")).To(BeADirectory())
		})
	})

	Context("when nothing has expired", func() {
		It("does nothing", func() {
			Expect(collector.Run(ctx)).To(Succeed())
			Expect(fakeLockFactory.AcquireCallCount()).To(BeZero())
		})
	})

	Context("when expired artifacts cannot be enumerated", func() {
		BeforeEach(func() {
			fakeLifecycle.ExpiredArtifactsReturns(nil, errors.New("conn reset"))
		})

		It("returns the error", func() {
			err := collector.Run(ctx)
			Expect(err).To(MatchError(ContainSubstring("enumerate expired artifacts")))
		})
	})
})
