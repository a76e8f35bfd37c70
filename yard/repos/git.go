package repos

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerctx"

	"github.com/slipway/slipway/tracing"
	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/metric"
)

// commitPattern is what a resolvable commit identifier looks like. It also
// keeps commit values safe to use as path segments.
var commitPattern = regexp.MustCompile(`^[0-9a-fA-F]{7,64}$`)

var errCommitNotFound = errors.New("commit not found after fetch")

// GitMaterialiser materialises working trees by shelling out to git. Each
// repository gets one bare mirror clone under the root; working trees are
// local clones of the mirror, so their objects are hardlinked rather than
// copied.
type GitMaterialiser struct {
	config Config
	runner Runner

	// mu guards the two maps. Removal of a working tree happens under
	// the repository's lock, never under mu.
	mu    sync.Mutex
	locks map[int]*sync.Mutex
	refs  map[string]int
}

func NewGitMaterialiser(config Config, runner Runner) *GitMaterialiser {
	return &GitMaterialiser{
		config: config,
		runner: runner,

		locks: map[int]*sync.Mutex{},
		refs:  map[string]int{},
	}
}

func (m *GitMaterialiser) Materialise(ctx context.Context, repo RemoteRepo, commit string) (Tree, error) {
	logger := lagerctx.FromContext(ctx).Session("materialise", lager.Data{
		"project": repo.ID,
		"commit":  commit,
	})

	ctx, span := tracing.StartSpan(ctx, "repos.materialise", tracing.Attrs{
		"repo":   repo.Name,
		"commit": commit,
	})
	var spanErr error
	defer func() { tracing.End(span, spanErr) }()

	if !commitPattern.MatchString(commit) {
		logger.Info("rejected-commit")
		spanErr = fetchFailed(repo, commit, fmt.Errorf("malformed commit identifier %q", commit))
		return nil, spanErr
	}

	lock := m.repoLock(repo.ID)
	lock.Lock()
	defer lock.Unlock()

	startTime := time.Now()

	worktree := m.worktreePath(repo.ID, commit)
	if _, err := os.Stat(worktree); err == nil {
		m.retain(worktree)
		logger.Debug("reusing-working-tree", lager.Data{"path": worktree})
		return &tree{materialiser: m, repoID: repo.ID, path: worktree}, nil
	}

	mirror := m.mirrorPath(repo.ID)

	if err := m.ensureMirror(ctx, logger, repo, mirror, commit); err != nil {
		spanErr = err
		return nil, err
	}

	if err := m.ensureCommit(ctx, logger, repo, mirror, commit); err != nil {
		spanErr = err
		return nil, err
	}

	if err := m.export(ctx, logger, mirror, worktree, commit); err != nil {
		spanErr = err
		return nil, err
	}

	m.retain(worktree)

	logger.Debug("materialised", lager.Data{
		"path": worktree,
		"took": time.Since(startTime).String(),
	})

	return &tree{materialiser: m, repoID: repo.ID, path: worktree}, nil
}

// ensureMirror clones the repository's bare mirror if it is not on disk
// yet. The clone lands in a staging path and is renamed into place, so an
// interrupted clone is never mistaken for a usable mirror.
func (m *GitMaterialiser) ensureMirror(ctx context.Context, logger lager.Logger, repo RemoteRepo, mirror string, commit string) error {
	if _, err := os.Stat(mirror); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat mirror: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(mirror), 0o755); err != nil {
		return fmt.Errorf("create mirror dir: %w", err)
	}

	staging := mirror + ".staging"
	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("clear mirror staging dir: %w", err)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, m.config.FetchTimeout)
	defer cancel()

	metric.Metrics.MirrorFetches.Inc()

	if _, err := m.runner.Run(fetchCtx, "", "clone", "--mirror", repo.CloneURL, staging); err != nil {
		metric.Metrics.FailedMirrorFetches.Inc()
		err = scrub(err, repo)
		logger.Error("failed-to-clone-mirror", err)
		return fetchFailed(repo, commit, err)
	}

	if err := os.Rename(staging, mirror); err != nil {
		return fmt.Errorf("move mirror into place: %w", err)
	}

	logger.Info("cloned-mirror", lager.Data{"path": mirror})

	return nil
}

// ensureCommit fetches from the remote only when the mirror does not
// already have the commit.
func (m *GitMaterialiser) ensureCommit(ctx context.Context, logger lager.Logger, repo RemoteRepo, mirror string, commit string) error {
	if m.commitPresent(ctx, mirror, commit) {
		return nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, m.config.FetchTimeout)
	defer cancel()

	metric.Metrics.MirrorFetches.Inc()

	if _, err := m.runner.Run(fetchCtx, mirror, "fetch", "origin"); err != nil {
		metric.Metrics.FailedMirrorFetches.Inc()
		err = scrub(err, repo)
		logger.Error("failed-to-fetch-mirror", err)
		return fetchFailed(repo, commit, err)
	}

	if !m.commitPresent(ctx, mirror, commit) {
		logger.Info("commit-not-found")
		return fetchFailed(repo, commit, errCommitNotFound)
	}

	return nil
}

func (m *GitMaterialiser) commitPresent(ctx context.Context, mirror string, commit string) bool {
	_, err := m.runner.Run(ctx, mirror, "cat-file", "-e", commit+"^{commit}")
	return err == nil
}

// export clones the working tree out of the mirror and detaches it at the
// commit. The tree is built in a staging path and renamed into place so a
// failure partway through never leaves a reusable-looking tree behind.
func (m *GitMaterialiser) export(ctx context.Context, logger lager.Logger, mirror string, worktree string, commit string) error {
	if err := os.MkdirAll(filepath.Dir(worktree), 0o755); err != nil {
		return fmt.Errorf("create working tree dir: %w", err)
	}

	staging := worktree + ".staging"
	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("clear working tree staging dir: %w", err)
	}

	if _, err := m.runner.Run(ctx, "", "clone", "--no-checkout", mirror, staging); err != nil {
		_ = os.RemoveAll(staging)
		logger.Error("failed-to-export-working-tree", err)
		return fmt.Errorf("clone working tree: %w", err)
	}

	if _, err := m.runner.Run(ctx, staging, "checkout", "--detach", commit); err != nil {
		_ = os.RemoveAll(staging)
		logger.Error("failed-to-export-working-tree", err)
		return fmt.Errorf("checkout %s: %w", commit, err)
	}

	if err := os.Rename(staging, worktree); err != nil {
		_ = os.RemoveAll(staging)
		return fmt.Errorf("move working tree into place: %w", err)
	}

	return nil
}

func (m *GitMaterialiser) worktreePath(repoID int, commit string) string {
	return filepath.Join(m.config.Root, strconv.Itoa(repoID), commit)
}

func (m *GitMaterialiser) mirrorPath(repoID int) string {
	return filepath.Join(m.config.Root, mirrorsDir, strconv.Itoa(repoID)+".git")
}

func (m *GitMaterialiser) repoLock(repoID int) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[repoID]
	if !ok {
		lock = new(sync.Mutex)
		m.locks[repoID] = lock
	}

	return lock
}

func (m *GitMaterialiser) retain(worktree string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.refs[worktree]++
}

// releaseTree removes the working tree once its last holder releases it.
// The mirror is retained either way.
func (m *GitMaterialiser) releaseTree(repoID int, worktree string) error {
	lock := m.repoLock(repoID)
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	if m.refs[worktree] > 1 {
		m.refs[worktree]--
		m.mu.Unlock()
		return nil
	}
	delete(m.refs, worktree)
	m.mu.Unlock()

	if err := os.RemoveAll(worktree); err != nil {
		return fmt.Errorf("remove working tree: %w", err)
	}

	return nil
}

type tree struct {
	materialiser *GitMaterialiser
	repoID       int
	path         string

	releaseOnce sync.Once
	releaseErr  error
}

func (t *tree) Path() string {
	return t.path
}

func (t *tree) Release() error {
	t.releaseOnce.Do(func() {
		t.releaseErr = t.materialiser.releaseTree(t.repoID, t.path)
	})

	return t.releaseErr
}

func fetchFailed(repo RemoteRepo, commit string, cause error) error {
	return yard.FetchFailedError{Repo: repo.Name, Commit: commit, Cause: cause}
}

// scrub rewrites an error's text so the clone URL, which may embed
// credentials, never reaches logs or build records.
func scrub(err error, repo RemoteRepo) error {
	if err == nil || repo.CloneURL == "" {
		return err
	}

	msg := err.Error()
	cleaned := strings.ReplaceAll(msg, repo.CloneURL, repo.Name)
	if cleaned == msg {
		return err
	}

	return errors.New(cleaned)
}
