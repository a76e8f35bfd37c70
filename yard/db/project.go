package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/slipway/slipway/yard"
)

//counterfeiter:generate . Project

// Project is a row in the projects table. Secrets belong exclusively to
// their project, so the secret CRUD lives here.
type Project interface {
	ID() int
	Name() string
	CloneURL() string
	DefaultBranch() string
	BranchFilter() string
	BuildPullRequests() bool
	MaxDuration() time.Duration
	Image() string
	Profile() string
	Phases() []yard.Phase
	RequiredSecrets() []string
	AllowDocker() bool
	NotifyOnFailure() bool
	Owner() string

	Reload() (bool, error)
	Config() yard.Project

	SaveSecret(name string, value []byte) error
	DeleteSecret(name string) (bool, error)
	Secret(name string) ([]byte, bool, error)
	SecretRow(name string) (string, *string, bool, error)
	SecretNames() ([]string, error)
}

var projectsQuery = psql.Select(
	"p.id",
	"p.name",
	"p.clone_url",
	"p.default_branch",
	"p.branch_filter",
	"p.build_pull_requests",
	"p.max_duration_secs",
	"p.image",
	"p.profile",
	"p.phases",
	"p.required_secrets",
	"p.allow_docker",
	"p.notify_on_failure",
	"p.owner",
).From("projects p")

type project struct {
	conn DbConn

	id                int
	name              string
	cloneURL          string
	defaultBranch     string
	branchFilter      string
	buildPullRequests bool
	maxDuration       time.Duration
	image             string
	profile           string
	phases            []yard.Phase
	requiredSecrets   []string
	allowDocker       bool
	notifyOnFailure   bool
	owner             string
}

func (p *project) ID() int                 { return p.id }
func (p *project) Name() string            { return p.name }
func (p *project) CloneURL() string        { return p.cloneURL }
func (p *project) DefaultBranch() string   { return p.defaultBranch }
func (p *project) BranchFilter() string    { return p.branchFilter }
func (p *project) BuildPullRequests() bool { return p.buildPullRequests }
func (p *project) MaxDuration() time.Duration {
	return p.maxDuration
}
func (p *project) Image() string             { return p.image }
func (p *project) Profile() string           { return p.profile }
func (p *project) Phases() []yard.Phase      { return p.phases }
func (p *project) RequiredSecrets() []string { return p.requiredSecrets }
func (p *project) AllowDocker() bool         { return p.allowDocker }
func (p *project) NotifyOnFailure() bool     { return p.notifyOnFailure }
func (p *project) Owner() string             { return p.owner }

func (p *project) Reload() (bool, error) {
	row := projectsQuery.Where(sq.Eq{"p.id": p.id}).
		RunWith(p.conn).
		QueryRow()

	err := scanProject(p, row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Config converts the row back into its wire form for components that work
// on project settings rather than database handles.
func (p *project) Config() yard.Project {
	return yard.Project{
		ID:                p.id,
		Name:              p.name,
		CloneURL:          p.cloneURL,
		DefaultBranch:     p.defaultBranch,
		BranchFilter:      p.branchFilter,
		BuildPullRequests: p.buildPullRequests,
		MaxDuration:       p.maxDuration,
		Image:             p.image,
		Profile:           p.profile,
		Phases:            p.phases,
		RequiredSecrets:   p.requiredSecrets,
		AllowDocker:       p.allowDocker,
		NotifyOnFailure:   p.notifyOnFailure,
		Owner:             p.owner,
	}
}

func (p *project) SaveSecret(name string, value []byte) error {
	ciphertext, nonce, err := p.conn.EncryptionStrategy().Encrypt(value)
	if err != nil {
		return err
	}

	_, err = psql.Insert("secrets").
		Columns("project_id", "name", "ciphertext", "nonce").
		Values(p.id, name, ciphertext, nonce).
		Suffix(`ON CONFLICT (project_id, name) DO UPDATE SET
			ciphertext = excluded.ciphertext,
			nonce = excluded.nonce,
			created_at = now()`).
		RunWith(p.conn).
		Exec()
	return err
}

func (p *project) DeleteSecret(name string) (bool, error) {
	result, err := psql.Delete("secrets").
		Where(sq.Eq{"project_id": p.id, "name": name}).
		RunWith(p.conn).
		Exec()
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (p *project) Secret(name string) ([]byte, bool, error) {
	ciphertext, nonce, found, err := p.SecretRow(name)
	if err != nil || !found {
		return nil, found, err
	}

	value, err := p.conn.EncryptionStrategy().Decrypt(ciphertext, nonce)
	if err != nil {
		return nil, false, err
	}

	return value, true, nil
}

// SecretRow exposes the stored ciphertext so read-through caches can hold
// encrypted rows without ever holding plaintext.
func (p *project) SecretRow(name string) (string, *string, bool, error) {
	var (
		ciphertext string
		nonce      sql.NullString
	)

	err := psql.Select("ciphertext", "nonce").
		From("secrets").
		Where(sq.Eq{"project_id": p.id, "name": name}).
		RunWith(p.conn).
		QueryRow().
		Scan(&ciphertext, &nonce)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, false, nil
		}
		return "", nil, false, err
	}

	var noncePtr *string
	if nonce.Valid {
		noncePtr = &nonce.String
	}

	return ciphertext, noncePtr, true, nil
}

func (p *project) SecretNames() ([]string, error) {
	rows, err := psql.Select("name").
		From("secrets").
		Where(sq.Eq{"project_id": p.id}).
		OrderBy("name").
		RunWith(p.conn).
		Query()
	if err != nil {
		return nil, err
	}

	defer Close(rows)

	var names []string
	for rows.Next() {
		var name string
		err = rows.Scan(&name)
		if err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	return names, nil
}

func scanProject(p *project, row scannable) error {
	var (
		maxDurationSecs int
		phasesBlob      []byte
		secretsBlob     []byte
	)

	err := row.Scan(
		&p.id,
		&p.name,
		&p.cloneURL,
		&p.defaultBranch,
		&p.branchFilter,
		&p.buildPullRequests,
		&maxDurationSecs,
		&p.image,
		&p.profile,
		&phasesBlob,
		&secretsBlob,
		&p.allowDocker,
		&p.notifyOnFailure,
		&p.owner,
	)
	if err != nil {
		return err
	}

	p.maxDuration = time.Duration(maxDurationSecs) * time.Second

	p.phases = nil
	err = json.Unmarshal(phasesBlob, &p.phases)
	if err != nil {
		return err
	}

	p.requiredSecrets = nil
	return json.Unmarshal(secretsBlob, &p.requiredSecrets)
}
