package db

import (
	"database/sql"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/slipway/slipway/yard"
)

//counterfeiter:generate . ProjectFactory

type ProjectFactory interface {
	UpsertProject(config yard.Project) (Project, error)
	GetProject(id int) (Project, bool, error)
	GetProjectByName(name string) (Project, bool, error)
	Projects() ([]Project, error)
}

type projectFactory struct {
	conn DbConn
}

func NewProjectFactory(conn DbConn) ProjectFactory {
	return &projectFactory{conn: conn}
}

// UpsertProject creates or refreshes a project row by name. Project
// configuration is file-driven, so this runs on every startup sync.
func (f *projectFactory) UpsertProject(config yard.Project) (Project, error) {
	phasesBlob, err := json.Marshal(config.Phases)
	if err != nil {
		return nil, err
	}

	secretsBlob, err := json.Marshal(config.RequiredSecrets)
	if err != nil {
		return nil, err
	}

	var id int
	err = psql.Insert("projects").
		Columns(
			"name",
			"clone_url",
			"default_branch",
			"branch_filter",
			"build_pull_requests",
			"max_duration_secs",
			"image",
			"profile",
			"phases",
			"required_secrets",
			"allow_docker",
			"notify_on_failure",
			"owner",
		).
		Values(
			config.Name,
			config.CloneURL,
			config.DefaultBranch,
			config.BranchFilter,
			config.BuildPullRequests,
			int(config.MaxDuration.Seconds()),
			config.Image,
			config.Profile,
			phasesBlob,
			secretsBlob,
			config.AllowDocker,
			config.NotifyOnFailure,
			config.Owner,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			clone_url = excluded.clone_url,
			default_branch = excluded.default_branch,
			branch_filter = excluded.branch_filter,
			build_pull_requests = excluded.build_pull_requests,
			max_duration_secs = excluded.max_duration_secs,
			image = excluded.image,
			profile = excluded.profile,
			phases = excluded.phases,
			required_secrets = excluded.required_secrets,
			allow_docker = excluded.allow_docker,
			notify_on_failure = excluded.notify_on_failure,
			owner = excluded.owner
		RETURNING id`).
		RunWith(f.conn).
		QueryRow().
		Scan(&id)
	if err != nil {
		return nil, err
	}

	project, found, err := f.GetProject(id)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, errors.New("upserted project disappeared")
	}

	return project, nil
}

func (f *projectFactory) GetProject(id int) (Project, bool, error) {
	return getProject(f.conn, projectsQuery.Where(sq.Eq{"p.id": id}))
}

func (f *projectFactory) GetProjectByName(name string) (Project, bool, error) {
	return getProject(f.conn, projectsQuery.Where(sq.Eq{"p.name": name}))
}

func (f *projectFactory) Projects() ([]Project, error) {
	rows, err := projectsQuery.OrderBy("p.name").
		RunWith(f.conn).
		Query()
	if err != nil {
		return nil, err
	}

	defer Close(rows)

	var projects []Project
	for rows.Next() {
		p := &project{conn: f.conn}

		err = scanProject(p, rows)
		if err != nil {
			return nil, err
		}

		projects = append(projects, p)
	}

	return projects, nil
}

func getProject(conn DbConn, query sq.SelectBuilder) (Project, bool, error) {
	row := query.RunWith(conn).QueryRow()

	p := &project{conn: conn}

	err := scanProject(p, row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return p, true, nil
}
