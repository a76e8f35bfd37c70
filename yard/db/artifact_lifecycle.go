package db

import (
	sq "github.com/Masterminds/squirrel"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . ArtifactLifecycle

// ArtifactLifecycle enumerates and removes artifact rows whose retention
// window has passed. File removal is the sweeper's job; rows go second so a
// crash between the two re-presents the artifact on the next sweep.
type ArtifactLifecycle interface {
	ExpiredArtifacts() ([]Artifact, error)
	ArtifactsForBuild(buildID int) ([]Artifact, error)
	RemoveArtifact(id int) error
}

type artifactLifecycle struct {
	conn DbConn
}

func NewArtifactLifecycle(conn DbConn) ArtifactLifecycle {
	return &artifactLifecycle{conn: conn}
}

var artifactsQuery = psql.Select(
	"id",
	"build_id",
	"name",
	"storage_path",
	"size_bytes",
	"created_at",
	"expires_at",
).From("artifacts")

func (l *artifactLifecycle) ExpiredArtifacts() ([]Artifact, error) {
	rows, err := artifactsQuery.
		Where(sq.Expr("expires_at < now()")).
		OrderBy("build_id", "name").
		RunWith(l.conn).
		Query()
	if err != nil {
		return nil, err
	}

	defer Close(rows)

	var artifacts []Artifact
	for rows.Next() {
		var artifact Artifact
		err = scanArtifact(&artifact, rows)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func (l *artifactLifecycle) ArtifactsForBuild(buildID int) ([]Artifact, error) {
	rows, err := artifactsQuery.
		Where(sq.Eq{"build_id": buildID}).
		OrderBy("name").
		RunWith(l.conn).
		Query()
	if err != nil {
		return nil, err
	}

	defer Close(rows)

	var artifacts []Artifact
	for rows.Next() {
		var artifact Artifact
		err = scanArtifact(&artifact, rows)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func (l *artifactLifecycle) RemoveArtifact(id int) error {
	_, err := psql.Delete("artifacts").
		Where(sq.Eq{"id": id}).
		RunWith(l.conn).
		Exec()
	return err
}

func scanArtifact(artifact *Artifact, row scannable) error {
	return row.Scan(
		&artifact.ID,
		&artifact.BuildID,
		&artifact.Name,
		&artifact.StoragePath,
		&artifact.SizeBytes,
		&artifact.CreatedAt,
		&artifact.ExpiresAt,
	)
}
