package project_test

import (
	"database/sql"
	"testing"

	"projectboard/pkg/project"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	assert.NoError(t, err)

	schema := `
	CREATE TABLE team_members (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE TABLE projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		status TEXT NOT NULL,
		deadline TEXT NOT NULL,
		budget INTEGER NOT NULL,
		team_member_id INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`

	_, err = db.Exec(schema)
	assert.NoError(t, err)

	members := [][2]string{
		{"Alice Johnson", "alice@example.com"},
		{"Bob Smith", "bob@example.com"},
	}
	for _, m := range members {
		_, err = db.Exec(
			"INSERT INTO team_members (name, email, created_at, updated_at) VALUES (?, ?, ?, ?)",
			m[0], m[1], "2026-01-01 00:00:00", "2026-01-01 00:00:00",
		)
		assert.NoError(t, err)
	}

	return db
}

func seedProjects(t *testing.T, repo *project.MySQLRepo) []*project.Project {
	t.Helper()

	inputs := []project.CreateInput{
		{Status: project.StatusActive, Deadline: "2026-10-01", Budget: 5000, TeamMemberID: 1},
		{Status: project.StatusOnHold, Deadline: "2026-11-15", Budget: 12000, TeamMemberID: 2},
		{Status: project.StatusCompleted, Deadline: "2026-08-20", Budget: 800, TeamMemberID: 1},
	}

	created := []*project.Project{}
	for _, in := range inputs {
		p, err := repo.Create(in)
		assert.NoError(t, err)
		created = append(created, p)
	}
	return created
}

func TestMySQLRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := project.NewMySQLRepo(db)

	p, err := repo.Create(project.CreateInput{
		Status:       project.StatusActive,
		Deadline:     "2026-10-01",
		Budget:       5000,
		TeamMemberID: 1,
	})
	assert.NoError(t, err)
	assert.Equal(t, project.StatusActive, p.Status)
	assert.Equal(t, "2026-10-01", p.Deadline)
	assert.Equal(t, int64(5000), p.Budget)
	assert.Equal(t, "Alice Johnson", p.TeamMemberName)
	assert.NotEmpty(t, p.CreatedAt)

	got, err := repo.GetByID(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, p, got)

	missing, err := repo.GetByID(9999)
	assert.ErrorIs(t, err, project.ErrNotFound)
	assert.Nil(t, missing)
}

func TestMySQLRepo_List(t *testing.T) {
	db := setupTestDB(t)
	repo := project.NewMySQLRepo(db)
	created := seedProjects(t, repo)

	t.Run("no filter, newest first", func(t *testing.T) {
		projects, err := repo.List(project.ListFilter{})
		assert.NoError(t, err)
		assert.Len(t, projects, 3)
		assert.Equal(t, created[2].ID, projects[0].ID)
		assert.Equal(t, created[0].ID, projects[2].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		projects, err := repo.List(project.ListFilter{Status: project.StatusOnHold})
		assert.NoError(t, err)
		assert.Len(t, projects, 1)
		assert.Equal(t, "Bob Smith", projects[0].TeamMemberName)
	})

	t.Run("member name filter is case-insensitive", func(t *testing.T) {
		projects, err := repo.List(project.ListFilter{Query: "ALICE"})
		assert.NoError(t, err)
		assert.Len(t, projects, 2)
		for _, p := range projects {
			assert.Equal(t, "Alice Johnson", p.TeamMemberName)
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		projects, err := repo.List(project.ListFilter{
			Status: project.StatusCompleted,
			Query:  "alice",
		})
		assert.NoError(t, err)
		assert.Len(t, projects, 1)
		assert.Equal(t, int64(800), projects[0].Budget)
	})

	t.Run("no match is an empty list, not nil", func(t *testing.T) {
		projects, err := repo.List(project.ListFilter{Query: "nosuchname"})
		assert.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})
}

func TestMySQLRepo_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := project.NewMySQLRepo(db)
	created := seedProjects(t, repo)

	t.Run("partial patch touches only present fields", func(t *testing.T) {
		budget := int64(7500)
		p, err := repo.Update(created[0].ID, project.UpdateInput{Budget: &budget})
		assert.NoError(t, err)
		assert.Equal(t, int64(7500), p.Budget)
		assert.Equal(t, created[0].Status, p.Status)
		assert.Equal(t, created[0].Deadline, p.Deadline)
		assert.Equal(t, created[0].TeamMemberID, p.TeamMemberID)
	})

	t.Run("multi-field patch", func(t *testing.T) {
		status := project.StatusCompleted
		member := int64(2)
		p, err := repo.Update(created[0].ID, project.UpdateInput{
			Status:       &status,
			TeamMemberID: &member,
		})
		assert.NoError(t, err)
		assert.Equal(t, project.StatusCompleted, p.Status)
		assert.Equal(t, "Bob Smith", p.TeamMemberName)
	})

	t.Run("empty patch returns the current row", func(t *testing.T) {
		p, err := repo.Update(created[1].ID, project.UpdateInput{})
		assert.NoError(t, err)
		assert.Equal(t, created[1].Budget, p.Budget)
	})

	t.Run("unknown id", func(t *testing.T) {
		status := project.StatusActive
		p, err := repo.Update(9999, project.UpdateInput{Status: &status})
		assert.ErrorIs(t, err, project.ErrNotFound)
		assert.Nil(t, p)
	})
}

func TestMySQLRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := project.NewMySQLRepo(db)
	created := seedProjects(t, repo)

	err := repo.Delete(created[0].ID)
	assert.NoError(t, err)

	_, err = repo.GetByID(created[0].ID)
	assert.ErrorIs(t, err, project.ErrNotFound)

	err = repo.Delete(created[0].ID)
	assert.ErrorIs(t, err, project.ErrNotFound)
}
