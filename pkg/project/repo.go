package project

import (
	"database/sql"
	"errors"
	"strings"
	"time"
)

const selectColumns = `
	p.id, p.status, p.deadline, p.budget, p.team_member_id, tm.name,
	p.created_at, p.updated_at
	FROM projects p
	INNER JOIN team_members tm ON p.team_member_id = tm.id`

type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) List(filter ListFilter) ([]*Project, error) {
	conditions := []string{}
	args := []any{}

	if filter.Status != "" {
		conditions = append(conditions, "p.status = ?")
		args = append(args, filter.Status)
	}
	if filter.Query != "" {
		conditions = append(conditions, "LOWER(tm.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Query)+"%")
	}

	query := "SELECT " + selectColumns
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.created_at DESC, p.id DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*Project{}
	for rows.Next() {
		var p Project
		if err := rows.Scan(
			&p.ID, &p.Status, &p.Deadline, &p.Budget,
			&p.TeamMemberID, &p.TeamMemberName, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

func (r *MySQLRepo) GetByID(id int64) (*Project, error) {
	var p Project
	err := r.DB.QueryRow("SELECT "+selectColumns+" WHERE p.id = ?", id).Scan(
		&p.ID, &p.Status, &p.Deadline, &p.Budget,
		&p.TeamMemberID, &p.TeamMemberName, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *MySQLRepo) Create(in CreateInput) (*Project, error) {
	now := timestamp()
	res, err := r.DB.Exec(`
		INSERT INTO projects (status, deadline, budget, team_member_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, in.Status, in.Deadline, in.Budget, in.TeamMemberID, now, now)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Update applies only the fields present in the patch. The SET clause
// is built from a fixed set of column names with every value passed as
// a bind parameter.
func (r *MySQLRepo) Update(id int64, in UpdateInput) (*Project, error) {
	if in.Empty() {
		return r.GetByID(id)
	}

	setParts := []string{}
	args := []any{}

	if in.Status != nil {
		setParts = append(setParts, "status = ?")
		args = append(args, *in.Status)
	}
	if in.Deadline != nil {
		setParts = append(setParts, "deadline = ?")
		args = append(args, *in.Deadline)
	}
	if in.Budget != nil {
		setParts = append(setParts, "budget = ?")
		args = append(args, *in.Budget)
	}
	if in.TeamMemberID != nil {
		setParts = append(setParts, "team_member_id = ?")
		args = append(args, *in.TeamMemberID)
	}
	setParts = append(setParts, "updated_at = ?")
	args = append(args, timestamp())
	args = append(args, id)

	query := "UPDATE projects SET " + strings.Join(setParts, ", ") + " WHERE id = ?"
	if _, err := r.DB.Exec(query, args...); err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

func (r *MySQLRepo) Delete(id int64) error {
	res, err := r.DB.Exec("DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func timestamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}
