package team

import "database/sql"

type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) List() ([]*Member, error) {
	rows, err := r.DB.Query("SELECT id, name FROM team_members ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*Member{}
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}
	return members, rows.Err()
}
