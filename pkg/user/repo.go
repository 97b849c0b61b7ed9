package user

import (
	"database/sql"
	"errors"
)

type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) FindByEmail(email string) (*User, error) {
	var u User
	err := r.DB.QueryRow(
		"SELECT id, email, password_hash FROM users WHERE email = ?",
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}
