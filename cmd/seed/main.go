// Command seed provisions the dashboard with demo data: team members
// pulled from JSONPlaceholder, a randomized batch of projects, and the
// demo login. Safe to re-run; members and the demo user are upserted
// and projects are rebuilt from scratch.
package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"projectboard/internal/config"
	"projectboard/internal/logger"
	"projectboard/internal/mysql"
	"projectboard/pkg/generator"
	"projectboard/pkg/project"
)

const (
	teamMembersURL = "https://jsonplaceholder.typicode.com/users"

	demoEmail    = "admin@example.com"
	demoPassword = "admin12345"
	bcryptCost   = 10
)

type placeholderUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func main() {
	logger := logger.Load()
	cfg := config.Load(logger)

	db := mysql.LoadDB(cfg.MySQLDSN)
	defer db.Close()

	if err := run(db); err != nil {
		log.Fatal("Seed failed:", err)
	}
	logger.Info("seed complete", "login", demoEmail)
}

func run(db *sql.DB) error {
	members, err := fetchTeamMembers()
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format("2006-01-02 15:04:05")
	for _, m := range members {
		_, err := db.Exec(`
			INSERT INTO team_members (name, email, created_at, updated_at)
			VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE name = VALUES(name), updated_at = VALUES(updated_at)
		`, m.Name, m.Email, now, now)
		if err != nil {
			return fmt.Errorf("upsert team member %q: %w", m.Email, err)
		}
	}

	ids, err := teamMemberIDs(db)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("no team members to assign projects to")
	}

	// rebuild projects from scratch so re-runs stay bounded
	if _, err := db.Exec("DELETE FROM projects"); err != nil {
		return fmt.Errorf("clear projects: %w", err)
	}

	statuses := []string{project.StatusActive, project.StatusOnHold, project.StatusCompleted}
	count := rand.Intn(21) + 30
	today := time.Now()

	for i := 0; i < count; i++ {
		deadline := today.AddDate(0, 0, rand.Intn(121)-30).Format("2006-01-02")
		budget := rand.Intn(19501) + 500

		_, err := db.Exec(`
			INSERT INTO projects (status, deadline, budget, team_member_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, statuses[rand.Intn(len(statuses))], deadline, budget, ids[rand.Intn(len(ids))], now, now)
		if err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
	}

	return seedDemoUser(db)
}

func fetchTeamMembers() ([]placeholderUser, error) {
	resp, err := http.Get(teamMembersURL)
	if err != nil {
		return nil, fmt.Errorf("fetch team members: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch team members: unexpected status %d", resp.StatusCode)
	}

	var users []placeholderUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode team members: %w", err)
	}
	return users, nil
}

func teamMemberIDs(db *sql.DB) ([]int64, error) {
	rows, err := db.Query("SELECT id FROM team_members")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func seedDemoUser(db *sql.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	userID, err := generator.GenerateRandomID(24)
	if err != nil {
		return fmt.Errorf("UserID gen error: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (id, email, password_hash)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE password_hash = VALUES(password_hash)
	`, userID, demoEmail, string(hash))
	if err != nil {
		return fmt.Errorf("upsert demo user: %w", err)
	}
	return nil
}
