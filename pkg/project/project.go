package project

import "errors"

var ErrNotFound = errors.New("project not found")

const (
	StatusActive    = "active"
	StatusOnHold    = "on_hold"
	StatusCompleted = "completed"
)

func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusOnHold || s == StatusCompleted
}

// Project rows always carry the assignee's name from the join with
// team_members. Deadline is a plain YYYY-MM-DD string.
type Project struct {
	ID             int64  `json:"id"`
	Status         string `json:"status"`
	Deadline       string `json:"deadline"`
	Budget         int64  `json:"budget"`
	TeamMemberID   int64  `json:"teamMemberId"`
	TeamMemberName string `json:"teamMemberName"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ListFilter narrows the project listing; zero values mean no filter.
// Query matches the assigned team member's name, case-insensitive.
type ListFilter struct {
	Status string
	Query  string
}

type CreateInput struct {
	Status       string
	Deadline     string
	Budget       int64
	TeamMemberID int64
}

// UpdateInput is an explicit optional-field patch: nil means "leave
// unchanged". Only present fields end up in the UPDATE statement.
type UpdateInput struct {
	Status       *string
	Deadline     *string
	Budget       *int64
	TeamMemberID *int64
}

func (in UpdateInput) Empty() bool {
	return in.Status == nil && in.Deadline == nil && in.Budget == nil && in.TeamMemberID == nil
}

type Repository interface {
	List(filter ListFilter) ([]*Project, error)
	GetByID(id int64) (*Project, error)
	Create(in CreateInput) (*Project, error)
	Update(id int64, in UpdateInput) (*Project, error)
	Delete(id int64) error
}
