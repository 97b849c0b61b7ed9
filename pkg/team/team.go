package team

type Member struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Repository interface {
	List() ([]*Member, error)
}
