package project

type ServiceProject interface {
	List(filter ListFilter) ([]*Project, error)
	GetByID(id int64) (*Project, error)
	Create(in CreateInput) (*Project, error)
	Update(id int64, in UpdateInput) (*Project, error)
	Delete(id int64) error
}

type Service struct {
	Repo Repository
}

func (s *Service) List(filter ListFilter) ([]*Project, error) {
	return s.Repo.List(filter)
}

func (s *Service) GetByID(id int64) (*Project, error) {
	return s.Repo.GetByID(id)
}

func (s *Service) Create(in CreateInput) (*Project, error) {
	return s.Repo.Create(in)
}

func (s *Service) Update(id int64, in UpdateInput) (*Project, error) {
	return s.Repo.Update(id, in)
}

func (s *Service) Delete(id int64) error {
	return s.Repo.Delete(id)
}
