package services

import (
	"github.com/blogem/keysubmit/repositories"
)

// Services holds all service instances
type Services struct {
	History HistoryService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		History: NewHistoryService(repos.Submissions),
	}
}
