package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// ChatRepo implements the chat repository interface
type ChatRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewChatRepo creates a new chat repository instance
func NewChatRepo(cfg *models.Config, db *sqlx.DB) *ChatRepo {
	return &ChatRepo{
		cfg: cfg,
		db:  db,
	}
}
