package repository

import "github.com/WallaceSt/bzutils/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	// GetByUsernameOrEmail soporta el chequeo de unicidad del registro.
	GetByUsernameOrEmail(username, email string) (*entity.User, error)
	// FindByUsername devuelve el usuario con su hash de password (login).
	FindByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	Delete(id int64) error
}
