package core

import (
	"errors"
)

type DBUser interface {
	ID() int
	Name() string // e-mail address
}

type UserDB interface {
	Delete(u DBUser) error
	GetUser(id int) (DBUser, error)
	GetUserByName(name string) (DBUser, error)
	InsertUser(name string) (DBUser, error)
	LoginUser(name, password string) (DBUser, error)
	SetPassword(u DBUser, password string) error
}

var ErrEmptyPassword = errors.New("refusing to set empty password")

// SetPassword shadows UserDB.SetPassword.
func (s *Site) SetPassword(u DBUser, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return s.UserDB.SetPassword(u, password)
}
