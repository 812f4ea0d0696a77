package sqldb

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/shelteraid/shelteraid/core"
	"golang.org/x/crypto/bcrypt"
)

var ErrAuth = errors.New("authentication failed")

func clean(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	return name
}

type user struct {
	id   int
	name string
}

func (u *user) ID() int {
	return u.id
}

func (u *user) Name() string {
	return u.name
}

type UserDB struct {
	*sql.DB
	delete      *sql.Stmt
	get         *sql.Stmt
	getByName   *sql.Stmt
	insert      *sql.Stmt
	login       *sql.Stmt
	setPassword *sql.Stmt
}

func NewUserDB(db *sql.DB) *UserDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS usr (
			id INTEGER PRIMARY KEY,
			mail varchar(128) NOT NULL,
			password varchar(64) NOT NULL DEFAULT '',
			UNIQUE(mail)
		);`)

	var userDB = &UserDB{}
	userDB.DB = db
	userDB.delete = mustPrepare(db, "DELETE FROM usr WHERE id = ?")
	userDB.get = mustPrepare(db, "SELECT mail FROM usr WHERE id = ? LIMIT 1")
	userDB.getByName = mustPrepare(db, "SELECT id FROM usr WHERE mail = ? LIMIT 1")
	userDB.insert = mustPrepare(db, "INSERT INTO usr (mail) VALUES (?)") // empty password field is safe because no bcrypt hash equals it
	userDB.login = mustPrepare(db, "SELECT id, password FROM usr WHERE mail = ?")
	userDB.setPassword = mustPrepare(db, "UPDATE usr SET password = ? WHERE id = ?")
	return userDB
}

func (db *UserDB) Delete(u core.DBUser) error {
	_, err := db.delete.Exec(u.ID())
	return err
}

// GetUser may return sql.ErrNoRows.
func (db *UserDB) GetUser(id int) (core.DBUser, error) {
	var u = &user{
		id: id,
	}
	if err := db.get.QueryRow(id).Scan(&u.name); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByName may return sql.ErrNoRows.
func (db *UserDB) GetUserByName(name string) (core.DBUser, error) {
	var u = &user{
		name: clean(name),
	}
	if err := db.getByName.QueryRow(u.name).Scan(&u.id); err != nil {
		return nil, err
	}
	return u, nil
}

func (db *UserDB) InsertUser(name string) (core.DBUser, error) {
	name = clean(name)
	if name == "" {
		return nil, errors.New("no user name given")
	}
	result, err := db.insert.Exec(name)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &user{
		id:   int(id),
		name: name,
	}, nil
}

// LoginUser returns ErrAuth if the user does not exist or the password is wrong.
func (db *UserDB) LoginUser(name, password string) (core.DBUser, error) {

	var u = &user{
		name: clean(name),
	}
	var hash string

	err := db.login.QueryRow(u.name).Scan(&u.id, &hash)
	if err == sql.ErrNoRows {
		return nil, ErrAuth // user not found
	}
	if err != nil {
		return nil, err
	}

	if hash == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrAuth // wrong password
	}

	return u, nil
}

func (db *UserDB) SetPassword(u core.DBUser, password string) error {

	if password == "" {
		return errors.New("no password given")
	}

	if u.ID() == 0 {
		return errors.New("can't set password of user 0")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.setPassword.Exec(string(hash), u.ID())
	return err
}
