package account

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const DefaultMinPasswordLength = 6

type User struct {
	Name     string
	password string
	role     string
}

func NewUser(name, password, role string) User {
	return User{Name: name, password: password, role: role}
}

func (u User) Greeting() string {
	return fmt.Sprintf("Hello, %s", u.Name)
}

func (u User) Role() string {
	return u.role
}

// CheckPassword is a plain comparison; passwords are not hashed.
func (u User) CheckPassword(password string) bool {
	return u.password == password
}

// ChangePassword replaces the password when it has at least minLength
// characters. A non-positive minLength means DefaultMinPasswordLength.
func (u *User) ChangePassword(newPassword string, minLength int) bool {
	if minLength <= 0 {
		minLength = DefaultMinPasswordLength
	}
	if utf8.RuneCountInString(newPassword) < minLength {
		return false
	}

	u.password = newPassword
	return true
}

// Directory keeps users in insertion order. Names are not unique.
type Directory struct {
	users []User
}

func NewDirectory() *Directory {
	return &Directory{}
}

func (d *Directory) Add(user User) {
	d.users = append(d.users, user)
}

// Remove drops every user whose name matches exactly and reports how many
// were removed.
func (d *Directory) Remove(name string) int {
	kept := d.users[:0]
	for _, user := range d.users {
		if user.Name != name {
			kept = append(kept, user)
		}
	}

	removed := len(d.users) - len(kept)
	clear(d.users[len(kept):])
	d.users = kept
	return removed
}

func (d *Directory) Names() []string {
	out := make([]string, 0, len(d.users))
	for _, user := range d.users {
		out = append(out, user.Name)
	}
	return out
}

// Find returns the first user with the given name, ignoring case.
func (d *Directory) Find(name string) (User, bool) {
	for _, user := range d.users {
		if strings.EqualFold(user.Name, name) {
			return user, true
		}
	}
	return User{}, false
}
