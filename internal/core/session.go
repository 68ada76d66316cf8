package core

import "errors"

const ContextSessionKey = "session"

var ErrNoSession = errors.New("no session")

// Session 每個請求一份的登入身分，建立後不可修改，由 handler 明確傳給 service
type Session struct {
	userID string
	name   string
	email  string
	role   Role
}

func NewSession(userID, name, email string, role Role) Session {
	return Session{userID: userID, name: name, email: email, role: role}
}

func (s Session) UserID() string { return s.userID }
func (s Session) Name() string   { return s.name }
func (s Session) Email() string  { return s.email }
func (s Session) Role() Role     { return s.role }

func (s Session) IsAdmin() bool {
	return s.role == RoleAdmin
}

func (s Session) Valid() bool {
	return s.userID != "" && s.role.Valid()
}
