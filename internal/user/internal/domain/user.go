package domain

type User struct {
	ID       int64
	Email    string
	Nickname string
	Phone    string
}
