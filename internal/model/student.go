package model

type Student struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PassHash string `json:"pass_hash"` // bcrypt-хеш пасскода, пустая строка если пасскод не задан
}
