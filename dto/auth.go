package dto

type LoginInput struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type LoginQuery struct {
	Next string `form:"next"`
}
