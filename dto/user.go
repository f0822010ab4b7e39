package dto

type CreateUserInput struct {
	Name string `form:"name"`
}
