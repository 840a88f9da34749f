package dto

type CreateCategoryInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Slug  string `json:"slug" validate:"slug,max=255"`
	Image string `json:"image" validate:"omitempty,max=2048"`
}

type UpdateCategoryInput struct {
	ID string `json:"-" validate:"required"`
	CreateCategoryInput
}
