package dto

// Form payloads bound from the urlencoded request bodies. Validation rules
// live in the validation package, not in binding tags, so a failure surfaces
// exactly one message for the first broken field.

type RegistrationForm struct {
	Username        string `form:"username"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type TaskForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	DueDate     string `form:"dueDate"`
}
