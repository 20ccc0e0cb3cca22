package request_models

type AddUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
