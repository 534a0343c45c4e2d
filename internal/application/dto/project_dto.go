package dto

// CreateProjectRequest payload de criação de obra.
type CreateProjectRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Address string `json:"address" validate:"max=500"`
}

// UpdateProjectRequest payload de atualização. Ponteiros distinguem campo
// ausente de campo vazio.
type UpdateProjectRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

// ProjectResponse representação de obra nas respostas.
type ProjectResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
