package dto

// RegisterRequest body de POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse utilisateur en réponse (jamais le hash).
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// LoginResponse token + utilisateur.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SettingsRequest body de PUT /api/settings.
type SettingsRequest struct {
	CompanyName string `json:"companyName"`
	Address     string `json:"address,omitempty"`
	TaxID       string `json:"taxId,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	SenderName  string `json:"senderName,omitempty"`
}

// SettingsResponse profil société en réponse.
type SettingsResponse struct {
	CompanyName string `json:"companyName"`
	Address     string `json:"address,omitempty"`
	TaxID       string `json:"taxId,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	SenderName  string `json:"senderName,omitempty"`
	UpdatedAt   string `json:"updatedAt"`
}
