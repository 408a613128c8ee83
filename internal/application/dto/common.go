package dto

// APIResponse enveloppe commune de toutes les réponses HTTP :
// {success, data?, message?, error?, count?}.
// Message est destiné à l'affichage utilisateur (en français) ;
// Error porte le détail technique pour les logs.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// OK réponse de succès avec données.
func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// OKCount réponse de succès pour un listing, avec le nombre d'éléments.
func OKCount(data any, count int) APIResponse {
	return APIResponse{Success: true, Data: data, Count: &count}
}

// OKMessage réponse de succès avec données et message utilisateur.
func OKMessage(data any, message string) APIResponse {
	return APIResponse{Success: true, Data: data, Message: message}
}

// Fail réponse d'échec avec message utilisateur.
func Fail(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}

// FailWith réponse d'échec avec message utilisateur et détail technique.
func FailWith(message string, err error) APIResponse {
	resp := APIResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// PageRequest pagination des listings.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage applique les valeurs par défaut si Limit/Offset sont absents.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
