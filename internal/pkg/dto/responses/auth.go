package responses

// SignUpMedic is returned after the remote auth provider accepts the
// registration. Token is the session JWT issued by this service.
type SignUpMedic struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// SignInMedic carries the fresh session JWT after a password login.
type SignInMedic struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}
