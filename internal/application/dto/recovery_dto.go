package dto

// ForgotPasswordRequest entrada para solicitar un código de recuperación.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyCodeRequest entrada para verificar el código recibido por email.
type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// VerifyCodeResponse token que autoriza exactamente un cambio de contraseña.
type VerifyCodeResponse struct {
	Token string `json:"token"`
}

// ResetPasswordRequest entrada para reemplazar la contraseña.
type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}
