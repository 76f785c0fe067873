package request

// SendOTPRequest carries the caller-chosen code alongside the email.
// Storing the submitted code verbatim is part of the existing client
// contract; see the resend path for server-generated codes.
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
	Name  string `json:"name" validate:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AdminLoginRequest struct {
	AdminID  string `json:"adminId" validate:"required"`
	Password string `json:"password" validate:"required"`
}
