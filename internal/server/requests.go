package server

import "unicode"

// ChangeDataRequest carries a profile update. Only email is mandatory;
// blank optional fields are left unchanged locally, so constraints apply
// just to submitted values.
type ChangeDataRequest struct {
	Name     string `form:"name" binding:"omitempty,min=4,max=255"`
	LastName string `form:"last_name" binding:"omitempty,min=4,max=255"`
	UserName string `form:"user_name" binding:"omitempty,max=255"`
	Email    string `form:"email" binding:"required,email,max=255"`
	Phone    string `form:"phone" binding:"omitempty,min=8,max=20"`
	PrefixID *uint  `form:"prefix_id"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

type CheckCodeRequest struct {
	CodeSecurity string `json:"code_security" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name"`
	LastName  *string `json:"last_name"`
	UserName  *string `json:"user_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Status    *int    `json:"status"`
	Affiliate *int    `json:"affiliate"`
}

// strongPassword requires mixed case, a digit and a symbol on top of the
// length constraint from the binding tag.
func strongPassword(password string) bool {
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
