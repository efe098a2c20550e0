package dto

// LoginRequest is the form body of POST /token.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// SignupRequest is the JSON body of POST /signup. The field is named
// hashed_password on the wire for compatibility, but it carries the raw
// password; hashing happens server-side.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"hashed_password" binding:"required"`
}
