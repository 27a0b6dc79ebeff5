// internal/domain/identity/dto.go
package identity

// LoginRequest for employee login. The personnel number travels as a
// numeric string; parsing failures are a client error.
type LoginRequest struct {
	PersonnelNumber string `json:"personnel_number" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// LoginResponse successful login response
type LoginResponse struct {
	Token     string     `json:"token"`
	User      UserInfo   `json:"user"`
	Roles     []Role     `json:"roles"`
	Resources []Resource `json:"resources"`
}

// UserInfo is the serializable slice of a User. Salt, password hash,
// expiration date, disabled flag and dismissal date never leave the service.
type UserInfo struct {
	PersonnelNumber int32  `json:"personnel_number"`
	Username        string `json:"username"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty"`
}

// Info converts a User into its public representation.
func (u *User) Info() UserInfo {
	info := UserInfo{
		PersonnelNumber: u.PersonnelNumber,
		Username:        u.Username,
	}
	if u.Phone.Valid {
		info.Phone = u.Phone.String
	}
	if u.Email.Valid {
		info.Email = u.Email.String
	}
	return info
}
