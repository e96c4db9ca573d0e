package auth

// Role identifies which account table and which signing secret apply to a
// request. The wire value is carried in the `role` header and in the
// `<role>-token` header name.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a wire role value.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// TokenHeader returns the request header carrying this role's JWT,
// e.g. "student-token".
func (r Role) TokenHeader() string {
	return string(r) + "-token"
}
