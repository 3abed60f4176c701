package entity

type User struct {
	Base
	Name           string `gorm:"unique"`
	HashedPassword string
	Role           string `gorm:"default:USER"`
	AvatarURL      string
}

const (
	SuperAdminRole = "SUPER_ADMIN"
	AdminRole      = "ADMIN"
	UserRole       = "USER"
)

var GlobalAdminRoles = []string{SuperAdminRole, AdminRole}

