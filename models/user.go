package models

import "time"

const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
	RoleHousekeeping = "housekeeping"
	RoleGuest        = "guest"
)

func IsValidIDProofType(t string) bool {
	return oneOf(t, "Passport", "Driving License", "National ID", "Other")
}

func IsValidRole(role string) bool {
	return oneOf(role, RoleAdmin, RoleReceptionist, RoleHousekeeping, RoleGuest)
}

// User covers staff accounts and guests. Password holds the bcrypt hash and never leaves the server.
type User struct {
	Base

	Username      string     `gorm:"column:username;uniqueIndex;size:150;not null" json:"username"`
	Email         string     `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	Password      string     `gorm:"column:password;size:255;not null" json:"-"`
	Role          string     `gorm:"column:role;size:32;index;not null" json:"role"`
	FullName      string     `gorm:"column:full_name;size:255" json:"fullName"`
	Phone         string     `gorm:"column:phone;size:64" json:"phone"`
	Address       string     `gorm:"column:address;type:text" json:"address"`
	IDProofType   string     `gorm:"column:id_proof_type;size:64" json:"idProofType"`
	IDProofNumber string     `gorm:"column:id_proof_number;size:128" json:"idProofNumber"`
	EmployeeID    string     `gorm:"column:employee_id;size:64" json:"employeeId"`
	JoiningDate   *time.Time `gorm:"column:joining_date" json:"joiningDate,omitempty"`
	IsActive      bool       `gorm:"column:is_active;not null" json:"isActive"`
}
