package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	RoleAdmin          = "Admin"
	RoleCOO            = "COO"
	RoleCTO            = "CTO"
	RoleProjectManager = "Project Manager"
	RoleTech           = "Tech"
	RoleDesign         = "Design"
	RoleAI             = "AI"
	RoleCloud          = "Cloud"
	RoleResearch       = "Research"
	RoleContent        = "Content"
	RoleIntern         = "Intern"
)

var roles = map[string]bool{
	RoleAdmin: true, RoleCOO: true, RoleCTO: true, RoleProjectManager: true,
	RoleTech: true, RoleDesign: true, RoleAI: true, RoleCloud: true,
	RoleResearch: true, RoleContent: true, RoleIntern: true,
}

// ValidRole reports whether role is one of the organisation roles.
func ValidRole(role string) bool {
	return roles[role]
}

type User struct {
	ID           string    `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	Password     string    `json:"-" bson:"password"`
	Name         string    `json:"name" bson:"name"`
	Role         string    `json:"role" bson:"role"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	Contact      string    `json:"contact,omitempty" bson:"contact,omitempty"`
	Skillset     []string  `json:"skillset" bson:"skillset"`
	CurrentTasks []string  `json:"current_tasks" bson:"current_tasks"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

func (u *User) SetMeta(id string, now time.Time) {
	u.ID = id
	u.CreatedAt = now
}

type UserRegisterPayload struct {
	Username string   `json:"username" validate:"required,min=3,max=50"`
	Password string   `json:"password" validate:"required,min=6,max=72"`
	Name     string   `json:"name" validate:"required,max=100"`
	Role     string   `json:"role" validate:"required,role"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Contact  string   `json:"contact"`
	Skillset []string `json:"skillset"`
}

type UserLoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserUpdatePayload never touches username or password.
type UserUpdatePayload struct {
	Name         *string   `json:"name" validate:"omitempty,max=100"`
	Role         *string   `json:"role" validate:"omitempty,role"`
	Email        *string   `json:"email" validate:"omitempty,email"`
	Contact      *string   `json:"contact"`
	Skillset     *[]string `json:"skillset"`
	CurrentTasks *[]string `json:"current_tasks"`
}

func (p UserUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "name", p.Name)
	setIf(set, "role", p.Role)
	setIf(set, "email", p.Email)
	setIf(set, "contact", p.Contact)
	setIf(set, "skillset", p.Skillset)
	setIf(set, "current_tasks", p.CurrentTasks)
	return set
}
