package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	StatusTodo  = "todo"
	StatusDoing = "doing"
	StatusDone  = "done"
)

type Project struct {
	ID              string    `json:"id" bson:"_id"`
	Name            string    `json:"name" bson:"name"`
	Description     string    `json:"description" bson:"description"`
	Type            string    `json:"type" bson:"type"`
	AssignedMembers []string  `json:"assigned_members" bson:"assigned_members"`
	Deadline        string    `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Status          string    `json:"status" bson:"status"`
	Progress        int       `json:"progress" bson:"progress"`
	Files           []string  `json:"files" bson:"files"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

func (p *Project) SetMeta(id string, now time.Time) {
	p.ID = id
	p.CreatedAt = now
}

type ProjectCreatePayload struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Description     string   `json:"description" validate:"required"`
	Type            string   `json:"type" validate:"required"`
	AssignedMembers []string `json:"assigned_members"`
	Deadline        string   `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

func (p ProjectCreatePayload) Build() *Project {
	return &Project{
		Name:            p.Name,
		Description:     p.Description,
		Type:            p.Type,
		AssignedMembers: nonNil(p.AssignedMembers),
		Deadline:        p.Deadline,
		Status:          StatusTodo,
		Files:           []string{},
	}
}

type ProjectUpdatePayload struct {
	Name            *string   `json:"name" validate:"omitempty,max=200"`
	Description     *string   `json:"description"`
	Type            *string   `json:"type"`
	AssignedMembers *[]string `json:"assigned_members"`
	Deadline        *string   `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Status          *string   `json:"status" validate:"omitempty,oneof=todo doing done"`
	Progress        *int      `json:"progress" validate:"omitempty,min=0,max=100"`
	Files           *[]string `json:"files"`
}

func (p ProjectUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "name", p.Name)
	setIf(set, "description", p.Description)
	setIf(set, "type", p.Type)
	setIf(set, "assigned_members", p.AssignedMembers)
	setIf(set, "deadline", p.Deadline)
	setIf(set, "status", p.Status)
	setIf(set, "progress", p.Progress)
	setIf(set, "files", p.Files)
	return set
}

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID          string    `json:"id" bson:"_id"`
	ProjectID   string    `json:"project_id" bson:"project_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	AssignedTo  string    `json:"assigned_to" bson:"assigned_to"`
	Status      string    `json:"status" bson:"status"`
	Priority    string    `json:"priority" bson:"priority"`
	DueDate     string    `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

func (t *Task) SetMeta(id string, now time.Time) {
	t.ID = id
	t.CreatedAt = now
}

type TaskCreatePayload struct {
	ProjectID   string `json:"project_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	AssignedTo  string `json:"assigned_to" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (p TaskCreatePayload) Build() *Task {
	priority := p.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	return &Task{
		ProjectID:   p.ProjectID,
		Title:       p.Title,
		Description: p.Description,
		AssignedTo:  p.AssignedTo,
		Status:      StatusTodo,
		Priority:    priority,
		DueDate:     p.DueDate,
	}
}

type TaskUpdatePayload struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	AssignedTo  *string `json:"assigned_to"`
	Status      *string `json:"status" validate:"omitempty,oneof=todo doing done"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (p TaskUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "title", p.Title)
	setIf(set, "description", p.Description)
	setIf(set, "assigned_to", p.AssignedTo)
	setIf(set, "status", p.Status)
	setIf(set, "priority", p.Priority)
	setIf(set, "due_date", p.DueDate)
	return set
}
