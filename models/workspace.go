package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Content pipeline, AI lab, research, academy, personal and cloud resources.

type ContentItem struct {
	ID             string    `json:"id" bson:"_id"`
	Title          string    `json:"title" bson:"title"`
	Platform       string    `json:"platform" bson:"platform"`
	ContentType    string    `json:"content_type" bson:"content_type"`
	AssignedEditor string    `json:"assigned_editor,omitempty" bson:"assigned_editor,omitempty"`
	ScheduledDate  string    `json:"scheduled_date,omitempty" bson:"scheduled_date,omitempty"`
	Status         string    `json:"status" bson:"status"`
	DraftURL       string    `json:"draft_url,omitempty" bson:"draft_url,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

func (c *ContentItem) SetMeta(id string, now time.Time) {
	c.ID = id
	c.CreatedAt = now
}

type ContentItemCreatePayload struct {
	Title          string `json:"title" validate:"required,max=200"`
	Platform       string `json:"platform" validate:"required"`
	ContentType    string `json:"content_type" validate:"required"`
	AssignedEditor string `json:"assigned_editor"`
	ScheduledDate  string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
}

func (p ContentItemCreatePayload) Build() *ContentItem {
	return &ContentItem{
		Title:          p.Title,
		Platform:       p.Platform,
		ContentType:    p.ContentType,
		AssignedEditor: p.AssignedEditor,
		ScheduledDate:  p.ScheduledDate,
		Status:         "draft",
	}
}

type ContentItemUpdatePayload struct {
	Title          *string `json:"title" validate:"omitempty,max=200"`
	Platform       *string `json:"platform"`
	ContentType    *string `json:"content_type"`
	AssignedEditor *string `json:"assigned_editor"`
	ScheduledDate  *string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status" validate:"omitempty,oneof=draft review scheduled published"`
	DraftURL       *string `json:"draft_url" validate:"omitempty,uri"`
}

func (p ContentItemUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "title", p.Title)
	setIf(set, "platform", p.Platform)
	setIf(set, "content_type", p.ContentType)
	setIf(set, "assigned_editor", p.AssignedEditor)
	setIf(set, "scheduled_date", p.ScheduledDate)
	setIf(set, "status", p.Status)
	setIf(set, "draft_url", p.DraftURL)
	return set
}

type AIProject struct {
	ID                string    `json:"id" bson:"_id"`
	Name              string    `json:"name" bson:"name"`
	Description       string    `json:"description" bson:"description"`
	Dataset           string    `json:"dataset,omitempty" bson:"dataset,omitempty"`
	ModelVersion      string    `json:"model_version,omitempty" bson:"model_version,omitempty"`
	Accuracy          *float64  `json:"accuracy,omitempty" bson:"accuracy,omitempty"`
	Status            string    `json:"status" bson:"status"`
	AssignedEngineers []string  `json:"assigned_engineers" bson:"assigned_engineers"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

func (a *AIProject) SetMeta(id string, now time.Time) {
	a.ID = id
	a.CreatedAt = now
}

type AIProjectCreatePayload struct {
	Name              string   `json:"name" validate:"required,max=200"`
	Description       string   `json:"description" validate:"required"`
	Dataset           string   `json:"dataset"`
	AssignedEngineers []string `json:"assigned_engineers"`
}

func (p AIProjectCreatePayload) Build() *AIProject {
	return &AIProject{
		Name:              p.Name,
		Description:       p.Description,
		Dataset:           p.Dataset,
		Status:            "development",
		AssignedEngineers: nonNil(p.AssignedEngineers),
	}
}

type AIProjectUpdatePayload struct {
	Name              *string   `json:"name" validate:"omitempty,max=200"`
	Description       *string   `json:"description"`
	Dataset           *string   `json:"dataset"`
	ModelVersion      *string   `json:"model_version"`
	Accuracy          *float64  `json:"accuracy" validate:"omitempty,min=0,max=100"`
	Status            *string   `json:"status" validate:"omitempty,oneof=development testing deployed"`
	AssignedEngineers *[]string `json:"assigned_engineers"`
}

func (p AIProjectUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "name", p.Name)
	setIf(set, "description", p.Description)
	setIf(set, "dataset", p.Dataset)
	setIf(set, "model_version", p.ModelVersion)
	setIf(set, "accuracy", p.Accuracy)
	setIf(set, "status", p.Status)
	setIf(set, "assigned_engineers", p.AssignedEngineers)
	return set
}

type ResearchNote struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Tags      []string  `json:"tags" bson:"tags"`
	Author    string    `json:"author" bson:"author"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (r *ResearchNote) SetMeta(id string, now time.Time) {
	r.ID = id
	r.CreatedAt = now
}

type ResearchNoteCreatePayload struct {
	Title   string   `json:"title" validate:"required,max=200"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
	Author  string   `json:"author" validate:"required"`
}

func (p ResearchNoteCreatePayload) Build() *ResearchNote {
	return &ResearchNote{Title: p.Title, Content: p.Content, Tags: nonNil(p.Tags), Author: p.Author}
}

type AcademyCourse struct {
	ID            string    `json:"id" bson:"_id"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description" bson:"description"`
	Instructor    string    `json:"instructor" bson:"instructor"`
	StudentsCount int       `json:"students_count" bson:"students_count"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

func (a *AcademyCourse) SetMeta(id string, now time.Time) {
	a.ID = id
	a.CreatedAt = now
}

type AcademyCourseCreatePayload struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Instructor  string `json:"instructor" validate:"required"`
}

func (p AcademyCourseCreatePayload) Build() *AcademyCourse {
	return &AcademyCourse{Title: p.Title, Description: p.Description, Instructor: p.Instructor, Status: "draft"}
}

type AcademyCourseUpdatePayload struct {
	Title         *string `json:"title" validate:"omitempty,max=200"`
	Description   *string `json:"description"`
	Instructor    *string `json:"instructor"`
	StudentsCount *int    `json:"students_count" validate:"omitempty,min=0"`
	Status        *string `json:"status" validate:"omitempty,oneof=draft active completed"`
}

func (p AcademyCourseUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "title", p.Title)
	setIf(set, "description", p.Description)
	setIf(set, "instructor", p.Instructor)
	setIf(set, "students_count", p.StudentsCount)
	setIf(set, "status", p.Status)
	return set
}

type PersonalTask struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Title     string    `json:"title" bson:"title"`
	Category  string    `json:"category" bson:"category"`
	Status    string    `json:"status" bson:"status"`
	DueDate   string    `json:"due_date,omitempty" bson:"due_date,omitempty"`
	IsPrivate bool      `json:"is_private" bson:"is_private"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (t *PersonalTask) SetMeta(id string, now time.Time) {
	t.ID = id
	t.CreatedAt = now
}

type PersonalTaskCreatePayload struct {
	UserID    string `json:"user_id" validate:"required"`
	Title     string `json:"title" validate:"required,max=200"`
	Category  string `json:"category" validate:"required,oneof=college startup personal"`
	DueDate   string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	IsPrivate *bool  `json:"is_private"`
}

func (p PersonalTaskCreatePayload) Build() *PersonalTask {
	private := true
	if p.IsPrivate != nil {
		private = *p.IsPrivate
	}
	return &PersonalTask{
		UserID:    p.UserID,
		Title:     p.Title,
		Category:  p.Category,
		Status:    StatusTodo,
		DueDate:   p.DueDate,
		IsPrivate: private,
	}
}

type PersonalTaskUpdatePayload struct {
	Title     *string `json:"title" validate:"omitempty,max=200"`
	Category  *string `json:"category" validate:"omitempty,oneof=college startup personal"`
	Status    *string `json:"status" validate:"omitempty,oneof=todo doing done"`
	DueDate   *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	IsPrivate *bool   `json:"is_private"`
}

func (p PersonalTaskUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "title", p.Title)
	setIf(set, "category", p.Category)
	setIf(set, "status", p.Status)
	setIf(set, "due_date", p.DueDate)
	setIf(set, "is_private", p.IsPrivate)
	return set
}

type CloudService struct {
	ID             string    `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name"`
	Status         string    `json:"status" bson:"status"`
	Uptime         string    `json:"uptime,omitempty" bson:"uptime,omitempty"`
	Environment    string    `json:"environment" bson:"environment"`
	LastDeployment string    `json:"last_deployment,omitempty" bson:"last_deployment,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

func (c *CloudService) SetMeta(id string, now time.Time) {
	c.ID = id
	c.CreatedAt = now
}

type CloudServiceCreatePayload struct {
	Name        string `json:"name" validate:"required,max=200"`
	Environment string `json:"environment" validate:"required,oneof=prod staging dev"`
	Status      string `json:"status" validate:"omitempty,oneof=online offline maintenance"`
}

// Build defaults a missing status to offline until the service reports in.
func (p CloudServiceCreatePayload) Build() *CloudService {
	status := p.Status
	if status == "" {
		status = "offline"
	}
	return &CloudService{Name: p.Name, Environment: p.Environment, Status: status}
}

type CloudServiceUpdatePayload struct {
	Name           *string `json:"name" validate:"omitempty,max=200"`
	Status         *string `json:"status" validate:"omitempty,oneof=online offline maintenance"`
	Uptime         *string `json:"uptime"`
	Environment    *string `json:"environment" validate:"omitempty,oneof=prod staging dev"`
	LastDeployment *string `json:"last_deployment"`
}

func (p CloudServiceUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "name", p.Name)
	setIf(set, "status", p.Status)
	setIf(set, "uptime", p.Uptime)
	setIf(set, "environment", p.Environment)
	setIf(set, "last_deployment", p.LastDeployment)
	return set
}
