package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type TrainingCourse struct {
	ID            string    `json:"id" bson:"_id"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Instructor    string    `json:"instructor,omitempty" bson:"instructor,omitempty"`
	VideoURL      string    `json:"video_url,omitempty" bson:"video_url,omitempty"`
	Files         []string  `json:"files" bson:"files"`
	HomeworkTasks []string  `json:"homework_tasks" bson:"homework_tasks"`
	KudosReward   int       `json:"kudos_reward" bson:"kudos_reward"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

func (t *TrainingCourse) SetMeta(id string, now time.Time) {
	t.ID = id
	t.CreatedAt = now
}

type TrainingCourseCreatePayload struct {
	Title         string   `json:"title" validate:"required,max=200"`
	Description   string   `json:"description"`
	Instructor    string   `json:"instructor"`
	VideoURL      string   `json:"video_url" validate:"omitempty,url"`
	HomeworkTasks []string `json:"homework_tasks"`
	KudosReward   int      `json:"kudos_reward" validate:"gte=0"`
}

func (p TrainingCourseCreatePayload) Build() *TrainingCourse {
	return &TrainingCourse{
		Title:         p.Title,
		Description:   p.Description,
		Instructor:    p.Instructor,
		VideoURL:      p.VideoURL,
		Files:         []string{},
		HomeworkTasks: nonNil(p.HomeworkTasks),
		KudosReward:   p.KudosReward,
	}
}

type TrainingCourseUpdatePayload struct {
	Title         *string   `json:"title" validate:"omitempty,max=200"`
	Description   *string   `json:"description"`
	Instructor    *string   `json:"instructor"`
	VideoURL      *string   `json:"video_url" validate:"omitempty,url"`
	Files         *[]string `json:"files"`
	HomeworkTasks *[]string `json:"homework_tasks"`
	KudosReward   *int      `json:"kudos_reward" validate:"omitempty,gte=0"`
}

func (p TrainingCourseUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "title", p.Title)
	setIf(set, "description", p.Description)
	setIf(set, "instructor", p.Instructor)
	setIf(set, "video_url", p.VideoURL)
	setIf(set, "files", p.Files)
	setIf(set, "homework_tasks", p.HomeworkTasks)
	setIf(set, "kudos_reward", p.KudosReward)
	return set
}

type TrainingProgress struct {
	ID                string     `json:"id" bson:"_id"`
	CourseID          string     `json:"course_id" bson:"course_id"`
	UserID            string     `json:"user_id" bson:"user_id"`
	UserName          string     `json:"user_name" bson:"user_name"`
	Progress          int        `json:"progress" bson:"progress"`
	Completed         bool       `json:"completed" bson:"completed"`
	HomeworkSubmitted bool       `json:"homework_submitted" bson:"homework_submitted"`
	HomeworkURL       string     `json:"homework_url,omitempty" bson:"homework_url,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" bson:"updated_at"`
}

func (t *TrainingProgress) SetMeta(id string, now time.Time) {
	t.ID = id
	t.CreatedAt = now
	t.UpdatedAt = now
}

type TrainingProgressPayload struct {
	UserID            string  `json:"user_id" validate:"required"`
	UserName          string  `json:"user_name" validate:"required"`
	Progress          int     `json:"progress" validate:"min=0,max=100"`
	HomeworkSubmitted *bool   `json:"homework_submitted"`
	HomeworkURL       *string `json:"homework_url" validate:"omitempty,uri"`
}
