package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UserCollection               = "users"
	ProjectCollection            = "projects"
	TaskCollection               = "tasks"
	CalendarEventCollection      = "calendar_events"
	LeaveRequestCollection       = "leave_requests"
	ContentItemCollection        = "content_items"
	AIProjectCollection          = "ai_projects"
	ResearchNoteCollection       = "research_notes"
	AcademyCourseCollection      = "academy_courses"
	PersonalTaskCollection       = "personal_tasks"
	CloudServiceCollection       = "cloud_services"
	FinanceTransactionCollection = "finance_transactions"
	SalaryCollection             = "salary_records"
	AttendanceCollection         = "attendance"
	KudosCollection              = "kudos_transactions"
	TrainingCourseCollection     = "training_courses"
	TrainingProgressCollection   = "training_progress"
	MeetingCollection            = "meetings"
	MeetingAttendanceCollection  = "meeting_attendance"
	SubscriptionCollection       = "subscriptions"
)

// MongoConnect opens a client and pings the primary before handing it back.
func MongoConnect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGOSTRING is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

func DisconnectDB(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting from MongoDB: %w", err)
	}
	return nil
}

// InitDatabase creates the indexes the repositories rely on.
// attendance(user_id, date) is intentionally not unique; concurrent check-ins for the same day
// are not mutually exclusive.
func InitDatabase(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		UserCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		AttendanceCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
		},
		ProjectCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "assigned_members", Value: 1}}},
		},
		TaskCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "assigned_to", Value: 1}, {Key: "status", Value: 1}}},
		},
		FinanceTransactionCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		TrainingProgressCollection: {
			{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", name, err)
		}
	}
	return nil
}
