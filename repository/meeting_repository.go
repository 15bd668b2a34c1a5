package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ops-backend/config"
	"ops-backend/models"
)

type MeetingRepository struct {
	*Repository[models.Meeting]
}

func NewMeetingRepository(db *mongo.Database) *MeetingRepository {
	return &MeetingRepository{Repository: NewRepository[models.Meeting](db, config.MeetingCollection)}
}

// MarkAttendanceTracked flips attendance_tracked once; ErrNotFound when the meeting is missing or already tracked.
func (r *MeetingRepository) MarkAttendanceTracked(ctx context.Context, id string) error {
	return r.UpdateWhere(ctx,
		bson.M{"_id": id, "attendance_tracked": bson.M{"$ne": true}},
		bson.M{"attendance_tracked": true},
	)
}

// ReleaseAttendanceTracked undoes MarkAttendanceTracked after a failed attendance write.
func (r *MeetingRepository) ReleaseAttendanceTracked(ctx context.Context, id string) error {
	return r.UpdateWhere(ctx,
		bson.M{"_id": id, "attendance_tracked": true},
		bson.M{"attendance_tracked": false},
	)
}

type MeetingAttendanceRepository struct {
	*Repository[models.MeetingAttendance]
}

func NewMeetingAttendanceRepository(db *mongo.Database) *MeetingAttendanceRepository {
	return &MeetingAttendanceRepository{
		Repository: NewRepository[models.MeetingAttendance](db, config.MeetingAttendanceCollection),
	}
}

func (r *MeetingAttendanceRepository) FindByMeeting(ctx context.Context, meetingID string) ([]models.MeetingAttendance, error) {
	return r.List(ctx, bson.M{"meeting_id": meetingID}, ListOptions{SortBy: "user_name"})
}
