package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"ops-backend/config"
	"ops-backend/models"
)

func TestKudosRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("balance", func(mt *mtest.T) {
		repo := NewKudosRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, config.KudosCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "u1"}, {Key: "total", Value: int32(35)}},
		))

		total, err := repo.Balance(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, int64(35), total)
	})

	mt.Run("balance without transactions", func(mt *mtest.T) {
		repo := NewKudosRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, config.KudosCollection), mtest.FirstBatch))

		total, err := repo.Balance(context.Background(), "u2")
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	mt.Run("leaderboard", func(mt *mtest.T) {
		repo := NewKudosRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, config.KudosCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "u1"}, {Key: "user_name", Value: "Alice"}, {Key: "total", Value: int32(90)}, {Key: "transactions", Value: int32(4)}},
			bson.D{{Key: "_id", Value: "u2"}, {Key: "user_name", Value: "Bob"}, {Key: "total", Value: int32(20)}, {Key: "transactions", Value: int32(1)}},
		))

		entries, err := repo.Leaderboard(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "u1", entries[0].UserID)
		assert.Equal(t, "Alice", entries[0].UserName)
		assert.EqualValues(t, 90, entries[0].Total)
	})
}

func TestMeetingRepository_MarkAttendanceTracked(t *testing.T) {
	mt := newMock(t)

	mt.Run("first time", func(mt *mtest.T) {
		repo := NewMeetingRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		assert.NoError(t, repo.MarkAttendanceTracked(context.Background(), "m1"))
	})

	mt.Run("already tracked", func(mt *mtest.T) {
		repo := NewMeetingRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		assert.ErrorIs(t, repo.MarkAttendanceTracked(context.Background(), "m1"), ErrNotFound)
	})

	mt.Run("release", func(mt *mtest.T) {
		repo := NewMeetingRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		require.NoError(t, repo.ReleaseAttendanceTracked(context.Background(), "m1"))

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.True(t, started.Command.Lookup("updates", "0", "q", "attendance_tracked").Boolean())
		assert.False(t, started.Command.Lookup("updates", "0", "u", "$set", "attendance_tracked").Boolean())
	})
}

func TestAttendanceRepository_FindRecords(t *testing.T) {
	mt := newMock(t)

	mt.Run("month filter", func(mt *mtest.T) {
		repo := NewAttendanceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, config.AttendanceCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "a1"}, {Key: "user_id", Value: "u1"}, {Key: "date", Value: "2024-03-04"}, {Key: "status", Value: models.AttendancePresent}, {Key: "total_hours", Value: 8.5}},
		))

		records, err := repo.FindRecords(context.Background(), "u1", "2024-03")
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.NotNil(t, records[0].TotalHours)
		assert.Equal(t, 8.5, *records[0].TotalHours)

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.Equal(t, "find", started.CommandName)
		filter := started.Command.Lookup("filter").Document()
		assert.Equal(t, "u1", filter.Lookup("user_id").StringValue())
		pattern, _ := filter.Lookup("date").Regex()
		assert.Equal(t, "^2024-03", pattern)
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mt := newMock(t)

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, config.UserCollection), mtest.FirstBatch))

		_, err := repo.FindByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	mt.Run("password stays in the store model", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, config.UserCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "u1"}, {Key: "username", Value: "alice"}, {Key: "password", Value: "$2a$hash"}, {Key: "role", Value: models.RoleAdmin}},
		))

		u, err := repo.FindByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "$2a$hash", u.Password)
		assert.Equal(t, models.RoleAdmin, u.Role)
	})
}
