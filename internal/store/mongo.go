package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campus-backend/internal/models"
)

// timeLayout is the canonical on-disk timestamp form. Fixed-width UTC so
// that lexicographic comparison in Mongo filters matches chronological
// order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Mongo is the durable document backend. Records are stored as flat
// documents keyed by the generated id field; timestamps are written as
// canonical UTC strings and parsed back leniently on read (an
// unrecognized stored value yields a zero time, never a load failure).
type Mongo struct {
	users       *mongo.Collection
	courses     *mongo.Collection
	attendance  *mongo.Collection
	events      *mongo.Collection
	studyGroups *mongo.Collection
	chat        *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		users:       db.Collection("users"),
		courses:     db.Collection("courses"),
		attendance:  db.Collection("attendance"),
		events:      db.Collection("events"),
		studyGroups: db.Collection("study_groups"),
		chat:        db.Collection("chat_history"),
	}
}

func (s *Mongo) Durable() bool { return true }

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := formatTime(*t)
	return &v
}

// parseTime is deliberately forgiving: stored strings written by other
// tooling may not match the canonical layout exactly.
func parseTime(s string) time.Time {
	for _, layout := range []string{timeLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseTime(*s)
	return &t
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// Document wrappers: the inline model carries every field except
// timestamps, which are re-declared here as strings.

type userDoc struct {
	models.User `bson:",inline"`
	CreatedAt   string `bson:"created_at"`
}

type courseDoc struct {
	models.Course `bson:",inline"`
	CreatedAt     string `bson:"created_at"`
}

type attendanceDoc struct {
	models.AttendanceRecord `bson:",inline"`
	CheckInTime             *string `bson:"check_in_time,omitempty"`
	CheckOutTime            *string `bson:"check_out_time,omitempty"`
	CreatedAt               string  `bson:"created_at"`
}

type eventDoc struct {
	models.Event `bson:",inline"`
	Date         string `bson:"date"`
	CreatedAt    string `bson:"created_at"`
}

type studyGroupDoc struct {
	models.StudyGroup `bson:",inline"`
	CreatedAt         string `bson:"created_at"`
}

type chatDoc struct {
	models.ChatMessage `bson:",inline"`
	Timestamp          string `bson:"timestamp"`
}

// ─── Users ───

func (s *Mongo) InsertUser(ctx context.Context, user *models.User) error {
	_, err := s.users.InsertOne(ctx, userDoc{User: *user, CreatedAt: formatTime(user.CreatedAt)})
	return err
}

func (s *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var d userDoc
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&d); err != nil {
		return nil, notFound(err)
	}
	u := d.User
	u.CreatedAt = parseTime(d.CreatedAt)
	return &u, nil
}

func (s *Mongo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var d userDoc
	if err := s.users.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		return nil, notFound(err)
	}
	u := d.User
	u.CreatedAt = parseTime(d.CreatedAt)
	return &u, nil
}

// ─── Courses ───

func (s *Mongo) InsertCourse(ctx context.Context, course *models.Course) error {
	_, err := s.courses.InsertOne(ctx, courseDoc{Course: *course, CreatedAt: formatTime(course.CreatedAt)})
	return err
}

func (s *Mongo) ListCourses(ctx context.Context) ([]models.Course, error) {
	cur, err := s.courses.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Course, 0)
	for cur.Next(ctx) {
		var d courseDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		c := d.Course
		c.CreatedAt = parseTime(d.CreatedAt)
		out = append(out, c)
	}
	return out, cur.Err()
}

func (s *Mongo) FindCourseByID(ctx context.Context, id string) (*models.Course, error) {
	var d courseDoc
	if err := s.courses.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		return nil, notFound(err)
	}
	c := d.Course
	c.CreatedAt = parseTime(d.CreatedAt)
	return &c, nil
}

func (s *Mongo) CountCourses(ctx context.Context) (int64, error) {
	return s.courses.CountDocuments(ctx, bson.M{})
}

// ─── Attendance ───

func (s *Mongo) InsertAttendance(ctx context.Context, rec *models.AttendanceRecord) error {
	doc := attendanceDoc{
		AttendanceRecord: *rec,
		CheckInTime:      formatTimePtr(rec.CheckInTime),
		CheckOutTime:     formatTimePtr(rec.CheckOutTime),
		CreatedAt:        formatTime(rec.CreatedAt),
	}
	_, err := s.attendance.InsertOne(ctx, doc)
	return err
}

func (s *Mongo) FindAttendanceInWindow(ctx context.Context, userID, classID string, from, to time.Time) (*models.AttendanceRecord, error) {
	filter := bson.M{
		"user_id":  userID,
		"class_id": classID,
		"created_at": bson.M{
			"$gte": formatTime(from),
			"$lt":  formatTime(to),
		},
	}
	var d attendanceDoc
	if err := s.attendance.FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, notFound(err)
	}
	return attendanceFromDoc(&d), nil
}

func (s *Mongo) ListAttendanceByUser(ctx context.Context, userID string) ([]models.AttendanceRecord, error) {
	cur, err := s.attendance.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.AttendanceRecord, 0)
	for cur.Next(ctx) {
		var d attendanceDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, *attendanceFromDoc(&d))
	}
	return out, cur.Err()
}

func (s *Mongo) CountAttendanceByUser(ctx context.Context, userID string) (int64, error) {
	return s.attendance.CountDocuments(ctx, bson.M{"user_id": userID})
}

func attendanceFromDoc(d *attendanceDoc) *models.AttendanceRecord {
	rec := d.AttendanceRecord
	rec.CheckInTime = parseTimePtr(d.CheckInTime)
	rec.CheckOutTime = parseTimePtr(d.CheckOutTime)
	rec.CreatedAt = parseTime(d.CreatedAt)
	return &rec
}

// ─── Events ───

func (s *Mongo) InsertEvent(ctx context.Context, event *models.Event) error {
	doc := eventDoc{
		Event:     *event,
		Date:      formatTime(event.Date),
		CreatedAt: formatTime(event.CreatedAt),
	}
	_, err := s.events.InsertOne(ctx, doc)
	return err
}

func (s *Mongo) ListActiveEvents(ctx context.Context) ([]models.Event, error) {
	cur, err := s.events.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Event, 0)
	for cur.Next(ctx) {
		var d eventDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, *eventFromDoc(&d))
	}
	return out, cur.Err()
}

func (s *Mongo) FindEventByID(ctx context.Context, id string) (*models.Event, error) {
	var d eventDoc
	if err := s.events.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		return nil, notFound(err)
	}
	return eventFromDoc(&d), nil
}

func (s *Mongo) AppendEventRegistration(ctx context.Context, eventID, userID string) error {
	res, err := s.events.UpdateOne(ctx,
		bson.M{"id": eventID},
		bson.M{"$push": bson.M{"registered_users": userID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) CountEventsRegisteredBy(ctx context.Context, userID string) (int64, error) {
	return s.events.CountDocuments(ctx, bson.M{"registered_users": userID})
}

func eventFromDoc(d *eventDoc) *models.Event {
	e := d.Event
	e.Date = parseTime(d.Date)
	e.CreatedAt = parseTime(d.CreatedAt)
	return &e
}

// ─── Study groups ───

func (s *Mongo) InsertStudyGroup(ctx context.Context, group *models.StudyGroup) error {
	doc := studyGroupDoc{StudyGroup: *group, CreatedAt: formatTime(group.CreatedAt)}
	_, err := s.studyGroups.InsertOne(ctx, doc)
	return err
}

func (s *Mongo) ListActiveStudyGroups(ctx context.Context) ([]models.StudyGroup, error) {
	cur, err := s.studyGroups.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.StudyGroup, 0)
	for cur.Next(ctx) {
		var d studyGroupDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		g := d.StudyGroup
		g.CreatedAt = parseTime(d.CreatedAt)
		out = append(out, g)
	}
	return out, cur.Err()
}

func (s *Mongo) FindStudyGroupByID(ctx context.Context, id string) (*models.StudyGroup, error) {
	var d studyGroupDoc
	if err := s.studyGroups.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		return nil, notFound(err)
	}
	g := d.StudyGroup
	g.CreatedAt = parseTime(d.CreatedAt)
	return &g, nil
}

func (s *Mongo) AppendGroupMember(ctx context.Context, groupID, userID string) error {
	res, err := s.studyGroups.UpdateOne(ctx,
		bson.M{"id": groupID},
		bson.M{"$push": bson.M{"members": userID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) CountGroupsWithMember(ctx context.Context, userID string) (int64, error) {
	return s.studyGroups.CountDocuments(ctx, bson.M{"members": userID})
}

// ─── Chat ───

func (s *Mongo) InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	doc := chatDoc{ChatMessage: *msg, Timestamp: formatTime(msg.Timestamp)}
	_, err := s.chat.InsertOne(ctx, doc)
	return err
}

func (s *Mongo) ListChatHistory(ctx context.Context, userID string, limit int64) ([]models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(limit)
	cur, err := s.chat.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.ChatMessage, 0)
	for cur.Next(ctx) {
		var d chatDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		m := d.ChatMessage
		m.Timestamp = parseTime(d.Timestamp)
		out = append(out, m)
	}
	return out, cur.Err()
}
