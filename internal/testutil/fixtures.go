package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model"
)

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		Email:       fmt.Sprintf("test_%d@example.com", time.Now().UnixNano()),
		LastLoginAt: time.Now(),
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithEmail 设置邮箱
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = email
	}
}

// WithDisplayName 设置显示名
func WithDisplayName(name string) func(*model.User) {
	return func(u *model.User) {
		u.DisplayName = &name
	}
}

// TestTrip 创建测试行程，连同创建者的 owner 成员行（与生产路径同构）
func TestTrip(t *testing.T, db *gorm.DB, ownerID int64, opts ...func(*model.Trip)) *model.Trip {
	t.Helper()

	trip := &model.Trip{
		OwnerID:  ownerID,
		Title:    fmt.Sprintf("Test Trip %d", time.Now().UnixNano()%10000),
		Timezone: "America/New_York",
	}

	for _, opt := range opts {
		opt(trip)
	}

	if err := db.Create(trip).Error; err != nil {
		t.Fatalf("Failed to create test trip: %v", err)
	}

	member := &model.TripMember{
		TripID: trip.ID,
		UserID: ownerID,
		Role:   model.RoleOwner,
		Status: model.MemberStatusActive,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("Failed to create owner member: %v", err)
	}

	return trip
}

// WithTripTitle 设置行程标题
func WithTripTitle(title string) func(*model.Trip) {
	return func(tr *model.Trip) {
		tr.Title = title
	}
}

// WithCoverMedia 设置封面媒体
func WithCoverMedia(mediaID int64) func(*model.Trip) {
	return func(tr *model.Trip) {
		tr.CoverMediaID = &mediaID
	}
}

// TestMember 添加行程成员
func TestMember(t *testing.T, db *gorm.DB, tripID, userID int64, role, status string) *model.TripMember {
	t.Helper()

	member := &model.TripMember{
		TripID: tripID,
		UserID: userID,
		Role:   role,
		Status: status,
	}

	if err := db.Create(member).Error; err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}

	return member
}

// TestMoment 创建测试时刻
func TestMoment(t *testing.T, db *gorm.DB, tripID, createdBy int64, opts ...func(*model.Moment)) *model.Moment {
	t.Helper()

	moment := &model.Moment{
		TripID:    tripID,
		CreatedBy: createdBy,
	}

	for _, opt := range opts {
		opt(moment)
	}

	if err := db.Create(moment).Error; err != nil {
		t.Fatalf("Failed to create test moment: %v", err)
	}

	return moment
}

// WithMomentTime 设置时刻时间
func WithMomentTime(ts time.Time) func(*model.Moment) {
	return func(m *model.Moment) {
		m.MomentTime = &ts
	}
}

// WithStory 设置时刻正文
func WithStory(story string) func(*model.Moment) {
	return func(m *model.Moment) {
		m.Story = &story
	}
}

// TestMedia 创建测试媒体
func TestMedia(t *testing.T, db *gorm.DB, tripID, momentID int64, opts ...func(*model.Media)) *model.Media {
	t.Helper()

	media := &model.Media{
		TripID:     tripID,
		MomentID:   momentID,
		Type:       "photo",
		StorageKey: fmt.Sprintf("trips/%d/media/test_%d.jpg", tripID, time.Now().UnixNano()),
		CDNUrl:     fmt.Sprintf("https://cdn.example.com/trips/%d/media/test.jpg", tripID),
	}

	for _, opt := range opts {
		opt(media)
	}

	if err := db.Create(media).Error; err != nil {
		t.Fatalf("Failed to create test media: %v", err)
	}

	return media
}

// WithSortOrder 设置排序值
func WithSortOrder(order int) func(*model.Media) {
	return func(m *model.Media) {
		m.SortOrder = order
	}
}

// TestAttachment 创建测试附件（momentID 传 nil 表示行程级附件）
func TestAttachment(t *testing.T, db *gorm.DB, tripID int64, momentID *int64, uploadedBy int64, opts ...func(*model.Attachment)) *model.Attachment {
	t.Helper()

	key := fmt.Sprintf("trips/%d/attachments/test_%d.pdf", tripID, time.Now().UnixNano())
	attachment := &model.Attachment{
		TripID:     tripID,
		MomentID:   momentID,
		UploadedBy: uploadedBy,
		Type:       "file",
		StorageKey: &key,
	}

	for _, opt := range opts {
		opt(attachment)
	}

	if err := db.Create(attachment).Error; err != nil {
		t.Fatalf("Failed to create test attachment: %v", err)
	}

	return attachment
}
