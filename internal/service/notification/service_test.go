package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/finwellhq/notify-service/internal/mocks/service/notification"
	"github.com/finwellhq/notify-service/internal/model"
	"github.com/finwellhq/notify-service/internal/ws"
)

// fakeChannel records everything sent over it.
type fakeChannel struct {
	open    bool
	sendErr error
	sent    [][]byte
}

func (f *fakeChannel) Send(payload []byte) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, payload)
	return nil
}

func (f *fakeChannel) Ping() error  { return nil }
func (f *fakeChannel) Close() error { return nil }
func (f *fakeChannel) IsOpen() bool { return f.open }

func TestService_NotifyUser_FansOutAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknotificationRepository(ctrl)
	registryMock := mocks.NewMockconnectionRegistry(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := NewService(repoMock, registryMock, cacheMock)

	ch1 := &fakeChannel{open: true}
	ch2 := &fakeChannel{open: true}
	strategy := retry.Strategy{}
	notificationID := uuid.New()

	registryMock.EXPECT().ChannelsFor("u-1").Return([]ws.Channel{ch1, ch2})
	repoMock.EXPECT().
		CreateNotification(gomock.Any(), gomock.AssignableToTypeOf(model.Notification{})).
		Return(notificationID, nil)
	repoMock.EXPECT().GetUnreadCount(gomock.Any(), "u-1").Return(3, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notifications:unread:u-1", "3").Return(nil)

	id := svc.NotifyUser(context.Background(), strategy, "u-1", model.Notification{
		Type:    model.NotificationMilestone,
		Title:   "Milestone completed",
		Message: "Budget streak",
	})

	assert.Equal(t, notificationID, id)
	assert.Len(t, ch1.sent, 1)
	assert.Len(t, ch2.sent, 1)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(ch1.sent[0], &payload))
	assert.Equal(t, string(model.NotificationMilestone), payload["type"])
	assert.Equal(t, "Milestone completed", payload["title"])
	assert.Equal(t, "Budget streak", payload["message"])
	assert.NotEmpty(t, payload["timestamp"])
}

func TestService_NotifyUser_NoChannelsStillPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknotificationRepository(ctrl)
	registryMock := mocks.NewMockconnectionRegistry(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := NewService(repoMock, registryMock, cacheMock)

	strategy := retry.Strategy{}
	notificationID := uuid.New()

	registryMock.EXPECT().ChannelsFor("offline-user").Return(nil)
	repoMock.EXPECT().
		CreateNotification(gomock.Any(), gomock.AssignableToTypeOf(model.Notification{})).
		Return(notificationID, nil)
	repoMock.EXPECT().GetUnreadCount(gomock.Any(), "offline-user").Return(1, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notifications:unread:offline-user", "1").Return(nil)

	id := svc.NotifyUser(context.Background(), strategy, "offline-user", model.Notification{
		Type:    model.NotificationRecommendation,
		Title:   "New recommendation",
		Message: "Check it out",
	})

	assert.Equal(t, notificationID, id)
}

func TestService_NotifyUser_FailingChannelDoesNotBlockOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknotificationRepository(ctrl)
	registryMock := mocks.NewMockconnectionRegistry(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := NewService(repoMock, registryMock, cacheMock)

	broken := &fakeChannel{open: true, sendErr: errors.New("write timeout")}
	healthy := &fakeChannel{open: true}
	closed := &fakeChannel{open: false}
	strategy := retry.Strategy{}

	registryMock.EXPECT().ChannelsFor("u-2").Return([]ws.Channel{broken, closed, healthy})
	repoMock.EXPECT().
		CreateNotification(gomock.Any(), gomock.AssignableToTypeOf(model.Notification{})).
		Return(uuid.New(), nil)
	repoMock.EXPECT().GetUnreadCount(gomock.Any(), "u-2").Return(0, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notifications:unread:u-2", "0").Return(nil)

	id := svc.NotifyUser(context.Background(), strategy, "u-2", model.Notification{
		Type:    model.NotificationTierUpgrade,
		Title:   "Reward tier upgraded",
		Message: "Gold",
	})

	assert.NotEqual(t, uuid.Nil, id)
	assert.Len(t, healthy.sent, 1)
	assert.Empty(t, closed.sent)
}

func TestService_NotifyUser_PersistenceFailureReturnsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknotificationRepository(ctrl)
	registryMock := mocks.NewMockconnectionRegistry(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := NewService(repoMock, registryMock, cacheMock)

	ch := &fakeChannel{open: true}

	registryMock.EXPECT().ChannelsFor("u-3").Return([]ws.Channel{ch})
	repoMock.EXPECT().
		CreateNotification(gomock.Any(), gomock.AssignableToTypeOf(model.Notification{})).
		Return(uuid.Nil, errors.New("db down"))

	id := svc.NotifyUser(context.Background(), retry.Strategy{}, "u-3", model.Notification{
		Type:    model.NotificationComplianceAlert,
		Title:   "Compliance alert",
		Message: "Missing acknowledgement",
	})

	assert.Equal(t, uuid.Nil, id)
	// push still went out before the write failed
	assert.Len(t, ch.sent, 1)
}

func TestService_BroadcastToUsers_EachUserGetsItsOwnCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknotificationRepository(ctrl)
	registryMock := mocks.NewMockconnectionRegistry(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := NewService(repoMock, registryMock, cacheMock)
	strategy := retry.Strategy{}

	for _, userID := range []string{"a", "b", "c"} {
		registryMock.EXPECT().ChannelsFor(userID).Return(nil)
		repoMock.EXPECT().
			CreateNotification(gomock.Any(), gomock.AssignableToTypeOf(model.Notification{})).
			Return(uuid.New(), nil)
		repoMock.EXPECT().GetUnreadCount(gomock.Any(), userID).Return(1, nil)
		cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notifications:unread:"+userID, "1").Return(nil)
	}

	svc.BroadcastToUsers(context.Background(), strategy, []string{"a", "b", "c"}, model.Notification{
		Type:    model.NotificationMilestone,
		Title:   "Department milestone",
		Message: "All departments hit their goal",
	})
}

func TestService_BroadcastToAll_DoesNotPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknotificationRepository(ctrl)
	registryMock := mocks.NewMockconnectionRegistry(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := NewService(repoMock, registryMock, cacheMock)

	ch1 := &fakeChannel{open: true}
	ch2 := &fakeChannel{open: true}

	registryMock.EXPECT().AllChannels().Return([]ws.Channel{ch1, ch2})
	// no CreateNotification expectation: broadcasts are transient

	svc.BroadcastToAll(model.Notification{
		Type:    model.NotificationComplianceAlert,
		Title:   "Maintenance window",
		Message: "Service restarts at midnight",
	})

	assert.Len(t, ch1.sent, 1)
	assert.Len(t, ch2.sent, 1)
}

func TestService_GetUnreadCount_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(nil, nil, cacheMock)

	strategy := retry.Strategy{}
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "notifications:unread:u-1").Return("7", nil)

	count, err := svc.GetUnreadCount(context.Background(), strategy, "u-1")
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestService_GetUnreadCount_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknotificationRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(repoMock, nil, cacheMock)

	strategy := retry.Strategy{}
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "notifications:unread:u-1").Return("", redis.Nil)
	repoMock.EXPECT().GetUnreadCount(gomock.Any(), "u-1").Return(4, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notifications:unread:u-1", "4").Return(nil)

	count, err := svc.GetUnreadCount(context.Background(), strategy, "u-1")
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestService_MarkAsRead_RefreshesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknotificationRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(repoMock, nil, cacheMock)

	id := uuid.New()
	strategy := retry.Strategy{}

	repoMock.EXPECT().GetNotificationByID(gomock.Any(), id).Return(model.Notification{ID: id, UserID: "u-1"}, nil)
	repoMock.EXPECT().MarkAsRead(gomock.Any(), id).Return(nil)
	repoMock.EXPECT().GetUnreadCount(gomock.Any(), "u-1").Return(2, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notifications:unread:u-1", "2").Return(nil)

	err := svc.MarkAsRead(context.Background(), strategy, id)
	assert.NoError(t, err)
}

func TestService_MarkAsRead_Twice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknotificationRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(repoMock, nil, cacheMock)

	id := uuid.New()
	strategy := retry.Strategy{}
	readAt := time.Now().UTC()

	// first call: unread notification gets its timestamp
	repoMock.EXPECT().GetNotificationByID(gomock.Any(), id).Return(model.Notification{ID: id, UserID: "u-1"}, nil)
	repoMock.EXPECT().MarkAsRead(gomock.Any(), id).Return(nil)
	repoMock.EXPECT().GetUnreadCount(gomock.Any(), "u-1").Return(0, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notifications:unread:u-1", "0").Return(nil)

	// second call: already read, still succeeds and keeps the timestamp
	repoMock.EXPECT().GetNotificationByID(gomock.Any(), id).Return(model.Notification{ID: id, UserID: "u-1", ReadAt: &readAt}, nil)
	repoMock.EXPECT().MarkAsRead(gomock.Any(), id).Return(nil)
	repoMock.EXPECT().GetUnreadCount(gomock.Any(), "u-1").Return(0, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notifications:unread:u-1", "0").Return(nil)

	assert.NoError(t, svc.MarkAsRead(context.Background(), strategy, id))
	assert.NoError(t, svc.MarkAsRead(context.Background(), strategy, id))
}

func TestService_MarkAsRead_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknotificationRepository(ctrl)
	svc := NewService(repoMock, nil, nil)

	id := uuid.New()
	repoMock.EXPECT().GetNotificationByID(gomock.Any(), id).Return(model.Notification{}, errors.New("notification not found"))

	err := svc.MarkAsRead(context.Background(), retry.Strategy{}, id)
	assert.Error(t, err)
}

func TestService_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocknotificationRepository(ctrl)
	svc := NewService(repoMock, nil, nil)

	now := time.Now().UTC()
	earlier := now.Add(-time.Hour)
	read := earlier

	repoMock.EXPECT().GetNotificationsByUser(gomock.Any(), "u-1", 100).Return([]model.Notification{
		{Type: model.NotificationMilestone, CreatedAt: now},
		{Type: model.NotificationMilestone, CreatedAt: earlier, ReadAt: &read},
		{Type: model.NotificationTierUpgrade, CreatedAt: earlier},
	}, nil)

	stats, err := svc.GetStats(context.Background(), "u-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Unread)
	assert.Equal(t, 2, stats.ByType[model.NotificationMilestone])
	assert.Equal(t, 1, stats.ByType[model.NotificationTierUpgrade])
	assert.Equal(t, now, *stats.MostRecent)
}

func TestService_GetPreferences_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(nil, nil, cacheMock)

	strategy := retry.Strategy{}
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "notifications:prefs:u-1").Return("", redis.Nil)

	prefs, err := svc.GetPreferences(context.Background(), strategy, "u-1")
	assert.NoError(t, err)
	assert.Equal(t, model.DefaultPreferences(), prefs)
}

func TestService_PreferencesRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(nil, nil, cacheMock)

	strategy := retry.Strategy{}
	prefs := model.Preferences{PushEnabled: false, EmailEnabled: true, DigestsEnabled: true}
	raw, _ := json.Marshal(prefs)

	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notifications:prefs:u-1", string(raw)).Return(nil)
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "notifications:prefs:u-1").Return(string(raw), nil)

	assert.NoError(t, svc.UpdatePreferences(context.Background(), strategy, "u-1", prefs))

	got, err := svc.GetPreferences(context.Background(), strategy, "u-1")
	assert.NoError(t, err)
	assert.Equal(t, prefs, got)
}
