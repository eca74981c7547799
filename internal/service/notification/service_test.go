package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/primatek-mfg/erp-backend-go/internal/domain/employee"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeNotificationRepo struct {
	notifications []notification.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	// Newest first, like the store's ordering.
	f.notifications = append([]notification.Notification{*n}, f.notifications...)
	return nil
}

func (f *fakeNotificationRepo) GetByID(_ context.Context, id string) (*notification.Notification, error) {
	for _, n := range f.notifications {
		if n.ID == id {
			found := n
			return &found, nil
		}
	}
	return nil, notification.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) ListAll(_ context.Context) ([]notification.Notification, error) {
	return f.notifications, nil
}

type fakeReadReceiptRepo struct {
	receipts    map[string]notification.ReadReceipt
	createCalls int
}

func receiptKey(employeeID, notificationID string) string {
	return employeeID + "/" + notificationID
}

func (f *fakeReadReceiptRepo) Get(_ context.Context, employeeID, notificationID string) (notification.ReadReceipt, error) {
	r, ok := f.receipts[receiptKey(employeeID, notificationID)]
	if !ok {
		return notification.ReadReceipt{}, notification.ErrReadReceiptNotFound
	}
	return r, nil
}

func (f *fakeReadReceiptRepo) Create(_ context.Context, receipt notification.ReadReceipt) (notification.ReadReceipt, error) {
	f.createCalls++
	key := receiptKey(receipt.EmployeeID, receipt.NotificationID)
	if existing, ok := f.receipts[key]; ok {
		return existing, nil
	}
	if f.receipts == nil {
		f.receipts = make(map[string]notification.ReadReceipt)
	}
	f.receipts[key] = receipt
	return receipt, nil
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newFixture(notifications ...notification.Notification) (*service, *fakeNotificationRepo, *fakeReadReceiptRepo) {
	repo := &fakeNotificationRepo{notifications: notifications}
	readRepo := &fakeReadReceiptRepo{}
	employeeRepo := &fakeEmployeeRepo{
		employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", Department: "ASSEMBLY", BranchID: "branch-1", Status: employee.StatusActive},
		},
	}
	svc := &service{
		repo:         repo,
		readRepo:     readRepo,
		employeeRepo: employeeRepo,
		now:          func() time.Time { return fixedNow },
	}
	return svc, repo, readRepo
}

func global(id string) notification.Notification {
	return notification.Notification{ID: id, Title: id, Message: "m", Severity: notification.SeverityInfo, CreatedAt: fixedNow}
}

func TestListFiltersAudienceAndExpiry(t *testing.T) {
	past := fixedNow.Add(-time.Hour)
	svc, _, _ := newFixture(
		global("n-global"),
		notification.Notification{ID: "n-dept", TargetDepartments: []string{"ASSEMBLY"}},
		notification.Notification{ID: "n-other-dept", TargetDepartments: []string{"WELDING"}},
		notification.Notification{ID: "n-expired", ExpiresAt: &past},
	)

	list, err := svc.List(context.Background(), "emp-1", 1, 10)
	require.NoError(t, err)

	require.Len(t, list.Notifications, 2)
	assert.Equal(t, "n-global", list.Notifications[0].ID)
	assert.Equal(t, "n-dept", list.Notifications[1].ID)
	assert.Equal(t, 2, list.Total)
}

func TestListTotalMatchesVisibleSetAcrossPages(t *testing.T) {
	var stored []notification.Notification
	for i := 0; i < 5; i++ {
		stored = append(stored, global(fmt.Sprintf("n-%d", i)))
	}
	// Interleave notifications the employee cannot see.
	stored = append(stored,
		notification.Notification{ID: "hidden-1", TargetDepartments: []string{"WELDING"}},
		notification.Notification{ID: "hidden-2", TargetEmployeeIDs: []string{"emp-9"}},
	)
	svc, _, _ := newFixture(stored...)

	page1, err := svc.List(context.Background(), "emp-1", 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1.Notifications, 2)
	assert.Equal(t, 5, page1.Total)

	page3, err := svc.List(context.Background(), "emp-1", 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3.Notifications, 1)
	assert.Equal(t, 5, page3.Total)

	beyond, err := svc.List(context.Background(), "emp-1", 9, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Notifications)
	assert.Equal(t, 5, beyond.Total)
}

func TestListUnknownEmployee(t *testing.T) {
	svc, _, _ := newFixture(global("n-1"))

	_, err := svc.List(context.Background(), "ghost", 1, 10)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateDefaultsAndExpiry(t *testing.T) {
	svc, repo, _ := newFixture()

	expiresAt := "2024-09-01T00:00:00Z"
	created, err := svc.Create(context.Background(), "admin-1", notification.CreateNotificationRequest{
		Title:     "Maintenance window",
		Message:   "Line 2 down on Saturday",
		ExpiresAt: &expiresAt,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, notification.SeverityInfo, created.Severity)
	assert.Equal(t, "admin-1", created.CreatedBy)
	require.NotNil(t, created.ExpiresAt)
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), created.ExpiresAt.UTC())
	assert.Len(t, repo.notifications, 1)
}

func TestMarkAsReadIsIdempotent(t *testing.T) {
	svc, _, readRepo := newFixture(global("n-1"))

	first, err := svc.MarkAsRead(context.Background(), "emp-1", "n-1")
	require.NoError(t, err)
	assert.Equal(t, fixedNow, first.ReadAt)

	// Shift the clock; the second call must return the original receipt.
	svc.now = func() time.Time { return fixedNow.Add(time.Hour) }

	second, err := svc.MarkAsRead(context.Background(), "emp-1", "n-1")
	require.NoError(t, err)
	assert.Equal(t, first.ReadAt, second.ReadAt)
	assert.Equal(t, 1, readRepo.createCalls)
}

func TestMarkAsReadUnknownNotification(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.MarkAsRead(context.Background(), "emp-1", "missing")
	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
}
