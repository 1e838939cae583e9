package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/internal/service"
	mock_service "github.com/Balerion769/Disaster-Response-Platform/internal/service/mocks"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

var (
	contributor = domain.User{ID: "netrunnerX", Role: domain.RoleContributor}
	admin       = domain.User{ID: "reliefAdmin", Role: domain.RoleAdmin}
)

func newDisasterFixture(ownerID string) *domain.Disaster {
	return &domain.Disaster{
		ID:           uuid.New(),
		Title:        "NYC Flood",
		Description:  "Heavy flooding in Manhattan",
		Tags:         []string{"flood"},
		OwnerID:      ownerID,
		LocationName: "Manhattan, NYC",
		Location:     domain.Coordinates{Lat: 40.7128, Lon: -74.006},
		AuditTrail: []domain.AuditEntry{
			{Action: domain.AuditActionCreate, UserID: ownerID},
		},
	}
}

func TestDisasterService_Create_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockDisasterRepository(ctrl)
	extractor := mock_service.NewMockLocationExtractor(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	publisher := mock_service.NewMockPublisher(ctrl)

	geocoder.EXPECT().
		Geocode(gomock.Any(), "Manhattan, NYC").
		Return(domain.Coordinates{Lat: 40.7128, Lon: -74.006}, true).
		Times(1)

	var got *domain.Disaster
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *domain.Disaster) error {
			got = d
			return nil
		}).
		Times(1)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Times(1)

	svc := service.NewDisasterService(repo, service.NewResolver(extractor, geocoder, testLogger()), publisher, testLogger())

	d, err := svc.Create(context.Background(), contributor, domain.CreateDisasterRequest{
		Title:        "NYC Flood",
		Description:  "Heavy flooding in Manhattan",
		Tags:         "flood, urgent",
		LocationName: "Manhattan, NYC",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if got == nil {
		t.Fatalf("repo.Create not called with a disaster")
	}
	if got.OwnerID != contributor.ID {
		t.Fatalf("expected owner %q, got %q", contributor.ID, got.OwnerID)
	}
	if got.LocationName != "Manhattan, NYC" {
		t.Fatalf("expected resolved location, got %q", got.LocationName)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "flood" || got.Tags[1] != "urgent" {
		t.Fatalf("tags mismatch: %v", got.Tags)
	}
	if len(got.AuditTrail) != 1 {
		t.Fatalf("expected exactly one audit entry, got %d", len(got.AuditTrail))
	}
	if got.AuditTrail[0].Action != domain.AuditActionCreate || got.AuditTrail[0].UserID != contributor.ID {
		t.Fatalf("audit entry mismatch: %+v", got.AuditTrail[0])
	}
	if got.CreatedAt.IsZero() || got.AuditTrail[0].Timestamp.IsZero() {
		t.Fatalf("timestamps not set")
	}
}

func TestDisasterService_Create_NothingWrittenOnRejection(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockDisasterRepository(ctrl)
	extractor := mock_service.NewMockLocationExtractor(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	publisher := mock_service.NewMockPublisher(ctrl)

	extractor.EXPECT().
		Extract(gomock.Any(), gomock.Any()).
		Return("").
		Times(1)
	// No repo.Create, no Publish.

	svc := service.NewDisasterService(repo, service.NewResolver(extractor, geocoder, testLogger()), publisher, testLogger())

	_, err := svc.Create(context.Background(), contributor, domain.CreateDisasterRequest{
		Title:       "NYC Flood",
		Description: "no place mentioned",
	})
	if !errors.Is(err, e.ErrLocationUndetermined) {
		t.Fatalf("expected ErrLocationUndetermined, got %v", err)
	}
}

func TestDisasterService_Create_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockDisasterRepository(ctrl)
	extractor := mock_service.NewMockLocationExtractor(ctrl)
	geocoder := mock_service.NewMockGeocoder(ctrl)
	publisher := mock_service.NewMockPublisher(ctrl)

	geocoder.EXPECT().
		Geocode(gomock.Any(), gomock.Any()).
		Return(domain.Coordinates{Lat: 1, Lon: 2}, true).
		Times(1)
	wantErr := errors.New("db down")
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(wantErr).
		Times(1)

	svc := service.NewDisasterService(repo, service.NewResolver(extractor, geocoder, testLogger()), publisher, testLogger())

	_, err := svc.Create(context.Background(), contributor, domain.CreateDisasterRequest{
		Title:        "NYC Flood",
		Description:  "Heavy flooding",
		LocationName: "Manhattan",
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestDisasterService_Update_OwnerAppendsOneAuditEntry(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockDisasterRepository(ctrl)
	publisher := mock_service.NewMockPublisher(ctrl)

	existing := newDisasterFixture(contributor.ID)
	repo.EXPECT().
		Get(gomock.Any(), existing.ID).
		Return(existing, nil).
		Times(1)

	var got *domain.Disaster
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *domain.Disaster) error {
			got = d
			return nil
		}).
		Times(1)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Times(1)

	svc := service.NewDisasterService(repo, nil, publisher, testLogger())

	d, err := svc.Update(context.Background(), contributor, existing.ID, domain.UpdateDisasterRequest{
		Title:       "NYC Flood - Update",
		Description: "Water levels receding",
		Tags:        "flood, recovery",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.Title != "NYC Flood - Update" {
		t.Fatalf("title not applied: %q", d.Title)
	}
	if got == nil {
		t.Fatalf("repo.Update not called")
	}
	if len(got.AuditTrail) != 2 {
		t.Fatalf("expected 2 audit entries after update, got %d", len(got.AuditTrail))
	}
	last := got.AuditTrail[len(got.AuditTrail)-1]
	if last.Action != domain.AuditActionUpdate || last.UserID != contributor.ID {
		t.Fatalf("appended audit entry mismatch: %+v", last)
	}
	// The original create entry must survive untouched.
	if got.AuditTrail[0].Action != domain.AuditActionCreate {
		t.Fatalf("prior audit entry rewritten: %+v", got.AuditTrail[0])
	}
}

func TestDisasterService_Update_ForbiddenForNonOwner(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockDisasterRepository(ctrl)
	publisher := mock_service.NewMockPublisher(ctrl)

	existing := newDisasterFixture("someoneElse")
	repo.EXPECT().
		Get(gomock.Any(), existing.ID).
		Return(existing, nil).
		Times(1)

	svc := service.NewDisasterService(repo, nil, publisher, testLogger())

	_, err := svc.Update(context.Background(), contributor, existing.ID, domain.UpdateDisasterRequest{
		Title:       "hijack",
		Description: "hijack",
	})
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDisasterService_Update_AdminBypassesOwnership(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockDisasterRepository(ctrl)
	publisher := mock_service.NewMockPublisher(ctrl)

	existing := newDisasterFixture("someoneElse")
	repo.EXPECT().
		Get(gomock.Any(), existing.ID).
		Return(existing, nil).
		Times(1)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Times(1)

	svc := service.NewDisasterService(repo, nil, publisher, testLogger())

	_, err := svc.Update(context.Background(), admin, existing.ID, domain.UpdateDisasterRequest{
		Title:       "moderated title",
		Description: "moderated description",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestDisasterService_Update_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockDisasterRepository(ctrl)
	publisher := mock_service.NewMockPublisher(ctrl)

	id := uuid.New()
	repo.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, e.ErrNotFound).
		Times(1)

	svc := service.NewDisasterService(repo, nil, publisher, testLogger())

	_, err := svc.Update(context.Background(), contributor, id, domain.UpdateDisasterRequest{
		Title:       "x",
		Description: "y",
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDisasterService_Delete_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockDisasterRepository(ctrl)
	publisher := mock_service.NewMockPublisher(ctrl)

	id := uuid.New()
	repo.EXPECT().
		Delete(gomock.Any(), id).
		Return(nil).
		Times(1)

	var published domain.Event
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.Event) {
			published = ev
		}).
		Times(1)

	svc := service.NewDisasterService(repo, nil, publisher, testLogger())

	if err := svc.Delete(context.Background(), admin, id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if published.Name != domain.EventDisasterUpdated {
		t.Fatalf("expected %q event, got %q", domain.EventDisasterUpdated, published.Name)
	}
}

func TestDisasterService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockDisasterRepository(ctrl)
	publisher := mock_service.NewMockPublisher(ctrl)

	id := uuid.New()
	repo.EXPECT().
		Delete(gomock.Any(), id).
		Return(e.ErrNotFound).
		Times(1)

	svc := service.NewDisasterService(repo, nil, publisher, testLogger())

	if err := svc.Delete(context.Background(), admin, id); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
