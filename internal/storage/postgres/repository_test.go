//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;

		CREATE TABLE IF NOT EXISTS disasters (
			id uuid PRIMARY KEY,
			title text NOT NULL,
			description text NOT NULL,
			tags text[] NOT NULL DEFAULT '{}',
			owner_id text NOT NULL,
			location_name text NOT NULL,
			geo_point geography(Point, 4326) NOT NULL,
			audit_trail jsonb NOT NULL DEFAULT '[]',
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS reports (
			id uuid PRIMARY KEY,
			disaster_id uuid NOT NULL,
			content text NOT NULL,
			image_url text NOT NULL DEFAULT '',
			user_id text NOT NULL,
			verification_status text NOT NULL DEFAULT '',
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cache (
			key text PRIMARY KEY,
			value jsonb NOT NULL,
			expires_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS resources (
			id uuid PRIMARY KEY,
			name text NOT NULL,
			type text NOT NULL,
			location_name text NOT NULL DEFAULT '',
			geo_point geography(Point, 4326) NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE disasters, reports, cache, resources`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func newDisaster(owner string) *domain.Disaster {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.Disaster{
		ID:           uuid.New(),
		Title:        "NYC Flood",
		Description:  "Heavy flooding in Manhattan",
		Tags:         []string{"flood", "urgent"},
		OwnerID:      owner,
		LocationName: "Manhattan, NYC",
		Location:     domain.Coordinates{Lat: 40.7128, Lon: -74.006},
		AuditTrail: []domain.AuditEntry{
			{Action: domain.AuditActionCreate, UserID: owner, Timestamp: now},
		},
		CreatedAt: now,
	}
}

func TestDisasterRepo_CreateGetRoundtrip(t *testing.T) {
	truncateAll(t)

	repo := NewDisasterRepo(testPool, testLogger())

	d := newDisaster("netrunnerX")
	if err := repo.Create(context.Background(), d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != d.Title || got.OwnerID != d.OwnerID || got.LocationName != d.LocationName {
		t.Fatalf("fields mismatch: got=%+v", got)
	}
	const eps = 1e-6
	if diff := got.Location.Lat - d.Location.Lat; diff > eps || diff < -eps {
		t.Fatalf("lat mismatch got=%v want=%v", got.Location.Lat, d.Location.Lat)
	}
	if diff := got.Location.Lon - d.Location.Lon; diff > eps || diff < -eps {
		t.Fatalf("lon mismatch got=%v want=%v", got.Location.Lon, d.Location.Lon)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "flood" {
		t.Fatalf("tags mismatch: %v", got.Tags)
	}
	if len(got.AuditTrail) != 1 || got.AuditTrail[0].Action != domain.AuditActionCreate {
		t.Fatalf("audit trail mismatch: %+v", got.AuditTrail)
	}
}

func TestDisasterRepo_Get_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewDisasterRepo(testPool, testLogger())

	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDisasterRepo_List_TagFilterAndOrder(t *testing.T) {
	truncateAll(t)

	repo := NewDisasterRepo(testPool, testLogger())

	older := newDisaster("netrunnerX")
	older.Title = "Older"
	older.Tags = []string{"flood"}
	older.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := newDisaster("netrunnerX")
	newer.Title = "Newer"
	newer.Tags = []string{"flood", "urgent"}
	newer.CreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	other := newDisaster("netrunnerX")
	other.Title = "Quake"
	other.Tags = []string{"earthquake"}

	for _, d := range []*domain.Disaster{older, newer, other} {
		if err := repo.Create(context.Background(), d); err != nil {
			t.Fatalf("Create %s: %v", d.Title, err)
		}
	}

	all, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3, got %d", len(all))
	}

	floods, err := repo.List(context.Background(), "flood")
	if err != nil {
		t.Fatalf("List flood: %v", err)
	}
	if len(floods) != 2 {
		t.Fatalf("expected 2 flood disasters, got %d", len(floods))
	}
	if floods[0].Title != "Newer" || floods[1].Title != "Older" {
		t.Fatalf("expected DESC order by created_at, got %s then %s", floods[0].Title, floods[1].Title)
	}
}

func TestDisasterRepo_Update_AppendsTrail(t *testing.T) {
	truncateAll(t)

	repo := NewDisasterRepo(testPool, testLogger())

	d := newDisaster("netrunnerX")
	if err := repo.Create(context.Background(), d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	d.Title = "NYC Flood - Update"
	d.Tags = []string{"flood", "recovery"}
	d.AuditTrail = append(d.AuditTrail, domain.AuditEntry{
		Action:    domain.AuditActionUpdate,
		UserID:    "reliefAdmin",
		Timestamp: time.Now().UTC(),
	})
	if err := repo.Update(context.Background(), d); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "NYC Flood - Update" {
		t.Fatalf("title not updated: %q", got.Title)
	}
	if len(got.AuditTrail) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(got.AuditTrail))
	}
}

func TestDisasterRepo_Update_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewDisasterRepo(testPool, testLogger())

	d := newDisaster("netrunnerX")
	if err := repo.Update(context.Background(), d); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDisasterRepo_Delete(t *testing.T) {
	truncateAll(t)

	repo := NewDisasterRepo(testPool, testLogger())

	d := newDisaster("netrunnerX")
	if err := repo.Create(context.Background(), d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(context.Background(), d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(context.Background(), d.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(context.Background(), d.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestReportRepo_CreateAndVerify(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger())

	r := &domain.Report{
		ID:         uuid.New(),
		DisasterID: uuid.New(),
		Content:    "Shelter needed",
		ImageURL:   "https://example.com/flood.jpg",
		UserID:     "netrunnerX",
		CreatedAt:  time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.SetVerificationStatus(context.Background(), r.ID, domain.VerificationVerified); err != nil {
		t.Fatalf("SetVerificationStatus: %v", err)
	}

	var status string
	err := testPool.QueryRow(context.Background(),
		`SELECT verification_status FROM reports WHERE id = $1`, r.ID).Scan(&status)
	if err != nil {
		t.Fatalf("query status: %v", err)
	}
	if status != string(domain.VerificationVerified) {
		t.Fatalf("expected verified, got %q", status)
	}

	// Re-verification overwrites.
	if err := repo.SetVerificationStatus(context.Background(), r.ID, domain.VerificationFake); err != nil {
		t.Fatalf("SetVerificationStatus overwrite: %v", err)
	}
}

func TestReportRepo_SetVerificationStatus_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger())

	err := repo.SetVerificationStatus(context.Background(), uuid.New(), domain.VerificationVerified)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCacheRepo_UpsertGetDelete(t *testing.T) {
	truncateAll(t)

	repo := NewCacheRepo(testPool, testLogger())

	expires := time.Now().UTC().Add(time.Hour).Truncate(time.Millisecond)
	if err := repo.Upsert(context.Background(), "k", []byte(`{"v":1}`), expires); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	entry, err := repo.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry.Key != "k" {
		t.Fatalf("key mismatch: %q", entry.Key)
	}
	if !entry.ExpiresAt.Equal(expires) {
		t.Fatalf("expires_at mismatch: got=%v want=%v", entry.ExpiresAt, expires)
	}

	// Upsert replaces the value and deadline.
	later := expires.Add(time.Hour)
	if err := repo.Upsert(context.Background(), "k", []byte(`{"v":2}`), later); err != nil {
		t.Fatalf("Upsert overwrite: %v", err)
	}
	entry, err = repo.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if !entry.ExpiresAt.Equal(later) {
		t.Fatalf("expires_at not replaced: %v", entry.ExpiresAt)
	}

	if err := repo.Delete(context.Background(), "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(context.Background(), "k"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCacheRepo_Get_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewCacheRepo(testPool, testLogger())

	if _, err := repo.Get(context.Background(), "absent"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func insertResource(t *testing.T, name, typ string, lat, lon float64) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := testPool.Exec(context.Background(), `
		INSERT INTO resources (id, name, type, location_name, geo_point, created_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), now())
	`, id, name, typ, name, lon, lat)
	if err != nil {
		t.Fatalf("insert resource %s: %v", name, err)
	}
	return id
}

func TestResourceRepo_FindNearby(t *testing.T) {
	truncateAll(t)

	repo := NewResourceRepo(testPool, testLogger())

	// Around lower Manhattan. The Newark point is ~15km out and must
	// fall outside a 10km radius.
	near := insertResource(t, "Red Cross Shelter", "shelter", 40.72, -74.0)
	nearer := insertResource(t, "Water Station", "water", 40.713, -74.006)
	insertResource(t, "Newark Depot", "supplies", 40.7357, -74.1724)

	got, err := repo.FindNearby(context.Background(), 40.7128, -74.006, 10000)
	if err != nil {
		t.Fatalf("FindNearby: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 resources within 10km, got %d", len(got))
	}
	if got[0].ID != nearer || got[1].ID != near {
		t.Fatalf("expected closest-first order, got %s then %s", got[0].Name, got[1].Name)
	}
	if got[0].DistanceMeters <= 0 || got[0].DistanceMeters > got[1].DistanceMeters {
		t.Fatalf("distance ordering broken: %v then %v", got[0].DistanceMeters, got[1].DistanceMeters)
	}
}

func TestResourceRepo_FindNearby_InvalidInput(t *testing.T) {
	truncateAll(t)

	repo := NewResourceRepo(testPool, testLogger())

	if _, err := repo.FindNearby(context.Background(), 91, 0, 1000); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for lat, got %v", err)
	}
	if _, err := repo.FindNearby(context.Background(), 0, 0, 0); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for radius, got %v", err)
	}
}
