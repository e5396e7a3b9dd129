package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/club-polls/internal/db"
	"github.com/sbilibin2017/club-polls/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := db.PostgresDSN(host, port.Int(), "postgres", "password", "testdb")

	var conn *sqlx.DB
	for i := 0; i < 10; i++ {
		conn, err = db.Connect(ctx, db.DriverPostgres, dsn, 4, 2)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(ctx, conn))
	return conn
}

func TestPostgres_Repositories(t *testing.T) {
	conn := setupPostgresContainer(t)
	ctx := context.Background()

	conn.MustExec(`INSERT INTO members (firstname, lastname, phone, joined_date) VALUES
		('Emil', 'Refsnes', 5551234, '2022-01-05'),
		('Tobias', 'Refsnes', NULL, NULL)`)
	conn.MustExec(`INSERT INTO polls_question (question_text, pub_date) VALUES
		('A', '2024-01-03T00:00:00Z'),
		('B', '2024-01-05T00:00:00Z'),
		('C', '2024-01-01T00:00:00Z')`)

	members := NewMemberReadRepository(conn)

	all, err := members.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	emils, err := members.ListByFirstname(ctx, "Emil")
	require.NoError(t, err)
	require.Len(t, emils, 1)

	member, err := members.GetByID(ctx, emils[0].ID)
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, int64(5551234), member.Phone.Int64)

	missing, err := members.GetByID(ctx, 12345)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	questions, err := NewQuestionReadRepository(conn).Latest(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "B, A, C", strings.Join(texts(questions), ", "))
}

func TestQuestionCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewQuestionCacheRepository(rdb, 2*time.Second)

	t.Run("set and get", func(t *testing.T) {
		err := repo.SetLatestTexts(ctx, 5, []string{"B", "A", "C"})
		assert.NoError(t, err)

		got, err := repo.GetLatestTexts(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, []string{"B", "A", "C"}, got)
	})

	t.Run("missing key is a cache miss", func(t *testing.T) {
		_, err := repo.GetLatestTexts(ctx, 7)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("entries expire", func(t *testing.T) {
		require.NoError(t, repo.SetLatestTexts(ctx, 3, []string{"X"}))
		time.Sleep(3 * time.Second)

		_, err := repo.GetLatestTexts(ctx, 3)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}

func texts(questions []models.Question) []string {
	out := make([]string, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.QuestionText)
	}
	return out
}
