package ratelimit

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type LoginLimiterIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
}

func (s *LoginLimiterIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		s.T().Fatalf("Failed to start redis container: %s", err)
	}
	s.container = container

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		s.T().Fatalf("Failed to get redis endpoint: %s", err)
	}
	s.client = redis.NewClient(&redis.Options{Addr: endpoint})
}

func (s *LoginLimiterIntegrationTestSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *LoginLimiterIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func (s *LoginLimiterIntegrationTestSuite) TestBlocksAfterMax() {
	ctx := context.Background()
	l := NewRedisLoginLimiter(s.client, 2, time.Minute)

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "owner@example.com")
		s.Require().NoError(err)
		s.True(ok)
	}
	ok, err := l.Allow(ctx, "owner@example.com")
	s.Require().NoError(err)
	s.False(ok)

	ok, err = l.Allow(ctx, "other@example.com")
	s.Require().NoError(err)
	s.True(ok, "keys are counted separately")
}

func (s *LoginLimiterIntegrationTestSuite) TestWindowExpires() {
	ctx := context.Background()
	l := NewRedisLoginLimiter(s.client, 1, time.Second)

	ok, err := l.Allow(ctx, "k")
	s.Require().NoError(err)
	s.True(ok)

	ttl, err := s.client.TTL(ctx, keyPrefix+"k").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))

	s.Eventually(func() bool {
		ok, err := l.Allow(ctx, "k")
		return err == nil && ok
	}, 5*time.Second, 300*time.Millisecond)
}

func (s *LoginLimiterIntegrationTestSuite) TestResetClearsCount() {
	ctx := context.Background()
	l := NewRedisLoginLimiter(s.client, 1, time.Minute)

	_, err := l.Allow(ctx, "k")
	s.Require().NoError(err)
	s.Require().NoError(l.Reset(ctx, "k"))

	ok, err := l.Allow(ctx, "k")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *LoginLimiterIntegrationTestSuite) TestCounterWithoutTTLGetsWindow() {
	ctx := context.Background()
	l := NewRedisLoginLimiter(s.client, 5, time.Minute)
	s.Require().NoError(s.client.Set(ctx, keyPrefix+"k", 3, 0).Err())

	ok, err := l.Allow(ctx, "k")
	s.Require().NoError(err)
	s.True(ok)

	ttl, err := s.client.TTL(ctx, keyPrefix+"k").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}

func (s *LoginLimiterIntegrationTestSuite) TestLaterAttemptsKeepWindowStart() {
	ctx := context.Background()
	l := NewRedisLoginLimiter(s.client, 5, time.Minute)

	_, err := l.Allow(ctx, "k")
	s.Require().NoError(err)
	s.Require().NoError(s.client.Expire(ctx, keyPrefix+"k", 10*time.Second).Err())

	_, err = l.Allow(ctx, "k")
	s.Require().NoError(err)
	ttl, err := s.client.TTL(ctx, keyPrefix+"k").Result()
	s.Require().NoError(err)
	s.LessOrEqual(ttl, 10*time.Second)
}

func (s *LoginLimiterIntegrationTestSuite) TestConcurrentAttemptsAllCountedWithTTL() {
	ctx := context.Background()
	l := NewRedisLoginLimiter(s.client, 10, time.Minute)

	var wg sync.WaitGroup
	var allowed atomic.Int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := l.Allow(ctx, "k")
			s.NoError(err)
			if ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(10), allowed.Load())
	count, err := s.client.Get(ctx, keyPrefix+"k").Int()
	s.Require().NoError(err)
	s.Equal(20, count)
	ttl, err := s.client.TTL(ctx, keyPrefix+"k").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func TestLoginLimiterIntegrationTestSuite(t *testing.T) {
	if testing.Short() || os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("skipping redis integration tests; set INTEGRATION_TESTS=1")
	}
	suite.Run(t, new(LoginLimiterIntegrationTestSuite))
}
