package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	redisclient "github.com/KirkDiggler/rpg-party/internal/redis"
	"github.com/KirkDiggler/rpg-party/internal/testutils"
)

type CreateIndexedTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	ctx     context.Context
}

func TestCreateIndexedSuite(t *testing.T) {
	suite.Run(t, new(CreateIndexedTestSuite))
}

func (s *CreateIndexedTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()
}

func (s *CreateIndexedTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *CreateIndexedTestSuite) TestCreatesAndIndexes() {
	created, err := redisclient.CreateIndexed(s.ctx, s.client, "thing:a", "thing:index", []byte(`{"id":"a"}`), "a")
	s.Require().NoError(err)
	s.True(created)

	val, err := s.client.Get(s.ctx, "thing:a").Result()
	s.Require().NoError(err)
	s.Equal(`{"id":"a"}`, val)

	ids, err := s.client.LRange(s.ctx, "thing:index", 0, -1).Result()
	s.Require().NoError(err)
	s.Equal([]string{"a"}, ids)
}

func (s *CreateIndexedTestSuite) TestExistingKeyLeavesRecordAndIndexUntouched() {
	_, err := redisclient.CreateIndexed(s.ctx, s.client, "thing:a", "thing:index", []byte("first"), "a")
	s.Require().NoError(err)

	created, err := redisclient.CreateIndexed(s.ctx, s.client, "thing:a", "thing:index", []byte("second"), "a")
	s.Require().NoError(err)
	s.False(created)

	val, err := s.client.Get(s.ctx, "thing:a").Result()
	s.Require().NoError(err)
	s.Equal("first", val)

	n, err := s.client.LLen(s.ctx, "thing:index").Result()
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}
