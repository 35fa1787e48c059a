package sourcebank_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/operator-codex/internal/errors"
	"github.com/KirkDiggler/operator-codex/internal/redis"
	"github.com/KirkDiggler/operator-codex/internal/sourcebank"
	sourcebankmock "github.com/KirkDiggler/operator-codex/internal/sourcebank/mock"
	"github.com/KirkDiggler/operator-codex/internal/testutils"
)

const (
	testPrefix   = "test:table:"
	testTableKey = testPrefix + sourcebank.SkillTable
	testTable    = `{"skchr_test_1":{"skillId":"skchr_test_1","levels":[]}}`
)

type RedisCacheTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	mockSource *sourcebankmock.MockBank
	client     redis.Client
	mr         *miniredis.Miniredis
	cleanup    func()
	cache      sourcebank.Bank
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}

func (s *RedisCacheTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockSource = sourcebankmock.NewMockBank(s.ctrl)
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisServer(s.T(), nil)

	cache, err := sourcebank.NewRedisCache(&sourcebank.RedisCacheConfig{
		Client:    s.client,
		Source:    s.mockSource,
		TTL:       time.Hour,
		KeyPrefix: testPrefix,
	})
	s.Require().NoError(err)
	s.cache = cache
}

func (s *RedisCacheTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisCacheTestSuite) TestNewRedisCache() {
	testCases := []struct {
		name   string
		config *sourcebank.RedisCacheConfig
		errMsg string
	}{
		{
			name:   "nil config",
			config: nil,
			errMsg: "config cannot be nil",
		},
		{
			name:   "missing client",
			config: &sourcebank.RedisCacheConfig{Source: s.mockSource},
			errMsg: "Client: is required",
		},
		{
			name:   "missing source",
			config: &sourcebank.RedisCacheConfig{Client: s.client},
			errMsg: "Source: is required",
		},
		{
			name:   "negative ttl",
			config: &sourcebank.RedisCacheConfig{Client: s.client, Source: s.mockSource, TTL: -time.Second},
			errMsg: "TTL: is invalid",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cache, err := sourcebank.NewRedisCache(tc.config)
			s.Error(err)
			s.Nil(cache)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisCacheTestSuite) TestMissPopulatesCache() {
	s.mockSource.EXPECT().
		Table(s.ctx, sourcebank.SkillTable).
		Return([]byte(testTable), nil)

	raw, err := s.cache.Table(s.ctx, sourcebank.SkillTable)
	s.Require().NoError(err)
	s.JSONEq(testTable, string(raw))

	cached, err := s.mr.Get(testTableKey)
	s.Require().NoError(err)
	s.JSONEq(testTable, cached)
	s.Equal(time.Hour, s.mr.TTL(testTableKey))
}

func (s *RedisCacheTestSuite) TestHitSkipsSource() {
	s.Require().NoError(s.mr.Set(testTableKey, testTable))

	raw, err := s.cache.Table(s.ctx, sourcebank.SkillTable)

	s.Require().NoError(err)
	s.JSONEq(testTable, string(raw))
}

func (s *RedisCacheTestSuite) TestExpiredEntryIsReloaded() {
	s.mockSource.EXPECT().
		Table(s.ctx, sourcebank.SkillTable).
		Return([]byte(testTable), nil).
		Times(2)

	_, err := s.cache.Table(s.ctx, sourcebank.SkillTable)
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.cache.Table(s.ctx, sourcebank.SkillTable)
	s.Require().NoError(err)
}

func (s *RedisCacheTestSuite) TestSourceErrorIsReturned() {
	s.mockSource.EXPECT().
		Table(s.ctx, sourcebank.SkinTable).
		Return(nil, errors.NotFound("table skin_table not found"))

	raw, err := s.cache.Table(s.ctx, sourcebank.SkinTable)

	s.Nil(raw)
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists(testPrefix + sourcebank.SkinTable))
}

func (s *RedisCacheTestSuite) TestUnreachableCacheFallsBackToSource() {
	s.mr.Close()

	s.mockSource.EXPECT().
		Table(s.ctx, sourcebank.SkillTable).
		Return([]byte(testTable), nil)

	raw, err := s.cache.Table(s.ctx, sourcebank.SkillTable)

	s.Require().NoError(err)
	s.JSONEq(testTable, string(raw))
}

func (s *RedisCacheTestSuite) TestDefaults() {
	cache, err := sourcebank.NewRedisCache(&sourcebank.RedisCacheConfig{
		Client: s.client,
		Source: s.mockSource,
	})
	s.Require().NoError(err)

	s.mockSource.EXPECT().
		Table(s.ctx, sourcebank.ItemTable).
		Return([]byte(`{}`), nil)

	_, err = cache.Table(s.ctx, sourcebank.ItemTable)
	s.Require().NoError(err)

	key := sourcebank.DefaultCachePrefix + sourcebank.ItemTable
	s.True(s.mr.Exists(key))
	s.Equal(sourcebank.DefaultCacheTTL, s.mr.TTL(key))
}
