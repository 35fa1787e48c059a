package sourcebank_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/operator-codex/internal/errors"
	"github.com/KirkDiggler/operator-codex/internal/redis"
	"github.com/KirkDiggler/operator-codex/internal/sourcebank"
	"github.com/KirkDiggler/operator-codex/internal/testutils"
)

type MaintenanceTestSuite struct {
	suite.Suite
	ctx     context.Context
	client  redis.Client
	mr      *miniredis.Miniredis
	cleanup func()
}

func TestMaintenanceSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceTestSuite))
}

func (s *MaintenanceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisServer(s.T(), func(mr *miniredis.Miniredis) {
		s.Require().NoError(mr.Set("codex:table:skill_table", `{"skchr_a":{}}`))
		s.Require().NoError(mr.Set("codex:table:skin_table", `{"charSkins":`))
		s.Require().NoError(mr.Set("other:table:skin_table", `not json`))
	})
}

func (s *MaintenanceTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *MaintenanceTestSuite) TestCheckCache() {
	output, err := sourcebank.CheckCache(s.ctx, &sourcebank.CheckCacheInput{Client: s.client})

	s.Require().NoError(err)
	s.ElementsMatch([]string{sourcebank.SkillTable, sourcebank.SkinTable}, output.Tables)
	s.Equal([]string{sourcebank.SkinTable}, output.Corrupt)
	s.Zero(output.Deleted)
	s.True(s.mr.Exists("codex:table:skin_table"))
}

func (s *MaintenanceTestSuite) TestCheckCacheFix() {
	output, err := sourcebank.CheckCache(s.ctx, &sourcebank.CheckCacheInput{Client: s.client, Fix: true})

	s.Require().NoError(err)
	s.Equal(1, output.Deleted)
	s.False(s.mr.Exists("codex:table:skin_table"))
	s.True(s.mr.Exists("codex:table:skill_table"))
	s.True(s.mr.Exists("other:table:skin_table"))
}

func (s *MaintenanceTestSuite) TestCheckCacheCustomPrefix() {
	output, err := sourcebank.CheckCache(s.ctx, &sourcebank.CheckCacheInput{Client: s.client, KeyPrefix: "other:table:"})

	s.Require().NoError(err)
	s.Equal([]string{sourcebank.SkinTable}, output.Corrupt)
}

func (s *MaintenanceTestSuite) TestCheckCacheRequiresClient() {
	_, err := sourcebank.CheckCache(s.ctx, &sourcebank.CheckCacheInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = sourcebank.CheckCache(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *MaintenanceTestSuite) TestPurgeCache() {
	deleted, err := sourcebank.PurgeCache(s.ctx, s.client, "")

	s.Require().NoError(err)
	s.Equal(2, deleted)
	s.Equal([]string{"other:table:skin_table"}, s.mr.Keys())
}

func (s *MaintenanceTestSuite) TestPurgeCacheUnreachable() {
	s.mr.Close()

	_, err := sourcebank.PurgeCache(s.ctx, s.client, "")
	s.True(errors.IsUnavailable(err))
}
