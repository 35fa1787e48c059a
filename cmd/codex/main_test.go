package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/operator-codex/internal/config"
	"github.com/KirkDiggler/operator-codex/internal/errors"
	"github.com/KirkDiggler/operator-codex/internal/operator"
	"github.com/KirkDiggler/operator-codex/internal/services/catalog"
	catalogmock "github.com/KirkDiggler/operator-codex/internal/services/catalog/mock"
	"github.com/KirkDiggler/operator-codex/internal/testutils"
)

type CLITestSuite struct {
	suite.Suite
	dataDir string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.dataDir = testutils.WriteFixtureTables(s.T())
}

func (s *CLITestSuite) run(factory serviceFactory, args ...string) (string, error) {
	cmd := newRootCmd(factory)
	var out, logs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CLITestSuite) TestOperator() {
	out, err := s.run(buildService, "operator", testutils.FixtureAmiyaID, "--data-dir", s.dataDir, "--recruit", testutils.FixtureAmiyaID)
	s.Require().NoError(err)

	var profile map[string]any
	s.Require().NoError(json.Unmarshal([]byte(out), &profile))
	s.Equal(testutils.FixtureAmiyaID, profile["id"])
	s.Equal("阿米娅", profile["name"])
	s.Equal(true, profile["is_recruit"])

	detail, ok := profile["detail"].(map[string]any)
	s.Require().True(ok)
	s.Equal("造成法术伤害", detail["operator_trait"])
	s.Equal("2-80", detail["max_level"])
	s.Equal(float64(1480), detail["maxHp"])
}

func (s *CLITestSuite) TestOperatorDataDirFromEnv() {
	s.T().Setenv("CODEX_DATA_DIR", s.dataDir)

	out, err := s.run(buildService, "operator", testutils.FixtureLancetID)
	s.Require().NoError(err)
	s.Contains(out, `"支援机械"`)
}

func (s *CLITestSuite) TestOperatorErrors() {
	testCases := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{
			name:     "unknown operator",
			args:     []string{"operator", "char_000_nobody", "--data-dir", s.dataDir},
			exitCode: 3,
		},
		{
			name:     "unclassifiable record",
			args:     []string{"operator", testutils.FixtureBrokenID, "--data-dir", s.dataDir},
			exitCode: 4,
		},
		{
			name:     "missing data dir",
			args:     []string{"operator", testutils.FixtureAmiyaID, "--data-dir", s.dataDir + "/nope"},
			exitCode: 3,
		},
		{
			name:     "missing classification file",
			args:     []string{"operator", testutils.FixtureAmiyaID, "--data-dir", s.dataDir, "--classification", s.dataDir + "/none.yaml"},
			exitCode: 3,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.run(buildService, tc.args...)
			s.Error(err)
			s.Equal(tc.exitCode, errors.GetCode(err).ExitCode())
		})
	}
}

func (s *CLITestSuite) TestOperatorRequiresID() {
	_, err := s.run(buildService, "operator", "--data-dir", s.dataDir)
	s.Error(err)
}

func (s *CLITestSuite) TestList() {
	out, err := s.run(buildService, "list", "--data-dir", s.dataDir)
	s.Require().NoError(err)

	s.Contains(out, "ID")
	s.Contains(out, testutils.FixtureAmiyaID)
	s.Contains(out, "阿米娅近卫")
	s.Contains(out, "治疗,医疗,远程位,支援机械")
	s.NotContains(out, testutils.FixtureReserveID)
	s.NotContains(out, testutils.FixtureTokenID)
	s.Contains(out, "3 operators, 1 skipped")
}

func (s *CLITestSuite) TestListIncludeUnavailable() {
	out, err := s.run(buildService, "list", "--data-dir", s.dataDir, "--include-unavailable")
	s.Require().NoError(err)

	s.Contains(out, testutils.FixtureReserveID)
	s.Contains(out, "4 operators, 1 skipped")
}

func (s *CLITestSuite) TestListPassesRecruitable() {
	ctrl := gomock.NewController(s.T())
	service := catalogmock.NewMockService(ctrl)

	service.EXPECT().
		ListOperators(gomock.Any(), &catalog.ListOperatorsInput{
			RecruitableIDs: []string{"char_a", "char_b"},
		}).
		Return(&catalog.ListOperatorsOutput{
			Operators: []*operator.Operator{
				{ID: "char_a", Name: "A", Class: "近卫", Rarity: 3, Tags: []string{"输出", "近卫"}},
			},
			Skipped: 2,
		}, nil)

	factory := func(_ context.Context, cfg *config.Config) (catalog.Service, func(), error) {
		s.Equal(s.dataDir, cfg.DataDir)
		return service, func() {}, nil
	}

	out, err := s.run(factory, "list", "--data-dir", s.dataDir, "--recruit", "char_a,char_b")
	s.Require().NoError(err)
	s.Contains(out, "char_a")
	s.Contains(out, "输出,近卫")
	s.Contains(out, "1 operators, 2 skipped")
}

func (s *CLITestSuite) TestServiceErrorIsReturned() {
	ctrl := gomock.NewController(s.T())
	service := catalogmock.NewMockService(ctrl)
	service.EXPECT().
		ListOperators(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("required table character_table is missing"))

	cleaned := false
	factory := func(_ context.Context, _ *config.Config) (catalog.Service, func(), error) {
		return service, func() { cleaned = true }, nil
	}

	_, err := s.run(factory, "list", "--data-dir", s.dataDir)
	s.True(errors.IsFailedPrecondition(err))
	s.True(cleaned)
}

func (s *CLITestSuite) TestRedisCache() {
	mr := miniredis.RunT(s.T())

	_, err := s.run(buildService, "operator", testutils.FixtureAmiyaID, "--data-dir", s.dataDir, "--redis-addr", mr.Addr())
	s.Require().NoError(err)

	s.True(mr.Exists("codex:table:character_table"))
	s.True(mr.Exists("codex:table:skin_table"))
	s.Greater(mr.TTL("codex:table:character_table").Hours(), 23.0)
}

func (s *CLITestSuite) TestRedisUnreachableFallsBackToDisk() {
	mr := miniredis.RunT(s.T())
	addr := mr.Addr()
	mr.Close()

	out, err := s.run(buildService, "operator", testutils.FixtureAmiyaID, "--data-dir", s.dataDir, "--redis-addr", addr)
	s.Require().NoError(err)
	s.Contains(out, "阿米娅")
}

func (s *CLITestSuite) TestCacheCheckAndPurge() {
	mr := miniredis.RunT(s.T())
	s.Require().NoError(mr.Set("codex:table:skin_table", `{"charSkins":`))

	_, err := s.run(buildService, "operator", testutils.FixtureAmiyaID, "--data-dir", s.dataDir, "--redis-addr", mr.Addr())
	s.Require().Error(err, "the corrupt cached skin_table is served before the disk copy")
	s.True(errors.IsDataLoss(err))

	out, err := s.run(buildService, "cache", "check", "--fix", "--redis-addr", mr.Addr())
	s.Require().NoError(err)
	s.Contains(out, "corrupt: skin_table")
	s.Contains(out, "1 corrupt, 1 deleted")

	_, err = s.run(buildService, "operator", testutils.FixtureAmiyaID, "--data-dir", s.dataDir, "--redis-addr", mr.Addr())
	s.Require().NoError(err)

	out, err = s.run(buildService, "cache", "purge", "--redis-addr", mr.Addr())
	s.Require().NoError(err)
	s.Contains(out, "deleted 9 cached tables")
	s.Empty(mr.Keys())
}

func (s *CLITestSuite) TestCacheRequiresRedis() {
	_, err := s.run(buildService, "cache", "check")
	s.True(errors.IsInvalidArgument(err))
}
