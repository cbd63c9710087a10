package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/config"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_NoErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestGetPgxpool_BadDSN() {
	_, err := getPgxpool(context.Background(), &config.Config{Database: "://not a dsn"})
	s.Error(err)
}

func (s *ApplicationSuite) TestGetRedisClient() {
	s.Run("Disabled without url", func() {
		client, err := getRedisClient(context.Background(), &config.Config{})
		s.NoError(err)
		s.Nil(client)
	})

	s.Run("Connects", func() {
		mr := miniredis.RunT(s.T())
		client, err := getRedisClient(context.Background(), &config.Config{RedisURL: "redis://" + mr.Addr()})
		s.Require().NoError(err)
		s.NotNil(client)
		s.NoError(client.Close())
	})

	s.Run("Unreachable", func() {
		_, err := getRedisClient(context.Background(), &config.Config{RedisURL: "redis://127.0.0.1:1"})
		s.Error(err)
	})
}
