package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RootCmdTestSuite struct {
	suite.Suite
}

func (suite *RootCmdTestSuite) execute(args ...string) (string, error) {
	var stderr bytes.Buffer
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stderr.String(), err
}

func (suite *RootCmdTestSuite) TestFlags() {
	cmd := newRootCmd()
	for _, name := range []string{"config", "dir", "pattern", "output", "proxy", "verbose"} {
		suite.NotNil(cmd.Flags().Lookup(name), name)
	}
	suite.Equal("v", cmd.Flags().Lookup("verbose").Shorthand)
}

func (suite *RootCmdTestSuite) TestRejects() {
	suite.Run("No Proxies", func() {
		out, err := suite.execute()
		suite.Error(err)
		suite.True(strings.HasPrefix(out, "proxygen: config:"), out)
	})

	suite.Run("Bad Proxy", func() {
		out, err := suite.execute("--proxy", "Echo")
		suite.Error(err)
		suite.Contains(out, "proxy must be Name=Contract")
	})

	suite.Run("Arguments", func() {
		_, err := suite.execute("extra")
		suite.Error(err)
	})

	suite.Run("Missing Config", func() {
		out, err := suite.execute("--config", "missing.yaml")
		suite.Error(err)
		suite.Contains(out, "missing.yaml")
	})
}

func (suite *RootCmdTestSuite) TestLogger() {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetErr(&buf)
	logger := newLogger(cmd, 1)
	logger.V(1).Info("resolved proxy", "name", "EchoProxy")
	logger.V(2).Info("hidden")
	out := buf.String()
	suite.True(strings.HasPrefix(out, "proxygen: "), out)
	suite.Contains(out, `"msg"="resolved proxy"`)
	suite.Contains(out, `"name"="EchoProxy"`)
	suite.NotContains(out, "hidden")
}

func TestRootCmdTestSuite(t *testing.T) {
	suite.Run(t, new(RootCmdTestSuite))
}
