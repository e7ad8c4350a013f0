package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticContext struct {
	host     string
	login    string
	password string
	port     int
	insecure bool
}

func (c staticContext) SSHHost() string     { return c.host }
func (c staticContext) SSHLogin() string    { return c.login }
func (c staticContext) SSHPassword() string { return c.password }
func (c staticContext) SSHPort() int        { return c.port }
func (c staticContext) SSHInsecure() bool   { return c.insecure }

func TestGetSSHParams(t *testing.T) {
	p, err := GetSSHParams(staticContext{host: "example.com", login: "alice", password: "s3cret", port: 2222, insecure: true})
	require.NoError(t, err)
	assert.Equal(t, "example.com", p.Host)
	assert.Equal(t, "alice", p.LoginName)
	assert.Equal(t, "s3cret", p.Password)
	assert.Equal(t, 2222, p.Port)
	assert.True(t, p.Insecure)
}

func TestGetSSHParamsUserAtHost(t *testing.T) {
	p, err := GetSSHParams(staticContext{host: "bob@example.com", login: "ignored", port: 22})
	require.NoError(t, err)
	assert.Equal(t, "example.com", p.Host)
	assert.Equal(t, "bob", p.LoginName)
}

func TestGetSSHParamsEmptyHost(t *testing.T) {
	_, err := GetSSHParams(staticContext{})
	require.Error(t, err)
}

func TestGetSSHParamsDefaultPort(t *testing.T) {
	p, err := GetSSHParams(staticContext{host: "example.com", login: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 22, p.Port)
}
