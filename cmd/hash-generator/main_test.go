package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRun_Arguments(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--cost", "10", "-q", "testpassword123"}, strings.NewReader(""), &out))

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("testpassword123")))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestRun_Stdin(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--cost=10"}, strings.NewReader("first-pass\n\nтест123\n"), &out))

	assert.Equal(t, 2, strings.Count(out.String(), "Hash: $2a$10$"))
	assert.Contains(t, out.String(), "Password: тест123")
}

func TestRun_RejectsBadCost(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"--cost", "40", "pw"}, strings.NewReader(""), &out))
	assert.Empty(t, out.String())
}
