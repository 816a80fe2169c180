package handlers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fullSpecYAML = `name: test-app
region: us-east-1
vpc_cidr: 10.0.0.0/16
services:
  s3_bucket: true
  rds:
    enabled: true
    engine: postgres
    instance_class: db.t3.micro
    db_name: testdb
    username: admin
    password: SecurePass123!
  ecs_cluster:
    enabled: true
tags:
  env: dev
`

const minimalSpecYAML = `name: dev-env
region: eu-west-1
vpc_cidr: 192.168.0.0/24
services:
  s3_bucket: false
`

const invalidSpecYAML = `name: Bad_Name
region: mars-1
vpc_cidr: 10.0.0.0/16
services:
  s3_bucket: true
`

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = old
	return <-done
}

// writeSpecFile writes an environment file into a temp dir and returns its path.
func writeSpecFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "environment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
