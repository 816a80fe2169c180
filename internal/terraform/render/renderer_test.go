package render

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/tfscaffold/internal/config"
	"github.com/imamik/tfscaffold/internal/terraform"
	"github.com/imamik/tfscaffold/internal/util/ptr"
)

func fullModel(t *testing.T) *terraform.Model {
	t.Helper()
	m, err := terraform.BuildModel(&config.EnvironmentSpec{
		Name:    "test-app",
		Region:  "us-east-1",
		VPCCIDR: "10.0.0.0/16",
		Services: &config.Services{
			S3Bucket: ptr.Bool(true),
			RDS: &config.RDSConfig{
				Enabled:       ptr.Bool(true),
				Engine:        "postgres",
				InstanceClass: "db.t3.micro",
				DBName:        "testdb",
				Username:      "admin",
				Password:      "SecurePass123!",
			},
			ECSCluster: &config.ECSConfig{Enabled: ptr.Bool(true)},
		},
		Tags: map[string]string{"env": "dev", "owner": "platform-team"},
	})
	require.NoError(t, err)
	return m
}

func minimalModel(t *testing.T) *terraform.Model {
	t.Helper()
	m, err := terraform.BuildModel(&config.EnvironmentSpec{
		Name:     "dev-env",
		Region:   "eu-west-1",
		VPCCIDR:  "192.168.0.0/24",
		Services: &config.Services{S3Bucket: ptr.Bool(false)},
	})
	require.NoError(t, err)
	return m
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestNew_AllTemplatesPresent(t *testing.T) {
	t.Parallel()
	r := newRenderer(t)
	assert.NoError(t, r.Check())
}

func TestNewFromFS_MissingTemplate(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"main.tf.tmpl": {Data: []byte("terraform {}\n")},
	}

	_, err := NewFromFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vpc.tf.tmpl")
}

func TestNewFromFS_ParseError(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"main.tf.tmpl": {Data: []byte("{{ if }}")},
	}

	_, err := NewFromFS(fsys)
	assert.Error(t, err)
}

func TestRender_AllKinds(t *testing.T) {
	t.Parallel()
	r := newRenderer(t)
	m := fullModel(t)

	for _, kind := range terraform.AllKinds() {
		out, err := r.Render(kind, m)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, out, kind)
		assert.NotContains(t, out, "<no value>", kind)
	}
}

func TestRender_Main(t *testing.T) {
	t.Parallel()
	out, err := newRenderer(t).Render(terraform.KindMain, fullModel(t))
	require.NoError(t, err)

	assert.Contains(t, out, `source  = "hashicorp/aws"`)
	assert.Contains(t, out, `"Environment" = "test-app"`)
	assert.Contains(t, out, `"ManagedBy"   = "terraform"`)
	assert.Contains(t, out, "merge(local.default_tags, var.tags)")
}

func TestRender_Network(t *testing.T) {
	t.Parallel()
	out, err := newRenderer(t).Render(terraform.KindNetwork, fullModel(t))
	require.NoError(t, err)

	assert.Contains(t, out, `resource "aws_vpc" "main"`)
	assert.Contains(t, out, `Name = "test-app-vpc"`)
	assert.Contains(t, out, `resource "aws_subnet" "public"`)
	assert.Contains(t, out, `resource "aws_subnet" "private"`)
	assert.Contains(t, out, `gateway_id = aws_internet_gateway.main.id`)
}

func TestRender_Variables(t *testing.T) {
	t.Parallel()
	r := newRenderer(t)

	full, err := r.Render(terraform.KindVariables, fullModel(t))
	require.NoError(t, err)
	assert.Contains(t, full, `variable "db_password"`)
	assert.Contains(t, full, "sensitive   = true")

	minimal, err := r.Render(terraform.KindVariables, minimalModel(t))
	require.NoError(t, err)
	assert.NotContains(t, minimal, "db_")
	assert.Contains(t, minimal, `variable "vpc_cidr"`)
}

func TestRender_TFVars(t *testing.T) {
	t.Parallel()
	r := newRenderer(t)

	full, err := r.Render(terraform.KindTFVars, fullModel(t))
	require.NoError(t, err)
	assert.Contains(t, full, `public_subnet_cidr  = "10.0.0.0/17"`)
	assert.Contains(t, full, `private_subnet_cidr = "10.0.128.0/17"`)
	assert.Contains(t, full, `"owner" = "platform-team"`)
	assert.Contains(t, full, `db_engine         = "postgres"`)
	assert.Contains(t, full, `db_password       = "SecurePass123!"`)

	minimal, err := r.Render(terraform.KindTFVars, minimalModel(t))
	require.NoError(t, err)
	assert.Contains(t, minimal, "tags = {}")
	assert.NotContains(t, minimal, "db_")
}

func TestRender_Database(t *testing.T) {
	t.Parallel()
	out, err := newRenderer(t).Render(terraform.KindRelationalDatabase, fullModel(t))
	require.NoError(t, err)

	assert.Contains(t, out, "from_port   = 5432")
	assert.Contains(t, out, `identifier             = "test-app-db"`)
	assert.NotContains(t, out, "SecurePass123!", "password comes from variables")
}

func TestRender_ObjectStorageAndCluster(t *testing.T) {
	t.Parallel()
	r := newRenderer(t)
	m := fullModel(t)

	s3, err := r.Render(terraform.KindObjectStorage, m)
	require.NoError(t, err)
	assert.Contains(t, s3, `bucket = "test-app-bucket"`)

	ecs, err := r.Render(terraform.KindContainerCluster, m)
	require.NoError(t, err)
	assert.Contains(t, ecs, `name = "test-app-cluster"`)
	assert.Contains(t, ecs, `"/ecs/test-app"`)
}

func TestRender_Outputs(t *testing.T) {
	t.Parallel()
	r := newRenderer(t)

	full, err := r.Render(terraform.KindOutputs, fullModel(t))
	require.NoError(t, err)
	assert.Contains(t, full, `output "s3_bucket_name"`)
	assert.Contains(t, full, `output "db_endpoint"`)
	assert.Contains(t, full, `output "ecs_cluster_name"`)

	minimal, err := r.Render(terraform.KindOutputs, minimalModel(t))
	require.NoError(t, err)
	assert.Contains(t, minimal, `output "vpc_id"`)
	assert.NotContains(t, minimal, "s3_bucket")
	assert.NotContains(t, minimal, "db_endpoint")
	assert.NotContains(t, minimal, "ecs_cluster")
}

func TestRender_EscapesUserTags(t *testing.T) {
	t.Parallel()
	m := minimalModel(t)
	m.Tags = map[string]string{"note": `${file("/etc/passwd")}`}

	out, err := newRenderer(t).Render(terraform.KindTFVars, m)
	require.NoError(t, err)
	assert.Contains(t, out, `"note" = "$${file(\"/etc/passwd\")}"`)
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()
	r := newRenderer(t)

	_, err := r.Render("lambda", minimalModel(t))
	assert.Error(t, err)

	_, err = r.Render(terraform.KindMain, nil)
	assert.Error(t, err)
}

func TestRender_Concurrent(t *testing.T) {
	t.Parallel()
	r := newRenderer(t)
	m := fullModel(t)

	want, err := r.Render(terraform.KindNetwork, m)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			got, err := r.Render(terraform.KindNetwork, m)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
	wg.Wait()
}

func TestRender_WithGenerator(t *testing.T) {
	t.Parallel()
	g := terraform.NewGenerator(newRenderer(t))

	set, err := g.Generate(t.Context(), &config.EnvironmentSpec{
		Name:     "dev-env",
		Region:   "eu-west-1",
		VPCCIDR:  "192.168.0.0/24",
		Services: &config.Services{S3Bucket: ptr.Bool(false)},
	})
	require.NoError(t, err)

	assert.Contains(t, set.Content(terraform.KindNetwork), `"dev-env-vpc"`)
	assert.Empty(t, set.Content(terraform.KindObjectStorage))
	assert.Len(t, set.Files(), 5)
}
