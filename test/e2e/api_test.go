//go:build e2e

package e2e

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const fullEnvironment = `{
  "name": "test-app",
  "region": "us-east-1",
  "vpc_cidr": "10.0.0.0/16",
  "services": {
    "s3_bucket": true,
    "rds": {
      "enabled": true,
      "engine": "postgres",
      "instance_class": "db.t3.micro",
      "db_name": "testdb",
      "username": "admin",
      "password": "SecurePass123!"
    },
    "ecs_cluster": {"enabled": true}
  },
  "tags": {"env": "dev"}
}`

const minimalEnvironment = `{
  "name": "dev-env",
  "region": "eu-west-1",
  "vpc_cidr": "192.168.0.0/24",
  "services": {"s3_bucket": false}
}`

type envelope struct {
	Success bool              `json:"success"`
	Data    map[string]string `json:"data"`
	Error   string            `json:"error"`
	Errors  []string          `json:"errors"`
}

func post(path, body string) (*http.Response, []byte) {
	GinkgoHelper()
	resp, err := httpClient.Post(baseURL+path, "application/json", strings.NewReader(body))
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	return resp, data
}

func decode(data []byte) envelope {
	GinkgoHelper()
	var env envelope
	Expect(json.Unmarshal(data, &env)).To(Succeed())
	return env
}

var _ = Describe("POST /api/v1/environments", func() {
	It("renders every artifact of a full environment", func() {
		resp, data := post("/api/v1/environments", fullEnvironment)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		env := decode(data)
		Expect(env.Success).To(BeTrue())
		Expect(env.Data).To(HaveLen(8))
		Expect(env.Data["main_tf"]).To(ContainSubstring(`provider "aws"`))
		Expect(env.Data["vpc_tf"]).To(ContainSubstring("aws_vpc"))
		Expect(env.Data["services_s3_tf"]).To(ContainSubstring("aws_s3_bucket"))
		Expect(env.Data["services_rds_tf"]).To(ContainSubstring("5432"))
		Expect(env.Data["services_ecs_tf"]).To(ContainSubstring("aws_ecs_cluster"))
		Expect(env.Data["terraform_tfvars"]).To(ContainSubstring(`"10.0.0.0/17"`))
		Expect(env.Data["terraform_tfvars"]).To(ContainSubstring(`"10.0.128.0/17"`))
	})

	It("returns empty artifacts for disabled services", func() {
		resp, data := post("/api/v1/environments", minimalEnvironment)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		env := decode(data)
		Expect(env.Data).To(HaveKeyWithValue("services_s3_tf", ""))
		Expect(env.Data).To(HaveKeyWithValue("services_rds_tf", ""))
		Expect(env.Data).To(HaveKeyWithValue("services_ecs_tf", ""))
		Expect(env.Data["terraform_tfvars"]).To(ContainSubstring(`"192.168.0.0/25"`))
		Expect(env.Data["terraform_tfvars"]).To(ContainSubstring(`"192.168.0.128/25"`))
	})

	It("reports every violation at once", func() {
		resp, data := post("/api/v1/environments", `{"name":"","region":"mars-1","vpc_cidr":"10.0.0.0/33"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

		env := decode(data)
		Expect(env.Success).To(BeFalse())
		Expect(env.Errors).To(HaveLen(4))
	})

	It("rejects malformed JSON", func() {
		resp, data := post("/api/v1/environments", `{"name":`)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(decode(data).Error).To(Equal("Invalid JSON. Please check request body."))
	})
})

var _ = Describe("POST /api/v1/download", func() {
	It("returns the project as a zip archive", func() {
		resp, data := post("/api/v1/download", fullEnvironment)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.Header.Get("Content-Type")).To(Equal("application/octet-stream"))
		Expect(resp.Header.Get("Content-Disposition")).To(Equal(`attachment; filename=test-app.zip`))

		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		Expect(err).NotTo(HaveOccurred())

		var names []string
		for _, f := range zr.File {
			names = append(names, f.Name)
		}
		Expect(names).To(Equal([]string{
			"main.tf", "variables.tf", "vpc.tf", "services_s3.tf",
			"services_rds.tf", "services_ecs.tf", "outputs.tf", "terraform.tfvars",
		}))
	})

	It("omits disabled services from the archive", func() {
		resp, data := post("/api/v1/download", minimalEnvironment)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		Expect(err).NotTo(HaveOccurred())
		Expect(zr.File).To(HaveLen(5))
	})
})

var _ = Describe("Operational endpoints", func() {
	DescribeTable("health checks",
		func(path string) {
			resp, err := httpClient.Get(baseURL + path)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		},
		Entry("liveness", "/healthz"),
		Entry("readiness", "/readyz"),
	)

	It("exposes request metrics", func() {
		post("/api/v1/environments", minimalEnvironment)

		resp, err := httpClient.Get(baseURL + "/metrics")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring(`tfscaffold_api_requests_total{operation="generate",result="success"}`))
	})
})
