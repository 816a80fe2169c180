package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/imamik/tfscaffold/internal/archive"
	"github.com/imamik/tfscaffold/internal/platform/s3"
	"github.com/imamik/tfscaffold/internal/terraform"
	"github.com/imamik/tfscaffold/internal/util/naming"
)

// GenerateOptions configures a local generation run.
type GenerateOptions struct {
	SpecPath   string
	OutputDir  string
	Archive    bool
	Sequential bool
	S3         S3Options
}

// S3Options configures publishing the archive to object storage.
// Publishing is skipped when Bucket is empty.
type S3Options struct {
	Bucket       string
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	PathStyle    bool
	CreateBucket bool
}

// Factory function variables for generate - can be replaced in tests.
var (
	// newObjectStore creates the S3 client used for publishing.
	newObjectStore = func(ctx context.Context, opts s3.Options) (s3.ObjectStore, error) {
		return s3.NewClient(ctx, opts)
	}
)

// Generate renders the project described by an environment file into
// OutputDir, either as individual files or as a single zip archive, and
// optionally publishes the archive to S3.
func Generate(ctx context.Context, opts GenerateOptions) error {
	path, spec, err := loadEnvironment(opts.SpecPath)
	if err != nil {
		return err
	}

	set, err := renderProject(ctx, spec, opts.Sequential, logr.Discard())
	if err != nil {
		return reportValidation(path, err)
	}

	var data []byte
	if opts.Archive || opts.S3.Bucket != "" {
		if data, err = archive.Pack(set); err != nil {
			return err
		}
	}

	var written []string
	if opts.Archive {
		target := filepath.Join(opts.OutputDir, naming.ArchiveFile(set.Name()))
		if err := writeOutput(target, data, 0o600); err != nil {
			return err
		}
		written = []string{target}
	} else {
		if written, err = writeProject(opts.OutputDir, set); err != nil {
			return err
		}
	}

	var location string
	if opts.S3.Bucket != "" {
		region := opts.S3.Region
		if region == "" {
			region = spec.Region
		}
		if location, err = publishArchive(ctx, set.Name(), region, data, opts.S3); err != nil {
			return err
		}
	}

	printGenerateSummary(set, written, location)
	return nil
}

// writeProject writes each non-empty artifact of set into dir and returns
// the written paths in packaging order.
func writeProject(dir string, set *terraform.ArtifactSet) ([]string, error) {
	var written []string
	for _, kind := range terraform.AllKinds() {
		content := set.Content(kind)
		if content == "" {
			continue
		}

		perm := os.FileMode(0o644)
		if kind == terraform.KindTFVars {
			// Holds the database password when RDS is enabled.
			perm = 0o600
		}

		target := filepath.Join(dir, kind.FileName())
		if err := writeOutput(target, []byte(content), perm); err != nil {
			return written, err
		}
		written = append(written, target)
	}
	return written, nil
}

func writeOutput(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func publishArchive(ctx context.Context, environment, region string, data []byte, opts S3Options) (string, error) {
	store, err := newObjectStore(ctx, s3.Options{
		Region:       region,
		Endpoint:     opts.Endpoint,
		AccessKey:    opts.AccessKey,
		SecretKey:    opts.SecretKey,
		UsePathStyle: opts.PathStyle,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create S3 client: %w", err)
	}

	var pubOpts []s3.PublisherOption
	if opts.CreateBucket {
		pubOpts = append(pubOpts, s3.WithCreateBucket())
	}

	location, err := s3.NewPublisher(store, opts.Bucket, pubOpts...).Publish(ctx, environment, data)
	if err != nil {
		return "", fmt.Errorf("failed to publish archive: %w", err)
	}
	return location, nil
}

func printGenerateSummary(set *terraform.ArtifactSet, written []string, location string) {
	fmt.Println(style(titleStyle, fmt.Sprintf("Generated Terraform project %q", set.Name())))
	fmt.Println()
	for _, path := range written {
		fmt.Printf("  %s %s\n", style(okStyle, "✓"), path)
	}
	if location != "" {
		fmt.Println()
		fmt.Printf("  Published to %s\n", location)
	}
	fmt.Println()
	fmt.Println(style(dimStyle, "Next: terraform init && terraform plan"))
}
