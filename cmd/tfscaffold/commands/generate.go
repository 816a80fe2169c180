package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/tfscaffold/cmd/tfscaffold/handlers"
)

// Generate returns the command that renders a project locally.
//
// Flags:
//
//	--file, -f: Environment file (default "environment.yaml")
//	--output, -o: Output directory (default "terraform")
//	--archive: Write <name>.zip instead of individual files
//	--s3-bucket: Also publish the archive to this bucket
func Generate() *cobra.Command {
	var opts handlers.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Terraform project from an environment file",
		Long: `Generate a Terraform project from an environment file.

The environment file is validated first; every violation is reported.
Files of disabled services are not written.

With --s3-bucket the zip archive is additionally uploaded to
s3://<bucket>/<name>/<name>.zip using the default AWS credential chain
unless --s3-access-key and --s3-secret-key are given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Generate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SpecPath, "file", "f", "", "Path to environment file (default: environment.yaml)")
	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "terraform", "Output directory")
	cmd.Flags().BoolVar(&opts.Archive, "archive", false, "Write a zip archive instead of individual files")
	cmd.Flags().BoolVar(&opts.Sequential, "sequential", false, "Render artifacts one at a time")

	cmd.Flags().StringVar(&opts.S3.Bucket, "s3-bucket", "", "Publish the archive to this S3 bucket")
	cmd.Flags().StringVar(&opts.S3.Region, "s3-region", "", "Region of the S3 bucket (default: environment region)")
	cmd.Flags().StringVar(&opts.S3.Endpoint, "s3-endpoint", "", "Custom S3-compatible endpoint")
	cmd.Flags().StringVar(&opts.S3.AccessKey, "s3-access-key", "", "S3 access key (default: AWS credential chain)")
	cmd.Flags().StringVar(&opts.S3.SecretKey, "s3-secret-key", "", "S3 secret key (default: AWS credential chain)")
	cmd.Flags().BoolVar(&opts.S3.PathStyle, "s3-path-style", false, "Use path-style bucket addressing")
	cmd.Flags().BoolVar(&opts.S3.CreateBucket, "s3-create-bucket", false, "Create the bucket if it does not exist")

	return cmd
}
