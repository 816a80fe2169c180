package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/imamik/tfscaffold/internal/config"
)

// Function variable for dependency injection in tests.
var confirmOverwrite = defaultConfirmOverwrite

// WriteSpec writes the spec to a YAML file with a descriptive header.
func WriteSpec(spec *config.EnvironmentSpec, outputPath string) error {
	return config.WriteSpecYAML(spec, outputPath, generateHeader(outputPath, spec.Services.RelationalDatabaseEnabled()))
}

// generateHeader creates the YAML file header comment.
func generateHeader(outputPath string, hasPassword bool) string {
	note := ""
	if hasPassword {
		note = "#\n# This file contains the database password. Keep it out of version control.\n"
	}
	return fmt.Sprintf(`# tfscaffold environment
# Generated by: tfscaffold init
# Generated at: %s
%s#
# Usage:
#   tfscaffold validate -f %s
#   tfscaffold generate -f %s -o ./terraform
`, time.Now().Format(time.RFC3339), note, outputPath, outputPath)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfirmOverwrite prompts the user to confirm overwriting an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	return confirmOverwrite(path)
}

// defaultConfirmOverwrite is the default implementation that prompts via stdin.
func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("\nFile already exists: %s\n", path)
	fmt.Print("Overwrite? (y/n): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
