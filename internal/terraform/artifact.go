package terraform

import (
	"encoding/json"
	"fmt"
)

// ArtifactKind identifies one file of a generated Terraform project.
type ArtifactKind string

// Artifact kinds in packaging order.
const (
	KindMain               ArtifactKind = "main"
	KindVariables          ArtifactKind = "variables"
	KindNetwork            ArtifactKind = "network"
	KindObjectStorage      ArtifactKind = "object_storage"
	KindRelationalDatabase ArtifactKind = "relational_database"
	KindContainerCluster   ArtifactKind = "container_cluster"
	KindOutputs            ArtifactKind = "outputs"
	KindTFVars             ArtifactKind = "tfvars"
)

type kindInfo struct {
	fileName    string
	responseKey string
}

var kinds = map[ArtifactKind]kindInfo{
	KindMain:               {"main.tf", "main_tf"},
	KindVariables:          {"variables.tf", "variables_tf"},
	KindNetwork:            {"vpc.tf", "vpc_tf"},
	KindObjectStorage:      {"services_s3.tf", "services_s3_tf"},
	KindRelationalDatabase: {"services_rds.tf", "services_rds_tf"},
	KindContainerCluster:   {"services_ecs.tf", "services_ecs_tf"},
	KindOutputs:            {"outputs.tf", "outputs_tf"},
	KindTFVars:             {"terraform.tfvars", "terraform_tfvars"},
}

// AllKinds returns every artifact kind in packaging order.
func AllKinds() []ArtifactKind {
	return []ArtifactKind{
		KindMain,
		KindVariables,
		KindNetwork,
		KindObjectStorage,
		KindRelationalDatabase,
		KindContainerCluster,
		KindOutputs,
		KindTFVars,
	}
}

// Valid reports whether k is a known artifact kind.
func (k ArtifactKind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// FileName returns the name of the file the artifact is written to.
func (k ArtifactKind) FileName() string {
	return kinds[k].fileName
}

// ResponseKey returns the key of the artifact in the JSON response.
func (k ArtifactKind) ResponseKey() string {
	return kinds[k].responseKey
}

// TemplateName returns the name of the template the artifact is rendered from.
func (k ArtifactKind) TemplateName() string {
	return k.FileName() + ".tmpl"
}

func (k ArtifactKind) String() string {
	return string(k)
}

// ArtifactSet holds the rendered content of every artifact kind.
// It is immutable once returned by a Generator.
type ArtifactSet struct {
	name     string
	contents map[ArtifactKind]string
}

// NewArtifactSet creates a set for the named environment. Kinds missing from
// contents have empty content; unknown kinds are rejected.
func NewArtifactSet(name string, contents map[ArtifactKind]string) (*ArtifactSet, error) {
	set := &ArtifactSet{
		name:     name,
		contents: make(map[ArtifactKind]string, len(kinds)),
	}
	for kind, content := range contents {
		if !kind.Valid() {
			return nil, fmt.Errorf("unknown artifact kind %q", kind)
		}
		set.contents[kind] = content
	}
	return set, nil
}

// Name returns the environment name the set was generated for.
func (s *ArtifactSet) Name() string {
	return s.name
}

// Content returns the content of kind, or "" if the artifact is empty.
func (s *ArtifactSet) Content(kind ArtifactKind) string {
	return s.contents[kind]
}

// Files returns the artifacts keyed by file name, skipping empty content.
func (s *ArtifactSet) Files() map[string]string {
	files := make(map[string]string, len(s.contents))
	for kind, content := range s.contents {
		if content != "" {
			files[kind.FileName()] = content
		}
	}
	return files
}

// MarshalJSON encodes the set with every response key present.
func (s *ArtifactSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(kinds))
	for _, kind := range AllKinds() {
		out[kind.ResponseKey()] = s.contents[kind]
	}
	return json.Marshal(out)
}
