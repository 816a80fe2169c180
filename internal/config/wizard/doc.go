// Package wizard provides the interactive environment wizard used by
// "tfscaffold init".
//
// [RunWizard] asks for the environment identity, network, services and tags
// with huh forms; [BuildSpec] turns the answers into an
// [config.EnvironmentSpec] and [WriteSpec] stores it as YAML.
package wizard
