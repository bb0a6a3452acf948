package domain

import (
	"regexp"

	"github.com/samber/mo"
)

// RBEInstanceEnv is the environment variable holding the RBE instance resource name.
const RBEInstanceEnv = "RBE_instance"

var rbeInstancePattern = regexp.MustCompile(`^projects/([-\w]+)/instances/[-\w]+$`)

// RBEProjectFromInstance extracts <id> from "projects/<id>/instances/<name>".
// Anything else yields no project.
func RBEProjectFromInstance(instance string) mo.Option[string] {
	m := rbeInstancePattern.FindStringSubmatch(instance)
	if m == nil {
		return mo.None[string]()
	}
	return mo.Some(m[1])
}

// RBEProjectFromEnv resolves the RBE project from RBE_instance using lookup, typically os.LookupEnv.
func RBEProjectFromEnv(lookup func(string) (string, bool)) mo.Option[string] {
	instance, ok := lookup(RBEInstanceEnv)
	if !ok || instance == "" {
		return mo.None[string]()
	}
	return RBEProjectFromInstance(instance)
}
