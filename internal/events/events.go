package events

import "strings"

const ObjectCreatedPrefix = "ObjectCreated:"

func IsObjectCreatedEventName(name string) bool {
	return strings.HasPrefix(name, ObjectCreatedPrefix)
}
