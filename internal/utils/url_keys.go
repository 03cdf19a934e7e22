package utils

const (
	// IdKey is the key for a generic record id used in routing parameters.
	IdKey = "id"

	// BlogIdKey is the key for a blog entry id used in routing parameters.
	BlogIdKey = "blog_id"

	// UsernameKey is the key for a GitHub username used in routing parameters.
	UsernameKey = "username"
)
