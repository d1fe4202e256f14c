// Package bucket defines the user categories tasks live in.
package bucket

type Bucket struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
