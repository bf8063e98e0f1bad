package project

import "fmt"

// ResourceExistsError signals that a create target already exists and
// recreating it was not requested
type ResourceExistsError struct {
	Resource string
	Name     string
}

func (err ResourceExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists", err.Resource, err.Name)
}

// NotFoundError signals that a describe/drop/rotate target is absent
type NotFoundError struct {
	Resource string
	Name     string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("%s %q does not exist", err.Resource, err.Name)
}
