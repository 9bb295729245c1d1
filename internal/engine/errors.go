package engine

import "fmt"

// BackendRenderError is returned when a backend fails to produce output.
// No partial output accompanies it.
type BackendRenderError struct {
	Template string
	Cause    error
}

func (e *BackendRenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: template %s: %v", e.Template, e.Cause)
	}
	return fmt.Sprintf("render error: template %s", e.Template)
}

func (e *BackendRenderError) Unwrap() error {
	return e.Cause
}

// ResourceError reports a resource, such as the photo, that could not be
// used. The render continues without it.
type ResourceError struct {
	Resource string
	Message  string
	Cause    error
}

func (e *ResourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resource error: %s: %s: %v", e.Resource, e.Message, e.Cause)
	}
	return fmt.Sprintf("resource error: %s: %s", e.Resource, e.Message)
}

func (e *ResourceError) Unwrap() error {
	return e.Cause
}
