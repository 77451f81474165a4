package domain

import "errors"

var (
	// ErrToolNotFound reports a tools/call against an unregistered name.
	ErrToolNotFound = errors.New("tool not found")
	// ErrResourceNotFound reports a resources/read against an unknown URI.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrDuplicateTool reports a second registration under the same name.
	ErrDuplicateTool = errors.New("duplicate tool name")
	// ErrWidgetNotFound reports a tool bound to a widget the catalog lacks.
	ErrWidgetNotFound = errors.New("widget not found")
)
