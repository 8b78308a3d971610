//go:build !debug_sharedptr

package sharedptr

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_sharedptr build tag is present
func DebugValidate(validatable Validatable) {
}
