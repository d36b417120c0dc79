/*
Package errors provides semantic error types for sysprops.

The projector itself never creates errors: whatever a property store returns
is handed back to the caller untouched. The types here are produced by the
stores, the parameter loaders and the registries, and can be checked with the
standard errors.Is() function or the provided helpers.

Common Errors:

	var (
	    ErrNotFound      = errors.New("not found")
	    ErrAlreadyExists = errors.New("already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrWriteRejected = errors.New("write rejected")
	    ErrAborted       = errors.New("launch aborted")
	)

Usage:

	value, err := store.GetProperty(ctx, "org.allauncher.window.title")
	if errors.IsNotFound(err) {
	    // property was never projected
	}

	err := errors.NewWriteRejectedError("minecraft.launcher.brand", "read-only key")
	if errors.IsWriteRejected(err) {
	    // store policy denied the write
	}
*/
package errors
