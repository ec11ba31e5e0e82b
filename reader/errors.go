package reader

import "github.com/pkg/errors"

// errorsWrapf attaches local context to an error without disturbing a
// *codecerr.CodecError's Kind - errors.Wrapf preserves the original
// error for errors.Unwrap/As and codecerr.Is to see through.
func errorsWrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
