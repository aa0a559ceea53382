package errors_test

import (
	"errors"
	"testing"

	pkgErrors "admin-console/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(409, "already busy")
	if err.Error() != "already busy" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	var wrapped error = err
	var httpErr *pkgErrors.HTTPError
	if !errors.As(wrapped, &httpErr) || httpErr.Code != 409 {
		t.Errorf("expected errors.As to recover code 409, got %+v", httpErr)
	}
}
