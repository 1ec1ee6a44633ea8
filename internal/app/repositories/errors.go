package repositories

import (
	"fmt"

	"github.com/aegisone/campus/internal/pkg/dberrors"
)

// uniqueAs translates a unique-constraint violation into the domain conflict
// error; anything else is wrapped with context.
func uniqueAs(err, conflict error, msg string) error {
	if dberrors.IsUniqueViolation(err) {
		return conflict
	}
	return fmt.Errorf("%s: %w", msg, err)
}
