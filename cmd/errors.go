package cmd

import (
	"errors"

	"github.com/KaramelBytes/kbtool-cli/internal/knowledgebase"
	"github.com/KaramelBytes/kbtool-cli/internal/output"
)

// exitError maps domain errors onto CLI exit codes.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var ioErr *knowledgebase.IOError
	switch {
	case errors.Is(err, knowledgebase.ErrInvalidArguments):
		return output.NewUserErrorWithCause(err.Error(), err)
	case errors.As(err, &ioErr):
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
	return err
}
