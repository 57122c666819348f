package main

import "github.com/Dillon-Roller/CSC-215-Projects/internal/pipeline"

const (
	ExitCodeInput            = 1
	ExitCodeAllocation       = 2
	ExitCodeInvalidOperation = 3
	ExitCodeDegenerate       = 4
	ExitCodeOutput           = 5
	ExitCodeUnknown          = 6
)

type ExitCodeError struct {
	originalError error
	exitCode      int
}

func (e *ExitCodeError) Error() string {
	return e.originalError.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.originalError
}

func (e *ExitCodeError) ExitCode() int {
	return e.exitCode
}

func newExitCodeError(err error, code int) *ExitCodeError {
	return &ExitCodeError{
		originalError: err,
		exitCode:      code,
	}
}

// withExitCode attaches the exit code matching the pipeline error class.
func withExitCode(err error) error {
	if err == nil {
		return nil
	}
	switch pipeline.Classify(err) {
	case pipeline.ClassInput:
		return newExitCodeError(err, ExitCodeInput)
	case pipeline.ClassAllocation:
		return newExitCodeError(err, ExitCodeAllocation)
	case pipeline.ClassOperation:
		return newExitCodeError(err, ExitCodeInvalidOperation)
	case pipeline.ClassDegenerate:
		return newExitCodeError(err, ExitCodeDegenerate)
	case pipeline.ClassOutput:
		return newExitCodeError(err, ExitCodeOutput)
	}
	return newExitCodeError(err, ExitCodeUnknown)
}
