// Package errors provides the structured error type used across operator-codex.
//
// Errors carry a Code, a message, an optional cause and free-form metadata:
//
//	err := errors.NotFoundf("table %s not found", name).WithTable(name)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := bank.Table(ctx, name); err != nil {
//	    return errors.Wrapf(err, "failed to load %s", name)
//	}
//
// Changing the code when a lower layer's failure means something else here:
//
//	if err := json.Unmarshal(raw, &v); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeDataLoss, "undecodable table")
//	}
//
// # Codes
//
//   - NotFound: a table or operator does not exist
//   - InvalidArgument: bad input or configuration
//   - FailedPrecondition: a raw record breaks the structural contract
//     (no phases, unknown profession or sub-profession)
//   - DataLoss: a raw table could not be decoded
//   - Unavailable: a backing store could not be reached
//   - Internal: anything else
//
// # Layer guidelines
//
// Source banks return NotFound for missing tables and wrap I/O failures.
// The operator aggregator returns FailedPrecondition for broken core structure and
// stays lenient about every optional sub-record.
// The catalog orchestrator validates inputs and wraps bank errors with context.
// The CLI maps codes to exit statuses through Code.ExitCode.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("Root", cfg.Root, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
