package security

import "github.com/maos-project/maos/internal/errs"

// ValidateResourceUsage compares observed memory/time usage against
// ceilings, reporting ResourceLimit on the first violation (§4.2).
func ValidateResourceUsage(memoryBytes, executionTimeMS, memoryLimit, timeLimit int64) *errs.Error {
	if memoryBytes > memoryLimit {
		return errs.ResourceLimitError("memory", memoryLimit, memoryBytes)
	}
	if executionTimeMS > timeLimit {
		return errs.ResourceLimitError("execution_time", timeLimit, executionTimeMS)
	}
	return nil
}
