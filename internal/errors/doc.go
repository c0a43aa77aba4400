// Package errors provides structured errors for rpg-party.
//
// Every error carries a Code, a message, an optional cause and metadata.
// Repositories return NotFound and AlreadyExists, orchestrators return
// InvalidArgument for bad input, and party composition returns
// StructuralCycle when a party would end up containing itself.
//
//	err := errors.NotFoundf("character %s not found", id).
//	    WithMeta("character_id", id)
//
//	if errors.IsStructuralCycle(err) {
//	    // refuse the membership change
//	}
//
// Config structs validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 100, vb)
//	return vb.Build()
//
// The CLI turns a Code into a process exit status with Code.ExitCode.
package errors
