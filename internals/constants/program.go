// file: internals/constants/program.go
package constants

// Program types determine the weekly slot pattern and the grading component
// set of a classroom. INSIDECLASSROOM covers grades 4-5, OUTSIDECLASSROOM
// grades 9-10.
const (
	ProgramInsideClassroom  = "INSIDECLASSROOM"
	ProgramOutsideClassroom = "OUTSIDECLASSROOM"
)

var ProgramTypes = []string{ProgramInsideClassroom, ProgramOutsideClassroom}

func IsValidProgramType(s string) bool {
	for _, p := range ProgramTypes {
		if p == s {
			return true
		}
	}
	return false
}

// HolidayReasonName is the built-in absence reason attached to sessions that
// fall on a holiday. It is provisioned on first use and never deleted.
const HolidayReasonName = "HOLIDAY"
