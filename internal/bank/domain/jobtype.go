package domain

import "errors"

// ErrInvalidJobType reports an unknown job type name.
var ErrInvalidJobType = errors.New("domain: invalid job type")

// JobType is the closed employment-category enum used by mirrors and
// decisions. Fairness analytics groups decisions by this value.
type JobType string

const (
	JobSalaried   JobType = "salaried"
	JobBusiness   JobType = "business"
	JobFreelance  JobType = "freelance"
	JobStudent    JobType = "student"
	JobUnemployed JobType = "unemployed"
)

// JobTypes returns every job type in declaration order. Fairness metrics
// rely on this order to break rate ties deterministically, so it must not
// be reordered.
func JobTypes() []JobType {
	return []JobType{JobSalaried, JobBusiness, JobFreelance, JobStudent, JobUnemployed}
}

// ParseJobType validates a job type name coming off the wire.
func ParseJobType(s string) (JobType, error) {
	switch JobType(s) {
	case JobSalaried, JobBusiness, JobFreelance, JobStudent, JobUnemployed:
		return JobType(s), nil
	}
	return "", ErrInvalidJobType
}
