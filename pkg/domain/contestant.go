package domain

import "time"

// Gender is the gender encoded in the 13th digit of a national ID
// (odd digit means male, even means female).
type Gender string

const (
	// GenderMale indicates an odd gender digit.
	GenderMale Gender = "MALE"
	// GenderFemale indicates an even gender digit.
	GenderFemale Gender = "FEMALE"
)

// Contestant is a single registered participant of the memorization contest.
// It is keyed by the national ID, which never changes after registration.
type Contestant struct {
	// FullName is the contestant's quadripartite name as submitted.
	FullName string `json:"fullName"`
	// NationalID is the 14-digit national identifier and the unique key of the record.
	NationalID string `json:"nationalId"`
	// PhoneNumber is the 11-digit contact number.
	PhoneNumber string `json:"phoneNumber"`
	// Level is the chosen memorization level. Empty when the contestant
	// registered on the golden-psalms track only.
	Level string `json:"level"`
	// Center is the contest center the contestant belongs to.
	Center string `json:"center"`
	// ExamCommittee is the committee assignment; empty when committees are not in use.
	ExamCommittee string `json:"examCommittee,omitempty"`
	// Address is the free-form detailed address.
	Address string `json:"address"`
	// GoldenPsalms marks participation in the level-independent golden-psalms track.
	GoldenPsalms bool `json:"goldenPsalms"`

	// Governorate is derived from the national ID at registration time.
	Governorate string `json:"governorate"`
	// BirthDate is derived from the national ID at registration time.
	BirthDate time.Time `json:"birthDate"`
	// Gender is derived from the national ID at registration time.
	Gender Gender `json:"gender"`

	// CreatedAt is assigned by the record store on insert.
	CreatedAt time.Time `json:"createdAt"`
}
