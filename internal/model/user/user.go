package user

import "time"

// DOB splits a date of birth into its display fields, matching the
// client-side signup form.
type DOB struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// EmergencyContact is a nominee the user can reach during a crisis.
type EmergencyContact struct {
	FullName      string `json:"fullName"`
	Relation      string `json:"relation"`
	ContactNumber string `json:"contactNumber"`
}

// PersonalInfo carries the medical/address profile attached to a user.
// It is stored as a subdocument and replaced wholesale on update.
type PersonalInfo struct {
	FirstName       string    `json:"firstName"`
	MiddleName      string    `json:"middleName,omitempty"`
	LastName        string    `json:"lastName"`
	Age             int       `json:"age"`
	BloodGroup      string    `json:"bloodGroup"`
	FlatNo          string    `json:"flatNo"`
	Area            string    `json:"area"`
	Landmark        string    `json:"landmark,omitempty"`
	Pincode         string    `json:"pincode"`
	City            string    `json:"city"`
	Email           string    `json:"email"`
	InsuranceNumber string    `json:"insuranceNumber,omitempty"`
	Height          float64   `json:"height,omitempty"`
	HeightUnit      string    `json:"heightUnit,omitempty"`
	Weight          float64   `json:"weight,omitempty"`
	WeightUnit      string    `json:"weightUnit,omitempty"`
	Allergies       string    `json:"allergies,omitempty"`
	Medication      string    `json:"medication,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// User is an account record. PINHash is the bcrypt digest of the login
// PIN; the raw PIN is never stored and the hash is never serialized.
type User struct {
	ID                string             `json:"id"`
	FullName          string             `json:"fullName"`
	DOB               DOB                `json:"dob"`
	Gender            string             `json:"gender"`
	MobileNumber      string             `json:"mobileNumber"`
	Email             string             `json:"email"`
	PINHash           string             `json:"-"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
	HostedEvents      []string           `json:"hostedEvents"`
	PersonalInfo      *PersonalInfo      `json:"personalInfo,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
}
