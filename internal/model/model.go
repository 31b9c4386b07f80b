package model

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *Supervisor `json:"user"`
}

// MembershipApplication is the public registration form. Validated with
// go-playground/validator before it becomes a Member.
type MembershipApplication struct {
	FullName    string `json:"full_name" validate:"required,min=3"`
	BirthDate   string `json:"birth_date" validate:"required,datefmt"`
	NationalID  string `json:"national_id" validate:"required,min=5"`
	Nationality string `json:"nationality" validate:"required"`
	City        string `json:"city"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female"`

	Phone          string `json:"phone" validate:"required,min=7"`
	GuardianPhone  string `json:"guardian_phone"`
	EmergencyPhone string `json:"emergency_phone"`
	Address        string `json:"address" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	HasSiblings    bool   `json:"has_siblings"`
	SiblingsCount  int    `json:"siblings_count" validate:"min=0"`

	ChronicDiseases string `json:"chronic_diseases"`
	Allergies       string `json:"allergies"`
	Injuries        string `json:"injuries"`
	Medications     string `json:"medications"`
	SpecialCare     string `json:"special_care"`

	RegistrationGoals []string `json:"registration_goals"`
	DesiredActivities []string `json:"desired_activities"`
	OtherInterests    []string `json:"other_interests"`

	MembershipType string `json:"membership_type" validate:"required"`
	EducationLevel string `json:"education_level"`
	Hobbies        string `json:"hobbies"`
	Skills         string `json:"skills"`
	Photo          string `json:"photo"`

	MemberSignature   string `json:"member_signature"`
	GuardianSignature string `json:"guardian_signature"`
	GuardianName      string `json:"guardian_name"`
}

// DashboardStats is the public landing-view projection.
type DashboardStats struct {
	MembersCount     int            `json:"members_count"`
	SupervisorsCount int            `json:"supervisors_count"`
	TotalPrograms    int            `json:"total_programs"`
	ProgramsByDomain map[string]int `json:"programs_by_domain"`
	ProgramsByStatus map[string]int `json:"programs_by_status"`
}
