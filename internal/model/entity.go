package model

// Role values a Supervisor account may hold. Route access is gated on these.
const (
	RoleAdmin              = "admin"
	RoleManager            = "manager"
	RoleSupervisor         = "supervisor"
	RoleCoach              = "coach"
	RoleCulturalSupervisor = "cultural_supervisor"
	RoleKeeper             = "keeper"
	RoleEmployee           = "employee"
)

// PlanStatus is the lifecycle state of a ProgramPlan.
type PlanStatus string

const (
	PlanPending     PlanStatus = "pending"
	PlanInProgress  PlanStatus = "in_progress"
	PlanExecuted    PlanStatus = "executed"
	PlanNotExecuted PlanStatus = "not_executed"
)

// Member approval states.
const (
	MemberPending  = "pending"
	MemberActive   = "active"
	MemberRejected = "rejected"
)

type Supervisor struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Image     string `json:"image"`
	Signature string `json:"signature,omitempty"`
	Password  string `json:"password,omitempty"`
}

type ProgramPlan struct {
	ID                string     `gorm:"primaryKey" json:"id"`
	SupervisorID      string     `json:"supervisor_id"`
	SupervisorName    string     `json:"supervisor_name"`
	MonthYear         string     `json:"month_year"` // always Date[:7]
	Date              string     `gorm:"type:date" json:"date"`
	ProgramName       string     `json:"program_name"`
	Domain            string     `json:"domain"`
	Duration          string     `json:"duration"`
	TargetAudience    string     `json:"target_audience"`
	ParticipantsCount int        `json:"participants_count"`
	Budget            float64    `json:"budget"`
	ExecutorName      string     `json:"executor_name"`
	Status            PlanStatus `json:"status"`
	Notes             string     `json:"notes,omitempty"`
}

type ProgramReport struct {
	ID                string   `gorm:"primaryKey" json:"id"`
	ReportNumber      string   `json:"report_number"`
	PlanID            string   `json:"plan_id"`
	ProgramName       string   `json:"program_name"`
	Domain            string   `json:"domain"`
	Date              string   `gorm:"type:date" json:"date"`
	TargetAudience    string   `json:"target_audience"`
	ParticipantsCount int      `json:"participants_count"`
	Budget            float64  `json:"budget"`
	Objectives        string   `json:"objectives"`
	Description       string   `json:"description"`
	Images            []string `gorm:"serializer:json" json:"images"` // up to 4
	ExecutorName      string   `json:"executor_name"`
	ManagerName       string   `json:"manager_name"`
	ExecutorSignature string   `json:"executor_signature,omitempty"`
	ManagerSignature  string   `json:"manager_signature,omitempty"`
}

// ActivityRow is one line of a DailyReport's activities table.
type ActivityRow struct {
	Activity      string `json:"activity"`
	Beneficiaries int    `json:"beneficiaries"`
}

type DailyReport struct {
	ID              string        `gorm:"primaryKey" json:"id"`
	ReportDate      string        `gorm:"type:date" json:"report_date"`
	DayName         string        `json:"day_name"`
	ClubName        string        `json:"club_name"`
	StaffNames      string        `json:"staff_names"`
	StaffCount      int           `json:"staff_count"`
	DailyAttendance int           `json:"daily_attendance"`
	RegisteredCount int           `json:"registered_count"`
	Activities      []ActivityRow `gorm:"serializer:json" json:"activities"` // 6 slots
	Challenges      string        `json:"challenges"`
	Recommendations string        `json:"recommendations"`
	Images          []string      `gorm:"serializer:json" json:"images"` // up to 3
}

type Member struct {
	ID               string `gorm:"primaryKey" json:"id"`
	MembershipNumber string `json:"membership_number"`

	FullName    string `json:"full_name"`
	BirthDate   string `gorm:"type:date" json:"birth_date"`
	NationalID  string `json:"national_id"`
	Nationality string `json:"nationality"`
	City        string `json:"city,omitempty"`
	Gender      string `json:"gender,omitempty"`

	Phone          string `json:"phone"`
	GuardianPhone  string `json:"guardian_phone,omitempty"`
	EmergencyPhone string `json:"emergency_phone,omitempty"`
	Address        string `json:"address"`
	Email          string `json:"email,omitempty"`
	HasSiblings    bool   `json:"has_siblings"`
	SiblingsCount  int    `json:"siblings_count"`

	ChronicDiseases string `json:"chronic_diseases"`
	Allergies       string `json:"allergies,omitempty"`
	Injuries        string `json:"injuries,omitempty"`
	Medications     string `json:"medications,omitempty"`
	SpecialCare     string `json:"special_care,omitempty"`

	RegistrationGoals []string `gorm:"serializer:json" json:"registration_goals"`
	DesiredActivities []string `gorm:"serializer:json" json:"desired_activities"`
	OtherInterests    []string `gorm:"serializer:json" json:"other_interests"`

	MembershipType   string `json:"membership_type"`
	EducationLevel   string `json:"education_level"`
	Hobbies          string `json:"hobbies"`
	Skills           string `json:"skills"`
	Photo            string `json:"photo"`
	RegistrationDate string `gorm:"type:date" json:"registration_date"`

	Status            string `json:"status"` // pending until an admin decides
	MemberSignature   string `json:"member_signature,omitempty"`
	GuardianSignature string `json:"guardian_signature,omitempty"`
	GuardianName      string `json:"guardian_name,omitempty"`
}

type DistinguishedSupervisor struct {
	ID           string `gorm:"primaryKey" json:"id"`
	SupervisorID string `json:"supervisor_id"`
	MonthYear    string `json:"month_year"` // YYYY-MM, at most one record per bucket
	Notes        string `json:"notes,omitempty"`
	AwardImage   string `json:"award_image,omitempty"`
}

type SocialLinks struct {
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
}

type SliderImage struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// SystemSettings is a singleton row keyed by SettingsRowID.
type SystemSettings struct {
	ID           int           `gorm:"primaryKey" json:"id"`
	ClubName     string        `json:"club_name"`
	LogoURL      string        `json:"logo_url"`
	ClubMission  string        `json:"club_mission,omitempty"`
	SocialLinks  SocialLinks   `gorm:"serializer:json" json:"social_links"`
	SliderImages []SliderImage `gorm:"serializer:json" json:"slider_images"`
}

const SettingsRowID = 1

func (s *Supervisor) EntityID() string              { return s.ID }
func (p *ProgramPlan) EntityID() string             { return p.ID }
func (r *ProgramReport) EntityID() string           { return r.ID }
func (d *DailyReport) EntityID() string             { return d.ID }
func (m *Member) EntityID() string                  { return m.ID }
func (d *DistinguishedSupervisor) EntityID() string { return d.ID }

func (Supervisor) TableName() string              { return "supervisors" }
func (ProgramPlan) TableName() string             { return "plans" }
func (ProgramReport) TableName() string           { return "reports" }
func (DailyReport) TableName() string             { return "daily_reports" }
func (Member) TableName() string                  { return "members" }
func (DistinguishedSupervisor) TableName() string { return "distinguished_supervisors" }
func (SystemSettings) TableName() string          { return "settings" }
