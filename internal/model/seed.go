package model

// Built-in seed collections used whenever the remote store is unreachable or
// not yet provisioned. Each call returns fresh instances so callers can treat
// the result like any other fetched collection.

// SeedAdminPassword is the password of the bootstrap admin account.
const SeedAdminPassword = "admin"

func SeedSupervisors() []*Supervisor {
	return []*Supervisor{
		{
			ID:       "admin_01",
			Name:     "System Administrator",
			Role:     RoleAdmin,
			Phone:    "0500000000",
			Email:    "admin@club.com",
			Image:    "https://ui-avatars.com/api/?name=System+Admin",
			Password: SeedAdminPassword,
		},
		{
			ID:       "sup_1",
			Name:     "Ahmed Mohammed Ali",
			Role:     RoleManager,
			Phone:    "0500000001",
			Email:    "manager@club.com",
			Image:    "https://ui-avatars.com/api/?name=Club+Manager",
			Password: "123",
		},
		{
			ID:    "sup_2",
			Name:  "Saeed Abdullah",
			Role:  RoleSupervisor,
			Phone: "0500000002",
			Email: "saeed@club.com",
			Image: "https://ui-avatars.com/api/?name=Saeed",
		},
		{
			ID:    "sup_3",
			Name:  "Khaled Omar",
			Role:  RoleSupervisor,
			Phone: "0500000003",
			Email: "khaled@club.com",
			Image: "https://ui-avatars.com/api/?name=Khaled",
		},
		{
			ID:    "sup_4",
			Name:  "Coach Yasser",
			Role:  RoleCoach,
			Phone: "0500000004",
			Email: "coach@club.com",
			Image: "https://ui-avatars.com/api/?name=Coach+Yasser",
		},
		{
			ID:    "sup_5",
			Name:  "Fahad Hassan",
			Role:  RoleCulturalSupervisor,
			Phone: "0500000005",
			Email: "cultural@club.com",
			Image: "https://ui-avatars.com/api/?name=Fahad",
		},
	}
}

func SeedPlans() []*ProgramPlan {
	return []*ProgramPlan{
		{
			ID:                "plan_101",
			SupervisorID:      "sup_2",
			SupervisorName:    "Saeed Abdullah",
			MonthYear:         "2023-10",
			Date:              "2023-10-15",
			ProgramName:       "Football League",
			Domain:            "sports",
			Duration:          "3 hours",
			TargetAudience:    "youth",
			ParticipantsCount: 40,
			Budget:            500,
			ExecutorName:      "Saeed Abdullah",
			Status:            PlanExecuted,
			Notes:             "completed successfully",
		},
		{
			ID:                "plan_102",
			SupervisorID:      "sup_3",
			SupervisorName:    "Khaled Omar",
			MonthYear:         "2023-10",
			Date:              "2023-10-20",
			ProgramName:       "Cultural Seminar",
			Domain:            "cultural",
			Duration:          "2 hours",
			TargetAudience:    "general",
			ParticipantsCount: 25,
			Budget:            200,
			ExecutorName:      "Khaled Omar",
			Status:            PlanPending,
		},
		{
			ID:                "plan_103",
			SupervisorID:      "sup_2",
			SupervisorName:    "Saeed Abdullah",
			MonthYear:         "2023-10",
			Date:              "2023-10-25",
			ProgramName:       "Running Contest",
			Domain:            "sports",
			Duration:          "1 hour",
			TargetAudience:    "children",
			ParticipantsCount: 30,
			Budget:            100,
			ExecutorName:      "Saeed Abdullah",
			Status:            PlanNotExecuted,
			Notes:             "postponed due to weather",
		},
	}
}

func SeedMembers() []*Member {
	return []*Member{
		{
			ID:               "member_1",
			MembershipNumber: "MEM-2023-0001",
			FullName:         "Fahad Salem",
			NationalID:       "1020304050",
			BirthDate:        "2005-05-15",
			Nationality:      "Saudi",
			EducationLevel:   "secondary",
			Address:          "Al Rawda district",
			Phone:            "0555555555",
			MembershipType:   "sports",
			Hobbies:          "football",
			Skills:           "teamwork",
			ChronicDiseases:  "none",
			Photo:            "https://ui-avatars.com/api/?name=Fahad+Salem",
			RegistrationDate: "2023-01-01",
			Status:           MemberActive,
		},
	}
}

func SeedSettings() *SystemSettings {
	return &SystemSettings{
		ID:          SettingsRowID,
		ClubName:    "Neighborhood Club",
		LogoURL:     "/static/logo.png",
		ClubMission: "A safe recreational and educational environment for the community.",
		SocialLinks: SocialLinks{Twitter: "#", Facebook: "#", Instagram: "#", YouTube: "#"},
		SliderImages: []SliderImage{
			{URL: "/static/slides/sports.jpg", Title: "Varied sports activities"},
			{URL: "/static/slides/lectures.jpg", Title: "Awareness and cultural lectures"},
			{URL: "/static/slides/club.jpg", Title: "A safe learning environment"},
		},
	}
}

// SeedAdmin returns the first admin-role account from the seed set, used for
// first-run bootstrap when the remote supervisor collection is empty.
func SeedAdmin() *Supervisor {
	for _, s := range SeedSupervisors() {
		if s.Role == RoleAdmin {
			return s
		}
	}
	return nil
}
