package locale

var messages = map[Lang]map[string]string{
	EN: {
		// activity log
		"activity_title":       "Activity Logs",
		"activity_action":      "Action",
		"activity_description": "Description",
		"activity_type":        "Type",
		"activity_time":        "Time",
		"activity_empty":       "No activity logs found",
		"action_created":       "Created",
		"action_updated":       "Updated",

		"entity_profile":                    "Profile",
		"entity_general_information":        "General Info",
		"entity_office_information":         "Office Info",
		"entity_marital_information":        "Marital Status",
		"entity_children_information":       "Children Info",
		"entity_educational_qualifications": "Education",
		"entity_domestic_trainings":         "Domestic Training",
		"entity_foreign_trainings":          "Foreign Training",
		"entity_foreign_travels":            "Foreign Travel",
		"entity_foreign_postings":           "Foreign Posting",
		"entity_lien_deputations":           "Lien/Deputation",

		"created_profile":                    "Created profile",
		"updated_profile":                    "Updated profile",
		"created_general_information":        "Added general information",
		"updated_general_information":        "Updated general information",
		"created_office_information":         "Added office information",
		"updated_office_information":         "Updated office information",
		"created_marital_information":        "Added marital information",
		"updated_marital_information":        "Updated marital information",
		"created_children_information":       "Added children information",
		"updated_children_information":       "Updated children information",
		"created_educational_qualifications": "Added educational qualification",
		"updated_educational_qualifications": "Updated educational qualification",
		"created_domestic_trainings":         "Added domestic training",
		"updated_domestic_trainings":         "Updated domestic training",
		"created_foreign_trainings":          "Added foreign training",
		"updated_foreign_trainings":          "Updated foreign training",
		"created_foreign_travels":            "Added foreign travel record",
		"updated_foreign_travels":            "Updated foreign travel record",
		"created_foreign_postings":           "Added foreign posting",
		"updated_foreign_postings":           "Updated foreign posting",
		"created_lien_deputations":           "Added lien/deputation",
		"updated_lien_deputations":           "Updated lien/deputation",

		// biography
		"bio_annexure": "Annexure-10",
		"bio_title":    "Gazetted Government Employees' E-Job Biography",
		"bio_subtitle": "(For Officers)",
		"bio_section1": "Official Information:",
		"bio_section2": "General Information:",
		"bio_section3": "Marital Status:",
		"bio_section4": "Children Information:",
		"bio_section5": "Educational Qualification:",
		"bio_no_data":  "No data",

		"s1_a":          "(a) Ministry/Division",
		"s1_b":          "(b) Directorate/Department Name",
		"s1_c":          "(c) Government Employee ID (if any)",
		"s1_d":          "(d) National ID Number",
		"s1_e":          "(e) TIN (if any)",
		"s1_f":          "(f) Birth Place",
		"s1_f_village":  "Village/Ward",
		"s1_f_upazila":  "Upazila/Thana",
		"s1_f_district": "District",

		"s2_a":        "(a) Name",
		"s2_b":        "(b) Date of Birth",
		"s2_c":        "(c) Father's Name",
		"s2_d":        "(d) Mother's Name",
		"s2_e":        "(e) Permanent Address",
		"s2_f":        "(f) Present Address",
		"s2_g":        "(g) Home District",
		"s2_h":        "(h) Government Service Joining Date",
		"s2_i":        "(i) Current Position Joining Date",
		"s2_j":        "(j) Current Designation, Workplace Address & Phone:",
		"s2_k":        "(k) Confirmation Order No. & Date:",
		"s2_l":        "(l) Blood Group",
		"s2_m":        "(m) Special Illness Information",
		"s2_n":        "(n) Phone Number",
		"s2_n_mobile": "Mobile:",
		"s2_n_email":  "Email",

		"s3_a": "(a) Married/Unmarried/Widow/Divorced/Widower",
		"s3_b": "(b) Spouse Name",
		"s3_c": "(c) Spouse Occupation",
		"s3_d": "(d) Spouse National ID",
		"s3_e": "(e) Spouse TIN (if any)",
		"s3_f": "(f) Spouse Home District",
		"s3_g": "(g) Spouse Employee ID (if govt. employee):",
		"s3_h": "(h) Spouse Designation, Office Address & Phone (if govt. employee)",
		"s3_i": "(i) Multiple Spouses Name & Address:",

		"s4_serial":  "Sl. No.",
		"s4_name":    "Name",
		"s4_dob":     "Date of Birth",
		"s4_gender":  "Gender",
		"s4_age":     "Age",
		"s4_marital": "Marital Status",
		"s4_special": "Special/Disabled",

		"s5_serial":      "Sl. No.",
		"s5_degree":      "Degree Name",
		"s5_institution": "Institution Name",
		"s5_board":       "Board/University",
		"s5_subject":     "Subject",
		"s5_year":        "Passing Year",
		"s5_division":    "Division/Class",

		"s6a_title":               "(a) Domestic Training:",
		"s6a_serial":              "Sl. No.",
		"s6a_course":              "Course Name",
		"s6a_institution":         "Training Institution Name",
		"s6a_duration":            "Training Duration",
		"s6a_funding":             "Funding Source",
		"s6b_title":               "(b) Foreign Training:",
		"s6b_institution_country": "Training Institution & Country Name",
		"s6c_title":               "(c) Foreign Travel Information:",
		"s6c_purpose":             "Purpose of Travel (Workshop/Seminar/Study Tour/Others)",
		"s6c_duration":            "Duration",
		"s6c_country":             "Country",
		"s6d_title":               "(d) Foreign Posting:",
		"s6d_designation":         "Designation",
		"s6d_institution":         "Institution Name",
		"s6d_country":             "Country Name",
		"s6d_duration":            "Duration",
		"s6d_funding":             "Funding Source",
		"s6e_title":               "(e) Lien/Deputation:",

		"married":   "Married",
		"unmarried": "Unmarried",
		"widow":     "Widow",
		"divorced":  "Divorced",
		"widower":   "Widower",
		"male":      "Male",
		"female":    "Female",
	},
	BN: {
		"activity_title":       "কার্যক্রম লগ",
		"activity_action":      "কার্যক্রম",
		"activity_description": "বিবরণ",
		"activity_type":        "ধরন",
		"activity_time":        "সময়",
		"activity_empty":       "কোনো কার্যক্রম লগ পাওয়া যায়নি",
		"action_created":       "তৈরি করা হয়েছে",
		"action_updated":       "আপডেট করা হয়েছে",

		"entity_profile":                    "প্রোফাইল",
		"entity_general_information":        "সাধারণ তথ্য",
		"entity_office_information":         "দাপ্তরিক তথ্য",
		"entity_marital_information":        "বৈবাহিক অবস্থা",
		"entity_children_information":       "সন্তানদের তথ্য",
		"entity_educational_qualifications": "শিক্ষাগত যোগ্যতা",
		"entity_domestic_trainings":         "দেশীয় প্রশিক্ষণ",
		"entity_foreign_trainings":          "বিদেশী প্রশিক্ষণ",
		"entity_foreign_travels":            "বিদেশ ভ্রমণ",
		"entity_foreign_postings":           "বিদেশী পোস্টিং",
		"entity_lien_deputations":           "লিয়েন/প্রেষণ",

		"created_profile":                    "প্রোফাইল তৈরি করা হয়েছে",
		"updated_profile":                    "প্রোফাইল আপডেট করা হয়েছে",
		"created_general_information":        "সাধারণ তথ্য যোগ করা হয়েছে",
		"updated_general_information":        "সাধারণ তথ্য আপডেট করা হয়েছে",
		"created_office_information":         "দাপ্তরিক তথ্য যোগ করা হয়েছে",
		"updated_office_information":         "দাপ্তরিক তথ্য আপডেট করা হয়েছে",
		"created_marital_information":        "বৈবাহিক তথ্য যোগ করা হয়েছে",
		"updated_marital_information":        "বৈবাহিক তথ্য আপডেট করা হয়েছে",
		"created_children_information":       "সন্তানদের তথ্য যোগ করা হয়েছে",
		"updated_children_information":       "সন্তানদের তথ্য আপডেট করা হয়েছে",
		"created_educational_qualifications": "শিক্ষাগত যোগ্যতা যোগ করা হয়েছে",
		"updated_educational_qualifications": "শিক্ষাগত যোগ্যতা আপডেট করা হয়েছে",
		"created_domestic_trainings":         "দেশীয় প্রশিক্ষণ যোগ করা হয়েছে",
		"updated_domestic_trainings":         "দেশীয় প্রশিক্ষণ আপডেট করা হয়েছে",
		"created_foreign_trainings":          "বিদেশী প্রশিক্ষণ যোগ করা হয়েছে",
		"updated_foreign_trainings":          "বিদেশী প্রশিক্ষণ আপডেট করা হয়েছে",
		"created_foreign_travels":            "বিদেশ ভ্রমণ রেকর্ড যোগ করা হয়েছে",
		"updated_foreign_travels":            "বিদেশ ভ্রমণ রেকর্ড আপডেট করা হয়েছে",
		"created_foreign_postings":           "বিদেশী পোস্টিং যোগ করা হয়েছে",
		"updated_foreign_postings":           "বিদেশী পোস্টিং আপডেট করা হয়েছে",
		"created_lien_deputations":           "লিয়েন/প্রেষণ যোগ করা হয়েছে",
		"updated_lien_deputations":           "লিয়েন/প্রেষণ আপডেট করা হয়েছে",

		"bio_annexure": "সংযোজনী-১০",
		"bio_title":    "গেজেটেড সরকারি কর্মচারীগণের ই-চাকরি বৃত্তান্ত",
		"bio_subtitle": "(কর্মকর্তাগণের জন্য)",
		"bio_section1": "দাপ্তরিক তথ্যাবলি:",
		"bio_section2": "সাধারণ তথ্যাবলি:",
		"bio_section3": "বৈবাহিক অবস্থা:",
		"bio_section4": "ছেলে/মেয়েদের জন্য:",
		"bio_section5": "শিক্ষাগত যোগ্যতা:",
		"bio_no_data":  "কোন তথ্য নেই",

		"s1_a":          "(ক) মন্ত্রণালয়/বিভাগ",
		"s1_b":          "(খ) অধিদপ্তর/পরিদপ্তর/দপ্তরের নাম",
		"s1_c":          "(গ) সরকারি কর্মচারীর পরিচিতি নম্বর (যদি থাকে)",
		"s1_d":          "(ঘ) সরকারি কর্মচারীর জাতীয় পরিচয় নম্বর",
		"s1_e":          "(ঙ) সরকারি কর্মচারীর টিআইএন (যদি থাকে)",
		"s1_f":          "(চ) জন্ম স্থান",
		"s1_f_village":  "গ্রাম/ওয়ার্ড",
		"s1_f_upazila":  "উপজেলা/থানা",
		"s1_f_district": "জেলা",

		"s2_a":        "(ক) নাম",
		"s2_b":        "(খ) জন্ম তারিখ",
		"s2_c":        "(গ) পিতার নাম",
		"s2_d":        "(ঘ) মাতার নাম",
		"s2_e":        "(ঙ) স্থায়ী ঠিকানা",
		"s2_f":        "(চ) বর্তমান ঠিকানা",
		"s2_g":        "(ছ) নিজ জেলা",
		"s2_h":        "(জ) সরকারি চাকরিতে যোগদানের তারিখ",
		"s2_i":        "(ঝ) বর্তমান পদে যোগদানের তারিখ",
		"s2_j":        "(ঞ) বর্তমান পদবি, কর্মস্থলের ঠিকানা ও ফোন নম্বর:",
		"s2_k":        "(ট) চাকরি স্থায়ীকরণের সরকারি আদেশ নং ও তারিখ:",
		"s2_l":        "(ঠ) রক্তের গ্রুপ",
		"s2_m":        "(ড) বিশেষ কোন রোগে ভুগিলে তাহার তথ্য",
		"s2_n":        "(ঢ) ফোন নম্বর",
		"s2_n_mobile": "মোবাইল ফোন:",
		"s2_n_email":  "ই-মেইল",

		"s3_a": "(ক) বিবাহিত/অবিবাহিত/বিধবা/তালাকপ্রাপ্ত/বিপত্নীক",
		"s3_b": "(খ) স্বামী/স্ত্রীর নাম",
		"s3_c": "(গ) স্বামী/স্ত্রীর পেশা",
		"s3_d": "(ঘ) স্বামী/স্ত্রীর জাতীয় পরিচয় নম্বর",
		"s3_e": "(ঙ) স্বামী/স্ত্রীর টিআইএন (যদি থাকে)",
		"s3_f": "(চ) স্বামী/স্ত্রীর নিজ জেলা",
		"s3_g": "(ছ) স্বামী/স্ত্রী সরকারি কর্মকর্তা/কর্মচারী হইলে পরিচিতি নম্বর:",
		"s3_h": "(জ) স্বামী/স্ত্রী সরকারি কর্মকর্তা/কর্মচারী হইলে বর্তমান পদবি ও অফিসের ঠিকানা এবং ফোন নম্বর",
		"s3_i": "(ঝ) একাধিক স্ত্রী থাকিলে তাহাদের নাম ও ঠিকানা:",

		"s4_serial":  "ক্র. নং",
		"s4_name":    "নাম",
		"s4_dob":     "জন্ম তারিখ",
		"s4_gender":  "ছেলে/মেয়ে",
		"s4_age":     "বয়স",
		"s4_marital": "বিবাহিত/অবিবাহিত",
		"s4_special": "বিশেষ/প্রতিবন্ধী স্থান",

		"s5_serial":      "ক্র. নং",
		"s5_degree":      "ডিগ্রীর নাম",
		"s5_institution": "শিক্ষা প্রতিষ্ঠানের নাম",
		"s5_board":       "বোর্ড/বিশ্ববিদ্যালয় নাম",
		"s5_subject":     "বিষয়",
		"s5_year":        "পাশের সন",
		"s5_division":    "ব্রাঞ্চ/ডিভিশন/শ্রেণী",

		"s6a_title":               "(ক) দেশে প্রশিক্ষণ:",
		"s6a_serial":              "ক্র: নং",
		"s6a_course":              "কোর্সের নাম",
		"s6a_institution":         "প্রশিক্ষণ প্রতিষ্ঠানের নাম",
		"s6a_duration":            "প্রশিক্ষণের সময়কাল",
		"s6a_funding":             "অর্থায়নের উৎস",
		"s6b_title":               "(খ) বৈদেশিক প্রশিক্ষণ:",
		"s6b_institution_country": "প্রশিক্ষণ প্রতিষ্ঠানের ও দেশের নাম",
		"s6c_title":               "(গ) বিদেশ ভ্রমণ সংক্রান্ত তথ্য:",
		"s6c_purpose":             "ভ্রমণের উদ্দেশ্য (ওয়ার্কশপ/সেমিনার/শিক্ষা সফর/অন্যান্য)",
		"s6c_duration":            "সময়কাল",
		"s6c_country":             "দেশ",
		"s6d_title":               "(ঘ) বিদেশ পোস্টিং:",
		"s6d_designation":         "পদবি",
		"s6d_institution":         "প্রতিষ্ঠানের নাম",
		"s6d_country":             "দেশের নাম",
		"s6d_duration":            "সময়কাল",
		"s6d_funding":             "অর্থায়নের উৎস",
		"s6e_title":               "(ঙ) লিয়েন/প্রেষণ:",

		"married":   "বিবাহিত",
		"unmarried": "অবিবাহিত",
		"widow":     "বিধবা",
		"divorced":  "তালাকপ্রাপ্ত",
		"widower":   "বিপত্নীক",
		"male":      "ছেলে",
		"female":    "মেয়ে",
	},
}
