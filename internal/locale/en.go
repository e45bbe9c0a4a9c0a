package locale

var englishCatalog = Catalog{
	Lang: English,
	Metrics: map[string]MetricText{
		"headForward": {
			Name:           "Head Forward Distance",
			Description:    "Horizontal distance between ear and shoulder center.",
			Recommendation: "Perform chin tucks and chest stretches.",
			NormalNote:     "Maintain good habits.",
			SearchKeywords: "Forward Head Posture Exercises",
			Cues: []string{
				"Imagine a string pulling the back of your head upwards.",
				"Gently tuck your chin towards your neck (double chin position).",
				"Hold for 5 seconds, repeat 10 times.",
			},
		},
		"kyphosis": {
			Name:           "Thoracic Kyphosis",
			Description:    "Deviation of the upper torso from the vertical axis.",
			Recommendation: "Strengthen upper back muscles (rows, face pulls).",
			NormalNote:     "Keep it up!",
			SearchKeywords: "Kyphosis Correction Exercises",
			Cues: []string{
				"Squeeze your shoulder blades together and down.",
				"Open your chest towards the ceiling.",
				"Perform \"Wall Angels\" to improve thoracic mobility.",
			},
		},
		"shoulderImbalance": {
			Name:           "Shoulder Imbalance",
			Description:    "Height difference between left and right shoulders.",
			Recommendation: "Check for scoliosis or unilateral muscle tension.",
			NormalNote:     "Balanced shoulders.",
			SearchKeywords: "Uneven Shoulders Exercises",
			Cues: []string{
				"Relax the elevated shoulder and stretch the neck on that side.",
				"Strengthen the lower trapezius on the lower shoulder side.",
				"Avoid carrying heavy bags on only one shoulder.",
			},
		},
		"pelvicImbalance": {
			Name:           "Pelvic Imbalance",
			Description:    "Height difference between left and right hip bones.",
			Recommendation: "May indicate leg length discrepancy or hip muscle imbalance.",
			NormalNote:     "Balanced pelvis.",
			SearchKeywords: "Pelvic Tilt Correction",
			Cues: []string{
				"Perform side-lying hip abductions to strengthen glutes.",
				"Stretch the hip flexors on the higher hip side.",
				"Stand with weight evenly distributed on both feet.",
			},
		},
		"legAlignment": {
			Name:           "Leg Alignment",
			Description:    "Alignment of knees relative to ankles.",
			Recommendation: "Consult a specialist for corrective orthotics or exercises.",
			NormalNote:     "Good leg alignment.",
			SearchKeywords: "Leg Alignment Exercises",
			Cues: []string{
				"Strengthen the hip external rotators.",
				"Focus on knee tracking during squats (knees over toes).",
				"Check for foot over-pronation (flat feet).",
			},
		},
	},
	Leg: LegAlignmentText{
		KnockKneeName:    "X-Leg (Genu Valgum)",
		KnockKneeKeyword: "Knock Knees Exercises",
		BowLegName:       "O-Leg (Genu Varum)",
		BowLegKeyword:    "Bow Legs Exercises",
	},
	BMI: BMIText{
		Name:        "Body Mass Index",
		Description: "Weight relative to height, derived from your measurements.",
		Underweight: "Underweight. Increase caloric intake with strength training.",
		Normal:      "Healthy range. Maintain your current lifestyle.",
		Overweight:  "Slightly overweight. Add regular aerobic exercise.",
		Obese:       "Consult a professional for a structured weight management plan.",
		SevereObese: "Obesity range. Seek medical guidance before intense exercise.",
	},
	WHR: WHRText{
		Name:        "Waist-Hip Ratio",
		Description: "Ratio of waist to hip circumference, derived from your measurements.",
		Normal:      "Healthy fat distribution.",
		Mild:        "Slightly elevated. Watch abdominal fat with regular cardio.",
		Moderate:    "Elevated central fat. Combine diet control and core training.",
		Severe:      "High central obesity risk. Consult a professional.",
	},
	Plans: map[string]PlanTemplate{
		"headForward": {
			Name:        "Chin Tucks",
			Description: "Sit or stand straight. Gently glide your head straight back, creating a \"double chin\". Do not tilt your head up or down. Hold for 5 seconds, then release.",
			Duration:    "3 sets of 10 reps • 3 mins",
		},
		"kyphosis": {
			Name:        "Wall Angels",
			Description: "Stand with your back against a wall. Keep your head, upper back, and buttocks touching the wall. Raise your arms to 90 degrees, keeping elbows and wrists against the wall. Slowly slide your arms up and down.",
			Duration:    "3 sets of 12 reps • 5 mins",
		},
		"shoulderImbalance": {
			Name:        "Upper Trapezius Stretch",
			Description: "Sit or stand tall. Gently pull your ear towards your shoulder on the non-elevated side until you feel a stretch on the elevated side. Hold for 30 seconds.",
			Duration:    "3 sets per side • 3 mins",
		},
		"pelvicImbalance": {
			Name:        "Side-Lying Hip Abduction",
			Description: "Lie on your side with legs straight. Slowly lift your top leg towards the ceiling, keeping your pelvis stable. Lower it back down with control.",
			Duration:    "3 sets of 15 reps per side • 5 mins",
		},
		"legAlignment": {
			Name:        "Clamshells",
			Description: "Lie on your side with knees bent at 90 degrees. Keep your feet together and lift your top knee as high as you can without rotating your pelvis. Lower slowly.",
			Duration:    "3 sets of 15 reps per side • 5 mins",
		},
	},
	Conditions: map[string]string{
		"headForward":       "Cervical Spondylosis, Turtle Neck Syndrome",
		"kyphosis":          "Kyphosis, Round Shoulders, Upper Cross Syndrome",
		"shoulderImbalance": "Scoliosis, Muscle Tension Dysphonia",
		"pelvicImbalance":   "Pelvic Tilt, Lower Cross Syndrome, Gluteal Amnesia",
		"legAlignment":      "Knee Osteoarthritis, IT Band Syndrome",
	},
	Messages: Messages{
		NoPerson:    "No person detected in the image. Please ensure your full body is visible and well-lit.",
		FailAnalyze: "Failed to analyze image. Please try again.",
		FailInit:    "Failed to initialize AI engine.",
		CameraError: "Camera access denied.",
	},
}
