package locale

var chineseCatalog = Catalog{
	Lang: Chinese,
	Metrics: map[string]MetricText{
		"headForward": {
			Name:           "頭部前傾距離",
			Description:    "耳朵與肩膀中心點的水平距離。",
			Recommendation: "進行收下巴運動和胸部伸展。",
			NormalNote:     "保持良好習慣。",
			SearchKeywords: "頭部前傾 矯正運動",
			Cues: []string{
				"想像有一根繩子將你的後腦勺向上拉。",
				"輕輕將下巴收向脖子（做出雙下巴的動作）。",
				"保持 5 秒鐘，重複 10 次。",
			},
		},
		"kyphosis": {
			Name:           "胸椎後凸 (圓肩)",
			Description:    "上身軀幹偏離垂直軸的程度。",
			Recommendation: "加強上背部肌肉（如划船、面拉）。",
			NormalNote:     "做得好！",
			SearchKeywords: "圓肩駝背 矯正運動",
			Cues: []string{
				"向後向下擠壓肩胛骨。",
				"向天花板方向打開胸腔。",
				"進行「牆上天使」運動以改善胸椎活動度。",
			},
		},
		"shoulderImbalance": {
			Name:           "高低肩",
			Description:    "左右肩膀之間的高度差。",
			Recommendation: "檢查是否有脊椎側彎或單側肌肉緊繃。",
			NormalNote:     "肩膀平衡。",
			SearchKeywords: "高低肩 矯正運動",
			Cues: []string{
				"放鬆較高的一側肩膀，並伸展該側的頸部。",
				"加強較低一側肩膀的下斜方肌。",
				"避免長期單肩背負重物。",
			},
		},
		"pelvicImbalance": {
			Name:           "骨盆歪斜",
			Description:    "左右髖骨之間的高度差。",
			Recommendation: "可能表示長短腳或臀部肌肉不平衡。",
			NormalNote:     "骨盆平衡。",
			SearchKeywords: "骨盆歪斜 矯正運動",
			Cues: []string{
				"進行側臥抬腿以加強臀中肌。",
				"伸展較高一側骨盆的髖屈肌。",
				"站立時確保重心均勻分佈在雙腳。",
			},
		},
		"legAlignment": {
			Name:           "腿部排列",
			Description:    "膝蓋相對於腳踝的排列情況。",
			Recommendation: "諮詢專家進行矯正鞋墊或運動指導。",
			NormalNote:     "腿部排列良好。",
			SearchKeywords: "腿部排列 矯正運動",
			Cues: []string{
				"加強臀部外旋肌群。",
				"深蹲時注意膝蓋對準腳尖。",
				"檢查是否有足部過度內翻（扁平足）。",
			},
		},
	},
	Leg: LegAlignmentText{
		KnockKneeName:    "X型腿 (膝外翻)",
		KnockKneeKeyword: "X型腿 矯正運動",
		BowLegName:       "O型腿 (膝內翻)",
		BowLegKeyword:    "O型腿 矯正運動",
	},
	BMI: BMIText{
		Name:        "身體質量指數",
		Description: "由您提供的身高體重計算的體重指標。",
		Underweight: "體重過輕。建議增加熱量攝取並配合肌力訓練。",
		Normal:      "健康範圍。請維持目前的生活習慣。",
		Overweight:  "體重略高。建議增加規律的有氧運動。",
		Obese:       "建議諮詢專業人士，制定結構化的體重管理計劃。",
		SevereObese: "肥胖範圍。進行高強度運動前請先尋求醫療建議。",
	},
	WHR: WHRText{
		Name:        "腰臀比",
		Description: "由您提供的腰圍與臀圍計算的比值。",
		Normal:      "脂肪分佈健康。",
		Mild:        "略為偏高。建議透過規律有氧運動控制腹部脂肪。",
		Moderate:    "中央脂肪偏高。建議結合飲食控制與核心訓練。",
		Severe:      "中央肥胖風險高。建議諮詢專業人士。",
	},
	Plans: map[string]PlanTemplate{
		"headForward": {
			Name:        "收下巴運動 (Chin Tucks)",
			Description: "挺直坐姿或站姿。輕輕將頭部平移向後收，擠出「雙下巴」。注意不要上下傾斜頭部。保持 5 秒鐘，然後放鬆。",
			Duration:    "3 組，每組 10 次 • 3 分鐘",
		},
		"kyphosis": {
			Name:        "牆上天使 (Wall Angels)",
			Description: "背靠牆站立。讓後腦勺、上背部和臀部貼緊牆面。雙臂抬起呈 90 度，手肘和手腕貼牆。緩慢地將雙臂沿著牆面向上滑動再向下滑動。",
			Duration:    "3 組，每組 12 次 • 5 分鐘",
		},
		"shoulderImbalance": {
			Name:        "上斜方肌伸展 (Upper Trapezius Stretch)",
			Description: "挺直坐姿或站姿。將頭部輕輕偏向較低的一側肩膀，直到感覺較高一側的頸部有伸展感。保持 30 秒。",
			Duration:    "每側 3 組 • 3 分鐘",
		},
		"pelvicImbalance": {
			Name:        "側臥髖外展 (Side-Lying Hip Abduction)",
			Description: "側臥，雙腿伸直。保持骨盆穩定，緩慢將上方腿向天花板方向抬起。控制速度慢慢放下。",
			Duration:    "每側 3 組，每組 15 次 • 5 分鐘",
		},
		"legAlignment": {
			Name:        "蚌殼式 (Clamshells)",
			Description: "側臥，雙膝彎曲 90 度。雙腳併攏，盡可能抬高上方的膝蓋，同時保持骨盆不翻轉。緩慢放下。",
			Duration:    "每側 3 組，每組 15 次 • 5 分鐘",
		},
	},
	Conditions: map[string]string{
		"headForward":       "頸椎病、烏龜頸症候群",
		"kyphosis":          "駝背、圓肩、上交叉症候群",
		"shoulderImbalance": "脊柱側彎、單側肌肉勞損",
		"pelvicImbalance":   "骨盆歪斜、下交叉症候群、臀肌失憶症",
		"legAlignment":      "膝關節退化、髂脛束症候群 (ITBS)",
	},
	Messages: Messages{
		NoPerson:    "圖中未檢測到人像。請確保全身可見且光線充足。",
		FailAnalyze: "分析圖像失敗。請再試一次。",
		FailInit:    "初始化 AI 引擎失敗。",
		CameraError: "無法存取相機。",
	},
}
