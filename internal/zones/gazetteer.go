package zones

// defaultZones is the dispatch gazetteer: every delivery zone with the
// exact area spellings that appear in uploaded sheets, including the
// common variants with and without the definite article. The table is
// closed and hand-curated; unlisted spellings fall through to OtherZone.
var defaultZones = []Zone{
	{Name: "منطقة العاصمة", Cities: []string{
		"مدينة الكويت", "الكويت", "شرق", "القبلة", "المرقاب", "الصالحية",
		"دسمان", "بنيد القار", "الصوابر", "جبلة", "الوطية",
	}},
	{Name: "منطقة الدسمة", Cities: []string{
		"الدسمة", "دسمة", "الدعية", "المنصورية", "ضاحية عبدالله السالم",
		"عبدالله السالم", "الشامية", "النزهة", "الفيحاء", "القادسية",
	}},
	{Name: "منطقة كيفان", Cities: []string{
		"كيفان", "الخالدية", "خالدية", "العديلية", "عديلية", "الروضة",
		"روضة", "قرطبة", "السرة", "اليرموك",
	}},
	{Name: "منطقة الشويخ", Cities: []string{
		"الشويخ", "شويخ", "الشويخ الصناعية", "الشويخ السكنية", "الري",
		"غرناطة", "الصناعية",
	}},
	{Name: "منطقة الصليبيخات", Cities: []string{
		"الصليبيخات", "صليبيخات", "الدوحة", "النهضة", "جابر الأحمد",
		"جابر الاحمد", "القيروان", "شمال غرب الصليبيخات",
	}},
	{Name: "منطقة حولي", Cities: []string{
		"حولي", "ميدان حولي", "النقرة", "شارع تونس", "شارع المثنى",
		"بيان", "مشرف",
	}},
	{Name: "منطقة السالمية", Cities: []string{
		"السالمية", "سالمية", "سالميه", "شارع سالم المبارك", "الراس",
		"البدع", "أولمبيا",
	}},
	{Name: "منطقة الرميثية", Cities: []string{
		"الرميثية", "رميثية", "الجابرية", "جابرية", "سلوى", "الشعب",
		"شعب البحري",
	}},
	{Name: "منطقة جنوب السرة", Cities: []string{
		"جنوب السرة", "الزهراء", "الشهداء", "حطين", "السلام", "الصديق",
		"صباح السالم غرب",
	}},
	{Name: "منطقة خيطان", Cities: []string{
		"خيطان", "خيطان الجنوبية", "جنوب خيطان", "العارضية",
		"العارضية الصناعية", "الفردوس", "فردوس",
	}},
	{Name: "منطقة الفروانية", Cities: []string{
		"الفروانية", "فروانية", "جليب الشيوخ", "الجليب", "الرقعي",
		"عارضية المعارض", "الضجيج",
	}},
	{Name: "منطقة العمرية", Cities: []string{
		"العمرية", "عمرية", "الرابية", "إشبيلية", "اشبيلية", "الأندلس",
		"الاندلس", "صباح الناصر",
	}},
	{Name: "منطقة الجهراء", Cities: []string{
		"الجهراء", "جهراء", "القصر", "النعيم", "النسيم", "الواحة",
		"تيماء", "العيون",
	}},
	{Name: "منطقة سعد العبدالله", Cities: []string{
		"سعد العبدالله", "مدينة سعد العبدالله", "الصليبية",
		"الصليبية الزراعية", "أمغرة", "امغرة", "كبد",
	}},
	{Name: "منطقة الأحمدي", Cities: []string{
		"الأحمدي", "الاحمدي", "شرق الأحمدي", "شرق الاحمدي", "الظهر",
		"وسط الأحمدي", "ميناء الأحمدي",
	}},
	{Name: "منطقة الفحيحيل", Cities: []string{
		"الفحيحيل", "فحيحيل", "المنقف", "منقف", "أبو حليفة", "ابو حليفة",
		"الصباحية", "المهبولة",
	}},
	{Name: "منطقة الرقة", Cities: []string{
		"الرقة", "رقة", "هدية", "جابر العلي", "العقيلة", "الفنطاس",
		"فنطاس",
	}},
	{Name: "منطقة فهد الأحمد", Cities: []string{
		"فهد الأحمد", "فهد الاحمد", "علي صباح السالم", "أم الهيمان",
		"ام الهيمان", "الشعيبة",
	}},
	{Name: "منطقة صباح السالم", Cities: []string{
		"صباح السالم", "المسيلة", "أبو فطيرة", "ابو فطيرة", "الفنيطيس",
		"المسايل", "أبو الحصانية", "ابو الحصانية",
	}},
	{Name: "منطقة مبارك الكبير", Cities: []string{
		"مبارك الكبير", "القرين", "العدان", "القصور", "صبحان",
		"غرب أبو فطيرة",
	}},
	{Name: "منطقة الوفرة", Cities: []string{
		"الوفرة", "وفرة", "الخيران", "خيران", "بنيدر", "الزور",
		"النويصيب",
	}},
}

var defaultGazetteer = New(defaultZones)

// Default returns the process-wide gazetteer compiled from the static
// zone table above.
func Default() *Gazetteer {
	return defaultGazetteer
}
