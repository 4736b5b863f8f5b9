package main

type stateDistricts struct {
	State     string
	Districts []string
}

var statesToDistricts = []stateDistricts{
	{"Andhra Pradesh", []string{"Guntur", "Krishna", "Nellore", "Prakasam", "Chittoor", "East Godavari", "West Godavari", "Kadapa", "Anantapur", "Kurnool", "Srikakulam", "Vizianagaram", "Visakhapatnam"}},
	{"Arunachal Pradesh", []string{"Papum Pare", "Changlang", "Lohit", "West Kameng", "East Siang", "Lower Subansiri"}},
	{"Assam", []string{"Kamrup", "Nagaon", "Cachar", "Dibrugarh", "Sonitpur", "Jorhat", "Golaghat", "Barpeta", "Dhubri"}},
	{"Bihar", []string{"Patna", "Gaya", "Muzaffarpur", "Bhagalpur", "Purnia", "Darbhanga", "Siwan", "Nalanda", "Aurangabad"}},
	{"Chhattisgarh", []string{"Raipur", "Bilaspur", "Durg", "Rajnandgaon", "Korba", "Janjgir-Champa", "Kanker"}},
	{"Delhi", []string{"North West Delhi", "South Delhi", "East Delhi", "West Delhi", "South West Delhi"}},
	{"Goa", []string{"North Goa", "South Goa"}},
	{"Gujarat", []string{"Surat", "Rajkot", "Banaskantha", "Mehsana", "Bhavnagar", "Junagadh", "Ahmedabad", "Vadodara", "Kheda", "Amreli", "Jamnagar", "Sabarkantha", "Patan"}},
	{"Haryana", []string{"Karnal", "Hisar", "Sirsa", "Sonipat", "Kurukshetra", "Ambala", "Rohtak", "Jind", "Bhiwani", "Yamunanagar"}},
	{"Himachal Pradesh", []string{"Kangra", "Mandi", "Shimla", "Solan", "Una", "Hamirpur", "Bilaspur", "Kullu", "Sirmaur"}},
	{"Jammu and Kashmir", []string{"Srinagar", "Baramulla", "Anantnag", "Pulwama", "Budgam", "Jammu", "Kathua", "Udhampur"}},
	{"Jharkhand", []string{"Ranchi", "Dhanbad", "Hazaribagh", "Giridih", "Palamu", "Bokaro", "Deoghar", "Dumka"}},
	{"Karnataka", []string{"Bengaluru Urban", "Bengaluru Rural", "Mysuru", "Tumakuru", "Davangere", "Shivamogga", "Belagavi", "Ballari", "Raichur", "Kalaburagi", "Vijayapura", "Bagalkote", "Mandya", "Haveri", "Koppal", "Chitradurga"}},
	{"Kerala", []string{"Palakkad", "Thrissur", "Kottayam", "Alappuzha", "Ernakulam", "Kollam", "Thiruvananthapuram", "Kozhikode", "Malappuram"}},
	{"Madhya Pradesh", []string{"Indore", "Bhopal", "Ujjain", "Dewas", "Sagar", "Chhindwara", "Sehore", "Ratlam", "Vidisha", "Hoshangabad"}},
	{"Maharashtra", []string{"Pune", "Nashik", "Nagpur", "Aurangabad", "Kolhapur", "Sangli", "Satara", "Solapur", "Ahmednagar", "Akola", "Amravati", "Buldhana", "Yavatmal", "Wardha", "Latur", "Osmanabad", "Beed"}},
	{"Manipur", []string{"Imphal East", "Imphal West", "Thoubal", "Bishnupur", "Churachandpur"}},
	{"Meghalaya", []string{"East Khasi Hills", "West Garo Hills", "West Jaintia Hills", "Ri Bhoi"}},
	{"Mizoram", []string{"Aizawl", "Lunglei", "Champhai", "Kolasib"}},
	{"Nagaland", []string{"Dimapur", "Kohima", "Mon", "Mokokchung", "Wokha"}},
	{"Odisha", []string{"Cuttack", "Puri", "Balasore", "Mayurbhanj", "Ganjam", "Khurda", "Kalahandi", "Sambalpur", "Bargarh", "Jajpur"}},
	{"Punjab", []string{"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Sangrur", "Bathinda", "Hoshiarpur", "Gurdaspur", "Ferozepur", "Moga"}},
	{"Rajasthan", []string{"Jaipur", "Alwar", "Ajmer", "Barmer", "Bikaner", "Jodhpur", "Kota", "Udaipur", "Chittorgarh", "Sikar", "Jhunjhunu"}},
	{"Sikkim", []string{"East Sikkim", "West Sikkim", "North Sikkim", "South Sikkim"}},
	{"Tamil Nadu", []string{"Thanjavur", "Coimbatore", "Erode", "Salem", "Tiruchirappalli", "Madurai", "Theni", "Dindigul", "Namakkal", "Tirunelveli"}},
	{"Telangana", []string{"Nalgonda", "Karimnagar", "Warangal", "Khammam", "Nizamabad", "Mahbubnagar", "Medak", "Adilabad", "Rangareddy"}},
	{"Tripura", []string{"West Tripura", "South Tripura", "Dhalai", "North Tripura"}},
	{"Uttar Pradesh", []string{"Lucknow", "Kanpur Nagar", "Varanasi", "Gorakhpur", "Agra", "Meerut", "Aligarh", "Bareilly", "Jhansi", "Prayagraj", "Sitapur", "Lakhimpur Kheri"}},
	{"Uttarakhand", []string{"Dehradun", "Haridwar", "Udham Singh Nagar", "Nainital", "Pauri Garhwal", "Tehri Garhwal"}},
	{"West Bengal", []string{"Hooghly", "Bardhaman", "Nadia", "Howrah", "Murshidabad", "North 24 Parganas", "South 24 Parganas", "Bankura", "Birbhum", "Cooch Behar", "Malda", "Jalpaiguri"}},
}

var crops = []string{
	"Rice", "Wheat", "Maize", "Chickpea", "Pigeonpea", "Groundnut",
	"Soybean", "Mustard", "Cotton", "Sugarcane", "Potato", "Onion", "Tomato", "Bajra", "Ragi", "Jowar",
}

// national base yield, quintal/ha
var cropBase = map[string]float64{
	"Rice": 35, "Wheat": 42, "Maize": 32, "Chickpea": 16, "Pigeonpea": 14,
	"Groundnut": 18, "Soybean": 20, "Mustard": 14, "Cotton": 20,
	"Sugarcane": 80, "Potato": 220, "Onion": 25, "Tomato": 22, "Bajra": 15, "Ragi": 18, "Jowar": 14,
}

var cropSeasons = map[string][]string{
	"Rice":      {"Kharif", "Rabi"},
	"Wheat":     {"Rabi"},
	"Maize":     {"Kharif", "Rabi"},
	"Chickpea":  {"Rabi"},
	"Pigeonpea": {"Kharif"},
	"Groundnut": {"Kharif"},
	"Soybean":   {"Kharif"},
	"Mustard":   {"Rabi"},
	"Cotton":    {"Kharif"},
	"Sugarcane": {"Rabi", "Annual", "Kharif"},
	"Potato":    {"Rabi"},
	"Onion":     {"Rabi", "Kharif"},
	"Tomato":    {"Rabi", "Kharif", "Summer"},
	"Bajra":     {"Kharif"},
	"Ragi":      {"Kharif"},
	"Jowar":     {"Kharif", "Rabi"},
}

// stateBumps adds to the base yield where a state is known to do better.
var stateBumps = map[string]map[string]float64{
	"Punjab":         {"Wheat": 4, "Rice": 2, "Cotton": 1},
	"Haryana":        {"Wheat": 3, "Rice": 1},
	"Uttar Pradesh":  {"Wheat": 2, "Rice": 1, "Sugarcane": 8, "Potato": 10},
	"West Bengal":    {"Rice": 2, "Potato": 20},
	"Gujarat":        {"Groundnut": 4, "Cotton": 3, "Onion": 3},
	"Maharashtra":    {"Cotton": 2, "Soybean": 2, "Onion": 4, "Sugarcane": 6},
	"Madhya Pradesh": {"Soybean": 3, "Chickpea": 2, "Wheat": 1},
	"Karnataka":      {"Ragi": 4, "Maize": 2, "Sugarcane": 4, "Tomato": 2},
	"Tamil Nadu":     {"Rice": 2, "Groundnut": 2, "Sugarcane": 6},
	"Bihar":          {"Maize": 2, "Wheat": 1},
	"Rajasthan":      {"Bajra": 3, "Mustard": 2, "Chickpea": 2},
	"Odisha":         {"Rice": 1},
	"Assam":          {"Rice": 2},
	"Andhra Pradesh": {"Rice": 2},
	"Telangana":      {"Cotton": 2, "Maize": 1},
}
