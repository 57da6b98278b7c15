package catalog

// Static reference data for the salon: service categories, stylists and the
// bookable time slots. Loaded once at init, never mutated.

type ServiceItem struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Duration int    `json:"duration"`
}

type ServiceCategory struct {
	ID          int           `json:"id"`
	Category    string        `json:"category"`
	Icon        string        `json:"icon"`
	Description string        `json:"description"`
	Items       []ServiceItem `json:"items"`
}

type Stylist struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// AnyAvailableStylistID is the sentinel stylist meaning "no preference".
const AnyAvailableStylistID = 4

var Services = []ServiceCategory{
	{
		ID:          1,
		Category:    "Haircuts & Styling",
		Icon:        "Scissors",
		Description: "Includes trims, full cuts, blowouts, and professional styling for everyday or special occasions.",
		Items: []ServiceItem{
			{Name: "HairCut", Price: "$50+", Duration: 45},
			{Name: "BlowDry", Price: "$50+", Duration: 30},
			{Name: "Wash Cut & BlowDry", Price: "$70+", Duration: 60},
			{Name: "Dry Cut", Price: "$40+", Duration: 30},
			{Name: "Fringe/Bang Trim", Price: "$15+", Duration: 15},
			{Name: "Up Do", Price: "$150+", Duration: 90},
			{Name: "Half Up Do/Prom", Price: "$75+", Duration: 60},
		},
	},
	{
		ID:          2,
		Category:    "Color Services",
		Icon:        "Palette",
		Description: "Enjoy our range of coloring services, from highlights and balayage to full color and root touch-ups.",
		Items: []ServiceItem{
			{Name: "Root Touch-up", Price: "$75+", Duration: 60},
			{Name: "Full Color", Price: "$125+", Duration: 90},
			{Name: "Highlights", Price: "$200+", Duration: 120},
			{Name: "Partial Highlights", Price: "$140+", Duration: 90},
			{Name: "Balayage", Price: "$240+", Duration: 150},
			{Name: "Partial Balayage", Price: "$160+", Duration: 120},
			{Name: "Toner", Price: "$65+", Duration: 30},
			{Name: "Color Correction", Price: "Consultation", Duration: 180},
			{Name: "Lowlights", Price: "$140+", Duration: 90},
		},
	},
	{
		ID:          3,
		Category:    "Hair Treatments",
		Icon:        "Sparkles",
		Description: "Deep conditioning, keratin treatments, and scalp care to nourish and repair hair.",
		Items: []ServiceItem{
			{Name: "Hair Keratin", Price: "$350+", Duration: 180},
			{Name: "Deep Treatment", Price: "$55+", Duration: 45},
			{Name: "Olaplex Treatment", Price: "$75+", Duration: 45},
			{Name: "Scalp Detox", Price: "$45+", Duration: 30},
			{Name: "Protein Treatment", Price: "$65+", Duration: 45},
			{Name: "Moisture Repair", Price: "$60+", Duration: 45},
			{Name: "Perm", Price: "$150", Duration: 120},
		},
	},
	{
		ID:          4,
		Category:    "Beauty & Add-Ons",
		Icon:        "Star",
		Description: "Complete your look with our beauty services including makeup, brows, and lashes.",
		Items: []ServiceItem{
			{Name: "Makeup", Price: "$90+", Duration: 60},
			{Name: "Eyebrow Shaping", Price: "$20+", Duration: 15},
			{Name: "Eyelash Extensions", Price: "$100+", Duration: 90},
			{Name: "Full Face Threading", Price: "$50+", Duration: 30},
			{Name: "Hair Extension", Price: "Consultation", Duration: 180},
			{Name: "Free Consultation", Price: "Free", Duration: 30},
		},
	},
}

var Stylists = []Stylist{
	{ID: 1, Name: "Sofia Martinez", Specialty: "Color Specialist"},
	{ID: 2, Name: "Emma Chen", Specialty: "Cut & Style Expert"},
	{ID: 3, Name: "Olivia Brown", Specialty: "Bridal & Updos"},
	{ID: 4, Name: "Any Available", Specialty: "All Services"},
}

var TimeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM",
	"3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM", "5:00 PM", "5:30 PM",
	"6:00 PM", "6:30 PM", "7:00 PM",
}

func FindCategory(id int) (*ServiceCategory, bool) {
	for i := range Services {
		if Services[i].ID == id {
			return &Services[i], true
		}
	}
	return nil, false
}

func FindItem(categoryID int, name string) (*ServiceCategory, *ServiceItem, bool) {
	cat, ok := FindCategory(categoryID)
	if !ok {
		return nil, nil, false
	}
	for i := range cat.Items {
		if cat.Items[i].Name == name {
			return cat, &cat.Items[i], true
		}
	}
	return nil, nil, false
}

func FindStylist(id int) (*Stylist, bool) {
	for i := range Stylists {
		if Stylists[i].ID == id {
			return &Stylists[i], true
		}
	}
	return nil, false
}

func IsValidTimeSlot(label string) bool {
	for _, s := range TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}
