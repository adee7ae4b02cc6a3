package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gigdash/gigdash/internal/domain"
)

// profile holds the per-platform extraction heuristics. Adding a platform
// means adding a table entry; the control flow in Parse never changes.
type profile struct {
	title           func(text string) string
	description     func(text string) string
	duration        func(text string) int
	fallbackAddress string
}

// featureSeparator joins matched description features.
const featureSeparator = " • "

// feature pairs a detection pattern with the label emitted when it matches.
type feature struct {
	pattern *regexp.Regexp
	label   string
}

// scanFeatures collects the labels of all matching features, joined with the
// separator, or returns the fallback when none match.
func scanFeatures(text string, features []feature, fallback string) string {
	var matched []string
	for _, f := range features {
		if f.pattern.MatchString(text) {
			matched = append(matched, f.label)
		}
	}
	if len(matched) == 0 {
		return fallback
	}
	return strings.Join(matched, featureSeparator)
}

// fixedDuration adapts a constant to the profile duration signature.
func fixedDuration(minutes int) func(string) int {
	return func(string) int { return minutes }
}

// profileFor looks up the extraction profile for a platform identifier,
// case-insensitively. The second return value is false for unknown
// platforms, which then get only the generic pass.
func profileFor(platform string) (profile, bool) {
	p, ok := profiles[strings.ToLower(platform)]
	return p, ok
}

// ─── Grocery delivery (Instacart) ────────────────────────────────────────────

var (
	groceryStorePattern = regexp.MustCompile(`(?i)(Whole Foods|Costco|Safeway|QFC|Fred Meyer|Target)`)
	itemCountPattern    = regexp.MustCompile(`(?i)(\d+)\s*item`)
)

var groceryFeatures = []feature{
	{regexp.MustCompile(`(?i)heavy`), "Heavy items"},
	{regexp.MustCompile(`(?i)organic`), "Organic products"},
	{regexp.MustCompile(`(?i)alcohol`), "Alcohol delivery"},
	{regexp.MustCompile(`(?i)tip`), "Good tipper"},
}

func instacartTitle(text string) string {
	store := groceryStorePattern.FindStringSubmatch(text)
	items := itemCountPattern.FindStringSubmatch(text)

	switch {
	case store != nil && items != nil:
		return "Grocery Delivery - " + store[1] + " (" + items[1] + " items)"
	case store != nil:
		return "Grocery Delivery - " + store[1]
	case items != nil:
		return "Grocery Delivery - " + items[1] + " items"
	}
	return "Grocery Delivery"
}

// instacartDuration scales with the item count: 2 minutes per item plus a
// 15-minute base, clamped to [15, 60]. Falls back to 45 when no count is
// mentioned.
func instacartDuration(text string) int {
	m := itemCountPattern.FindStringSubmatch(text)
	if m == nil {
		return 45
	}
	count, err := strconv.Atoi(m[1])
	if err != nil {
		return 45
	}
	minutes := count*2 + 15
	if minutes < 15 {
		minutes = 15
	}
	if minutes > 60 {
		minutes = 60
	}
	return minutes
}

// ─── Restaurant delivery (DoorDash) ──────────────────────────────────────────

var doordashTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)from\s+([A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(McDonald's|Starbucks|Chipotle|Subway|Pizza Hut|Domino's)`),
	regexp.MustCompile(`(?i)([A-Za-z\s]+(?:Restaurant|Cafe|Kitchen|Grill|Pizza))`),
}

var doordashFeatures = []feature{
	{regexp.MustCompile(`(?i)ready`), "Order ready"},
	{regexp.MustCompile(`(?i)peak`), "Peak pay"},
	{regexp.MustCompile(`\+\$\d`), "Bonus pay"},
	{regexp.MustCompile(`(?i)close|near`), "Close delivery"},
}

func doordashTitle(text string) string {
	for _, pattern := range doordashTitlePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return "Restaurant Pickup - " + strings.TrimSpace(m[1])
		}
	}
	return "Restaurant Pickup"
}

// ─── Rideshare food (Uber Eats) ──────────────────────────────────────────────

var (
	uberFastFoodPattern   = regexp.MustCompile(`(?i)McDonald's|fast food`)
	uberRestaurantPattern = regexp.MustCompile(`(?i)([A-Za-z\s]+(?:Restaurant|Cafe|Kitchen))`)
)

var uberFeatures = []feature{
	{regexp.MustCompile(`(?i)quick|fast`), "Quick pickup"},
	{regexp.MustCompile(`(?i)drive.?thru`), "Drive-thru"},
	{regexp.MustCompile(`(?i)small|little`), "Small order"},
}

func uberTitle(text string) string {
	if uberFastFoodPattern.MatchString(text) {
		return "Fast Food - McDonald's"
	}
	if m := uberRestaurantPattern.FindStringSubmatch(text); m != nil {
		return "Restaurant - " + strings.TrimSpace(m[1])
	}
	return "Food Delivery"
}

// ─── Field audits (Field Agent) ──────────────────────────────────────────────

var (
	fieldAgentStarbucks = regexp.MustCompile(`(?i)starbucks`)
	fieldAgentRetail    = regexp.MustCompile(`(?i)target|walmart|retail`)
	fieldAgentMystery   = regexp.MustCompile(`(?i)secret shop|mystery`)
)

var fieldAgentFeatures = []feature{
	{regexp.MustCompile(`(?i)photo`), "Photo required"},
	{regexp.MustCompile(`(?i)receipt`), "Receipt photo"},
	{regexp.MustCompile(`(?i)price`), "Price check"},
	{regexp.MustCompile(`(?i)audit|display`), "Display audit"},
}

func fieldAgentTitle(text string) string {
	switch {
	case fieldAgentStarbucks.MatchString(text):
		return "Starbucks Experience Audit"
	case fieldAgentRetail.MatchString(text):
		return "Retail Display Audit"
	case fieldAgentMystery.MatchString(text):
		return "Mystery Shopping Task"
	}
	return "Field Agent Task"
}

// ─── Retail audits (EPMS) ────────────────────────────────────────────────────

var epmsTitleRules = []struct {
	pattern *regexp.Regexp
	title   string
}{
	{regexp.MustCompile(`(?i)walmart`), "Walmart Store Audit"},
	{regexp.MustCompile(`(?i)target`), "Target Display Check"},
	{regexp.MustCompile(`(?i)kroger`), "Kroger Compliance Audit"},
	{regexp.MustCompile(`(?i)home depot`), "Home Depot Product Audit"},
	{regexp.MustCompile(`(?i)audit|compliance`), "Store Compliance Audit"},
}

var epmsFeatures = []feature{
	{regexp.MustCompile(`(?i)planogram`), "Planogram check"},
	{regexp.MustCompile(`(?i)price`), "Price verification"},
	{regexp.MustCompile(`(?i)inventory`), "Inventory count"},
	{regexp.MustCompile(`(?i)display`), "Display compliance"},
	{regexp.MustCompile(`(?i)photo`), "Photo documentation"},
}

func epmsTitle(text string) string {
	for _, rule := range epmsTitleRules {
		if rule.pattern.MatchString(text) {
			return rule.title
		}
	}
	return "EPMS Store Audit"
}

// ─── Mystery shopping (Ellis) ────────────────────────────────────────────────

var ellisTitleRules = []struct {
	pattern *regexp.Regexp
	title   string
}{
	{regexp.MustCompile(`(?i)restaurant`), "Restaurant Mystery Shop"},
	{regexp.MustCompile(`(?i)hotel`), "Hotel Service Evaluation"},
	{regexp.MustCompile(`(?i)bank`), "Bank Service Assessment"},
	{regexp.MustCompile(`(?i)retail`), "Retail Mystery Shop"},
	{regexp.MustCompile(`(?i)mystery shop`), "Mystery Shopping Assignment"},
}

var ellisFeatures = []feature{
	{regexp.MustCompile(`(?i)purchase`), "Purchase required"},
	{regexp.MustCompile(`(?i)interaction`), "Staff interaction"},
	{regexp.MustCompile(`(?i)timing`), "Service timing"},
	{regexp.MustCompile(`(?i)cleanliness`), "Cleanliness check"},
	{regexp.MustCompile(`(?i)receipt`), "Receipt required"},
}

func ellisTitle(text string) string {
	for _, rule := range ellisTitleRules {
		if rule.pattern.MatchString(text) {
			return rule.title
		}
	}
	return "Ellis Service Evaluation"
}

// ─── Surveys and data collection (Alt360) ────────────────────────────────────

var alt360TitleRules = []struct {
	pattern *regexp.Regexp
	title   string
}{
	{regexp.MustCompile(`(?i)survey`), "Customer Survey Collection"},
	{regexp.MustCompile(`(?i)data collection`), "Data Collection Assignment"},
	{regexp.MustCompile(`(?i)market research`), "Market Research Task"},
	{regexp.MustCompile(`(?i)interview`), "Customer Interview"},
}

var alt360Features = []feature{
	{regexp.MustCompile(`(?i)tablet`), "Tablet provided"},
	{regexp.MustCompile(`(?i)demographic`), "Demographic targeting"},
	{regexp.MustCompile(`(?i)incentive`), "Customer incentive"},
	{regexp.MustCompile(`(?i)location`), "Location specific"},
}

func alt360Title(text string) string {
	for _, rule := range alt360TitleRules {
		if rule.pattern.MatchString(text) {
			return rule.title
		}
	}
	return "Alt360 Survey Task"
}

// ─── Personal shopping (PrestoShopper) ───────────────────────────────────────

var prestoTitleRules = []struct {
	pattern *regexp.Regexp
	title   string
}{
	{regexp.MustCompile(`(?i)grocery`), "Grocery Shopping Assignment"},
	{regexp.MustCompile(`(?i)pharmacy`), "Pharmacy Shopping Task"},
	{regexp.MustCompile(`(?i)delivery`), "Shopping & Delivery"},
	{regexp.MustCompile(`(?i)pickup`), "Shopping & Pickup"},
}

var prestoFeatures = []feature{
	{regexp.MustCompile(`(?i)organic`), "Organic products"},
	{regexp.MustCompile(`(?i)prescription`), "Prescription pickup"},
	{regexp.MustCompile(`(?i)substitution`), "Substitutions allowed"},
	{regexp.MustCompile(`(?i)special request`), "Special requests"},
	{regexp.MustCompile(`(?i)reimbursement`), "Full reimbursement"},
}

func prestoTitle(text string) string {
	for _, rule := range prestoTitleRules {
		if rule.pattern.MatchString(text) {
			return rule.title
		}
	}
	return "PrestoShopper Assignment"
}

// ─── Profile table ───────────────────────────────────────────────────────────

var profiles = map[string]profile{
	domain.PlatformInstacart: {
		title: instacartTitle,
		description: func(text string) string {
			return scanFeatures(text, groceryFeatures, "Grocery shopping and delivery")
		},
		duration:        instacartDuration,
		fallbackAddress: "Local grocery store",
	},
	domain.PlatformDoorDash: {
		title: doordashTitle,
		description: func(text string) string {
			return scanFeatures(text, doordashFeatures, "Food pickup and delivery")
		},
		duration:        fixedDuration(25),
		fallbackAddress: "Restaurant pickup location",
	},
	domain.PlatformUber: {
		title: uberTitle,
		description: func(text string) string {
			return scanFeatures(text, uberFeatures, "Food delivery")
		},
		duration:        fixedDuration(20),
		fallbackAddress: "Restaurant pickup location",
	},
	domain.PlatformFieldAgent: {
		title: fieldAgentTitle,
		description: func(text string) string {
			return scanFeatures(text, fieldAgentFeatures, "Field audit task")
		},
		duration:        fixedDuration(30),
		fallbackAddress: "Retail location",
	},
	domain.PlatformEPMS: {
		title: epmsTitle,
		description: func(text string) string {
			return scanFeatures(text, epmsFeatures, "Store audit and compliance check")
		},
		duration:        fixedDuration(45),
		fallbackAddress: "Store location",
	},
	domain.PlatformEllis: {
		title: ellisTitle,
		description: func(text string) string {
			return scanFeatures(text, ellisFeatures, "Service quality evaluation")
		},
		duration:        fixedDuration(60),
		fallbackAddress: "Client location",
	},
	domain.PlatformAlt360: {
		title: alt360Title,
		description: func(text string) string {
			return scanFeatures(text, alt360Features, "Survey and data collection")
		},
		duration:        fixedDuration(35),
		fallbackAddress: "Survey location",
	},
	domain.PlatformPrestoShopper: {
		title: prestoTitle,
		description: func(text string) string {
			return scanFeatures(text, prestoFeatures, "Shopping and fulfillment service")
		},
		duration:        fixedDuration(40),
		fallbackAddress: "Shopping location",
	},
}
